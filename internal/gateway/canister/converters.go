package canister

import (
	"fmt"

	"shipping/internal/entities"
	"shipping/internal/wire"
)

func unwrap[T any](method string, res wire.Result[T]) (*T, error) {
	if res.Err != nil {
		return nil, &RemoteError{Method: method, Message: *res.Err}
	}
	if res.Ok == nil {
		return nil, fmt.Errorf("%s: %w", method, wire.ErrInvalidResult)
	}
	return res.Ok, nil
}

func toDomainShipments(list []wire.Shipment) ([]entities.Shipment, error) {
	shipments := make([]entities.Shipment, 0, len(list))
	for _, s := range list {
		shipment, err := wire.ToShipment(s)
		if err != nil {
			return nil, err
		}
		shipments = append(shipments, *shipment)
	}
	return shipments, nil
}

func toDomainDrivers(list []wire.Driver) []entities.Driver {
	drivers := make([]entities.Driver, 0, len(list))
	for _, d := range list {
		drivers = append(drivers, *wire.ToDriver(d))
	}
	return drivers
}

func toDomainReturnRequests(list []wire.ReturnRequest) ([]entities.ReturnRequest, error) {
	requests := make([]entities.ReturnRequest, 0, len(list))
	for _, r := range list {
		request, err := wire.ToReturnRequest(r)
		if err != nil {
			return nil, err
		}
		requests = append(requests, *request)
	}
	return requests, nil
}

func toDomainOptUser(o wire.Opt[wire.User]) (*entities.User, error) {
	u := o.Ptr()
	if u == nil {
		return nil, nil
	}
	return wire.ToUser(*u)
}

func toDomainOptShipment(o wire.Opt[wire.Shipment]) (*entities.Shipment, error) {
	s := o.Ptr()
	if s == nil {
		return nil, nil
	}
	return wire.ToShipment(*s)
}
