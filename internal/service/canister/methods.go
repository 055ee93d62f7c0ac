package canister

import (
	"context"
	"encoding/json"

	"shipping/internal/entities"
	"shipping/internal/wire"
)

func (d *Dispatcher) registerUser(ctx context.Context, caller entities.Principal, args []json.RawMessage) (any, error) {
	var (
		name, email, phone string
		userType           wire.Variant
	)
	if err := decode(args, &name, &email, &phone, &userType); err != nil {
		return nil, err
	}
	t, err := wire.DecodeUserType(userType)
	if err != nil {
		return nil, argsError(err)
	}

	user, err := d.users.Register(ctx, caller, entities.UserRegistration{
		UserType: t,
		Name:     name,
		Email:    email,
		Phone:    phone,
	})
	return result(user, err, wire.FromUser)
}

func (d *Dispatcher) getUser(ctx context.Context, _ entities.Principal, args []json.RawMessage) (any, error) {
	var id string
	if err := decode(args, &id); err != nil {
		return nil, err
	}

	user, err := d.users.Get(ctx, entities.Principal(id))
	return optional(user, err, wire.FromUser)
}

func (d *Dispatcher) getCurrentUser(ctx context.Context, caller entities.Principal, _ []json.RawMessage) (any, error) {
	user, err := d.users.Get(ctx, caller)
	return optional(user, err, wire.FromUser)
}

func (d *Dispatcher) createShipment(ctx context.Context, caller entities.Principal, args []json.RawMessage) (any, error) {
	var (
		recipientName, recipientPhone string
		pickup, delivery              wire.Address
		pkg                           wire.PackageDetails
	)
	if err := decode(args, &recipientName, &recipientPhone, &pickup, &delivery, &pkg); err != nil {
		return nil, err
	}

	shipment, err := d.shipments.Create(ctx, caller, entities.ShipmentCreate{
		RecipientName:   recipientName,
		RecipientPhone:  recipientPhone,
		PickupAddress:   wire.ToAddress(pickup),
		DeliveryAddress: wire.ToAddress(delivery),
		PackageDetails:  wire.ToPackageDetails(pkg),
	})
	return result(shipment, err, wire.FromShipment)
}

func (d *Dispatcher) getShipment(ctx context.Context, _ entities.Principal, args []json.RawMessage) (any, error) {
	var id string
	if err := decode(args, &id); err != nil {
		return nil, err
	}

	shipment, err := d.shipments.Get(ctx, id)
	return optional(shipment, err, wire.FromShipment)
}

func (d *Dispatcher) getUserShipments(ctx context.Context, caller entities.Principal, _ []json.RawMessage) (any, error) {
	shipments, err := d.shipments.ListBySender(ctx, caller)
	return list(shipments, err, wire.FromShipment)
}

func (d *Dispatcher) updateShipmentStatus(ctx context.Context, caller entities.Principal, args []json.RawMessage) (any, error) {
	var (
		id, description string
		status          wire.Variant
		location        wire.Opt[string]
	)
	if err := decode(args, &id, &status, &location, &description); err != nil {
		return nil, err
	}
	s, err := wire.DecodeShipmentStatus(status)
	if err != nil {
		return nil, argsError(err)
	}

	shipment, err := d.shipments.UpdateStatus(ctx, caller, entities.ShipmentStatusUpdate{
		ShipmentID:  id,
		Status:      s,
		Location:    location.Ptr(),
		Description: description,
	})
	return result(shipment, err, wire.FromShipment)
}

func (d *Dispatcher) registerDriver(ctx context.Context, caller entities.Principal, args []json.RawMessage) (any, error) {
	var (
		name, phone string
		vehicle     wire.VehicleInfo
	)
	if err := decode(args, &name, &phone, &vehicle); err != nil {
		return nil, err
	}

	driver, err := d.drivers.Register(ctx, caller, entities.DriverRegistration{
		Name:        name,
		Phone:       phone,
		VehicleInfo: wire.ToVehicleInfo(vehicle),
	})
	return result(driver, err, fromDriver)
}

func (d *Dispatcher) getAvailableDrivers(ctx context.Context, _ entities.Principal, _ []json.RawMessage) (any, error) {
	drivers, err := d.drivers.ListAvailable(ctx)
	return list(drivers, err, fromDriver)
}

func (d *Dispatcher) assignDriver(ctx context.Context, caller entities.Principal, args []json.RawMessage) (any, error) {
	var shipmentID, driverID string
	if err := decode(args, &shipmentID, &driverID); err != nil {
		return nil, err
	}

	shipment, err := d.shipments.AssignDriver(ctx, caller, shipmentID, entities.Principal(driverID))
	return result(shipment, err, wire.FromShipment)
}

func (d *Dispatcher) createReturnRequest(ctx context.Context, caller entities.Principal, args []json.RawMessage) (any, error) {
	var shipmentID, reason string
	if err := decode(args, &shipmentID, &reason); err != nil {
		return nil, err
	}

	request, err := d.returns.Create(ctx, caller, shipmentID, reason)
	return result(request, err, wire.FromReturnRequest)
}

func (d *Dispatcher) getReturnRequests(ctx context.Context, caller entities.Principal, _ []json.RawMessage) (any, error) {
	requests, err := d.returns.ListByRequester(ctx, caller)
	return list(requests, err, wire.FromReturnRequest)
}

func (d *Dispatcher) getPlatformStats(ctx context.Context, _ entities.Principal, _ []json.RawMessage) (any, error) {
	stats, err := d.stats.Get(ctx)
	if err != nil {
		return nil, err
	}
	return wire.FromPlatformStats(*stats), nil
}
