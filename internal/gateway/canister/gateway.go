package canister

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shipping/internal/entities"
	"shipping/internal/pkg/agent"
	"shipping/internal/wire"
)

const (
	outcomeOK       = "ok"
	outcomeRejected = "remote_err"
	outcomeReject   = "replica_reject"
	outcomeError    = "error"
)

// Gateway типизированные вызовы бэкенд-канистры. Один вызов - один запрос, без повторов.
type Gateway struct {
	caller     caller
	canisterID string
	iface      wire.Interface
}

func New(caller caller, canisterID string) *Gateway {
	return &Gateway{
		caller:     caller,
		canisterID: canisterID,
		iface:      wire.Backend,
	}
}

func (g *Gateway) RegisterUser(ctx context.Context, reg entities.UserRegistration) (*entities.User, error) {
	userType, err := wire.EncodeUserType(reg.UserType)
	if err != nil {
		return nil, fmt.Errorf("gateway canister, register user: %w", err)
	}

	var res wire.Result[wire.User]
	err = g.invoke(ctx, wire.MethodRegisterUser, &res, reg.Name, reg.Email, reg.Phone, userType)
	if err != nil {
		return nil, fmt.Errorf("gateway canister, register user: %w", err)
	}

	user, err := unwrap(wire.MethodRegisterUser, res)
	if err != nil {
		return nil, err
	}
	return wire.ToUser(*user)
}

func (g *Gateway) GetUser(ctx context.Context, id entities.Principal) (*entities.User, error) {
	var res wire.Opt[wire.User]
	if err := g.invoke(ctx, wire.MethodGetUser, &res, id.String()); err != nil {
		return nil, fmt.Errorf("gateway canister, get user %s: %w", id, err)
	}
	return toDomainOptUser(res)
}

func (g *Gateway) GetCurrentUser(ctx context.Context) (*entities.User, error) {
	var res wire.Opt[wire.User]
	if err := g.invoke(ctx, wire.MethodGetCurrentUser, &res); err != nil {
		return nil, fmt.Errorf("gateway canister, get current user: %w", err)
	}
	return toDomainOptUser(res)
}

func (g *Gateway) CreateShipment(ctx context.Context, create entities.ShipmentCreate) (*entities.Shipment, error) {
	var res wire.Result[wire.Shipment]
	err := g.invoke(ctx, wire.MethodCreateShipment, &res,
		create.RecipientName,
		create.RecipientPhone,
		wire.FromAddress(create.PickupAddress),
		wire.FromAddress(create.DeliveryAddress),
		wire.FromPackageDetails(create.PackageDetails),
	)
	if err != nil {
		return nil, fmt.Errorf("gateway canister, create shipment: %w", err)
	}

	shipment, err := unwrap(wire.MethodCreateShipment, res)
	if err != nil {
		return nil, err
	}
	return wire.ToShipment(*shipment)
}

func (g *Gateway) GetShipment(ctx context.Context, shipmentID string) (*entities.Shipment, error) {
	var res wire.Opt[wire.Shipment]
	if err := g.invoke(ctx, wire.MethodGetShipment, &res, shipmentID); err != nil {
		return nil, fmt.Errorf("gateway canister, get shipment %s: %w", shipmentID, err)
	}
	return toDomainOptShipment(res)
}

func (g *Gateway) GetUserShipments(ctx context.Context) ([]entities.Shipment, error) {
	var res []wire.Shipment
	if err := g.invoke(ctx, wire.MethodGetUserShipments, &res); err != nil {
		return nil, fmt.Errorf("gateway canister, get user shipments: %w", err)
	}
	return toDomainShipments(res)
}

func (g *Gateway) UpdateShipmentStatus(ctx context.Context, update entities.ShipmentStatusUpdate) (*entities.Shipment, error) {
	status, err := wire.EncodeShipmentStatus(update.Status)
	if err != nil {
		return nil, fmt.Errorf("gateway canister, update shipment status: %w", err)
	}

	var res wire.Result[wire.Shipment]
	err = g.invoke(ctx, wire.MethodUpdateShipmentStatus, &res,
		update.ShipmentID,
		status,
		wire.OptFromPtr(update.Location),
		update.Description,
	)
	if err != nil {
		return nil, fmt.Errorf("gateway canister, update shipment status %s: %w", update.ShipmentID, err)
	}

	shipment, err := unwrap(wire.MethodUpdateShipmentStatus, res)
	if err != nil {
		return nil, err
	}
	return wire.ToShipment(*shipment)
}

func (g *Gateway) RegisterDriver(ctx context.Context, reg entities.DriverRegistration) (*entities.Driver, error) {
	var res wire.Result[wire.Driver]
	err := g.invoke(ctx, wire.MethodRegisterDriver, &res, reg.Name, reg.Phone, wire.FromVehicleInfo(reg.VehicleInfo))
	if err != nil {
		return nil, fmt.Errorf("gateway canister, register driver: %w", err)
	}

	driver, err := unwrap(wire.MethodRegisterDriver, res)
	if err != nil {
		return nil, err
	}
	return wire.ToDriver(*driver), nil
}

func (g *Gateway) GetAvailableDrivers(ctx context.Context) ([]entities.Driver, error) {
	var res []wire.Driver
	if err := g.invoke(ctx, wire.MethodGetAvailableDrivers, &res); err != nil {
		return nil, fmt.Errorf("gateway canister, get available drivers: %w", err)
	}
	return toDomainDrivers(res), nil
}

func (g *Gateway) AssignDriverToShipment(ctx context.Context, shipmentID string, driverID entities.Principal) (*entities.Shipment, error) {
	var res wire.Result[wire.Shipment]
	if err := g.invoke(ctx, wire.MethodAssignDriverToShipment, &res, shipmentID, driverID.String()); err != nil {
		return nil, fmt.Errorf("gateway canister, assign driver %s to %s: %w", driverID, shipmentID, err)
	}

	shipment, err := unwrap(wire.MethodAssignDriverToShipment, res)
	if err != nil {
		return nil, err
	}
	return wire.ToShipment(*shipment)
}

func (g *Gateway) CreateReturnRequest(ctx context.Context, shipmentID, reason string) (*entities.ReturnRequest, error) {
	var res wire.Result[wire.ReturnRequest]
	if err := g.invoke(ctx, wire.MethodCreateReturnRequest, &res, shipmentID, reason); err != nil {
		return nil, fmt.Errorf("gateway canister, create return request %s: %w", shipmentID, err)
	}

	request, err := unwrap(wire.MethodCreateReturnRequest, res)
	if err != nil {
		return nil, err
	}
	return wire.ToReturnRequest(*request)
}

func (g *Gateway) GetReturnRequests(ctx context.Context) ([]entities.ReturnRequest, error) {
	var res []wire.ReturnRequest
	if err := g.invoke(ctx, wire.MethodGetReturnRequests, &res); err != nil {
		return nil, fmt.Errorf("gateway canister, get return requests: %w", err)
	}
	return toDomainReturnRequests(res)
}

func (g *Gateway) GetPlatformStats(ctx context.Context) (*entities.PlatformStats, error) {
	var res wire.PlatformStats
	if err := g.invoke(ctx, wire.MethodGetPlatformStats, &res); err != nil {
		return nil, fmt.Errorf("gateway canister, get platform stats: %w", err)
	}
	stats := wire.ToPlatformStats(res)
	return &stats, nil
}

func (g *Gateway) invoke(ctx context.Context, method string, out any, args ...any) error {
	m, ok := g.iface.Lookup(method)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownMethod, method)
	}
	if len(args) != len(m.Args) {
		return fmt.Errorf("%s: %w: want %d, got %d", method, wire.ErrArgsCount, len(m.Args), len(args))
	}

	raw, err := wire.EncodeArgs(args...)
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}

	return g.executeWithMetrics(method, func() error {
		if m.Mode == wire.ModeQuery {
			return g.caller.Query(ctx, method, raw, out)
		}
		return g.caller.Call(ctx, method, raw, out)
	}, out)
}

func (g *Gateway) executeWithMetrics(method string, fn func() error, out any) error {
	start := time.Now()

	err := fn()

	outcome := getOutcome(err, out)
	GatewayRequestDuration.WithLabelValues(g.canisterID, method, outcome).Observe(time.Since(start).Seconds())
	if outcome == outcomeRejected {
		GatewayRemoteRejectionsTotal.WithLabelValues(g.canisterID, method).Inc()
	}

	return err
}

type errResult interface {
	IsErr() bool
}

func getOutcome(err error, out any) string {
	if err != nil {
		var rejectErr *agent.RejectError
		if errors.As(err, &rejectErr) {
			return outcomeReject
		}
		return outcomeError
	}
	if r, ok := out.(errResult); ok && r.IsErr() {
		return outcomeRejected
	}
	return outcomeOK
}
