package canister

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"shipping/internal/entities"
	"shipping/internal/wire"
	"shipping/pkg/logger"
)

type handlerFunc func(ctx context.Context, caller entities.Principal, args []json.RawMessage) (any, error)

// Dispatcher исполняет методы канистры поверх доменных сервисов реплики.
type Dispatcher struct {
	users     UserService
	shipments ShipmentService
	drivers   DriverService
	returns   ReturnService
	stats     StatsService
	log       dispatcherLogger
	iface     wire.Interface
	handlers  map[string]handlerFunc
}

func New(
	users UserService,
	shipments ShipmentService,
	drivers DriverService,
	returns ReturnService,
	stats StatsService,
	log dispatcherLogger,
) *Dispatcher {
	d := &Dispatcher{
		users:     users,
		shipments: shipments,
		drivers:   drivers,
		returns:   returns,
		stats:     stats,
		log:       log,
		iface:     wire.Backend,
	}
	d.handlers = map[string]handlerFunc{
		wire.MethodRegisterUser:           d.registerUser,
		wire.MethodGetUser:                d.getUser,
		wire.MethodGetCurrentUser:         d.getCurrentUser,
		wire.MethodCreateShipment:         d.createShipment,
		wire.MethodGetShipment:            d.getShipment,
		wire.MethodGetUserShipments:       d.getUserShipments,
		wire.MethodUpdateShipmentStatus:   d.updateShipmentStatus,
		wire.MethodRegisterDriver:         d.registerDriver,
		wire.MethodGetAvailableDrivers:    d.getAvailableDrivers,
		wire.MethodAssignDriverToShipment: d.assignDriver,
		wire.MethodCreateReturnRequest:    d.createReturnRequest,
		wire.MethodGetReturnRequests:      d.getReturnRequests,
		wire.MethodGetPlatformStats:       d.getPlatformStats,
	}
	return d
}

// Lookup режим метода, нужен транспорту до проверки подписи.
func (d *Dispatcher) Lookup(method string) (wire.Method, bool) {
	return d.iface.Lookup(method)
}

// Dispatch всегда возвращает конверт: ошибки превращаются в отказ реплики.
func (d *Dispatcher) Dispatch(ctx context.Context, mode wire.Mode, method string, caller entities.Principal, args []json.RawMessage) wire.Response {
	reply, err := d.dispatch(ctx, mode, method, caller, args)
	if err != nil {
		return d.reject(method, caller, err)
	}

	data, err := json.Marshal(reply)
	if err != nil {
		return d.reject(method, caller, fmt.Errorf("encode reply: %w", err))
	}
	return wire.Replied(data)
}

func (d *Dispatcher) dispatch(ctx context.Context, mode wire.Mode, method string, caller entities.Principal, args []json.RawMessage) (any, error) {
	m, ok := d.iface.Lookup(method)
	if !ok {
		return nil, ErrUnknownMethod
	}
	if mode == wire.ModeQuery && m.Mode != wire.ModeQuery {
		return nil, ErrNotQuery
	}
	if len(args) != len(m.Args) {
		return nil, argsError(fmt.Errorf("%w: want %d, got %d", wire.ErrArgsCount, len(m.Args), len(args)))
	}

	return d.handlers[method](ctx, caller, args)
}

func (d *Dispatcher) reject(method string, caller entities.Principal, err error) wire.Response {
	switch {
	case errors.Is(err, ErrUnknownMethod), errors.Is(err, ErrNotQuery):
		return wire.Rejected(wire.RejectDestinationInvalid, fmt.Sprintf("%s: %s", err, method))
	case errors.Is(err, ErrDecodeArgs):
		return wire.Rejected(wire.RejectCanisterReject, err.Error())
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return wire.Rejected(wire.RejectSysTransient, "request cancelled")
	default:
		d.log.Error("canister method failed",
			logger.NewField("method", method),
			logger.NewField("caller", caller.String()),
			logger.NewField("error", err),
		)
		return wire.Rejected(wire.RejectCanisterError, "internal error")
	}
}

func decode(args []json.RawMessage, out ...any) error {
	if err := wire.DecodeArgs(args, out...); err != nil {
		return argsError(err)
	}
	return nil
}

func argsError(err error) error {
	return fmt.Errorf("%w: %w", ErrDecodeArgs, err)
}

// result упаковывает ответ изменяющего метода: доменная ошибка становится Err вариантом.
func result[E, W any](value *E, err error, convert func(E) (W, error)) (any, error) {
	if err != nil {
		if msg, ok := domainMessage(err); ok {
			return wire.Err[W](msg), nil
		}
		return nil, err
	}

	w, err := convert(*value)
	if err != nil {
		return nil, err
	}
	return wire.Ok(w), nil
}

func optional[E, W any](value *E, err error, convert func(E) (W, error)) (any, error) {
	if err != nil {
		return nil, err
	}
	if value == nil {
		return wire.None[W](), nil
	}

	w, err := convert(*value)
	if err != nil {
		return nil, err
	}
	return wire.Some(w), nil
}

func list[E, W any](values []E, err error, convert func(E) (W, error)) (any, error) {
	if err != nil {
		return nil, err
	}

	res := make([]W, 0, len(values))
	for _, v := range values {
		w, err := convert(v)
		if err != nil {
			return nil, err
		}
		res = append(res, w)
	}
	return res, nil
}

func fromDriver(d entities.Driver) (wire.Driver, error) {
	return wire.FromDriver(d), nil
}
