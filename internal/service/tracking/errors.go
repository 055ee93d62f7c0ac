package tracking

import "errors"

var (
	ErrStatusMismatch   = errors.New("shipment status mismatch between event and replica")
	ErrUndefinedStatus  = errors.New("undefined shipment status")
	ErrShipmentNotFound = errors.New("shipment not found")
)
