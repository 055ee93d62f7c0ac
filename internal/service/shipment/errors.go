package shipment

import "errors"

// Тексты совпадают с сообщениями канистры: клиенты получают их как есть.
var (
	ErrUserNotRegistered  = errors.New("User not registered")
	ErrUnauthorizedCreate = errors.New("Unauthorized to create shipments")
	ErrUnauthorizedUpdate = errors.New("Unauthorized to update shipment")
	ErrUnauthorizedAssign = errors.New("Unauthorized to assign driver")
	ErrShipmentNotFound   = errors.New("Shipment not found")
	ErrInvalidStatus      = errors.New("invalid shipment status")
)
