package canister

import (
	"errors"

	"shipping/internal/service/driver"
	"shipping/internal/service/returns"
	"shipping/internal/service/shipment"
	"shipping/internal/service/user"
)

var (
	ErrUnknownMethod = errors.New("method not found")
	ErrNotQuery      = errors.New("method is not a query")
	ErrDecodeArgs    = errors.New("failed to decode arguments")
)

// domainErrors уходят клиенту как Err вариант с текстом ошибки.
var domainErrors = []error{
	user.ErrUserAlreadyRegistered,
	user.ErrInvalidUserType,
	shipment.ErrUserNotRegistered,
	shipment.ErrUnauthorizedCreate,
	shipment.ErrUnauthorizedUpdate,
	shipment.ErrUnauthorizedAssign,
	shipment.ErrShipmentNotFound,
	shipment.ErrInvalidStatus,
	driver.ErrDriverAlreadyRegistered,
	returns.ErrUnauthorizedReturn,
	returns.ErrNotDelivered,
}

func domainMessage(err error) (string, bool) {
	for _, target := range domainErrors {
		if errors.Is(err, target) {
			return target.Error(), true
		}
	}
	return "", false
}
