package returns

import "errors"

var (
	ErrUnauthorizedReturn = errors.New("Unauthorized to request return")
	ErrNotDelivered       = errors.New("Can only return delivered shipments")
)
