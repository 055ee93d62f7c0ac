package agent

import (
	"errors"
	"fmt"

	"shipping/internal/wire"
)

var (
	ErrRootKeyMissing   = errors.New("root key not fetched")
	ErrReplicaUnhealthy = errors.New("replica is not healthy")
	ErrUnexpectedReply  = errors.New("unexpected replica response")
)

// RejectError реплика отказалась выполнить вызов.
type RejectError struct {
	Method  string
	Code    wire.RejectCode
	Message string
}

func (e *RejectError) Error() string {
	return fmt.Sprintf("%s rejected (code %d): %s", e.Method, e.Code, e.Message)
}

type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("replica http status %d: %s", e.StatusCode, e.Body)
}
