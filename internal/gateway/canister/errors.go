package canister

import "errors"

var (
	ErrRemoteRejected = errors.New("remote rejected the call")
	ErrUnknownMethod  = errors.New("unknown backend method")
)

// RemoteError канистра вернула Err вариант. Error() - сообщение канистры без изменений.
type RemoteError struct {
	Method  string
	Message string
}

func (e *RemoteError) Error() string {
	return e.Message
}

func (e *RemoteError) Is(target error) bool {
	return target == ErrRemoteRejected
}
