package ethrpc

import (
	"errors"
	"fmt"
)

var (
	ErrUserRejected  = errors.New("user rejected the request")
	ErrInvalidResult = errors.New("invalid rpc result")
)

// userRejectedCode EIP-1193 код отказа пользователя.
const userRejectedCode = 4001

// RPCError ошибка из поля error ответа JSON-RPC.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

func (e *RPCError) Is(target error) bool {
	return target == ErrUserRejected && e.Code == userRejectedCode
}
