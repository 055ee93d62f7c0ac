//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=canister_call_post_test
package canister_call_post

import (
	"context"
	"encoding/json"

	"shipping/internal/entities"
	"shipping/internal/wire"
	"shipping/pkg/logger"
)

type handlerLogger interface {
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
}

type Dispatcher interface {
	Dispatch(ctx context.Context, mode wire.Mode, method string, caller entities.Principal, args []json.RawMessage) wire.Response
}
