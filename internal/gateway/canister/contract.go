//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=canister_test
package canister

import (
	"context"
	"encoding/json"
)

type caller interface {
	Query(ctx context.Context, method string, args []json.RawMessage, out any) error
	Call(ctx context.Context, method string, args []json.RawMessage, out any) error
}
