//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=status_get_test
package status_get

import (
	"shipping/pkg/logger"
)

type handlerLogger interface {
	Error(msg string, fields ...logger.Field)
}
