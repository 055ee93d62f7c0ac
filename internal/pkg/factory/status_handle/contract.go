//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=status_handle_test
package status_handle

import (
	"time"

	"shipping/internal/entities"
)

type Recorder interface {
	ObserveDeliveryLatency(d time.Duration)
	ObservePickupWait(d time.Duration)
	IncTerminal(status entities.ShipmentStatus)
}
