package returns

import "time"

type ReturnRequestDB struct {
	ID          string
	ShipmentID  string
	RequesterID string
	Reason      string
	Status      string
	CreatedAt   time.Time
	ProcessedAt *time.Time
}
