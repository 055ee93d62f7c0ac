package entities

import "time"

type ReturnRequest struct {
	ID          string
	ShipmentID  string
	RequesterID Principal
	Reason      string
	Status      ReturnStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

type ReturnStatus string

const (
	ReturnRequested  ReturnStatus = "Requested"
	ReturnApproved   ReturnStatus = "Approved"
	ReturnRejected   ReturnStatus = "Rejected"
	ReturnInProgress ReturnStatus = "InProgress"
	ReturnCompleted  ReturnStatus = "Completed"
)

func (s ReturnStatus) String() string {
	return string(s)
}

func (s ReturnStatus) Valid() bool {
	switch s {
	case ReturnRequested, ReturnApproved, ReturnRejected, ReturnInProgress, ReturnCompleted:
		return true
	default:
		return false
	}
}
