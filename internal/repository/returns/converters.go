package returns

import "shipping/internal/entities"

func ToDomain(r *ReturnRequestDB) *entities.ReturnRequest {
	if r == nil {
		return nil
	}
	return &entities.ReturnRequest{
		ID:          r.ID,
		ShipmentID:  r.ShipmentID,
		RequesterID: entities.Principal(r.RequesterID),
		Reason:      r.Reason,
		Status:      entities.ReturnStatus(r.Status),
		CreatedAt:   r.CreatedAt,
		ProcessedAt: r.ProcessedAt,
	}
}

func FromDomain(r *entities.ReturnRequest) *ReturnRequestDB {
	if r == nil {
		return nil
	}
	return &ReturnRequestDB{
		ID:          r.ID,
		ShipmentID:  r.ShipmentID,
		RequesterID: r.RequesterID.String(),
		Reason:      r.Reason,
		Status:      r.Status.String(),
		CreatedAt:   r.CreatedAt,
		ProcessedAt: r.ProcessedAt,
	}
}
