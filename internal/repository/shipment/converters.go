package shipment

import "shipping/internal/entities"

func ToDomain(s *ShipmentDB, events []TrackingEventDB) *entities.Shipment {
	if s == nil {
		return nil
	}

	var driverID *entities.Principal
	if s.DriverID != nil {
		id := entities.Principal(*s.DriverID)
		driverID = &id
	}

	history := make([]entities.TrackingEvent, 0, len(events))
	for _, e := range events {
		history = append(history, eventToDomain(e))
	}

	return &entities.Shipment{
		ID:                s.ID,
		SenderID:          entities.Principal(s.SenderID),
		RecipientName:     s.RecipientName,
		RecipientPhone:    s.RecipientPhone,
		PickupAddress:     addressToDomain(s.PickupAddress),
		DeliveryAddress:   addressToDomain(s.DeliveryAddress),
		PackageDetails:    packageToDomain(s.PackageDetails),
		Status:            entities.ShipmentStatus(s.Status),
		DriverID:          driverID,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
		EstimatedDelivery: s.EstimatedDelivery,
		ActualDelivery:    s.ActualDelivery,
		TrackingHistory:   history,
		PaymentStatus:     entities.PaymentStatus(s.PaymentStatus),
		Cost:              s.Cost,
	}
}

func FromDomain(s *entities.Shipment) *ShipmentDB {
	if s == nil {
		return nil
	}

	var driverID *string
	if s.DriverID != nil {
		id := s.DriverID.String()
		driverID = &id
	}

	return &ShipmentDB{
		ID:                s.ID,
		SenderID:          s.SenderID.String(),
		RecipientName:     s.RecipientName,
		RecipientPhone:    s.RecipientPhone,
		PickupAddress:     addressFromDomain(s.PickupAddress),
		DeliveryAddress:   addressFromDomain(s.DeliveryAddress),
		PackageDetails:    packageFromDomain(s.PackageDetails),
		Status:            s.Status.String(),
		DriverID:          driverID,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
		EstimatedDelivery: s.EstimatedDelivery,
		ActualDelivery:    s.ActualDelivery,
		PaymentStatus:     s.PaymentStatus.String(),
		Cost:              s.Cost,
	}
}

func FromDomainModify(m *entities.ShipmentModify) *ShipmentModifyDB {
	if m == nil {
		return nil
	}
	model := &ShipmentModifyDB{
		ID:             m.ID,
		UpdatedAt:      m.UpdatedAt,
		ActualDelivery: m.ActualDelivery,
	}
	if m.Status != nil {
		status := m.Status.String()
		model.Status = &status
	}
	if m.DriverID != nil {
		driverID := m.DriverID.String()
		model.DriverID = &driverID
	}
	if m.PaymentStatus != nil {
		paymentStatus := m.PaymentStatus.String()
		model.PaymentStatus = &paymentStatus
	}
	return model
}

func EventFromDomain(shipmentID string, e entities.TrackingEvent) TrackingEventDB {
	return TrackingEventDB{
		ShipmentID:  shipmentID,
		OccurredAt:  e.Timestamp,
		Status:      e.Status.String(),
		Location:    e.Location,
		Description: e.Description,
		UpdatedBy:   e.UpdatedBy.String(),
	}
}

func eventToDomain(e TrackingEventDB) entities.TrackingEvent {
	return entities.TrackingEvent{
		Timestamp:   e.OccurredAt,
		Status:      entities.ShipmentStatus(e.Status),
		Location:    e.Location,
		Description: e.Description,
		UpdatedBy:   entities.Principal(e.UpdatedBy),
	}
}

func addressToDomain(a AddressDB) entities.Address {
	address := entities.Address{
		Street:     a.Street,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Country:    a.Country,
	}
	if a.Coordinates != nil {
		address.Coordinates = &entities.Coordinates{
			Latitude:  a.Coordinates.Latitude,
			Longitude: a.Coordinates.Longitude,
		}
	}
	return address
}

func addressFromDomain(a entities.Address) AddressDB {
	address := AddressDB{
		Street:     a.Street,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Country:    a.Country,
	}
	if a.Coordinates != nil {
		address.Coordinates = &CoordinatesDB{
			Latitude:  a.Coordinates.Latitude,
			Longitude: a.Coordinates.Longitude,
		}
	}
	return address
}

func packageToDomain(p PackageDetailsDB) entities.PackageDetails {
	return entities.PackageDetails{
		Description: p.Description,
		Weight:      p.Weight,
		Dimensions: entities.Dimensions{
			Length: p.Dimensions.Length,
			Width:  p.Dimensions.Width,
			Height: p.Dimensions.Height,
		},
		Value:               p.Value,
		Fragile:             p.Fragile,
		SpecialInstructions: p.SpecialInstructions,
	}
}

func packageFromDomain(p entities.PackageDetails) PackageDetailsDB {
	return PackageDetailsDB{
		Description: p.Description,
		Weight:      p.Weight,
		Dimensions: DimensionsDB{
			Length: p.Dimensions.Length,
			Width:  p.Dimensions.Width,
			Height: p.Dimensions.Height,
		},
		Value:               p.Value,
		Fragile:             p.Fragile,
		SpecialInstructions: p.SpecialInstructions,
	}
}
