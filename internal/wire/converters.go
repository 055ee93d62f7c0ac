package wire

import (
	"fmt"

	"shipping/internal/entities"
)

func FromCoordinates(c *entities.Coordinates) Opt[Coordinates] {
	if c == nil {
		return None[Coordinates]()
	}
	return Some(Coordinates{Latitude: c.Latitude, Longitude: c.Longitude})
}

func ToCoordinates(o Opt[Coordinates]) *entities.Coordinates {
	c := o.Ptr()
	if c == nil {
		return nil
	}
	return &entities.Coordinates{Latitude: c.Latitude, Longitude: c.Longitude}
}

func FromAddress(a entities.Address) Address {
	return Address{
		Street:      a.Street,
		City:        a.City,
		State:       a.State,
		PostalCode:  a.PostalCode,
		Country:     a.Country,
		Coordinates: FromCoordinates(a.Coordinates),
	}
}

func ToAddress(a Address) entities.Address {
	return entities.Address{
		Street:      a.Street,
		City:        a.City,
		State:       a.State,
		PostalCode:  a.PostalCode,
		Country:     a.Country,
		Coordinates: ToCoordinates(a.Coordinates),
	}
}

func FromPackageDetails(p entities.PackageDetails) PackageDetails {
	return PackageDetails{
		Description: p.Description,
		Weight:      p.Weight,
		Dimensions: Dimensions{
			Length: p.Dimensions.Length,
			Width:  p.Dimensions.Width,
			Height: p.Dimensions.Height,
		},
		Value:               p.Value,
		Fragile:             p.Fragile,
		SpecialInstructions: OptFromPtr(p.SpecialInstructions),
	}
}

func ToPackageDetails(p PackageDetails) entities.PackageDetails {
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
		SpecialInstructions: p.SpecialInstructions.Ptr(),
	}
}

func FromVehicleInfo(v entities.VehicleInfo) VehicleInfo {
	return VehicleInfo{
		VehicleType:  v.VehicleType,
		LicensePlate: v.LicensePlate,
		Capacity:     v.Capacity,
	}
}

func ToVehicleInfo(v VehicleInfo) entities.VehicleInfo {
	return entities.VehicleInfo{
		VehicleType:  v.VehicleType,
		LicensePlate: v.LicensePlate,
		Capacity:     v.Capacity,
	}
}

func FromUser(u entities.User) (User, error) {
	userType, err := EncodeUserType(u.UserType)
	if err != nil {
		return User{}, fmt.Errorf("user type: %w", err)
	}
	return User{
		ID:        u.ID.String(),
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		UserType:  userType,
		CreatedAt: NanosFromTime(u.CreatedAt),
		IsActive:  u.IsActive,
	}, nil
}

func ToUser(u User) (*entities.User, error) {
	userType, err := DecodeUserType(u.UserType)
	if err != nil {
		return nil, fmt.Errorf("user type: %w", err)
	}
	return &entities.User{
		ID:        entities.Principal(u.ID),
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		UserType:  userType,
		CreatedAt: TimeFromNanos(u.CreatedAt),
		IsActive:  u.IsActive,
	}, nil
}

func FromTrackingEvent(e entities.TrackingEvent) (TrackingEvent, error) {
	status, err := EncodeShipmentStatus(e.Status)
	if err != nil {
		return TrackingEvent{}, fmt.Errorf("tracking event status: %w", err)
	}
	return TrackingEvent{
		Timestamp:   NanosFromTime(e.Timestamp),
		Status:      status,
		Location:    OptFromPtr(e.Location),
		Description: e.Description,
		UpdatedBy:   e.UpdatedBy.String(),
	}, nil
}

func ToTrackingEvent(e TrackingEvent) (entities.TrackingEvent, error) {
	status, err := DecodeShipmentStatus(e.Status)
	if err != nil {
		return entities.TrackingEvent{}, fmt.Errorf("tracking event status: %w", err)
	}
	return entities.TrackingEvent{
		Timestamp:   TimeFromNanos(e.Timestamp),
		Status:      status,
		Location:    e.Location.Ptr(),
		Description: e.Description,
		UpdatedBy:   entities.Principal(e.UpdatedBy),
	}, nil
}

func FromShipment(s entities.Shipment) (Shipment, error) {
	status, err := EncodeShipmentStatus(s.Status)
	if err != nil {
		return Shipment{}, fmt.Errorf("shipment %s status: %w", s.ID, err)
	}
	payment, err := EncodePaymentStatus(s.PaymentStatus)
	if err != nil {
		return Shipment{}, fmt.Errorf("shipment %s payment status: %w", s.ID, err)
	}

	history := make([]TrackingEvent, 0, len(s.TrackingHistory))
	for _, e := range s.TrackingHistory {
		event, err := FromTrackingEvent(e)
		if err != nil {
			return Shipment{}, fmt.Errorf("shipment %s: %w", s.ID, err)
		}
		history = append(history, event)
	}

	driverID := None[string]()
	if s.DriverID != nil {
		driverID = Some(s.DriverID.String())
	}

	return Shipment{
		ID:                s.ID,
		SenderID:          s.SenderID.String(),
		RecipientName:     s.RecipientName,
		RecipientPhone:    s.RecipientPhone,
		PickupAddress:     FromAddress(s.PickupAddress),
		DeliveryAddress:   FromAddress(s.DeliveryAddress),
		PackageDetails:    FromPackageDetails(s.PackageDetails),
		Status:            status,
		DriverID:          driverID,
		CreatedAt:         NanosFromTime(s.CreatedAt),
		UpdatedAt:         NanosFromTime(s.UpdatedAt),
		EstimatedDelivery: optNanos(s.EstimatedDelivery),
		ActualDelivery:    optNanos(s.ActualDelivery),
		TrackingHistory:   history,
		PaymentStatus:     payment,
		Cost:              s.Cost,
	}, nil
}

func ToShipment(s Shipment) (*entities.Shipment, error) {
	status, err := DecodeShipmentStatus(s.Status)
	if err != nil {
		return nil, fmt.Errorf("shipment %s status: %w", s.ID, err)
	}
	payment, err := DecodePaymentStatus(s.PaymentStatus)
	if err != nil {
		return nil, fmt.Errorf("shipment %s payment status: %w", s.ID, err)
	}

	history := make([]entities.TrackingEvent, 0, len(s.TrackingHistory))
	for _, e := range s.TrackingHistory {
		event, err := ToTrackingEvent(e)
		if err != nil {
			return nil, fmt.Errorf("shipment %s: %w", s.ID, err)
		}
		history = append(history, event)
	}

	var driverID *entities.Principal
	if id := s.DriverID.Ptr(); id != nil {
		p := entities.Principal(*id)
		driverID = &p
	}

	return &entities.Shipment{
		ID:                s.ID,
		SenderID:          entities.Principal(s.SenderID),
		RecipientName:     s.RecipientName,
		RecipientPhone:    s.RecipientPhone,
		PickupAddress:     ToAddress(s.PickupAddress),
		DeliveryAddress:   ToAddress(s.DeliveryAddress),
		PackageDetails:    ToPackageDetails(s.PackageDetails),
		Status:            status,
		DriverID:          driverID,
		CreatedAt:         TimeFromNanos(s.CreatedAt),
		UpdatedAt:         TimeFromNanos(s.UpdatedAt),
		EstimatedDelivery: optTime(s.EstimatedDelivery),
		ActualDelivery:    optTime(s.ActualDelivery),
		TrackingHistory:   history,
		PaymentStatus:     payment,
		Cost:              s.Cost,
	}, nil
}

func FromDriver(d entities.Driver) Driver {
	return Driver{
		ID:              d.ID.String(),
		Name:            d.Name,
		Phone:           d.Phone,
		VehicleInfo:     FromVehicleInfo(d.VehicleInfo),
		CurrentLocation: FromCoordinates(d.CurrentLocation),
		IsAvailable:     d.IsAvailable,
		Rating:          d.Rating,
		TotalDeliveries: d.TotalDeliveries,
		JoinedAt:        NanosFromTime(d.JoinedAt),
	}
}

func ToDriver(d Driver) *entities.Driver {
	return &entities.Driver{
		ID:              entities.Principal(d.ID),
		Name:            d.Name,
		Phone:           d.Phone,
		VehicleInfo:     ToVehicleInfo(d.VehicleInfo),
		CurrentLocation: ToCoordinates(d.CurrentLocation),
		IsAvailable:     d.IsAvailable,
		Rating:          d.Rating,
		TotalDeliveries: d.TotalDeliveries,
		JoinedAt:        TimeFromNanos(d.JoinedAt),
	}
}

func FromReturnRequest(r entities.ReturnRequest) (ReturnRequest, error) {
	status, err := EncodeReturnStatus(r.Status)
	if err != nil {
		return ReturnRequest{}, fmt.Errorf("return request %s status: %w", r.ID, err)
	}
	return ReturnRequest{
		ID:          r.ID,
		ShipmentID:  r.ShipmentID,
		RequesterID: r.RequesterID.String(),
		Reason:      r.Reason,
		Status:      status,
		CreatedAt:   NanosFromTime(r.CreatedAt),
		ProcessedAt: optNanos(r.ProcessedAt),
	}, nil
}

func ToReturnRequest(r ReturnRequest) (*entities.ReturnRequest, error) {
	status, err := DecodeReturnStatus(r.Status)
	if err != nil {
		return nil, fmt.Errorf("return request %s status: %w", r.ID, err)
	}
	return &entities.ReturnRequest{
		ID:          r.ID,
		ShipmentID:  r.ShipmentID,
		RequesterID: entities.Principal(r.RequesterID),
		Reason:      r.Reason,
		Status:      status,
		CreatedAt:   TimeFromNanos(r.CreatedAt),
		ProcessedAt: optTime(r.ProcessedAt),
	}, nil
}

func FromPlatformStats(s entities.PlatformStats) PlatformStats {
	return PlatformStats{
		TotalUsers:         s.TotalUsers,
		TotalShipments:     s.TotalShipments,
		TotalDrivers:       s.TotalDrivers,
		DeliveredShipments: s.DeliveredShipments,
		PendingShipments:   s.PendingShipments,
	}
}

func ToPlatformStats(s PlatformStats) entities.PlatformStats {
	return entities.PlatformStats{
		TotalUsers:         s.TotalUsers,
		TotalShipments:     s.TotalShipments,
		TotalDrivers:       s.TotalDrivers,
		DeliveredShipments: s.DeliveredShipments,
		PendingShipments:   s.PendingShipments,
	}
}
