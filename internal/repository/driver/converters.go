package driver

import "shipping/internal/entities"

func ToDomain(d *DriverDB) *entities.Driver {
	if d == nil {
		return nil
	}

	var location *entities.Coordinates
	if d.Latitude != nil && d.Longitude != nil {
		location = &entities.Coordinates{Latitude: *d.Latitude, Longitude: *d.Longitude}
	}

	return &entities.Driver{
		ID:    entities.Principal(d.ID),
		Name:  d.Name,
		Phone: d.Phone,
		VehicleInfo: entities.VehicleInfo{
			VehicleType:  d.VehicleType,
			LicensePlate: d.LicensePlate,
			Capacity:     d.Capacity,
		},
		CurrentLocation: location,
		IsAvailable:     d.IsAvailable,
		Rating:          d.Rating,
		TotalDeliveries: uint32(d.TotalDeliveries),
		JoinedAt:        d.JoinedAt,
	}
}

func FromDomain(d *entities.Driver) *DriverDB {
	if d == nil {
		return nil
	}

	model := &DriverDB{
		ID:              d.ID.String(),
		Name:            d.Name,
		Phone:           d.Phone,
		VehicleType:     d.VehicleInfo.VehicleType,
		LicensePlate:    d.VehicleInfo.LicensePlate,
		Capacity:        d.VehicleInfo.Capacity,
		IsAvailable:     d.IsAvailable,
		Rating:          d.Rating,
		TotalDeliveries: int32(d.TotalDeliveries),
		JoinedAt:        d.JoinedAt,
	}
	if d.CurrentLocation != nil {
		model.Latitude = &d.CurrentLocation.Latitude
		model.Longitude = &d.CurrentLocation.Longitude
	}
	return model
}

func ToDomainList(models []DriverDB) []entities.Driver {
	drivers := make([]entities.Driver, 0, len(models))
	for i := range models {
		drivers = append(drivers, *ToDomain(&models[i]))
	}
	return drivers
}
