package driver

import "time"

type DriverDB struct {
	ID              string
	Name            string
	Phone           string
	VehicleType     string
	LicensePlate    string
	Capacity        float64
	Latitude        *float64
	Longitude       *float64
	IsAvailable     bool
	Rating          float64
	TotalDeliveries int32
	JoinedAt        time.Time
}
