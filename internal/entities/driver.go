package entities

import "time"

type Driver struct {
	ID              Principal
	Name            string
	Phone           string
	VehicleInfo     VehicleInfo
	CurrentLocation *Coordinates
	IsAvailable     bool
	Rating          float64
	TotalDeliveries uint32
	JoinedAt        time.Time
}

type VehicleInfo struct {
	VehicleType  string
	LicensePlate string
	Capacity     float64
}

type DriverRegistration struct {
	Name        string
	Phone       string
	VehicleInfo VehicleInfo
}
