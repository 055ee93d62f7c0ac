package entities

type PlatformStats struct {
	TotalUsers         uint32
	TotalShipments     uint32
	TotalDrivers       uint32
	DeliveredShipments uint32
	PendingShipments   uint32
}
