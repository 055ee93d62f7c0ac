package shipment

import "time"

type ShipmentDB struct {
	ID                string
	SenderID          string
	RecipientName     string
	RecipientPhone    string
	PickupAddress     AddressDB
	DeliveryAddress   AddressDB
	PackageDetails    PackageDetailsDB
	Status            string
	DriverID          *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
	EstimatedDelivery *time.Time
	ActualDelivery    *time.Time
	PaymentStatus     string
	Cost              float64
}

type ShipmentModifyDB struct {
	ID             string
	Status         *string
	DriverID       *string
	UpdatedAt      *time.Time
	ActualDelivery *time.Time
	PaymentStatus  *string
}

// AddressDB и PackageDetailsDB хранятся в jsonb колонках.
type AddressDB struct {
	Street      string         `json:"street"`
	City        string         `json:"city"`
	State       string         `json:"state"`
	PostalCode  string         `json:"postal_code"`
	Country     string         `json:"country"`
	Coordinates *CoordinatesDB `json:"coordinates,omitempty"`
}

type CoordinatesDB struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type PackageDetailsDB struct {
	Description         string       `json:"description"`
	Weight              float64      `json:"weight"`
	Dimensions          DimensionsDB `json:"dimensions"`
	Value               float64      `json:"value"`
	Fragile             bool         `json:"fragile"`
	SpecialInstructions *string      `json:"special_instructions,omitempty"`
}

type DimensionsDB struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type TrackingEventDB struct {
	ShipmentID  string
	OccurredAt  time.Time
	Status      string
	Location    *string
	Description string
	UpdatedBy   string
}
