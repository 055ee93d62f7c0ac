package entities

import "time"

type Shipment struct {
	ID                string
	SenderID          Principal
	RecipientName     string
	RecipientPhone    string
	PickupAddress     Address
	DeliveryAddress   Address
	PackageDetails    PackageDetails
	Status            ShipmentStatus
	DriverID          *Principal
	CreatedAt         time.Time
	UpdatedAt         time.Time
	EstimatedDelivery *time.Time
	ActualDelivery    *time.Time
	TrackingHistory   []TrackingEvent
	PaymentStatus     PaymentStatus
	Cost              float64
}

type Address struct {
	Street      string
	City        string
	State       string
	PostalCode  string
	Country     string
	Coordinates *Coordinates
}

type Coordinates struct {
	Latitude  float64
	Longitude float64
}

type PackageDetails struct {
	Description         string
	Weight              float64
	Dimensions          Dimensions
	Value               float64
	Fragile             bool
	SpecialInstructions *string
}

type Dimensions struct {
	Length float64
	Width  float64
	Height float64
}

type TrackingEvent struct {
	Timestamp   time.Time
	Status      ShipmentStatus
	Location    *string
	Description string
	UpdatedBy   Principal
}

type ShipmentStatus string

const (
	ShipmentCreated         ShipmentStatus = "Created"
	ShipmentPickupScheduled ShipmentStatus = "PickupScheduled"
	ShipmentPickedUp        ShipmentStatus = "PickedUp"
	ShipmentInTransit       ShipmentStatus = "InTransit"
	ShipmentOutForDelivery  ShipmentStatus = "OutForDelivery"
	ShipmentDelivered       ShipmentStatus = "Delivered"
	ShipmentFailed          ShipmentStatus = "Failed"
	ShipmentReturned        ShipmentStatus = "Returned"
	ShipmentCancelled       ShipmentStatus = "Cancelled"
)

func (s ShipmentStatus) String() string {
	return string(s)
}

func (s ShipmentStatus) Valid() bool {
	switch s {
	case ShipmentCreated, ShipmentPickupScheduled, ShipmentPickedUp, ShipmentInTransit,
		ShipmentOutForDelivery, ShipmentDelivered, ShipmentFailed, ShipmentReturned, ShipmentCancelled:
		return true
	default:
		return false
	}
}

// IsPending посылка еще в работе: не доставлена и не отменена.
func (s ShipmentStatus) IsPending() bool {
	return s != ShipmentDelivered && s != ShipmentCancelled
}

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "Pending"
	PaymentPaid     PaymentStatus = "Paid"
	PaymentFailed   PaymentStatus = "Failed"
	PaymentRefunded PaymentStatus = "Refunded"
)

func (s PaymentStatus) String() string {
	return string(s)
}

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentFailed, PaymentRefunded:
		return true
	default:
		return false
	}
}

type ShipmentCreate struct {
	RecipientName   string
	RecipientPhone  string
	PickupAddress   Address
	DeliveryAddress Address
	PackageDetails  PackageDetails
}

type ShipmentStatusUpdate struct {
	ShipmentID  string
	Status      ShipmentStatus
	Location    *string
	Description string
}

// ShipmentStatusChanged событие смены статуса посылки.
type ShipmentStatusChanged struct {
	EventID    string
	ShipmentID string
	Status     ShipmentStatus
	UpdatedBy  Principal
	OccurredAt time.Time
}

// ShipmentModify частичное обновление: nil поля не меняются.
type ShipmentModify struct {
	ID             string
	Status         *ShipmentStatus
	DriverID       *Principal
	UpdatedAt      *time.Time
	ActualDelivery *time.Time
	PaymentStatus  *PaymentStatus
}
