package wire

type User struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	UserType  Variant `json:"user_type"`
	CreatedAt uint64  `json:"created_at"`
	IsActive  bool    `json:"is_active"`
}

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Address struct {
	Street      string           `json:"street"`
	City        string           `json:"city"`
	State       string           `json:"state"`
	PostalCode  string           `json:"postal_code"`
	Country     string           `json:"country"`
	Coordinates Opt[Coordinates] `json:"coordinates"`
}

type Dimensions struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type PackageDetails struct {
	Description         string      `json:"description"`
	Weight              float64     `json:"weight"`
	Dimensions          Dimensions  `json:"dimensions"`
	Value               float64     `json:"value"`
	Fragile             bool        `json:"fragile"`
	SpecialInstructions Opt[string] `json:"special_instructions"`
}

type TrackingEvent struct {
	Timestamp   uint64      `json:"timestamp"`
	Status      Variant     `json:"status"`
	Location    Opt[string] `json:"location"`
	Description string      `json:"description"`
	UpdatedBy   string      `json:"updated_by"`
}

type Shipment struct {
	ID                string          `json:"id"`
	SenderID          string          `json:"sender_id"`
	RecipientName     string          `json:"recipient_name"`
	RecipientPhone    string          `json:"recipient_phone"`
	PickupAddress     Address         `json:"pickup_address"`
	DeliveryAddress   Address         `json:"delivery_address"`
	PackageDetails    PackageDetails  `json:"package_details"`
	Status            Variant         `json:"status"`
	DriverID          Opt[string]     `json:"driver_id"`
	CreatedAt         uint64          `json:"created_at"`
	UpdatedAt         uint64          `json:"updated_at"`
	EstimatedDelivery Opt[uint64]     `json:"estimated_delivery"`
	ActualDelivery    Opt[uint64]     `json:"actual_delivery"`
	TrackingHistory   []TrackingEvent `json:"tracking_history"`
	PaymentStatus     Variant         `json:"payment_status"`
	Cost              float64         `json:"cost"`
}

type VehicleInfo struct {
	VehicleType  string  `json:"vehicle_type"`
	LicensePlate string  `json:"license_plate"`
	Capacity     float64 `json:"capacity"`
}

type Driver struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Phone           string           `json:"phone"`
	VehicleInfo     VehicleInfo      `json:"vehicle_info"`
	CurrentLocation Opt[Coordinates] `json:"current_location"`
	IsAvailable     bool             `json:"is_available"`
	Rating          float64          `json:"rating"`
	TotalDeliveries uint32           `json:"total_deliveries"`
	JoinedAt        uint64           `json:"joined_at"`
}

type ReturnRequest struct {
	ID          string      `json:"id"`
	ShipmentID  string      `json:"shipment_id"`
	RequesterID string      `json:"requester_id"`
	Reason      string      `json:"reason"`
	Status      Variant     `json:"status"`
	CreatedAt   uint64      `json:"created_at"`
	ProcessedAt Opt[uint64] `json:"processed_at"`
}

type PlatformStats struct {
	TotalUsers         uint32 `json:"total_users"`
	TotalShipments     uint32 `json:"total_shipments"`
	TotalDrivers       uint32 `json:"total_drivers"`
	DeliveredShipments uint32 `json:"delivered_shipments"`
	PendingShipments   uint32 `json:"pending_shipments"`
}
