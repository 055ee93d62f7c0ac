package entities

import "time"

type User struct {
	ID        Principal
	UserType  UserType
	Name      string
	Email     string
	Phone     string
	CreatedAt time.Time
	IsActive  bool
}

type UserType string

const (
	UserCustomer   UserType = "Customer"
	UserDriver     UserType = "Driver"
	UserStoreOwner UserType = "StoreOwner"
	UserAdmin      UserType = "Admin"
)

func (t UserType) String() string {
	return string(t)
}

func (t UserType) Valid() bool {
	switch t {
	case UserCustomer, UserDriver, UserStoreOwner, UserAdmin:
		return true
	default:
		return false
	}
}

// CanCreateShipments только клиенты и владельцы магазинов отправляют посылки.
func (t UserType) CanCreateShipments() bool {
	return t == UserCustomer || t == UserStoreOwner
}

type UserRegistration struct {
	UserType UserType
	Name     string
	Email    string
	Phone    string
}
