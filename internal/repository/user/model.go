package user

import "time"

type UserDB struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	UserType  string
	CreatedAt time.Time
	IsActive  bool
}
