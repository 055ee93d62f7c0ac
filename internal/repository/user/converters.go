package user

import "shipping/internal/entities"

func ToDomain(u *UserDB) *entities.User {
	if u == nil {
		return nil
	}
	return &entities.User{
		ID:        entities.Principal(u.ID),
		UserType:  entities.UserType(u.UserType),
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt,
		IsActive:  u.IsActive,
	}
}

func FromDomain(u *entities.User) *UserDB {
	if u == nil {
		return nil
	}
	return &UserDB{
		ID:        u.ID.String(),
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		UserType:  u.UserType.String(),
		CreatedAt: u.CreatedAt,
		IsActive:  u.IsActive,
	}
}
