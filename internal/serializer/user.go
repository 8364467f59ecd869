package serializer

import (
	"github.com/gymgrid/gymgrid-backend/pkg/db/models"
	"github.com/gymgrid/gymgrid-backend/pkg/enums"
)

// UserView is the wire representation of a user. Field order is fixed.
type UserView struct {
	ID         int64      `json:"id"`
	Email      string     `json:"email"`
	FirstName  string     `json:"first_name"`
	LastName   string     `json:"last_name"`
	Phone      *string    `json:"phone"`
	Role       enums.Role `json:"role"`
	Photo      []byte     `json:"photo"`
	IsActive   bool       `json:"is_active"`
	LastLogin  *string    `json:"last_login"`
	CreatedAt  string     `json:"created_at"`
	LastUpdate *string    `json:"last_update"`
}

// User flattens a user entity. The password hash never leaves this layer.
func User(u *models.User) (*UserView, error) {
	if u == nil {
		return nil, errNilEntity("user")
	}
	return &UserView{
		ID:         u.ID,
		Email:      u.Email,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Phone:      u.Phone,
		Role:       u.Role,
		Photo:      u.Photo,
		IsActive:   u.IsActive,
		LastLogin:  timeString(u.LastLoginAt),
		CreatedAt:  formatTime(u.CreatedAt),
		LastUpdate: timeString(u.LastUpdate),
	}, nil
}
