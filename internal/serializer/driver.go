package serializer

import "github.com/gymgrid/gymgrid-backend/pkg/db/models"

// DriverView is the wire representation of a delivery driver.
type DriverView struct {
	ID         int64   `json:"id"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	Phone      *string `json:"phone"`
	Vehicle    *string `json:"vehicle"`
	Photo      []byte  `json:"photo"`
	IsActive   bool    `json:"is_active"`
	CreatedAt  string  `json:"created_at"`
	LastUpdate *string `json:"last_update"`
}

// Driver flattens a driver entity. Drivers reference no other aggregates.
func Driver(d *models.Driver) (*DriverView, error) {
	if d == nil {
		return nil, errNilEntity("driver")
	}
	return &DriverView{
		ID:         d.ID,
		FirstName:  d.FirstName,
		LastName:   d.LastName,
		Phone:      d.Phone,
		Vehicle:    d.Vehicle,
		Photo:      d.Photo,
		IsActive:   d.IsActive,
		CreatedAt:  formatTime(d.CreatedAt),
		LastUpdate: timeString(d.LastUpdate),
	}, nil
}
