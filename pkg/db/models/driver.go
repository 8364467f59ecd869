package models

import "time"

// Driver represents a delivery driver available for order assignment.
type Driver struct {
	ID         int64      `gorm:"column:id;primaryKey;autoIncrement"`
	FirstName  string     `gorm:"column:first_name;not null"`
	LastName   string     `gorm:"column:last_name;not null"`
	Phone      *string    `gorm:"column:phone"`
	Vehicle    *string    `gorm:"column:vehicle"`
	Photo      []byte     `gorm:"column:photo"`
	IsActive   bool       `gorm:"column:is_active;not null;default:true"`
	CreatedAt  time.Time  `gorm:"column:created_at;autoCreateTime"`
	LastUpdate *time.Time `gorm:"column:last_update"`
}
