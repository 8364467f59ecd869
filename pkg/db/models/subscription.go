package models

import (
	"time"

	"github.com/gymgrid/gymgrid-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

// Subscription represents a member's plan at a center.
type Subscription struct {
	ID         int64                    `gorm:"column:id;primaryKey;autoIncrement"`
	UserID     int64                    `gorm:"column:user_id;not null"`
	User       *User                    `gorm:"foreignKey:UserID"`
	CenterID   int64                    `gorm:"column:center_id;not null"`
	Center     *Center                  `gorm:"foreignKey:CenterID"`
	Plan       string                   `gorm:"column:plan;not null"`
	Price      decimal.Decimal          `gorm:"column:price;type:numeric(10,2);not null"`
	Status     enums.SubscriptionStatus `gorm:"column:status;type:text;not null;default:'active'"`
	StartsAt   time.Time                `gorm:"column:starts_at;not null"`
	EndsAt     *time.Time               `gorm:"column:ends_at"`
	CreatedAt  time.Time                `gorm:"column:created_at;autoCreateTime"`
	LastUpdate *time.Time               `gorm:"column:last_update"`
}
