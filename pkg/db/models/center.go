package models

import (
	"time"

	"github.com/lib/pq"
)

// Center represents a physical gym run by a partner.
type Center struct {
	ID         int64          `gorm:"column:id;primaryKey;autoIncrement"`
	Name       string         `gorm:"column:name;not null"`
	Address    string         `gorm:"column:address;not null"`
	Phone      *string        `gorm:"column:phone"`
	Email      *string        `gorm:"column:email"`
	Services   pq.StringArray `gorm:"column:services;type:text[]"`
	Image      []byte         `gorm:"column:image"`
	PartnerID  int64          `gorm:"column:partner_id;not null"`
	Partner    *Partner       `gorm:"foreignKey:PartnerID"`
	Trainers   []Trainer      `gorm:"foreignKey:CenterID"`
	IsActive   bool           `gorm:"column:is_active;not null;default:true"`
	CreatedAt  time.Time      `gorm:"column:created_at;autoCreateTime"`
	LastUpdate *time.Time     `gorm:"column:last_update"`
}
