package models

import (
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// Trainer represents a coach profile linked to a user account and,
// optionally, to the center that employs them.
type Trainer struct {
	ID          int64           `gorm:"column:id;primaryKey;autoIncrement"`
	UserID      int64           `gorm:"column:user_id;not null;uniqueIndex"`
	User        *User           `gorm:"foreignKey:UserID"`
	Bio         *string         `gorm:"column:bio"`
	Specialties pq.StringArray  `gorm:"column:specialties;type:text[]"`
	HourlyRate  decimal.Decimal `gorm:"column:hourly_rate;type:numeric(10,2);not null"`
	Certificate []byte          `gorm:"column:certificate"`
	CV          []byte          `gorm:"column:cv"`
	VideoDemo   []byte          `gorm:"column:video_demo"`
	CenterID    *int64          `gorm:"column:center_id"`
	Center      *Center         `gorm:"foreignKey:CenterID"`
	IsActive    bool            `gorm:"column:is_active;not null;default:true"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime"`
	LastUpdate  *time.Time      `gorm:"column:last_update"`
}
