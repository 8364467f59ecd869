package models

import "time"

// Store represents a partner's retail storefront.
type Store struct {
	ID          int64      `gorm:"column:id;primaryKey;autoIncrement"`
	Name        string     `gorm:"column:name;not null"`
	Description *string    `gorm:"column:description"`
	Logo        []byte     `gorm:"column:logo"`
	PartnerID   int64      `gorm:"column:partner_id;not null"`
	Partner     *Partner   `gorm:"foreignKey:PartnerID"`
	IsActive    bool       `gorm:"column:is_active;not null;default:true"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime"`
	LastUpdate  *time.Time `gorm:"column:last_update"`
}
