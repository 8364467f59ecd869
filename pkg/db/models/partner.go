package models

import "time"

// Partner represents the business entity behind centers and stores.
type Partner struct {
	ID          int64      `gorm:"column:id;primaryKey;autoIncrement"`
	CompanyName string     `gorm:"column:company_name;not null"`
	TaxID       *string    `gorm:"column:tax_id"`
	Logo        []byte     `gorm:"column:logo"`
	UserID      int64      `gorm:"column:user_id;not null"`
	User        *User      `gorm:"foreignKey:UserID"`
	IsActive    bool       `gorm:"column:is_active;not null;default:true"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime"`
	LastUpdate  *time.Time `gorm:"column:last_update"`
}
