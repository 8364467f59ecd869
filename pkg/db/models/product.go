package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a store listing.
type Product struct {
	ID          int64           `gorm:"column:id;primaryKey;autoIncrement"`
	Name        string          `gorm:"column:name;not null"`
	Description *string         `gorm:"column:description"`
	Price       decimal.Decimal `gorm:"column:price;type:numeric(10,2);not null"`
	Stock       int             `gorm:"column:stock;not null;default:0"`
	Image       []byte          `gorm:"column:image"`
	StoreID     int64           `gorm:"column:store_id;not null"`
	Store       *Store          `gorm:"foreignKey:StoreID"`
	Categories  []Category      `gorm:"many2many:product_categories"`
	IsActive    bool            `gorm:"column:is_active;not null;default:true"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime"`
	LastUpdate  *time.Time      `gorm:"column:last_update"`
}
