package models

import (
	"time"

	"github.com/gymgrid/gymgrid-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

// Order represents a customer purchase across one store.
type Order struct {
	ID         int64             `gorm:"column:id;primaryKey;autoIncrement"`
	UserID     int64             `gorm:"column:user_id;not null"`
	User       *User             `gorm:"foreignKey:UserID"`
	Status     enums.OrderStatus `gorm:"column:status;type:text;not null;default:'pending'"`
	Total      decimal.Decimal   `gorm:"column:total;type:numeric(10,2);not null"`
	Address    *string           `gorm:"column:address"`
	DriverID   *int64            `gorm:"column:driver_id"`
	Driver     *Driver           `gorm:"foreignKey:DriverID"`
	Details    []OrderDetail     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Date       *time.Time        `gorm:"column:date"`
	LastUpdate *time.Time        `gorm:"column:last_update"`
}

// OrderDetail captures one product line inside an order.
type OrderDetail struct {
	ID        int64           `gorm:"column:id;primaryKey;autoIncrement"`
	OrderID   int64           `gorm:"column:order_id;not null"`
	ProductID int64           `gorm:"column:product_id;not null"`
	Product   *Product        `gorm:"foreignKey:ProductID"`
	Quantity  int             `gorm:"column:quantity;not null"`
	UnitPrice decimal.Decimal `gorm:"column:unit_price;type:numeric(10,2);not null"`
}
