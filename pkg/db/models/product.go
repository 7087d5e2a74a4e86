package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog row. Stock is an absolute on-hand count; it is
// decremented by order placement and overwritten by stock uploads.
type Product struct {
	ID            uint             `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name          string           `gorm:"column:name;not null" json:"name"`
	Manufacturer  string           `gorm:"column:manufacturer;not null" json:"manufacturer"`
	StockQuantity int              `gorm:"column:stock_quantity;not null;default:0" json:"stock_quantity"`
	Price         *decimal.Decimal `gorm:"column:price;type:numeric(10,2)" json:"price,omitempty"`
	Category      *string          `gorm:"column:category" json:"category,omitempty"`
	IsActive      bool             `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedAt     time.Time        `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time        `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}
