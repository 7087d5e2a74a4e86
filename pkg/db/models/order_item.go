package models

import "time"

// OrderItem snapshots the product name and manufacturer at time of sale so
// later catalog edits do not rewrite order history.
type OrderItem struct {
	ID                  uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	OrderID             uint      `gorm:"column:order_id;not null;index" json:"order_id"`
	ProductID           uint      `gorm:"column:product_id;not null" json:"product_id"`
	ProductName         string    `gorm:"column:product_name;not null" json:"product_name"`
	ProductManufacturer string    `gorm:"column:product_manufacturer;not null" json:"product_manufacturer"`
	Quantity            int       `gorm:"column:quantity;not null" json:"quantity"`
	CreatedAt           time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}
