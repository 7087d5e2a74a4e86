package models

import "time"

// Order is the checkout header row. It is written once and never mutated
// afterwards; cancellations and refunds are not modeled.
type Order struct {
	ID              uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	CustomerName    string    `gorm:"column:customer_name;not null" json:"customer_name"`
	CustomerPhone   string    `gorm:"column:customer_phone;not null" json:"customer_phone"`
	CustomerAddress string    `gorm:"column:customer_address;not null" json:"customer_address"`
	CustomerEmail   *string   `gorm:"column:customer_email" json:"customer_email,omitempty"`
	TotalItems      int       `gorm:"column:total_items;not null;default:0" json:"total_items"`
	OrderDate       time.Time `gorm:"column:order_date;autoCreateTime" json:"order_date"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}
