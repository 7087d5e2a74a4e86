package reports

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"
)

// SalesRow is one order line joined with its order header.
type SalesRow struct {
	OrderID             uint      `gorm:"column:order_id"`
	OrderDate           time.Time `gorm:"column:order_date"`
	CustomerName        string    `gorm:"column:customer_name"`
	CustomerPhone       string    `gorm:"column:customer_phone"`
	CustomerAddress     string    `gorm:"column:customer_address"`
	CustomerEmail       *string   `gorm:"column:customer_email"`
	ProductName         string    `gorm:"column:product_name"`
	ProductManufacturer string    `gorm:"column:product_manufacturer"`
	Quantity            int       `gorm:"column:quantity"`
}

// Repository reads sales data for reporting.
type Repository interface {
	ListSales(ctx context.Context, startDate, endDate string) ([]SalesRow, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// ListSales joins orders with their items, optionally bounded by an
// inclusive date range. The end date is extended to the end of its day.
func (r *repository) ListSales(ctx context.Context, startDate, endDate string) ([]SalesRow, error) {
	query := strings.Builder{}
	query.WriteString(`
SELECT o.id AS order_id,
       o.order_date,
       o.customer_name,
       o.customer_phone,
       o.customer_address,
       o.customer_email,
       oi.product_name,
       oi.product_manufacturer,
       oi.quantity
FROM orders o
INNER JOIN order_items oi ON o.id = oi.order_id
WHERE 1=1`)

	var args []any
	if startDate != "" {
		query.WriteString(" AND o.order_date >= ?")
		args = append(args, startDate)
	}
	if endDate != "" {
		query.WriteString(" AND o.order_date <= ?")
		args = append(args, endDate+" 23:59:59")
	}
	query.WriteString(" ORDER BY o.order_date DESC, o.id DESC, oi.product_name")

	var rows []SalesRow
	if err := r.db.WithContext(ctx).Raw(query.String(), args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
