package orders

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/medihouse/medihouse-backend/pkg/db/models"
)

// Repository defines the persistence operations order placement needs.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	CreateOrder(ctx context.Context, order *models.Order) error
	FindProductsByNames(ctx context.Context, loweredNames []string) ([]models.Product, error)
	SetProductStock(ctx context.Context, productID uint, stock int) error
	CreateOrderItems(ctx context.Context, items []models.OrderItem) error
	SetOrderTotal(ctx context.Context, orderID uint, totalItems int) error
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) CreateOrder(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

// FindProductsByNames loads every product whose lowercased name is in
// the given set, ordered so the first row per name is stable.
func (r *repository) FindProductsByNames(ctx context.Context, loweredNames []string) ([]models.Product, error) {
	if len(loweredNames) == 0 {
		return nil, nil
	}
	normalized := make([]string, 0, len(loweredNames))
	for _, name := range loweredNames {
		normalized = append(normalized, strings.ToLower(name))
	}

	var products []models.Product
	err := r.db.WithContext(ctx).
		Where("LOWER(name) IN ?", normalized).
		Order("name, manufacturer").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *repository) SetProductStock(ctx context.Context, productID uint, stock int) error {
	return r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", productID).
		Updates(map[string]any{"stock_quantity": stock, "updated_at": time.Now()}).Error
}

func (r *repository) CreateOrderItems(ctx context.Context, items []models.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *repository) SetOrderTotal(ctx context.Context, orderID uint, totalItems int) error {
	return r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", orderID).
		Update("total_items", totalItems).Error
}
