package catalog

import (
	"context"

	"gorm.io/gorm"

	"github.com/medihouse/medihouse-backend/pkg/db/models"
)

// Repository reads catalog rows.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListActive returns active products ordered by manufacturer then name.
func (r *Repository) ListActive(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("manufacturer, name").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// ListAll returns every product, active or not, for the admin inventory view.
func (r *Repository) ListAll(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := r.db.WithContext(ctx).
		Order("manufacturer, name").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}
