package stock

import (
	"context"

	"gorm.io/gorm"

	"github.com/medihouse/medihouse-backend/pkg/db/models"
)

// Repository resolves products by name and applies absolute stock levels.
type Repository interface {
	FindByName(ctx context.Context, name string) (*models.Product, error)
	SetStock(ctx context.Context, productID uint, stock int) error
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// FindByName matches case-insensitively, preferring an exact name match
// over a substring match. Returns (nil, nil) when nothing matches.
func (r *repository) FindByName(ctx context.Context, name string) (*models.Product, error) {
	var products []models.Product
	err := r.db.WithContext(ctx).Raw(`
SELECT * FROM products
WHERE LOWER(name) = LOWER(?) OR LOWER(name) LIKE LOWER(?)
ORDER BY CASE WHEN LOWER(name) = LOWER(?) THEN 0 ELSE 1 END
LIMIT 1`, name, "%"+name+"%", name).Scan(&products).Error
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, nil
	}
	return &products[0], nil
}

func (r *repository) SetStock(ctx context.Context, productID uint, stock int) error {
	return r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", productID).
		Updates(map[string]any{"stock_quantity": stock, "updated_at": gorm.Expr("CURRENT_TIMESTAMP")}).Error
}
