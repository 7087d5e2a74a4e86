package admin

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/medihouse/medihouse-backend/pkg/db/models"
)

// DashboardStats is the admin landing-page summary.
type DashboardStats struct {
	TotalProducts  int64 `json:"totalProducts"`
	ActiveProducts int64 `json:"activeProducts"`
	LowStock       int64 `json:"lowStock"`
	TotalOrders    int64 `json:"totalOrders"`
	UnitsSold      int64 `json:"unitsSold"`
}

// Repository persists admin users and reads dashboard aggregates.
type Repository interface {
	FindByEmail(ctx context.Context, email string) (*models.AdminUser, error)
	Create(ctx context.Context, user *models.AdminUser) error
	TouchLastLogin(ctx context.Context, id uint, at time.Time) error
	DashboardStats(ctx context.Context, lowStockThreshold int) (*DashboardStats, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// FindByEmail matches the lowercased, trimmed email. Returns (nil, nil)
// when no user exists.
func (r *repository) FindByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))

	var user models.AdminUser
	err := r.db.WithContext(ctx).Where("email = ?", normalized).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *repository) Create(ctx context.Context, user *models.AdminUser) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *repository) TouchLastLogin(ctx context.Context, id uint, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&models.AdminUser{}).
		Where("id = ?", id).
		Update("last_login", at).Error
}

func (r *repository) DashboardStats(ctx context.Context, lowStockThreshold int) (*DashboardStats, error) {
	stats := &DashboardStats{}
	db := r.db.WithContext(ctx)

	if err := db.Model(&models.Product{}).Count(&stats.TotalProducts).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Product{}).Where("is_active = ?", true).Count(&stats.ActiveProducts).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Product{}).
		Where("is_active = ? AND stock_quantity < ?", true, lowStockThreshold).
		Count(&stats.LowStock).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Order{}).Count(&stats.TotalOrders).Error; err != nil {
		return nil, err
	}

	var unitsSold *int64
	if err := db.Model(&models.OrderItem{}).Select("SUM(quantity)").Scan(&unitsSold).Error; err != nil {
		return nil, err
	}
	if unitsSold != nil {
		stats.UnitsSold = *unitsSold
	}

	return stats, nil
}
