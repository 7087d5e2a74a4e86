package stock

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/medihouse/medihouse-backend/pkg/db/models"
	pkgerrors "github.com/medihouse/medihouse-backend/pkg/errors"
)

func setupStockTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open("file:stock_test?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	schema := `
CREATE TABLE IF NOT EXISTS products (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  manufacturer TEXT NOT NULL,
  stock_quantity INTEGER NOT NULL DEFAULT 0,
  price NUMERIC,
  category TEXT,
  is_active INTEGER NOT NULL DEFAULT 1,
  created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
  updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);`
	require.NoError(t, conn.Exec(schema).Error)
	require.NoError(t, conn.Exec(`DELETE FROM products`).Error)

	return conn
}

func newStockService(t *testing.T, conn *gorm.DB) Service {
	t.Helper()
	svc, err := NewService(NewRepository(conn), nil)
	require.NoError(t, err)
	return svc
}

func TestProcessUploadSumsDuplicateRows(t *testing.T) {
	conn := setupStockTestDB(t)
	require.NoError(t, conn.Create(&models.Product{Name: "Azithromycin 500", Manufacturer: "Alkem", StockQuantity: 3}).Error)
	svc := newStockService(t, conn)

	file := buildWorkbook(t, [][]any{
		{"Item Code", "Product Name", "Batch", "Stock Qty"},
		{"AZ500", "Azithromycin 500", "B-101", 10},
		{"AZ500", "Azithromycin 500", "B-102", 15},
	})

	result, err := svc.ProcessUpload(context.Background(), file)
	require.NoError(t, err)

	assert.Equal(t, UploadStats{Total: 2, UniqueProducts: 1, Updated: 1, NotFound: 0}, result.Stats)
	assert.Empty(t, result.Errors)

	var product models.Product
	require.NoError(t, conn.Where("name = ?", "Azithromycin 500").First(&product).Error)
	assert.Equal(t, 25, product.StockQuantity)
}

func TestProcessUploadReportsUnknownProducts(t *testing.T) {
	conn := setupStockTestDB(t)
	require.NoError(t, conn.Create(&models.Product{Name: "Paracetamol 500mg", Manufacturer: "Aristo", StockQuantity: 1}).Error)
	svc := newStockService(t, conn)

	file := buildWorkbook(t, [][]any{
		{"Product", "Stock"},
		{"Paracetamol 500mg", 40},
		{"Unknownzole", 5},
	})

	result, err := svc.ProcessUpload(context.Background(), file)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Stats.Updated)
	assert.Equal(t, 1, result.Stats.NotFound)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, `Product not found: "Unknownzole"`, result.Errors[0])
}

func TestProcessUploadMatchesPartialNames(t *testing.T) {
	conn := setupStockTestDB(t)
	require.NoError(t, conn.Create(&models.Product{Name: "Dolo 650 Tablet", Manufacturer: "Micro Labs", StockQuantity: 0}).Error)
	svc := newStockService(t, conn)

	file := buildWorkbook(t, [][]any{
		{"Product", "Stock"},
		{"Dolo 650", 80},
	})

	result, err := svc.ProcessUpload(context.Background(), file)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Stats.Updated)

	var product models.Product
	require.NoError(t, conn.Where("name = ?", "Dolo 650 Tablet").First(&product).Error)
	assert.Equal(t, 80, product.StockQuantity)
}

func TestProcessUploadPrefersExactMatch(t *testing.T) {
	conn := setupStockTestDB(t)
	require.NoError(t, conn.Create(&models.Product{Name: "Dolo 650 Tablet", Manufacturer: "Micro Labs"}).Error)
	require.NoError(t, conn.Create(&models.Product{Name: "Dolo 650", Manufacturer: "Micro Labs"}).Error)
	svc := newStockService(t, conn)

	file := buildWorkbook(t, [][]any{
		{"Product", "Stock"},
		{"dolo 650", 33},
	})

	_, err := svc.ProcessUpload(context.Background(), file)
	require.NoError(t, err)

	var exact models.Product
	require.NoError(t, conn.Where("name = ?", "Dolo 650").First(&exact).Error)
	assert.Equal(t, 33, exact.StockQuantity)

	var partial models.Product
	require.NoError(t, conn.Where("name = ?", "Dolo 650 Tablet").First(&partial).Error)
	assert.Equal(t, 0, partial.StockQuantity)
}

func TestProcessUploadRejectsSheetsWithoutData(t *testing.T) {
	conn := setupStockTestDB(t)
	svc := newStockService(t, conn)

	file := buildWorkbook(t, [][]any{
		{"Product", "Stock"},
	})

	_, err := svc.ProcessUpload(context.Background(), file)
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
	assert.Equal(t, "No valid product data found in the Excel file", typed.Message())
}
