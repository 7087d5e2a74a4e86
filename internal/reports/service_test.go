package reports

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	pkgerrors "github.com/medihouse/medihouse-backend/pkg/errors"
)

func setupReportsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open("file:reports_test?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	for _, stmt := range []string{
		`CREATE TABLE IF NOT EXISTS orders (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  customer_name TEXT NOT NULL,
  customer_phone TEXT NOT NULL,
  customer_address TEXT NOT NULL,
  customer_email TEXT,
  total_items INTEGER NOT NULL DEFAULT 0,
  order_date DATETIME DEFAULT CURRENT_TIMESTAMP
)`,
		`CREATE TABLE IF NOT EXISTS order_items (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  order_id INTEGER NOT NULL,
  product_id INTEGER NOT NULL,
  product_name TEXT NOT NULL,
  product_manufacturer TEXT NOT NULL,
  quantity INTEGER NOT NULL,
  created_at DATETIME DEFAULT CURRENT_TIMESTAMP
)`,
		`DELETE FROM order_items`,
		`DELETE FROM orders`,
	} {
		require.NoError(t, conn.Exec(stmt).Error)
	}

	return conn
}

func seedOrder(t *testing.T, conn *gorm.DB, orderDate, customer string, items ...string) {
	t.Helper()
	require.NoError(t, conn.Exec(
		`INSERT INTO orders (customer_name, customer_phone, customer_address, total_items, order_date) VALUES (?, ?, ?, ?, ?)`,
		customer, "9876543210", "12 MG Road", len(items), orderDate,
	).Error)
	var orderID int64
	require.NoError(t, conn.Raw(`SELECT id FROM orders ORDER BY id DESC LIMIT 1`).Scan(&orderID).Error)
	for _, name := range items {
		require.NoError(t, conn.Exec(
			`INSERT INTO order_items (order_id, product_id, product_name, product_manufacturer, quantity) VALUES (?, 1, ?, 'Aristo', 2)`,
			orderID, name,
		).Error)
	}
}

func newReportService(t *testing.T, conn *gorm.DB) Service {
	t.Helper()
	svc, err := NewService(NewRepository(conn), nil, "Asia/Kolkata")
	require.NoError(t, err)
	return svc
}

func TestGenerateWritesWorkbook(t *testing.T) {
	conn := setupReportsTestDB(t)
	seedOrder(t, conn, "2026-06-10 09:30:00", "Asha Rao", "Paracetamol 500mg", "Cetirizine 10mg")
	svc := newReportService(t, conn)

	report, err := svc.Generate(context.Background(), "", "")
	require.NoError(t, err)

	today := time.Now().UTC().Format("2006-01-02")
	assert.Equal(t, "Sales_Report_all_all_"+today+".xlsx", report.Filename)

	f, err := excelize.OpenReader(bytes.NewReader(report.Content))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Sales Report")
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.Equal(t, "Sl No", rows[0][0])
	assert.Equal(t, "Quantity Sold", rows[0][9])
	// items sort by product name within the order
	assert.Equal(t, "Cetirizine 10mg", rows[1][7])
	assert.Equal(t, "Paracetamol 500mg", rows[2][7])
	assert.Equal(t, "Asha Rao", rows[1][3])
}

func TestGenerateAppliesDateRange(t *testing.T) {
	conn := setupReportsTestDB(t)
	seedOrder(t, conn, "2026-05-01 10:00:00", "May Customer", "Item A")
	seedOrder(t, conn, "2026-06-15 23:10:00", "June Customer", "Item B")
	svc := newReportService(t, conn)

	report, err := svc.Generate(context.Background(), "2026-06-01", "2026-06-15")
	require.NoError(t, err)

	assert.Contains(t, report.Filename, "Sales_Report_2026-06-01_2026-06-15_")

	f, err := excelize.OpenReader(bytes.NewReader(report.Content))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Sales Report")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "June Customer", rows[1][3])
}

func TestGenerateNoRowsIsNotFound(t *testing.T) {
	conn := setupReportsTestDB(t)
	svc := newReportService(t, conn)

	_, err := svc.Generate(context.Background(), "2001-01-01", "2001-01-02")
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}
