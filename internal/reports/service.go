package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	pkgerrors "github.com/medihouse/medihouse-backend/pkg/errors"
	"github.com/medihouse/medihouse-backend/pkg/logger"
)

const sheetName = "Sales Report"

var reportHeader = []any{
	"Sl No", "Order ID", "Order Date", "Customer Name", "Customer Phone",
	"Customer Address", "Customer Email", "Product Name", "Manufacturer", "Quantity Sold",
}

var columnWidths = []float64{8, 10, 18, 20, 15, 30, 25, 35, 20, 12}

// Report is a generated sales workbook ready for download.
type Report struct {
	Filename string
	Content  []byte
}

// Service generates sales report workbooks.
type Service interface {
	Generate(ctx context.Context, startDate, endDate string) (*Report, error)
}

type service struct {
	repo     Repository
	logg     *logger.Logger
	location *time.Location
	now      func() time.Time
}

// NewService builds the report service. Timestamps in the workbook are
// rendered in the given IANA timezone; an unknown name falls back to UTC.
func NewService(repo Repository, logg *logger.Logger, timezone string) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("reports repository required")
	}
	location, err := time.LoadLocation(timezone)
	if err != nil {
		location = time.UTC
		if logg != nil {
			logg.Warn(logg.WithField(context.Background(), "timezone", timezone), "reports.timezone.fallback")
		}
	}
	return &service{repo: repo, logg: logg, location: location, now: time.Now}, nil
}

func (s *service) Generate(ctx context.Context, startDate, endDate string) (*Report, error) {
	rows, err := s.repo.ListSales(ctx, startDate, endDate)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load sales data")
	}
	if len(rows) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "No sales data found for the selected period")
	}

	content, err := s.buildWorkbook(rows)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build workbook")
	}

	return &Report{
		Filename: s.filename(startDate, endDate),
		Content:  content,
	}, nil
}

func (s *service) buildWorkbook(rows []SalesRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, err
	}

	if err := f.SetSheetRow(sheetName, "A1", &reportHeader); err != nil {
		return nil, err
	}
	for col, width := range columnWidths {
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(sheetName, name, name, width); err != nil {
			return nil, err
		}
	}

	for i, row := range rows {
		email := ""
		if row.CustomerEmail != nil {
			email = *row.CustomerEmail
		}
		record := []any{
			i + 1,
			row.OrderID,
			row.OrderDate.In(s.location).Format("02/01/2006, 03:04:05 pm"),
			row.CustomerName,
			row.CustomerPhone,
			row.CustomerAddress,
			email,
			row.ProductName,
			row.ProductManufacturer,
			row.Quantity,
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheetName, cell, &record); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *service) filename(startDate, endDate string) string {
	start := startDate
	if start == "" {
		start = "all"
	}
	end := endDate
	if end == "" {
		end = "all"
	}
	return fmt.Sprintf("Sales_Report_%s_%s_%s.xlsx", start, end, s.now().UTC().Format("2006-01-02"))
}
