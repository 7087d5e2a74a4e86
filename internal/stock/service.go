package stock

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/multierr"

	pkgerrors "github.com/medihouse/medihouse-backend/pkg/errors"
	"github.com/medihouse/medihouse-backend/pkg/logger"
)

const maxReportedErrors = 10

// UploadStats summarizes one stock upload run.
type UploadStats struct {
	Total          int `json:"total"`
	UniqueProducts int `json:"uniqueProducts"`
	Updated        int `json:"updated"`
	NotFound       int `json:"notFound"`
}

// UploadResult is returned to the admin panel after an upload.
type UploadResult struct {
	Stats  UploadStats `json:"stats"`
	Errors []string    `json:"errors"`
}

// Service ingests stock spreadsheets and applies them to the catalog.
type Service interface {
	ProcessUpload(ctx context.Context, file io.Reader) (*UploadResult, error)
}

type service struct {
	repo Repository
	logg *logger.Logger
}

// NewService builds the stock upload service.
func NewService(repo Repository, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("stock repository required")
	}
	return &service{repo: repo, logg: logg}, nil
}

// ProcessUpload parses the workbook, sums duplicate product rows, and
// sets each matched product's stock to the aggregated absolute value.
// Unmatched names are counted and reported, not fatal.
func (s *service) ProcessUpload(ctx context.Context, file io.Reader) (*UploadResult, error) {
	rows, err := ParseWorkbook(file)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "No valid product data found in the Excel file")
	}

	names, totals := Aggregate(rows)

	result := &UploadResult{
		Stats: UploadStats{
			Total:          len(rows),
			UniqueProducts: len(names),
		},
		Errors: []string{},
	}

	var rowFailures error
	for _, name := range names {
		product, err := s.repo.FindByName(ctx, name)
		if err != nil {
			rowFailures = multierr.Append(rowFailures, fmt.Errorf("resolve %q: %w", name, err))
			result.Errors = appendCapped(result.Errors, fmt.Sprintf("Error updating %q: %v", name, err))
			continue
		}
		if product == nil {
			result.Stats.NotFound++
			result.Errors = appendCapped(result.Errors, fmt.Sprintf("Product not found: %q", name))
			continue
		}
		if err := s.repo.SetStock(ctx, product.ID, totals[name]); err != nil {
			rowFailures = multierr.Append(rowFailures, fmt.Errorf("update %q: %w", name, err))
			result.Errors = appendCapped(result.Errors, fmt.Sprintf("Error updating %q: %v", name, err))
			continue
		}
		result.Stats.Updated++
	}

	if s.logg != nil {
		logCtx := s.logg.WithFields(ctx, map[string]any{
			"rows":            result.Stats.Total,
			"unique_products": result.Stats.UniqueProducts,
			"updated":         result.Stats.Updated,
			"not_found":       result.Stats.NotFound,
		})
		if rowFailures != nil {
			s.logg.Error(logCtx, "stock.upload.partial", rowFailures)
		} else {
			s.logg.Info(logCtx, "stock.upload.applied")
		}
	}

	return result, nil
}

func appendCapped(errors []string, msg string) []string {
	if len(errors) >= maxReportedErrors {
		return errors
	}
	return append(errors, msg)
}
