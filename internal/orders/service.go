package orders

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/medihouse/medihouse-backend/pkg/db/models"
	pkgerrors "github.com/medihouse/medihouse-backend/pkg/errors"
	"github.com/medihouse/medihouse-backend/pkg/logger"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service places customer orders.
type Service interface {
	Place(ctx context.Context, input PlaceInput) (*PlaceResult, error)
}

type service struct {
	tx            txRunner
	repo          Repository
	logg          *logger.Logger
	whatsAppPhone string
}

// NewService builds the order placement service.
func NewService(tx txRunner, repo Repository, logg *logger.Logger, whatsAppPhone string) (Service, error) {
	if tx == nil {
		return nil, fmt.Errorf("tx runner required")
	}
	if repo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	return &service{tx: tx, repo: repo, logg: logg, whatsAppPhone: whatsAppPhone}, nil
}

// Place validates the payload, then processes each line best-effort
// inside one transaction: unknown products and short stock skip the
// line with a customer-facing message, everything else commits.
func (s *service) Place(ctx context.Context, input PlaceInput) (*PlaceResult, error) {
	if err := validatePlaceInput(input); err != nil {
		return nil, err
	}

	var result *PlaceResult
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		order := &models.Order{
			CustomerName:    input.CustomerName,
			CustomerPhone:   input.CustomerPhone,
			CustomerAddress: input.CustomerAddress,
			CustomerEmail:   input.CustomerEmail,
		}
		if err := repo.CreateOrder(ctx, order); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create order")
		}

		products, err := repo.FindProductsByNames(ctx, requestedNames(input.Items))
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load products")
		}

		byNameAndMfr := map[string]*models.Product{}
		byName := map[string]*models.Product{}
		for i := range products {
			p := &products[i]
			key := strings.ToLower(p.Name) + "|" + strings.ToLower(p.Manufacturer)
			if _, ok := byNameAndMfr[key]; !ok {
				byNameAndMfr[key] = p
			}
			nameKey := strings.ToLower(p.Name)
			if _, ok := byName[nameKey]; !ok {
				byName[nameKey] = p
			}
		}

		var (
			lineErrors []string
			items      []models.OrderItem
			processed  []LineInput
			totalItems int
		)
		for _, line := range input.Items {
			key := strings.ToLower(line.Name) + "|" + strings.ToLower(line.Manufacturer)
			product := byNameAndMfr[key]
			if product == nil {
				product = byName[strings.ToLower(line.Name)]
			}
			if product == nil {
				lineErrors = append(lineErrors, fmt.Sprintf("Product not found: %s (%s)", line.Name, line.Manufacturer))
				continue
			}

			if product.StockQuantity < line.Quantity {
				lineErrors = append(lineErrors, insufficientStockMessage(line, product.StockQuantity))
				continue
			}

			newStock := product.StockQuantity - line.Quantity
			if newStock < 0 {
				newStock = 0
			}
			if err := repo.SetProductStock(ctx, product.ID, newStock); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update stock")
			}
			product.StockQuantity = newStock

			items = append(items, models.OrderItem{
				OrderID:             order.ID,
				ProductID:           product.ID,
				ProductName:         product.Name,
				ProductManufacturer: product.Manufacturer,
				Quantity:            line.Quantity,
			})
			processed = append(processed, LineInput{
				Name:         product.Name,
				Manufacturer: product.Manufacturer,
				Quantity:     line.Quantity,
			})
			totalItems += line.Quantity
		}

		if err := repo.CreateOrderItems(ctx, items); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create order items")
		}
		if err := repo.SetOrderTotal(ctx, order.ID, totalItems); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update order total")
		}

		result = &PlaceResult{
			OrderID:      order.ID,
			Processed:    len(items),
			TotalItems:   totalItems,
			Errors:       lineErrors,
			WhatsAppLink: BuildWhatsAppLink(s.whatsAppPhone, order.ID, input, processed),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.logg != nil {
		logCtx := s.logg.WithFields(ctx, map[string]any{
			"order_id":    result.OrderID,
			"processed":   result.Processed,
			"total_items": result.TotalItems,
			"line_errors": len(result.Errors),
		})
		s.logg.Info(logCtx, "order.placed")
	}

	return result, nil
}

func validatePlaceInput(input PlaceInput) error {
	if len(input.Items) == 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "Order must contain at least one item")
	}
	if strings.TrimSpace(input.CustomerName) == "" ||
		strings.TrimSpace(input.CustomerPhone) == "" ||
		strings.TrimSpace(input.CustomerAddress) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "Customer details are required")
	}
	for _, line := range input.Items {
		if strings.TrimSpace(line.Name) == "" {
			return pkgerrors.New(pkgerrors.CodeValidation, "Order items require a product name")
		}
		if line.Quantity <= 0 {
			return pkgerrors.New(pkgerrors.CodeValidation, "Order item quantities must be positive")
		}
	}
	return nil
}

func requestedNames(items []LineInput) []string {
	seen := map[string]struct{}{}
	names := make([]string, 0, len(items))
	for _, item := range items {
		lowered := strings.ToLower(item.Name)
		if _, ok := seen[lowered]; ok {
			continue
		}
		seen[lowered] = struct{}{}
		names = append(names, lowered)
	}
	return names
}

func insufficientStockMessage(line LineInput, available int) string {
	unit := "units"
	if available == 1 {
		unit = "unit"
	}
	return fmt.Sprintf("The quantity you want (%d) for %s is not available. Only %d %s available in stock.",
		line.Quantity, line.Name, available, unit)
}
