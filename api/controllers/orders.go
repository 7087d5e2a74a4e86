package controllers

import (
	"net/http"

	"github.com/medihouse/medihouse-backend/api/responses"
	"github.com/medihouse/medihouse-backend/api/validators"
	ordersvc "github.com/medihouse/medihouse-backend/internal/orders"
	pkgerrors "github.com/medihouse/medihouse-backend/pkg/errors"
	"github.com/medihouse/medihouse-backend/pkg/logger"
)

type orderItemRequest struct {
	ID           string `json:"id"`
	Name         string `json:"name" validate:"required"`
	Manufacturer string `json:"manufacturer"`
	Quantity     int    `json:"quantity" validate:"min=1"`
}

type placeOrderRequest struct {
	CustomerName    string             `json:"customerName" validate:"required"`
	CustomerPhone   string             `json:"customerPhone" validate:"required"`
	CustomerAddress string             `json:"customerAddress" validate:"required"`
	CustomerEmail   *string            `json:"customerEmail" validate:"omitempty,email"`
	Items           []orderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// PlaceOrder accepts a customer order and processes it best-effort per line.
func PlaceOrder(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "order service unavailable"))
			return
		}

		var payload placeOrderRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		items := make([]ordersvc.LineInput, 0, len(payload.Items))
		for _, item := range payload.Items {
			items = append(items, ordersvc.LineInput{
				ID:           item.ID,
				Name:         item.Name,
				Manufacturer: item.Manufacturer,
				Quantity:     item.Quantity,
			})
		}

		var email *string
		if payload.CustomerEmail != nil {
			sanitized := validators.SanitizeString(*payload.CustomerEmail, 254)
			email = &sanitized
		}

		result, err := svc.Place(r.Context(), ordersvc.PlaceInput{
			CustomerName:    validators.SanitizeString(payload.CustomerName, 200),
			CustomerPhone:   validators.SanitizeString(payload.CustomerPhone, 30),
			CustomerAddress: validators.SanitizeString(payload.CustomerAddress, 500),
			CustomerEmail:   email,
			Items:           items,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		w.Header().Set("Cache-Control", "no-store")
		responses.WriteSuccess(w, result)
	}
}
