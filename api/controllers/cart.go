package controllers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/medihouse/medihouse-backend/api/responses"
	"github.com/medihouse/medihouse-backend/api/validators"
	cartsvc "github.com/medihouse/medihouse-backend/internal/cart"
	"github.com/medihouse/medihouse-backend/pkg/config"
	pkgerrors "github.com/medihouse/medihouse-backend/pkg/errors"
	"github.com/medihouse/medihouse-backend/pkg/logger"
)

const cartCookieName = "mh_cart"

type addCartItemRequest struct {
	ID           string `json:"id" validate:"required"`
	Name         string `json:"name" validate:"required"`
	Manufacturer string `json:"manufacturer"`
	Quantity     int    `json:"quantity" validate:"min=1"`
}

type setCartQuantityRequest struct {
	ID       string `json:"id" validate:"required"`
	Quantity int    `json:"quantity"`
}

type cartView struct {
	Items      []cartsvc.Item `json:"items"`
	TotalItems int            `json:"totalItems"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}

func viewOf(cart *cartsvc.Cart) cartView {
	return cartView{
		Items:      cart.List(),
		TotalItems: cart.TotalItems(),
		UpdatedAt:  cart.UpdatedAt,
	}
}

// cartSession reads the session cookie, minting one when absent.
func cartSession(w http.ResponseWriter, r *http.Request) string {
	if cookie, err := r.Cookie(cartCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	sessionID := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     cartCookieName,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   int(config.CartTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return sessionID
}

// GetCart returns the current session's cart.
func GetCart(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		cart, err := svc.Get(r.Context(), cartSession(w, r))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, viewOf(cart))
	}
}

// AddCartItem adds a line to the cart, merging quantities for known slugs.
func AddCartItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		var payload addCartItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		cart, err := svc.Add(r.Context(), cartSession(w, r), cartsvc.Item{
			ID:           payload.ID,
			Name:         payload.Name,
			Manufacturer: payload.Manufacturer,
			Quantity:     payload.Quantity,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, viewOf(cart))
	}
}

// SetCartQuantity overwrites a line's quantity; zero removes the line.
func SetCartQuantity(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		var payload setCartQuantityRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		cart, err := svc.SetQuantity(r.Context(), cartSession(w, r), payload.ID, payload.Quantity)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, viewOf(cart))
	}
}

// RemoveCartItem deletes one line by slug.
func RemoveCartItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		slug := chi.URLParam(r, "id")
		if slug == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "item id required"))
			return
		}

		cart, err := svc.Remove(r.Context(), cartSession(w, r), slug)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, viewOf(cart))
	}
}

// ClearCart empties the session cart.
func ClearCart(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		if err := svc.Clear(r.Context(), cartSession(w, r)); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]bool{"cleared": true})
	}
}
