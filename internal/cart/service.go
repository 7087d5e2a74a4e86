package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/medihouse/medihouse-backend/pkg/config"
	pkgerrors "github.com/medihouse/medihouse-backend/pkg/errors"
	"github.com/medihouse/medihouse-backend/pkg/redis"
)

type sessionStore interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
	CartKey(sessionID string) string
}

// Service persists session carts in redis. Writes are last-write-wins;
// concurrent browser tabs simply overwrite each other.
type Service interface {
	Get(ctx context.Context, sessionID string) (*Cart, error)
	Add(ctx context.Context, sessionID string, item Item) (*Cart, error)
	SetQuantity(ctx context.Context, sessionID, slug string, quantity int) (*Cart, error)
	Remove(ctx context.Context, sessionID, slug string) (*Cart, error)
	Clear(ctx context.Context, sessionID string) error
}

type service struct {
	store sessionStore
	ttl   time.Duration
}

// NewService builds the cart service.
func NewService(store sessionStore) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("cart store required")
	}
	return &service{store: store, ttl: config.CartTTL}, nil
}

func (s *service) Get(ctx context.Context, sessionID string) (*Cart, error) {
	if err := validateSessionID(sessionID); err != nil {
		return nil, err
	}

	raw, err := s.store.Get(ctx, s.store.CartKey(sessionID))
	if errors.Is(err, redis.Nil) {
		return newCart(), nil
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}

	var cart Cart
	if err := json.Unmarshal([]byte(raw), &cart); err != nil {
		// a corrupt cart is not worth failing the storefront over
		return newCart(), nil
	}
	if cart.Items == nil {
		cart.Items = map[string]Item{}
	}
	return &cart, nil
}

// Add merges the item into the cart, summing quantities for a slug
// already present.
func (s *service) Add(ctx context.Context, sessionID string, item Item) (*Cart, error) {
	if strings.TrimSpace(item.ID) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart item id required")
	}
	if item.Quantity <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart item quantity must be positive")
	}

	cart, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if existing, ok := cart.Items[item.ID]; ok {
		item.Quantity += existing.Quantity
	}
	cart.Items[item.ID] = item

	if err := s.save(ctx, sessionID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// SetQuantity overwrites a line's quantity; zero or less removes it.
func (s *service) SetQuantity(ctx context.Context, sessionID, slug string, quantity int) (*Cart, error) {
	cart, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	item, ok := cart.Items[slug]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "item not in cart")
	}

	if quantity <= 0 {
		delete(cart.Items, slug)
	} else {
		item.Quantity = quantity
		cart.Items[slug] = item
	}

	if err := s.save(ctx, sessionID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *service) Remove(ctx context.Context, sessionID, slug string) (*Cart, error) {
	cart, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	delete(cart.Items, slug)

	if err := s.save(ctx, sessionID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *service) Clear(ctx context.Context, sessionID string) error {
	if err := validateSessionID(sessionID); err != nil {
		return err
	}
	if err := s.store.Del(ctx, s.store.CartKey(sessionID)); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clear cart")
	}
	return nil
}

func (s *service) save(ctx context.Context, sessionID string, cart *Cart) error {
	cart.UpdatedAt = time.Now().UTC()
	payload, err := json.Marshal(cart)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode cart")
	}
	if err := s.store.Set(ctx, s.store.CartKey(sessionID), string(payload), s.ttl); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save cart")
	}
	return nil
}

func validateSessionID(sessionID string) error {
	if strings.TrimSpace(sessionID) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "cart session required")
	}
	return nil
}
