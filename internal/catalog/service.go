package catalog

import (
	"context"
	"sort"
	"time"

	"github.com/medihouse/medihouse-backend/pkg/db/models"
	pkgerrors "github.com/medihouse/medihouse-backend/pkg/errors"
)

// Service exposes the storefront and admin catalog reads.
type Service interface {
	GetCatalog(ctx context.Context) (*Catalog, error)
	ListAdminProducts(ctx context.Context) ([]models.Product, error)
}

type catalogRepo interface {
	ListActive(ctx context.Context) ([]models.Product, error)
	ListAll(ctx context.Context) ([]models.Product, error)
}

type service struct {
	repo catalogRepo
	now  func() time.Time
}

// NewService builds the catalog service.
func NewService(repo catalogRepo) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) GetCatalog(ctx context.Context) (*Catalog, error) {
	products, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list products")
	}

	byBrand := map[string][]CatalogProduct{}
	all := make([]CatalogProduct, 0, len(products))
	for _, p := range products {
		item := CatalogProduct{
			ID:           Slugify(p.Manufacturer, p.Name),
			Name:         p.Name,
			Manufacturer: p.Manufacturer,
		}
		all = append(all, item)
		byBrand[p.Manufacturer] = append(byBrand[p.Manufacturer], item)
	}

	brands := make([]string, 0, len(byBrand))
	for brand := range byBrand {
		brands = append(brands, brand)
	}
	sort.Strings(brands)

	return &Catalog{
		GeneratedAt:     s.now().UTC(),
		TotalProducts:   len(all),
		TotalBrands:     len(brands),
		ProductsByBrand: byBrand,
		AllProducts:     all,
		Brands:          brands,
	}, nil
}

func (s *service) ListAdminProducts(ctx context.Context) ([]models.Product, error) {
	products, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list products")
	}
	return products, nil
}
