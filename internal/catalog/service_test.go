package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medihouse/medihouse-backend/pkg/db/models"
	pkgerrors "github.com/medihouse/medihouse-backend/pkg/errors"
)

type stubCatalogRepo struct {
	active []models.Product
	all    []models.Product
	err    error
}

func (s *stubCatalogRepo) ListActive(ctx context.Context) ([]models.Product, error) {
	return s.active, s.err
}

func (s *stubCatalogRepo) ListAll(ctx context.Context) ([]models.Product, error) {
	return s.all, s.err
}

func TestGetCatalogGroupsByManufacturer(t *testing.T) {
	repo := &stubCatalogRepo{active: []models.Product{
		{ID: 1, Name: "Amoxicillin 250mg", Manufacturer: "Alkem"},
		{ID: 2, Name: "Paracetamol 500mg", Manufacturer: "Aristo"},
		{ID: 3, Name: "Pantoprazole 40mg", Manufacturer: "Aristo"},
	}}
	svc := NewService(repo)

	catalog, err := svc.GetCatalog(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, catalog.TotalProducts)
	assert.Equal(t, 2, catalog.TotalBrands)
	assert.Equal(t, []string{"Alkem", "Aristo"}, catalog.Brands)
	require.Len(t, catalog.ProductsByBrand["Aristo"], 2)
	assert.Equal(t, "aristo-paracetamol-500mg", catalog.ProductsByBrand["Aristo"][0].ID)
	assert.Len(t, catalog.AllProducts, 3)
	assert.False(t, catalog.GeneratedAt.IsZero())
}

func TestGetCatalogEmpty(t *testing.T) {
	svc := NewService(&stubCatalogRepo{})

	catalog, err := svc.GetCatalog(context.Background())
	require.NoError(t, err)

	assert.Zero(t, catalog.TotalProducts)
	assert.Empty(t, catalog.AllProducts)
	assert.Empty(t, catalog.Brands)
}

func TestGetCatalogWrapsRepoError(t *testing.T) {
	svc := NewService(&stubCatalogRepo{err: errors.New("conn refused")})

	_, err := svc.GetCatalog(context.Background())
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeDependency, typed.Code())
}
