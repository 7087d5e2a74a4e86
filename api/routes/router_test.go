package routes

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adminsvc "github.com/medihouse/medihouse-backend/internal/admin"
	cartsvc "github.com/medihouse/medihouse-backend/internal/cart"
	catalogsvc "github.com/medihouse/medihouse-backend/internal/catalog"
	ordersvc "github.com/medihouse/medihouse-backend/internal/orders"
	reportsvc "github.com/medihouse/medihouse-backend/internal/reports"
	stocksvc "github.com/medihouse/medihouse-backend/internal/stock"
	pkgAuth "github.com/medihouse/medihouse-backend/pkg/auth"
	"github.com/medihouse/medihouse-backend/pkg/config"
	"github.com/medihouse/medihouse-backend/pkg/db/models"
)

type stubCatalogService struct{}

func (stubCatalogService) GetCatalog(ctx context.Context) (*catalogsvc.Catalog, error) {
	return &catalogsvc.Catalog{
		GeneratedAt:     time.Now(),
		ProductsByBrand: map[string][]catalogsvc.CatalogProduct{},
		AllProducts:     []catalogsvc.CatalogProduct{},
		Brands:          []string{},
	}, nil
}

func (stubCatalogService) ListAdminProducts(ctx context.Context) ([]models.Product, error) {
	return nil, nil
}

type stubOrdersService struct{}

func (stubOrdersService) Place(ctx context.Context, input ordersvc.PlaceInput) (*ordersvc.PlaceResult, error) {
	return &ordersvc.PlaceResult{OrderID: 1, Processed: len(input.Items)}, nil
}

type stubStockSvc struct{}

func (stubStockSvc) ProcessUpload(ctx context.Context, file io.Reader) (*stocksvc.UploadResult, error) {
	return &stocksvc.UploadResult{Errors: []string{}}, nil
}

type stubReportsService struct{}

func (stubReportsService) Generate(ctx context.Context, startDate, endDate string) (*reportsvc.Report, error) {
	return &reportsvc.Report{Filename: "report.xlsx", Content: []byte{1}}, nil
}

type stubAdminService struct{}

func (stubAdminService) Login(ctx context.Context, email, password string) (*adminsvc.LoginResult, error) {
	return &adminsvc.LoginResult{Token: "token"}, nil
}

func (stubAdminService) Setup(ctx context.Context, input adminsvc.SetupInput) (*adminsvc.Profile, error) {
	return &adminsvc.Profile{ID: 1}, nil
}

func (stubAdminService) Dashboard(ctx context.Context) (*adminsvc.DashboardStats, error) {
	return &adminsvc.DashboardStats{}, nil
}

type stubCartRoutes struct{}

func (stubCartRoutes) Get(ctx context.Context, sessionID string) (*cartsvc.Cart, error) {
	return &cartsvc.Cart{Items: map[string]cartsvc.Item{}}, nil
}

func (stubCartRoutes) Add(ctx context.Context, sessionID string, item cartsvc.Item) (*cartsvc.Cart, error) {
	return &cartsvc.Cart{Items: map[string]cartsvc.Item{}}, nil
}

func (stubCartRoutes) SetQuantity(ctx context.Context, sessionID, slug string, quantity int) (*cartsvc.Cart, error) {
	return &cartsvc.Cart{Items: map[string]cartsvc.Item{}}, nil
}

func (stubCartRoutes) Remove(ctx context.Context, sessionID, slug string) (*cartsvc.Cart, error) {
	return &cartsvc.Cart{Items: map[string]cartsvc.Item{}}, nil
}

func (stubCartRoutes) Clear(ctx context.Context, sessionID string) error {
	return nil
}

func testRouterConfig(env string) *config.Config {
	return &config.Config{
		App: config.AppConfig{Env: env, Port: "8080"},
		JWT: config.JWTConfig{
			Secret:            "router-test-secret-router-test",
			Issuer:            "medihouse-test",
			ExpirationMinutes: 30,
		},
		Upload: config.UploadConfig{MaxUploadMB: 10},
	}
}

func newTestRouter(env string) http.Handler {
	return NewRouter(testRouterConfig(env), nil, nil, nil, nil, nil, Services{
		Catalog: stubCatalogService{},
		Orders:  stubOrdersService{},
		Stock:   stubStockSvc{},
		Reports: stubReportsService{},
		Admin:   stubAdminService{},
		Cart:    stubCartRoutes{},
	})
}

func TestPublicRoutes(t *testing.T) {
	router := newTestRouter(config.AppEnvDev)

	for _, tc := range []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{http.MethodGet, "/health/live", "", http.StatusOK},
		{http.MethodGet, "/api/products", "", http.StatusOK},
		{http.MethodGet, "/api/cart", "", http.StatusOK},
		{http.MethodPost, "/api/orders", `{"customerName":"A","customerPhone":"1","customerAddress":"x","items":[{"name":"P","quantity":1}]}`, http.StatusOK},
	} {
		req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equalf(t, tc.want, rec.Code, "%s %s", tc.method, tc.path)
	}
}

func TestAdminRoutesRequireAuth(t *testing.T) {
	router := newTestRouter(config.AppEnvDev)

	for _, path := range []string{
		"/api/admin/products",
		"/api/admin/dashboard",
		"/api/admin/sales-report",
	} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equalf(t, http.StatusUnauthorized, rec.Code, "GET %s", path)
	}
}

func TestAdminRoutesAcceptBearerToken(t *testing.T) {
	cfg := testRouterConfig(config.AppEnvDev)
	router := newTestRouter(config.AppEnvDev)

	token, err := pkgAuth.MintAccessToken(cfg.JWT, time.Now(), pkgAuth.AccessTokenPayload{
		AdminID: 3,
		Email:   "admin@medihouse.com",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSetupRouteHiddenInProduction(t *testing.T) {
	devRouter := newTestRouter(config.AppEnvDev)
	prodRouter := newTestRouter(config.AppEnvProd)

	body := `{"password":"bootstrap-password"}`

	req := httptest.NewRequest(http.MethodPost, "/api/admin/setup", strings.NewReader(body))
	rec := httptest.NewRecorder()
	devRouter.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusCreated, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/admin/setup", strings.NewReader(body))
	rec = httptest.NewRecorder()
	prodRouter.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
