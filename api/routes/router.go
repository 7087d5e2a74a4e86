package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/medihouse/medihouse-backend/api/controllers"
	"github.com/medihouse/medihouse-backend/api/middleware"
	adminsvc "github.com/medihouse/medihouse-backend/internal/admin"
	cartsvc "github.com/medihouse/medihouse-backend/internal/cart"
	catalogsvc "github.com/medihouse/medihouse-backend/internal/catalog"
	ordersvc "github.com/medihouse/medihouse-backend/internal/orders"
	reportsvc "github.com/medihouse/medihouse-backend/internal/reports"
	stocksvc "github.com/medihouse/medihouse-backend/internal/stock"
	"github.com/medihouse/medihouse-backend/pkg/config"
	"github.com/medihouse/medihouse-backend/pkg/db"
	"github.com/medihouse/medihouse-backend/pkg/logger"
	"github.com/medihouse/medihouse-backend/pkg/metrics"
	"github.com/medihouse/medihouse-backend/pkg/redis"
)

// Services bundles everything the router wires into handlers.
type Services struct {
	Catalog catalogsvc.Service
	Orders  ordersvc.Service
	Stock   stocksvc.Service
	Reports reportsvc.Service
	Admin   adminsvc.Service
	Cart    cartsvc.Service
}

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *redis.Client,
	httpMetrics *metrics.HTTPMetrics,
	gatherer prometheus.Gatherer,
	svcs Services,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)

	var redisP redis.Pinger
	if redisClient != nil {
		redisP = redisClient
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisP))
	})

	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", metrics.Handler(gatherer))
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/products", controllers.GetCatalog(svcs.Catalog, logg))
		r.Post("/orders", controllers.PlaceOrder(svcs.Orders, logg))

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.GetCart(svcs.Cart, logg))
			r.Post("/", controllers.SetCartQuantity(svcs.Cart, logg))
			r.Delete("/", controllers.ClearCart(svcs.Cart, logg))
			r.Post("/items", controllers.AddCartItem(svcs.Cart, logg))
			r.Delete("/items/{id}", controllers.RemoveCartItem(svcs.Cart, logg))
		})

		r.Route("/admin", func(r chi.Router) {
			login := r.With()
			if redisClient != nil {
				login = r.With(middleware.AuthRateLimit(loginPolicy, redisClient, logg))
			}
			login.Post("/login", controllers.AdminLogin(svcs.Admin, logg))
			if !cfg.App.IsProd() {
				r.Post("/setup", controllers.AdminSetup(svcs.Admin, logg))
			}

			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(cfg.JWT, logg))
				r.Get("/products", controllers.AdminListProducts(svcs.Catalog, logg))
				r.Get("/dashboard", controllers.AdminDashboard(svcs.Admin, logg))
				r.Post("/stock-upload", controllers.UploadStock(svcs.Stock, cfg.Upload, logg))
				r.Get("/sales-report", controllers.SalesReport(svcs.Reports, logg))
			})
		})
	})

	return r
}
