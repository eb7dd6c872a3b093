package routes

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/stan-9/fashion-sales-backend/api/controllers"
	"github.com/stan-9/fashion-sales-backend/api/middleware"
	"github.com/stan-9/fashion-sales-backend/internal/auth"
	categorysvc "github.com/stan-9/fashion-sales-backend/internal/categories"
	customersvc "github.com/stan-9/fashion-sales-backend/internal/customers"
	dashboardsvc "github.com/stan-9/fashion-sales-backend/internal/dashboard"
	insightsvc "github.com/stan-9/fashion-sales-backend/internal/insights"
	ordersvc "github.com/stan-9/fashion-sales-backend/internal/orders"
	productsvc "github.com/stan-9/fashion-sales-backend/internal/products"
	ratingsvc "github.com/stan-9/fashion-sales-backend/internal/ratings"
	"github.com/stan-9/fashion-sales-backend/pkg/auth/session"
	"github.com/stan-9/fashion-sales-backend/pkg/config"
	"github.com/stan-9/fashion-sales-backend/pkg/db"
	"github.com/stan-9/fashion-sales-backend/pkg/logger"
	"github.com/stan-9/fashion-sales-backend/pkg/metrics"
	"github.com/stan-9/fashion-sales-backend/pkg/redis"
)

type sessionManager interface {
	session.AccessSessionChecker
	Rotate(context.Context, string, string) (string, string, error)
	Revoke(context.Context, string) error
}

// Deps bundles everything the route table wires into handlers.
type Deps struct {
	Cfg         *config.Config
	Logg        *logger.Logger
	DB          db.Pinger
	Redis       *redis.Client
	Sessions    sessionManager
	AuthService auth.Service
	Register    auth.RegisterService
	Categories  categorysvc.Service
	Customers   customersvc.Service
	Products    productsvc.Service
	Orders      ordersvc.Service
	Ratings     ratingsvc.Service
	Insights    insightsvc.Service
	Dashboard   dashboardsvc.Service
	HTTPMetrics *metrics.HTTPMetrics
}

func NewRouter(d Deps) http.Handler {
	cfg, logg := d.Cfg, d.Logg

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(d.HTTPMetrics),
		middleware.CORS(),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginUsernameLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, d.DB, d.Redis))
	})

	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(loginPolicy, d.Redis, logg)).Post("/login", controllers.AuthLogin(d.AuthService, logg))
		if !cfg.App.IsProd() {
			r.Post("/register", controllers.AuthRegister(d.Register, logg))
		}
		r.Post("/logout", controllers.AuthLogout(d.Sessions, cfg.JWT, logg))
		r.Post("/refresh", controllers.AuthRefresh(d.Sessions, cfg.JWT, logg))

		r.Get("/products", controllers.ProductList(d.Products, logg))
		r.Get("/products/{productId}", controllers.ProductDetail(d.Products, logg))
		r.Get("/categories", controllers.CategoryList(d.Categories, logg))
		r.Get("/customers", controllers.CustomerList(d.Customers, logg))
		r.Post("/customers", controllers.CustomerCreate(d.Customers, logg))
		r.Get("/orders", controllers.OrderList(d.Orders, logg))
		r.Get("/orders/{orderId}", controllers.OrderDetail(d.Orders, logg))
		r.Post("/orders", controllers.OrderCreate(d.Orders, logg))
		r.Post("/ratings", controllers.RatingSubmit(d.Ratings, logg))
		r.Get("/ratings/{productId}/average", controllers.RatingAverage(d.Ratings, logg))
		r.Get("/insights", controllers.InsightReport(d.Insights, logg))
		r.Get("/dashboard/stats", controllers.DashboardStats(d.Dashboard, logg))

		// Catalog mutations require a valid session.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, d.Sessions, logg))
			r.Post("/products", controllers.ProductCreate(d.Products, logg))
			r.Put("/products/{productId}", controllers.ProductUpdate(d.Products, logg))
			r.Delete("/products/{productId}", controllers.ProductDelete(d.Products, logg))
		})
	})

	return r
}
