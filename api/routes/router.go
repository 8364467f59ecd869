package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/gymgrid/gymgrid-backend/api/controllers"
	"github.com/gymgrid/gymgrid-backend/api/middleware"
	authsvc "github.com/gymgrid/gymgrid-backend/internal/auth"
	"github.com/gymgrid/gymgrid-backend/internal/categories"
	"github.com/gymgrid/gymgrid-backend/internal/centers"
	"github.com/gymgrid/gymgrid-backend/internal/drivers"
	"github.com/gymgrid/gymgrid-backend/internal/orders"
	"github.com/gymgrid/gymgrid-backend/internal/partners"
	"github.com/gymgrid/gymgrid-backend/internal/products"
	"github.com/gymgrid/gymgrid-backend/internal/stores"
	"github.com/gymgrid/gymgrid-backend/internal/subscriptions"
	"github.com/gymgrid/gymgrid-backend/internal/trainers"
	"github.com/gymgrid/gymgrid-backend/internal/users"
	"github.com/gymgrid/gymgrid-backend/pkg/config"
	"github.com/gymgrid/gymgrid-backend/pkg/enums"
	"github.com/gymgrid/gymgrid-backend/pkg/logger"
	"github.com/gymgrid/gymgrid-backend/pkg/metrics"
	"github.com/gymgrid/gymgrid-backend/pkg/redis"
)

// RouterParams bundles everything the route table needs.
type RouterParams struct {
	Config      *config.Config
	Logger      *logger.Logger
	DBPinger    controllers.Pinger
	Redis       *redis.Client
	Resolver    middleware.PrincipalResolver
	GateMetrics *metrics.GateMetrics
	Registry    *prometheus.Registry

	AuthService authsvc.Service

	Users         *users.Repository
	Products      *products.Repository
	Orders        *orders.Repository
	Stores        *stores.Repository
	Trainers      *trainers.Repository
	Centers       *centers.Repository
	Partners      *partners.Repository
	Categories    *categories.Repository
	Drivers       *drivers.Repository
	Subscriptions *subscriptions.Repository
}

// NewRouter assembles the full route table. The gate runs on every request
// and only attaches identity; rejection happens per route group via
// RequireAuth/RequireRole.
func NewRouter(p RouterParams) http.Handler {
	cfg := p.Config
	logg := p.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
		middleware.Gate(middleware.GateParams{
			JWTConfig: cfg.JWT,
			Resolver:  p.Resolver,
			Metrics:   p.GateMetrics,
			Logger:    logg,
		}),
	)

	r.Route("/healthz", func(r chi.Router) {
		r.Get("/", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, p.DBPinger, p.Redis))
	})
	r.Method(http.MethodGet, "/metrics", metrics.Handler(p.Registry))

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterEmailLimit,
	)

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(loginPolicy, p.Redis, logg)).
			Post("/login", controllers.Login(p.AuthService, logg))
		r.With(middleware.AuthRateLimit(registerPolicy, p.Redis, logg)).
			Post("/register", controllers.Register(p.AuthService, logg))
		r.With(middleware.AuthRateLimit(loginPolicy, p.Redis, logg)).
			Post("/password-reset", controllers.RequestPasswordReset(p.AuthService, logg))
		r.Post("/password-reset/confirm", controllers.ResetPassword(p.AuthService, logg))
	})

	// Public catalog. Anonymous reads are fine here; the gate still attaches
	// identity when a valid token is present.
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ListProducts(p.Products, logg))
			r.Get("/{productId}", controllers.GetProduct(p.Products, logg))
		})
		r.Route("/stores", func(r chi.Router) {
			r.Get("/", controllers.ListStores(p.Stores, logg))
			r.Get("/{storeId}", controllers.GetStore(p.Stores, logg))
			r.Get("/{storeId}/products", controllers.ListStoreProducts(p.Stores, p.Products, logg))
		})
		r.Route("/centers", func(r chi.Router) {
			r.Get("/", controllers.ListCenters(p.Centers, logg))
			r.Get("/{centerId}", controllers.GetCenter(p.Centers, logg))
			r.With(middleware.RequireAnyRole([]string{string(enums.RoleCenter), string(enums.RoleAdmin)}, logg)).
				Get("/{centerId}/subscriptions", controllers.ListCenterSubscriptions(p.Centers, p.Subscriptions, logg))
		})
		r.Route("/trainers", func(r chi.Router) {
			r.Get("/", controllers.ListTrainers(p.Trainers, logg))
			r.Get("/{trainerId}", controllers.GetTrainer(p.Trainers, logg))
		})
		r.Route("/categories", func(r chi.Router) {
			r.Get("/", controllers.ListCategories(p.Categories, logg))
			r.Get("/{categoryId}", controllers.GetCategory(p.Categories, logg))
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth(logg))
			r.Get("/me", controllers.Me(p.Users, logg))
			r.Route("/orders", func(r chi.Router) {
				r.Get("/", controllers.ListMyOrders(p.Orders, logg))
				r.Get("/{orderId}", controllers.GetOrder(p.Orders, logg))
			})
			r.Route("/subscriptions", func(r chi.Router) {
				r.Get("/", controllers.ListMySubscriptions(p.Subscriptions, logg))
				r.Post("/", controllers.CreateSubscription(p.Subscriptions, p.Centers, logg))
				r.Get("/{subscriptionId}", controllers.GetSubscription(p.Subscriptions, logg))
				r.Post("/{subscriptionId}/cancel", controllers.CancelSubscription(p.Subscriptions, logg))
			})
		})

		r.With(middleware.RequireRole(string(enums.RoleTrainer), logg)).
			Get("/trainer/profile", controllers.MyTrainerProfile(p.Trainers, logg))
		r.With(middleware.RequireRole(string(enums.RolePartner), logg)).
			Get("/partner/profile", controllers.MyPartner(p.Partners, logg))
	})

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Use(middleware.RequireRole(string(enums.RoleAdmin), logg))
		r.Route("/users", func(r chi.Router) {
			r.Get("/", controllers.ListUsers(p.Users, logg))
			r.Get("/{userId}", controllers.GetUser(p.Users, logg))
		})
		r.Route("/partners", func(r chi.Router) {
			r.Get("/", controllers.ListPartners(p.Partners, logg))
			r.Get("/{partnerId}", controllers.GetPartner(p.Partners, logg))
		})
		r.Route("/drivers", func(r chi.Router) {
			r.Get("/", controllers.ListDrivers(p.Drivers, logg))
			r.Get("/{driverId}", controllers.GetDriver(p.Drivers, logg))
		})
		r.Route("/orders", func(r chi.Router) {
			r.Post("/{orderId}/status", controllers.UpdateOrderStatus(p.Orders, logg))
			r.Post("/{orderId}/assign-driver", controllers.AssignOrderDriver(p.Orders, logg))
		})
	})

	return r
}
