package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/gymgrid/gymgrid-backend/api/routes"
	authsvc "github.com/gymgrid/gymgrid-backend/internal/auth"
	"github.com/gymgrid/gymgrid-backend/internal/categories"
	"github.com/gymgrid/gymgrid-backend/internal/centers"
	"github.com/gymgrid/gymgrid-backend/internal/drivers"
	"github.com/gymgrid/gymgrid-backend/internal/identity"
	"github.com/gymgrid/gymgrid-backend/internal/orders"
	"github.com/gymgrid/gymgrid-backend/internal/partners"
	"github.com/gymgrid/gymgrid-backend/internal/products"
	"github.com/gymgrid/gymgrid-backend/internal/stores"
	"github.com/gymgrid/gymgrid-backend/internal/subscriptions"
	"github.com/gymgrid/gymgrid-backend/internal/trainers"
	"github.com/gymgrid/gymgrid-backend/internal/users"
	"github.com/gymgrid/gymgrid-backend/pkg/config"
	"github.com/gymgrid/gymgrid-backend/pkg/db"
	"github.com/gymgrid/gymgrid-backend/pkg/logger"
	"github.com/gymgrid/gymgrid-backend/pkg/mailer"
	"github.com/gymgrid/gymgrid-backend/pkg/metrics"
	"github.com/gymgrid/gymgrid-backend/pkg/migrate"
	"github.com/gymgrid/gymgrid-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	gormDB := dbClient.DB()
	userRepo := users.NewRepository(gormDB)

	authService, err := authsvc.NewService(authsvc.ServiceParams{
		UserRepo:       userRepo,
		Mailer:         mailer.NewSMTPSender(cfg.SMTP),
		JWTConfig:      cfg.JWT,
		PasswordConfig: cfg.Password,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	router := routes.NewRouter(routes.RouterParams{
		Config:      cfg,
		Logger:      logg,
		DBPinger:    dbClient,
		Redis:       redisClient,
		Resolver:    identity.NewResolver(userRepo),
		GateMetrics: metrics.NewGateMetrics(registry),
		Registry:    registry,

		AuthService: authService,

		Users:         userRepo,
		Products:      products.NewRepository(gormDB),
		Orders:        orders.NewRepository(gormDB),
		Stores:        stores.NewRepository(gormDB),
		Trainers:      trainers.NewRepository(gormDB),
		Centers:       centers.NewRepository(gormDB),
		Partners:      partners.NewRepository(gormDB),
		Categories:    categories.NewRepository(gormDB),
		Drivers:       drivers.NewRepository(gormDB),
		Subscriptions: subscriptions.NewRepository(gormDB),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
