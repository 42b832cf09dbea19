package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"

	"stockyard/internal/caching"
	"stockyard/internal/common"
	"stockyard/internal/config"
	"stockyard/internal/handlers"
	"stockyard/internal/identity"
	"stockyard/internal/jobs"
	"stockyard/internal/logger"
	"stockyard/internal/middleware"
	"stockyard/internal/repositories"
	"stockyard/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("configuration error")
	}
	logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx := context.Background()

	pool, err := pgxpool.New(ctx, cfg.DB.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	defer pool.Close()

	cache := caching.NewRedisCacheService(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)

	verifier, err := identity.NewVerifier(ctx, cfg.Auth.JWKSURL, cfg.Auth.JWTSecret)
	if err != nil {
		log.Fatal().Err(err).Msg("token verifier setup failed")
	}
	defer verifier.Close()
	idp := identity.NewClient(cfg.Auth.ProviderURL, cfg.Auth.APIKey)

	store, err := services.NewMinioStore(cfg.Minio.Endpoint, cfg.Minio.AccessKey, cfg.Minio.SecretKey, cfg.Minio.Bucket, cfg.Minio.UseSSL)
	if err != nil {
		log.Fatal().Err(err).Msg("object storage setup failed")
	}
	if err := store.EnsureBucket(ctx); err != nil {
		log.Warn().Err(err).Msg("attachment bucket check failed")
	}

	// Repositories
	tenantRepo := repositories.NewTenantRepository(pool)
	warehouseRepo := repositories.NewWarehouseRepository(pool)
	zoneRepo := repositories.NewZoneRepository(pool)
	locationRepo := repositories.NewLocationRepository(pool)
	customerRepo := repositories.NewCustomerRepository(pool)
	supplierRepo := repositories.NewSupplierRepository(pool)
	itemRepo := repositories.NewItemRepository(pool)
	uomRepo := repositories.NewUOMRepository(pool)
	doorRepo := repositories.NewDoorRepository(pool)
	userRepo := repositories.NewUserRepository(pool)

	// Services
	warehouseSvc := services.NewWarehouseService(warehouseRepo, zoneRepo, locationRepo, doorRepo, cache)
	zoneSvc := services.NewZoneService(zoneRepo, warehouseRepo, locationRepo, cache)
	locationSvc := services.NewLocationService(locationRepo, warehouseRepo, zoneRepo, cache)
	customerSvc := services.NewCustomerService(customerRepo, supplierRepo, itemRepo, cache)
	supplierSvc := services.NewSupplierService(supplierRepo, customerRepo, cache)
	itemSvc := services.NewItemService(itemRepo, customerRepo, uomRepo, cache)
	uomSvc := services.NewUOMService(uomRepo, itemRepo)
	doorSvc := services.NewDoorService(doorRepo, warehouseRepo, cache)
	userSvc := services.NewUserService(userRepo, cache)
	authSvc := services.NewAuthService(idp, verifier, userRepo)
	attachmentSvc := services.NewAttachmentService(store, itemRepo)

	e := echo.New()
	e.HideBanner = true
	e.Validator = common.NewRequestValidator()
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.RemoveTrailingSlash())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.RequestLoggerWithConfig(echoMiddleware.RequestLoggerConfig{
		LogURI: true, LogStatus: true, LogMethod: true, LogLatency: true,
		LogValuesFunc: func(c echo.Context, v echoMiddleware.RequestLoggerValues) error {
			log.Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	}))

	authMw := middleware.NewAuthMiddleware(verifier, userRepo)

	healthHandlers := handlers.NewHealthHandlers(pool, cache)
	healthHandlers.Register(e)

	api := e.Group("/api")

	authHandlers := handlers.NewAuthHandlers(authSvc)
	authHandlers.Register(api, middleware.LoginRateLimiter(cache, 10, time.Minute))

	protected := api.Group("")
	protected.Use(authMw.Authenticate)
	protected.GET("/auth/me", authHandlers.Me)

	handlers.NewWarehouseHandlers(warehouseSvc).Register(protected)
	handlers.NewZoneHandlers(zoneSvc).Register(protected)
	handlers.NewLocationHandlers(locationSvc).Register(protected)
	handlers.NewCustomerHandlers(customerSvc).Register(protected)
	handlers.NewSupplierHandlers(supplierSvc).Register(protected)
	handlers.NewItemHandlers(itemSvc).Register(protected)
	handlers.NewUOMHandlers(uomSvc).Register(protected)
	handlers.NewDoorHandlers(doorSvc).Register(protected)
	handlers.NewUserHandlers(userSvc).Register(protected)
	handlers.NewAttachmentHandlers(attachmentSvc).Register(protected)

	scheduler, err := jobs.NewScheduler(tenantRepo, jobs.StatsProviders{
		Warehouses: warehouseSvc,
		Zones:      zoneSvc,
		Locations:  locationSvc,
		Customers:  customerSvc,
		Suppliers:  supplierSvc,
		Items:      itemSvc,
		Doors:      doorSvc,
		Users:      userSvc,
	}, config.StatsCacheTTL)
	if err != nil {
		log.Fatal().Err(err).Msg("scheduler setup failed")
	}
	scheduler.Start()
	defer func() {
		if err := scheduler.Stop(); err != nil {
			log.Warn().Err(err).Msg("scheduler shutdown failed")
		}
	}()

	go func() {
		log.Info().Str("addr", cfg.HTTP.Addr()).Msg("starting server")
		if err := e.Start(cfg.HTTP.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
