package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"autozar_backend/internal/auth"
	"autozar_backend/internal/catalog"
	"autozar_backend/internal/config"
	"autozar_backend/internal/handlers"
	"autozar_backend/internal/logger"
	"autozar_backend/internal/middleware"
	"autozar_backend/internal/repositories"
	"autozar_backend/internal/routes"
	"autozar_backend/internal/services"
	"autozar_backend/internal/storage"
	"autozar_backend/internal/telemetry"
	"autozar_backend/internal/validator"
	"autozar_backend/internal/workers"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

const (
	serviceName     = "autozar_backend"
	shutdownTimeout = 10 * time.Second
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Init(ctx, telemetry.Config{
		ServiceName:   serviceName,
		Environment:   cfg.Server.Env,
		TraceExporter: cfg.Telemetry.TraceExporter,
		OTLPEndpoint:  cfg.Telemetry.OTLPEndpoint,
		OTLPInsecure:  cfg.Telemetry.OTLPInsecure,
	})
	if err != nil {
		logger.Fatal("Failed to initialize tracing", "error", err)
	}

	logger.Info("Opening storage...", "type", cfg.Storage.Type)
	store, err := storage.NewStore(ctx, StorageConfig(cfg))
	if err != nil {
		logger.Fatal("Failed to open storage", "error", err)
	}
	logger.Info("Storage opened", "type", cfg.Storage.Type)

	seed, err := catalog.Load()
	if err != nil {
		logger.Fatal("Failed to load seed catalog", "error", err)
	}

	serviceContainer := NewServiceContainer(cfg, store, seed, validator.New())
	ginRouter, err := newRouter(cfg, serviceContainer)
	if err != nil {
		logger.Fatal("Failed to set up router", "error", err)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           ginRouter,
		ReadHeaderTimeout: 5 * time.Second,
	}

	auditWorker := workers.NewAuditWorker(
		serviceContainer.PublicationGate,
		time.Duration(cfg.Workers.AuditIntervalMin)*time.Minute,
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return auditWorker.Run(gctx)
	})
	g.Go(func() error {
		logger.Info("🚀 Server starting", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	runErr := g.Wait()

	if err := store.Close(); err != nil {
		logger.Error("Failed to close storage", "error", err)
	}
	flushCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := shutdownTracing(flushCtx); err != nil {
		logger.Error("Failed to flush traces", "error", err)
	}

	if runErr != nil {
		logger.Fatal("Server stopped with error", "error", runErr)
	}
	logger.Info("Server stopped")
}

// StorageConfig maps the application config onto the storage backend config.
func StorageConfig(cfg *config.Config) storage.Config {
	return storage.Config{
		Type:       cfg.Storage.Type,
		Path:       cfg.Storage.Path,
		GCInterval: time.Duration(cfg.Storage.GCIntervalMin) * time.Minute,
		Driver:     cfg.Database.Driver,
		DSN:        cfg.Database.DSN,
		Database:   cfg.Database.Name,
	}
}

// SetupRouter wires repositories, services and handlers over kv and returns
// the ready engine.
func SetupRouter(cfg *config.Config, kv storage.KV, seed catalog.Catalog) (*gin.Engine, error) {
	return newRouter(cfg, NewServiceContainer(cfg, kv, seed, validator.New()))
}

func newRouter(cfg *config.Config, serviceContainer *services.ServiceContainer) (*gin.Engine, error) {
	tokens, err := auth.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.TTL)*time.Minute)
	if err != nil {
		return nil, fmt.Errorf("token manager: %w", err)
	}

	// 1. Handlers
	appHandlers := initializeHandlers(serviceContainer, validator.New())

	// 2. Gin
	ginRouter := initializeGinRouter(cfg)

	// 3. Routes
	routes.RegisterRoutes(ginRouter, appHandlers, middleware.AuthMiddleware(tokens))

	return ginRouter, nil
}

// NewServiceContainer builds repositories and services over kv.
func NewServiceContainer(cfg *config.Config, kv storage.KV, seed catalog.Catalog, v *validator.Validator) *services.ServiceContainer {
	now := time.Now

	// --- Repositories ---
	listingRepo := repositories.NewListingRepository(kv)
	paymentRepo := repositories.NewPaymentRepository(kv)
	draftRepo := repositories.NewDraftRepository(kv)
	favoritesRepo := repositories.NewFavoritesRepository(kv)
	recentRepo := repositories.NewRecentRepository(kv, services.RecentLimit)

	// --- Services ---
	placeholder := cfg.Engine.PlaceholderImage
	gate := services.NewPublicationGate(seed, listingRepo, v, placeholder)
	lifecycleService := services.NewLifecycleService(listingRepo, paymentRepo, draftRepo, v, now)
	queryService := services.NewQueryService(gate, services.QueryOptions{
		SimulatedLatency: time.Duration(cfg.Engine.SimulatedLatencyMs) * time.Millisecond,
		DefaultPageSize:  cfg.Engine.DefaultPageSize,
		MaxPageSize:      cfg.Engine.MaxPageSize,
		Placeholder:      placeholder,
	}, now)
	favoritesService := services.NewFavoritesService(gate, favoritesRepo, recentRepo, placeholder, now)

	return &services.ServiceContainer{
		LifecycleService: lifecycleService,
		QueryService:     queryService,
		FavoritesService: favoritesService,
		PublicationGate:  gate,
	}
}

func initializeHandlers(services *services.ServiceContainer, v *validator.Validator) *handlers.AppHandlers {
	baseHandler := handlers.NewBaseHandler(v)

	return &handlers.AppHandlers{
		ListingHandler:   handlers.NewListingHandler(baseHandler, services.QueryService),
		MyListingHandler: handlers.NewMyListingHandler(baseHandler, services.LifecycleService),
		FavoritesHandler: handlers.NewFavoritesHandler(baseHandler, services.FavoritesService),
		AdminHandler:     handlers.NewAdminHandler(baseHandler, services.LifecycleService, services.PublicationGate),
	}
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.TracingMiddleware(serviceName))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.RateLimitMiddleware(
		middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst),
	))
	return router
}
