package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shopsim/backend/internal/infrastructure/config"
	"github.com/shopsim/backend/internal/infrastructure/logger"
	"github.com/shopsim/backend/internal/infrastructure/simulation"
	"github.com/shopsim/backend/internal/infrastructure/store"
	"github.com/shopsim/backend/internal/infrastructure/telemetry"
	"github.com/shopsim/backend/internal/interfaces/http/handler"
	"github.com/shopsim/backend/internal/interfaces/http/middleware"
	"github.com/shopsim/backend/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting shopsim",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Initialize tracing
	tracerProvider, err := telemetry.NewTracerProvider(context.Background(), telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize telemetry", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracerProvider.Shutdown(ctx); err != nil {
			log.Error("Error shutting down tracer provider", zap.Error(err))
		}
	}()

	// Seed the in-memory catalog. A fixed seed makes runs reproducible;
	// the default time-based seed gives every run a fresh catalog.
	rnd := simulation.NewRand(cfg.Seed.Seed)
	st := store.New(store.Config{
		Products: cfg.Seed.Products,
		Users:    cfg.Seed.Users,
	}, rnd)
	log.Info("Store seeded",
		zap.Int("products", cfg.Seed.Products),
		zap.Int("users", cfg.Seed.Users),
	)

	latency := simulation.NewLatency(rnd, cfg.Simulation.LatencyScale)
	injector := simulation.NewFailureInjector(rnd,
		cfg.Simulation.PaymentFailureRate,
		cfg.Simulation.ErrorRate,
		cfg.Simulation.UnavailableRate,
	)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware stack in order: request ID, panic recovery, access log,
	// tracing, CORS, body limit.
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Tracing(middleware.TracingConfig{
		ServiceName: cfg.Telemetry.ServiceName,
		Enabled:     cfg.Telemetry.Enabled,
	}))
	engine.Use(middleware.TraceRequestID())

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	engine.Use(middleware.CORSWithConfig(corsConfig))

	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	systemHandler := handler.NewSystemHandler(latency)

	// Health check endpoint (outside the API prefix)
	engine.GET("/health", systemHandler.Health)

	// Register API routes
	r := router.NewRouter(engine)
	r.Register(handler.NewProductHandler(st, latency, rnd)).
		Register(handler.NewUserHandler(st, latency)).
		Register(handler.NewCartHandler(st, latency)).
		Register(handler.NewOrderHandler(st, latency, injector)).
		Register(handler.NewSimulationHandler(latency, injector)).
		Register(systemHandler)
	r.Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
