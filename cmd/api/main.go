package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/psgtech/campus-portal-api/config"
	"github.com/psgtech/campus-portal-api/internal/cache"
	"github.com/psgtech/campus-portal-api/internal/database/postgres"
	"github.com/psgtech/campus-portal-api/internal/handlers"
	"github.com/psgtech/campus-portal-api/internal/middleware"
	"github.com/psgtech/campus-portal-api/internal/realtime"
	"github.com/psgtech/campus-portal-api/internal/repository"
	"github.com/psgtech/campus-portal-api/internal/services"
	"github.com/psgtech/campus-portal-api/pkg/db"
	"github.com/psgtech/campus-portal-api/pkg/logger"
	"github.com/psgtech/campus-portal-api/pkg/metrics"
	"github.com/psgtech/campus-portal-api/pkg/profiling"
	"github.com/psgtech/campus-portal-api/pkg/tracing"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type routeHandlers struct {
	auth      *handlers.AuthHandler
	directory *handlers.DirectoryHandler
	connect   *handlers.ConnectRequestHandler
	library   *handlers.LibraryHandler
	chat      *handlers.ChatHandler
	health    *handlers.HealthHandler
	static    *handlers.StaticHandler
}

// registerRoutes mounts the JSON API, the websocket endpoint, operational
// endpoints and the static frontend on router
func registerRoutes(router *gin.Engine, h routeHandlers, relay http.Handler, writeLimiter *middleware.RateLimiter, maxBody int64) {
	limited := func(handler gin.HandlerFunc) []gin.HandlerFunc {
		return []gin.HandlerFunc{writeLimiter.Middleware(), middleware.BodySizeLimitMiddleware(maxBody), handler}
	}

	api := router.Group("/", middleware.NoStoreMiddleware())
	api.POST("/signup", limited(h.auth.Signup)...)
	api.POST("/login", limited(h.auth.Login)...)

	api.GET("/events", h.directory.Events)
	api.GET("/teachers", h.directory.Teachers)
	api.GET("/association-members", h.directory.AssociationMembers)

	api.POST("/teacher-connect-request", limited(h.connect.Create)...)
	api.GET("/teacher-connect-requests", h.connect.ListPending)
	api.POST("/accept-teacher-connect-request", limited(h.connect.Accept)...)

	api.GET("/books", h.library.ListBooks)
	api.POST("/request-book", limited(h.library.RequestBook)...)
	api.POST("/return-book", limited(h.library.ReturnBook)...)

	api.GET("/chat-messages", h.chat.History)

	api.GET("/api/healthcheck", h.health.Healthcheck)
	api.GET("/api/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/ws", gin.WrapH(relay))

	router.GET("/", h.static.LoginPage)
	router.NoRoute(h.static.NotFound)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	err = logger.Initialize(logger.Config{
		Level:       cfg.Logging.Level,
		LogDir:      cfg.Logging.Dir,
		Environment: cfg.Server.AppEnv,
		ServiceName: cfg.Observability.ServiceName,
		MaxSizeMB:   cfg.Logging.MaxSizeMB,
		MaxBackups:  cfg.Logging.MaxBackups,
		MaxAgeDays:  cfg.Logging.MaxAgeDays,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting campus portal API",
		zap.String("version", cfg.Observability.ServiceVersion),
		zap.String("environment", cfg.Server.AppEnv),
	)

	tracerShutdown, err := tracing.InitTracer(cfg.Observability, cfg.Server.AppEnv)
	if err != nil {
		logger.Fatal("Failed to initialize tracer", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tracerShutdown(ctx); shutdownErr != nil {
			logger.Error("Failed to shutdown tracer", zap.Error(shutdownErr))
		}
	}()

	stopProfiling, err := profiling.Start(cfg.Profiling, cfg.Observability, cfg.Server.AppEnv)
	if err != nil {
		logger.Fatal("Failed to start profiler", zap.Error(err))
	}
	defer stopProfiling()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	metrics.RecordInfrastructureMetrics(ctx.Done())

	pool, err := db.NewPool(ctx, db.PoolConfig{
		URL:            cfg.Database.URL,
		MaxConns:       cfg.Database.MaxConns,
		MinConns:       cfg.Database.MinConns,
		ConnectRetries: cfg.Database.ConnectRetries,
	})
	if err != nil {
		logger.Fatal("Failed to initialize database connection pool", zap.Error(err))
	}
	store := postgres.NewClient(pool)
	defer store.Close()

	// Migrations run separately through cmd/migrate

	directoryCache := cache.NewDirectoryCache(
		time.Duration(cfg.Cache.DirectoryTTLSeconds)*time.Second,
		cfg.Cache.DisableDirectoryCache,
	)
	if !directoryCache.Enabled() {
		logger.Warn("Directory cache is disabled, listings are read from the database on every request")
	}

	userRepo := repository.NewUserRepository(store, directoryCache)
	directoryRepo := repository.NewDirectoryRepository(store, directoryCache)
	connectRepo := repository.NewConnectRequestRepository(store)
	bookRepo := repository.NewBookRepository(store)
	chatRepo := repository.NewChatRepository(store)

	chatService := services.NewChatService(chatRepo)

	relay := realtime.NewRelay(realtime.NewRegistry(), realtime.NewHub(), chatService, realtime.Options{
		SendBuffer:     cfg.Realtime.SendBuffer,
		PersistBuffer:  cfg.Realtime.PersistBuffer,
		PingInterval:   time.Duration(cfg.Realtime.PingIntervalSeconds) * time.Second,
		PersistTimeout: time.Duration(cfg.Realtime.ChatPersistTimeoutSec) * time.Second,
		AllowedOrigins: cfg.Realtime.AllowedOrigins,
	})

	authService := services.NewAuthService(userRepo, cfg.Auth.EmailDomain)
	directoryService := services.NewDirectoryService(directoryRepo)
	connectService := services.NewConnectRequestService(userRepo, connectRepo, relay)
	libraryService := services.NewLibraryService(bookRepo)

	h := routeHandlers{
		auth:      handlers.NewAuthHandler(authService),
		directory: handlers.NewDirectoryHandler(directoryService),
		connect:   handlers.NewConnectRequestHandler(connectService),
		library:   handlers.NewLibraryHandler(libraryService),
		chat:      handlers.NewChatHandler(chatService),
		health:    handlers.NewHealthHandler(store.Ping),
		static:    handlers.NewStaticHandler(cfg.Server.StaticDir, cfg.Server.LoginPage),
	}

	gin.SetMode(cfg.Server.GinMode)
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware(cfg.Observability.ServiceName))
	router.Use(middleware.ObservabilityMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())

	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "traceparent", "tracestate"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if cfg.AllowAllOrigins() {
		corsConfig.AllowAllOrigins = true
		if cfg.IsProduction() {
			logger.Warn("CORS and websocket origin checks allow every origin in production")
		}
	} else {
		corsConfig.AllowOrigins = cfg.Server.AllowedOrigins
	}
	router.Use(cors.New(corsConfig))

	writeLimiter := middleware.NewRateLimiter(ctx, rate.Limit(cfg.Server.RateLimitRPS), cfg.Server.RateLimitBurst)
	registerRoutes(router, h, relay, writeLimiter, cfg.Server.MaxBodyBytes)

	// No WriteTimeout: it would cut long-lived websocket connections
	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		logger.Info("Server started", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Hijacked websocket connections are not tracked by srv.Shutdown
	relay.Shutdown(shutdownCtx)

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
