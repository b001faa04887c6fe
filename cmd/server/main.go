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

	printingapp "github.com/studiosnap/backend/internal/application/printing"
	reportapp "github.com/studiosnap/backend/internal/application/report"
	studioapp "github.com/studiosnap/backend/internal/application/studio"
	"github.com/studiosnap/backend/internal/infrastructure/auth"
	"github.com/studiosnap/backend/internal/infrastructure/config"
	"github.com/studiosnap/backend/internal/infrastructure/event"
	"github.com/studiosnap/backend/internal/infrastructure/logger"
	"github.com/studiosnap/backend/internal/infrastructure/persistence"
	infraprinting "github.com/studiosnap/backend/internal/infrastructure/printing"
	"github.com/studiosnap/backend/internal/interfaces/http/handler"
	"github.com/studiosnap/backend/internal/interfaces/http/middleware"
	"github.com/studiosnap/backend/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting StudioSnap Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize repositories
	eventRepo := persistence.NewGormEventRepository(db.DB)
	paymentRepo := persistence.NewGormPaymentRepository(db.DB)
	expenseRepo := persistence.NewGormExpenseRepository(db.DB)
	staffPaymentRepo := persistence.NewGormStaffPaymentRepository(db.DB)
	freelancerPaymentRepo := persistence.NewGormFreelancerPaymentRepository(db.DB)
	ledgerEntryRepo := persistence.NewGormLedgerEntryRepository(db.DB)
	closingBalanceRepo := persistence.NewGormClosingBalanceRepository(db.DB)
	payrollScope := persistence.NewGormPayrollScope(db.DB)

	// Event bus drives the realtime stats refresh pipeline
	eventBus := event.NewInMemoryEventBus(log)
	busCtx, busCancel := context.WithCancel(context.Background())
	defer busCancel()
	if err := eventBus.Start(busCtx); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}

	// Application services
	eventService := studioapp.NewEventService(eventRepo, eventBus)
	paymentService := studioapp.NewPaymentService(paymentRepo, eventBus)
	expenseService := studioapp.NewExpenseService(expenseRepo, eventBus)
	staffPaymentService := studioapp.NewStaffPaymentService(staffPaymentRepo, payrollScope, eventBus)
	freelancerPaymentService := studioapp.NewFreelancerPaymentService(freelancerPaymentRepo, payrollScope, eventBus)
	ledgerEntryService := studioapp.NewLedgerEntryService(ledgerEntryRepo, eventBus)
	closingBalanceService := studioapp.NewClosingBalanceService(closingBalanceRepo, eventBus)

	// Aggregation pipeline
	fetcher := reportapp.NewSnapshotFetcher(reportapp.SourceRepositories{
		Events:             eventRepo,
		Payments:           paymentRepo,
		Expenses:           expenseRepo,
		StaffPayments:      staffPaymentRepo,
		FreelancerPayments: freelancerPaymentRepo,
		LedgerEntries:      ledgerEntryRepo,
		ClosingBalances:    closingBalanceRepo,
	}, reportapp.WithFetcherLogger(log))

	statsService := reportapp.NewFinanceStatsService(fetcher,
		reportapp.WithStatsLogger(log),
		reportapp.WithEventPublisher(eventBus),
	)

	refreshTrigger := reportapp.NewRefreshTrigger(statsService,
		reportapp.WithRefreshLogger(log),
		reportapp.WithDebounce(cfg.Stats.RefreshDebounce),
	)
	eventBus.Subscribe(refreshTrigger, refreshTrigger.EventTypes()...)

	// PDF rendering
	renderer, err := infraprinting.NewChromedpRenderer(&infraprinting.ChromedpConfig{
		DefaultTimeout: cfg.Printing.RenderTimeout,
		RemoteURL:      cfg.Printing.ChromeRemoteURL,
		NoSandbox:      cfg.Printing.NoSandbox,
		Logger:         log,
	})
	if err != nil {
		log.Fatal("Failed to initialize PDF renderer", zap.Error(err))
	}
	defer func() {
		if err := renderer.Close(); err != nil {
			log.Error("Error closing PDF renderer", zap.Error(err))
		}
	}()
	documentService := printingapp.NewReportDocumentService(renderer, log)

	// JWT service
	jwtService := auth.NewJWTService(cfg.JWT)

	// Handlers
	eventHandler := handler.NewEventHandler(eventService)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	expenseHandler := handler.NewExpenseHandler(expenseService)
	staffPaymentHandler := handler.NewStaffPaymentHandler(staffPaymentService)
	freelancerPaymentHandler := handler.NewFreelancerPaymentHandler(freelancerPaymentService)
	ledgerEntryHandler := handler.NewLedgerEntryHandler(ledgerEntryService)
	closingBalanceHandler := handler.NewClosingBalanceHandler(closingBalanceService)
	financeStatsHandler := handler.NewFinanceStatsHandler(statsService, documentService)
	systemHandler := handler.NewSystemHandler()

	// SSE stream pushes recomputed stats to connected dashboards
	streamHandler := handler.NewFinanceStreamHandler(handler.WithStreamLogger(log))
	if err := streamHandler.Start(); err != nil {
		log.Fatal("Failed to start SSE handler", zap.Error(err))
	}
	defer streamHandler.Stop()
	eventBus.Subscribe(streamHandler, streamHandler.EventTypes()...)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	// Initialize router with custom middleware
	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Apply middleware stack in order:
	// 1. RequestID - Generate/propagate request ID
	// 2. Recovery - Catch panics
	// 3. Logger - Log requests
	// 4. Security - Add security headers
	// 5. CORS - Handle cross-origin requests
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log, "/health"))
	engine.Use(middleware.Secure())

	// Configure CORS from config
	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	// Health check endpoint (outside API versioning)
	engine.GET("/health", healthHandler(db, log))

	// Setup API routes using router
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	// JWT claims are optional; tenant resolution falls back to the
	// X-Tenant-ID header for single-studio deployments
	r.Use(middleware.OptionalJWTAuthMiddleware(jwtService))
	r.Use(middleware.OptionalTenantMiddleware())

	r.Register(eventHandler).
		Register(paymentHandler).
		Register(expenseHandler).
		Register(staffPaymentHandler).
		Register(freelancerPaymentHandler).
		Register(ledgerEntryHandler).
		Register(closingBalanceHandler).
		Register(financeStatsHandler).
		Register(streamHandler).
		Register(systemHandler)

	r.Setup()

	// Also keep a simple ping at root API level for basic health checks
	engine.GET("/api/v1/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

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

	if err := eventBus.Stop(ctx); err != nil {
		log.Error("Error stopping event bus", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler returns a handler for health check endpoints
func healthHandler(db *persistence.Database, _ *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
