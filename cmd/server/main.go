package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	ledgerapp "github.com/garment-erp/backend/internal/application/ledger"
	"github.com/garment-erp/backend/internal/domain/shared"
	"github.com/garment-erp/backend/internal/infrastructure/cache"
	"github.com/garment-erp/backend/internal/infrastructure/config"
	"github.com/garment-erp/backend/internal/infrastructure/logger"
	"github.com/garment-erp/backend/internal/infrastructure/persistence"
	"github.com/garment-erp/backend/internal/interfaces/http/handler"
	"github.com/garment-erp/backend/internal/interfaces/http/middleware"
	"github.com/garment-erp/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
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

	log.Info("Starting Settlement Ledger",
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

	// Keep the schema current
	if err := db.AutoMigrate(); err != nil {
		log.Fatal("Failed to migrate database schema", zap.Error(err))
	}

	// Initialize repositories
	accountRepo := persistence.NewGormCashierAccountRepository(db.DB)
	balanceRepo := persistence.NewGormPartnerBalanceRepository(db.DB)
	entryRepo := persistence.NewGormReconciliationEntryRepository(db.DB)
	txScope := persistence.NewGormTransactionScope(db.DB)

	// Idempotency store for duplicate payment submissions
	var idempotencyStore shared.IdempotencyStore
	if cfg.Idempotency.Enabled {
		factory := cache.NewIdempotencyStoreFactory(cfg.Redis,
			cache.WithLogger(log),
			cache.WithInMemoryFallback(!cfg.Idempotency.UseRedis),
		)
		if cfg.Idempotency.UseRedis {
			idempotencyStore, err = factory.CreateRedisStore()
			if err != nil {
				log.Fatal("Failed to create Redis idempotency store", zap.Error(err))
			}
			log.Info("Using Redis idempotency store")
		} else {
			idempotencyStore = factory.CreateInMemoryStore()
			log.Info("Using in-memory idempotency store")
		}
	}

	idempotencyCfg := shared.IdempotencyConfig{
		Enabled: cfg.Idempotency.Enabled,
		TTL:     cfg.Idempotency.TTL,
	}

	// Initialize application services
	accountService := ledgerapp.NewCashierAccountService(accountRepo)
	balanceService := ledgerapp.NewPartnerBalanceService(balanceRepo)
	paymentService := ledgerapp.NewPaymentService(txScope, idempotencyStore, idempotencyCfg)
	reconciliationService := ledgerapp.NewReconciliationService(entryRepo)
	queryService := ledgerapp.NewLedgerQueryService(entryRepo, balanceRepo)

	// Initialize handlers
	accountHandler := handler.NewCashierAccountHandler(accountService)
	balanceHandler := handler.NewPartnerBalanceHandler(balanceService)
	settlementHandler := handler.NewSettlementHandler(paymentService)
	reconciliationHandler := handler.NewReconciliationHandler(reconciliationService)
	reportHandler := handler.NewReportHandler(queryService)
	systemHandler := handler.NewSystemHandler()

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
	// 6. BodyLimit - Limit request body size
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	// Configure CORS from config
	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	// Body size limit
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	// Health check endpoints (outside API versioning)
	engine.GET("/health", healthHandler(db))
	engine.GET("/ready", healthHandler(db))

	// Setup API routes using router
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	// Ledger domain (cashier accounts, partner balances, settlements, reconciliation)
	ledgerRoutes := router.NewDomainGroup("ledger", "/ledger")

	ledgerRoutes.POST("/cashier-accounts", accountHandler.Create)
	ledgerRoutes.GET("/cashier-accounts", accountHandler.List)
	ledgerRoutes.GET("/cashier-accounts/:id", accountHandler.GetByID)
	ledgerRoutes.POST("/cashier-accounts/:id/adjust", accountHandler.Adjust)
	ledgerRoutes.DELETE("/cashier-accounts/:id", accountHandler.Delete)

	ledgerRoutes.POST("/partner-balances/obligations", balanceHandler.UpsertObligation)
	ledgerRoutes.GET("/partner-balances", balanceHandler.List)
	ledgerRoutes.GET("/partner-balances/:partnerType/:partnerId", balanceHandler.GetByPartner)

	ledgerRoutes.POST("/settlements/payments", settlementHandler.RecordPayment)

	ledgerRoutes.POST("/reconciliation/entries", reconciliationHandler.RecordEntry)
	ledgerRoutes.GET("/reconciliation/entries", reconciliationHandler.Query)
	ledgerRoutes.GET("/reconciliation/entries/:id", reconciliationHandler.GetByID)
	ledgerRoutes.POST("/reconciliation/entries/cancel", reconciliationHandler.Cancel)
	ledgerRoutes.POST("/reconciliation/entries/reconcile", reconciliationHandler.Reconcile)

	ledgerRoutes.GET("/reports/settlement-trend", reportHandler.Trend)
	ledgerRoutes.GET("/reports/settlement-summary", reportHandler.Summary)
	ledgerRoutes.GET("/reports/arrears", reportHandler.ArrearsOverview)

	r.Register(ledgerRoutes)

	// System domain
	systemRoutes := router.NewDomainGroup("system", "/system")
	systemRoutes.GET("/info", systemHandler.GetSystemInfo)
	systemRoutes.GET("/ping", systemHandler.Ping)
	r.Register(systemRoutes)

	// Setup routes
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

	log.Info("Server exited gracefully")
}

// healthHandler returns a handler for health check endpoints
func healthHandler(db *persistence.Database) gin.HandlerFunc {
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
