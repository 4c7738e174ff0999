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

	bankingapp "github.com/onuroner/pk-vkf/internal/application/banking"
	"github.com/onuroner/pk-vkf/internal/domain/banking"
	"github.com/onuroner/pk-vkf/internal/infrastructure/auth"
	"github.com/onuroner/pk-vkf/internal/infrastructure/cache"
	"github.com/onuroner/pk-vkf/internal/infrastructure/config"
	"github.com/onuroner/pk-vkf/internal/infrastructure/logger"
	"github.com/onuroner/pk-vkf/internal/infrastructure/persistence"
	"github.com/onuroner/pk-vkf/internal/interfaces/http/handler"
	"github.com/onuroner/pk-vkf/internal/interfaces/http/middleware"
	"github.com/onuroner/pk-vkf/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

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

	log.Info("Starting VK Bank API",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Cache tiers. The local tier lives in this process; the Redis tier is
	// shared by all replicas. They are independent and never warm each other.
	cacheConfig := banking.CacheConfig{
		AbsoluteTTL:   cfg.Cache.AbsoluteTTL,
		SlidingWindow: cfg.Cache.SlidingWindow,
	}
	localCache := cache.NewLocalTransactionCache(
		cache.WithLocalConfig(cacheConfig),
		cache.WithLocalLogger(log),
	)
	defer func() {
		_ = localCache.Close()
	}()

	redisCache, err := cache.NewRedisTransactionCache(cache.RedisConfig{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}, cfg.Cache.AbsoluteTTL)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		_ = redisCache.Close()
	}()
	log.Info("Redis connected successfully")

	// Repositories
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	accountRepo := persistence.NewGormAccountRepository(db.DB)
	cardRepo := persistence.NewGormCardRepository(db.DB)
	addressRepo := persistence.NewGormAddressRepository(db.DB)
	transactionRepo := persistence.NewGormAccountTransactionRepository(db.DB)
	transferRepo := persistence.NewGormTransferRepository(db.DB)

	// Application services
	transferService := bankingapp.NewTransferService(transferRepo, log)
	queryService := bankingapp.NewTransactionQueryService(transactionRepo, localCache, redisCache, log)
	customerService := bankingapp.NewCustomerService(customerRepo)
	accountService := bankingapp.NewAccountService(accountRepo, customerRepo)
	cardService := bankingapp.NewCardService(cardRepo, accountRepo)
	addressService := bankingapp.NewAddressService(addressRepo, customerRepo)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.CORSWithConfig(middleware.DefaultCORSConfig()))

	engine.GET("/health", healthHandler(db, redisCache))

	jwtService := auth.NewJWTService(cfg.JWT)
	r := router.NewRouter(engine)
	r.Use(middleware.JWTAuthMiddleware(jwtService))

	router.Setup(r, router.BankingHandlers{
		MoneyTransfer: handler.NewMoneyTransferHandler(transferService, queryService),
		Customer:      handler.NewCustomerHandler(customerService),
		Account:       handler.NewAccountHandler(accountService),
		Card:          handler.NewCardHandler(cardService),
		Address:       handler.NewAddressHandler(addressService),
	}, cfg.Cache.ResponseMaxAge)

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

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

// healthHandler reports process health including both backing stores
func healthHandler(db *persistence.Database, redisCache *cache.RedisTransactionCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := http.StatusOK
		dbStatus := "ok"
		redisStatus := "ok"

		if err := db.Ping(); err != nil {
			status = http.StatusServiceUnavailable
			dbStatus = "error"
		}
		if err := redisCache.GetClient().Ping(c.Request.Context()).Err(); err != nil {
			status = http.StatusServiceUnavailable
			redisStatus = "error"
		}

		body := gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": dbStatus,
			"redis":    redisStatus,
		}
		if status != http.StatusOK {
			body["status"] = "unhealthy"
		}
		c.JSON(status, body)
	}
}
