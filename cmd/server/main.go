package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	catalogapp "github.com/tshirt-brand/backend/internal/application/catalog"
	identityapp "github.com/tshirt-brand/backend/internal/application/identity"
	orderapp "github.com/tshirt-brand/backend/internal/application/order"
	"github.com/tshirt-brand/backend/internal/infrastructure/auth"
	"github.com/tshirt-brand/backend/internal/infrastructure/config"
	"github.com/tshirt-brand/backend/internal/infrastructure/logger"
	"github.com/tshirt-brand/backend/internal/infrastructure/persistence"
	"github.com/tshirt-brand/backend/internal/infrastructure/storage"
	"github.com/tshirt-brand/backend/internal/interfaces/http/handler"
	"github.com/tshirt-brand/backend/internal/interfaces/http/middleware"
	"github.com/tshirt-brand/backend/internal/interfaces/http/router"
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

	log.Info("Starting storefront backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
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

	// Initialize image storage
	imageStore, err := storage.NewLocalImageStore(cfg.Upload)
	if err != nil {
		log.Fatal("Failed to initialize image storage", zap.Error(err))
	}

	// Initialize repositories
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	adminRepo := persistence.NewGormAdminRepository(db.DB)

	// Initialize application services
	categoryService := catalogapp.NewCategoryService(categoryRepo, productRepo)
	productService := catalogapp.NewProductService(productRepo, categoryRepo)
	orderService := orderapp.NewOrderService(orderRepo, productRepo, log)
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(adminRepo, jwtService, log)

	// Initialize HTTP handlers
	categoryHandler := handler.NewCategoryHandler(categoryService)
	productHandler := handler.NewProductHandler(productService)
	orderHandler := handler.NewOrderHandler(orderService)
	authHandler := handler.NewAuthHandler(authService)
	uploadHandler := handler.NewUploadHandler(imageStore, log)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	engine := gin.New()

	// Middleware stack: request ID, panic recovery, request logging,
	// security headers, CORS, body size limit
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	// Health check endpoint
	engine.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	// Serve uploaded product images
	engine.Static(cfg.Upload.PublicPath, imageStore.Dir())

	requireAdmin := middleware.RequireAdmin(jwtService, log)

	authRoutes := router.NewDomainGroup("auth", "/auth")
	authRoutes.POST("/login", authHandler.Login)

	categoryRoutes := router.NewDomainGroup("categories", "/categories")
	categoryRoutes.GET("", categoryHandler.List)
	categoryRoutes.POST("", requireAdmin, categoryHandler.Create)
	categoryRoutes.PUT("/:id", requireAdmin, categoryHandler.Update)
	categoryRoutes.DELETE("/:id", requireAdmin, categoryHandler.Delete)

	productRoutes := router.NewDomainGroup("products", "/products")
	productRoutes.GET("", productHandler.List)
	productRoutes.GET("/:id", productHandler.Get)
	productRoutes.POST("", requireAdmin, productHandler.Create)
	productRoutes.PUT("/:id", requireAdmin, productHandler.Update)
	productRoutes.DELETE("/:id", requireAdmin, productHandler.Delete)
	productRoutes.POST("/upload", requireAdmin, uploadHandler.Upload)

	orderRoutes := router.NewDomainGroup("orders", "/orders")
	orderRoutes.POST("", orderHandler.Create)
	orderRoutes.GET("", requireAdmin, orderHandler.List)
	orderRoutes.GET("/stats/overview", requireAdmin, orderHandler.Stats)
	orderRoutes.GET("/:id", requireAdmin, orderHandler.Get)
	orderRoutes.PUT("/:id", requireAdmin, orderHandler.UpdateStatus)

	r := router.NewRouter(engine, router.WithBasePath("/api"))
	r.Register(authRoutes).
		Register(categoryRoutes).
		Register(productRoutes).
		Register(orderRoutes)
	r.Setup()

	// Start HTTP server
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited")
}
