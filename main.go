package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront-backend/controllers"
	"storefront-backend/database"
	"storefront-backend/logger"
	"storefront-backend/middleware"
	"storefront-backend/repository"
	"storefront-backend/routes"
	"storefront-backend/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Load .env file (optional, falls back to system env)
	_ = godotenv.Load()

	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zapLogger := logger.Initialize(cfg.Env)
	defer zapLogger.Sync() //nolint:errcheck

	// A connection failure at startup is fatal.
	client, db, err := database.Connect(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		zap.L().Fatal("Failed to connect to MongoDB", zap.Error(err))
	}

	redisClient := database.NewRedisClient(cfg.RedisURL)

	// --- Dependency injection (wiring the layers together) ---

	resolver := repository.NewResolver(db)
	productRepo := repository.NewMongoProductRepository(db)
	categoryRepo := repository.NewMongoCategoryRepository(db)
	addressRepo := repository.NewMongoAddressRepository(db)
	userRepo := repository.NewMongoUserRepository(db)
	wishlistRepo := repository.NewMongoWishlistRepository(db)
	cartRepo := repository.NewMongoCartRepository(db)
	orderRepo := repository.NewMongoOrderRepository(db)

	productService := services.NewProductService(productRepo, resolver)
	categoryService := services.NewCategoryService(categoryRepo)
	addressService := services.NewAddressService(addressRepo, userRepo)
	userService := services.NewUserService(userRepo, resolver)
	wishlistService := services.NewWishlistService(wishlistRepo, resolver)
	cartService := services.NewCartService(cartRepo, resolver)
	orderService := services.NewOrderService(orderRepo, productRepo, cartRepo, resolver)

	cache := controllers.NewCacheManager(redisClient)
	productController := controllers.NewProductController(productService, cache)
	categoryController := controllers.NewCategoryController(categoryService)
	addressController := controllers.NewAddressController(addressService)
	userController := controllers.NewUserController(userService)
	wishlistController := controllers.NewWishlistController(wishlistService)
	cartController := controllers.NewCartController(cartService)
	orderController := controllers.NewOrderController(orderService)

	// --- HTTP server & middleware ---

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger())
	r.Use(middleware.RateLimit())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 30-second request timeout
	r.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	routes.RegisterRoutes(r,
		productController,
		categoryController,
		addressController,
		userController,
		wishlistController,
		cartController,
		orderController,
	)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		zap.L().Info("Storefront backend starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// --- Graceful shutdown ---

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.L().Info("Shutting down storefront backend...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Fatal("Server forced to shutdown", zap.Error(err))
	}

	if err := redisClient.Close(); err != nil {
		zap.L().Error("Failed to close Redis", zap.Error(err))
	}
	if err := database.Close(client); err != nil {
		zap.L().Error("Failed to disconnect from MongoDB", zap.Error(err))
	}

	zap.L().Info("Storefront backend stopped gracefully")
}
