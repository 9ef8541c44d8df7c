package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"solemate-service/internal/clients"
	"solemate-service/internal/config"
	"solemate-service/internal/events"
	"solemate-service/internal/handlers"
	"solemate-service/internal/middleware"
	"solemate-service/internal/repository"
	"solemate-service/internal/services"
)

// @title SoleMate Storefront API
// @version 1.0.0
// @description Product catalog, cart, checkout and admin API for the SoleMate storefront

// @host localhost:8080
// @BasePath /api/v1

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg := config.Load()

	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	if cfg.Environment == "production" {
		logger.SetLevel(logrus.InfoLevel)
	} else {
		logger.SetLevel(logrus.DebugLevel)
	}

	// Initialize Redis client (cart persistence)
	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Printf("WARNING: Failed to parse Redis URL: %v (falling back to localhost)", err)
		redisOpts = &redis.Options{Addr: "localhost:6379"}
	}
	redisClient := redis.NewClient(redisOpts)

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Printf("WARNING: Failed to connect to Redis: %v (carts will not persist)", err)
	} else {
		log.Println("✓ Redis connected successfully")
	}
	cancel()

	// Initialize repositories. The catalog is in-memory and reseeded on
	// every start; carts live in redis.
	catalogRepo := repository.NewCatalogRepository(repository.SeedCatalog())
	cartRepo := repository.NewCartRepository(redisClient, logger)

	// Initialize event publisher for the audit trail only if NATS_URL is set
	var eventsPublisher *events.Publisher
	if cfg.NATSURL != "" {
		eventsPublisher, err = events.NewPublisher(cfg.NATSURL, logger)
		if err != nil {
			log.Printf("WARNING: Failed to initialize events publisher: %v (continuing without event publishing)", err)
		} else {
			log.Println("✓ Events publisher initialized (NATS connected)")
		}
	} else {
		log.Println("NATS_URL not set, skipping event publishing initialization")
	}
	defer eventsPublisher.Close()

	// Initialize services
	cartService := services.NewCartService(cartRepo, catalogRepo, logger)
	checkoutService := services.NewCheckoutService(cartRepo, cfg.StripeSecretKey, cfg.BaseURL, logger)
	stylistClient := clients.NewStylistClient(cfg.MLServiceURL)

	// Initialize handlers
	productsHandler := handlers.NewProductsHandler(catalogRepo, eventsPublisher, cfg.DefaultPageSize, cfg.MaxPageSize)
	cartHandler := handlers.NewCartHandler(cartService)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService, cartService)
	exportHandler := handlers.NewExportHandler(catalogRepo, logger)
	styleMatcherHandler := handlers.NewStyleMatcherHandler(stylistClient, catalogRepo)
	authHandler := handlers.NewAuthHandler(cfg.AdminUsername, cfg.AdminPassword, cfg.SessionSecret, cfg.Environment == "production")

	// Initialize Gin router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Metrics())
	router.Use(middleware.CORS())

	// Health check endpoints (no auth required)
	router.GET("/health", handlers.HealthCheck)
	router.GET("/ready", handlers.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api/v1")
	{
		// Public storefront browsing
		storefront := api.Group("/storefront")
		{
			storefront.GET("/products", productsHandler.ListProducts)
			storefront.GET("/products/filters", productsHandler.GetFilterOptions)
			storefront.GET("/products/slug/:slug", productsHandler.GetProductBySlug)
			storefront.GET("/products/:id", productsHandler.GetProduct)
			storefront.POST("/products/:id/reviews", productsHandler.CreateReview)
		}

		// Cart
		cart := api.Group("/cart")
		{
			cart.GET("", cartHandler.GetCart)
			cart.DELETE("", cartHandler.ClearCart)
			cart.POST("/items", cartHandler.AddItem)
			cart.PUT("/items/:productId", cartHandler.UpdateItem)
			cart.DELETE("/items/:productId", cartHandler.RemoveItem)
		}

		// Checkout handoff
		checkout := api.Group("/checkout")
		{
			checkout.POST("/session", checkoutHandler.CreateSession)
			checkout.POST("/confirm", checkoutHandler.Confirm)
		}

		// Style matcher
		api.POST("/style-matcher", styleMatcherHandler.Match)

		// Admin session
		auth := api.Group("/auth/admin")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
		}

		// Admin CRUD behind the session cookie
		admin := api.Group("/admin")
		admin.Use(middleware.AdminAuthMiddleware(cfg.SessionSecret))
		{
			admin.GET("/auth/check-session", authHandler.CheckSession)
			admin.GET("/products", productsHandler.ListAllProducts)
			admin.GET("/products/export", exportHandler.ExportProducts)
			admin.GET("/products/:id", productsHandler.GetProduct)
			admin.POST("/products", productsHandler.CreateProduct)
			admin.PUT("/products/:id", productsHandler.UpdateProduct)
			admin.DELETE("/products/:id", productsHandler.DeleteProduct)
		}
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("SoleMate service starting on port %s", cfg.Port)
		if err := router.Run(":" + cfg.Port); err != nil {
			log.Fatal("Failed to start server:", err)
		}
	}()

	<-quit
	log.Println("Shutting down solemate-service...")

	if err := redisClient.Close(); err != nil {
		log.Printf("Error closing redis client: %v", err)
	}

	log.Println("SoleMate service stopped")
}
