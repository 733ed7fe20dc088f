package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"tribaltides/internal/config"
	"tribaltides/internal/handlers"
	"tribaltides/internal/models"
	"tribaltides/internal/repositories"
	"tribaltides/internal/seed"
	"tribaltides/internal/services"
	"tribaltides/pkg/rabbitmq"
)

func main() {
	cfg := config.Load()

	// --- Database ---
	db, err := openDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.Booking{},
	); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	// --- Repositories ---
	productRepo := repositories.NewGORMProductRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)
	bookingRepo := repositories.NewGORMBookingRepository(db)

	if cfg.SeedOnStart {
		if err := seed.EnsureSeeded(productRepo); err != nil {
			log.Fatalf("Failed to seed catalog: %v", err)
		}
	}

	// --- Event publisher (optional) ---
	var publisher services.EventPublisher
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
		publisher = mqClient
	} else {
		log.Println("RABBITMQ_URL not set; event publishing disabled")
	}

	// --- Services ---
	catalogService := services.NewCatalogService(productRepo)
	orderService := services.NewOrderService(orderRepo, publisher)
	bookingService := services.NewBookingService(bookingRepo, publisher)

	// --- Handlers ---
	productHandler := handlers.NewProductHandler(catalogService)
	cartHandler := handlers.NewCartHandler(catalogService)
	orderHandler := handlers.NewOrderHandler(orderService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	frontendHandler := handlers.NewFrontendHandler(cfg.StaticImagesDir, cfg.FrontendDist)

	// --- Fiber app ---
	app := fiber.New()

	app.Use(logger.New())
	app.Use(requestid.New(requestid.Config{
		Generator: func() string { return uuid.NewString() },
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: "GET,POST,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	// API routes must be registered before the SPA catch-all.
	api := app.Group("/api")
	productHandler.RegisterRoutes(api)
	cartHandler.RegisterRoutes(api)
	orderHandler.RegisterRoutes(api)
	bookingHandler.RegisterRoutes(api)
	frontendHandler.RegisterRoutes(app)

	// --- Start HTTP server ---
	log.Printf("Starting server on port %s", cfg.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.Port); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}

// openDatabase opens the configured GORM driver. SQLite is the default;
// Postgres is selected with DATABASE_DRIVER=postgres.
func openDatabase(cfg config.Config) (*gorm.DB, error) {
	switch cfg.DatabaseDriver {
	case "sqlite":
		return gorm.Open(sqlite.Open(cfg.DatabaseDSN), &gorm.Config{})
	case "postgres":
		return gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DatabaseDriver)
	}
}
