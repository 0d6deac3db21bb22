package main

import (
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"weathermap/internal/config"
	"weathermap/internal/handlers"
	"weathermap/internal/middleware"
	"weathermap/internal/models"
	"weathermap/internal/repositories"
	"weathermap/internal/services"
	"weathermap/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// --- Database ---
	db, err := openDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// --- RabbitMQ (optional) ---
	// Without a broker the service still runs; activity events are skipped.
	var mqClient *rabbitmq.Client
	if cfg.RabbitMQURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
	} else {
		log.Println("RABBITMQ_URL not set, activity events disabled")
	}

	// --- Application ---
	app, err := NewApp(cfg, db, mqClient)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}

	// --- Start RabbitMQ Consumer in a Goroutine ---
	if mqClient != nil {
		go func() {
			log.Println("Starting RabbitMQ consumer for activity events...")
			messageHandler := func(msg amqp.Delivery) error {
				log.Printf("Received activity event (Tag: %d): %s", msg.DeliveryTag, string(msg.Body))
				return nil // Return nil to acknowledge
			}
			if consumerErr := mqClient.ConsumeActivityEvents(messageHandler); consumerErr != nil {
				log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
			}
		}()
	}

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", cfg.AppPort)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
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

// NewApp wires repositories, services and handlers into a Fiber app. The
// mqClient may be nil; resource services then skip event publishing.
func NewApp(cfg *config.Config, db *gorm.DB, mqClient *rabbitmq.Client) (*fiber.App, error) {
	// Auto-migrate models
	err := db.AutoMigrate(&models.User{}, &models.Comment{}, &models.Favorite{}, &models.Rating{})
	if err != nil {
		return nil, err
	}

	// --- Initialize Repositories ---
	userRepo := repositories.NewGORMUserRepository(db)
	commentRepo := repositories.NewGORMCommentRepository(db)
	favoriteRepo := repositories.NewGORMFavoriteRepository(db)
	ratingRepo := repositories.NewGORMRatingRepository(db)

	// --- Initialize Services ---
	authService := services.NewAuthService(userRepo, cfg.JWTSecret)
	commentService := services.NewCommentService(commentRepo, mqClient)
	favoriteService := services.NewFavoriteService(favoriteRepo, mqClient)
	ratingService := services.NewRatingService(ratingRepo, mqClient)

	// --- Initialize Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	commentHandler := handlers.NewCommentHandler(commentService)
	favoriteHandler := handlers.NewFavoriteHandler(favoriteService)
	ratingHandler := handlers.NewRatingHandler(ratingService)

	// --- Initialize Fiber App ---
	app := fiber.New()

	// --- Middleware ---
	app.Use(logger.New()) // Request logger

	// --- API Routes ---
	api := app.Group("/api")

	// Health check is public.
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	// Authentication routes (public)
	authHandler.RegisterRoutes(api)

	// Protected routes (require a valid bearer token)
	protected := api.Group("", middleware.AuthRequired(authService))
	authHandler.RegisterProtectedRoutes(protected)
	commentHandler.RegisterRoutes(protected)
	favoriteHandler.RegisterRoutes(protected)
	ratingHandler.RegisterRoutes(protected)

	return app, nil
}

// openDatabase opens a PostgreSQL connection for postgres DSNs and falls
// back to a SQLite file otherwise. TranslateError makes unique constraint
// violations surface as gorm.ErrDuplicatedKey on both drivers.
func openDatabase(databaseURL string) (*gorm.DB, error) {
	gormCfg := &gorm.Config{TranslateError: true}
	if strings.HasPrefix(databaseURL, "postgres://") || strings.HasPrefix(databaseURL, "host=") {
		return gorm.Open(postgres.Open(databaseURL), gormCfg)
	}
	return gorm.Open(sqlite.Open(databaseURL), gormCfg)
}
