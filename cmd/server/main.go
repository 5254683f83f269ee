package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/gofiber/contrib/otelfiber/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "github.com/jackc/pgx/v5/stdlib"

	"interview-prep-service/internal/ai"
	"interview-prep-service/internal/api"
	"interview-prep-service/internal/config"
	"interview-prep-service/internal/repository"
	"interview-prep-service/internal/s3"
	"interview-prep-service/internal/service"
	"interview-prep-service/internal/tracing"
	_ "interview-prep-service/migrations"
)

func main() {
	if err := godotenv.Load(".env.dev"); err != nil {
		fmt.Println("No .env.dev file found, reading from environment variables provided by Docker")
	}

	api.SetupGlobalHandler("interview-prep-service")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	shutdownTracer, err := tracing.InitTracerProvider("interview-prep-service")
	if err != nil {
		log.Fatalf("Failed to initialize OpenTelemetry: %v", err)
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			log.Printf("Error shutting down tracer provider: %v", err)
		}
	}()

	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		handleMigrations(cfg.DatabaseURL)
		return
	}

	db := connectDB(cfg.DatabaseURL)
	defer db.Close()

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatalf("Failed to create upload directory: %v", err)
	}

	generator, err := ai.NewGeminiGenerator(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatalf("Failed to create Gemini client: %v", err)
	}

	var presigner *s3.ImagePresigner
	if cfg.S3BucketName != "" {
		presigner, err = s3.NewImagePresigner()
		if err != nil {
			log.Fatalf("Failed to create S3 presigner: %v", err)
		}
	}

	userRepo := repository.NewPostgresUserRepository(db)
	sessionRepo := repository.NewPostgresSessionRepository(db)
	questionRepo := repository.NewPostgresQuestionRepository(db)

	authService := service.NewAuthService(userRepo)
	sessionService := service.NewSessionService(sessionRepo, questionRepo)
	questionService := service.NewQuestionService(sessionRepo, questionRepo)
	aiService := service.NewAIService(generator)

	authHandler := api.NewAuthHandler(authService, presigner, cfg.UploadDir, cfg.PublicURL)
	sessionHandler := api.NewSessionHandler(sessionService)
	questionHandler := api.NewQuestionHandler(questionService)
	aiHandler := api.NewAIHandler(aiService)

	app := fiber.New()
	app.Use(otelfiber.Middleware())
	app.Use(api.PrometheusMiddleware())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": "interview-prep-service"})
	})

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	app.Static("/uploads", cfg.UploadDir)

	apiGroup := app.Group("/api")

	authRoutes := apiGroup.Group("/auth")
	authRoutes.Post("/register", authHandler.Register)
	authRoutes.Post("/login", authHandler.Login)
	authRoutes.Post("/upload-image", authHandler.UploadImage)
	authRoutes.Get("/profile", api.AuthMiddleware(), authHandler.GetProfile)
	if presigner != nil {
		authRoutes.Get("/avatar-upload-url", api.AuthMiddleware(), authHandler.GetAvatarUploadURL)
	}

	sessionRoutes := apiGroup.Group("/sessions")
	sessionRoutes.Use(api.AuthMiddleware())
	sessionRoutes.Post("/create", sessionHandler.CreateSession)
	sessionRoutes.Get("/my-sessions", sessionHandler.ListMySessions)
	sessionRoutes.Get("/:id", sessionHandler.GetSession)
	sessionRoutes.Delete("/:id", sessionHandler.DeleteSession)

	questionRoutes := apiGroup.Group("/questions")
	questionRoutes.Use(api.AuthMiddleware())
	questionRoutes.Post("/add", questionHandler.AddQuestionsToSession)
	questionRoutes.Post("/:id/pin", questionHandler.TogglePin)
	questionRoutes.Post("/:id/note", questionHandler.UpdateNote)

	aiRoutes := apiGroup.Group("/ai")
	aiRoutes.Use(api.AuthMiddleware())
	aiRoutes.Post("/generate-questions", aiHandler.GenerateQuestions)
	aiRoutes.Post("/generate-explanation", aiHandler.GenerateExplanation)

	log.Printf("Listening interview-prep-service on port %s", cfg.AppPort)
	log.Fatal(app.Listen(":" + cfg.AppPort))
}

func connectDB(databaseURL string) *sqlx.DB {
	db, err := sqlx.Connect("pgx", databaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Successfully connected to the database.")
	return db
}

func handleMigrations(databaseURL string) {
	fmt.Println("Running database migrations...")

	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database for migration: %v", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("failed to set goose dialect: %v", err)
	}

	if err := goose.Up(db, "migrations"); err != nil {
		log.Fatalf("goose: failed to run migrations: %v", err)
	}

	fmt.Println("Migrations applied successfully!")
}
