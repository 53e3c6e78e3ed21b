package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/fadilmartias/career-coach/internal/apperr"
	"github.com/fadilmartias/career-coach/internal/config"
	"github.com/fadilmartias/career-coach/internal/domain/fiber/handler"
	"github.com/fadilmartias/career-coach/internal/middleware"
	"github.com/fadilmartias/career-coach/internal/model"
	"github.com/fadilmartias/career-coach/internal/repository"
	"github.com/fadilmartias/career-coach/internal/scheduler"
	"github.com/fadilmartias/career-coach/internal/service"
	"github.com/fadilmartias/career-coach/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	ctx := context.Background()
	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()

	app := fiber.New(fiber.Config{
		AppName: appConfig.Name,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			code := apperr.StatusCode(err)

			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}

			return ctx.Status(code).JSON(fiber.Map{"error": message})
		},
	})
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: appConfig.Env != "production",
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return appConfig.Env == "production"
		},
	}))
	app.Use(healthcheck.New())
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))
	app.Use(middleware.RateLimiter(50, 1*time.Minute))

	db := ConnectDB()

	userRepo := repository.NewUserRepository(db)
	insightRepo := repository.NewInsightRepository(db)
	assessmentRepo := repository.NewAssessmentRepository(db)
	coverLetterRepo := repository.NewCoverLetterRepository(db)

	generator, err := newTextGenerator(ctx, appConfig.AIProvider)
	if err != nil {
		log.Fatal(err)
	}

	userUC := usecase.NewUserUsecase(db, userRepo, insightRepo, generator)
	insightUC := usecase.NewInsightUsecase(userRepo, insightRepo, generator)
	assessmentUC := usecase.NewAssessmentUsecase(userRepo, assessmentRepo, generator)
	coverLetterUC := usecase.NewCoverLetterUsecase(userRepo, coverLetterRepo, generator)

	api := app.Group("/api", middleware.RequireAuth())
	handler.NewUserHandler(userUC).RegisterRoutes(api)
	handler.NewInterviewHandler(insightUC, assessmentUC).RegisterRoutes(api)
	handler.NewCoverLetterHandler(coverLetterUC).RegisterRoutes(api)

	refresher := scheduler.NewInsightRefresher(insightUC, "@hourly")
	if err := refresher.Start(); err != nil {
		log.Fatal(err)
	}
	defer refresher.Stop()

	log.Println("Server running on ", appConfig.Port)
	if err := app.Listen(appConfig.Port); err != nil {
		log.Fatal(err)
	}
}

func newTextGenerator(ctx context.Context, provider string) (service.TextGenerator, error) {
	switch provider {
	case "openrouter":
		return service.NewOpenRouterService(), nil
	case "gemini":
		return service.NewGeminiService(ctx)
	default:
		return nil, fmt.Errorf("unknown AI provider %q", provider)
	}
}

func ConnectDB() *gorm.DB {
	dbConfig := config.LoadDBConfig()
	appConfig := config.LoadAppConfig()

	// TranslateError so unique-index violations surface as
	// gorm.ErrDuplicatedKey; the insight create path depends on it.
	db, err := gorm.Open(postgres.Open(dbConfig.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Could not connect to database: %v", err)
	}
	pgDB, err := db.DB()
	if err != nil {
		log.Fatalf("Could not get database instance: %v", err)
	}
	if appConfig.Env != "production" {
		pgDB.SetMaxIdleConns(5)
		pgDB.SetMaxOpenConns(10)
		pgDB.SetConnMaxLifetime(30 * time.Minute)
	} else {
		pgDB.SetMaxIdleConns(20)
		pgDB.SetMaxOpenConns(200)
		pgDB.SetConnMaxLifetime(time.Hour)
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.IndustryInsight{},
		&model.Assessment{},
		&model.CoverLetter{},
	)
	if err != nil {
		log.Fatal("migration failed: ", err)
	}
	return db
}
