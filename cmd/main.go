package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/quizzgen/quizzgen-backend/internal/db"
	"github.com/quizzgen/quizzgen-backend/internal/handlers"
	"github.com/quizzgen/quizzgen-backend/internal/logger"
	"github.com/quizzgen/quizzgen-backend/internal/repos"
	"github.com/quizzgen/quizzgen-backend/internal/server"
	"github.com/quizzgen/quizzgen-backend/internal/services"
	"github.com/quizzgen/quizzgen-backend/internal/utils"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Postgres
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Error("Postgres init failed", "error", err)
		os.Exit(1)
	}
	if err = postgresService.AutoMigrateAll(); err != nil {
		log.Error("Postgres auto migration failed", "error", err)
		os.Exit(1)
	}
	quizzDB := postgresService.QuizzDB()
	devDB := postgresService.DevDB()

	// Repos
	log.Info("Setting up repos from main...")
	quizzRepo := repos.NewQuizzRepo(quizzDB, log)
	quizzQuestionRepo := repos.NewQuizzQuestionRepo(quizzDB, log)
	quizzAnswerRepo := repos.NewQuizzAnswerRepo(quizzDB, log)
	categoryRepo := repos.NewQuestionCategoryRepo(devDB, log)
	categoryQuestionRepo := repos.NewCategoryQuestionRepo(devDB, log)

	// Services
	log.Info("Setting up services from main...")
	geminiClient := services.NewGeminiClient(log)
	sanitizer := services.NewSanitizer(utils.GetEnvAsBool("GENERATION_STRICT", false, log))
	generationService := services.NewGenerationService(log, services.ExtractPDFPages, geminiClient, sanitizer)
	quizzVariant := services.NewQuizzVariant(log, quizzDB, sanitizer, quizzRepo, quizzQuestionRepo, quizzAnswerRepo)
	categoryVariant := services.NewCategoryVariant(log, devDB, sanitizer, categoryRepo, categoryQuestionRepo)
	quizzService := services.NewQuizzService(log, quizzRepo)
	categoryService := services.NewCategoryService(log, categoryRepo)

	// Handlers
	log.Info("Setting up handlers from main...")
	generateHandler := handlers.NewGenerateHandler(log, generationService, quizzVariant, categoryVariant)
	quizzHandler := handlers.NewQuizzHandler(log, quizzService)
	categoryHandler := handlers.NewCategoryHandler(log, categoryService)

	// Router
	log.Info("Setting up router from main...")
	allowOrigins := strings.Split(utils.GetEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000", log), ",")
	router := server.NewRouter(server.RouterConfig{
		Log:             log,
		AllowOrigins:    allowOrigins,
		GenerateHandler: generateHandler,
		QuizzHandler:    quizzHandler,
		CategoryHandler: categoryHandler,
	})

	port := utils.GetEnv("PORT", "8080", log)
	log.Info("Server listening", "port", port)
	if err := router.Run(":" + port); err != nil {
		log.Error("Server failed", "error", err)
	}
}
