package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/quizzgen/quizzgen-backend/internal/handlers"
	"github.com/quizzgen/quizzgen-backend/internal/logger"
	"github.com/quizzgen/quizzgen-backend/internal/middleware"
)

type RouterConfig struct {
	Log             *logger.Logger
	AllowOrigins    []string
	GenerateHandler *handlers.GenerateHandler
	QuizzHandler    *handlers.QuizzHandler
	CategoryHandler *handlers.CategoryHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(cfg.Log))

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "X-Requested-With", "X-Request-ID"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api")
	{
		api.POST("/question/generate", cfg.GenerateHandler.GenerateCategory)
		api.POST("/quizz/generate", cfg.GenerateHandler.GenerateQuizz)
		api.GET("/quizz/:id", cfg.QuizzHandler.GetQuizz)
		api.GET("/question/categories/:id", cfg.CategoryHandler.GetCategory)
	}

	return router
}
