package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/dspiliot/agora/internal/logger"
)

// RouterConfig wires handlers into the HTTP router.
type RouterConfig struct {
	Diagnostics  *DiagnosticsHandler
	Models       *ModelsHandler
	Logger       *logger.Logger
	AllowOrigins []string
}

// NewRouter builds the gin engine with CORS, request logging, and all
// routes mounted.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	if cfg.Logger != nil {
		router.Use(RequestLogger(cfg.Logger))
	}

	origins := cfg.AllowOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000", "http://localhost:5173"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", HealthCheck)

	api := router.Group("/api")
	{
		diag := api.Group("/diagnostics")
		diag.POST("/new-question", cfg.Diagnostics.NewQuestion)
		diag.POST("/grade", cfg.Diagnostics.Grade)
		diag.GET("/history", cfg.Diagnostics.History)
		diag.POST("/contest", cfg.Diagnostics.Contest)
		diag.GET("/stats", cfg.Diagnostics.Stats)

		api.GET("/llm/models", cfg.Models.List)
	}

	return router
}
