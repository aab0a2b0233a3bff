package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"train-assist-service/internal/http/middleware"
)

func NewRouter(handler *Handler, log zerolog.Logger, env string) *gin.Engine {
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(log))
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"*"},
		ExposeHeaders:   []string{"Content-Type"},
		MaxAge:          12 * time.Hour,
	}))

	api := router.Group("/api")
	{
		api.GET("/health", handler.health)
		api.GET("/trains", handler.searchTrains)
		api.GET("/trains/:trainId/coaches", handler.listCoaches)
		api.POST("/coaches/:coachId/crowd", handler.submitCrowdReport)
		api.POST("/sos", handler.submitSOSReport)
		api.GET("/sos", handler.listSOSReports)
	}

	return router
}
