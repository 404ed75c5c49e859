package frauddetector

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Routes registers the fraud detector endpoints on the router.
func Routes(router *gin.Engine, service *Service, logger *zap.Logger) {
	handler := NewHandler(service, logger)

	router.GET("/health", handler.Health)
	router.GET("/metrics", handler.Metrics)
	router.POST("/score", handler.Score)
	router.POST("/model/swap", handler.SwapModel)
}
