package gateway

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Routes registers the payment gateway endpoints on the router.
func Routes(router *gin.Engine, service *Service, logger *zap.Logger) {
	handler := NewHandler(service, logger)

	router.GET("/health", handler.Health)
	router.GET("/metrics", handler.Metrics)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/process", handler.ProcessPayment)
		v1.POST("/settlement/trigger", handler.TriggerSettlement)
		v1.GET("/settlement/batches", handler.ListBatches)
	}

	ops := router.Group("/ops")
	{
		ops.POST("/chaos/latency", handler.InjectLatency)
		ops.POST("/chaos/error", handler.InjectErrors)
		ops.POST("/reset", handler.Reset)
	}
}
