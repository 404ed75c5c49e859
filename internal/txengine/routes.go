package txengine

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Routes registers the transaction engine endpoints on the router.
func Routes(router *gin.Engine, service *Service, logger *zap.Logger) {
	handler := NewHandler(service, logger)

	router.GET("/health", handler.Health)
	router.GET("/metrics", handler.Metrics)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/transactions", handler.ProcessTransaction)
		v1.GET("/transactions", handler.ListTransactions)
		v1.GET("/settlement/status", handler.SettlementStatus)
	}

	ops := router.Group("/ops")
	{
		ops.POST("/chaos/latency", handler.InjectLatency)
		ops.POST("/chaos/error", handler.InjectErrors)
	}
}
