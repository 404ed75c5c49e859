// Package server assembles the gin engine shared by the simulator services.
package server

import (
	"fmt"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// New creates a router with the standard middleware stack. Service packages
// register their routes on it; the JSON GET /metrics document of the
// simulation contract stays with each service, the prometheus registry is
// exposed here.
func New(logger *zap.Logger) *gin.Engine {
	router := gin.New()

	router.Use(ginzap.Ginzap(logger, "2006-01-02T15:04:05Z07:00", true))
	router.Use(ginzap.RecoveryWithZap(logger, true))
	router.Use(cors.Default())

	router.GET("/metrics/prometheus", gin.WrapH(promhttp.Handler()))

	return router
}

// Run serves the router on the given port until the listener fails.
func Run(router *gin.Engine, port int, logger *zap.Logger) {
	addr := fmt.Sprintf(":%d", port)
	if err := router.Run(addr); err != nil {
		logger.Fatal("HTTP server stopped", zap.Error(err))
	}
}
