package main

import (
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Here2ServeU/fintech-platform-engineering/internal/config"
	"github.com/Here2ServeU/fintech-platform-engineering/internal/gateway"
	"github.com/Here2ServeU/fintech-platform-engineering/internal/server"
	"github.com/Here2ServeU/fintech-platform-engineering/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	cfg := config.Load(8092)

	zapLogger, err := logger.NewLogger("payment-gateway", cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Sync()

	service := gateway.NewService(zapLogger, nil)

	router := server.New(zapLogger)
	gateway.Routes(router, service, zapLogger)

	zapLogger.Info("NERP Payment Gateway starting", zap.Int("port", cfg.Port))

	server.Run(router, cfg.Port, zapLogger)
}
