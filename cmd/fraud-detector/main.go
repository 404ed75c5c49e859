package main

import (
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Here2ServeU/fintech-platform-engineering/internal/config"
	"github.com/Here2ServeU/fintech-platform-engineering/internal/frauddetector"
	"github.com/Here2ServeU/fintech-platform-engineering/internal/server"
	"github.com/Here2ServeU/fintech-platform-engineering/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	cfg := config.Load(8091)

	zapLogger, err := logger.NewLogger("fraud-detector", cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Sync()

	service := frauddetector.NewService(zapLogger, cfg.FraudThreshold, nil)

	router := server.New(zapLogger)
	frauddetector.Routes(router, service, zapLogger)

	zapLogger.Info("NERP Fraud Detector starting",
		zap.Int("port", cfg.Port),
		zap.String("model_version", service.ModelVersion()))

	server.Run(router, cfg.Port, zapLogger)
}
