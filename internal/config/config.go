// Package config loads per-service configuration from the environment.
package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config carries the operational parameters for one simulator service.
// FraudThreshold is only meaningful for the fraud detector.
type Config struct {
	Port           int
	LogLevel       string
	FraudThreshold float64
}

// Load reads configuration from a .env file and the environment. Each
// service passes its own default port (8091 fraud detector, 8092 payment
// gateway, 8090 transaction engine).
func Load(defaultPort int) *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	viper.SetDefault("PORT", defaultPort)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("FRAUD_THRESHOLD", 0.85)

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("No config file found: %v", err)
	}

	return &Config{
		Port:           viper.GetInt("PORT"),
		LogLevel:       viper.GetString("LOG_LEVEL"),
		FraudThreshold: viper.GetFloat64("FRAUD_THRESHOLD"),
	}
}
