package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load(8091)

	assert.Equal(t, 8091, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.InDelta(t, 0.85, cfg.FraudThreshold, 1e-9)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("FRAUD_THRESHOLD", "0.5")

	cfg := Load(8091)

	assert.Equal(t, 9999, cfg.Port)
	assert.InDelta(t, 0.5, cfg.FraudThreshold, 1e-9)
}
