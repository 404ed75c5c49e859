package frauddetector

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Here2ServeU/fintech-platform-engineering/pkg/models"
)

// Handler provides HTTP handlers for the fraud detector
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new fraud detector handler
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Health reports service identity and the active model version.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":        "healthy",
		"platform":      "NERP",
		"service":       "nerp-fraud-detector",
		"model_version": h.service.ModelVersion(),
		"version":       serviceVersion,
	})
}

// Metrics serves the JSON metrics document of the simulation contract. The
// latency and quality figures are fixed simulator values.
func (h *Handler) Metrics(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"total_scored":        h.service.TotalScored(),
		"avg_scoring_ms":      12.5,
		"model_version":       h.service.ModelVersion(),
		"precision":           0.956,
		"recall":              0.923,
		"false_positive_rate": 0.0008,
	})
}

// Score scores a transaction for fraud probability.
func (h *Handler) Score(c *gin.Context) {
	var req models.ScoringRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	result := h.service.Score(&req)
	c.JSON(http.StatusOK, result)
}

// SwapModel hot-swaps the fraud detection model (for failover scenarios).
func (h *Handler) SwapModel(c *gin.Context) {
	var req models.ModelSwapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	version := req.ModelVersion
	if version == "" {
		version = "fraud_detector_v2"
	}

	previous, current := h.service.SwapModel(version)
	h.logger.Info("Model hot-swap",
		zap.String("previous", previous),
		zap.String("current", current))

	c.JSON(http.StatusOK, gin.H{
		"previous": previous,
		"current":  current,
		"status":   "swapped",
	})
}
