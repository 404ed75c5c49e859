package txengine

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Here2ServeU/fintech-platform-engineering/pkg/models"
)

// Handler provides HTTP handlers for the transaction engine
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new transaction engine handler
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Health reports service identity.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"platform": "NERP",
		"service":  "nerp-transaction-engine",
		"version":  serviceVersion,
	})
}

// Metrics serves the JSON metrics document of the simulation contract.
func (h *Handler) Metrics(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"total_transactions": h.service.TransactionCount(),
		"avg_processing_ms":  45.2,
		"error_rate":         0.001,
		"throughput_tps":     1250,
	})
}

// ProcessTransaction routes a financial transaction. Blocked transactions
// are still 201s; the engine's job is to record a decision, not reject the
// call.
func (h *Handler) ProcessTransaction(c *gin.Context) {
	start := time.Now()

	var req models.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	record := h.service.Process(&req, start)
	c.JSON(http.StatusCreated, record)
}

// ListTransactions returns the tail of the transaction list in insertion
// order. limit defaults to 50; an unparseable limit falls back to it.
func (h *Handler) ListTransactions(c *gin.Context) {
	limit := defaultListLimit
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = n
		}
	}

	transactions, total := h.service.Recent(limit)
	c.JSON(http.StatusOK, gin.H{
		"transactions": transactions,
		"total":        total,
	})
}

// SettlementStatus returns a synthetic batch progress snapshot. The batch id
// is fabricated fresh on every read and the progress figures are fixed;
// no real batch tracking sits behind this surface.
func (h *Handler) SettlementStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"batch_id":                     uuid.New().String(),
		"status":                       "processing",
		"progress_pct":                 67.5,
		"transactions_processed":       h.service.TransactionCount(),
		"estimated_completion_minutes": 45,
	})
}

// InjectLatency accepts a chaos latency value, logs and echoes it, and
// applies nothing: the engine's processing path has no chaos hooks.
func (h *Handler) InjectLatency(c *gin.Context) {
	var req models.ChaosLatencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	delayMS := 500
	if req.DelayMS != nil {
		delayMS = *req.DelayMS
	}
	h.logger.Warn("[CHAOS] Latency injection requested (not applied)",
		zap.Int("delay_ms", delayMS))

	c.JSON(http.StatusOK, gin.H{"chaos": "latency_injected", "delay_ms": delayMS})
}

// InjectErrors accepts a chaos error rate, logs and echoes it, and applies
// nothing.
func (h *Handler) InjectErrors(c *gin.Context) {
	var req models.ChaosErrorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	errorRate := 0.1
	if req.ErrorRate != nil {
		errorRate = *req.ErrorRate
	}
	h.logger.Warn("[CHAOS] Error injection requested (not applied)",
		zap.Float64("error_rate", errorRate))

	c.JSON(http.StatusOK, gin.H{"chaos": "errors_injected", "error_rate": errorRate})
}
