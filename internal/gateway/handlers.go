package gateway

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Here2ServeU/fintech-platform-engineering/pkg/metrics"
	"github.com/Here2ServeU/fintech-platform-engineering/pkg/models"
)

// Handler provides HTTP handlers for the payment gateway
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new gateway handler
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Health reports service identity.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"platform":  "NERP",
		"service":   "nerp-payment-gateway",
		"version":   serviceVersion,
		"processor": "simulated",
	})
}

// Metrics serves the JSON metrics document of the simulation contract.
func (h *Handler) Metrics(c *gin.Context) {
	_, errorRate := h.service.chaos.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"total_processed":      h.service.PaymentCount(),
		"avg_latency_ms":       35.8,
		"error_rate":           errorRate,
		"settlement_batches":   len(h.service.Batches()),
		"currencies_supported": supportedCurrencies,
	})
}

// ProcessPayment processes a payment through the simulated gateway. The
// injected latency is applied before the body is even parsed, matching the
// real gateway's behavior of stalling the whole call. Only this request
// blocks; the sleep holds no lock.
func (h *Handler) ProcessPayment(c *gin.Context) {
	start := time.Now()

	delayMS, errorRate := h.service.chaos.Snapshot()
	if delayMS > 0 {
		time.Sleep(time.Duration(delayMS) * time.Millisecond)
	}

	var req models.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	record, failure := h.service.Process(&req, start, errorRate)
	if failure != nil {
		c.JSON(http.StatusBadGateway, failure)
		return
	}

	c.JSON(http.StatusCreated, record)
}

// TriggerSettlement triggers a settlement batch over the current ledger.
func (h *Handler) TriggerSettlement(c *gin.Context) {
	batch := h.service.TriggerSettlement()
	c.JSON(http.StatusCreated, batch)
}

// ListBatches lists all settlement batches.
func (h *Handler) ListBatches(c *gin.Context) {
	batches := h.service.Batches()
	c.JSON(http.StatusOK, gin.H{
		"batches": batches,
		"total":   len(batches),
	})
}

// InjectLatency is the chaos endpoint setting the gateway processing delay.
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
	h.service.chaos.SetLatency(delayMS)

	stored, _ := h.service.chaos.Snapshot()
	metrics.ChaosLatencyMS.Set(float64(stored))
	h.logger.Warn("[CHAOS] Gateway latency set", zap.Int("delay_ms", stored))

	c.JSON(http.StatusOK, gin.H{"chaos": "latency_injected", "delay_ms": stored})
}

// InjectErrors is the chaos endpoint setting the gateway error rate. No
// bounds are enforced; rates above 1 make failure certain, below 0 never.
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
	h.service.chaos.SetErrorRate(errorRate)

	metrics.ChaosErrorRate.Set(errorRate)
	h.logger.Warn("[CHAOS] Gateway error rate set", zap.Float64("error_rate", errorRate))

	c.JSON(http.StatusOK, gin.H{"chaos": "errors_injected", "error_rate": errorRate})
}

// Reset clears all chaos injections.
func (h *Handler) Reset(c *gin.Context) {
	h.service.chaos.Reset()
	metrics.ChaosLatencyMS.Set(0)
	metrics.ChaosErrorRate.Set(0)
	h.logger.Info("[RESET] All chaos injections cleared")

	c.JSON(http.StatusOK, gin.H{
		"status":     "reset",
		"latency_ms": 0,
		"error_rate": 0.0,
	})
}
