// Package gateway implements the NERP payment-gateway simulator: a stand-in
// payment processor with runtime chaos controls (injected latency and error
// rate) and on-demand settlement batch snapshots.
package gateway

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Here2ServeU/fintech-platform-engineering/internal/chaos"
	"github.com/Here2ServeU/fintech-platform-engineering/pkg/metrics"
	"github.com/Here2ServeU/fintech-platform-engineering/pkg/models"
)

const (
	serviceVersion  = "1.0.0"
	batchProcessing = "processing"
	batchCurrency   = "USD"

	approvalCode    = "00"
	approvalMessage = "Approved"

	gatewayErrorCode    = "GATEWAY_ERROR"
	gatewayErrorMessage = "Simulated payment processing failure"
)

var supportedCurrencies = []string{"USD", "EUR", "GBP", "JPY", "CHF", "CAD"}

// ErrorDraw produces a uniform value in [0,1) compared against the injected
// error rate on every processing call. Tests inject a fixed draw.
type ErrorDraw func() float64

// Service owns the gateway's process-lifetime state: the append-only payment
// ledger, the batch list and the chaos parameters. Failed payments never
// enter the ledger.
type Service struct {
	mu       sync.Mutex
	payments []models.PaymentRecord
	batches  []models.SettlementBatch

	chaos  *chaos.State
	draw   ErrorDraw
	logger *zap.Logger
}

// NewService creates a gateway simulator with zeroed chaos controls. A nil
// draw falls back to math/rand.
func NewService(logger *zap.Logger, draw ErrorDraw) *Service {
	if draw == nil {
		draw = rand.Float64
	}
	return &Service{
		chaos:  chaos.NewState(),
		draw:   draw,
		logger: logger,
	}
}

// Chaos exposes the service's fault-injection state.
func (s *Service) Chaos() *chaos.State {
	return s.chaos
}

// Process runs the injected failure model against a parsed payment request.
// The caller has already slept the injected latency; start marks the arrival
// of the request so processing_ms includes that delay. On an injected error
// it returns a failure payload and leaves the ledger untouched.
func (s *Service) Process(req *models.PaymentRequest, start time.Time, errorRate float64) (*models.PaymentRecord, *models.PaymentFailure) {
	if s.draw() < errorRate {
		s.logger.Error("[SIMULATED] Payment processing error",
			zap.Float64("amount", req.Amount))
		metrics.PaymentsProcessed.WithLabelValues(string(models.PaymentFailed)).Inc()
		return nil, &models.PaymentFailure{
			PaymentID:    uuid.New().String(),
			Status:       models.PaymentFailed,
			ErrorCode:    gatewayErrorCode,
			ErrorMessage: gatewayErrorMessage,
		}
	}

	applyPaymentDefaults(req)

	record := models.PaymentRecord{
		PaymentID:                uuid.New().String(),
		TransactionID:            req.TransactionID,
		Amount:                   req.Amount,
		Currency:                 req.Currency,
		Status:                   models.PaymentSettled,
		ProcessorResponseCode:    approvalCode,
		ProcessorResponseMessage: approvalMessage,
		Timestamp:                unixSeconds(time.Now()),
		ProcessingMS:             round(float64(time.Since(start))/float64(time.Millisecond), 2),
	}

	s.mu.Lock()
	s.payments = append(s.payments, record)
	s.mu.Unlock()

	metrics.PaymentsProcessed.WithLabelValues(string(models.PaymentSettled)).Inc()
	metrics.PaymentLatency.Observe(time.Since(start).Seconds())

	s.logger.Info("Payment processed",
		zap.String("payment_id", record.PaymentID),
		zap.Float64("amount", record.Amount),
		zap.String("currency", record.Currency))

	return &record, nil
}

// TriggerSettlement takes an immutable snapshot over the current ledger and
// appends it to the batch list. Later payments do not change the batch.
func (s *Service) TriggerSettlement() models.SettlementBatch {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := decimal.Zero
	for _, p := range s.payments {
		total = total.Add(decimal.NewFromFloat(p.Amount))
	}

	batch := models.SettlementBatch{
		BatchID:           uuid.New().String(),
		Status:            batchProcessing,
		TransactionsCount: len(s.payments),
		TotalAmount:       total.InexactFloat64(),
		Currency:          batchCurrency,
		StartedAt:         unixSeconds(time.Now()),
	}
	s.batches = append(s.batches, batch)

	metrics.SettlementBatches.Inc()
	s.logger.Info("Settlement batch triggered",
		zap.String("batch_id", batch.BatchID),
		zap.Int("transactions_count", batch.TransactionsCount))

	return batch
}

// Batches returns all triggered batches in insertion order.
func (s *Service) Batches() []models.SettlementBatch {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.SettlementBatch, len(s.batches))
	copy(out, s.batches)
	return out
}

// PaymentCount returns the current ledger length.
func (s *Service) PaymentCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.payments)
}

func applyPaymentDefaults(req *models.PaymentRequest) {
	if req.TransactionID == "" {
		req.TransactionID = uuid.New().String()
	}
	if req.Currency == "" {
		req.Currency = "USD"
	}
}

func unixSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / 1e9
}

func round(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}
