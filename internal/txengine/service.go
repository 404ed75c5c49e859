// Package txengine implements the NERP transaction-engine simulator. It
// records approve/block decisions made from a caller-supplied fraud score;
// scoring and decisioning are separate stages composed only by the caller,
// so the engine never calls the fraud detector itself.
//
// The engine's chaos endpoints are inert by contract: they log and echo the
// requested values but never apply them to the processing path, unlike the
// payment gateway whose controls are live. The asymmetry is preserved as
// observed, not fixed.
package txengine

import (
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Here2ServeU/fintech-platform-engineering/pkg/metrics"
	"github.com/Here2ServeU/fintech-platform-engineering/pkg/models"
)

const (
	serviceVersion = "1.0.0"

	// blockThreshold is the engine's fixed routing cutoff. It is a separate
	// constant from the fraud detector's configurable classification
	// threshold even though both default to 0.85; the two are independent
	// operational knobs.
	blockThreshold = 0.85
	blockReason    = "fraud_score_exceeded"

	defaultListLimit = 50
)

// Service owns the engine's process-lifetime state: the append-only
// transaction list.
type Service struct {
	mu           sync.Mutex
	transactions []models.TransactionRecord

	logger *zap.Logger
}

// NewService creates a transaction engine with an empty transaction list.
func NewService(logger *zap.Logger) *Service {
	return &Service{logger: logger}
}

// Process decides and records a transaction. A fraud score strictly above
// the block threshold yields a blocked record with a reason; anything else,
// the boundary value included, is approved. The record is appended either
// way and both outcomes are successes at the HTTP layer.
func (s *Service) Process(req *models.TransactionRequest, start time.Time) models.TransactionRecord {
	applyTransactionDefaults(req)

	record := models.TransactionRecord{
		ID:                   uuid.New().String(),
		AccountID:            req.AccountID,
		Amount:               req.Amount,
		Currency:             req.Currency,
		Merchant:             req.Merchant,
		MerchantCategoryCode: req.MerchantCategoryCode,
		Channel:              req.Channel,
		Timestamp:            unixSeconds(time.Now()),
	}

	if req.FraudScore > blockThreshold {
		record.Status = models.TransactionBlocked
		record.Reason = blockReason
		s.logger.Warn("Transaction BLOCKED",
			zap.String("id", record.ID),
			zap.Float64("fraud_score", req.FraudScore))
	} else {
		record.Status = models.TransactionApproved
		s.logger.Info("Transaction APPROVED",
			zap.String("id", record.ID),
			zap.Float64("amount", record.Amount),
			zap.String("currency", record.Currency))
	}

	record.ProcessingMS = round(float64(time.Since(start))/float64(time.Millisecond), 2)

	s.mu.Lock()
	s.transactions = append(s.transactions, record)
	s.mu.Unlock()

	metrics.TransactionsRouted.WithLabelValues(string(record.Status)).Inc()

	return record
}

// Recent returns the last limit transactions in insertion order together
// with the full list length.
func (s *Service) Recent(limit int) ([]models.TransactionRecord, int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := len(s.transactions)
	if limit < 0 {
		limit = 0
	}
	if limit > total {
		limit = total
	}

	out := make([]models.TransactionRecord, limit)
	copy(out, s.transactions[total-limit:])
	return out, total
}

// TransactionCount returns the number of recorded transactions.
func (s *Service) TransactionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.transactions)
}

func applyTransactionDefaults(req *models.TransactionRequest) {
	if req.AccountID == "" {
		req.AccountID = "unknown"
	}
	if req.Currency == "" {
		req.Currency = "USD"
	}
	if req.Merchant == "" {
		req.Merchant = "unknown"
	}
	if req.MerchantCategoryCode == "" {
		req.MerchantCategoryCode = "0000"
	}
	if req.Channel == "" {
		req.Channel = "online"
	}
}

func unixSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / 1e9
}

func round(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}
