// Package frauddetector implements the NERP fraud-scoring simulator: an
// additive risk-factor model with bounded random variance standing in for a
// real ML scorer.
package frauddetector

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Here2ServeU/fintech-platform-engineering/pkg/metrics"
	"github.com/Here2ServeU/fintech-platform-engineering/pkg/models"
)

const (
	serviceVersion      = "1.0.0"
	defaultModelVersion = "fraud_detector_v1"

	baseScore      = 0.05
	noiseAmplitude = 0.05

	amountHighContribution = 0.15
	amountMidContribution  = 0.05
	geoContribution        = 0.20
	mccContribution        = 0.15
	defaultChannelRisk     = 0.05
)

// channelRisk, highRiskCountries and highRiskMCCs are static model
// configuration, kept as data so the tables can change without touching the
// scoring algorithm.
var channelRisk = map[string]float64{
	"card_not_present": 0.15,
	"online":           0.10,
	"mobile":           0.05,
	"atm":              0.03,
	"pos":              0.01,
}

var highRiskCountries = map[string]struct{}{
	"NG": {}, "RU": {}, "CN": {}, "BR": {}, "ID": {}, "VN": {}, "PH": {},
}

var highRiskMCCs = map[string]struct{}{
	"7995": {}, "5967": {}, "5966": {}, "6051": {}, "4829": {},
}

// NoiseSource produces the model-variance perturbation added to every score.
// It must return values in [-noiseAmplitude, noiseAmplitude]. Tests inject a
// fixed source to pin scores exactly.
type NoiseSource func() float64

func defaultNoise() float64 {
	return (rand.Float64()*2 - 1) * noiseAmplitude
}

// Service holds the simulated model state: the current model version and the
// count of scored transactions. State lives for the process lifetime only.
type Service struct {
	mu           sync.Mutex
	modelVersion string
	scored       int64

	threshold float64
	noise     NoiseSource
	logger    *zap.Logger
}

// NewService creates a fraud detector with the given classification
// threshold. A nil noise source falls back to math/rand.
func NewService(logger *zap.Logger, threshold float64, noise NoiseSource) *Service {
	if noise == nil {
		noise = defaultNoise
	}
	return &Service{
		modelVersion: defaultModelVersion,
		threshold:    threshold,
		noise:        noise,
		logger:       logger,
	}
}

// Score computes a fraud probability for the request, increments the scored
// counter and returns the full scoring result. The score is the clamped sum
// of the base rate, the amount band, the channel table, the geographic and
// merchant-category surcharges, and the noise perturbation.
func (s *Service) Score(req *models.ScoringRequest) *models.ScoringResult {
	start := time.Now()
	applyScoringDefaults(req)

	score := baseScore
	switch {
	case req.Amount > 5000:
		score += amountHighContribution
	case req.Amount > 1000:
		score += amountMidContribution
	}

	if risk, ok := channelRisk[req.Channel]; ok {
		score += risk
	} else {
		score += defaultChannelRisk
	}

	_, geoRisky := highRiskCountries[req.CountryCode]
	if geoRisky {
		score += geoContribution
	}

	_, mccRisky := highRiskMCCs[req.MerchantCategoryCode]
	if mccRisky {
		score += mccContribution
	}

	score += s.noise()
	score = math.Max(math.Min(score, 1.0), 0.0)

	s.mu.Lock()
	s.scored++
	version := s.modelVersion
	s.mu.Unlock()

	level := riskLevelFor(score)
	result := &models.ScoringResult{
		TransactionID: req.TransactionID,
		FraudScore:    round(score, 4),
		IsFraud:       score > s.threshold,
		RiskLevel:     level,
		ModelVersion:  version,
		ScoringMS:     round(float64(time.Since(start))/float64(time.Millisecond), 2),
		Signals:       signalsFor(req, geoRisky, mccRisky),
	}

	metrics.TransactionsScored.WithLabelValues(string(level)).Inc()
	metrics.ScoringLatency.Observe(time.Since(start).Seconds())

	if result.IsFraud {
		s.logger.Warn("FRAUD DETECTED",
			zap.String("transaction_id", result.TransactionID),
			zap.Float64("fraud_score", result.FraudScore))
	} else {
		s.logger.Info("Transaction scored",
			zap.String("transaction_id", result.TransactionID),
			zap.Float64("fraud_score", result.FraudScore))
	}

	return result
}

// SwapModel atomically replaces the model version and returns the previous
// and current values. The new version is not validated.
func (s *Service) SwapModel(version string) (previous, current string) {
	s.mu.Lock()
	previous = s.modelVersion
	s.modelVersion = version
	current = version
	s.mu.Unlock()
	return previous, current
}

// ModelVersion returns the currently active model version.
func (s *Service) ModelVersion() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.modelVersion
}

// TotalScored returns the number of transactions scored so far.
func (s *Service) TotalScored() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scored
}

func applyScoringDefaults(req *models.ScoringRequest) {
	if req.TransactionID == "" {
		req.TransactionID = "unknown"
	}
	if req.Channel == "" {
		req.Channel = "online"
	}
	if req.CountryCode == "" {
		req.CountryCode = "US"
	}
	if req.MerchantCategoryCode == "" {
		req.MerchantCategoryCode = "0000"
	}
}

// riskLevelFor maps a clamped score onto the risk bands: (0.85,1] critical,
// (0.60,0.85] high, (0.30,0.60] medium, [0,0.30] low.
func riskLevelFor(score float64) models.RiskLevel {
	switch {
	case score > 0.85:
		return models.RiskCritical
	case score > 0.60:
		return models.RiskHigh
	case score > 0.30:
		return models.RiskMedium
	default:
		return models.RiskLow
	}
}

func signalsFor(req *models.ScoringRequest, geoRisky, mccRisky bool) models.RiskSignals {
	amountRisk := "low"
	switch {
	case req.Amount > 5000:
		amountRisk = "high"
	case req.Amount > 1000:
		amountRisk = "medium"
	}
	geo := "low"
	if geoRisky {
		geo = "high"
	}
	mcc := "low"
	if mccRisky {
		mcc = "high"
	}
	return models.RiskSignals{
		AmountRisk:  amountRisk,
		ChannelRisk: req.Channel,
		GeoRisk:     geo,
		MCCRisk:     mcc,
	}
}

func round(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}
