// Package models defines the wire types shared across the simulator
// services. All bodies are flat JSON records with snake_case fields; numeric
// ids are opaque generated strings; timestamps are unix seconds.
package models

// ScoringRequest is the body accepted by the fraud detector's /score.
// Absent fields take documented defaults at scoring time.
type ScoringRequest struct {
	TransactionID        string  `json:"transaction_id"`
	Amount               float64 `json:"amount"`
	Channel              string  `json:"channel"`
	CountryCode          string  `json:"country_code"`
	MerchantCategoryCode string  `json:"merchant_category_code"`
}

// RiskLevel classifies a fraud score into a human-facing band.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// RiskSignals carries per-factor risk labels alongside a score.
type RiskSignals struct {
	AmountRisk  string `json:"amount_risk"`
	ChannelRisk string `json:"channel_risk"`
	GeoRisk     string `json:"geo_risk"`
	MCCRisk     string `json:"mcc_risk"`
}

// ScoringResult is the fraud detector's response. Derived, never persisted.
type ScoringResult struct {
	TransactionID string      `json:"transaction_id"`
	FraudScore    float64     `json:"fraud_score"`
	IsFraud       bool        `json:"is_fraud"`
	RiskLevel     RiskLevel   `json:"risk_level"`
	ModelVersion  string      `json:"model_version"`
	ScoringMS     float64     `json:"scoring_ms"`
	Signals       RiskSignals `json:"signals"`
}

// ModelSwapRequest hot-swaps the detector's model version.
type ModelSwapRequest struct {
	ModelVersion string `json:"model_version"`
}

// PaymentStatus is the terminal state of a simulated payment.
type PaymentStatus string

const (
	PaymentSettled PaymentStatus = "settled"
	PaymentFailed  PaymentStatus = "failed"
)

// PaymentRequest is the body accepted by the gateway's /api/v1/process.
type PaymentRequest struct {
	TransactionID string  `json:"transaction_id"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
}

// PaymentRecord is one settled payment in the gateway's append-only ledger.
type PaymentRecord struct {
	PaymentID                string        `json:"payment_id"`
	TransactionID            string        `json:"transaction_id"`
	Amount                   float64       `json:"amount"`
	Currency                 string        `json:"currency"`
	Status                   PaymentStatus `json:"status"`
	ProcessorResponseCode    string        `json:"processor_response_code"`
	ProcessorResponseMessage string        `json:"processor_response_message"`
	Timestamp                float64       `json:"timestamp"`
	ProcessingMS             float64       `json:"processing_ms"`
}

// PaymentFailure is the 502 payload for an injected gateway error. Failed
// payments never reach the ledger.
type PaymentFailure struct {
	PaymentID    string        `json:"payment_id"`
	Status       PaymentStatus `json:"status"`
	ErrorCode    string        `json:"error_code"`
	ErrorMessage string        `json:"error_message"`
}

// SettlementBatch is a point-in-time aggregate snapshot over the payment
// ledger. Immutable once created.
type SettlementBatch struct {
	BatchID           string  `json:"batch_id"`
	Status            string  `json:"status"`
	TransactionsCount int     `json:"transactions_count"`
	TotalAmount       float64 `json:"total_amount"`
	Currency          string  `json:"currency"`
	StartedAt         float64 `json:"started_at"`
}

// TransactionStatus is the engine's routing decision for a transaction.
type TransactionStatus string

const (
	TransactionApproved TransactionStatus = "approved"
	TransactionBlocked  TransactionStatus = "blocked"
)

// TransactionRequest is the body accepted by the engine's
// /api/v1/transactions. FraudScore is supplied by the caller from a prior
// fraud-detector call; the engine never scores on its own.
type TransactionRequest struct {
	AccountID            string  `json:"account_id"`
	Amount               float64 `json:"amount"`
	Currency             string  `json:"currency"`
	Merchant             string  `json:"merchant"`
	MerchantCategoryCode string  `json:"merchant_category_code"`
	Channel              string  `json:"channel"`
	FraudScore           float64 `json:"fraud_score"`
}

// TransactionRecord is one routed transaction in the engine's append-only
// list. Reason is present only when blocked.
type TransactionRecord struct {
	ID                   string            `json:"id"`
	AccountID            string            `json:"account_id"`
	Amount               float64           `json:"amount"`
	Currency             string            `json:"currency"`
	Merchant             string            `json:"merchant"`
	MerchantCategoryCode string            `json:"merchant_category_code"`
	Channel              string            `json:"channel"`
	Status               TransactionStatus `json:"status"`
	Reason               string            `json:"reason,omitempty"`
	Timestamp            float64           `json:"timestamp"`
	ProcessingMS         float64           `json:"processing_ms"`
}

// ChaosLatencyRequest sets an injected processing delay. A nil DelayMS means
// the field was absent and the documented default of 500ms applies.
type ChaosLatencyRequest struct {
	DelayMS *int `json:"delay_ms"`
}

// ChaosErrorRequest sets an injected error rate. Values outside [0,1] are
// accepted as-is; a nil ErrorRate takes the documented default of 0.1.
type ChaosErrorRequest struct {
	ErrorRate *float64 `json:"error_rate"`
}
