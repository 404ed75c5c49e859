// Package metrics holds the prometheus collectors shared by the simulator
// services. The JSON /metrics documents each service serves are part of the
// simulation contract; these collectors back the /metrics/prometheus surface.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// TransactionsScored counts fraud-detector scorings by resulting risk level
var TransactionsScored = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "nerp_transactions_scored_total",
		Help: "Total number of transactions scored by the fraud detector",
	},
	[]string{"risk_level"},
)

// ScoringLatency records latency distribution for fraud scoring
var ScoringLatency = prometheus.NewHistogram(
	prometheus.HistogramOpts{
		Name:    "nerp_fraud_scoring_latency_seconds",
		Help:    "Latency in seconds to score individual transactions",
		Buckets: prometheus.DefBuckets,
	},
)

// PaymentsProcessed counts gateway payments by final status (settled/failed)
var PaymentsProcessed = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "nerp_payments_processed_total",
		Help: "Total number of payments handled by the gateway simulator",
	},
	[]string{"status"},
)

// PaymentLatency records latency distribution for payment processing,
// including any injected chaos delay
var PaymentLatency = prometheus.NewHistogram(
	prometheus.HistogramOpts{
		Name:    "nerp_payment_processing_latency_seconds",
		Help:    "Latency in seconds to process payments, chaos delay included",
		Buckets: prometheus.DefBuckets,
	},
)

// SettlementBatches counts triggered settlement batches
var SettlementBatches = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "nerp_settlement_batches_total",
		Help: "Total number of settlement batches triggered",
	},
)

// TransactionsRouted counts engine decisions by status (approved/blocked)
var TransactionsRouted = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "nerp_transactions_routed_total",
		Help: "Total number of transactions routed by the engine",
	},
	[]string{"status"},
)

// Chaos injection gauges
var (
	ChaosLatencyMS = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "nerp_chaos_injected_latency_ms",
			Help: "Currently injected gateway latency in milliseconds",
		},
	)

	ChaosErrorRate = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "nerp_chaos_injected_error_rate",
			Help: "Currently injected gateway error rate",
		},
	)
)

func init() {
	prometheus.MustRegister(TransactionsScored, ScoringLatency)
	prometheus.MustRegister(PaymentsProcessed, PaymentLatency, SettlementBatches)
	prometheus.MustRegister(TransactionsRouted)
	prometheus.MustRegister(ChaosLatencyMS, ChaosErrorRate)
}
