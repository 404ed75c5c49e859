package txengine

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupRouter(svc *Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	Routes(router, svc, zap.NewNop())
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func getJSON(t *testing.T, router *gin.Engine, path string) (int, map[string]interface{}) {
	t.Helper()
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w.Code, resp
}

func TestEngineHealth(t *testing.T) {
	router := setupRouter(NewService(zap.NewNop()))

	code, resp := getJSON(t, router, "/health")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "healthy", resp["status"])
	assert.Equal(t, "nerp-transaction-engine", resp["service"])
	assert.Equal(t, "NERP", resp["platform"])
}

func TestTransactionBlockedAboveCutoff(t *testing.T) {
	router := setupRouter(NewService(zap.NewNop()))

	w := postJSON(t, router, "/api/v1/transactions", map[string]interface{}{
		"account_id":  "acct-1",
		"amount":      99.0,
		"fraud_score": 0.86,
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "blocked", resp["status"])
	assert.Equal(t, "fraud_score_exceeded", resp["reason"])
	assert.NotEmpty(t, resp["id"])
}

func TestTransactionApprovedAtCutoff(t *testing.T) {
	router := setupRouter(NewService(zap.NewNop()))

	w := postJSON(t, router, "/api/v1/transactions", map[string]interface{}{
		"account_id":  "acct-1",
		"amount":      99.0,
		"fraud_score": 0.85,
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "approved", resp["status"], "the 0.85 boundary is strict greater-than")
	_, hasReason := resp["reason"]
	assert.False(t, hasReason, "reason is present only when blocked")
}

func TestTransactionDefaults(t *testing.T) {
	router := setupRouter(NewService(zap.NewNop()))

	w := postJSON(t, router, "/api/v1/transactions", map[string]interface{}{"amount": 12.0})

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "unknown", resp["account_id"])
	assert.Equal(t, "USD", resp["currency"])
	assert.Equal(t, "unknown", resp["merchant"])
	assert.Equal(t, "0000", resp["merchant_category_code"])
	assert.Equal(t, "online", resp["channel"])
	assert.Equal(t, "approved", resp["status"])
}

func TestTransactionEmptyBody(t *testing.T) {
	router := setupRouter(NewService(zap.NewNop()))

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/transactions", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListTransactionsTail(t *testing.T) {
	router := setupRouter(NewService(zap.NewNop()))

	for i := 0; i < 5; i++ {
		w := postJSON(t, router, "/api/v1/transactions", map[string]interface{}{
			"account_id": fmt.Sprintf("acct-%d", i),
			"amount":     float64(i),
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	code, resp := getJSON(t, router, "/api/v1/transactions?limit=2")
	assert.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 5, resp["total"])

	transactions := resp["transactions"].([]interface{})
	require.Len(t, transactions, 2)
	assert.Equal(t, "acct-3", transactions[0].(map[string]interface{})["account_id"])
	assert.Equal(t, "acct-4", transactions[1].(map[string]interface{})["account_id"])
}

func TestListTransactionsDefaultLimit(t *testing.T) {
	router := setupRouter(NewService(zap.NewNop()))

	for i := 0; i < 3; i++ {
		postJSON(t, router, "/api/v1/transactions", map[string]interface{}{"amount": 1.0})
	}

	code, resp := getJSON(t, router, "/api/v1/transactions")
	assert.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 3, resp["total"])
	assert.Len(t, resp["transactions"], 3)
}

func TestSettlementStatusFabricatedPerRead(t *testing.T) {
	router := setupRouter(NewService(zap.NewNop()))

	postJSON(t, router, "/api/v1/transactions", map[string]interface{}{"amount": 1.0})

	code, first := getJSON(t, router, "/api/v1/settlement/status")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "processing", first["status"])
	assert.InDelta(t, 67.5, first["progress_pct"].(float64), 1e-9)
	assert.EqualValues(t, 1, first["transactions_processed"])
	assert.EqualValues(t, 45, first["estimated_completion_minutes"])

	_, second := getJSON(t, router, "/api/v1/settlement/status")
	assert.NotEqual(t, first["batch_id"], second["batch_id"],
		"batch id is fabricated fresh on every read")
}

func TestEngineChaosEndpointsAreInert(t *testing.T) {
	svc := NewService(zap.NewNop())
	router := setupRouter(svc)

	w := postJSON(t, router, "/ops/chaos/latency", map[string]int{"delay_ms": 5000})
	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "latency_injected", resp["chaos"])
	assert.EqualValues(t, 5000, resp["delay_ms"])

	w = postJSON(t, router, "/ops/chaos/error", map[string]float64{"error_rate": 1.0})
	require.Equal(t, http.StatusOK, w.Code)

	// Neither injection touches the processing path.
	w = postJSON(t, router, "/api/v1/transactions", map[string]interface{}{"amount": 1.0})
	assert.Equal(t, http.StatusCreated, w.Code)
	var record map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &record))
	assert.Equal(t, "approved", record["status"])
	assert.Less(t, record["processing_ms"].(float64), 1000.0)
}

func TestEngineMetricsDocument(t *testing.T) {
	router := setupRouter(NewService(zap.NewNop()))

	postJSON(t, router, "/api/v1/transactions", map[string]interface{}{"amount": 1.0})

	code, resp := getJSON(t, router, "/metrics")
	assert.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 1, resp["total_transactions"])
	assert.EqualValues(t, 1250, resp["throughput_tps"])
}
