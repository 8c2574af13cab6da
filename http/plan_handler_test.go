package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"debt-planner/domain"
	"debt-planner/repository"
	"debt-planner/service"
)

func newSimulateHandler() *SimulateHandler {
	return NewSimulateHandler(service.NewPlannerService(zap.NewNop()), zap.NewNop())
}

func newCompareHandler(cache repository.CacheRepository) *CompareHandler {
	comparer := service.NewComparisonService(
		repository.NewPlanRepositoryMemory(),
		service.NewAdviceService(zap.NewNop(), false),
		zap.NewNop(),
	)
	return NewCompareHandler(comparer, cache, time.Minute, zap.NewNop())
}

func TestSimulateHandler_OK(t *testing.T) {
	handler := newSimulateHandler()

	body := []byte(`{
		"debts": [
			{"id": "loan", "balance": 1200, "apr": 0, "minimum_payment": 100}
		],
		"config": {"monthly_budget": 100, "strategy": "avalanche"}
	}`)

	req := httptest.NewRequest(http.MethodPost, "/plan/simulate", bytes.NewBuffer(body))
	w := httptest.NewRecorder()

	handler.Simulate(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var result domain.SimulationResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if !result.Converged {
		t.Errorf("expected converged plan")
	}
	if result.PeriodsToPayoff != 12 {
		t.Errorf("expected 12 periods, got %d", result.PeriodsToPayoff)
	}
	if !result.TotalInterestPaid.IsZero() {
		t.Errorf("expected zero interest, got %s", result.TotalInterestPaid)
	}
}

func TestSimulateHandler_MethodNotAllowed(t *testing.T) {
	handler := newSimulateHandler()

	req := httptest.NewRequest(http.MethodGet, "/plan/simulate", nil)
	w := httptest.NewRecorder()

	handler.Simulate(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
}

func TestSimulateHandler_BadRequest(t *testing.T) {
	handler := newSimulateHandler()

	req := httptest.NewRequest(
		http.MethodPost,
		"/plan/simulate",
		bytes.NewBuffer([]byte(`{invalid-json}`)),
	)
	w := httptest.NewRecorder()

	handler.Simulate(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestSimulateHandler_InvalidConfiguration(t *testing.T) {
	handler := newSimulateHandler()

	// Budget below the minimum payments maps to 400, not 500.
	body := []byte(`{
		"debts": [
			{"id": "loan", "balance": 1000, "apr": 10, "minimum_payment": 100}
		],
		"config": {"monthly_budget": 50, "strategy": "avalanche"}
	}`)

	req := httptest.NewRequest(http.MethodPost, "/plan/simulate", bytes.NewBuffer(body))
	w := httptest.NewRecorder()

	handler.Simulate(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCompareHandler_OKAndCached(t *testing.T) {
	cache := repository.NewMockCache()
	handler := newCompareHandler(cache)

	body := []byte(`{
		"debts": [
			{"id": "A", "balance": 1000, "apr": 24, "minimum_payment": 50},
			{"id": "B", "balance": 500, "apr": 12, "minimum_payment": 25}
		],
		"optimized": {"monthly_budget": 150, "strategy": "avalanche"}
	}`)

	req := httptest.NewRequest(http.MethodPost, "/plan/compare", bytes.NewReader(body))
	w := httptest.NewRecorder()
	handler.Compare(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var result domain.ComparisonResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if result.TimePeriodsSaved <= 0 {
		t.Errorf("expected the optimized plan to save time, got %d", result.TimePeriodsSaved)
	}
	if result.Explanation == "" {
		t.Errorf("expected a fallback explanation")
	}

	// Same body again: served from cache.
	req2 := httptest.NewRequest(http.MethodPost, "/plan/compare", bytes.NewReader(body))
	w2 := httptest.NewRecorder()
	handler.Compare(w2, req2)

	if w2.Code != http.StatusOK {
		t.Fatalf("expected 200 on cached request, got %d", w2.Code)
	}
	if w2.Header().Get("X-Cache") != "hit" {
		t.Errorf("expected a cache hit on the identical request")
	}
	if !bytes.Equal(w.Body.Bytes(), w2.Body.Bytes()) {
		t.Errorf("cached body differs from computed body")
	}
}

func TestCompareHandler_BadRequest(t *testing.T) {
	handler := newCompareHandler(repository.NewMockCache())

	req := httptest.NewRequest(http.MethodPost, "/plan/compare", bytes.NewReader([]byte(`{`)))
	w := httptest.NewRecorder()
	handler.Compare(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}
