package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"

	"debt-planner/domain"
	"debt-planner/repository"
	"debt-planner/service"
)

type CompareHandler struct {
	comparer *service.ComparisonService
	cache    repository.CacheRepository
	cacheTTL time.Duration
	logger   *zap.Logger
}

func NewCompareHandler(
	comparer *service.ComparisonService,
	cache repository.CacheRepository,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *CompareHandler {
	return &CompareHandler{
		comparer: comparer,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

// Compare runs the baseline-vs-optimized comparison. Results are cached
// keyed on a hash of the request body, so repeated dashboard loads of the
// same ledger do not re-simulate.
func (h *CompareHandler) Compare(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	key := fmt.Sprintf("compare:%x", xxhash.Sum64(body))
	if cached, ok := h.cache.Get(r.Context(), key); ok {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Cache", "hit")
		io.WriteString(w, cached)
		return
	}

	var req domain.ComparisonRequest
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.comparer.ComparePlans(req)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	payload, err := json.Marshal(result)
	if err != nil {
		h.logger.Error("failed to encode comparison", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if err := h.cache.Set(r.Context(), key, string(payload), h.cacheTTL); err != nil {
		h.logger.Warn("failed to cache comparison", zap.Error(err))
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(payload)
}
