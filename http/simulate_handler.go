package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"debt-planner/domain"
	"debt-planner/service"
)

type SimulateHandler struct {
	planner *service.PlannerService
	logger  *zap.Logger
}

func NewSimulateHandler(planner *service.PlannerService, logger *zap.Logger) *SimulateHandler {
	return &SimulateHandler{planner: planner, logger: logger}
}

// Simulate runs a single repayment plan. Non-convergent plans still return
// 200: the body carries the partial trace with converged=false.
func (h *SimulateHandler) Simulate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.SimulationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.planner.RunSimulation(req)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, result)
}

func writeServiceError(w http.ResponseWriter, logger *zap.Logger, err error) {
	if errors.Is(err, service.ErrInvalidConfiguration) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	logger.Error("plan computation failed", zap.Error(err))
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, logger *zap.Logger, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn("failed to write response", zap.Error(err))
	}
}
