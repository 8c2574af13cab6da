package http

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"debt-planner/domain"
	"debt-planner/service"
)

type DTIHandler struct {
	logger *zap.Logger
}

func NewDTIHandler(logger *zap.Logger) *DTIHandler {
	return &DTIHandler{logger: logger}
}

// ComputeDTI is stateless: totals in, classified ratios out.
func (h *DTIHandler) ComputeDTI(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.DTIRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	writeJSON(w, h.logger, service.ComputeDTI(req))
}
