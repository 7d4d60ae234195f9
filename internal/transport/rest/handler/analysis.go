package handler

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"deepmirror/internal/model"
	"deepmirror/internal/service"
)

// AnalysisHandler handles metric and AI analysis endpoints.
type AnalysisHandler struct {
	analysisSvc *service.AnalysisService
}

// NewAnalysisHandler creates a new analysis handler.
func NewAnalysisHandler(analysisSvc *service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{analysisSvc: analysisSvc}
}

// GetMetrics handles GET /v1/sessions/{id}/metrics
func (h *AnalysisHandler) GetMetrics(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	metrics, err := h.analysisSvc.ComputeMetrics(r.Context(), id)
	if err != nil {
		writeAnalysisError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"metrics": metrics,
		"catalog": model.MetricCatalog,
	})
}

// GetOrCreateAnalysis handles POST /v1/sessions/{id}/analysis
func (h *AnalysisHandler) GetOrCreateAnalysis(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	result, err := h.analysisSvc.GetOrCreateAnalysis(r.Context(), id)
	if err != nil {
		writeAnalysisError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// InvalidateAnalysis handles DELETE /v1/sessions/{id}/analysis
func (h *AnalysisHandler) InvalidateAnalysis(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.analysisSvc.InvalidateAnalysis(r.Context(), id); err != nil {
		writeAnalysisError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "invalidated"})
}

// ListLogs handles GET /v1/sessions/{id}/ai-logs
func (h *AnalysisHandler) ListLogs(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	logs, err := h.analysisSvc.ListLogs(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, logs)
}

// writeAnalysisError maps the service's error taxonomy onto HTTP status
// codes. Raw provider error text never reaches end users.
func writeAnalysisError(w http.ResponseWriter, err error) {
	var svcErr *service.Error
	if !errors.As(err, &svcErr) {
		writeError(w, http.StatusInternalServerError, "analysis failed, please retry")
		return
	}

	switch svcErr.Kind {
	case service.KindInput:
		writeError(w, http.StatusNotFound, svcErr.Message)
	case service.KindConflict:
		writeError(w, http.StatusConflict, "analysis already in progress, please retry shortly")
	case service.KindParse:
		writeError(w, http.StatusBadGateway, "analysis could not be generated")
	default:
		writeError(w, http.StatusBadGateway, "analysis failed, please retry")
	}
}
