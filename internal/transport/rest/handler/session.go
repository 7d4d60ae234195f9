package handler

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"deepmirror/internal/cache"
	"deepmirror/internal/model"
	"deepmirror/internal/repository"
)

// SessionHandler handles session intake endpoints.
type SessionHandler struct {
	sessionRepo  repository.SessionRepo
	metricsCache cache.MetricsCache
}

// NewSessionHandler creates a new session handler.
func NewSessionHandler(sessionRepo repository.SessionRepo, metricsCache cache.MetricsCache) *SessionHandler {
	return &SessionHandler{sessionRepo: sessionRepo, metricsCache: metricsCache}
}

// dropMetricsCache removes the cached composite metrics after any write
// that changes their inputs. Metrics are pure functions of answers and
// profile, so a stale entry must never outlive either.
func (h *SessionHandler) dropMetricsCache(r *http.Request, sessionID string) {
	if h.metricsCache == nil {
		return
	}
	if err := h.metricsCache.Delete(r.Context(), sessionID); err != nil {
		log.Printf("metrics cache delete failed for session %s: %v", sessionID, err)
	}
}

// Create handles POST /v1/sessions
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Profile model.Profile `json:"profile"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session := &model.Session{Profile: req.Profile}
	if err := h.sessionRepo.Create(r.Context(), session); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, session)
}

// Get handles GET /v1/sessions/{id}
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	session, err := h.sessionRepo.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if session == nil {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}

	writeJSON(w, http.StatusOK, session)
}

// SubmitAnswers handles PUT /v1/sessions/{id}/answers
// Answers are normalized into the explicit Answer shape here, once, at
// the ingestion boundary. A question already answered keeps its first
// submission.
func (h *SessionHandler) SubmitAnswers(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req struct {
		Answers []model.Answer `json:"answers"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	answers := make(map[string]model.Answer, len(req.Answers))
	for _, a := range req.Answers {
		if !a.IsValid() {
			writeError(w, http.StatusBadRequest, "invalid answer for question "+strconv.Itoa(a.QuestionID))
			return
		}
		answers[strconv.Itoa(a.QuestionID)] = a
	}

	session, err := h.sessionRepo.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if session == nil {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}

	if err := h.sessionRepo.SaveAnswers(r.Context(), id, answers); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.dropMetricsCache(r, id)

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// UpdateProfile handles PUT /v1/sessions/{id}/profile
func (h *SessionHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req model.Profile
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session, err := h.sessionRepo.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if session == nil {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}

	if err := h.sessionRepo.SaveProfile(r.Context(), id, req); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.dropMetricsCache(r, id)

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Questions handles GET /v1/questions
func (h *SessionHandler) Questions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, model.Questions)
}
