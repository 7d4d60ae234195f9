package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deepmirror/internal/model"
)

type stubSessionRepo struct {
	sessions map[string]*model.Session
}

func newStubSessionRepo(ids ...string) *stubSessionRepo {
	r := &stubSessionRepo{sessions: map[string]*model.Session{}}
	for _, id := range ids {
		r.sessions[id] = &model.Session{ID: id, Answers: map[string]model.Answer{}}
	}
	return r
}

func (r *stubSessionRepo) Create(ctx context.Context, session *model.Session) error {
	if session.ID == "" {
		session.ID = "generated"
	}
	r.sessions[session.ID] = session
	return nil
}

func (r *stubSessionRepo) GetByID(ctx context.Context, id string) (*model.Session, error) {
	return r.sessions[id], nil
}

func (r *stubSessionRepo) SaveAnswers(ctx context.Context, id string, answers map[string]model.Answer) error {
	for k, v := range answers {
		if _, exists := r.sessions[id].Answers[k]; !exists {
			r.sessions[id].Answers[k] = v
		}
	}
	return nil
}

func (r *stubSessionRepo) SaveProfile(ctx context.Context, id string, profile model.Profile) error {
	r.sessions[id].Profile = profile
	return nil
}

func (r *stubSessionRepo) SaveAnalysis(ctx context.Context, id, action string, result model.AnalysisResult) error {
	return nil
}

func (r *stubSessionRepo) ClearAnalysis(ctx context.Context, id, action string) error {
	return nil
}

type stubMetricsCache struct {
	entries map[string]*model.CompositeMetrics
	deletes []string
}

func newStubMetricsCache(ids ...string) *stubMetricsCache {
	c := &stubMetricsCache{entries: map[string]*model.CompositeMetrics{}}
	for _, id := range ids {
		c.entries[id] = &model.CompositeMetrics{SustainabilityForecast: 60}
	}
	return c
}

func (c *stubMetricsCache) Set(ctx context.Context, sessionID string, metrics *model.CompositeMetrics) error {
	c.entries[sessionID] = metrics
	return nil
}

func (c *stubMetricsCache) Get(ctx context.Context, sessionID string) (*model.CompositeMetrics, error) {
	return c.entries[sessionID], nil
}

func (c *stubMetricsCache) Delete(ctx context.Context, sessionID string) error {
	delete(c.entries, sessionID)
	c.deletes = append(c.deletes, sessionID)
	return nil
}

func sessionRequest(method, body, id string) *http.Request {
	req := httptest.NewRequest(method, "/v1/sessions/"+id, bytes.NewBufferString(body))
	return mux.SetURLVars(req, map[string]string{"id": id})
}

func TestSubmitAnswersDropsMetricsCache(t *testing.T) {
	repo := newStubSessionRepo("s1")
	metricsCache := newStubMetricsCache("s1")
	h := NewSessionHandler(repo, metricsCache)

	rec := httptest.NewRecorder()
	h.SubmitAnswers(rec, sessionRequest(http.MethodPut,
		`{"answers":[{"questionId":10,"score":5},{"questionId":21,"score":5}]}`, "s1"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"s1"}, metricsCache.deletes)
	_, stale := metricsCache.entries["s1"]
	assert.False(t, stale, "cached metrics survived an answer write")
}

func TestSubmitAnswersRejectsInvalidWithoutCacheDrop(t *testing.T) {
	repo := newStubSessionRepo("s1")
	metricsCache := newStubMetricsCache("s1")
	h := NewSessionHandler(repo, metricsCache)

	rec := httptest.NewRecorder()
	h.SubmitAnswers(rec, sessionRequest(http.MethodPut,
		`{"answers":[{"questionId":10,"score":9}]}`, "s1"))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, metricsCache.deletes)
}

func TestUpdateProfileDropsMetricsCache(t *testing.T) {
	repo := newStubSessionRepo("s1")
	metricsCache := newStubMetricsCache("s1")
	h := NewSessionHandler(repo, metricsCache)

	rec := httptest.NewRecorder()
	h.UpdateProfile(rec, sessionRequest(http.MethodPut,
		`{"repairFrequency":"never","biggestFear":"losing love"}`, "s1"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"s1"}, metricsCache.deletes)
	assert.Equal(t, "never", repo.sessions["s1"].Profile.RepairFrequency)
}

func TestSubmitAnswersUnknownSession(t *testing.T) {
	repo := newStubSessionRepo()
	metricsCache := newStubMetricsCache()
	h := NewSessionHandler(repo, metricsCache)

	rec := httptest.NewRecorder()
	h.SubmitAnswers(rec, sessionRequest(http.MethodPut,
		`{"answers":[{"questionId":10,"score":5}]}`, "missing"))

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, metricsCache.deletes)
}
