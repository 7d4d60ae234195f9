package service

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"deepmirror/internal/cache"
	"deepmirror/internal/config"
	"deepmirror/internal/model"
	"deepmirror/internal/repository"
	"deepmirror/internal/scoring"
)

// AnalysisService owns the session's cached analyses and the invocation
// log; nothing else writes either. One orchestration run per inbound
// request, serialized per (session, action) by the claim.
type AnalysisService struct {
	config       *config.AIConfig
	sessionRepo  repository.SessionRepo
	logRepo      repository.AILogRepo
	claim        cache.InvocationClaim
	metricsCache cache.MetricsCache
	client       LLMClient
}

// NewAnalysisService creates a new analysis service. Pricing and model
// settings are resolved once here, never re-read at call time.
func NewAnalysisService(
	cfg *config.AIConfig,
	sessionRepo repository.SessionRepo,
	logRepo repository.AILogRepo,
	claim cache.InvocationClaim,
	metricsCache cache.MetricsCache,
	client LLMClient,
) *AnalysisService {
	return &AnalysisService{
		config:       cfg,
		sessionRepo:  sessionRepo,
		logRepo:      logRepo,
		claim:        claim,
		metricsCache: metricsCache,
		client:       client,
	}
}

// ComputeMetrics derives the composite metric set for a session. The
// session is loaded before the cache is consulted, so a lingering cache
// key for a vanished session can never answer in its place.
func (s *AnalysisService) ComputeMetrics(ctx context.Context, sessionID string) (*model.CompositeMetrics, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if s.metricsCache != nil {
		if cached, err := s.metricsCache.Get(ctx, sessionID); err == nil && cached != nil {
			return cached, nil
		}
	}

	metrics := scoring.ComputeMetrics(session)
	scoring.EvaluateFlags(session, metrics, s.config.RiskThresholds)

	if s.metricsCache != nil {
		if err := s.metricsCache.Set(ctx, sessionID, metrics); err != nil {
			log.Printf("metrics cache write failed for session %s: %v", sessionID, err)
		}
	}
	return metrics, nil
}

// GetOrCreateAnalysis returns the cached analysis for the session or runs
// one provider invocation to produce it. At most one invocation happens
// per (session, action) until the cache is explicitly invalidated.
func (s *AnalysisService) GetOrCreateAnalysis(ctx context.Context, sessionID string) (*model.AnalysisResult, error) {
	action := model.ActionRelationshipAnalysis

	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	// Cache hit: no log row, no provider call.
	if cached, ok := session.Analysis(action); ok {
		return &cached, nil
	}

	// Claim the invocation before going further so two near-simultaneous
	// requests cannot both bill a provider call.
	acquired, err := s.claim.Acquire(ctx, sessionID, action)
	if err != nil {
		return nil, providerError("claim acquisition failed", err)
	}
	if !acquired {
		return nil, conflictError(sessionID, action)
	}
	defer func() {
		if err := s.claim.Release(context.WithoutCancel(ctx), sessionID, action); err != nil {
			log.Printf("claim release failed for session %s: %v", sessionID, err)
		}
	}()

	// Re-check under the claim: the previous holder may have persisted
	// a result between our read and our claim.
	session, err = s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if cached, ok := session.Analysis(action); ok {
		return &cached, nil
	}

	return s.runAnalysis(ctx, session, action)
}

// InvalidateAnalysis clears the cached analysis so the next request
// performs a fresh provider invocation. The metrics cache entry drops in
// the same step so no stale derived data survives a retrigger.
func (s *AnalysisService) InvalidateAnalysis(ctx context.Context, sessionID string) error {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return err
	}

	if err := s.sessionRepo.ClearAnalysis(ctx, session.ID, model.ActionRelationshipAnalysis); err != nil {
		return providerError("clearing cached analysis failed", err)
	}
	if s.metricsCache != nil {
		if err := s.metricsCache.Delete(ctx, sessionID); err != nil {
			log.Printf("metrics cache delete failed for session %s: %v", sessionID, err)
		}
	}
	return nil
}

// runAnalysis is the pending-log -> provider -> parse -> persist leg.
// The caller holds the claim.
func (s *AnalysisService) runAnalysis(ctx context.Context, session *model.Session, action string) (*model.AnalysisResult, error) {
	start := time.Now()
	system, user := BuildAnalysisPrompt(session)

	entry := &model.AILog{
		SessionID:     session.ID,
		Action:        action,
		Model:         s.config.Model,
		Status:        model.AILogPending,
		RequestPrompt: truncateRunes(user, s.config.PromptLogMax),
	}
	if err := s.logRepo.Create(ctx, entry); err != nil {
		return nil, providerError("creating pending log failed", err)
	}

	completion, err := s.client.Complete(ctx, system, user)
	if err != nil {
		s.finalizeError(ctx, entry.ID, start, err.Error())
		return nil, providerError("provider call failed", err)
	}

	result, jsonStr, parseErr := parseAnalysis(completion.Text)
	if parseErr != nil {
		s.finalizeError(ctx, entry.ID, start, parseErr.Error())
		return nil, parseErr
	}

	// Failed persists must not leave a half-written cache; the analysis
	// only becomes authoritative once this write succeeds.
	if err := s.sessionRepo.SaveAnalysis(ctx, session.ID, action, *result); err != nil {
		s.finalizeError(ctx, entry.ID, start, err.Error())
		return nil, providerError("persisting analysis failed", err)
	}

	s.finalizeSuccess(ctx, entry.ID, start, jsonStr, completion)
	return result, nil
}

// finalizeSuccess and finalizeError detach from the caller's context: a
// pending row must reach a terminal status even when the inbound request
// died mid-call.
func (s *AnalysisService) finalizeSuccess(ctx context.Context, logID string, start time.Time, jsonStr string, completion *Completion) {
	err := s.logRepo.Complete(context.WithoutCancel(ctx), logID, repository.AILogCompletion{
		Status:          model.AILogSuccess,
		Response:        truncateRunes(jsonStr, s.config.ResponseLogMax),
		InputTokens:     completion.InputTokens,
		OutputTokens:    completion.OutputTokens,
		Cost:            invocationCost(s.config, s.config.Model, completion.InputTokens, completion.OutputTokens),
		DurationSeconds: time.Since(start).Seconds(),
	})
	if err != nil {
		log.Printf("completing AI log %s failed: %v", logID, err)
	}
}

func (s *AnalysisService) finalizeError(ctx context.Context, logID string, start time.Time, message string) {
	err := s.logRepo.Complete(context.WithoutCancel(ctx), logID, repository.AILogCompletion{
		Status:          model.AILogError,
		ErrorMessage:    message,
		DurationSeconds: time.Since(start).Seconds(),
	})
	if err != nil {
		log.Printf("completing AI log %s failed: %v", logID, err)
	}
}

// parseAnalysis extracts the single JSON object from the provider's free
// text: everything between the first '{' and the last '}'. The output is
// accepted whole or rejected whole; no repair is attempted.
func parseAnalysis(text string) (*model.AnalysisResult, string, *Error) {
	first := strings.Index(text, "{")
	last := strings.LastIndex(text, "}")
	if first == -1 || last == -1 || last < first {
		return nil, "", parseError("no JSON object found in response", nil)
	}

	jsonStr := text[first : last+1]
	var result model.AnalysisResult
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		return nil, "", parseError("invalid JSON in response", err)
	}
	return &result, jsonStr, nil
}

// loadSession fetches and validates a session. Unknown sessions and
// malformed answer maps fail fast with an input error and no log row.
func (s *AnalysisService) loadSession(ctx context.Context, sessionID string) (*model.Session, error) {
	if sessionID == "" {
		return nil, inputError("session ID required")
	}

	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, providerError("session lookup failed", err)
	}
	if session == nil {
		return nil, inputError("session %s not found", sessionID)
	}

	for key, answer := range session.Answers {
		if !answer.IsValid() {
			return nil, inputError("session %s has malformed answer %s", sessionID, key)
		}
	}
	return session, nil
}

// ListLogs exposes the append-only invocation history read-only for
// operational dashboards.
func (s *AnalysisService) ListLogs(ctx context.Context, sessionID string) ([]*model.AILog, error) {
	return s.logRepo.ListBySession(ctx, sessionID)
}
