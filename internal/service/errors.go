package service

import "fmt"

// ErrorKind classifies analysis failures so callers can decide whether
// retrying makes sense without inspecting message text.
type ErrorKind string

const (
	// KindInput covers missing sessions and malformed answer maps. No log
	// row is created for these.
	KindInput ErrorKind = "input"
	// KindProvider covers network failures, non-2xx responses and
	// timeouts from the LLM API. Retryable.
	KindProvider ErrorKind = "provider"
	// KindParse covers responses with no extractable JSON object.
	// Retrying the same prompt is unlikely to help.
	KindParse ErrorKind = "parse"
	// KindConflict means another invocation holds the claim for the same
	// session and action. Callers should back off.
	KindConflict ErrorKind = "conflict"
)

// Error is the single discriminated failure type crossing the analysis
// service boundary. Nothing escapes the orchestrator unclassified.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Retryable reports whether re-running the whole orchestration could
// reasonably succeed.
func (e *Error) Retryable() bool {
	return e.Kind == KindProvider || e.Kind == KindConflict
}

func inputError(format string, args ...any) *Error {
	return &Error{Kind: KindInput, Message: fmt.Sprintf(format, args...)}
}

func providerError(message string, err error) *Error {
	return &Error{Kind: KindProvider, Message: message, Err: err}
}

func parseError(message string, err error) *Error {
	return &Error{Kind: KindParse, Message: message, Err: err}
}

func conflictError(sessionID, action string) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf("analysis already running for session %s action %s", sessionID, action)}
}
