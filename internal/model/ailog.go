package model

import "time"

// AILogStatus is the lifecycle state of one provider invocation.
type AILogStatus string

const (
	AILogPending AILogStatus = "pending"
	AILogSuccess AILogStatus = "success"
	AILogError   AILogStatus = "error"
)

// AILog is the audit record for a single LLM call. A row is created with
// status=pending before the provider is invoked and finalized exactly once,
// so every attempt is accounted for whether or not it succeeded.
// Rows are append-only; retention is handled outside this service.
type AILog struct {
	ID              string      `json:"id" bson:"_id,omitempty"`
	SessionID       string      `json:"sessionId" bson:"sessionId"`
	Action          string      `json:"action" bson:"action"`
	Model           string      `json:"model" bson:"model"`
	Status          AILogStatus `json:"status" bson:"status"`
	RequestPrompt   string      `json:"requestPrompt,omitempty" bson:"requestPrompt,omitempty"` // truncated
	Response        string      `json:"response,omitempty" bson:"response,omitempty"`           // truncated
	ErrorMessage    string      `json:"errorMessage,omitempty" bson:"errorMessage,omitempty"`
	InputTokens     *int        `json:"inputTokens,omitempty" bson:"inputTokens,omitempty"`
	OutputTokens    *int        `json:"outputTokens,omitempty" bson:"outputTokens,omitempty"`
	Cost            *float64    `json:"cost,omitempty" bson:"cost,omitempty"` // nil when usage is unknown
	DurationSeconds float64     `json:"durationSeconds" bson:"durationSeconds"`
	CreatedAt       time.Time   `json:"createdAt" bson:"createdAt"`
}
