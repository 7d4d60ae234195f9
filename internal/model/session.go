package model

import (
	"strconv"
	"time"
)

// Profile holds the categorical relationship data collected by the intake wizard.
// Every field is optional; scoring substitutes neutral defaults for anything missing.
type Profile struct {
	RelationshipDuration string `json:"relationshipDuration,omitempty" bson:"relationshipDuration,omitempty"` // "0-6mo".."10+yr"
	PartnerConflictStyle string `json:"partnerConflictStyle,omitempty" bson:"partnerConflictStyle,omitempty"` // withdraws|engages|escalates|deflects
	FightFrequency       string `json:"fightFrequency,omitempty" bson:"fightFrequency,omitempty"`             // daily|weekly|monthly|rarely
	RepairFrequency      string `json:"repairFrequency,omitempty" bson:"repairFrequency,omitempty"`           // never|rarely|sometimes|always
	BiggestFear          string `json:"biggestFear,omitempty" bson:"biggestFear,omitempty"`
	HurtfulBehavior      string `json:"hurtfulBehavior,omitempty" bson:"hurtfulBehavior,omitempty"`
	LivingTogether       *bool  `json:"livingTogether,omitempty" bson:"livingTogether,omitempty"`
	HasChildren          *bool  `json:"hasChildren,omitempty" bson:"hasChildren,omitempty"`
}

// Session is one assessment run: the answer map, the profile, and any
// cached analyses keyed by action. The analyses map is written only by
// the analysis service.
type Session struct {
	ID        string                    `json:"id" bson:"_id,omitempty"`
	Profile   Profile                   `json:"profile" bson:"profile"`
	Answers   map[string]Answer         `json:"answers" bson:"answers"` // decimal question ID -> answer
	Analyses  map[string]AnalysisResult `json:"analyses,omitempty" bson:"analyses,omitempty"`
	CreatedAt time.Time                 `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time                 `json:"updatedAt" bson:"updatedAt"`
}

// AnswerScore returns the raw 1-5 score for a question, if answered.
func (s *Session) AnswerScore(questionID int) (int, bool) {
	if s.Answers == nil {
		return 0, false
	}
	a, ok := s.Answers[strconv.Itoa(questionID)]
	if !ok {
		return 0, false
	}
	return a.Score, true
}

// Analysis returns the cached result for an action, if one was persisted.
func (s *Session) Analysis(action string) (AnalysisResult, bool) {
	if s.Analyses == nil {
		return AnalysisResult{}, false
	}
	r, ok := s.Analyses[action]
	return r, ok
}
