package model

// Answer is a single Likert response, keyed by question ID within a session.
// The score is always 1-5 and is immutable once submitted for a question.
type Answer struct {
	QuestionID int `json:"questionId" bson:"questionId"`
	Score      int `json:"score" bson:"score"`
}

// IsValid reports whether the answer references a cataloged question
// and carries a score on the 1-5 scale.
func (a Answer) IsValid() bool {
	if a.Score < 1 || a.Score > 5 {
		return false
	}
	_, ok := QuestionByID(a.QuestionID)
	return ok
}
