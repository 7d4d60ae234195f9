package scoring

import "deepmirror/internal/model"

// NeutralScore substitutes for unanswered questions so a partial
// questionnaire still yields a complete metrics object.
const NeutralScore = 3

// Normalize orients a raw 1-5 score so that 5 always means maximal
// distress and 1 means healthiest. Reverse-coded (positively framed)
// items are inverted; negatively framed items pass through.
func Normalize(raw int, isReverseCoded bool) int {
	if isReverseCoded {
		return 6 - raw
	}
	return raw
}

// AnswerSet wraps a session's answers and resolves dimension codes to
// normalized distress scores. Every composite formula reads through it,
// never from raw answers directly.
type AnswerSet struct {
	session *model.Session
}

// NewAnswerSet builds an AnswerSet over a session's answer map.
func NewAnswerSet(session *model.Session) AnswerSet {
	return AnswerSet{session: session}
}

// Raw returns the raw 1-5 score for a dimension code, or NeutralScore
// when the question is unknown or unanswered.
func (a AnswerSet) Raw(code string) int {
	q, ok := model.QuestionByCode(code)
	if !ok {
		return NeutralScore
	}
	score, ok := a.session.AnswerScore(q.ID)
	if !ok {
		return NeutralScore
	}
	return score
}

// Distress returns the distress-normalized score for a dimension code.
func (a AnswerSet) Distress(code string) int {
	q, ok := model.QuestionByCode(code)
	if !ok {
		return NeutralScore
	}
	score, ok := a.session.AnswerScore(q.ID)
	if !ok {
		return NeutralScore
	}
	return Normalize(score, q.IsReverseCoded)
}
