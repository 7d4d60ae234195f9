package scoring

import (
	"strconv"

	"deepmirror/internal/model"
)

// sessionWithAnswers builds a session answering the given dimension codes
// with the given raw scores.
func sessionWithAnswers(byCode map[string]int) *model.Session {
	s := &model.Session{ID: "test-session", Answers: map[string]model.Answer{}}
	for code, score := range byCode {
		q, ok := model.QuestionByCode(code)
		if !ok {
			panic("unknown dimension code " + code)
		}
		s.Answers[strconv.Itoa(q.ID)] = model.Answer{QuestionID: q.ID, Score: score}
	}
	return s
}

// sessionAllAnswered builds a session answering every catalog question
// with the same raw score.
func sessionAllAnswered(score int) *model.Session {
	s := &model.Session{ID: "test-session", Answers: map[string]model.Answer{}}
	for _, q := range model.Questions {
		s.Answers[strconv.Itoa(q.ID)] = model.Answer{QuestionID: q.ID, Score: score}
	}
	return s
}
