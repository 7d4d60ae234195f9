package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deepmirror/internal/model"
)

func promptSession() *model.Session {
	return &model.Session{
		ID: "s1",
		Profile: model.Profile{
			PartnerConflictStyle: "withdraws",
			RepairFrequency:      "rarely",
			FightFrequency:       "weekly",
			BiggestFear:          "being left alone",
			HurtfulBehavior:      "silent treatment for days",
		},
		Answers: map[string]model.Answer{
			"1":  {QuestionID: 1, Score: 4},  // D1.1
			"8":  {QuestionID: 8, Score: 2},  // D2.2
			"9":  {QuestionID: 9, Score: 5},  // D2.3
			"20": {QuestionID: 20, Score: 3}, // D4.2
		},
	}
}

func TestBuildAnalysisPromptDeterministic(t *testing.T) {
	sys1, user1 := BuildAnalysisPrompt(promptSession())
	sys2, user2 := BuildAnalysisPrompt(promptSession())

	assert.Equal(t, sys1, sys2)
	assert.Equal(t, user1, user2)
}

func TestBuildAnalysisPromptContents(t *testing.T) {
	system, user := BuildAnalysisPrompt(promptSession())

	assert.Contains(t, system, "strict JSON format")
	assert.Contains(t, user, "- Partner Conflict Style: withdraws")
	assert.Contains(t, user, "- Repair Frequency: rarely")
	assert.Contains(t, user, `- Biggest Fear: "being left alone"`)
	assert.Contains(t, user, `- Partner Hurtful Behavior: "silent treatment for days"`)

	// Raw scores render unnormalized; unanswered items fall back to 3.
	assert.Contains(t, user, "- D1.1 (Panic/Abandonment): 4")
	assert.Contains(t, user, "- D2.2 (Malice/Intent): 2")
	assert.Contains(t, user, "- D2.3 (Reassurance Need): 5")
	assert.Contains(t, user, "- D2.4 (Rumination): 3")
	assert.Contains(t, user, "- D3.5 (Peacekeeping Sex): 3")
	assert.Contains(t, user, "- D4.2 (Manager/Parent): 3")
}

func TestBuildAnalysisPromptEmptyProfile(t *testing.T) {
	_, user := BuildAnalysisPrompt(&model.Session{ID: "s1"})

	assert.Contains(t, user, "- Partner Conflict Style: Unknown")
	assert.Contains(t, user, `- Biggest Fear: "N/A"`)
	assert.Contains(t, user, `- Partner Hurtful Behavior: "N/A"`)
}

func TestBuildAnalysisPromptTruncatesFreeText(t *testing.T) {
	session := promptSession()
	session.Profile.BiggestFear = strings.Repeat("ä", 500)

	_, user := BuildAnalysisPrompt(session)

	assert.NotContains(t, user, strings.Repeat("ä", 301))
	assert.Contains(t, user, strings.Repeat("ä", 300))
}

func TestBuildAnalysisPromptScoreOrder(t *testing.T) {
	_, user := BuildAnalysisPrompt(promptSession())

	prev := -1
	for _, code := range []string{"D1.1", "D2.2", "D2.3", "D2.4", "D3.5", "D4.2"} {
		idx := strings.Index(user, "- "+code+" (")
		require.NotEqual(t, -1, idx, "missing score line for %s", code)
		assert.Greater(t, idx, prev, "score line %s out of order", code)
		prev = idx
	}
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "abc", truncateRunes("abc", 5))
	assert.Equal(t, "abc", truncateRunes("abcde", 3))
	assert.Equal(t, "ää", truncateRunes("ääää", 2))
	assert.Equal(t, "", truncateRunes("abc", 0))
}
