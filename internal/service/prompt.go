package service

import (
	"fmt"
	"strings"

	"deepmirror/internal/model"
	"deepmirror/internal/scoring"
)

// freeTextPromptMax bounds the free-text profile fields embedded in the
// user message.
const freeTextPromptMax = 300

// systemPrompt is the fixed analysis instruction. It never varies per
// session, so prompt/response pairs stay reproducible.
const systemPrompt = `You are an expert Psychometric AI specialized in Relationship Dynamics, Cluster B Personality Disorders (NPD), and Emotional Abuse patterns.

Your task is to analyze a structured questionnaire response set and output a detailed psychological profile in strict JSON format.

### ANALYSIS LOGIC

1. PARTNER EVALUATION (Narcissism/NPD):
   - High Risk Indicators: high scores on 'Malice/Intent' and 'Barely Heard', a withdrawing or deflecting conflict style, and repair that never happens.
   - Key traits to detect: lack of empathy, grandiosity, manipulation, refusal to accept responsibility.

2. USER EVALUATION (Self-Assessment):
   - Victim/Anxious profile: high scores on 'Panic' and 'Reassurance Need', presence of fear. Indicates the user is reacting to the dynamic (walking on eggshells).
   - Prioritize detecting anxious attachment or codependency unless the user shows a clear lack of empathy.

3. TOXICITY INDEX (0-100):
   - 0-30 Healthy: occasional conflict, repair exists.
   - 31-60 Stagnant: lack of spark, roommate syndrome, low danger.
   - 61-85 Toxic: stonewalling, criticism, unresolved conflict.
   - 86-100 Dangerous: presence of fear, malice, or coercion.

### OUTPUT FORMAT
You must return ONLY a valid JSON object. Do not include markdown formatting.

JSON STRUCTURE:
{
  "partner_analysis": {
    "is_narcissist_risk": boolean,
    "risk_level": "Low" | "Moderate" | "High" | "Severe",
    "traits_detected": ["list", "of", "traits"]
  },
  "user_analysis": {
    "likely_profile": "Anxious/Victim" | "Secure/Unhappy" | "Avoidant" | "Narcissistic/Controlling",
    "emotional_state": "short description of the user's psychological state"
  },
  "relationship_health": {
    "toxicity_score": integer (0-100),
    "label": "Healthy" | "Stagnant" | "Toxic" | "Abusive",
    "red_flags": ["list", "of", "critical", "issues"]
  },
  "recommendation": "Short, direct advice string based on the data."
}`

// promptScoreItems are the raw question scores surfaced to the model, in
// fixed render order.
var promptScoreItems = []struct {
	code  string
	label string
}{
	{"D1.1", "Panic/Abandonment"},
	{"D2.2", "Malice/Intent"},
	{"D2.3", "Reassurance Need"},
	{"D2.4", "Rumination"},
	{"D3.5", "Peacekeeping Sex"},
	{"D4.2", "Manager/Parent"},
}

// BuildAnalysisPrompt renders the system instruction and the per-session
// user message. Output is byte-identical for identical inputs: fixed
// field order, no timestamps, no locale-dependent formatting.
func BuildAnalysisPrompt(session *model.Session) (system, user string) {
	answers := scoring.NewAnswerSet(session)
	p := session.Profile

	var sb strings.Builder
	sb.WriteString("ANALYZE THIS RELATIONSHIP DYNAMIC:\n")
	sb.WriteString("\n--- WIZARD DATA ---\n")
	fmt.Fprintf(&sb, "- Partner Conflict Style: %s\n", orUnknown(p.PartnerConflictStyle))
	fmt.Fprintf(&sb, "- Repair Frequency: %s\n", orUnknown(p.RepairFrequency))
	fmt.Fprintf(&sb, "- Fight Frequency: %s\n", orUnknown(p.FightFrequency))
	fmt.Fprintf(&sb, "- Biggest Fear: %q\n", truncateRunes(orNA(p.BiggestFear), freeTextPromptMax))
	fmt.Fprintf(&sb, "- Partner Hurtful Behavior: %q\n", truncateRunes(orNA(p.HurtfulBehavior), freeTextPromptMax))

	sb.WriteString("\n--- KEY QUESTION SCORES (1-5) ---\n")
	for _, item := range promptScoreItems {
		fmt.Fprintf(&sb, "- %s (%s): %d\n", item.code, item.label, answers.Raw(item.code))
	}

	return systemPrompt, sb.String()
}

func orUnknown(v string) string {
	if v == "" {
		return "Unknown"
	}
	return v
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}

// truncateRunes clamps text to at most n runes.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
