package scoring

import "deepmirror/internal/model"

// DefaultRiskThresholds is the flag lookup table used when no
// configuration overrides it: metric ID -> score above which the
// corresponding risk flag is raised.
var DefaultRiskThresholds = map[string]int{
	"silent_divorce_risk":    70,
	"nervous_system_load":    70,
	"betrayal_vulnerability": 70,
	"internalized_malice":    70,
}

// EvaluateFlags fills in the boolean risk signals on a computed metrics
// object. The safety trigger reads the "hurt me on purpose" item and the
// fear field directly so aggregate averaging can never mask it.
func EvaluateFlags(session *model.Session, m *model.CompositeMetrics, thresholds map[string]int) {
	if thresholds == nil {
		thresholds = DefaultRiskThresholds
	}

	answers := NewAnswerSet(session)

	m.Flags.SafetyTrigger = answers.Distress("D2.2") == 5 ||
		FearPresenceOrdinal(session.Profile) == 5

	// Affection intact but the couple feels like roommates: the spark is
	// blocked by dynamics, not gone. Raw scores on purpose.
	m.Flags.PositivePotential = answers.Raw("D3.6") >= 4 && answers.Raw("D3.1") >= 4

	m.Flags.SilentDivorceRisk = exceeds(m, "silent_divorce_risk", thresholds)
	m.Flags.BurnoutRisk = exceeds(m, "nervous_system_load", thresholds)
	m.Flags.BetrayalRisk = exceeds(m, "betrayal_vulnerability", thresholds)
	m.Flags.InternalizedHatred = exceeds(m, "internalized_malice", thresholds)
}

func exceeds(m *model.CompositeMetrics, id string, thresholds map[string]int) bool {
	threshold, ok := thresholds[id]
	if !ok {
		threshold = DefaultRiskThresholds[id]
	}
	value, ok := m.ByID(id)
	return ok && value > threshold
}
