package scoring

import (
	"math"
	"strings"

	"deepmirror/internal/model"
)

// ComputeMetrics derives the twelve composite metrics from a session's
// answers and profile. Every metric is a pure function of its inputs:
// same session, same numbers. Dimension terms are distress-normalized
// (1=healthiest, 5=worst); high-is-good metrics invert terms via (6-x).
func ComputeMetrics(session *model.Session) *model.CompositeMetrics {
	d := NewAnswerSet(session).Distress
	p := session.Profile

	repair := RepairOrdinal(p)
	fightFreq := FightFrequencyOrdinal(p)
	duration := DurationOrdinal(p)
	fearPresence := FearPresenceOrdinal(p)
	fearLove := FearLoveOrdinal(p)

	// The Crystal Ball. Repair habits multiply the base forecast before
	// the final clamp, so "always repairs" can push past the raw formula.
	sustainability := float64((6-d("D2.5"))+(6-d("D5.4"))+(6-d("D1.6"))) / 15 * 100
	switch repair {
	case 4:
		sustainability *= 1.5
	case 1:
		sustainability *= 0.5
	}

	conflictBonus := 0
	if strings.EqualFold(p.PartnerConflictStyle, "withdraws") {
		conflictBonus = 5
	}

	quietQuitBonus := 0
	if fightFreq == 4 {
		quietQuitBonus = 5
	}

	neverRepairBonus := 0
	if repair == 1 {
		neverRepairBonus = 5
	}

	m := &model.CompositeMetrics{
		SustainabilityForecast: clampRound(sustainability),
		EroticDeathSpiral:      scale(d("D4.1")+d("D4.2")+d("D3.1")+d("D3.4"), 20),
		BetrayalVulnerability:  scale(d("D2.1")+d("D2.3")+fearPresence, 15),
		RepairEfficiency:       scale(repair+(6-d("D2.6"))+(6-d("D1.4")), 14),
		DutySexIndex:           scale((6-d("D3.6"))+d("D1.5")+d("D3.5"), 15),
		CEOVsIntern:            scale(d("D4.1")+d("D4.4")+conflictBonus, 15),
		SilentDivorceRisk:      scale(quietQuitBonus+d("D5.3")+fearLove, 15),
		CompatibilityQuotient:  scale((6-d("D5.4"))+(6-d("D4.6"))+(6-d("D5.1")), 15),
		InternalizedMalice:     scale(d("D2.2")+d("D2.1")+neverRepairBonus, 15),
		NervousSystemLoad:      scale(d("D1.1")+d("D2.4")+d("D4.3"), 15),
		EroticPotential:        scale((6-d("D3.6"))-d("D3.1")+5, 10),
		ResilienceBattery:      scale(duration+(6-d("D2.5"))+(6-d("D1.6")), 15),
	}

	return m
}

// scale converts a summed term to a rounded 0-100 value.
func scale(sum, denominator int) int {
	return clampRound(float64(sum) / float64(denominator) * 100)
}

func clampRound(v float64) int {
	r := int(math.Round(v))
	if r < 0 {
		return 0
	}
	if r > 100 {
		return 100
	}
	return r
}
