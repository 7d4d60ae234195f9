package scoring

import (
	"strings"

	"deepmirror/internal/model"
)

// Ordinal tables for the categorical profile fields. Unknown or missing
// values resolve to the neutral/middle ordinal, never an extreme, because
// profile completion is optional.

var repairOrdinals = map[string]int{
	"never":     1,
	"rarely":    2,
	"sometimes": 3,
	"always":    4,
}

var fightFrequencyOrdinals = map[string]int{
	"daily":   1,
	"weekly":  2,
	"monthly": 3,
	"rarely":  4,
}

var durationOrdinals = map[string]int{
	"0-6mo":   1,
	"6mo-2yr": 2,
	"2-5yr":   3,
	"5-10yr":  4,
	"10+yr":   5,
}

// RepairOrdinal maps repair frequency to 1-4, default 3.
func RepairOrdinal(p model.Profile) int {
	if v, ok := repairOrdinals[strings.ToLower(p.RepairFrequency)]; ok {
		return v
	}
	return 3
}

// FightFrequencyOrdinal maps fight frequency to 1-4, default 3.
func FightFrequencyOrdinal(p model.Profile) int {
	if v, ok := fightFrequencyOrdinals[strings.ToLower(p.FightFrequency)]; ok {
		return v
	}
	return 3
}

// ConflictStyleOrdinal maps the partner's conflict style: engaging
// partners score 4, everything else (withdraws, escalates, deflects,
// missing) scores 1.
func ConflictStyleOrdinal(p model.Profile) int {
	if strings.EqualFold(p.PartnerConflictStyle, "engages") {
		return 4
	}
	return 1
}

// DurationOrdinal maps relationship duration buckets to 1-5, default 3.
func DurationOrdinal(p model.Profile) int {
	if v, ok := durationOrdinals[strings.ToLower(p.RelationshipDuration)]; ok {
		return v
	}
	return 3
}

// FearPresenceOrdinal is 5 when any non-empty fear text was given, else 0.
func FearPresenceOrdinal(p model.Profile) int {
	if strings.TrimSpace(p.BiggestFear) != "" {
		return 5
	}
	return 0
}

// FearLoveOrdinal is 5 when the stated fear mentions losing love. Used by
// the silent-divorce formula only.
func FearLoveOrdinal(p model.Profile) int {
	if strings.Contains(strings.ToLower(p.BiggestFear), "love") {
		return 5
	}
	return 0
}
