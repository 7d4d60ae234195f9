package scoring

import (
	"testing"

	"deepmirror/internal/model"
)

func TestComputeMetricsNeutralScenario(t *testing.T) {
	t.Parallel()

	// Scenario A: every answer neutral, repair=sometimes, duration=2-5yr.
	session := sessionAllAnswered(3)
	session.Profile = model.Profile{RepairFrequency: "sometimes", RelationshipDuration: "2-5yr"}

	m := ComputeMetrics(session)

	cases := []struct {
		name string
		got  int
		want int
	}{
		{"sustainability_forecast", m.SustainabilityForecast, 60},
		{"erotic_death_spiral", m.EroticDeathSpiral, 60},
		{"betrayal_vulnerability", m.BetrayalVulnerability, 40},
		{"repair_efficiency", m.RepairEfficiency, 64},
		{"duty_sex_index", m.DutySexIndex, 60},
		{"ceo_vs_intern", m.CEOVsIntern, 40},
		{"silent_divorce_risk", m.SilentDivorceRisk, 20},
		{"compatibility_quotient", m.CompatibilityQuotient, 60},
		{"internalized_malice", m.InternalizedMalice, 40},
		{"nervous_system_load", m.NervousSystemLoad, 60},
		{"erotic_potential", m.EroticPotential, 50},
		{"resilience_battery", m.ResilienceBattery, 60},
	}
	for _, tc := range cases {
		if tc.got != tc.want {
			t.Fatalf("%s got %d want %d", tc.name, tc.got, tc.want)
		}
	}
}

func TestComputeMetricsRepairMultiplier(t *testing.T) {
	t.Parallel()

	// Scenario B: never repairing halves the neutral forecast.
	neutral := sessionAllAnswered(3)
	neutral.Profile = model.Profile{RepairFrequency: "sometimes", RelationshipDuration: "2-5yr"}

	never := sessionAllAnswered(3)
	never.Profile = model.Profile{RepairFrequency: "never", RelationshipDuration: "2-5yr"}

	a := ComputeMetrics(neutral)
	b := ComputeMetrics(never)

	if b.SustainabilityForecast != 30 {
		t.Fatalf("never-repair forecast got %d want 30", b.SustainabilityForecast)
	}
	if b.SustainabilityForecast >= a.SustainabilityForecast {
		t.Fatalf("never-repair forecast %d not below neutral %d", b.SustainabilityForecast, a.SustainabilityForecast)
	}
}

func TestComputeMetricsAlwaysRepairClampedAt100(t *testing.T) {
	t.Parallel()

	// Healthiest answers with an always-repair multiplier would exceed 100
	// before the final clamp.
	session := sessionWithAnswers(map[string]int{"D2.5": 5, "D5.4": 5, "D1.6": 5})
	session.Profile = model.Profile{RepairFrequency: "always"}

	m := ComputeMetrics(session)
	if m.SustainabilityForecast != 100 {
		t.Fatalf("forecast got %d want 100", m.SustainabilityForecast)
	}
}

func TestComputeMetricsRangeBounds(t *testing.T) {
	t.Parallel()

	profiles := []model.Profile{
		{},
		{RepairFrequency: "never", FightFrequency: "rarely", PartnerConflictStyle: "withdraws", BiggestFear: "losing love", RelationshipDuration: "10+yr"},
		{RepairFrequency: "always", FightFrequency: "daily", PartnerConflictStyle: "engages", RelationshipDuration: "0-6mo"},
	}

	for score := 1; score <= 5; score++ {
		for _, profile := range profiles {
			session := sessionAllAnswered(score)
			session.Profile = profile

			m := ComputeMetrics(session)
			for _, def := range model.MetricCatalog {
				v, ok := m.ByID(def.ID)
				if !ok {
					t.Fatalf("metric %s missing from ByID", def.ID)
				}
				if v < 0 || v > 100 {
					t.Fatalf("metric %s out of range: %d (score=%d profile=%+v)", def.ID, v, score, profile)
				}
			}
		}
	}
}

func TestComputeMetricsEmptySession(t *testing.T) {
	t.Parallel()

	// Zero answers must still yield a complete metrics object.
	m := ComputeMetrics(&model.Session{ID: "empty"})

	if m.SustainabilityForecast != 60 {
		t.Fatalf("empty-session forecast got %d want 60", m.SustainabilityForecast)
	}
	if m.EroticPotential != 50 {
		t.Fatalf("empty-session erotic potential got %d want 50", m.EroticPotential)
	}
}

func TestComputeMetricsConflictStyleBonus(t *testing.T) {
	t.Parallel()

	base := sessionAllAnswered(3)
	withdrawing := sessionAllAnswered(3)
	withdrawing.Profile = model.Profile{PartnerConflictStyle: "withdraws"}

	a := ComputeMetrics(base)
	b := ComputeMetrics(withdrawing)

	// (3+3+5)/15*100 = 73.
	if b.CEOVsIntern != 73 {
		t.Fatalf("withdrawing CEO-vs-intern got %d want 73", b.CEOVsIntern)
	}
	if a.CEOVsIntern != 40 {
		t.Fatalf("baseline CEO-vs-intern got %d want 40", a.CEOVsIntern)
	}
}
