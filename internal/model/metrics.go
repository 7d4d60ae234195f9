package model

// MetricFlags are boolean risk signals evaluated alongside the composite
// metrics. The safety trigger must never be suppressed by averaging.
type MetricFlags struct {
	SafetyTrigger      bool `json:"safetyTrigger" bson:"safetyTrigger"`
	PositivePotential  bool `json:"positivePotential" bson:"positivePotential"`
	SilentDivorceRisk  bool `json:"silentDivorceRisk" bson:"silentDivorceRisk"`
	BurnoutRisk        bool `json:"burnoutRisk" bson:"burnoutRisk"`
	BetrayalRisk       bool `json:"betrayalRisk" bson:"betrayalRisk"`
	InternalizedHatred bool `json:"internalizedHatred" bson:"internalizedHatred"`
}

// CompositeMetrics is the full derived score set, each value in 0-100.
type CompositeMetrics struct {
	SustainabilityForecast int `json:"sustainability_forecast" bson:"sustainabilityForecast"`
	EroticDeathSpiral      int `json:"erotic_death_spiral" bson:"eroticDeathSpiral"`
	BetrayalVulnerability  int `json:"betrayal_vulnerability" bson:"betrayalVulnerability"`
	RepairEfficiency       int `json:"repair_efficiency" bson:"repairEfficiency"`
	DutySexIndex           int `json:"duty_sex_index" bson:"dutySexIndex"`
	CEOVsIntern            int `json:"ceo_vs_intern" bson:"ceoVsIntern"`
	SilentDivorceRisk      int `json:"silent_divorce_risk" bson:"silentDivorceRisk"`
	CompatibilityQuotient  int `json:"compatibility_quotient" bson:"compatibilityQuotient"`
	InternalizedMalice     int `json:"internalized_malice" bson:"internalizedMalice"`
	NervousSystemLoad      int `json:"nervous_system_load" bson:"nervousSystemLoad"`
	EroticPotential        int `json:"erotic_potential" bson:"eroticPotential"`
	ResilienceBattery      int `json:"resilience_battery" bson:"resilienceBattery"`

	Flags MetricFlags `json:"flags" bson:"flags"`
}

// ByID returns a metric value by its wire identifier. Used by the flag
// evaluator so thresholds can live in a single configuration table.
func (m *CompositeMetrics) ByID(id string) (int, bool) {
	switch id {
	case "sustainability_forecast":
		return m.SustainabilityForecast, true
	case "erotic_death_spiral":
		return m.EroticDeathSpiral, true
	case "betrayal_vulnerability":
		return m.BetrayalVulnerability, true
	case "repair_efficiency":
		return m.RepairEfficiency, true
	case "duty_sex_index":
		return m.DutySexIndex, true
	case "ceo_vs_intern":
		return m.CEOVsIntern, true
	case "silent_divorce_risk":
		return m.SilentDivorceRisk, true
	case "compatibility_quotient":
		return m.CompatibilityQuotient, true
	case "internalized_malice":
		return m.InternalizedMalice, true
	case "nervous_system_load":
		return m.NervousSystemLoad, true
	case "erotic_potential":
		return m.EroticPotential, true
	case "resilience_battery":
		return m.ResilienceBattery, true
	}
	return 0, false
}

// MetricDefinition is presentation metadata for one composite metric.
type MetricDefinition struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// MetricCatalog lists the twelve metrics in report order.
var MetricCatalog = []MetricDefinition{
	{ID: "sustainability_forecast", Title: "The Crystal Ball", Description: "Predicts if your current path leads to long-term growth or a dead end."},
	{ID: "erotic_death_spiral", Title: "The Parent-Trap", Description: "Measures how much 'managing' your partner is killing your sex life."},
	{ID: "betrayal_vulnerability", Title: "The Open Door", Description: "How likely an outside emotional or physical connection could disrupt the bond."},
	{ID: "repair_efficiency", Title: "The Bounce Back", Description: "Your relationship's immune system: how quickly you recover after a fight."},
	{ID: "duty_sex_index", Title: "The Tactical Truce", Description: "Are you having sex because you want to, or just to keep the peace?"},
	{ID: "ceo_vs_intern", Title: "The Office Manager", Description: "Measures the imbalance of 'worrying and planning' vs. just 'showing up'."},
	{ID: "silent_divorce_risk", Title: "The Quiet Quit", Description: "High risk for couples who 'never fight' but have emotionally checked out."},
	{ID: "compatibility_quotient", Title: "The Soulmate Sync", Description: "Measures if your core life values and future dreams actually match."},
	{ID: "internalized_malice", Title: "The Enemy Within", Description: "Are you starting to see your partner as a bad person rather than a teammate?"},
	{ID: "nervous_system_load", Title: "The Burnout Rate", Description: "The physical and mental toll this relationship is taking on your body."},
	{ID: "erotic_potential", Title: "The Hidden Spark", Description: "Tells you if the fire is still there but just covered by domestic stress."},
	{ID: "resilience_battery", Title: "The Anchor Score", Description: "How much shared history and core trust you have to survive a crisis."},
}
