package model

// ActionRelationshipAnalysis is the cache key suffix for the core
// psychological analysis. Additional analysis actions get their own key
// so cached results never collide.
const ActionRelationshipAnalysis = "relationshipAnalysis"

// PartnerAnalysis is the model's read on the partner.
type PartnerAnalysis struct {
	IsNarcissistRisk bool     `json:"is_narcissist_risk" bson:"isNarcissistRisk"`
	RiskLevel        string   `json:"risk_level" bson:"riskLevel"` // Low|Moderate|High|Severe
	TraitsDetected   []string `json:"traits_detected" bson:"traitsDetected"`
}

// UserAnalysis is the model's read on the respondent.
type UserAnalysis struct {
	LikelyProfile  string `json:"likely_profile" bson:"likelyProfile"`
	EmotionalState string `json:"emotional_state" bson:"emotionalState"`
}

// RelationshipHealth is the aggregate toxicity assessment.
type RelationshipHealth struct {
	ToxicityScore int      `json:"toxicity_score" bson:"toxicityScore"` // 0-100
	Label         string   `json:"label" bson:"label"`                  // Healthy|Stagnant|Toxic|Abusive
	RedFlags      []string `json:"red_flags" bson:"redFlags"`
}

// AnalysisResult is the validated JSON object returned by the LLM.
// Once persisted for a (session, action) pair it is authoritative until
// explicitly invalidated.
type AnalysisResult struct {
	PartnerAnalysis    PartnerAnalysis    `json:"partner_analysis" bson:"partnerAnalysis"`
	UserAnalysis       UserAnalysis       `json:"user_analysis" bson:"userAnalysis"`
	RelationshipHealth RelationshipHealth `json:"relationship_health" bson:"relationshipHealth"`
	Recommendation     string             `json:"recommendation" bson:"recommendation"`
}
