package model

// QuestionDefinition describes one Likert item in the assessment.
// Reverse-coded items are phrased positively, so their raw agreement
// score must be inverted before entering any composite formula.
type QuestionDefinition struct {
	ID             int    `json:"id"`
	DimensionCode  string `json:"dimensionCode"` // e.g. "D2.5"
	Text           string `json:"text"`
	IsReverseCoded bool   `json:"isReverseCoded"`
}

// Questions is the static item catalog. Dimensions:
// D1 conflict & safety, D2 trust & repair, D3 intimacy,
// D4 load balance, D5 shared future.
var Questions = []QuestionDefinition{
	{ID: 1, DimensionCode: "D1.1", Text: "I feel a wave of panic when a fight starts."},
	{ID: 2, DimensionCode: "D1.2", Text: "Small disagreements escalate quickly between us."},
	{ID: 3, DimensionCode: "D1.3", Text: "I censor myself to avoid setting my partner off."},
	{ID: 4, DimensionCode: "D1.4", Text: "It takes me a long time to feel safe again after we argue."},
	{ID: 5, DimensionCode: "D1.5", Text: "I give in during conflict just to make it stop."},
	{ID: 6, DimensionCode: "D1.6", Text: "Even mid-argument, I know we are fundamentally okay.", IsReverseCoded: true},
	{ID: 7, DimensionCode: "D2.1", Text: "I feel barely heard when I raise a concern."},
	{ID: 8, DimensionCode: "D2.2", Text: "My partner has hurt me on purpose."},
	{ID: 9, DimensionCode: "D2.3", Text: "I need frequent reassurance that we are still good."},
	{ID: 10, DimensionCode: "D2.4", Text: "I replay our arguments in my head for days."},
	{ID: 11, DimensionCode: "D2.5", Text: "I assume my partner has my best interests at heart.", IsReverseCoded: true},
	{ID: 12, DimensionCode: "D2.6", Text: "We are slow to reconnect after a fight."},
	{ID: 13, DimensionCode: "D3.1", Text: "We feel more like roommates than lovers."},
	{ID: 14, DimensionCode: "D3.2", Text: "I avoid initiating intimacy because rejection stings."},
	{ID: 15, DimensionCode: "D3.3", Text: "Our physical connection feels routine or obligatory."},
	{ID: 16, DimensionCode: "D3.4", Text: "Desire has faded since the early days and keeps fading."},
	{ID: 17, DimensionCode: "D3.5", Text: "I sometimes have sex mainly to keep the peace."},
	{ID: 18, DimensionCode: "D3.6", Text: "We touch affectionately often, even without sex.", IsReverseCoded: true},
	{ID: 19, DimensionCode: "D4.1", Text: "I carry the mental load of running our life."},
	{ID: 20, DimensionCode: "D4.2", Text: "I feel more like my partner's manager or parent than their equal."},
	{ID: 21, DimensionCode: "D4.3", Text: "Money decisions cause tension between us."},
	{ID: 22, DimensionCode: "D4.4", Text: "If I stopped planning, nothing in our life would get done."},
	{ID: 23, DimensionCode: "D4.5", Text: "I keep score of who has done more lately."},
	{ID: 24, DimensionCode: "D4.6", Text: "Big decisions are genuinely shared between us.", IsReverseCoded: true},
	{ID: 25, DimensionCode: "D5.1", Text: "I worry we are slowly growing apart."},
	{ID: 26, DimensionCode: "D5.2", Text: "I picture my future and my partner is blurry in it."},
	{ID: 27, DimensionCode: "D5.3", Text: "We rarely dream or plan fun things together anymore."},
	{ID: 28, DimensionCode: "D5.4", Text: "Our long-term goals for life are aligned.", IsReverseCoded: true},
}

var (
	questionsByID   map[int]QuestionDefinition
	questionsByCode map[string]QuestionDefinition
)

func init() {
	questionsByID = make(map[int]QuestionDefinition, len(Questions))
	questionsByCode = make(map[string]QuestionDefinition, len(Questions))
	for _, q := range Questions {
		questionsByID[q.ID] = q
		questionsByCode[q.DimensionCode] = q
	}
}

// QuestionByID looks up a catalog item by numeric ID.
func QuestionByID(id int) (QuestionDefinition, bool) {
	q, ok := questionsByID[id]
	return q, ok
}

// QuestionByCode looks up a catalog item by dimension code, e.g. "D3.6".
func QuestionByCode(code string) (QuestionDefinition, bool) {
	q, ok := questionsByCode[code]
	return q, ok
}
