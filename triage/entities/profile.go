package entities

// DiseaseProfile is the static record describing one condition: its expected
// symptom sets and severity bounds. Read-only after knowledge base load.
// Invariant: Baseline <= MaxEscalation in the severity ordering.
type DiseaseProfile struct {
	Name               string   `json:"name"`
	Common             []string `json:"common"`
	Optional           []string `json:"optional"`
	SeverityIndicators []string `json:"severity_indicators"`
	Baseline           Severity `json:"baseline"`
	MaxEscalation      Severity `json:"can_escalate_to"`
	SevereIf           []string `json:"severe_if"`
	Contradictions     []string `json:"contradictions,omitempty"`
	Description        string   `json:"description"`

	// Known is false when the profile is the generic fallback resolved
	// for an unrecognized disease label.
	Known bool `json:"-"`
}

// AdviceTemplate is one severity tier of a disease's recommendation set.
type AdviceTemplate struct {
	GeneralAdvice   string   `json:"general_advice"`
	ImmediateCare   []string `json:"immediate_care"`
	HomeRemedies    []string `json:"home_remedies"`
	Precautions     []string `json:"precautions"`
	LifestyleTips   []string `json:"lifestyle_tips"`
	WhenToSeeDoctor string   `json:"when_to_see_doctor"`
}

// RiskProfile is the inherent risk classification of a disease label,
// independent of any reported symptoms.
type RiskProfile struct {
	Disease         string   `json:"disease"`
	Baseline        Severity `json:"baseline_severity"`
	MaxEscalation   Severity `json:"max_severity"`
	RiskCategory    string   `json:"risk_category"`
	RiskMessage     string   `json:"risk_message"`
	SevereIf        []string `json:"severe_indicators"`
	IndicatorCount  int      `json:"indicator_count"`
}

// DiseaseMatch is one entry of a best-matching-diseases search.
type DiseaseMatch struct {
	Disease         string   `json:"disease"`
	MatchPercentage int      `json:"match_percentage"`
	MatchedSymptoms []string `json:"matched_symptoms"`
	CommonMatched   int      `json:"common_matched"`
	CommonTotal     int      `json:"common_total"`
}
