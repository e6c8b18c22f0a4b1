package entities

// SafetyValidation records the outcome of the prohibited-content scan and
// required-elements check. Non-compliance never blocks a response; it is
// surfaced here for downstream consumers and human reviewers.
type SafetyValidation struct {
	IsCompliant bool     `json:"is_compliant"`
	Issues      []string `json:"issues"`
	Warnings    []string `json:"warnings"`
}

// Recommendation is the personalized, safety-validated advice set built by
// the synthesizer for one request.
type Recommendation struct {
	Disease               string           `json:"disease"`
	Severity              Severity         `json:"severity"`
	GeneralAdvice         string           `json:"general_advice"`
	ImmediateCare         []string         `json:"immediate_care"`
	HomeRemedies          []string         `json:"home_remedies"`
	Precautions           []string         `json:"precautions"`
	LifestyleTips         []string         `json:"lifestyle_tips"`
	WhenToSeeDoctor       string           `json:"when_to_see_doctor"`
	SymptomAdvice         []string         `json:"symptom_specific_advice,omitempty"`
	UrgencyLevel          Urgency          `json:"urgency_level"`
	UrgencyMessage        string           `json:"urgency_message"`
	ConfidenceScore       float64          `json:"confidence_score"`
	ConfidenceLevel       string           `json:"confidence_level"`
	LowConfidenceNote     string           `json:"low_confidence_disclaimer,omitempty"`
	ConfidenceNote        string           `json:"confidence_note,omitempty"`
	SeverityWarning       string           `json:"severity_warning,omitempty"`
	RedFlagWarning        string           `json:"red_flag_warning,omitempty"`
	RedFlagsDetected      []string         `json:"red_flags_detected,omitempty"`
	Disclaimer            string           `json:"disclaimer"`
	AILimitations         string           `json:"ai_limitations"`
	PersistenceWarning    string           `json:"persistence_warning,omitempty"`
	SelfMedicationWarning string           `json:"self_medication_warning,omitempty"`
	SafetyValidation      SafetyValidation `json:"safety_validation"`
}

// TriageResult is the stable output contract of the full analysis pipeline.
// SymptomAnalysis is nil when the caller supplied no symptoms.
type TriageResult struct {
	Severity        SeverityAssessment `json:"severity"`
	SymptomAnalysis *AlignmentResult   `json:"symptom_analysis"`
	SeveritySummary *SeveritySummary   `json:"symptom_severity_summary,omitempty"`
	Recommendations Recommendation     `json:"recommendations"`
}
