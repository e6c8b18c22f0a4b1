package entities

// Alignment is the banding of a match percentage for downstream messaging.
type Alignment string

const (
	AlignmentStrong        Alignment = "strong"
	AlignmentModerate      Alignment = "moderate"
	AlignmentWeak          Alignment = "weak"
	AlignmentNone          Alignment = "none"
	AlignmentContradictory Alignment = "contradictory"
)

// ConfidenceAdjustment is the advisory nudge applied to the upstream
// classifier confidence based on symptom alignment. It never mutates the
// original classifier result.
type ConfidenceAdjustment struct {
	Original float64 `json:"original"`
	Adjusted float64 `json:"adjusted"`
	Reason   string  `json:"reason"`
}

// MatchDetails breaks an alignment score down per symptom category.
type MatchDetails struct {
	CommonMatched   int `json:"common_matched"`
	CommonTotal     int `json:"common_total"`
	OptionalMatched int `json:"optional_matched"`
	OptionalTotal   int `json:"optional_total"`
	SeverityMatched int `json:"severity_matched"`
	SeverityTotal   int `json:"severity_total"`
	WeightedScore   int `json:"weighted_score"`
	MaxScore        int `json:"max_score"`
}

// AlignmentResult is the outcome of comparing reported symptoms against a
// disease profile.
type AlignmentResult struct {
	MatchPercentage       int                   `json:"match_percentage"`
	Alignment             Alignment             `json:"alignment"`
	MatchedSymptoms       []string              `json:"matched_symptoms"`
	Message               string                `json:"message"`
	HasContradictions     bool                  `json:"has_contradictions"`
	ContradictorySymptoms []string              `json:"contradictory_symptoms"`
	ConfidenceAdjustment  *ConfidenceAdjustment `json:"confidence_adjustment,omitempty"`
	Details               MatchDetails          `json:"details"`
}

// SeverityFactor is one of the five weighted factors of an assessment.
type SeverityFactor struct {
	Name        string  `json:"name"`
	Score       float64 `json:"score"`
	MaxScore    float64 `json:"max_score"`
	Weight      float64 `json:"weight"`
	Weighted    float64 `json:"weighted_score"`
	Explanation string  `json:"explanation"`
}

// SeverityAssessment is the terminal output of the severity assessor.
type SeverityAssessment struct {
	Level             Severity         `json:"level"`
	Urgency           Urgency          `json:"urgency"`
	Score             float64          `json:"score"`
	Explanation       string           `json:"explanation"`
	Factors           []SeverityFactor `json:"factor_breakdown"`
	Warning           string           `json:"warning,omitempty"`
	HasRedFlags       bool             `json:"has_red_flags"`
	RedFlags          []string         `json:"red_flags"`
	MatchedIndicators []string         `json:"matched_severe_indicators"`
	Capped            bool             `json:"capped"`
	Duration          string           `json:"duration"`
	AreaSpread        float64          `json:"area_spread"`
}
