package knowledge

import (
	"fmt"
	"math"
)

// Tuning holds every heuristic constant of the scoring engine. The values
// have no empirical derivation; they are tuning knobs carried as named,
// overridable configuration instead of hard-coded literals.
type Tuning struct {
	// Alignment scoring.
	CommonWeight   int     `json:"common_weight"`
	OptionalWeight int     `json:"optional_weight"`
	SeverityWeight int     `json:"severity_weight"`
	CommonBlend    float64 `json:"common_blend"`
	WeightedBlend  float64 `json:"weighted_blend"`

	// Alignment bands (match percentage cutoffs).
	StrongMatchCutoff   int `json:"strong_match_cutoff"`
	ModerateMatchCutoff int `json:"moderate_match_cutoff"`
	WeakMatchCutoff     int `json:"weak_match_cutoff"`

	// Confidence adjustment.
	StrongBoostCap      float64 `json:"strong_boost_cap"`
	StrongBoostRate     float64 `json:"strong_boost_rate"`
	ModerateBoostCap    float64 `json:"moderate_boost_cap"`
	ModerateBoostRate   float64 `json:"moderate_boost_rate"`
	WeakMatchFactor     float64 `json:"weak_match_factor"`
	NoMatchFactor       float64 `json:"no_match_factor"`
	ContradictionFactor float64 `json:"contradiction_factor"`
	ConfidenceFloor     float64 `json:"confidence_floor"`

	// Fuzzy matching.
	FuzzyThreshold float64 `json:"fuzzy_threshold"`

	// Severity factor weights. Must sum to 1.0.
	BaselineWeight   float64 `json:"baseline_weight"`
	ConfidenceWeight float64 `json:"confidence_weight"`
	IntensityWeight  float64 `json:"intensity_weight"`
	CountWeight      float64 `json:"count_weight"`
	IndicatorWeight  float64 `json:"indicator_weight"`

	// Severity scoring.
	AreaBonus         float64 `json:"area_bonus"`
	ConfidenceBump    float64 `json:"confidence_bump"`
	HighConfidence    float64 `json:"high_confidence"`
	LowConfidence     float64 `json:"low_confidence"`
	CriticalThreshold float64 `json:"critical_threshold"`
	SevereThreshold   float64 `json:"severe_threshold"`
	ModerateThreshold float64 `json:"moderate_threshold"`

	// Recommendation personalization.
	MaxSymptomAdvice     int     `json:"max_symptom_advice"`
	LowConfidenceCutoff  float64 `json:"low_confidence_cutoff"`
	ConfidenceNoteCutoff float64 `json:"confidence_note_cutoff"`
}

// DefaultTuning returns the engine's shipped constants.
func DefaultTuning() Tuning {
	return Tuning{
		CommonWeight:   3,
		OptionalWeight: 1,
		SeverityWeight: 2,
		CommonBlend:    0.7,
		WeightedBlend:  0.3,

		StrongMatchCutoff:   80,
		ModerateMatchCutoff: 50,
		WeakMatchCutoff:     30,

		StrongBoostCap:      0.1,
		StrongBoostRate:     0.3,
		ModerateBoostCap:    0.05,
		ModerateBoostRate:   0.15,
		WeakMatchFactor:     0.9,
		NoMatchFactor:       0.8,
		ContradictionFactor: 0.7,
		ConfidenceFloor:     0.1,

		FuzzyThreshold: 0.6,

		BaselineWeight:   0.25,
		ConfidenceWeight: 0.15,
		IntensityWeight:  0.20,
		CountWeight:      0.15,
		IndicatorWeight:  0.25,

		AreaBonus:         0.1,
		ConfidenceBump:    0.5,
		HighConfidence:    0.9,
		LowConfidence:     0.5,
		CriticalThreshold: 3.5,
		SevereThreshold:   2.5,
		ModerateThreshold: 1.5,

		MaxSymptomAdvice:     5,
		LowConfidenceCutoff:  0.6,
		ConfidenceNoteCutoff: 0.8,
	}
}

// Validate checks internal consistency of the tuning constants.
func (t Tuning) Validate() error {
	if t.CommonWeight <= 0 || t.OptionalWeight <= 0 || t.SeverityWeight <= 0 {
		return fmt.Errorf("category weights must be positive, got common=%d optional=%d severity=%d",
			t.CommonWeight, t.OptionalWeight, t.SeverityWeight)
	}
	if blend := t.CommonBlend + t.WeightedBlend; math.Abs(blend-1.0) > 1e-9 {
		return fmt.Errorf("alignment blend weights must sum to 1.0, got %.4f", blend)
	}
	factorSum := t.BaselineWeight + t.ConfidenceWeight + t.IntensityWeight + t.CountWeight + t.IndicatorWeight
	if math.Abs(factorSum-1.0) > 1e-9 {
		return fmt.Errorf("severity factor weights must sum to 1.0, got %.4f", factorSum)
	}
	if t.FuzzyThreshold <= 0 || t.FuzzyThreshold > 1 {
		return fmt.Errorf("fuzzy threshold must be in (0,1], got %.4f", t.FuzzyThreshold)
	}
	if t.StrongMatchCutoff <= t.ModerateMatchCutoff || t.ModerateMatchCutoff <= t.WeakMatchCutoff {
		return fmt.Errorf("match cutoffs must be strictly decreasing: strong=%d moderate=%d weak=%d",
			t.StrongMatchCutoff, t.ModerateMatchCutoff, t.WeakMatchCutoff)
	}
	if t.CriticalThreshold <= t.SevereThreshold || t.SevereThreshold <= t.ModerateThreshold {
		return fmt.Errorf("severity thresholds must be strictly decreasing: critical=%.2f severe=%.2f moderate=%.2f",
			t.CriticalThreshold, t.SevereThreshold, t.ModerateThreshold)
	}
	if t.ConfidenceFloor < 0 || t.ConfidenceFloor >= 1 {
		return fmt.Errorf("confidence floor must be in [0,1), got %.4f", t.ConfidenceFloor)
	}
	if t.MaxSymptomAdvice < 0 {
		return fmt.Errorf("max symptom advice must be non-negative, got %d", t.MaxSymptomAdvice)
	}
	return nil
}
