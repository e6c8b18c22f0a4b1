package triage

import (
	"fmt"
	"math"
	"strings"

	"github.com/dermalens/triage-api/knowledge"
	"github.com/dermalens/triage-api/triage/entities"
)

// urgencyRedFlags is the subset of warning keywords that escalate urgency on
// their own, independent of the disease label.
var urgencyRedFlags = []string{
	"bleeding", "infection", "rapid_spread", "severe_pain", "ulceration",
	"breathing_difficulty", "fever", "mouth_sores", "eye_involvement",
}

// Assessor combines five weighted factors into a 1-4 severity score and the
// resulting urgency tier. The score is clamped to the disease's escalation
// ceiling unless red-flag symptoms are present.
type Assessor struct {
	kb *knowledge.Base
}

func NewAssessor(kb *knowledge.Base) *Assessor {
	return &Assessor{kb: kb}
}

// Assess runs the full multi-factor assessment for one prediction.
// Symptoms are expected in canonical form.
func (a *Assessor) Assess(disease string, confidence float64, symptoms []string) entities.SeverityAssessment {
	confidence = clampConfidence(confidence)
	t := a.kb.Tuning()
	profile := a.kb.Resolve(disease)
	text := strings.ToLower(strings.Join(symptoms, " "))

	baselineScore, baselineExpl := a.baselineFactor(profile)
	confAdj, confExpl := a.confidenceFactor(confidence, profile.Baseline)
	intensityScore, intensityExpl := a.intensityFactor(text, len(symptoms) > 0)
	countScore, countExpl := a.countFactor(len(symptoms))
	indicatorScore, matchedIndicators, indicatorExpl := a.indicatorFactor(profile, text, len(symptoms) > 0)
	areaScore, _ := a.areaSpread(text, len(symptoms) > 0)
	duration, _ := a.duration(text, len(symptoms) > 0)

	factors := []entities.SeverityFactor{
		{Name: "baseline_severity", Score: baselineScore, MaxScore: 4, Weight: t.BaselineWeight,
			Weighted: baselineScore * t.BaselineWeight, Explanation: baselineExpl},
		{Name: "confidence_score", Score: confidence, MaxScore: 1, Weight: t.ConfidenceWeight,
			Weighted: confAdj, Explanation: confExpl},
		{Name: "symptom_intensity", Score: intensityScore, MaxScore: 2, Weight: t.IntensityWeight,
			Weighted: intensityScore * t.IntensityWeight, Explanation: intensityExpl},
		{Name: "symptom_count", Score: countScore, MaxScore: 1.5, Weight: t.CountWeight,
			Weighted: countScore * t.CountWeight, Explanation: countExpl},
		{Name: "severe_indicators", Score: indicatorScore, MaxScore: 4, Weight: t.IndicatorWeight,
			Weighted: indicatorScore * t.IndicatorWeight, Explanation: indicatorExpl},
	}

	weightedTotal := 0.0
	for _, f := range factors {
		weightedTotal += f.Weighted
	}
	weightedTotal += areaScore * t.AreaBonus

	finalScore := math.Max(1, math.Min(4, weightedTotal+1))
	level := a.scoreToSeverity(finalScore)

	hasRedFlags := false
	redFlags := []string{}
	if len(symptoms) > 0 {
		for _, flag := range a.kb.RedFlagSymptoms() {
			if strings.Contains(text, flag) {
				hasRedFlags = true
				redFlags = append(redFlags, flag)
			}
		}
	}

	capped := false
	if !hasRedFlags && level.Index() > profile.MaxEscalation.Index() {
		level = profile.MaxEscalation
		capped = true
	}

	urgency, warning := a.urgency(profile, level, text)

	explanation := profile.Description
	switch level {
	case entities.SeverityCritical:
		explanation += " Immediate medical attention is strongly recommended."
	case entities.SeveritySevere:
		explanation += " Please consult a healthcare provider soon."
	case entities.SeverityModerate:
		explanation += " Consider scheduling a medical consultation."
	default:
		explanation += " Monitor the condition and seek help if it worsens."
	}
	switch duration {
	case "chronic":
		explanation += " The chronic nature may require ongoing management."
	case "acute":
		explanation += " Recent onset - monitor for changes."
	}

	return entities.SeverityAssessment{
		Level:             level,
		Urgency:           urgency,
		Score:             math.Round(finalScore*100) / 100,
		Explanation:       explanation,
		Factors:           factors,
		Warning:           warning,
		HasRedFlags:       hasRedFlags,
		RedFlags:          redFlags,
		MatchedIndicators: matchedIndicators,
		Capped:            capped,
		Duration:          duration,
		AreaSpread:        areaScore,
	}
}

func (a *Assessor) scoreToSeverity(score float64) entities.Severity {
	t := a.kb.Tuning()
	switch {
	case score >= t.CriticalThreshold:
		return entities.SeverityCritical
	case score >= t.SevereThreshold:
		return entities.SeveritySevere
	case score >= t.ModerateThreshold:
		return entities.SeverityModerate
	default:
		return entities.SeverityMild
	}
}

func (a *Assessor) baselineFactor(profile entities.DiseaseProfile) (float64, string) {
	score := float64(profile.Baseline.Score())
	return score, fmt.Sprintf("Disease baseline: %s (%.0f/4)", profile.Baseline, score)
}

// confidenceFactor returns the additive adjustment, not a weighted score:
// very high confidence confirms a serious baseline, very low confidence adds
// the same bump for the uncertainty itself.
func (a *Assessor) confidenceFactor(confidence float64, baseline entities.Severity) (float64, string) {
	t := a.kb.Tuning()
	pct := confidence * 100
	switch {
	case confidence >= t.HighConfidence:
		if baseline.Score() >= 3 {
			return t.ConfidenceBump, fmt.Sprintf("High confidence (%.0f%%) confirms serious condition", pct)
		}
		return 0, fmt.Sprintf("High confidence (%.0f%%) in diagnosis", pct)
	case confidence >= 0.7:
		return 0, fmt.Sprintf("Good confidence (%.0f%%) in diagnosis", pct)
	case confidence >= t.LowConfidence:
		return 0, fmt.Sprintf("Moderate confidence (%.0f%%) - consider professional evaluation", pct)
	default:
		return t.ConfidenceBump, fmt.Sprintf("Low confidence (%.0f%%) - professional evaluation recommended", pct)
	}
}

func (a *Assessor) intensityFactor(text string, hasSymptoms bool) (float64, string) {
	if !hasSymptoms {
		return 0, "No symptoms provided"
	}
	words := a.kb.IntensityWords()
	count := func(tier entities.Intensity) int {
		n := 0
		for _, kw := range words[tier] {
			if strings.Contains(text, kw) {
				n++
			}
		}
		return n
	}
	high := count(entities.IntensityHigh)
	moderate := count(entities.IntensityModerate)
	low := count(entities.IntensityLow)

	switch {
	case high >= 2:
		return 2.0, fmt.Sprintf("Multiple high-intensity descriptors detected (%d)", high)
	case high >= 1:
		return 1.5, "High-intensity symptoms reported"
	case moderate >= 2:
		return 1.0, fmt.Sprintf("Moderate intensity symptoms (%d descriptors)", moderate)
	case moderate >= 1:
		return 0.5, "Moderate intensity symptoms"
	case low >= 1:
		return 0, "Mild intensity symptoms reported"
	default:
		return 0.5, "Normal symptom intensity"
	}
}

func (a *Assessor) countFactor(count int) (float64, string) {
	switch {
	case count == 0:
		return 0, "No symptoms reported"
	case count <= 2:
		return 0, fmt.Sprintf("Few symptoms (%d) - likely localized condition", count)
	case count <= 4:
		return 0.5, fmt.Sprintf("Several symptoms (%d) - moderate involvement", count)
	case count <= 6:
		return 1.0, fmt.Sprintf("Multiple symptoms (%d) - significant involvement", count)
	default:
		return 1.5, fmt.Sprintf("Many symptoms (%d) - extensive involvement", count)
	}
}

// indicatorFactor scores disease-specific severe indicators and red flags.
// Red flags dominate: their score starts above the strongest indicator tier.
func (a *Assessor) indicatorFactor(profile entities.DiseaseProfile, text string, hasSymptoms bool) (float64, []string, string) {
	if !hasSymptoms {
		return 0, []string{}, "No symptoms to evaluate"
	}

	var matchedIndicators []string
	for _, ind := range profile.SevereIf {
		if strings.Contains(text, strings.ToLower(ind)) {
			matchedIndicators = append(matchedIndicators, ind)
		}
	}
	var matchedFlags []string
	for _, flag := range a.kb.RedFlagSymptoms() {
		if strings.Contains(text, flag) {
			matchedFlags = append(matchedFlags, flag)
		}
	}

	seen := map[string]struct{}{}
	all := []string{}
	for _, m := range append(append([]string{}, matchedIndicators...), matchedFlags...) {
		if _, dup := seen[m]; !dup {
			seen[m] = struct{}{}
			all = append(all, m)
		}
	}

	switch {
	case len(matchedFlags) > 0:
		score := 2.5 + math.Min(float64(len(matchedFlags))*0.5, 1.5)
		return score, all, fmt.Sprintf("RED FLAG symptoms detected: %s", strings.Join(matchedFlags, ", "))
	case len(matchedIndicators) >= 3:
		return 2.0, all, fmt.Sprintf("Multiple severe indicators (%d)", len(matchedIndicators))
	case len(matchedIndicators) >= 2:
		return 1.5, all, "Several severe indicators detected"
	case len(matchedIndicators) >= 1:
		return 1.0, all, fmt.Sprintf("Severe indicator present: %s", matchedIndicators[0])
	default:
		return 0, all, "No severe indicators detected"
	}
}

func (a *Assessor) areaSpread(text string, hasSymptoms bool) (float64, string) {
	if !hasSymptoms {
		return 0, "No area information"
	}
	count := 0
	for _, kw := range a.kb.AreaWords() {
		if strings.Contains(text, kw) {
			count++
		}
	}
	switch {
	case count >= 2:
		return 1.0, "Widespread/extensive condition"
	case count >= 1:
		return 0.5, "Some spreading noted"
	default:
		return 0, "Localized condition"
	}
}

func (a *Assessor) duration(text string, hasSymptoms bool) (string, string) {
	if !hasSymptoms {
		return "unknown", "Duration unknown"
	}
	words := a.kb.DurationWords()
	for _, kw := range words["acute"] {
		if strings.Contains(text, kw) {
			return "acute", "Recent/sudden onset"
		}
	}
	for _, kw := range words["chronic"] {
		if strings.Contains(text, kw) {
			return "chronic", "Long-standing/chronic condition"
		}
	}
	return "unknown", "Duration not specified"
}

// urgency maps disease flags, red-flag symptoms and the severity level to an
// urgency tier. Disease flags are checked first: a cancer label escalates
// regardless of symptoms.
func (a *Assessor) urgency(profile entities.DiseaseProfile, level entities.Severity, text string) (entities.Urgency, string) {
	if a.kb.IsRedFlagDisease(profile.Name) {
		if level.AtLeast(entities.SeveritySevere) {
			return entities.UrgencyImmediate,
				fmt.Sprintf("%s detected with high confidence. Seek immediate medical evaluation.", profile.Name)
		}
		return entities.UrgencySeekAttention,
			fmt.Sprintf("%s suspected. Please consult a dermatologist promptly.", profile.Name)
	}

	if a.kb.IsYellowFlagDisease(profile.Name) && level.AtLeast(entities.SeverityModerate) {
		return entities.UrgencySeekAttention,
			fmt.Sprintf("%s may require medical treatment. Please see a doctor soon.", profile.Name)
	}

	for _, flag := range urgencyRedFlags {
		if !strings.Contains(text, flag) {
			continue
		}
		switch {
		case level.AtLeast(entities.SeveritySevere):
			return entities.UrgencyImmediate,
				fmt.Sprintf("Concerning symptom '%s' detected. Seek immediate medical attention.", flag)
		case level == entities.SeverityModerate:
			return entities.UrgencySeekAttention,
				fmt.Sprintf("Symptom '%s' detected. Please consult a doctor soon.", flag)
		default:
			return entities.UrgencyConsultDoctor,
				fmt.Sprintf("Symptom '%s' noted. Consider consulting a healthcare provider.", flag)
		}
	}

	switch level {
	case entities.SeverityCritical:
		return entities.UrgencyImmediate, "Critical condition detected. Seek immediate medical attention."
	case entities.SeveritySevere:
		return entities.UrgencySeekAttention, "Condition appears serious. Please see a doctor soon."
	case entities.SeverityModerate:
		return entities.UrgencyConsultDoctor, "Consider consulting a healthcare provider."
	default:
		return entities.UrgencyRoutine, ""
	}
}
