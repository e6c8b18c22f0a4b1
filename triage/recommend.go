package triage

import (
	"fmt"
	"strings"

	"github.com/dermalens/triage-api/knowledge"
	"github.com/dermalens/triage-api/triage/entities"
)

// recommendRedFlags are the symptom keywords that escalate urgency or add a
// warning during recommendation synthesis.
var (
	recommendUrgencyFlags = []string{"bleeding", "infection", "rapid_growth", "severe_pain", "fever"}
	recommendWarningFlags = []string{"bleeding", "infection", "rapid_growth", "severe_pain", "fever", "spreading"}
)

// Synthesizer builds the personalized advice set: base template lookup,
// symptom-specific additions, urgency and confidence adjustments, warnings,
// then the fixed safety elements. Every result passes through the safety
// validator before it is returned.
type Synthesizer struct {
	kb        *knowledge.Base
	validator *Validator
}

func NewSynthesizer(kb *knowledge.Base) *Synthesizer {
	return &Synthesizer{kb: kb, validator: NewValidator(kb)}
}

// Generate produces the safety-validated recommendation for one assessment.
// Symptoms are expected in canonical form.
func (s *Synthesizer) Generate(disease string, severity entities.Severity, symptoms []string, confidence float64) entities.Recommendation {
	confidence = clampConfidence(confidence)
	t := s.kb.Tuning()
	text := strings.ToLower(strings.Join(symptoms, " "))

	base := s.baseTemplate(disease, severity)
	rec := entities.Recommendation{
		Disease:         disease,
		Severity:        severity,
		GeneralAdvice:   base.GeneralAdvice,
		ImmediateCare:   append([]string{}, base.ImmediateCare...),
		HomeRemedies:    append([]string{}, base.HomeRemedies...),
		Precautions:     append([]string{}, base.Precautions...),
		LifestyleTips:   append([]string{}, base.LifestyleTips...),
		WhenToSeeDoctor: base.WhenToSeeDoctor,
		ConfidenceScore: confidence,
	}

	// Symptom-specific personalization. The two most relevant entries also
	// surface as immediate-care pointers.
	advice := s.symptomAdvice(text, len(symptoms) > 0)
	if len(advice) > 0 {
		rec.SymptomAdvice = advice
		for i, a := range advice {
			if i >= 2 {
				break
			}
			topic := strings.SplitN(a, ":", 2)[0]
			rec.ImmediateCare = append(rec.ImmediateCare, topic+" care recommended")
		}
	}

	rec.UrgencyLevel = s.determineUrgency(disease, severity, text, len(symptoms), confidence)
	rec.UrgencyMessage = s.kb.UrgencyMessage(rec.UrgencyLevel)
	switch rec.UrgencyLevel {
	case entities.UrgencyImmediate:
		rec.WhenToSeeDoctor = "IMMEDIATELY - Do not delay seeking medical care."
	case entities.UrgencySeekAttention:
		rec.WhenToSeeDoctor = "As soon as possible - within 24-48 hours."
	}

	switch {
	case confidence >= 0.8:
		rec.ConfidenceLevel = "high"
	case confidence >= t.LowConfidenceCutoff:
		rec.ConfidenceLevel = "moderate"
	default:
		rec.ConfidenceLevel = "low"
	}
	if confidence < t.LowConfidenceCutoff {
		rec.LowConfidenceNote = "Note: The AI confidence for this prediction is low. " +
			"Professional evaluation is especially important to confirm the diagnosis."
		rec.GeneralAdvice += " Note: AI confidence is low - professional evaluation is especially important."
	} else if confidence < t.ConfidenceNoteCutoff {
		rec.ConfidenceNote = "The AI has moderate confidence in this prediction. " +
			"Consider professional confirmation if symptoms persist."
	}

	if severity.AtLeast(entities.SeveritySevere) {
		rec.SeverityWarning = fmt.Sprintf("⚠️ WARNING: This condition appears %s. "+
			"Please seek professional medical care promptly.", severity)
	}

	var flagged []string
	for _, flag := range recommendWarningFlags {
		if strings.Contains(text, flag) {
			flagged = append(flagged, flag)
		}
	}
	if len(flagged) > 0 {
		rec.RedFlagWarning = fmt.Sprintf("⚠️ Concerning symptoms detected: %s. "+
			"Please consult a healthcare provider.", strings.Join(flagged, ", "))
		rec.RedFlagsDetected = flagged
	}

	s.addSafetyElements(&rec)
	rec.SafetyValidation = s.validator.Validate(rec)
	return rec
}

// baseTemplate resolves the advice tier: exact disease and severity first,
// then the disease's mild tier, then the generic fallback.
func (s *Synthesizer) baseTemplate(disease string, severity entities.Severity) entities.AdviceTemplate {
	tiers, ok := s.kb.Templates(disease)
	if !ok {
		return s.kb.DefaultTemplate()
	}
	if tpl, ok := tiers[severity]; ok {
		return tpl
	}
	if tpl, ok := tiers[entities.SeverityMild]; ok {
		return tpl
	}
	return s.kb.DefaultTemplate()
}

func (s *Synthesizer) symptomAdvice(text string, hasSymptoms bool) []string {
	if !hasSymptoms {
		return nil
	}
	max := s.kb.Tuning().MaxSymptomAdvice
	var out []string
	for _, entry := range s.kb.SymptomAdviceEntries() {
		if len(out) >= max {
			break
		}
		if strings.Contains(text, entry.Keyword) {
			out = append(out, entry.Advice)
		}
	}
	return out
}

// determineUrgency ranks the escalation triggers: a high-risk disease label
// first, then severity, then red-flag symptoms, then low confidence with a
// substantial symptom list.
func (s *Synthesizer) determineUrgency(disease string, severity entities.Severity, text string, symptomCount int, confidence float64) entities.Urgency {
	if s.kb.IsRedFlagDisease(disease) {
		return entities.UrgencyImmediate
	}
	switch severity {
	case entities.SeverityCritical:
		return entities.UrgencyImmediate
	case entities.SeveritySevere:
		return entities.UrgencySeekAttention
	case entities.SeverityModerate:
		return entities.UrgencyConsultDoctor
	}
	for _, flag := range recommendUrgencyFlags {
		if strings.Contains(text, flag) {
			return entities.UrgencySeekAttention
		}
	}
	if confidence < s.kb.Tuning().LowConfidence && symptomCount >= 3 {
		return entities.UrgencyConsultDoctor
	}
	return entities.UrgencyRoutine
}

// addSafetyElements guarantees the always-present texts: the disclaimer and
// AI-limitations note on every result, the persistence warning for
// non-severe cases and the self-medication warning for severe ones.
func (s *Synthesizer) addSafetyElements(rec *entities.Recommendation) {
	if rec.Disclaimer == "" {
		rec.Disclaimer = knowledge.MedicalDisclaimer
	}
	if rec.AILimitations == "" {
		rec.AILimitations = knowledge.AILimitationsNote
	}
	if rec.Severity.AtLeast(entities.SeveritySevere) {
		if rec.SelfMedicationWarning == "" {
			rec.SelfMedicationWarning = knowledge.SelfMedicationWarning
		}
	} else if rec.PersistenceWarning == "" {
		rec.PersistenceWarning = knowledge.PersistenceWarning
	}
}
