package triage

import (
	"fmt"
	"strings"

	"github.com/dermalens/triage-api/knowledge"
	"github.com/dermalens/triage-api/triage/entities"
)

// Validator scans a finished recommendation for prohibited content and
// verifies the required safety elements. Validation is fail-open: a
// non-compliant result is flagged, never suppressed.
type Validator struct {
	kb *knowledge.Base
}

func NewValidator(kb *knowledge.Base) *Validator {
	return &Validator{kb: kb}
}

// Validate runs the full compliance scan.
func (v *Validator) Validate(rec entities.Recommendation) entities.SafetyValidation {
	issues := []string{}
	warnings := []string{}
	text := collectText(rec)

	for _, med := range v.kb.MedicationNames() {
		if strings.Contains(text, strings.ToLower(med)) {
			issues = append(issues, fmt.Sprintf("Contains specific medication name: '%s'", med))
		}
	}
	for _, re := range v.kb.DosagePatterns() {
		if re.MatchString(text) {
			issues = append(issues, fmt.Sprintf("Contains dosage information matching: '%s'", re.String()))
		}
	}
	for _, stmt := range v.kb.DiagnosisStatements() {
		if strings.Contains(text, stmt) {
			issues = append(issues, fmt.Sprintf("Contains diagnosis statement: '%s'", stmt))
		}
	}
	for _, promise := range v.kb.TreatmentPromises() {
		if strings.Contains(text, promise) {
			issues = append(issues, fmt.Sprintf("Contains treatment promise: '%s'", promise))
		}
	}
	for _, proc := range v.kb.ProcedureTerms() {
		if strings.Contains(text, proc) {
			warnings = append(warnings, fmt.Sprintf("Mentions medical procedure: '%s'", proc))
		}
	}

	if rec.Disclaimer == "" {
		issues = append(issues, "Missing medical disclaimer")
	}
	if rec.WhenToSeeDoctor == "" {
		warnings = append(warnings, "Missing 'when to see doctor' guidance")
	}
	if rec.Severity.AtLeast(entities.SeveritySevere) {
		hasWarning := rec.SeverityWarning != "" ||
			rec.SelfMedicationWarning != "" ||
			strings.Contains(text, "self-medicate") ||
			strings.Contains(text, "professional")
		if !hasWarning {
			warnings = append(warnings, "Severe case missing self-medication warning")
		}
	}

	return entities.SafetyValidation{
		IsCompliant: len(issues) == 0,
		Issues:      issues,
		Warnings:    warnings,
	}
}

// collectText joins every user-visible string field, lowercased, for the
// substring and pattern scans.
func collectText(rec entities.Recommendation) string {
	var b strings.Builder
	add := func(s string) {
		if s != "" {
			b.WriteByte(' ')
			b.WriteString(strings.ToLower(s))
		}
	}
	addAll := func(list []string) {
		for _, s := range list {
			add(s)
		}
	}

	add(rec.GeneralAdvice)
	addAll(rec.ImmediateCare)
	addAll(rec.HomeRemedies)
	addAll(rec.Precautions)
	addAll(rec.LifestyleTips)
	add(rec.WhenToSeeDoctor)
	addAll(rec.SymptomAdvice)
	add(rec.UrgencyMessage)
	add(rec.LowConfidenceNote)
	add(rec.ConfidenceNote)
	add(rec.SeverityWarning)
	add(rec.RedFlagWarning)
	add(rec.Disclaimer)
	add(rec.AILimitations)
	add(rec.PersistenceWarning)
	add(rec.SelfMedicationWarning)
	return b.String()
}
