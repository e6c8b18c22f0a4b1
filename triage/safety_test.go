package triage

import (
	"strings"
	"testing"

	"github.com/dermalens/triage-api/knowledge"
	"github.com/dermalens/triage-api/triage/entities"
)

func compliantRec() entities.Recommendation {
	return entities.Recommendation{
		Disease:         "Eczema",
		Severity:        entities.SeverityMild,
		GeneralAdvice:   "Keep the skin moisturized and avoid known triggers.",
		WhenToSeeDoctor: "If symptoms persist or worsen",
		Disclaimer:      knowledge.MedicalDisclaimer,
		AILimitations:   knowledge.AILimitationsNote,
	}
}

func TestValidateCompliant(t *testing.T) {
	v := NewValidator(newTestBase(t))

	res := v.Validate(compliantRec())
	if !res.IsCompliant {
		t.Errorf("Expected compliant, issues: %v", res.Issues)
	}
	if len(res.Issues) != 0 {
		t.Errorf("Expected no issues, got %v", res.Issues)
	}
}

func TestValidateProhibitedContent(t *testing.T) {
	v := NewValidator(newTestBase(t))

	tests := []struct {
		name   string
		mutate func(*entities.Recommendation)
		wantIn string
	}{
		{
			name:   "medication name",
			mutate: func(r *entities.Recommendation) { r.GeneralAdvice = "Take ibuprofen for the discomfort." },
			wantIn: "medication name",
		},
		{
			name:   "dosage instruction",
			mutate: func(r *entities.Recommendation) { r.HomeRemedies = []string{"Apply 3 times daily"} },
			wantIn: "dosage information",
		},
		{
			name:   "diagnosis statement",
			mutate: func(r *entities.Recommendation) { r.GeneralAdvice = "You have eczema on your arms." },
			wantIn: "diagnosis statement",
		},
		{
			name:   "treatment promise",
			mutate: func(r *entities.Recommendation) { r.LifestyleTips = []string{"This routine will cure your condition"} },
			wantIn: "treatment promise",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := compliantRec()
			tt.mutate(&rec)
			res := v.Validate(rec)
			if res.IsCompliant {
				t.Fatal("Expected non-compliant")
			}
			found := false
			for _, issue := range res.Issues {
				if strings.Contains(issue, tt.wantIn) {
					found = true
				}
			}
			if !found {
				t.Errorf("Expected issue mentioning %q, got %v", tt.wantIn, res.Issues)
			}
		})
	}
}

func TestValidateProcedureMentionIsWarningOnly(t *testing.T) {
	v := NewValidator(newTestBase(t))

	rec := compliantRec()
	rec.GeneralAdvice = "A doctor may discuss a biopsy during evaluation."
	res := v.Validate(rec)

	if !res.IsCompliant {
		t.Errorf("Procedure mention should not fail compliance, issues: %v", res.Issues)
	}
	found := false
	for _, w := range res.Warnings {
		if strings.Contains(w, "biopsy") {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected a procedure warning, got %v", res.Warnings)
	}
}

func TestValidateMissingDisclaimer(t *testing.T) {
	v := NewValidator(newTestBase(t))

	rec := compliantRec()
	rec.Disclaimer = ""
	res := v.Validate(rec)

	if res.IsCompliant {
		t.Fatal("Expected non-compliant without disclaimer")
	}
	found := false
	for _, issue := range res.Issues {
		if issue == "Missing medical disclaimer" {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected missing disclaimer issue, got %v", res.Issues)
	}
}

func TestValidateMissingDoctorGuidance(t *testing.T) {
	v := NewValidator(newTestBase(t))

	rec := compliantRec()
	rec.WhenToSeeDoctor = ""
	res := v.Validate(rec)

	if !res.IsCompliant {
		t.Error("Missing guidance is a warning, not a compliance failure")
	}
	found := false
	for _, w := range res.Warnings {
		if strings.Contains(w, "when to see doctor") {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected guidance warning, got %v", res.Warnings)
	}
}

func TestValidateSevereWithoutWarnings(t *testing.T) {
	v := NewValidator(newTestBase(t))

	// Strip every field that would satisfy the severe-case check,
	// including the disclaimer texts that mention professionals.
	rec := entities.Recommendation{
		Disease:         "Skin Cancer",
		Severity:        entities.SeveritySevere,
		GeneralAdvice:   "Serious condition.",
		WhenToSeeDoctor: "Now",
	}
	res := v.Validate(rec)

	found := false
	for _, w := range res.Warnings {
		if strings.Contains(w, "self-medication") {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected severe-case warning, got %v", res.Warnings)
	}
}
