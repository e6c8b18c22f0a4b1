package validation

import (
	"strings"
	"testing"
)

func TestValidateInput(t *testing.T) {
	v := NewInputValidator()

	valid := []string{
		"itching",
		"dry_skin",
		"Infestations/Bites",
		"sore that won't heal",
		"démangeaisons",
		"spot 2cm wide",
	}
	for _, input := range valid {
		if err := v.ValidateInput(input); err != nil {
			t.Errorf("ValidateInput(%q): expected valid, got %v", input, err)
		}
	}

	invalid := []struct {
		input   string
		wantErr string
	}{
		{"", "cannot be empty"},
		{"   ", "cannot be empty"},
		{"ab", "too short"},
		{strings.Repeat("abc ", 25), "too long"},
		{"one two three four five six seven eight nine", "too complex"},
		{"<script>alert(1)</script>", "dangerous"},
		{"itching' or 1=1", "dangerous"},
		{"../../etc/passwd", "dangerous"},
		{"symptom; drop", "invalid characters"},
		{"itch@home", "invalid characters"},
		{strings.Repeat("a", 12), "repetition"},
	}
	for _, tt := range invalid {
		err := v.ValidateInput(tt.input)
		if err == nil {
			t.Errorf("ValidateInput(%q): expected error", tt.input)
			continue
		}
		if !strings.Contains(err.Error(), tt.wantErr) {
			t.Errorf("ValidateInput(%q): expected error mentioning %q, got %v", tt.input, tt.wantErr, err)
		}
	}
}

func TestValidateDiseaseName(t *testing.T) {
	v := NewInputValidator()

	name, err := v.ValidateDiseaseName("  Eczema  ")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if name != "Eczema" {
		t.Errorf("Expected trimmed name, got %q", name)
	}

	if _, err := v.ValidateDiseaseName("<img onerror=x>"); err == nil {
		t.Error("Expected error for dangerous name")
	} else if !strings.Contains(err.Error(), "invalid disease name") {
		t.Errorf("Expected wrapped error, got %v", err)
	}
}

func TestValidateConfidence(t *testing.T) {
	v := NewInputValidator()

	for _, c := range []float64{0, 0.5, 1} {
		if err := v.ValidateConfidence(c); err != nil {
			t.Errorf("ValidateConfidence(%v): expected valid, got %v", c, err)
		}
	}
	for _, c := range []float64{-0.1, 1.01, 42} {
		if err := v.ValidateConfidence(c); err == nil {
			t.Errorf("ValidateConfidence(%v): expected error", c)
		}
	}
}

func TestValidateSymptoms(t *testing.T) {
	v := NewInputValidator()

	cleaned, err := v.ValidateSymptoms([]string{" itching ", "", "  ", "redness"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(cleaned) != 2 || cleaned[0] != "itching" || cleaned[1] != "redness" {
		t.Errorf("Expected trimmed [itching redness], got %v", cleaned)
	}
}

func TestValidateSymptomsTooMany(t *testing.T) {
	v := NewInputValidator()

	symptoms := make([]string, MaxSymptoms+1)
	for i := range symptoms {
		symptoms[i] = "itching"
	}
	if _, err := v.ValidateSymptoms(symptoms); err == nil {
		t.Error("Expected error above the symptom cap")
	}
}

func TestValidateSymptomsReportsPosition(t *testing.T) {
	v := NewInputValidator()

	_, err := v.ValidateSymptoms([]string{"itching", "<script>bad</script>"})
	if err == nil {
		t.Fatal("Expected error for dangerous symptom")
	}
	if !strings.Contains(err.Error(), "position 1") {
		t.Errorf("Expected position in error, got %v", err)
	}
}

func TestValidateSymptomsEmptyListAllowed(t *testing.T) {
	v := NewInputValidator()

	cleaned, err := v.ValidateSymptoms(nil)
	if err != nil {
		t.Fatalf("Expected empty list to be legal, got %v", err)
	}
	if len(cleaned) != 0 {
		t.Errorf("Expected empty result, got %v", cleaned)
	}
}
