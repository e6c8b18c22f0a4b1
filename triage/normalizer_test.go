package triage

import (
	"testing"

	"github.com/dermalens/triage-api/knowledge"
	"github.com/dermalens/triage-api/triage/entities"
)

func newTestBase(t *testing.T) *knowledge.Base {
	t.Helper()
	kb, err := knowledge.New(knowledge.DefaultTuning())
	if err != nil {
		t.Fatalf("Expected knowledge base to assemble, got %v", err)
	}
	return kb
}

func TestNormalizeExactMatch(t *testing.T) {
	n := NewNormalizer(newTestBase(t))

	tests := []string{"itching", "redness", "dry_skin", "severe_itching", "butterfly_rash"}
	for _, id := range tests {
		got := n.Normalize(id)
		if got.Canonical != id {
			t.Errorf("Normalize(%q): expected canonical %q, got %q", id, id, got.Canonical)
		}
		if got.Source != entities.SourceExact {
			t.Errorf("Normalize(%q): expected exact source, got %q", id, got.Source)
		}
		if got.MatchScore != 1.0 {
			t.Errorf("Normalize(%q): expected match score 1.0, got %v", id, got.MatchScore)
		}
	}
}

func TestNormalizeAliasMatch(t *testing.T) {
	n := NewNormalizer(newTestBase(t))

	tests := []struct {
		input     string
		canonical string
	}{
		{"itchy", "itching"},
		{"zit", "pimples"},
		{"Flaky", "scaly_skin"},
		{"ringworm", "ring_shaped_rash"},
		{"open sore", "sore_that_wont_heal"},
	}

	for _, tt := range tests {
		got := n.Normalize(tt.input)
		if got.Canonical != tt.canonical {
			t.Errorf("Normalize(%q): expected %q, got %q", tt.input, tt.canonical, got.Canonical)
		}
		if got.Source != entities.SourceAlias {
			t.Errorf("Normalize(%q): expected alias source, got %q", tt.input, got.Source)
		}
	}
}

func TestNormalizeModifierExtraction(t *testing.T) {
	n := NewNormalizer(newTestBase(t))

	tests := []struct {
		input       string
		canonical   string
		intensity   entities.Intensity
		hasModifier bool
	}{
		{"very itchy skin", "itching", entities.IntensityHigh, true},
		{"extremely red", "redness", entities.IntensityHigh, true},
		{"moderately itchy", "itching", entities.IntensityModerate, true},
		{"slightly dry skin", "dry_skin", entities.IntensityLow, true},
		{"itching", "itching", entities.IntensityNormal, false},
	}

	for _, tt := range tests {
		got := n.Normalize(tt.input)
		if got.Canonical != tt.canonical {
			t.Errorf("Normalize(%q): expected %q, got %q", tt.input, tt.canonical, got.Canonical)
		}
		if got.Intensity != tt.intensity {
			t.Errorf("Normalize(%q): expected intensity %q, got %q", tt.input, tt.intensity, got.Intensity)
		}
		if got.HasModifier != tt.hasModifier {
			t.Errorf("Normalize(%q): expected hasModifier=%v, got %v", tt.input, tt.hasModifier, got.HasModifier)
		}
	}
}

func TestNormalizeAccentFolding(t *testing.T) {
	n := NewNormalizer(newTestBase(t))

	got := n.Normalize("rednèss")
	if got.Canonical != "redness" {
		t.Errorf("Expected accents to fold to redness, got %q", got.Canonical)
	}
	if got.Source != entities.SourceExact {
		t.Errorf("Expected exact source after folding, got %q", got.Source)
	}
}

func TestNormalizeDescriptorDropping(t *testing.T) {
	n := NewNormalizer(newTestBase(t))

	// "intense" is not a modifier word, so it survives into the cleaned
	// form and is dropped token-wise before the vocabulary lookup.
	got := n.Normalize("intense itching")
	if got.Canonical != "itching" {
		t.Errorf("Expected descriptor token dropped, got %q", got.Canonical)
	}
	if got.Source != entities.SourceExact {
		t.Errorf("Expected exact source, got %q", got.Source)
	}
}

func TestNormalizeFuzzyMatch(t *testing.T) {
	n := NewNormalizer(newTestBase(t))

	got := n.Normalize("itchin")
	if got.Canonical != "itching" {
		t.Errorf("Expected fuzzy match to itching, got %q", got.Canonical)
	}
	if got.Source != entities.SourceFuzzy {
		t.Errorf("Expected fuzzy source, got %q", got.Source)
	}
	if got.MatchScore < 0.6 || got.MatchScore >= 1.0 {
		t.Errorf("Expected fuzzy score in [0.6,1.0), got %v", got.MatchScore)
	}
}

func TestNormalizeKeywordExtraction(t *testing.T) {
	n := NewNormalizer(newTestBase(t))

	got := n.Normalize("my skin looks red and i want to scratch")
	if got.Source != entities.SourceKeyword {
		t.Fatalf("Expected keyword source, got %q", got.Source)
	}
	if got.Canonical != "itching" {
		t.Errorf("Expected first keyword itching, got %q", got.Canonical)
	}
	found := map[string]bool{}
	for _, kw := range got.Keywords {
		found[kw] = true
	}
	if !found["itching"] || !found["redness"] {
		t.Errorf("Expected keywords to include itching and redness, got %v", got.Keywords)
	}
	if got.MatchScore != 0.5 {
		t.Errorf("Expected keyword score 0.5, got %v", got.MatchScore)
	}
}

func TestNormalizeUnrecognized(t *testing.T) {
	n := NewNormalizer(newTestBase(t))

	got := n.Normalize("xqzwvyj")
	if got.Source != entities.SourceUnknown {
		t.Errorf("Expected unknown source, got %q", got.Source)
	}
	if got.MatchScore != 0 {
		t.Errorf("Expected zero match score, got %v", got.MatchScore)
	}
}

func TestNormalizeEmptyInput(t *testing.T) {
	n := NewNormalizer(newTestBase(t))

	got := n.Normalize("   ")
	if got.Canonical != "" {
		t.Errorf("Expected empty canonical for blank input, got %q", got.Canonical)
	}
	if got.Source != entities.SourceUnknown {
		t.Errorf("Expected unknown source, got %q", got.Source)
	}
}

func TestNormalizeIdempotence(t *testing.T) {
	n := NewNormalizer(newTestBase(t))

	// Re-normalizing any produced canonical id must return it unchanged.
	for _, raw := range []string{"itchy", "Flaky", "very itchy skin", "bleeding", "rednèss"} {
		first := n.Normalize(raw)
		if first.Canonical == "" {
			t.Fatalf("Normalize(%q): expected a canonical id", raw)
		}
		second := n.Normalize(first.Canonical)
		if second.Canonical != first.Canonical {
			t.Errorf("Normalize(%q) → %q not stable, re-normalized to %q",
				raw, first.Canonical, second.Canonical)
		}
	}
}

func TestNormalizeAllPreservesOrder(t *testing.T) {
	n := NewNormalizer(newTestBase(t))

	out := n.NormalizeAll([]string{"itchy", "red", "dry"})
	if len(out) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(out))
	}
	expected := []string{"itching", "redness", "dry_skin"}
	for i, want := range expected {
		if out[i].Canonical != want {
			t.Errorf("Position %d: expected %q, got %q", i, want, out[i].Canonical)
		}
	}
}

func TestSummarize(t *testing.T) {
	n := NewNormalizer(newTestBase(t))

	batch := n.NormalizeAll([]string{"very itchy", "slightly dry skin", "redness"})
	summary := n.Summarize(batch)

	if summary.Total != 3 {
		t.Errorf("Expected total 3, got %d", summary.Total)
	}
	if summary.Overall != entities.IntensityHigh {
		t.Errorf("Expected overall high, got %q", summary.Overall)
	}
	if len(summary.High) != 1 || summary.High[0] != "itching" {
		t.Errorf("Expected high bucket [itching], got %v", summary.High)
	}
	if len(summary.Low) != 1 || summary.Low[0] != "dry_skin" {
		t.Errorf("Expected low bucket [dry_skin], got %v", summary.Low)
	}
	if len(summary.Normal) != 1 {
		t.Errorf("Expected one normal symptom, got %v", summary.Normal)
	}
}

func TestSummarizeEmptyBatch(t *testing.T) {
	n := NewNormalizer(newTestBase(t))

	summary := n.Summarize(nil)
	if summary.Overall != entities.IntensityNormal {
		t.Errorf("Expected normal overall for empty batch, got %q", summary.Overall)
	}
	if summary.Total != 0 {
		t.Errorf("Expected total 0, got %d", summary.Total)
	}
}
