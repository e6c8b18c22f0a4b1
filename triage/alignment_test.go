package triage

import (
	"math"
	"strings"
	"testing"

	"github.com/dermalens/triage-api/triage/entities"
)

func TestMatchNoSymptoms(t *testing.T) {
	a := NewAligner(newTestBase(t))

	res := a.Match("Eczema", nil)
	if res.Alignment != entities.AlignmentNone {
		t.Errorf("Expected none alignment, got %q", res.Alignment)
	}
	if res.Message != "No symptoms provided for matching." {
		t.Errorf("Unexpected message: %q", res.Message)
	}
	if res.MatchPercentage != 0 {
		t.Errorf("Expected 0%%, got %d", res.MatchPercentage)
	}
}

func TestMatchBands(t *testing.T) {
	a := NewAligner(newTestBase(t))

	tests := []struct {
		name      string
		disease   string
		symptoms  []string
		alignment entities.Alignment
		pct       int
		message   string
	}{
		{
			name:      "all common symptoms is a strong match",
			disease:   "Eczema",
			symptoms:  []string{"itching", "redness", "dry_skin"},
			alignment: entities.AlignmentStrong,
			pct:       100,
			message:   "Strong match - your symptoms strongly align with Eczema prediction.",
		},
		{
			name:      "single consistent symptom is not penalized",
			disease:   "Eczema",
			symptoms:  []string{"itching"},
			alignment: entities.AlignmentStrong,
			pct:       100,
			message:   "Strong match - your symptoms strongly align with Eczema prediction.",
		},
		{
			name:      "half common coverage is a moderate match",
			disease:   "Eczema",
			symptoms:  []string{"itching", "fever"},
			alignment: entities.AlignmentModerate,
			pct:       50,
			message:   "Moderate match - some of your symptoms align with Eczema.",
		},
		{
			name:      "single optional hit among unrelated symptoms is weak",
			disease:   "Eczema",
			symptoms:  []string{"oozing", "fever", "joint_pain", "numbness"},
			alignment: entities.AlignmentWeak,
			pct:       2,
			message:   "Weak match - few symptoms match Eczema. Consider consulting a doctor for accurate diagnosis.",
		},
		{
			name:      "no overlap at all",
			disease:   "Eczema",
			symptoms:  []string{"fever"},
			alignment: entities.AlignmentNone,
			pct:       0,
			message:   "No symptom matches found for Eczema. Professional evaluation recommended.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := a.Match(tt.disease, tt.symptoms)
			if res.Alignment != tt.alignment {
				t.Errorf("Expected alignment %q, got %q", tt.alignment, res.Alignment)
			}
			if res.MatchPercentage != tt.pct {
				t.Errorf("Expected %d%%, got %d%%", tt.pct, res.MatchPercentage)
			}
			if res.Message != tt.message {
				t.Errorf("Expected message %q, got %q", tt.message, res.Message)
			}
		})
	}
}

func TestMatchContradictions(t *testing.T) {
	a := NewAligner(newTestBase(t))

	res := a.Match("Eczema", []string{"itching", "silvery_scales"})
	if res.Alignment != entities.AlignmentContradictory {
		t.Errorf("Expected contradictory alignment, got %q", res.Alignment)
	}
	if !res.HasContradictions {
		t.Error("Expected HasContradictions")
	}
	if len(res.ContradictorySymptoms) != 1 || res.ContradictorySymptoms[0] != "silvery_scales" {
		t.Errorf("Expected [silvery_scales], got %v", res.ContradictorySymptoms)
	}
	if !strings.Contains(res.Message, "don't typically match Eczema") {
		t.Errorf("Unexpected message: %q", res.Message)
	}
}

func TestMatchDetails(t *testing.T) {
	a := NewAligner(newTestBase(t))

	res := a.Match("Eczema", []string{"itching", "oozing", "bleeding"})
	d := res.Details
	if d.CommonMatched != 1 || d.OptionalMatched != 1 || d.SeverityMatched != 1 {
		t.Errorf("Expected 1/1/1 category matches, got %d/%d/%d",
			d.CommonMatched, d.OptionalMatched, d.SeverityMatched)
	}
	// common=3, optional=1, severity=2
	if d.WeightedScore != 6 {
		t.Errorf("Expected weighted score 6, got %d", d.WeightedScore)
	}
	// three reported symptoms claim the three highest-weight slots
	if d.MaxScore != 9 {
		t.Errorf("Expected max score 9, got %d", d.MaxScore)
	}
	if len(res.MatchedSymptoms) != 3 {
		t.Errorf("Expected 3 matched symptoms, got %v", res.MatchedSymptoms)
	}
}

func TestMatchDuplicateSymptomsCountOnce(t *testing.T) {
	a := NewAligner(newTestBase(t))

	single := a.Match("Eczema", []string{"itching"})
	doubled := a.Match("Eczema", []string{"itching", "itching", "itching"})
	if single.MatchPercentage != doubled.MatchPercentage {
		t.Errorf("Expected duplicates to be ignored: %d%% vs %d%%",
			single.MatchPercentage, doubled.MatchPercentage)
	}
}

func TestMatchUnknownDiseaseFallsBack(t *testing.T) {
	a := NewAligner(newTestBase(t))

	res := a.Match("Totally Made Up", []string{"rash"})
	if !strings.Contains(res.Message, "Unknown") {
		t.Errorf("Expected message to reference the fallback profile, got %q", res.Message)
	}
}

func TestAdjustConfidence(t *testing.T) {
	a := NewAligner(newTestBase(t))

	tests := []struct {
		name     string
		disease  string
		symptoms []string
		original float64
		adjusted float64
		reason   string
	}{
		{
			name:     "strong alignment boosts capped at rate",
			disease:  "Eczema",
			symptoms: []string{"itching", "redness", "dry_skin"},
			original: 0.8,
			adjusted: 0.86, // boost = min(0.1, 0.2*0.3)
			reason:   "Confidence increased due to strong symptom alignment",
		},
		{
			name:     "moderate alignment boosts slightly",
			disease:  "Eczema",
			symptoms: []string{"itching", "fever"},
			original: 0.8,
			adjusted: 0.83, // boost = min(0.05, 0.2*0.15)
			reason:   "Confidence slightly increased due to moderate symptom alignment",
		},
		{
			name:     "weak alignment decays",
			disease:  "Eczema",
			symptoms: []string{"oozing", "fever", "joint_pain", "numbness"},
			original: 0.5,
			adjusted: 0.45, // 0.5 * 0.9
			reason:   "Confidence slightly decreased due to weak symptom alignment",
		},
		{
			name:     "no match decays harder",
			disease:  "Eczema",
			symptoms: []string{"fever"},
			original: 0.5,
			adjusted: 0.4, // 0.5 * 0.8
			reason:   "Confidence decreased - no symptom matches found",
		},
		{
			name:     "contradiction penalty applies after band boost",
			disease:  "Eczema",
			symptoms: []string{"itching", "silvery_scales"},
			original: 0.8,
			adjusted: 0.581, // (0.8 + 0.03) * 0.7
			reason:   "Confidence significantly decreased due to contradictory symptoms",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := a.MatchWithConfidence(tt.disease, tt.symptoms, tt.original)
			adj := res.ConfidenceAdjustment
			if adj == nil {
				t.Fatal("Expected a confidence adjustment")
			}
			if adj.Original != tt.original {
				t.Errorf("Expected original %v preserved, got %v", tt.original, adj.Original)
			}
			if math.Abs(adj.Adjusted-tt.adjusted) > 1e-9 {
				t.Errorf("Expected adjusted %v, got %v", tt.adjusted, adj.Adjusted)
			}
			if adj.Reason != tt.reason {
				t.Errorf("Expected reason %q, got %q", tt.reason, adj.Reason)
			}
		})
	}
}

func TestAdjustConfidenceFloor(t *testing.T) {
	a := NewAligner(newTestBase(t))

	// Heavy penalties never push the advisory value below the floor.
	res := a.MatchWithConfidence("Eczema", []string{"silvery_scales"}, 0.12)
	if res.ConfidenceAdjustment.Adjusted < 0.1 {
		t.Errorf("Expected floor 0.1, got %v", res.ConfidenceAdjustment.Adjusted)
	}
}

func TestMatchWithConfidenceNoSymptoms(t *testing.T) {
	a := NewAligner(newTestBase(t))

	res := a.MatchWithConfidence("Eczema", nil, 0.9)
	if res.ConfidenceAdjustment != nil {
		t.Error("Expected no adjustment without symptoms")
	}
}

func TestBestMatches(t *testing.T) {
	a := NewAligner(newTestBase(t))

	matches := a.BestMatches([]string{"itching", "redness", "dry_skin"}, 3)
	if len(matches) == 0 {
		t.Fatal("Expected at least one match")
	}
	if len(matches) > 3 {
		t.Errorf("Expected at most 3 matches, got %d", len(matches))
	}
	for i := 1; i < len(matches); i++ {
		if matches[i].MatchPercentage > matches[i-1].MatchPercentage {
			t.Errorf("Expected descending order, got %d%% after %d%%",
				matches[i].MatchPercentage, matches[i-1].MatchPercentage)
		}
	}
	if matches[0].Disease != "Eczema" {
		t.Errorf("Expected Eczema as strongest candidate, got %q", matches[0].Disease)
	}
	for _, m := range matches {
		if m.MatchPercentage == 0 {
			t.Errorf("Zero-score disease %q should be excluded", m.Disease)
		}
	}
}

func TestBestMatchesDistinctiveSymptom(t *testing.T) {
	a := NewAligner(newTestBase(t))

	// "butterfly_rash" also satisfies plain "rash" profiles through the
	// containment rule, so assert on presence and score rather than rank.
	matches := a.BestMatches([]string{"butterfly_rash"}, 10)
	if len(matches) == 0 {
		t.Fatal("Expected a match for butterfly_rash")
	}
	for _, m := range matches {
		if m.Disease == "Lupus" {
			if m.MatchPercentage != 100 {
				t.Errorf("Expected Lupus at 100%%, got %d%%", m.MatchPercentage)
			}
			return
		}
	}
	t.Error("Expected Lupus among the candidates")
}

func TestBestMatchesNeverReturnsFallback(t *testing.T) {
	a := NewAligner(newTestBase(t))

	for _, m := range a.BestMatches([]string{"rash", "itching", "redness"}, 10) {
		if m.Disease == "Unknown" {
			t.Error("Fallback profile should not appear in ranked matches")
		}
	}
}
