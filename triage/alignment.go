package triage

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/dermalens/triage-api/knowledge"
	"github.com/dermalens/triage-api/triage/entities"
)

// Aligner scores how well a set of canonical symptoms fits a disease
// profile and derives the advisory confidence adjustment from the result.
type Aligner struct {
	kb *knowledge.Base
}

func NewAligner(kb *knowledge.Base) *Aligner {
	return &Aligner{kb: kb}
}

// Match compares reported symptoms against the named disease's profile.
// Symptoms are expected in canonical form; the engine normalizes first.
func (a *Aligner) Match(disease string, symptoms []string) entities.AlignmentResult {
	if len(symptoms) == 0 {
		return entities.AlignmentResult{
			Alignment:             entities.AlignmentNone,
			MatchedSymptoms:       []string{},
			Message:               "No symptoms provided for matching.",
			ContradictorySymptoms: []string{},
		}
	}

	profile := a.kb.Resolve(disease)
	pct, matched, details := a.score(profile, symptoms)
	hasContra, contra := a.contradictions(profile, symptoms)

	res := entities.AlignmentResult{
		MatchPercentage:       pct,
		MatchedSymptoms:       matched,
		HasContradictions:     hasContra,
		ContradictorySymptoms: contra,
		Details:               details,
	}

	t := a.kb.Tuning()
	switch {
	case hasContra:
		res.Alignment = entities.AlignmentContradictory
		res.Message = fmt.Sprintf("Warning: Some symptoms (%s) don't typically match %s. Professional evaluation strongly recommended.",
			strings.Join(contra, ", "), profile.Name)
	case pct >= t.StrongMatchCutoff:
		res.Alignment = entities.AlignmentStrong
		res.Message = fmt.Sprintf("Strong match - your symptoms strongly align with %s prediction.", profile.Name)
	case pct >= t.ModerateMatchCutoff:
		res.Alignment = entities.AlignmentModerate
		res.Message = fmt.Sprintf("Moderate match - some of your symptoms align with %s.", profile.Name)
	case pct > 0:
		res.Alignment = entities.AlignmentWeak
		res.Message = fmt.Sprintf("Weak match - few symptoms match %s. Consider consulting a doctor for accurate diagnosis.", profile.Name)
	default:
		res.Alignment = entities.AlignmentNone
		res.Message = fmt.Sprintf("No symptom matches found for %s. Professional evaluation recommended.", profile.Name)
	}
	return res
}

// MatchWithConfidence runs Match and attaches the confidence adjustment
// derived from the alignment outcome.
func (a *Aligner) MatchWithConfidence(disease string, symptoms []string, confidence float64) entities.AlignmentResult {
	confidence = clampConfidence(confidence)
	res := a.Match(disease, symptoms)
	if len(symptoms) == 0 {
		return res
	}
	adjusted, reason := a.adjustConfidence(confidence, res.MatchPercentage, res.HasContradictions)
	res.ConfidenceAdjustment = &entities.ConfidenceAdjustment{
		Original: confidence,
		Adjusted: adjusted,
		Reason:   reason,
	}
	return res
}

// BestMatches scores every known disease against the reported symptoms and
// returns the top candidates, strongest first.
func (a *Aligner) BestMatches(symptoms []string, top int) []entities.DiseaseMatch {
	out := make([]entities.DiseaseMatch, 0, len(a.kb.DiseaseNames()))
	for _, p := range a.kb.Profiles() {
		pct, matched, details := a.score(p, symptoms)
		if pct == 0 {
			continue
		}
		out = append(out, entities.DiseaseMatch{
			Disease:         p.Name,
			MatchPercentage: pct,
			MatchedSymptoms: matched,
			CommonMatched:   details.CommonMatched,
			CommonTotal:     details.CommonTotal,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MatchPercentage > out[j].MatchPercentage
	})
	if top > 0 && len(out) > top {
		out = out[:top]
	}
	return out
}

// symptomMatches applies the containment rule used throughout the profile
// tables: equality or substring in either direction.
func symptomMatches(reported, profileSymptom string) bool {
	return reported == profileSymptom ||
		strings.Contains(profileSymptom, reported) ||
		strings.Contains(reported, profileSymptom)
}

// score computes the blended match percentage. Each reported symptom claims
// at most one profile symptom, preferring common over optional over severity
// indicators. Denominators scale with the number of distinct reported
// symptoms so a short, fully consistent report is not penalized for omitting
// the rest of the profile.
func (a *Aligner) score(profile entities.DiseaseProfile, symptoms []string) (int, []string, entities.MatchDetails) {
	t := a.kb.Tuning()

	distinct := map[string]struct{}{}
	for _, s := range symptoms {
		distinct[s] = struct{}{}
	}
	reported := len(distinct)

	commonMatched := map[string]struct{}{}
	optionalMatched := map[string]struct{}{}
	severityMatched := map[string]struct{}{}
	allMatched := map[string]struct{}{}

	for s := range distinct {
		claimed := false
		for _, ds := range profile.Common {
			if symptomMatches(s, ds) {
				commonMatched[ds] = struct{}{}
				allMatched[ds] = struct{}{}
				claimed = true
				break
			}
		}
		if claimed {
			continue
		}
		for _, ds := range profile.Optional {
			if symptomMatches(s, ds) {
				optionalMatched[ds] = struct{}{}
				allMatched[ds] = struct{}{}
				claimed = true
				break
			}
		}
		if claimed {
			continue
		}
		for _, ds := range profile.SeverityIndicators {
			if symptomMatches(s, ds) {
				severityMatched[ds] = struct{}{}
				allMatched[ds] = struct{}{}
				break
			}
		}
	}

	weighted := len(commonMatched)*t.CommonWeight +
		len(optionalMatched)*t.OptionalWeight +
		len(severityMatched)*t.SeverityWeight

	details := entities.MatchDetails{
		CommonMatched:   len(commonMatched),
		CommonTotal:     len(profile.Common),
		OptionalMatched: len(optionalMatched),
		OptionalTotal:   len(profile.Optional),
		SeverityMatched: len(severityMatched),
		SeverityTotal:   len(profile.SeverityIndicators),
		WeightedScore:   weighted,
		MaxScore:        maxWeighted(profile, reported, t),
	}

	pct := 0
	if details.MaxScore > 0 {
		commonDenom := details.CommonTotal
		if reported < commonDenom {
			commonDenom = reported
		}
		commonPct := 0.0
		if commonDenom > 0 {
			commonPct = float64(details.CommonMatched) / float64(commonDenom) * 100
		}
		weightedPct := float64(weighted) / float64(details.MaxScore) * 100
		pct = int(commonPct*t.CommonBlend + weightedPct*t.WeightedBlend)
		if pct > 100 {
			pct = 100
		}
	}

	matched := make([]string, 0, len(allMatched))
	for s := range allMatched {
		matched = append(matched, s)
	}
	sort.Strings(matched)

	return pct, matched, details
}

// maxWeighted is the best score the reported symptom count could possibly
// earn against the profile: the highest-weight slots first, capped at the
// number of distinct reported symptoms.
func maxWeighted(profile entities.DiseaseProfile, reported int, t knowledge.Tuning) int {
	weights := make([]int, 0, len(profile.Common)+len(profile.SeverityIndicators)+len(profile.Optional))
	for range profile.Common {
		weights = append(weights, t.CommonWeight)
	}
	for range profile.SeverityIndicators {
		weights = append(weights, t.SeverityWeight)
	}
	for range profile.Optional {
		weights = append(weights, t.OptionalWeight)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(weights)))
	if reported < len(weights) {
		weights = weights[:reported]
	}
	max := 0
	for _, w := range weights {
		max += w
	}
	return max
}

// contradictions finds reported symptoms listed as contradictory for the
// profile, using the same containment rule as matching.
func (a *Aligner) contradictions(profile entities.DiseaseProfile, symptoms []string) (bool, []string) {
	found := []string{}
	for _, s := range symptoms {
		for _, c := range profile.Contradictions {
			if symptomMatches(s, c) {
				found = append(found, s)
				break
			}
		}
	}
	return len(found) > 0, found
}

// adjustConfidence derives the advisory nudge from the alignment outcome.
// Boosts are capped, penalties are multiplicative and floored, and the
// contradiction penalty applies after any band adjustment.
func (a *Aligner) adjustConfidence(original float64, pct int, hasContradictions bool) (float64, string) {
	t := a.kb.Tuning()
	adjusted := original
	reason := ""

	switch {
	case pct >= t.StrongMatchCutoff:
		boost := math.Min(t.StrongBoostCap, (1-original)*t.StrongBoostRate)
		adjusted = math.Min(1.0, original+boost)
		reason = "Confidence increased due to strong symptom alignment"
	case pct >= t.ModerateMatchCutoff:
		boost := math.Min(t.ModerateBoostCap, (1-original)*t.ModerateBoostRate)
		adjusted = math.Min(1.0, original+boost)
		reason = "Confidence slightly increased due to moderate symptom alignment"
	case pct > 0 && pct < t.WeakMatchCutoff:
		adjusted = math.Max(t.ConfidenceFloor, original*t.WeakMatchFactor)
		reason = "Confidence slightly decreased due to weak symptom alignment"
	case pct == 0:
		adjusted = math.Max(t.ConfidenceFloor, original*t.NoMatchFactor)
		reason = "Confidence decreased - no symptom matches found"
	}

	if hasContradictions {
		adjusted = math.Max(t.ConfidenceFloor, adjusted*t.ContradictionFactor)
		reason = "Confidence significantly decreased due to contradictory symptoms"
	}

	return math.Round(adjusted*10000) / 10000, reason
}
