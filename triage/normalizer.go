package triage

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/dermalens/triage-api/knowledge"
	"github.com/dermalens/triage-api/triage/entities"
)

// Normalizer converts free-form symptom phrases into canonical vocabulary
// identifiers through a staged pipeline: modifier extraction, cleaning,
// exact and alias lookup, fuzzy matching, then keyword extraction.
// Normalization is idempotent: feeding a canonical id back in returns it
// unchanged.
type Normalizer struct {
	kb *knowledge.Base

	// descriptor tokens dropped from a phrase before alias and fuzzy
	// lookup. Applied token-wise so canonical ids like severe_pain
	// survive the exact-match stage untouched.
	dropTokens map[string]struct{}

	fold transform.Transformer
}

func NewNormalizer(kb *knowledge.Base) *Normalizer {
	drop := map[string]struct{}{}
	for _, w := range []string{"very", "extremely", "slightly", "mild", "severe", "intense"} {
		drop[w] = struct{}{}
	}
	return &Normalizer{
		kb:         kb,
		dropTokens: drop,
		fold:       transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC),
	}
}

// Normalize resolves one raw symptom phrase.
func (n *Normalizer) Normalize(raw string) entities.NormalizedSymptom {
	out := entities.NormalizedSymptom{
		Original:  raw,
		Intensity: entities.IntensityNormal,
		Keywords:  []string{},
		Source:    entities.SourceUnknown,
	}

	text, intensity, hasModifier := n.extractModifier(raw)
	out.Intensity = intensity
	out.HasModifier = hasModifier

	cleaned := n.clean(text)
	out.Canonical = cleaned
	if cleaned == "" {
		return out
	}

	// Stage 1: exact vocabulary hit on the cleaned form.
	if n.isVocabulary(cleaned) {
		out.Source = entities.SourceExact
		out.MatchScore = 1.0
		return out
	}

	// Stage 2: alias table, on the cleaned form and on the form with
	// descriptor tokens dropped.
	for _, candidate := range []string{cleaned, n.dropDescriptors(cleaned)} {
		if canonical, ok := n.kb.CanonicalFor(candidate); ok {
			out.Canonical = canonical
			out.Source = entities.SourceAlias
			out.MatchScore = 1.0
			return out
		}
	}

	stripped := n.dropDescriptors(cleaned)
	if stripped != cleaned && n.isVocabulary(stripped) {
		out.Canonical = stripped
		out.Source = entities.SourceExact
		out.MatchScore = 1.0
		return out
	}
	if stripped != "" {
		cleaned = stripped
		out.Canonical = stripped
	}

	// Stage 3: fuzzy match over the vocabulary.
	if best, score := n.fuzzyMatch(cleaned); score >= n.kb.Tuning().FuzzyThreshold {
		out.Canonical = best
		out.Source = entities.SourceFuzzy
		out.MatchScore = score
		return out
	}

	// Stage 4: keyword extraction from the original phrase.
	if keywords := n.extractKeywords(text); len(keywords) > 0 {
		out.Keywords = keywords
		out.Canonical = keywords[0]
		out.Source = entities.SourceKeyword
		out.MatchScore = 0.5
		return out
	}

	return out
}

// NormalizeAll resolves a batch of phrases, preserving order.
func (n *Normalizer) NormalizeAll(raws []string) []entities.NormalizedSymptom {
	out := make([]entities.NormalizedSymptom, 0, len(raws))
	for _, raw := range raws {
		out = append(out, n.Normalize(raw))
	}
	return out
}

// Summarize buckets a normalized batch by extracted intensity.
func (n *Normalizer) Summarize(batch []entities.NormalizedSymptom) entities.SeveritySummary {
	s := entities.SeveritySummary{
		Overall:  entities.IntensityNormal,
		High:     []string{},
		Moderate: []string{},
		Low:      []string{},
		Normal:   []string{},
		Total:    len(batch),
	}
	for _, sym := range batch {
		switch sym.Intensity {
		case entities.IntensityHigh:
			s.High = append(s.High, sym.Canonical)
		case entities.IntensityModerate:
			s.Moderate = append(s.Moderate, sym.Canonical)
		case entities.IntensityLow:
			s.Low = append(s.Low, sym.Canonical)
		default:
			s.Normal = append(s.Normal, sym.Canonical)
		}
	}
	switch {
	case len(s.High) > 0:
		s.Overall = entities.IntensityHigh
	case len(s.Moderate) > 0:
		s.Overall = entities.IntensityModerate
	case len(s.Low) > 0:
		s.Overall = entities.IntensityLow
	}
	return s
}

// extractModifier pulls the first intensity modifier out of the phrase,
// checking high before moderate before low so "extremely" never resolves as
// a weaker tier.
func (n *Normalizer) extractModifier(raw string) (string, entities.Intensity, bool) {
	text := strings.ToLower(strings.TrimSpace(raw))
	words := n.kb.ModifierWords()
	for _, tier := range []entities.Intensity{entities.IntensityHigh, entities.IntensityModerate, entities.IntensityLow} {
		for _, w := range words[tier] {
			needle := strings.ReplaceAll(w, "_", " ")
			if strings.Contains(text, needle) {
				return strings.TrimSpace(strings.Replace(text, needle, " ", 1)), tier, true
			}
		}
	}
	return text, entities.IntensityNormal, false
}

// clean lower-cases, folds accents and converts a phrase into an
// underscore-joined identifier.
func (n *Normalizer) clean(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))
	if folded, _, err := transform.String(n.fold, text); err == nil {
		text = folded
	}
	var b strings.Builder
	for _, r := range text {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	parts := strings.FieldsFunc(b.String(), func(r rune) bool { return r == '_' })
	return strings.Join(parts, "_")
}

// dropDescriptors removes generic intensity descriptor tokens.
func (n *Normalizer) dropDescriptors(cleaned string) string {
	parts := strings.Split(cleaned, "_")
	kept := parts[:0]
	for _, p := range parts {
		if _, drop := n.dropTokens[p]; !drop {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "_")
}

func (n *Normalizer) isVocabulary(id string) bool {
	if _, ok := n.kb.CanonicalFor(id); ok {
		return false
	}
	return n.kb.IsKnownSymptom(id)
}

// fuzzyMatch returns the best-scoring vocabulary entry for the cleaned form.
func (n *Normalizer) fuzzyMatch(cleaned string) (string, float64) {
	var best string
	var bestScore float64
	for _, candidate := range n.kb.AllSymptoms() {
		if score := similarity(cleaned, candidate); score > bestScore {
			best, bestScore = candidate, score
		}
	}
	return best, bestScore
}

// similarity scores two identifiers in [0,1]. Containment wins outright with
// a length-ratio score; otherwise character overlap is blended with a common
// prefix bonus.
func similarity(a, b string) float64 {
	a = strings.ReplaceAll(a, "_", "")
	b = strings.ReplaceAll(b, "_", "")
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		shorter, longer := len(a), len(b)
		if shorter > longer {
			shorter, longer = longer, shorter
		}
		return float64(shorter) / float64(longer)
	}

	setA := map[rune]struct{}{}
	for _, r := range a {
		setA[r] = struct{}{}
	}
	setB := map[rune]struct{}{}
	for _, r := range b {
		setB[r] = struct{}{}
	}
	common := 0
	for r := range setA {
		if _, ok := setB[r]; ok {
			common++
		}
	}
	union := len(setA) + len(setB) - common
	jaccard := float64(common) / float64(union)

	prefix := 0
	ra, rb := []rune(a), []rune(b)
	for prefix < len(ra) && prefix < len(rb) && ra[prefix] == rb[prefix] {
		prefix++
	}
	longest := len(ra)
	if len(rb) > longest {
		longest = len(rb)
	}
	prefixRatio := float64(prefix) / float64(longest)

	return jaccard*0.6 + prefixRatio*0.4
}

// extractKeywords scans a free-text phrase for known symptom mentions using
// the pattern table first, then per-word vocabulary lookup.
func (n *Normalizer) extractKeywords(text string) []string {
	text = strings.ToLower(text)
	seen := map[string]struct{}{}
	var keywords []string
	add := func(symptom string) {
		if _, dup := seen[symptom]; !dup {
			seen[symptom] = struct{}{}
			keywords = append(keywords, symptom)
		}
	}

	for _, kp := range n.kb.KeywordPatterns() {
		if kp.Re.MatchString(text) {
			add(kp.Symptom)
		}
	}

	for _, word := range strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		if len(word) < 3 {
			continue
		}
		if canonical, ok := n.kb.CanonicalFor(word); ok {
			add(canonical)
		} else if n.kb.IsKnownSymptom(word) {
			add(word)
		}
	}
	return keywords
}
