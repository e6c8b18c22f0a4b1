package knowledge

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/dermalens/triage-api/triage/entities"
)

// KeywordPattern is one compiled free-text pattern mapped to a canonical
// symptom.
type KeywordPattern struct {
	Re      *regexp.Regexp
	Symptom string
}

// SymptomAdviceEntry is one keyword-to-advice personalization rule.
type SymptomAdviceEntry struct {
	Keyword string
	Advice  string
}

// SymptomCategory groups related vocabulary entries for display.
type SymptomCategory struct {
	Name     string   `json:"category"`
	Symptoms []string `json:"symptoms"`
}

// Base is the assembled, immutable knowledge store the scoring engine runs
// against: disease profiles, symptom vocabulary, advice corpus, safety rules
// and tuning constants. Construct with New; safe for concurrent readers.
type Base struct {
	tuning Tuning

	profiles    map[string]entities.DiseaseProfile
	order       []string
	unknown     entities.DiseaseProfile
	redDiseases map[string]struct{}
	ylwDiseases map[string]struct{}

	aliases     map[string]string
	vocabulary  map[string]struct{}
	allSymptoms []string
	patterns    []KeywordPattern

	templates map[string]map[entities.Severity]entities.AdviceTemplate

	dosageRes []*regexp.Regexp
}

// New assembles a Base from the built-in tables and the given tuning,
// validating every cross-table invariant on the way.
func New(t Tuning) (*Base, error) {
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("tuning: %w", err)
	}

	b := &Base{
		tuning:      t,
		profiles:    make(map[string]entities.DiseaseProfile, len(diseaseProfiles)),
		redDiseases: make(map[string]struct{}, len(redFlagDiseases)),
		ylwDiseases: make(map[string]struct{}, len(yellowFlagDiseases)),
		aliases:     symptomAliases,
		vocabulary:  make(map[string]struct{}),
		templates:   make(map[string]map[entities.Severity]entities.AdviceTemplate, len(adviceTemplates)),
	}

	for _, p := range diseaseProfiles {
		key := strings.ToLower(p.Name)
		if _, dup := b.profiles[key]; dup {
			return nil, fmt.Errorf("duplicate disease profile %q", p.Name)
		}
		if !p.Baseline.IsValid() || !p.MaxEscalation.IsValid() {
			return nil, fmt.Errorf("disease %q has invalid severity bounds", p.Name)
		}
		if p.Baseline.Index() > p.MaxEscalation.Index() {
			return nil, fmt.Errorf("disease %q baseline %s exceeds escalation ceiling %s",
				p.Name, p.Baseline, p.MaxEscalation)
		}
		p.Known = p.Name != UnknownDisease
		b.profiles[key] = p
		if p.Name == UnknownDisease {
			b.unknown = p
		} else {
			b.order = append(b.order, p.Name)
		}
		for _, set := range [][]string{p.Common, p.Optional, p.SeverityIndicators, p.SevereIf, p.Contradictions} {
			for _, s := range set {
				b.vocabulary[s] = struct{}{}
			}
		}
	}
	if b.unknown.Name == "" {
		return nil, fmt.Errorf("missing %q fallback profile", UnknownDisease)
	}

	for _, canonical := range symptomAliases {
		b.vocabulary[canonical] = struct{}{}
	}
	b.allSymptoms = make([]string, 0, len(b.vocabulary))
	for s := range b.vocabulary {
		b.allSymptoms = append(b.allSymptoms, s)
	}
	sort.Strings(b.allSymptoms)

	for _, d := range redFlagDiseases {
		b.redDiseases[strings.ToLower(d)] = struct{}{}
	}
	for _, d := range yellowFlagDiseases {
		b.ylwDiseases[strings.ToLower(d)] = struct{}{}
	}

	b.patterns = make([]KeywordPattern, 0, len(keywordPatternTable))
	for _, kp := range keywordPatternTable {
		re, err := regexp.Compile(`(?i)` + kp.Pattern)
		if err != nil {
			return nil, fmt.Errorf("keyword pattern %q: %w", kp.Pattern, err)
		}
		b.patterns = append(b.patterns, KeywordPattern{Re: re, Symptom: kp.Symptom})
	}

	// Dosage patterns are matched against lowercased text, so no (?i).
	b.dosageRes = make([]*regexp.Regexp, 0, len(dosagePatterns))
	for _, dp := range dosagePatterns {
		re, err := regexp.Compile(dp)
		if err != nil {
			return nil, fmt.Errorf("dosage pattern %q: %w", dp, err)
		}
		b.dosageRes = append(b.dosageRes, re)
	}

	for name, tiers := range adviceTemplates {
		b.templates[strings.ToLower(name)] = tiers
	}

	return b, nil
}

// Tuning returns the constants the Base was assembled with.
func (b *Base) Tuning() Tuning { return b.tuning }

// Resolve looks up a disease profile by name, case-insensitively. Unknown
// labels resolve to the generic fallback with Known=false.
func (b *Base) Resolve(name string) entities.DiseaseProfile {
	if p, ok := b.profiles[strings.ToLower(strings.TrimSpace(name))]; ok {
		return p
	}
	p := b.unknown
	return p
}

// Profiles returns every known disease profile in table order, excluding the
// generic fallback.
func (b *Base) Profiles() []entities.DiseaseProfile {
	out := make([]entities.DiseaseProfile, 0, len(b.order))
	for _, name := range b.order {
		out = append(out, b.profiles[strings.ToLower(name)])
	}
	return out
}

// DiseaseNames returns the known disease labels in table order.
func (b *Base) DiseaseNames() []string {
	out := make([]string, len(b.order))
	copy(out, b.order)
	return out
}

// CanonicalFor resolves a cleaned symptom through the alias table.
func (b *Base) CanonicalFor(symptom string) (string, bool) {
	c, ok := b.aliases[symptom]
	return c, ok
}

// IsKnownSymptom reports whether the cleaned form is in the vocabulary,
// either directly or as an alias key.
func (b *Base) IsKnownSymptom(symptom string) bool {
	if _, ok := b.vocabulary[symptom]; ok {
		return true
	}
	_, ok := b.aliases[symptom]
	return ok
}

// AllSymptoms returns the canonical vocabulary, sorted.
func (b *Base) AllSymptoms() []string {
	out := make([]string, len(b.allSymptoms))
	copy(out, b.allSymptoms)
	return out
}

// SymptomCategories returns the display grouping of the vocabulary.
func (b *Base) SymptomCategories() []SymptomCategory {
	out := make([]SymptomCategory, 0, len(symptomCategories))
	for _, c := range symptomCategories {
		out = append(out, SymptomCategory{Name: c.Name, Symptoms: c.Symptoms})
	}
	return out
}

// KeywordPatterns returns the ordered free-text extraction patterns.
func (b *Base) KeywordPatterns() []KeywordPattern { return b.patterns }

// ModifierWords returns the intensity modifiers stripped during
// normalization, keyed by the intensity they imply.
func (b *Base) ModifierWords() map[entities.Intensity][]string { return modifierWords }

// IntensityWords returns the descriptors counted by the severity assessor.
func (b *Base) IntensityWords() map[entities.Intensity][]string { return intensityWords }

// AreaWords returns the spread indicators.
func (b *Base) AreaWords() []string { return areaWords }

// DurationWords returns the chronicity indicators keyed by duration class.
func (b *Base) DurationWords() map[string][]string { return durationWords }

// RedFlagSymptoms returns the universal warning keywords.
func (b *Base) RedFlagSymptoms() []string { return redFlagSymptoms }

// IsRedFlagDisease reports whether the label alone warrants urgent care.
func (b *Base) IsRedFlagDisease(name string) bool {
	_, ok := b.redDiseases[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// IsYellowFlagDisease reports whether the label warrants elevated attention.
func (b *Base) IsYellowFlagDisease(name string) bool {
	_, ok := b.ylwDiseases[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// Templates returns the severity-tiered advice corpus for a disease,
// case-insensitively. ok is false when the disease has no corpus entry.
func (b *Base) Templates(disease string) (map[entities.Severity]entities.AdviceTemplate, bool) {
	tiers, ok := b.templates[strings.ToLower(strings.TrimSpace(disease))]
	return tiers, ok
}

// DefaultTemplate returns the generic fallback advice template.
func (b *Base) DefaultTemplate() entities.AdviceTemplate { return defaultTemplate }

// SymptomAdviceEntries returns the ordered personalization rules.
func (b *Base) SymptomAdviceEntries() []SymptomAdviceEntry {
	out := make([]SymptomAdviceEntry, 0, len(symptomAdviceTable))
	for _, e := range symptomAdviceTable {
		out = append(out, SymptomAdviceEntry{Keyword: e.Keyword, Advice: e.Advice})
	}
	return out
}

// UrgencyMessage returns the display message for an urgency tier.
func (b *Base) UrgencyMessage(u entities.Urgency) string {
	if msg, ok := urgencyMessages[u]; ok {
		return msg
	}
	return urgencyMessages[entities.UrgencyRoutine]
}

// Content-rule accessors used by the safety validator.

func (b *Base) MedicationNames() []string     { return prohibitedMedications }
func (b *Base) DosagePatterns() []*regexp.Regexp { return b.dosageRes }
func (b *Base) DiagnosisStatements() []string { return diagnosisStatements }
func (b *Base) TreatmentPromises() []string   { return treatmentPromises }
func (b *Base) ProcedureTerms() []string      { return procedureTerms }

// Risk returns the inherent risk classification of a disease label,
// independent of any reported symptoms.
func (b *Base) Risk(name string) entities.RiskProfile {
	p := b.Resolve(name)
	rp := entities.RiskProfile{
		Disease:        p.Name,
		Baseline:       p.Baseline,
		MaxEscalation:  p.MaxEscalation,
		SevereIf:       p.SevereIf,
		IndicatorCount: len(p.SevereIf),
	}
	switch {
	case b.IsRedFlagDisease(p.Name):
		rp.RiskCategory = "high"
		rp.RiskMessage = "This condition carries significant inherent risk and warrants prompt medical evaluation."
	case b.IsYellowFlagDisease(p.Name):
		rp.RiskCategory = "elevated"
		rp.RiskMessage = "This condition should be evaluated by a healthcare provider."
	case p.MaxEscalation.AtLeast(entities.SeveritySevere):
		rp.RiskCategory = "monitor"
		rp.RiskMessage = "This condition can worsen; monitor it and seek care if severity indicators appear."
	default:
		rp.RiskCategory = "standard"
		rp.RiskMessage = "This condition is typically manageable with routine care."
	}
	return rp
}
