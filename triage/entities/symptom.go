package entities

// Intensity is the modifier level extracted from a symptom phrase.
type Intensity string

const (
	IntensityHigh     Intensity = "high"
	IntensityModerate Intensity = "moderate"
	IntensityLow      Intensity = "low"
	IntensityNormal   Intensity = "normal"
	IntensityNone     Intensity = "none"
)

// MatchSource records which normalization stage produced the canonical id.
type MatchSource string

const (
	SourceExact   MatchSource = "exact"
	SourceAlias   MatchSource = "alias"
	SourceFuzzy   MatchSource = "fuzzy"
	SourceKeyword MatchSource = "keyword"
	SourceUnknown MatchSource = "unknown"
)

// NormalizedSymptom is the result of normalizing one raw symptom phrase.
// Produced fresh per request, never persisted.
type NormalizedSymptom struct {
	Original    string      `json:"original"`
	Canonical   string      `json:"normalized"`
	Intensity   Intensity   `json:"severity"`
	HasModifier bool        `json:"has_severity_modifier"`
	MatchScore  float64     `json:"fuzzy_match_score"`
	Keywords    []string    `json:"extracted_keywords"`
	Source      MatchSource `json:"confidence"`
}

// SeveritySummary buckets a batch of symptoms by extracted intensity.
type SeveritySummary struct {
	Overall  Intensity `json:"overall_severity"`
	High     []string  `json:"high_severity_symptoms"`
	Moderate []string  `json:"moderate_severity_symptoms"`
	Low      []string  `json:"low_severity_symptoms"`
	Normal   []string  `json:"normal_symptoms"`
	Total    int       `json:"total_symptoms"`
}
