package entities

// Severity is the clinical-urgency classification of a condition.
// Levels are ordered: mild < moderate < severe < critical.
type Severity string

const (
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
	SeverityCritical Severity = "critical"
)

var severityOrder = []Severity{SeverityMild, SeverityModerate, SeveritySevere, SeverityCritical}

// Index returns the position of the level in the severity ordering,
// starting at 0 for mild. Unknown levels map to 0.
func (s Severity) Index() int {
	for i, level := range severityOrder {
		if level == s {
			return i
		}
	}
	return 0
}

// Score returns the numeric 1-4 score for the level.
func (s Severity) Score() int {
	return s.Index() + 1
}

// IsValid reports whether s is one of the four known levels.
func (s Severity) IsValid() bool {
	for _, level := range severityOrder {
		if level == s {
			return true
		}
	}
	return false
}

// AtLeast reports whether s is equal to or above other in the ordering.
func (s Severity) AtLeast(other Severity) bool {
	return s.Index() >= other.Index()
}

// SeverityFromScore converts a numeric 1-4 score back to a discrete level.
func SeverityFromScore(score float64) Severity {
	switch {
	case score >= 3.5:
		return SeverityCritical
	case score >= 2.5:
		return SeveritySevere
	case score >= 1.5:
		return SeverityModerate
	default:
		return SeverityMild
	}
}

// Urgency describes how quickly medical care should be sought.
type Urgency string

const (
	UrgencyRoutine       Urgency = "routine"
	UrgencyConsultDoctor Urgency = "consult_doctor"
	UrgencySeekAttention Urgency = "seek_attention"
	UrgencyImmediate     Urgency = "immediate"
)

// UrgencyFromSeverity maps a severity level to its default urgency tier.
func UrgencyFromSeverity(s Severity) Urgency {
	switch s {
	case SeverityCritical:
		return UrgencyImmediate
	case SeveritySevere:
		return UrgencySeekAttention
	case SeverityModerate:
		return UrgencyConsultDoctor
	default:
		return UrgencyRoutine
	}
}
