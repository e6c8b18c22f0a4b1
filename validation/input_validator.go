// Package validation provides request validation for the triage API.
package validation

import (
	"fmt"
	"strings"

	"github.com/dermalens/triage-api/interfaces"
)

// Pre-compiled pattern data, initialized once and reused for all requests.
var (
	// Dangerous patterns as strings (faster than regex for simple substring matching)
	dangerousPatterns = []string{
		"<script", "</script>", "javascript:", "vbscript:", "onload=", "onerror=",
		"onclick=", "onmouseover=", "onfocus=", "onblur=", "onchange=", "onsubmit=",
		"eval(", "expression(", "url(", "import ", "@import", "binding(", "behavior(",
		// SQL injection patterns
		"' or ", "\" or ", "union select", "drop table", "delete from", "insert into",
		"update set", "--", "/*", "*/", "xp_", "sp_", "exec(", "execute(",
		// Command injection patterns
		"`", "$(", "${",
		// Path traversal patterns
		"../", "..\\", "%2e%2e", "file://",
		// NoSQL injection patterns
		"{$ne:", "{$gt:", "{$where:", "{$or:", "{$regex:", "{$expr:",
	}
)

// MaxSymptoms bounds the symptom list per request.
const MaxSymptoms = 20

// InputValidatorImpl implements the interfaces.InputValidator interface
type InputValidatorImpl struct{}

// NewInputValidator creates a new input validator
func NewInputValidator() interfaces.InputValidator {
	return &InputValidatorImpl{}
}

// ValidateInput validates a free-form user input string: symptom phrases and
// disease labels. Underscores and slashes are part of the domain vocabulary
// (dry_skin, Infestations/Bites), so they pass.
func (v *InputValidatorImpl) ValidateInput(input string) error {
	if strings.TrimSpace(input) == "" {
		return fmt.Errorf("input cannot be empty")
	}

	if len(input) < 3 {
		return fmt.Errorf("input too short: minimum 3 characters")
	}

	if len(input) > 80 {
		return fmt.Errorf("input too long: maximum 80 characters")
	}

	// Word count validation to prevent abuse with many short words
	words := strings.Fields(input)
	if len(words) > 8 {
		return fmt.Errorf("input too complex: maximum 8 words allowed")
	}

	// Check for potentially dangerous patterns using string matching
	lowerInput := strings.ToLower(input)
	for _, pattern := range dangerousPatterns {
		if strings.Contains(lowerInput, pattern) {
			return fmt.Errorf("input contains potentially dangerous content")
		}
	}

	if !isAllowedText(input) {
		return fmt.Errorf("input contains invalid characters. Only letters, numbers, spaces, underscores, hyphens, apostrophes, periods, slashes, and accented characters are allowed")
	}

	// Additional checks for repeated characters (potential DoS)
	if hasExcessiveRepetition(input) {
		return fmt.Errorf("input contains excessive character repetition")
	}

	return nil
}

// ValidateDiseaseName validates a disease label and returns its trimmed form.
// Resolution against the knowledge base happens later; unrecognized labels
// are legal and fall back to the generic profile.
func (v *InputValidatorImpl) ValidateDiseaseName(input string) (string, error) {
	trimmed := strings.TrimSpace(input)
	if err := v.ValidateInput(trimmed); err != nil {
		return "", fmt.Errorf("invalid disease name: %w", err)
	}
	return trimmed, nil
}

// ValidateConfidence checks a classifier confidence value
func (v *InputValidatorImpl) ValidateConfidence(confidence float64) error {
	if confidence < 0 || confidence > 1 {
		return fmt.Errorf("confidence must be between 0 and 1, got: %g", confidence)
	}
	return nil
}

// ValidateSymptoms validates a symptom list and returns the trimmed copy.
// An empty list is legal; the engine analyzes from the label alone.
func (v *InputValidatorImpl) ValidateSymptoms(symptoms []string) ([]string, error) {
	if len(symptoms) > MaxSymptoms {
		return nil, fmt.Errorf("too many symptoms: maximum %d, got %d", MaxSymptoms, len(symptoms))
	}

	cleaned := make([]string, 0, len(symptoms))
	for i, s := range symptoms {
		trimmed := strings.TrimSpace(s)
		if trimmed == "" {
			continue
		}
		if err := v.ValidateInput(trimmed); err != nil {
			return nil, fmt.Errorf("invalid symptom at position %d: %w", i, err)
		}
		cleaned = append(cleaned, trimmed)
	}
	return cleaned, nil
}

// isAllowedText permits letters (including accented), digits, spaces and the
// punctuation the vocabulary and disease labels use.
func isAllowedText(input string) bool {
	for _, r := range input {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == ' ', r == '_', r == '-', r == '\'', r == '.', r == '+', r == '/':
		case r >= 0x00C0 && r <= 0x024F: // Latin-1 Supplement and Extended letters
		default:
			return false
		}
	}
	return true
}

// hasExcessiveRepetition checks for DoS patterns with the same character
// repeated more than 10 times consecutively.
func hasExcessiveRepetition(input string) bool {
	for i := 0; i < len(input)-10; i++ {
		allSame := true
		for j := 1; j <= 10; j++ {
			if input[i] != input[i+j] {
				allSame = false
				break
			}
		}
		if allSame {
			return true
		}
	}
	return false
}
