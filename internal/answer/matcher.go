// Package answer finds and validates stated answers, generates structural
// distractors, and shuffles option sets.
package answer

import (
	"regexp"
	"strings"

	"github.com/studyowl/canon/internal/models"
)

// Stated-answer patterns in priority order. The first captured letter that
// exists in the option set wins.
var answerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\banswer\s*:\s*\(?([A-Ea-e])\b`),
	regexp.MustCompile(`(?i)\bcorrect\s*:\s*\(?([A-Ea-e])\b`),
	regexp.MustCompile(`(?i)\bsolution\s*:\s*\(?([A-Ea-e])\b`),
	regexp.MustCompile(`(?m)^\s*([A-Ea-e])\s*$`),
	regexp.MustCompile(`(?i)\(?([A-Ea-e])\)?\s+is\s+correct\b`),
}

// Match scans text for a stated answer and validates it against the option
// set. Returns the uppercase label and true on the first validated match,
// or "" and false when no pattern yields a label present in the set.
func Match(text string, set models.OptionSet) (string, bool) {
	if text == "" || len(set) == 0 {
		return "", false
	}
	for _, re := range answerPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			label := strings.ToUpper(m[1])
			if set.HasLabel(label) {
				return label, true
			}
		}
	}
	return "", false
}

// Validate reports whether label names an option in the set.
func Validate(label string, set models.OptionSet) bool {
	return label != "" && set.HasLabel(label)
}
