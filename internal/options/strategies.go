package options

import (
	"regexp"
	"strings"

	"github.com/studyowl/canon/internal/models"
)

// strategy is one structural extraction pattern. The marker regex captures
// the enumeration label; the body of each option runs from the end of its
// marker to the start of the next marker or the end of the input.
type strategy struct {
	name      string
	marker    *regexp.Regexp
	relabeled bool
}

// Strategies in priority order; first valid result wins. Letter markers
// capture any single letter so that OCR-garbled enumerations reach
// validation, where the A-E ratio rule decides. The numbered strategy
// relabels matches A, B, C... by position.
var strategies = []strategy{
	{name: "letter-paren", marker: regexp.MustCompile(`(?:^|\s)([A-Za-z])\)[ \t]*`)},
	{name: "letter-period", marker: regexp.MustCompile(`(?m)(?:^|\n)[ \t]*([A-Za-z])\.[ \t]+`)},
	{name: "parenthesized", marker: regexp.MustCompile(`\(([A-Za-z])\)[ \t]*`)},
	{name: "letter-colon", marker: regexp.MustCompile(`(?m)(?:^|\n)[ \t]*([A-Za-z]):[ \t]*`)},
	{name: "numbered", marker: regexp.MustCompile(`(?m)(?:^|\n)[ \t]*(\d{1,2})[\).][ \t]*`), relabeled: true},
}

// apply runs the strategy against text. ok is false when fewer than two
// markers match; validation happens in the caller.
func (s strategy) apply(text string) (models.OptionSet, string, bool) {
	locs := s.marker.FindAllStringSubmatchIndex(text, -1)
	if len(locs) < 2 {
		return nil, "", false
	}

	questionText := strings.TrimSpace(text[:locs[0][0]])

	set := make(models.OptionSet, 0, len(locs))
	for i, loc := range locs {
		label := text[loc[2]:loc[3]]
		bodyEnd := len(text)
		if i+1 < len(locs) {
			bodyEnd = locs[i+1][0]
		}
		raw := text[loc[1]:bodyEnd]
		if s.relabeled {
			label = string(rune('A' + i))
		}
		set = append(set, normalizeOption(label, raw))
	}
	return set, questionText, true
}
