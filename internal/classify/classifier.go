// Package classify assigns a structural type tag to question text.
package classify

import (
	"regexp"
	"strings"

	"github.com/studyowl/canon/internal/models"
)

// DefaultShortAnswerMaxLen is the length ceiling under which a trailing "?"
// marks a short-answer question.
const DefaultShortAnswerMaxLen = 300

var (
	optionMarkerLineRe = regexp.MustCompile(`(?m)^[ \t]*(?:\(?[A-Ea-e][\).:]|\d{1,2}[\).])[ \t]+\S`)
	selectAllRe        = regexp.MustCompile(`(?i)\b(?:select|choose|mark)\s+all(?:\s+that\s+apply)?\b|\ball that apply\b`)
	trueFalseRe        = regexp.MustCompile(`(?i)\btrue\s+or\s+false\b|\btrue\s*/\s*false\b`)
	blankRe            = regexp.MustCompile(`_{3,}|\(blank\)`)
	arithmeticRe       = regexp.MustCompile(`\d\s*[+\-*/×÷^]\s*\d`)
	calcVerbRe         = regexp.MustCompile(`(?i)\b(?:solve|calculate|compute|evaluate|simplify)\b`)
	matchingRe         = regexp.MustCompile(`(?i)\bmatch(?:ing)?\b.*\bcolumn\b|\bmatch the following\b`)
	orderingRe         = regexp.MustCompile(`(?i)\b(?:arrange|put|place)\b.*\b(?:order|sequence|chronolog)`)
	codingRe           = regexp.MustCompile(`(?i)\bwrite\s+(?:a\s+)?(?:program|function|code)\b|\bcode\s+snippet\b|\boutput of (?:the|this) (?:code|program)\b`)
	essayRe            = regexp.MustCompile(`(?i)\b(?:essay|discuss in detail|write an essay)\b`)
)

// Result is a classification with a confidence score in [0, 1].
type Result struct {
	Type       models.QuestionType `json:"type"`
	Confidence float64             `json:"confidence"`
}

// Classifier detects question types from cleaned text. The zero value is not
// usable; construct with New.
type Classifier struct {
	shortAnswerMaxLen int
}

// New returns a Classifier with the given short-answer length ceiling.
// A non-positive value selects the default.
func New(shortAnswerMaxLen int) *Classifier {
	if shortAnswerMaxLen <= 0 {
		shortAnswerMaxLen = DefaultShortAnswerMaxLen
	}
	return &Classifier{shortAnswerMaxLen: shortAnswerMaxLen}
}

// Classify assigns a question type tag, trying detections in order of
// specificity. It never errors; text that matches nothing is TypeUnknown,
// which consumers treat as free-text/short-answer.
func (c *Classifier) Classify(text string) Result {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Result{Type: models.TypeUnknown, Confidence: 0}
	}

	if markers := optionMarkerLineRe.FindAllStringIndex(trimmed, -1); len(markers) >= 2 {
		signals := 1
		if len(markers) >= 3 {
			signals++
		}
		if strings.Contains(trimmed[:markers[0][0]], "?") {
			signals++
		}
		if selectAllRe.MatchString(trimmed) {
			return Result{Type: models.TypeMulti, Confidence: confidence(signals + 1)}
		}
		return Result{Type: models.TypeMCQ, Confidence: confidence(signals)}
	}

	if trueFalseRe.MatchString(trimmed) {
		signals := 1
		if strings.HasSuffix(trimmed, "?") {
			signals++
		}
		return Result{Type: models.TypeTrueFalse, Confidence: confidence(signals)}
	}

	if blankRe.MatchString(trimmed) {
		signals := len(blankRe.FindAllString(trimmed, -1))
		return Result{Type: models.TypeFillBlank, Confidence: confidence(signals)}
	}

	if arithmeticRe.MatchString(trimmed) && (calcVerbRe.MatchString(trimmed) || strings.Contains(trimmed, "=")) {
		signals := 1
		if calcVerbRe.MatchString(trimmed) {
			signals++
		}
		if strings.Contains(trimmed, "=") {
			signals++
		}
		return Result{Type: models.TypeCalculation, Confidence: confidence(signals)}
	}

	if matchingRe.MatchString(trimmed) {
		return Result{Type: models.TypeMatching, Confidence: confidence(1)}
	}
	if orderingRe.MatchString(trimmed) {
		return Result{Type: models.TypeOrdering, Confidence: confidence(1)}
	}
	if codingRe.MatchString(trimmed) {
		return Result{Type: models.TypeCoding, Confidence: confidence(1)}
	}
	if essayRe.MatchString(trimmed) {
		return Result{Type: models.TypeEssay, Confidence: confidence(1)}
	}

	if strings.HasSuffix(trimmed, "?") && len(trimmed) < c.shortAnswerMaxLen {
		return Result{Type: models.TypeShort, Confidence: confidence(1)}
	}

	return Result{Type: models.TypeUnknown, Confidence: 0.1}
}

// confidence maps a corroborating signal count to a score capped at 1.0.
func confidence(signals int) float64 {
	score := 0.5 + 0.15*float64(signals)
	if score > 1.0 {
		return 1.0
	}
	return score
}
