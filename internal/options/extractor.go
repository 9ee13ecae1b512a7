// Package options extracts enumerated answer choices from question text.
//
// Extraction tries an ordered list of structural strategies and stops at the
// first one whose matches survive validation. Results from different
// strategies are never merged; a brittle unified grammar is deliberately
// avoided in favor of small matchers that can be unit-tested one by one.
package options

import (
	"math"
	"strings"

	"github.com/studyowl/canon/internal/models"
	"github.com/studyowl/canon/internal/normalize"
)

// Validation defaults. The label ratio is a tolerance for OCR/markup noise
// that garbles one or two enumeration markers in an otherwise legitimate
// list; it is configurable because the exact value is a heuristic.
const (
	DefaultMinOptions         = 2
	DefaultMaxOptions         = 8
	DefaultMaxOptionLength    = 500
	DefaultMinValidLabelRatio = 0.5
)

// Extraction is the result of an option extraction attempt.
type Extraction struct {
	// Options is the validated option set; empty when Valid is false.
	Options models.OptionSet `json:"options"`
	// QuestionText is the text preceding the first option marker, or the
	// whole trimmed input when no valid options were found.
	QuestionText string `json:"question_text"`
	// Valid reports whether a strategy produced a fully valid option set.
	Valid bool `json:"has_valid_options"`
}

// Extractor runs the ordered extraction strategies. Construct with New.
type Extractor struct {
	minOptions         int
	maxOptions         int
	maxOptionLength    int
	minValidLabelRatio float64
}

// Config overrides extraction limits; zero values select defaults.
type Config struct {
	MinOptions         int
	MaxOptions         int
	MaxOptionLength    int
	MinValidLabelRatio float64
}

// New returns an Extractor with the given limits.
func New(cfg Config) *Extractor {
	e := &Extractor{
		minOptions:         cfg.MinOptions,
		maxOptions:         cfg.MaxOptions,
		maxOptionLength:    cfg.MaxOptionLength,
		minValidLabelRatio: cfg.MinValidLabelRatio,
	}
	if e.minOptions <= 0 {
		e.minOptions = DefaultMinOptions
	}
	if e.maxOptions <= 0 {
		e.maxOptions = DefaultMaxOptions
	}
	if e.maxOptionLength <= 0 {
		e.maxOptionLength = DefaultMaxOptionLength
	}
	if e.minValidLabelRatio <= 0 {
		e.minValidLabelRatio = DefaultMinValidLabelRatio
	}
	return e
}

// Extract tries each strategy in priority order and returns the first valid
// result. When every strategy fails, Valid is false and QuestionText is the
// trimmed input.
func (e *Extractor) Extract(text string) Extraction {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Extraction{QuestionText: ""}
	}

	for _, strat := range strategies {
		set, questionText, ok := strat.apply(text)
		if !ok {
			continue
		}
		if !e.validate(set, strat.relabeled) {
			continue
		}
		if questionText == "" {
			questionText = trimmed
		}
		return Extraction{Options: set, QuestionText: questionText, Valid: true}
	}

	return Extraction{QuestionText: trimmed}
}

// validate checks the option set against the count, length, uniqueness, and
// label rules. Relabeled sets (numbered lists) skip the letter-validity check
// because their labels are assigned positionally.
func (e *Extractor) validate(set models.OptionSet, relabeled bool) bool {
	n := len(set)
	if n < e.minOptions || n > e.maxOptions {
		return false
	}

	seenBodies := make(map[string]bool, n)
	seenLabels := make(map[string]bool, n)
	validLabels := 0
	for _, opt := range set {
		if len(opt.Normalized) < 1 || len(opt.Normalized) > e.maxOptionLength {
			return false
		}
		body := strings.ToLower(opt.Normalized)
		if seenBodies[body] {
			return false
		}
		seenBodies[body] = true

		label := strings.ToUpper(opt.Label)
		if seenLabels[label] {
			return false
		}
		seenLabels[label] = true
		if len(label) == 1 && label[0] >= 'A' && label[0] <= 'E' {
			validLabels++
		}
	}

	if relabeled {
		return true
	}
	required := int(math.Ceil(float64(n) * e.minValidLabelRatio))
	return validLabels >= required
}

// normalizeOption builds an Option from a captured label and raw body.
func normalizeOption(label, raw string) models.Option {
	return models.Option{
		Label:      strings.ToUpper(label),
		Text:       strings.TrimSpace(raw),
		Normalized: normalize.OptionBody(raw),
	}
}
