package answer

import (
	"strings"

	"github.com/studyowl/canon/internal/models"
	"github.com/studyowl/canon/internal/normalize"
)

// genericDistractors is the fixed fallback list appended when a short-answer
// question needs a synthetic multiple-choice rendering. These are structural
// placeholders, not pedagogically meaningful distractors.
var genericDistractors = []string{
	"Not enough information",
	"None of the above",
	"All of the above",
}

// Generate builds a deterministic option set around a known correct answer.
// The correct answer is always option A. True/false questions get the logical
// complement as the only distractor; everything else gets up to three generic
// distractors labeled B, C, D in order.
func Generate(questionText, correctAnswer string) models.OptionSet {
	set := models.OptionSet{makeOption("A", correctAnswer)}

	lower := strings.ToLower(questionText)
	if strings.Contains(lower, "true") || strings.Contains(lower, "false") {
		return append(set, makeOption("B", complementOf(correctAnswer)))
	}

	label := 'B'
	for _, distractor := range genericDistractors {
		if strings.EqualFold(distractor, correctAnswer) {
			continue
		}
		set = append(set, makeOption(string(label), distractor))
		label++
		if label > 'D' {
			break
		}
	}
	return set
}

// complementOf returns the logical opposite for a true/false answer. Answers
// that are neither default to "False".
func complementOf(answer string) string {
	if strings.EqualFold(strings.TrimSpace(answer), "false") {
		return "True"
	}
	return "False"
}

func makeOption(label, text string) models.Option {
	return models.Option{
		Label:      label,
		Text:       text,
		Normalized: normalize.OptionBody(text),
	}
}
