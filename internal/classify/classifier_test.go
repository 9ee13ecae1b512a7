package classify

import (
	"strings"
	"testing"

	"github.com/studyowl/canon/internal/models"
)

func TestClassify(t *testing.T) {
	c := New(0)

	tests := []struct {
		name string
		text string
		want models.QuestionType
	}{
		{
			name: "mcq with lettered options",
			text: "What is 2 + 2?\nA) 3\nB) 4\nC) 5\nD) 6",
			want: models.TypeMCQ,
		},
		{
			name: "multi select",
			text: "Select all that apply. Which are mammals?\nA) whale\nB) shark\nC) bat",
			want: models.TypeMulti,
		},
		{
			name: "true or false phrasing",
			text: "The Earth is flat. True or False?",
			want: models.TypeTrueFalse,
		},
		{
			name: "true slash false phrasing",
			text: "True/False: light is faster than sound.",
			want: models.TypeTrueFalse,
		},
		{
			name: "fill in the blank underscores",
			text: "The powerhouse of the cell is the ____.",
			want: models.TypeFillBlank,
		},
		{
			name: "fill in the blank marker",
			text: "Water freezes at (blank) degrees Celsius.",
			want: models.TypeFillBlank,
		},
		{
			name: "calculation with verb",
			text: "Calculate 12 * 8 and show your work.",
			want: models.TypeCalculation,
		},
		{
			name: "calculation with equals",
			text: "3 + 4 = ?",
			want: models.TypeCalculation,
		},
		{
			name: "matching columns",
			text: "Match the following items in column A with column B.",
			want: models.TypeMatching,
		},
		{
			name: "ordering",
			text: "Arrange these events in chronological order.",
			want: models.TypeOrdering,
		},
		{
			name: "coding",
			text: "Write a function that reverses a string.",
			want: models.TypeCoding,
		},
		{
			name: "essay",
			text: "Write an essay on the causes of World War I.",
			want: models.TypeEssay,
		},
		{
			name: "short question",
			text: "What is the capital of France?",
			want: models.TypeShort,
		},
		{
			name: "long interrogative is not short",
			text: strings.Repeat("context sentence here. ", 20) + "so why?",
			want: models.TypeUnknown,
		},
		{
			name: "statement is unknown",
			text: "Photosynthesis converts light into chemical energy.",
			want: models.TypeUnknown,
		},
		{
			name: "empty is unknown",
			text: "",
			want: models.TypeUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.text)
			if got.Type != tt.want {
				t.Errorf("Classify(%q).Type = %q, want %q", tt.text, got.Type, tt.want)
			}
			if got.Confidence < 0 || got.Confidence > 1 {
				t.Errorf("Classify(%q).Confidence = %f out of range", tt.text, got.Confidence)
			}
		})
	}
}

func TestClassify_ConfidenceGrowsWithSignals(t *testing.T) {
	c := New(0)

	weak := c.Classify("The Earth is flat. True or false does not end with a mark")
	strong := c.Classify("The Earth is flat. True or False?")
	if strong.Confidence <= weak.Confidence {
		t.Errorf("expected more signals to raise confidence: weak %f, strong %f",
			weak.Confidence, strong.Confidence)
	}
}

func TestClassify_ShortAnswerLengthConfigurable(t *testing.T) {
	tight := New(10)
	if got := tight.Classify("What is the capital of France?"); got.Type != models.TypeUnknown {
		t.Errorf("length ceiling not applied: got %q", got.Type)
	}
}
