// Package models defines the shared types for the question canonicalization pipeline.
package models

import "strings"

// LanguageCode identifies a supported output language.
type LanguageCode string

const (
	// LangEnglish is English, the default language.
	LangEnglish LanguageCode = "en"
	// LangIndonesian is Bahasa Indonesia.
	LangIndonesian LanguageCode = "id"
	// LangFilipino is Filipino/Tagalog.
	LangFilipino LanguageCode = "fil"
	// LangSwahili is Swahili.
	LangSwahili LanguageCode = "sw"
)

// QuestionType classifies the structural shape of a question.
type QuestionType string

const (
	// TypeMCQ is a single-answer multiple-choice question.
	TypeMCQ QuestionType = "mcq"
	// TypeMulti is a select-all-that-apply multiple-choice question.
	TypeMulti QuestionType = "multi"
	// TypeTrueFalse is a true/false question.
	TypeTrueFalse QuestionType = "true_false"
	// TypeFillBlank is a fill-in-the-blank question.
	TypeFillBlank QuestionType = "fill_blank"
	// TypeCalculation is a numeric calculation question.
	TypeCalculation QuestionType = "calculation"
	// TypeMatching asks to match items across two columns.
	TypeMatching QuestionType = "matching"
	// TypeOrdering asks to arrange items in a sequence.
	TypeOrdering QuestionType = "ordering"
	// TypeCoding asks to write or analyze code.
	TypeCoding QuestionType = "coding"
	// TypeEssay is a long-form free-text question.
	TypeEssay QuestionType = "essay"
	// TypeShort is a short free-text question.
	TypeShort QuestionType = "short"
	// TypeUnknown is the safe fallback; consumers treat it as free text.
	TypeUnknown QuestionType = "unknown"
)

// Metadata carries optional caller-declared context for a question.
// Fields must be plain strings; absent fields are defaulted at hashing time.
type Metadata struct {
	Subject        string `json:"subject,omitempty" yaml:"subject,omitempty"`
	Grade          string `json:"grade,omitempty" yaml:"grade,omitempty"`
	Language       string `json:"language,omitempty" yaml:"language,omitempty"`
	TargetLanguage string `json:"target_language,omitempty" yaml:"target_language,omitempty"`
}

// Map returns the metadata as a generic map for canonical serialization.
// Empty fields are omitted so that an unset field and an absent field hash alike.
func (m *Metadata) Map() map[string]interface{} {
	if m == nil {
		return nil
	}
	out := make(map[string]interface{}, 4)
	if m.Subject != "" {
		out["subject"] = m.Subject
	}
	if m.Grade != "" {
		out["grade"] = m.Grade
	}
	if m.Language != "" {
		out["language"] = m.Language
	}
	if m.TargetLanguage != "" {
		out["targetLanguage"] = m.TargetLanguage
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Option is one enumerated answer choice.
type Option struct {
	// Label is a single uppercase letter (A-E, or positional for relabeled lists).
	Label string `json:"label"`
	// Text is the raw captured substring.
	Text string `json:"text"`
	// Normalized is the cleaned body used for comparison and hashing.
	Normalized string `json:"normalized"`
}

// OptionSet is an ordered sequence of options with unique labels.
type OptionSet []Option

// Labels returns the option labels in order.
func (s OptionSet) Labels() []string {
	labels := make([]string, len(s))
	for i, opt := range s {
		labels[i] = opt.Label
	}
	return labels
}

// ByLabel returns the option with the given label, comparing case-insensitively.
func (s OptionSet) ByLabel(label string) (Option, bool) {
	for _, opt := range s {
		if strings.EqualFold(opt.Label, label) {
			return opt, true
		}
	}
	return Option{}, false
}

// HasLabel reports whether the set contains the given label (case-insensitive).
func (s OptionSet) HasLabel(label string) bool {
	_, ok := s.ByLabel(label)
	return ok
}

// Bodies returns the normalized option bodies in order.
func (s OptionSet) Bodies() []string {
	bodies := make([]string, len(s))
	for i, opt := range s {
		bodies[i] = opt.Normalized
	}
	return bodies
}
