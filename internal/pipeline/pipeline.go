// Package pipeline composes the canonicalization stages into one pure,
// synchronous transformation: raw text in, router payload, fingerprints, and
// cache key out. It performs no I/O and never returns an error; malformed
// input degrades to sentinel values (unknown type, no options, no answer).
package pipeline

import (
	"github.com/studyowl/canon/internal/answer"
	"github.com/studyowl/canon/internal/classify"
	"github.com/studyowl/canon/internal/fingerprint"
	"github.com/studyowl/canon/internal/language"
	"github.com/studyowl/canon/internal/models"
	"github.com/studyowl/canon/internal/normalize"
	"github.com/studyowl/canon/internal/options"
)

// Result is the full canonicalization output. QuestionText, QuestionType,
// Options, and AnswerLabel feed the AI router; CacheKey and the hashes feed
// the answer cache and rate limiter.
type Result struct {
	QuestionText string              `json:"question_text"`
	QuestionType models.QuestionType `json:"question_type"`
	Confidence   float64             `json:"confidence"`
	Options      models.OptionSet    `json:"options,omitempty"`
	HasOptions   bool                `json:"has_options"`
	AnswerLabel  string              `json:"answer_label,omitempty"`
	Language     models.LanguageCode `json:"language"`
	PromptHash   string              `json:"prompt_hash"`
	ContentHash  string              `json:"content_hash"`
	ShortHash    string              `json:"short_hash"`
	CacheKey     string              `json:"cache_key"`
}

// Pipeline wires the stage implementations together. Construct with New;
// a Pipeline is immutable and safe for concurrent use.
type Pipeline struct {
	classifier *classify.Classifier
	extractor  *options.Extractor
}

// Config carries the tunable stage limits; zero values select defaults.
type Config struct {
	ShortAnswerMaxLen int
	Extract           options.Config
}

// New builds a Pipeline from cfg.
func New(cfg Config) *Pipeline {
	return &Pipeline{
		classifier: classify.New(cfg.ShortAnswerMaxLen),
		extractor:  options.New(cfg.Extract),
	}
}

// Canonicalize runs the full pipeline over text. Math segments are protected
// with placeholders before any other stage runs and restored into the
// question text and option bodies afterward, so hashes cover the real
// content. meta may be nil.
func (p *Pipeline) Canonicalize(text string, meta *models.Metadata) Result {
	protected, mathExprs := normalize.ExtractMath(text)

	extraction := p.extractor.Extract(protected)
	classification := p.classifier.Classify(protected)
	lang := language.Detect(normalize.Text(protected))

	answerLabel := ""
	if extraction.Valid {
		if label, ok := answer.Match(protected, extraction.Options); ok {
			answerLabel = label
		}
	}

	questionText := normalize.RestoreMath(extraction.QuestionText, mathExprs)
	opts := restoreOptions(extraction.Options, mathExprs)

	return Result{
		QuestionText: questionText,
		QuestionType: classification.Type,
		Confidence:   classification.Confidence,
		Options:      opts,
		HasOptions:   extraction.Valid,
		AnswerLabel:  answerLabel,
		Language:     lang,
		PromptHash:   fingerprint.Prompt(text, meta.Map()),
		ContentHash:  fingerprint.Content(text),
		ShortHash:    fingerprint.Short(text),
		CacheKey:     fingerprint.AnswerKey(questionText, opts, meta),
	}
}

// CanonicalizePDF applies PDF artifact repair before canonicalizing. Use for
// text that arrived via upstream PDF extraction.
func (p *Pipeline) CanonicalizePDF(text string, meta *models.Metadata) Result {
	return p.Canonicalize(normalize.PDF(text), meta)
}

func restoreOptions(opts models.OptionSet, mathExprs []string) models.OptionSet {
	if len(opts) == 0 || len(mathExprs) == 0 {
		return opts
	}
	restored := make(models.OptionSet, len(opts))
	for i, opt := range opts {
		restored[i] = models.Option{
			Label:      opt.Label,
			Text:       normalize.RestoreMath(opt.Text, mathExprs),
			Normalized: normalize.RestoreMath(opt.Normalized, mathExprs),
		}
	}
	return restored
}
