package pipeline

import (
	"strings"
	"testing"

	"github.com/studyowl/canon/internal/fingerprint"
	"github.com/studyowl/canon/internal/models"
)

func TestCanonicalize_MCQ(t *testing.T) {
	p := New(Config{})

	result := p.Canonicalize("What is 2 + 2?\nA) 3\nB) 4\nC) 5\nD) 6\nAnswer: B", nil)

	if result.QuestionText != "What is 2 + 2?" {
		t.Errorf("QuestionText = %q", result.QuestionText)
	}
	if result.QuestionType != models.TypeMCQ {
		t.Errorf("QuestionType = %q, want mcq", result.QuestionType)
	}
	if !result.HasOptions || len(result.Options) != 4 {
		t.Fatalf("expected 4 valid options, got %+v", result.Options)
	}
	if result.AnswerLabel != "B" {
		t.Errorf("AnswerLabel = %q, want B", result.AnswerLabel)
	}
	if result.Language != models.LangEnglish {
		t.Errorf("Language = %q, want en", result.Language)
	}
	if !fingerprint.IsValid(result.PromptHash) || !fingerprint.IsValid(result.ContentHash) {
		t.Errorf("invalid hashes in result: %+v", result)
	}
	if !strings.HasPrefix(result.CacheKey, "answer:") {
		t.Errorf("CacheKey = %q", result.CacheKey)
	}
}

func TestCanonicalize_FreeText(t *testing.T) {
	p := New(Config{})

	result := p.Canonicalize("Explain photosynthesis.", nil)
	if result.HasOptions {
		t.Error("free text should not produce options")
	}
	if result.QuestionText != "Explain photosynthesis." {
		t.Errorf("QuestionText = %q", result.QuestionText)
	}
	if result.AnswerLabel != "" {
		t.Errorf("AnswerLabel = %q, want empty", result.AnswerLabel)
	}
}

func TestCanonicalize_Empty(t *testing.T) {
	p := New(Config{})

	result := p.Canonicalize("", nil)
	if result.QuestionText != "" {
		t.Errorf("QuestionText = %q, want empty", result.QuestionText)
	}
	if result.QuestionType != models.TypeUnknown {
		t.Errorf("QuestionType = %q, want unknown", result.QuestionType)
	}
	if result.HasOptions {
		t.Error("empty input should not produce options")
	}
	if !fingerprint.IsValid(result.PromptHash) {
		t.Errorf("empty input must still hash deterministically, got %q", result.PromptHash)
	}
}

func TestCanonicalize_Deterministic(t *testing.T) {
	p := New(Config{})
	meta := &models.Metadata{Subject: "math", Grade: "8"}

	first := p.Canonicalize("What is 2 + 2?\nA) 3\nB) 4", meta)
	second := p.Canonicalize("What is 2 + 2?\nA) 3\nB) 4", meta)
	if first.PromptHash != second.PromptHash || first.CacheKey != second.CacheKey {
		t.Errorf("pipeline output not deterministic: %+v vs %+v", first, second)
	}
}

func TestCanonicalize_MetadataInCacheKey(t *testing.T) {
	p := New(Config{})

	plain := p.Canonicalize("What is 2 + 2?", nil)
	tagged := p.Canonicalize("What is 2 + 2?", &models.Metadata{Subject: "math"})
	if plain.CacheKey == tagged.CacheKey {
		t.Error("metadata should change the cache key")
	}
	if plain.ContentHash != tagged.ContentHash {
		t.Error("metadata must not change the content hash")
	}
}

func TestCanonicalize_MathProtected(t *testing.T) {
	p := New(Config{})

	result := p.Canonicalize("Solve $x + 2 = 5$ for x.", nil)
	if !strings.Contains(result.QuestionText, "$x + 2 = 5$") {
		t.Errorf("math expression missing from question text: %q", result.QuestionText)
	}
}

func TestCanonicalize_MathInOptions(t *testing.T) {
	p := New(Config{})

	result := p.Canonicalize("Which equals 4?\nA) $2+2$\nB) $2+3$", nil)
	if !result.HasOptions {
		t.Fatalf("expected options, got %+v", result)
	}
	if !strings.Contains(result.Options[0].Normalized, "$2+2$") {
		t.Errorf("math not restored into option body: %+v", result.Options[0])
	}
}

func TestCanonicalizePDF(t *testing.T) {
	p := New(Config{})

	text := "Chapter 2 Numbers\nWhat is 2 + 2?\n7\nA) 3\nB) 4"
	result := p.CanonicalizePDF(text, nil)
	if !result.HasOptions {
		t.Fatalf("expected options after PDF repair, got %+v", result)
	}
	if result.QuestionText != "What is 2 + 2?" {
		t.Errorf("QuestionText = %q", result.QuestionText)
	}
}
