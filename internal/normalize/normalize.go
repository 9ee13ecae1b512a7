// Package normalize cleans raw question text into a canonical form.
//
// All functions are pure, total, and safe for concurrent use. Malformed
// markup is treated as literal text; empty input normalizes to "".
package normalize

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	tagRe = regexp.MustCompile(`<[^<>]+>`)

	// Leading boilerplate: page/chapter/section headings before the question.
	leadingBoilerplateRe = regexp.MustCompile(`^(?i)(?:page\s+\d+(?:\s+of\s+\d+)?|chapter\s+\d+|section\s+\d+(?:\.\d+)*)[:.\s-]*`)

	// Trailing boilerplate: page footers and copyright lines.
	trailingBoilerplateRe = regexp.MustCompile(`(?i)\s*(?:page\s+\d+\s+of\s+\d+|copyright\b.*|©.*|all rights reserved\.?)$`)

	// A single leading question-number marker: "Q1:", "Question 2:", "3." or "4)".
	questionNumberRe = regexp.MustCompile(`^(?i)(?:q(?:uestion)?\s*\d+\s*[:.)]|\d+\s*[.)])\s*`)
)

// entityReplacer decodes the fixed set of HTML entities that survive copy-paste.
var entityReplacer = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
	"&nbsp;", " ",
)

// Text normalizes raw input into a single-line canonical form: strips markup,
// decodes entities, collapses whitespace, trims, and removes page/question
// numbering boilerplate. Returns "" for empty input.
func Text(text string) string {
	if text == "" {
		return ""
	}
	text = tagRe.ReplaceAllString(text, " ")
	text = entityReplacer.Replace(text)
	text = CollapseWhitespace(text)
	text = stripBoilerplate(text)
	text = questionNumberRe.ReplaceAllString(text, "")
	return stripBoilerplate(text)
}

// stripBoilerplate removes page/chapter/copyright noise from both ends,
// repeating until stable so stacked markers ("Q1: Page 2 of 9 ...") cannot
// survive a single pass and break idempotence.
func stripBoilerplate(text string) string {
	for {
		before := text
		text = strings.TrimSpace(text)
		text = leadingBoilerplateRe.ReplaceAllString(text, "")
		text = trailingBoilerplateRe.ReplaceAllString(text, "")
		text = strings.TrimSpace(text)
		if text == before {
			return text
		}
	}
}

// CollapseWhitespace replaces every run of whitespace (spaces, tabs, newlines)
// with a single space.
func CollapseWhitespace(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	wasSpace := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			if !wasSpace {
				b.WriteRune(' ')
				wasSpace = true
			}
		} else {
			b.WriteRune(r)
			wasSpace = false
		}
	}
	return b.String()
}

var punctRe = regexp.MustCompile(`[^\p{L}\p{N}\s]+`)

// Content reduces text to an aggressively normalized form for near-duplicate
// detection: lower-cased, punctuation stripped, whitespace collapsed. Two
// questions differing only in case, punctuation, or formatting map to the
// same content form.
func Content(text string) string {
	if text == "" {
		return ""
	}
	text = strings.ToLower(Text(text))
	text = punctRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(CollapseWhitespace(text))
}

// StripBullet removes a single leading bullet character from an option body.
func StripBullet(text string) string {
	trimmed := strings.TrimSpace(text)
	for _, bullet := range []string{"-", "•", "·"} {
		if strings.HasPrefix(trimmed, bullet) {
			return strings.TrimSpace(strings.TrimPrefix(trimmed, bullet))
		}
	}
	return trimmed
}

// OptionBody normalizes a captured option body: collapses internal whitespace
// and strips a single leading bullet.
func OptionBody(text string) string {
	return StripBullet(strings.TrimSpace(CollapseWhitespace(text)))
}
