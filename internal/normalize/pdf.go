package normalize

import (
	"regexp"
	"strings"
)

var (
	// Hyphenated line-wrap split: "exam-\nple" extracted from a PDF column.
	hyphenWrapRe = regexp.MustCompile(`(\p{L})-\n\s*(\p{L})`)

	// Standalone numeric lines are page numbers left behind by extraction.
	pageNumberLineRe = regexp.MustCompile(`(?m)^\s*\d+\s*$\n?`)

	// Chapter/section header lines inserted between pages.
	headerLineRe = regexp.MustCompile(`(?mi)^\s*(?:chapter|section|unit)\s+\d+(?:\.\d+)*[^\n]*$\n?`)

	tripleNewlineRe = regexp.MustCompile(`\n{3,}`)
)

// PDF repairs artifacts specific to text extracted from PDF files while
// preserving line structure, so that option markers remain line-anchored for
// downstream extraction. Run Text afterward for the flat canonical form.
func PDF(text string) string {
	if text == "" {
		return ""
	}
	text = strings.ReplaceAll(text, "\f", "\n")
	text = stripControl(text)
	text = hyphenWrapRe.ReplaceAllString(text, "$1$2")
	text = pageNumberLineRe.ReplaceAllString(text, "")
	text = headerLineRe.ReplaceAllString(text, "")
	text = tripleNewlineRe.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// stripControl removes control characters except newline and tab.
func stripControl(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r < 0x20 && r != '\n' && r != '\t' {
			continue
		}
		if r == 0x7f {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
