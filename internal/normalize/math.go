package normalize

import (
	"fmt"
	"regexp"
	"strings"
)

// Math expression patterns, ordered from most to least enclosing so display
// math is captured before the inline delimiters inside it.
var mathPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\$\$[\s\S]+?\$\$`),
	regexp.MustCompile(`\$[^$\n]+\$`),
	regexp.MustCompile(`\\begin\{[a-zA-Z*]+\}[\s\S]*?\\end\{[a-zA-Z*]+\}`),
	regexp.MustCompile(`\\[a-zA-Z]+(?:\{[^{}]*\})*`),
}

const mathPlaceholderFormat = "__MATH_EXPR_%d__"

// ExtractMath replaces math segments ($...$, $$...$$, LaTeX environments and
// commands) with counter-suffixed placeholder tokens so whitespace and markup
// normalization cannot mangle them. Returns the protected text and the
// extracted expressions in placeholder order; RestoreMath reverses the
// substitution exactly.
func ExtractMath(text string) (string, []string) {
	if text == "" {
		return "", nil
	}
	var exprs []string
	for _, re := range mathPatterns {
		text = re.ReplaceAllStringFunc(text, func(match string) string {
			placeholder := fmt.Sprintf(mathPlaceholderFormat, len(exprs))
			exprs = append(exprs, match)
			return placeholder
		})
	}
	return text, exprs
}

// RestoreMath substitutes extracted expressions back into their placeholders.
// Unknown placeholders are left untouched.
func RestoreMath(text string, exprs []string) string {
	for i := len(exprs) - 1; i >= 0; i-- {
		placeholder := fmt.Sprintf(mathPlaceholderFormat, i)
		text = strings.ReplaceAll(text, placeholder, exprs[i])
	}
	return text
}
