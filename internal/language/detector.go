// Package language guesses the source language of question text.
//
// Detection is a crude stop-word frequency score used to pick a default
// output language for the AI router, not a precision classifier. It is a
// single regex pass per language and never fails; ties and all-zero scores
// resolve to English.
package language

import (
	"regexp"
	"strings"

	"github.com/studyowl/canon/internal/models"
)

// stopWords holds a fixed stop-word list per supported language. The tables
// are immutable; concurrent callers share them without coordination.
var stopWords = map[models.LanguageCode][]string{
	models.LangEnglish: {
		"the", "is", "are", "was", "what", "which", "who", "of", "to",
		"and", "in", "that", "for", "with", "does", "how",
	},
	models.LangIndonesian: {
		"yang", "dan", "di", "ke", "dari", "untuk", "dengan", "adalah",
		"pada", "ini", "itu", "apa", "bagaimana", "berapa", "tidak",
	},
	models.LangFilipino: {
		"ang", "ng", "sa", "na", "ay", "mga", "at", "para", "ito",
		"hindi", "ano", "paano", "ilan", "kung",
	},
	models.LangSwahili: {
		"na", "ya", "wa", "kwa", "ni", "za", "katika", "hii", "yake",
		"gani", "nini", "je", "kiasi", "ngapi",
	},
}

// scoreOrder fixes the iteration order so detection is deterministic.
var scoreOrder = []models.LanguageCode{
	models.LangEnglish,
	models.LangIndonesian,
	models.LangFilipino,
	models.LangSwahili,
}

var stopWordRes = buildStopWordRes()

func buildStopWordRes() map[models.LanguageCode]*regexp.Regexp {
	res := make(map[models.LanguageCode]*regexp.Regexp, len(stopWords))
	for code, words := range stopWords {
		res[code] = regexp.MustCompile(`\b(?:` + strings.Join(words, "|") + `)\b`)
	}
	return res
}

// Detect returns the language whose stop-word list matches the text most
// often. Empty input, no matches, and ties all return English.
func Detect(text string) models.LanguageCode {
	if text == "" {
		return models.LangEnglish
	}
	lower := strings.ToLower(text)

	best := models.LangEnglish
	bestCount := 0
	tied := false
	for _, code := range scoreOrder {
		count := len(stopWordRes[code].FindAllStringIndex(lower, -1))
		if count > bestCount {
			best = code
			bestCount = count
			tied = false
		} else if count == bestCount && count > 0 && code != best {
			tied = true
		}
	}
	if bestCount == 0 || tied {
		return models.LangEnglish
	}
	return best
}
