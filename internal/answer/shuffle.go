package answer

import (
	"math/rand"
	"strings"

	"github.com/studyowl/canon/internal/models"
)

// RandSource returns a value in [0, 1). Tests inject a seeded or scripted
// source to pin exact shuffle output; production callers pass nil for the
// default PRNG.
type RandSource func() float64

// Shuffle reorders the option set with a Fisher-Yates shuffle, relabels the
// result sequentially from A, and returns the label now holding the
// originally-correct option. The input set is not modified. An empty set or
// unknown correct label returns the input unchanged.
func Shuffle(set models.OptionSet, correctLabel string, rnd RandSource) (models.OptionSet, string) {
	if len(set) == 0 {
		return set, correctLabel
	}
	if rnd == nil {
		rnd = rand.Float64
	}

	shuffled := make(models.OptionSet, len(set))
	copy(shuffled, set)

	correctIdx := -1
	for i, opt := range shuffled {
		if strings.EqualFold(opt.Label, correctLabel) {
			correctIdx = i
		}
	}

	for i := len(shuffled) - 1; i > 0; i-- {
		j := int(rnd() * float64(i+1))
		if j > i {
			j = i
		}
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		switch correctIdx {
		case i:
			correctIdx = j
		case j:
			correctIdx = i
		}
	}

	for i := range shuffled {
		shuffled[i].Label = string(rune('A' + i))
	}

	if correctIdx < 0 {
		return shuffled, correctLabel
	}
	return shuffled, shuffled[correctIdx].Label
}
