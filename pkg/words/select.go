// Package words derives the display list shown under a letter.
//
// The pipeline is filter, shuffle, take, sort. Which words appear is a random
// sample on every call while their displayed order is always ascending.
// Sorting before taking would make the sample deterministic, so the order of
// the steps matters.
package words

import (
	"math/rand"
	"sort"
	"time"

	"github.com/bastiangx/wordgrid/internal/utils"
	"github.com/bastiangx/wordgrid/pkg/letters"
)

// DefaultLimit is the number of words shown under a letter.
const DefaultLimit = 5

// Filter returns the words starting with letter, ignoring case.
// Corpus order and duplicates are kept.
func Filter(letter letters.Letter, corpus []string) []string {
	prefix := letter.String()
	matched := make([]string, 0)
	for _, w := range corpus {
		if utils.HasPrefixIgnoreCase(w, prefix) {
			matched = append(matched, w)
		}
	}
	return matched
}

// Select filters corpus by letter, shuffles the matches, keeps the first
// limit of them and returns those sorted ascending.
// A nil rng draws from a fresh time seeded source.
// The result is never nil and corpus is never modified.
func Select(letter letters.Letter, corpus []string, limit int, rng *rand.Rand) []string {
	return sample(Filter(letter, corpus), limit, rng)
}

// sample consumes matched: it is shuffled in place.
func sample(matched []string, limit int, rng *rand.Rand) []string {
	if limit <= 0 || len(matched) == 0 {
		return []string{}
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	rng.Shuffle(len(matched), func(i, j int) {
		matched[i], matched[j] = matched[j], matched[i]
	})

	if len(matched) > limit {
		matched = matched[:limit]
	}
	taken := make([]string, len(matched))
	copy(taken, matched)
	sort.Strings(taken)
	return taken
}
