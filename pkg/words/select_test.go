package words

import (
	"math/rand"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/bastiangx/wordgrid/pkg/letters"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

var fruitCorpus = []string{"Apple", "apricot", "Avocado", "Banana", "Ant", "Almond", "Arrow"}

func TestSelectExamples(t *testing.T) {
	testCases := []struct {
		name     string
		letter   letters.Letter
		corpus   []string
		expected []string
		size     int
	}{
		{"more matches than limit", 'A', fruitCorpus, nil, 5},
		{"no matches", 'A', []string{"Banana", "Cherry"}, []string{}, 0},
		{"fewer matches than limit", 'A', []string{"Ant", "Apple"}, []string{"Ant", "Apple"}, 2},
		{"empty corpus", 'Q', nil, []string{}, 0},
		{"duplicates kept", 'B', []string{"bee", "Bee", "bee"}, []string{"Bee", "bee", "bee"}, 3},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Select(tc.letter, tc.corpus, DefaultLimit, rand.New(rand.NewSource(7)))
			require.NotNil(t, got)
			assert.Len(t, got, tc.size)
			if tc.expected != nil {
				assert.Equal(t, tc.expected, got)
			}
			assertSelection(t, tc.letter, got)
		})
	}
}

func TestSelectProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for _, l := range letters.Letters() {
		for limit := 0; limit <= 8; limit++ {
			got := Select(l, fruitCorpus, limit, rng)
			want := min(limit, len(Filter(l, fruitCorpus)))
			assert.Len(t, got, want, "letter %s limit %d", l, limit)
			assertSelection(t, l, got)
		}
	}
}

func TestSelectSamplesEveryMatch(t *testing.T) {
	matches := Filter('A', fruitCorpus)
	require.Len(t, matches, 6)

	seen := make(map[string]int)
	rng := rand.New(rand.NewSource(1))
	const runs = 600
	for i := 0; i < runs; i++ {
		for _, w := range Select('A', fruitCorpus, DefaultLimit, rng) {
			seen[w]++
		}
	}

	// every word is picked sometimes and left out sometimes
	for _, w := range matches {
		assert.Greater(t, seen[w], 0, "%s never selected", w)
		assert.Less(t, seen[w], runs, "%s never left out", w)
	}
}

func TestSelectDoesNotMutateCorpus(t *testing.T) {
	corpus := append([]string(nil), fruitCorpus...)
	Select('A', corpus, 3, nil)
	assert.Equal(t, fruitCorpus, corpus)
}

func TestSelectNilRng(t *testing.T) {
	got := Select('A', fruitCorpus, DefaultLimit, nil)
	assert.Len(t, got, 5)
	assertSelection(t, 'A', got)
}

func TestFilterKeepsCorpusOrder(t *testing.T) {
	assert.Equal(t,
		[]string{"Apple", "apricot", "Avocado", "Ant", "Almond", "Arrow"},
		Filter('A', fruitCorpus))
	assert.Equal(t, []string{"Banana"}, Filter('b', fruitCorpus))
	assert.Empty(t, Filter('Z', fruitCorpus))
}

func TestFilterIgnoresCase(t *testing.T) {
	corpus := []string{"ant", "ANT", "Ant", "bANT", "", "aNT"}
	assert.Equal(t, []string{"ant", "ANT", "Ant", "aNT"}, Filter('A', corpus))
	assert.Equal(t, []string{"bANT"}, Filter('B', corpus))
}

func TestSelectorSeeded(t *testing.T) {
	a := NewSelector(WithSeed(99))
	b := NewSelector(WithSeed(99))
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Select('A', fruitCorpus), b.Select('A', fruitCorpus))
	}
	assert.Equal(t, DefaultLimit, a.Limit())
}

func TestSelectorLimit(t *testing.T) {
	s := NewSelector(WithLimit(2), WithSeed(3))
	assert.Len(t, s.Select('A', fruitCorpus), 2)
	assert.Len(t, s.SelectN('A', fruitCorpus, 4), 4)
	assert.Len(t, s.SelectN('A', fruitCorpus, 0), 0)
}

func TestSelectorConcurrent(t *testing.T) {
	s := NewSelector()
	corpus := NewCorpus(fruitCorpus)

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				got := s.SelectFrom('A', corpus)
				if len(got) != DefaultLimit || !sort.StringsAreSorted(got) {
					t.Errorf("bad selection: %v", got)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func assertSelection(t *testing.T, l letters.Letter, got []string) {
	t.Helper()
	assert.True(t, sort.StringsAreSorted(got), "not sorted: %v", got)
	for _, w := range got {
		assert.True(t, strings.HasPrefix(strings.ToLower(w), l.Lower()), "%q does not start with %s", w, l)
	}
}
