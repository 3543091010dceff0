package words

import (
	"sort"
	"strings"

	"github.com/bastiangx/wordgrid/pkg/letters"
	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Corpus is an immutable word list indexed by lowercase spelling.
// Each trie item holds the corpus positions of that spelling, so duplicates
// survive indexing and lookups can restore corpus order.
type Corpus struct {
	words []string
	trie  *patricia.Trie
}

// NewCorpus copies words and indexes them.
func NewCorpus(words []string) *Corpus {
	c := &Corpus{
		words: append([]string(nil), words...),
		trie:  patricia.NewTrie(),
	}
	for i, w := range c.words {
		if w == "" {
			continue
		}
		key := patricia.Prefix(strings.ToLower(w))
		if item := c.trie.Get(key); item != nil {
			c.trie.Set(key, append(item.([]int), i))
			continue
		}
		c.trie.Insert(key, []int{i})
	}
	log.Debugf("Indexed corpus: %d words", len(c.words))
	return c
}

// Len returns the number of words, duplicates included.
func (c *Corpus) Len() int {
	return len(c.words)
}

// Words returns a copy of the corpus in its original order.
func (c *Corpus) Words() []string {
	return append([]string(nil), c.words...)
}

// WithLetter returns the same subset as Filter, in corpus order.
func (c *Corpus) WithLetter(letter letters.Letter) []string {
	positions := c.positions(letter.Lower())
	matched := make([]string, len(positions))
	for i, p := range positions {
		matched[i] = c.words[p]
	}
	return matched
}

func (c *Corpus) positions(lowerPrefix string) []int {
	var positions []int
	err := c.trie.VisitSubtree(patricia.Prefix(lowerPrefix), func(_ patricia.Prefix, item patricia.Item) error {
		positions = append(positions, item.([]int)...)
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting trie subtree: %v", err)
		return nil
	}
	sort.Ints(positions)
	return positions
}

// Stats reports the total word count and the number of words under each letter.
func (c *Corpus) Stats() map[string]int {
	stats := map[string]int{
		"totalWords": len(c.words),
	}
	for _, l := range letters.Letters() {
		stats[l.String()] = len(c.positions(l.Lower()))
	}
	return stats
}
