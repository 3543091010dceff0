// Package grid is the host facing facade over the letter source, the word
// pipeline and the selection sink.
//
// Hosts (CLI, TUI, IPC, HTTP) render the rows it returns and call Open when
// the user picks a word. Grid itself never navigates; Open only hands the
// URL to the configured Opener.
package grid

import (
	"context"

	"github.com/bastiangx/wordgrid/pkg/a11y"
	"github.com/bastiangx/wordgrid/pkg/letters"
	"github.com/bastiangx/wordgrid/pkg/search"
	"github.com/bastiangx/wordgrid/pkg/words"
)

// Row is a rendered list entry with its assistive description.
type Row struct {
	Text   string
	Action a11y.Action
}

// Service is what hosts depend on.
type Service interface {
	// Letters returns one row per letter, A to Z
	Letters() []Row

	// Words returns the display list for a letter using the default limit
	Words(letter letters.Letter) []Row

	// WordsN returns the display list for a letter with an explicit limit
	WordsN(letter letters.Letter, limit int) []Row

	// URL returns the search URL for a word without opening it
	URL(word string) string

	// Open hands the search URL for a word to the selection sink
	Open(ctx context.Context, word string) (string, error)

	// Limit returns the default number of words per letter
	Limit() int

	// Stats returns corpus statistics
	Stats() map[string]int
}

// Grid implements Service.
type Grid struct {
	corpus   *words.Corpus
	selector *words.Selector
	sink     *search.Sink
}

// New wires a corpus, selector and sink together.
func New(corpus *words.Corpus, selector *words.Selector, sink *search.Sink) *Grid {
	if selector == nil {
		selector = words.NewSelector()
	}
	if sink == nil {
		sink = search.NewSink(search.DefaultPrefix, nil)
	}
	return &Grid{corpus: corpus, selector: selector, sink: sink}
}

func (g *Grid) Letters() []Row {
	list := letters.Letters()
	rows := make([]Row, len(list))
	for i, l := range list {
		rows[i] = Row{Text: l.String(), Action: a11y.DescribeLetter(l)}
	}
	return rows
}

func (g *Grid) Words(letter letters.Letter) []Row {
	return g.WordsN(letter, g.selector.Limit())
}

func (g *Grid) WordsN(letter letters.Letter, limit int) []Row {
	selected := g.selector.SelectFromN(letter, g.corpus, limit)
	rows := make([]Row, len(selected))
	for i, w := range selected {
		rows[i] = Row{Text: w, Action: a11y.DescribeWord(w)}
	}
	return rows
}

func (g *Grid) URL(word string) string {
	return g.sink.URL(word)
}

func (g *Grid) Open(ctx context.Context, word string) (string, error) {
	return g.sink.Submit(ctx, word)
}

func (g *Grid) Limit() int {
	return g.selector.Limit()
}

func (g *Grid) Stats() map[string]int {
	return g.corpus.Stats()
}

// Texts returns the text of each row.
func Texts(rows []Row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Text
	}
	return out
}
