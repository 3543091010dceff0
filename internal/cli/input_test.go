package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/bastiangx/wordgrid/pkg/grid"
	"github.com/bastiangx/wordgrid/pkg/search"
	"github.com/bastiangx/wordgrid/pkg/words"
	"github.com/charmbracelet/log"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

func runSession(t *testing.T, input string) (string, *search.Recorder) {
	t.Helper()
	rec := &search.Recorder{}
	corpus := words.NewCorpus([]string{"Ant", "Apple", "Banana"})
	g := grid.New(corpus, words.NewSelector(words.WithSeed(1)), search.NewSink("", rec))

	var out bytes.Buffer
	h := NewInputHandler(g, 6, strings.NewReader(input), &out)
	if err := h.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	return out.String(), rec
}

func TestLetterGrid(t *testing.T) {
	out, _ := runSession(t, "")
	for _, want := range []string{"[A] [B] [C] [D] [E] [F]", "[Y] [Z]"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestSelectAndOpen(t *testing.T) {
	out, rec := runSession(t, "a\n2\nquit\n")

	if !strings.Contains(out, "Words for 'A'") {
		t.Errorf("word list not shown:\n%s", out)
	}
	urls := rec.URLs()
	// words are sorted, so the second entry is Apple
	if len(urls) != 1 || urls[0] != "https://www.google.com/search?q=Apple" {
		t.Errorf("unexpected opened urls %v", urls)
	}
}

func TestInvalidInput(t *testing.T) {
	out, rec := runSession(t, "ab\nb\n9\nx\n")

	if !strings.Contains(out, "Pick a letter") {
		t.Errorf("expected letter error:\n%s", out)
	}
	if !strings.Contains(out, "Pick a number from 1 to 1") {
		t.Errorf("expected number error:\n%s", out)
	}
	if len(rec.URLs()) != 0 {
		t.Errorf("nothing should be opened: %v", rec.URLs())
	}
}

func TestEmptyLetterAndBack(t *testing.T) {
	out, _ := runSession(t, "q\nback\nhelp\nexit\nz\n")

	if !strings.Contains(out, "No words found for 'Q'") {
		t.Errorf("expected empty list warning:\n%s", out)
	}
	if strings.Count(out, "type a letter") != 2 {
		t.Errorf("expected the grid twice:\n%s", out)
	}
	if strings.Contains(out, "'Z'") {
		t.Errorf("input after exit should be ignored:\n%s", out)
	}
}

func TestQuitAndNoTrailingNewline(t *testing.T) {
	out, _ := runSession(t, "b")
	if !strings.Contains(out, "Words for 'B'") {
		t.Errorf("last line without newline should be handled:\n%s", out)
	}
}
