package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/bastiangx/wordgrid/pkg/grid"
	"github.com/bastiangx/wordgrid/pkg/search"
	"github.com/bastiangx/wordgrid/pkg/words"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

type failingOpener struct{}

func (failingOpener) Open(context.Context, string) error {
	return errors.New("no browser")
}

func newModel(opener search.Opener) Model {
	corpus := words.NewCorpus([]string{"Ant", "Apple", "Banana", "Bee"})
	g := grid.New(corpus, words.NewSelector(words.WithSeed(1)), search.NewSink("", opener))
	return New(context.Background(), g, 6)
}

func press(t *testing.T, m Model, msgs ...tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(Model)
	}
	return m, cmd
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	down  = tea.KeyMsg{Type: tea.KeyDown}
	up    = tea.KeyMsg{Type: tea.KeyUp}
	right = tea.KeyMsg{Type: tea.KeyRight}
	left  = tea.KeyMsg{Type: tea.KeyLeft}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestGridNavigation(t *testing.T) {
	m := newModel(nil)
	assert.Equal(t, 0, m.cursor)

	m, _ = press(t, m, right, right, down)
	assert.Equal(t, 8, m.cursor) // C moved down one row of six

	m, _ = press(t, m, up, left, left, left)
	assert.Equal(t, 0, m.cursor)

	// the last row only has Y and Z
	m, _ = press(t, m, down, down, down, down, down)
	assert.Equal(t, 24, m.cursor)
	m, _ = press(t, m, right, right, right)
	assert.Equal(t, 25, m.cursor)
}

func TestSelectLetterShowsWords(t *testing.T) {
	m := newModel(nil)
	m, _ = press(t, m, right, enter)

	assert.Equal(t, screenWords, m.screen)
	assert.Equal(t, "B", m.letter.String())
	assert.Equal(t, []string{"Banana", "Bee"}, grid.Texts(m.words))
	assert.Contains(t, m.View(), "Words for B")
	assert.Contains(t, m.View(), "Double tap to look up word")

	m, _ = press(t, m, esc)
	assert.Equal(t, screenLetters, m.screen)
	assert.Equal(t, 1, m.cursor)
	assert.Contains(t, m.View(), "Double tap to look up words")
}

func TestOpenWord(t *testing.T) {
	rec := &search.Recorder{}
	m := newModel(rec)
	m, _ = press(t, m, enter, down)
	m, cmd := press(t, m, enter)
	require.NotNil(t, cmd)

	msg := cmd()
	next, _ := m.Update(msg)
	m = next.(Model)

	assert.Equal(t, []string{"https://www.google.com/search?q=Apple"}, rec.URLs())
	assert.Contains(t, m.View(), "Opened https://www.google.com/search?q=Apple")
}

func TestOpenWordError(t *testing.T) {
	m := newModel(failingOpener{})
	m, _ = press(t, m, enter)
	m, cmd := press(t, m, enter)
	require.NotNil(t, cmd)

	next, _ := m.Update(cmd())
	m = next.(Model)
	assert.Error(t, m.err)
	assert.Contains(t, m.View(), "no browser")
}

func TestEmptyLetter(t *testing.T) {
	m := newModel(nil)
	m, _ = press(t, m, right, right, enter)
	assert.Empty(t, m.words)

	m, cmd := press(t, m, down, enter)
	assert.Nil(t, cmd)
	assert.Equal(t, 0, m.wordCursor)
	assert.Contains(t, m.View(), "No words for this letter")
}

func TestShuffleKeepsShape(t *testing.T) {
	m := newModel(nil)
	m, _ = press(t, m, enter, down, runes("r"))
	assert.Equal(t, 0, m.wordCursor)
	assert.Equal(t, []string{"Ant", "Apple"}, grid.Texts(m.words))
}

func TestQuit(t *testing.T) {
	m := newModel(nil)
	_, cmd := press(t, m, runes("q"))
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)

	_, cmd = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
}

func TestHelpLine(t *testing.T) {
	assert.True(t, strings.Contains(keys.helpLine(false), "enter select"))
	assert.True(t, strings.Contains(keys.helpLine(true), "r reshuffle"))
}
