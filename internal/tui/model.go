// Package tui is a terminal host for the letter grid built on bubbletea.
//
// The first screen is the A to Z grid. Selecting a letter shows its sampled
// words; selecting a word hands it to the selection sink. The status line
// carries the assistive announcement of the focused row.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/bastiangx/wordgrid/internal/utils"
	"github.com/bastiangx/wordgrid/pkg/a11y"
	"github.com/bastiangx/wordgrid/pkg/grid"
	"github.com/bastiangx/wordgrid/pkg/letters"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type screen int

const (
	screenLetters screen = iota
	screenWords
)

// openedMsg is delivered when the sink has handled a word.
type openedMsg struct {
	url string
	err error
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	focusStyle  = cellStyle.Reverse(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Model is the bubbletea model.
type Model struct {
	ctx     context.Context
	grid    grid.Service
	columns int

	screen  screen
	letters []grid.Row
	cursor  int

	letter     letters.Letter
	words      []grid.Row
	wordCursor int

	status string
	err    error
}

// New returns a model showing the letter grid.
func New(ctx context.Context, g grid.Service, columns int) Model {
	if columns < 1 {
		columns = 1
	}
	return Model{
		ctx:     ctx,
		grid:    g,
		columns: columns,
		letters: g.Letters(),
	}
}

// Run starts the program and blocks until the user quits.
func Run(ctx context.Context, g grid.Service, columns int) error {
	_, err := tea.NewProgram(New(ctx, g, columns), tea.WithContext(ctx), tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case openedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.status = ""
		} else {
			m.err = nil
			m.status = "Opened " + msg.url
		}
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) {
			return m, tea.Quit
		}
		if m.screen == screenLetters {
			return m.updateLetters(msg)
		}
		return m.updateWords(msg)
	}
	return m, nil
}

func (m Model) updateLetters(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	last := len(m.letters) - 1
	switch {
	case key.Matches(msg, keys.Left):
		m.cursor = max(m.cursor-1, 0)
	case key.Matches(msg, keys.Right):
		m.cursor = min(m.cursor+1, last)
	case key.Matches(msg, keys.Up):
		if m.cursor-m.columns >= 0 {
			m.cursor -= m.columns
		}
	case key.Matches(msg, keys.Down):
		if m.cursor+m.columns <= last {
			m.cursor += m.columns
		}
	case key.Matches(msg, keys.Select):
		letter, err := letters.Parse(m.letters[m.cursor].Text)
		if err != nil {
			m.err = err
			return m, nil
		}
		m = m.showWords(letter)
	}
	return m, nil
}

func (m Model) updateWords(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		m.wordCursor = max(m.wordCursor-1, 0)
	case key.Matches(msg, keys.Down):
		m.wordCursor = min(m.wordCursor+1, max(len(m.words)-1, 0))
	case key.Matches(msg, keys.Shuffle):
		m = m.showWords(m.letter)
	case key.Matches(msg, keys.Back):
		m.screen = screenLetters
		m.words = nil
		m.status = ""
		m.err = nil
	case key.Matches(msg, keys.Select):
		if len(m.words) == 0 {
			return m, nil
		}
		return m, m.open(m.words[m.wordCursor].Text)
	}
	return m, nil
}

func (m Model) showWords(letter letters.Letter) Model {
	m.screen = screenWords
	m.letter = letter
	m.words = m.grid.Words(letter)
	m.wordCursor = 0
	m.status = ""
	m.err = nil
	return m
}

func (m Model) open(word string) tea.Cmd {
	ctx, g := m.ctx, m.grid
	return func() tea.Msg {
		u, err := g.Open(ctx, word)
		return openedMsg{url: u, err: err}
	}
}

// focused returns the row under the cursor, if any.
func (m Model) focused() (grid.Row, bool) {
	if m.screen == screenLetters {
		return m.letters[m.cursor], true
	}
	if len(m.words) == 0 {
		return grid.Row{}, false
	}
	return m.words[m.wordCursor], true
}

func (m Model) View() string {
	var b strings.Builder

	if m.screen == screenLetters {
		b.WriteString(titleStyle.Render("WordGrid") + "\n\n")
		for r, row := range utils.Rows(m.letters, m.columns) {
			cells := make([]string, len(row))
			for c, cell := range row {
				style := cellStyle
				if r*m.columns+c == m.cursor {
					style = focusStyle
				}
				cells[c] = style.Render(cell.Text)
			}
			b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...) + "\n")
		}
	} else {
		b.WriteString(titleStyle.Render(fmt.Sprintf("Words for %s", m.letter)) + "\n\n")
		if len(m.words) == 0 {
			b.WriteString(statusStyle.Render("No words for this letter") + "\n")
		}
		for i, w := range m.words {
			style := cellStyle
			if i == m.wordCursor {
				style = focusStyle
			}
			b.WriteString(style.Render(w.Text) + "\n")
		}
	}

	b.WriteString("\n")
	if row, ok := m.focused(); ok {
		b.WriteString(statusStyle.Render(row.Text+": "+a11y.Announcement(row.Action)) + "\n")
	}
	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()) + "\n")
	} else if m.status != "" {
		b.WriteString(statusStyle.Render(m.status) + "\n")
	}
	b.WriteString(helpStyle.Render(keys.helpLine(m.screen == screenWords)))
	return b.String()
}
