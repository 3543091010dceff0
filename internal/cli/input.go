// Package cli is a line based host for the letter grid, handy for testing
// and debugging without a terminal UI.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/bastiangx/wordgrid/internal/utils"
	"github.com/bastiangx/wordgrid/pkg/grid"
	"github.com/bastiangx/wordgrid/pkg/letters"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

var wordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))

// InputHandler reads commands line by line. On the grid a letter shows its
// words; on a word list a number opens that word, "r" reshuffles and "b"
// goes back. "quit" exits from anywhere.
type InputHandler struct {
	grid    grid.Service
	columns int
	in      io.Reader
	out     *log.Logger

	letter  letters.Letter
	current []grid.Row
}

// NewInputHandler creates a handler reading from in and printing to out
func NewInputHandler(g grid.Service, columns int, in io.Reader, out io.Writer) *InputHandler {
	printer := log.NewWithOptions(out, log.Options{
		ReportTimestamp: false,
		Level:           log.InfoLevel,
	})
	return &InputHandler{
		grid:    g,
		columns: columns,
		in:      in,
		out:     printer,
	}
}

// Start runs the input loop until quit or end of input.
func (h *InputHandler) Start(ctx context.Context) error {
	h.out.Print("WordGrid CLI")
	h.printLetters()

	reader := bufio.NewReader(h.in)
	for {
		if ctx.Err() != nil {
			return nil
		}
		line, err := reader.ReadString('\n')
		line = strings.TrimSpace(line)
		if line != "" {
			if !h.handleInput(ctx, line) {
				return nil
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

// handleInput processes one line. It returns false when the user quits.
func (h *InputHandler) handleInput(ctx context.Context, input string) bool {
	switch strings.ToLower(input) {
	case "quit", "exit":
		return false
	case "?", "help":
		h.printHelp()
		return true
	}

	if h.current == nil {
		h.selectLetter(input)
		return true
	}

	switch strings.ToLower(input) {
	case "b", "back":
		h.current = nil
		h.printLetters()
	case "r":
		h.showWords(h.letter)
	default:
		h.openWord(ctx, input)
	}
	return true
}

func (h *InputHandler) selectLetter(input string) {
	letter, err := letters.Parse(input)
	if err != nil {
		h.out.Errorf("Pick a letter from A to Z: %v", err)
		return
	}
	h.showWords(letter)
}

func (h *InputHandler) showWords(letter letters.Letter) {
	start := time.Now()
	rows := h.grid.Words(letter)
	log.Debugf("Took [ %v ] for letter %s", time.Since(start), letter)

	h.letter = letter
	h.current = rows
	if len(rows) == 0 {
		h.out.Warnf("No words found for '%s' (b to go back)", letter)
		return
	}

	h.out.Printf("Words for '%s':", letter)
	for i, r := range rows {
		h.out.Printf("%2d. %s", i+1, wordStyle.Render(r.Text))
	}
	h.out.Print("number to look up, r to reshuffle, b to go back")
}

func (h *InputHandler) openWord(ctx context.Context, input string) {
	n, err := strconv.Atoi(input)
	if err != nil || n < 1 || n > len(h.current) {
		h.out.Errorf("Pick a number from 1 to %d", len(h.current))
		return
	}
	word := h.current[n-1].Text
	u, err := h.grid.Open(ctx, word)
	if err != nil {
		h.out.Errorf("Could not open %s: %v", word, err)
		return
	}
	h.out.Printf("Opened %s", u)
}

func (h *InputHandler) printLetters() {
	rows := utils.Rows(h.grid.Letters(), h.columns)
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, r := range row {
			cells[i] = fmt.Sprintf("[%s]", r.Text)
		}
		h.out.Print(strings.Join(cells, " "))
	}
	h.out.Print("type a letter and press Enter (quit to exit):")
}

func (h *InputHandler) printHelp() {
	h.out.Print("letter  show words for a letter")
	h.out.Print("number  look up a word from the list")
	h.out.Print("r       reshuffle the list")
	h.out.Print("b       back to the letters")
	h.out.Print("quit    exit")
}
