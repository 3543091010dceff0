// Package letters provides the selectable alphabet shown on the grid.
package letters

import (
	"errors"
	"fmt"
	"strings"
)

const (
	First Letter = 'A'
	Last  Letter = 'Z'
	Count        = int(Last-First) + 1
)

// ErrInvalidLetter is returned by Parse for anything other than a single ASCII letter.
var ErrInvalidLetter = errors.New("invalid letter")

// Letter is a single uppercase ASCII character used as a selection key.
type Letter rune

// String returns the letter as a one character string.
func (l Letter) String() string {
	return string(rune(l))
}

// Lower returns the lowercase form of the letter.
func (l Letter) Lower() string {
	return strings.ToLower(l.String())
}

// Letters returns 'A' through 'Z' in ascending order.
// Every call returns a fresh slice.
func Letters() []Letter {
	list := make([]Letter, 0, Count)
	for l := First; l <= Last; l++ {
		list = append(list, l)
	}
	return list
}

// Contains reports whether l is one of the selectable letters.
func Contains(l Letter) bool {
	return l >= First && l <= Last
}

// Parse validates host input and returns its uppercase Letter.
func Parse(s string) (Letter, error) {
	s = strings.TrimSpace(s)
	if len(s) != 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLetter, s)
	}
	c := s[0]
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	l := Letter(c)
	if !Contains(l) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLetter, s)
	}
	return l, nil
}
