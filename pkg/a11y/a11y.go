// Package a11y describes selectable rows for assistive technology.
//
// Hosts attach an Action to each rendered row. Screen readers announce the
// label in place of the generic activation hint.
package a11y

import "github.com/bastiangx/wordgrid/pkg/letters"

const (
	KindClick = "click"

	LookUpWords = "Look up words"
	LookUpWord  = "Look up word"
)

// Action is the custom click action announced for a row.
type Action struct {
	Kind  string `json:"kind" msgpack:"k"`
	Label string `json:"label" msgpack:"l"`
}

// DescribeLetter returns the action for a letter on the grid.
func DescribeLetter(letters.Letter) Action {
	return Action{Kind: KindClick, Label: LookUpWords}
}

// DescribeWord returns the action for a word in a letter's list.
func DescribeWord(string) Action {
	return Action{Kind: KindClick, Label: LookUpWord}
}

// Announcement is the phrase read out for a focused row.
func Announcement(a Action) string {
	if a.Label == "" {
		return "Double tap to activate"
	}
	return "Double tap to " + lowerFirst(a.Label)
}

func lowerFirst(s string) string {
	if s == "" || s[0] < 'A' || s[0] > 'Z' {
		return s
	}
	return string(s[0]+'a'-'A') + s[1:]
}
