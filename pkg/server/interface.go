/*
Package server implements msgpack IPC for WordGrid hosts.

Clients write msgpack maps to stdin and read one msgpack map per request from
stdout. Requests are handled one at a time, in order. Every response echoes
the request id and includes the handling time in microseconds where useful.

# Actions

List the letter grid:

	{"id": "r1", "action": "letters"}
	{"id": "r1", "s": [{"w": "A", "a": {"k": "click", "l": "Look up words"}}, ...], "c": 26, "t": 12}

Sample words under a letter. "l" is optional and defaults to the configured limit:

	{"id": "r2", "action": "words", "letter": "a", "l": 5}
	{"id": "r2", "letter": "A", "s": [{"w": "about", ...}, ...], "c": 5, "t": 40}

Resolve a word to its search URL. With "open" set the URL is also handed to
the selection sink:

	{"id": "r3", "action": "open", "word": "about", "open": true}
	{"id": "r3", "url": "https://www.google.com/search?q=about", "opened": true}

Read or change the default limit. A changed limit is saved to the config file:

	{"id": "r4", "action": "config", "l": 7}
	{"id": "r4", "status": "ok", "limit": 7, "prefix": "https://..."}

Failures return an error message and an HTTP-like code:

	{"id": "r5", "e": "unknown action: fly", "c": 400}
*/
package server

import "github.com/bastiangx/wordgrid/pkg/a11y"

const (
	ActionLetters = "letters"
	ActionWords   = "words"
	ActionOpen    = "open"
	ActionConfig  = "config"
)

// Request is the union of all request shapes; Action selects which fields matter.
type Request struct {
	ID     string `msgpack:"id"`
	Action string `msgpack:"action"`
	Letter string `msgpack:"letter,omitempty"`
	Limit  *int   `msgpack:"l,omitempty"`
	Word   string `msgpack:"word,omitempty"`
	Open   bool   `msgpack:"open,omitempty"`
}

// Item is a rendered row
type Item struct {
	Text   string      `msgpack:"w"`
	Action a11y.Action `msgpack:"a"`
}

// LettersResponse lists the grid
type LettersResponse struct {
	ID        string `msgpack:"id"`
	Items     []Item `msgpack:"s"`
	Count     int    `msgpack:"c"`
	TimeTaken int64  `msgpack:"t"`
}

// WordsResponse lists the words sampled under a letter
type WordsResponse struct {
	ID        string `msgpack:"id"`
	Letter    string `msgpack:"letter"`
	Items     []Item `msgpack:"s"`
	Count     int    `msgpack:"c"`
	TimeTaken int64  `msgpack:"t"`
}

// OpenResponse carries the search URL for a word
type OpenResponse struct {
	ID     string `msgpack:"id"`
	URL    string `msgpack:"url"`
	Opened bool   `msgpack:"opened"`
}

// ConfigResponse reports the active settings
type ConfigResponse struct {
	ID     string `msgpack:"id"`
	Status string `msgpack:"status"`
	Limit  int    `msgpack:"limit"`
	Prefix string `msgpack:"prefix"`
}

// ErrorResponse holds basic error information
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
