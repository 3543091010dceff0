// Package search hands a chosen word to an external browse facility.
//
// Building the query URL is pure; opening it is delegated to an Opener so
// hosts decide whether a browser is launched, a redirect is sent, or the URL
// is only recorded.
package search

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// DefaultPrefix is prepended to the query-escaped word.
const DefaultPrefix = "https://www.google.com/search?q="

var (
	ErrEmptyWord = errors.New("empty word")
	ErrLaunch    = errors.New("failed to launch browser")
)

// QueryURL returns the search URL for word. An empty prefix uses DefaultPrefix.
func QueryURL(prefix, word string) string {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return prefix + url.QueryEscape(word)
}

// Opener opens a URL outside the process.
type Opener interface {
	Open(ctx context.Context, url string) error
}

// Recorder is an Opener that only remembers what it was asked to open.
type Recorder struct {
	mu   sync.Mutex
	urls []string
}

// Open records url.
func (r *Recorder) Open(_ context.Context, url string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.urls = append(r.urls, url)
	return nil
}

// URLs returns the recorded URLs in order.
func (r *Recorder) URLs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.urls...)
}

// Sink is the selection sink: it turns a word into a URL and opens it.
type Sink struct {
	prefix string
	opener Opener
}

// NewSink returns a Sink. A nil opener records URLs without opening them.
func NewSink(prefix string, opener Opener) *Sink {
	if opener == nil {
		opener = &Recorder{}
	}
	return &Sink{prefix: prefix, opener: opener}
}

// URL returns the search URL for word without opening it.
func (s *Sink) URL(word string) string {
	return QueryURL(s.prefix, word)
}

// Submit opens the search URL for word and returns it.
func (s *Sink) Submit(ctx context.Context, word string) (string, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return "", ErrEmptyWord
	}
	u := s.URL(word)
	log.Debug("Opening search", "word", word, "url", u)
	if err := s.opener.Open(ctx, u); err != nil {
		return u, fmt.Errorf("open %s: %w", u, err)
	}
	return u, nil
}
