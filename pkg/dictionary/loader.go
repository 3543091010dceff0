// Package dictionary provides the static word corpus.
//
// A default list is compiled into the binary. Hosts may point at an external
// file instead; plain text, XML string-array resources and msgpack lists are
// understood. Loaders keep corpus order and duplicates, trim whitespace and
// drop empty entries.
package dictionary

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// ResourceName is the string-array read from XML resources.
const ResourceName = "words"

//go:embed words.xml
var bundled []byte

// Default returns the bundled word list.
func Default() ([]string, error) {
	words, err := ReadXML(bytes.NewReader(bundled))
	if err != nil {
		return nil, fmt.Errorf("bundled corpus: %w", err)
	}
	return words, nil
}

// LoadOrDefault loads path, or the bundled list when path is empty.
func LoadOrDefault(path string) ([]string, error) {
	if path == "" {
		return Default()
	}
	return Load(path)
}

// Load reads a corpus file, picking the parser from its extension.
func Load(path string) ([]string, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	if err := ValidateFile(path, format); err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus %s: %w", path, err)
	}
	defer file.Close()

	var words []string
	switch format {
	case FormatText:
		words, err = ReadText(file)
	case FormatXML:
		words, err = ReadXML(file)
	case FormatMsgpack:
		words, err = ReadMsgpack(file)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus %s: %w", path, err)
	}

	log.Debugf("Loaded %d words from %s (%s)", len(words), path, format)
	return words, nil
}

// ReadText reads one word per line. Blank lines and lines starting with #
// are skipped.
func ReadText(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// ReadXML reads the items of the "words" string-array.
func ReadXML(r io.Reader) ([]string, error) {
	doc, err := xmlquery.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing XML: %w", err)
	}
	nodes, err := xmlquery.QueryAll(doc, fmt.Sprintf("//string-array[@name='%s']/item", ResourceName))
	if err != nil {
		return nil, fmt.Errorf("xpath query failed: %w", err)
	}
	words := make([]string, 0, len(nodes))
	for _, n := range nodes {
		if w := strings.TrimSpace(n.InnerText()); w != "" {
			words = append(words, w)
		}
	}
	return words, nil
}

// ReadMsgpack decodes a msgpack array of strings.
func ReadMsgpack(r io.Reader) ([]string, error) {
	var raw []string
	if err := msgpack.NewDecoder(r).Decode(&raw); err != nil {
		return nil, err
	}
	words := make([]string, 0, len(raw))
	for _, w := range raw {
		if w = strings.TrimSpace(w); w != "" {
			words = append(words, w)
		}
	}
	return words, nil
}

// WriteMsgpack writes words as a msgpack array.
func WriteMsgpack(w io.Writer, words []string) error {
	if words == nil {
		words = []string{}
	}
	return msgpack.NewEncoder(w).Encode(words)
}
