package dictionary

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// ErrUnknownFormat is returned for files whose format cannot be determined.
var ErrUnknownFormat = errors.New("unknown corpus format")

// Format represents the supported corpus file formats
type Format int

const (
	FormatUnknown Format = iota
	FormatText           // one word per line
	FormatXML            // Android style <string-array> resource
	FormatMsgpack        // msgpack encoded []string
)

// FormatInfo contains metadata about a corpus file format
type FormatInfo struct {
	Format      Format
	Description string
	Extensions  []string
	MinSize     int64
}

var supportedFormats = map[Format]FormatInfo{
	FormatText: {
		Format:      FormatText,
		Description: "Plain Text Word List",
		Extensions:  []string{".txt"},
		MinSize:     1,
	},
	FormatXML: {
		Format:      FormatXML,
		Description: "XML String Array Resource",
		Extensions:  []string{".xml"},
		MinSize:     len64("<resources/>"),
	},
	FormatMsgpack: {
		Format:      FormatMsgpack,
		Description: "Msgpack Word List",
		Extensions:  []string{".msgpack", ".bin"},
		MinSize:     1, // an empty array is a single byte
	},
}

func len64(s string) int64 {
	return int64(len(s))
}

func (f Format) String() string {
	if info, ok := supportedFormats[f]; ok {
		return info.Description
	}
	return "Unknown"
}

// DetectFormat maps a file extension to its Format.
func DetectFormat(filename string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	for format, info := range supportedFormats {
		for _, e := range info.Extensions {
			if e == ext {
				return format, nil
			}
		}
	}
	return FormatUnknown, fmt.Errorf("%w: %s", ErrUnknownFormat, filename)
}

// ValidateFile checks that a file exists, is large enough and carries an
// extension of the expected format.
func ValidateFile(filename string, expected Format) error {
	info, ok := supportedFormats[expected]
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnknownFormat, expected)
	}

	stat, err := os.Stat(filename)
	if err != nil {
		return fmt.Errorf("failed to stat file %s: %w", filename, err)
	}
	if stat.IsDir() {
		return fmt.Errorf("%s is a directory", filename)
	}
	if stat.Size() < info.MinSize {
		return fmt.Errorf("file %s is too small (%d bytes) for format %s (minimum: %d bytes)",
			filename, stat.Size(), info.Description, info.MinSize)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	for _, e := range info.Extensions {
		if ext == e {
			log.Debugf("Corpus file %s validated as %s", filename, info.Description)
			return nil
		}
	}
	return fmt.Errorf("file %s has invalid extension %s for format %s (expected: %v)",
		filename, ext, info.Description, info.Extensions)
}

// GetFormatInfo returns information about a specific format
func GetFormatInfo(format Format) (FormatInfo, bool) {
	info, ok := supportedFormats[format]
	return info, ok
}
