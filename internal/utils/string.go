package utils

import (
	"strconv"
	"strings"
)

// HasPrefixIgnoreCase checks if string has prefix case-insensitively
func HasPrefixIgnoreCase(s, prefix string) bool {
	return strings.HasPrefix(strings.ToLower(s), strings.ToLower(prefix))
}

// FormatWithCommas formats an integer with comma separators
func FormatWithCommas(n int) string {
	str := strconv.Itoa(n)
	neg := strings.HasPrefix(str, "-")
	if neg {
		str = str[1:]
	}
	if len(str) <= 3 {
		if neg {
			return "-" + str
		}
		return str
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, c := range str {
		if i > 0 && (len(str)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	return b.String()
}

// Rows splits items into rows of at most columns items each.
func Rows[T any](items []T, columns int) [][]T {
	if columns < 1 {
		columns = 1
	}
	rows := make([][]T, 0, (len(items)+columns-1)/columns)
	for start := 0; start < len(items); start += columns {
		end := min(start+columns, len(items))
		rows = append(rows, items[start:end])
	}
	return rows
}
