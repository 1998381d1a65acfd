// File: argsparser/helper.go

package argsparser

import "strings"

const (
	// DefaultStripChars is the character set trimmed from token names and values
	DefaultStripChars = " "
	// DefaultSeparator splits list values when no separator is given
	DefaultSeparator = ","
)

// Strip removes any of the characters in chars from both ends of source.
// Characters inside source are kept, e.g. Strip("  He llo  ", " ") is "He llo".
func Strip(source, chars string) string {
	return strings.Trim(source, chars)
}

// Split breaks source around every occurrence of sep.
// Runs of sep, including leading and trailing ones, never produce empty elements:
// Split("12Hello12there!", "12") is ["Hello", "there!"] and Split("  ", " ") is empty.
// An empty sep leaves source whole.
func Split(source, sep string) []string {
	if sep == "" {
		if source == "" {
			return nil
		}
		return []string{source}
	}

	var parts []string
	for {
		for strings.HasPrefix(source, sep) {
			source = source[len(sep):]
		}
		if source == "" {
			return parts
		}

		before, after, found := strings.Cut(source, sep)
		parts = append(parts, before)
		if !found {
			return parts
		}
		source = after
	}
}
