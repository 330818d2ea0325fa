// Package fsutil provides filesystem naming helpers.
package fsutil

import (
	"regexp"
	"strings"
)

// DefaultMaxTitleLength bounds sanitized filename fragments.
const DefaultMaxTitleLength = 50

var (
	illegalChars   = regexp.MustCompile(`[<>:"/\\|?*]`)
	whitespaceRuns = regexp.MustCompile(`\s+`)
)

// SanitizeTitle maps an arbitrary chapter title to a filename-safe fragment:
// characters illegal in filenames become underscores, whitespace runs collapse
// to single spaces, double periods collapse to one, and results longer than
// maxLength are truncated back to the last word boundary. The cut partial word
// is only kept when the truncated prefix contains no whitespace at all.
// A maxLength below 1 means DefaultMaxTitleLength.
func SanitizeTitle(title string, maxLength int) string {
	if maxLength < 1 {
		maxLength = DefaultMaxTitleLength
	}

	s := illegalChars.ReplaceAllString(title, "_")
	s = strings.TrimSpace(whitespaceRuns.ReplaceAllString(s, " "))
	s = strings.ReplaceAll(s, "..", ".")

	if r := []rune(s); len(r) > maxLength {
		s = string(r[:maxLength])
		if i := strings.LastIndex(s, " "); i > 0 {
			s = s[:i]
		}
	}
	return s
}
