package toc

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
)

// DefaultScanPages bounds how many leading pages are searched for a TOC.
const DefaultScanPages = 25

// indicators are the keywords whose presence anywhere in the scanned text
// suggests a table of contents is worth parsing. The check is a plain
// substring match on lowercased text and is deliberately permissive.
var indicators = []string{"table of contents", "contents", "index", "chapter"}

// Source is the read-only view of a document the locator needs.
type Source interface {
	PageCount() int
	// PageText returns the plain text of a 1-based page.
	PageText(pageNum int) (string, error)
}

// Locator finds table-of-contents entries in the opening pages of a document.
type Locator struct {
	// ScanPages is the maximum number of leading pages to scan.
	// Zero means DefaultScanPages.
	ScanPages int
	Logger    *slog.Logger
}

// Locate scans the first pages of src for a table of contents and returns the
// detected entries sorted ascending by page with exact duplicates removed.
// It returns nil when no TOC indicator keyword is present in the scanned text.
// Per-page extraction failures are logged and contribute no text.
func (l *Locator) Locate(src Source) []Entry {
	log := l.Logger
	if log == nil {
		log = slog.Default()
	}

	scan := l.ScanPages
	if scan <= 0 {
		scan = DefaultScanPages
	}
	if n := src.PageCount(); n < scan {
		scan = n
	}

	var blob strings.Builder
	for page := 1; page <= scan; page++ {
		text, err := src.PageText(page)
		if err != nil {
			log.Warn("could not extract page text", "page", page, "err", err)
			continue
		}
		// Page markers make the accumulated blob readable when debugging;
		// they carry no weight in matching.
		fmt.Fprintf(&blob, "\n--- Page %d ---\n%s\n", page, text)
	}

	lower := strings.ToLower(blob.String())
	hasIndicator := false
	for _, ind := range indicators {
		if strings.Contains(lower, ind) {
			hasIndicator = true
			break
		}
	}
	if !hasIndicator {
		log.Warn("no table of contents indicators found in first pages", "scanned", scan)
		return nil
	}

	return Parse(blob.String())
}

// Parse runs the pattern matcher over every line of text, removes exact
// (title, page) duplicates and sorts the entries ascending by page number.
// Entries sharing a page keep their first-seen relative order.
func Parse(text string) []Entry {
	seen := make(map[Entry]struct{})
	var entries []Entry

	for _, line := range strings.Split(text, "\n") {
		e, ok := Match(line)
		if !ok {
			continue
		}
		if _, dup := seen[e]; dup {
			continue
		}
		seen[e] = struct{}{}
		entries = append(entries, e)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Page < entries[j].Page
	})
	return entries
}
