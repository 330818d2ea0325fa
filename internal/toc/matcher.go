package toc

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	// minPage and maxPage bound plausible page numbers; anything outside is
	// treated as noise rather than a TOC entry.
	minPage = 1
	maxPage = 10000

	// minLineLen rejects lines too short to be a plausible TOC entry.
	minLineLen = 5
)

// tocPatterns are tried in priority order. The first pattern that structurally
// matches a line decides its fate: a valid page number yields an entry, an
// invalid one disqualifies the whole line. Two-group patterns capture
// (title, page); three-group patterns capture (number, title, page) and emit
// the number as part of the title.
var tocPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(.+?)\s+\.{2,}\s*(\d+)`),             // title ...... page (dot leader)
	regexp.MustCompile(`(.+?)\s+(\d+)$`),                     // title page (page at end of line)
	regexp.MustCompile(`(\d+\.?\d*)\s+(.+?)\s+(\d+)`),        // number title page
	regexp.MustCompile(`Chapter\s+(\d+)[:\s]+(.+?)\s+(\d+)`), // Chapter N: title page
	regexp.MustCompile(`(\d+\.\d+)\s+(.+?)\s+(\d+)`),         // 1.1 title page (decimal section number)
}

// Match applies the pattern battery to a single line of extracted text.
// It returns the detected entry and true, or the zero Entry and false when
// the line does not look like a TOC entry.
func Match(line string) (Entry, bool) {
	line = strings.TrimSpace(line)
	if utf8.RuneCountInString(line) < minLineLen {
		return Entry{}, false
	}

	for _, re := range tocPatterns {
		m := re.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		var title, pageStr string
		switch len(m) {
		case 3:
			title, pageStr = m[1], m[2]
		case 4:
			title, pageStr = m[1]+" "+m[2], m[3]
		}

		page, err := strconv.Atoi(pageStr)
		if err != nil || page < minPage || page > maxPage {
			// First match wins even when it is bogus: an implausible page
			// number rejects the line, it does not fall through to the
			// next pattern.
			return Entry{}, false
		}
		return Entry{Title: strings.TrimSpace(title), Page: page}, true
	}

	return Entry{}, false
}
