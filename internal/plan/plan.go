// Package plan converts detected TOC entries or a raw page count into the
// concrete page ranges that drive document assembly.
package plan

import (
	"fmt"

	"github.com/newjordan/pdfchunk/internal/toc"
)

// DefaultChunkSize is the fixed-size chunk size in pages, also used by the
// chapter-mode fallback when no table of contents is found.
const DefaultChunkSize = 99

// Chunk is one planned output document: a contiguous page range with a
// 1-based sequential index. StartPage is 0-based inclusive, EndPage is
// 0-based exclusive, and StartPage < EndPage always holds.
type Chunk struct {
	Index     int
	Title     string
	StartPage int
	EndPage   int
}

// Pages returns the number of pages in the chunk.
func (c Chunk) Pages() int { return c.EndPage - c.StartPage }

// FromTOC converts a sorted, de-duplicated TOC entry list into contiguous,
// non-overlapping page ranges. Each entry runs until the page before the next
// entry's start, the last one until the end of the document. Entries whose
// computed range is empty (degenerate or overlapping starts) are dropped and
// the surviving chunks renumbered from 1; the second return value reports how
// many were dropped.
func FromTOC(entries []toc.Entry, totalPages int) ([]Chunk, int) {
	var chunks []Chunk
	dropped := 0

	for i, e := range entries {
		endRaw := totalPages
		if i+1 < len(entries) {
			endRaw = entries[i+1].Page - 1
		}

		// Convert 1-based inclusive boundaries to 0-based half-open.
		start := e.Page - 1
		if start < 0 {
			start = 0
		}
		end := endRaw
		if end > totalPages {
			end = totalPages
		}

		if start >= end {
			dropped++
			continue
		}

		chunks = append(chunks, Chunk{
			Index:     len(chunks) + 1,
			Title:     e.Title,
			StartPage: start,
			EndPage:   end,
		})
	}

	return chunks, dropped
}

// FixedSize splits totalPages into ceil(totalPages/size) uniform ranges; only
// the last range may be shorter. Chunk titles describe the covered pages in
// 1-based form. Returns nil when totalPages is zero or size is below 1.
func FixedSize(totalPages, size int) []Chunk {
	if totalPages <= 0 || size < 1 {
		return nil
	}

	numChunks := (totalPages + size - 1) / size
	chunks := make([]Chunk, 0, numChunks)

	for k := 0; k < numChunks; k++ {
		start := k * size
		end := start + size
		if end > totalPages {
			end = totalPages
		}
		chunks = append(chunks, Chunk{
			Index:     k + 1,
			Title:     fmt.Sprintf("Chunk %03d (Pages %d-%d)", k+1, start+1, end),
			StartPage: start,
			EndPage:   end,
		})
	}

	return chunks
}
