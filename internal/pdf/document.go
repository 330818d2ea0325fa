// Package pdf wraps the PDF libraries behind the two narrow surfaces the
// splitter needs: a read-only source document for text extraction, and an
// assembler that writes page ranges into new documents.
package pdf

import (
	"fmt"
	"os"

	pdflib "github.com/ledongthuc/pdf"
)

// Document is a read-only handle over the pages of a source PDF.
// It is never mutated and may be reused across all chunk writes.
type Document struct {
	path   string
	file   *os.File
	reader *pdflib.Reader
}

// Open opens the PDF at path for page counting and text extraction.
func Open(path string) (*Document, error) {
	f, r, err := pdflib.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	return &Document{path: path, file: f, reader: r}, nil
}

// Path returns the path the document was opened from.
func (d *Document) Path() string { return d.path }

// PageCount returns the number of pages in the document.
func (d *Document) PageCount() int { return d.reader.NumPage() }

// PageText extracts the plain text of a 1-based page. The underlying parser
// panics on some malformed content streams, so panics surface as errors here
// and extraction stays best-effort.
func (d *Document) PageText(pageNum int) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("extract page %d: %v", pageNum, r)
		}
	}()

	page := d.reader.Page(pageNum)
	if page.V.IsNull() {
		return "", fmt.Errorf("page %d has no content", pageNum)
	}

	text, err = page.GetPlainText(nil)
	if err != nil {
		return "", fmt.Errorf("extract page %d: %w", pageNum, err)
	}
	return text, nil
}

// Close releases the underlying file handle.
func (d *Document) Close() error { return d.file.Close() }
