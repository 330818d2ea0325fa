package pdf

import (
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Metadata describes the document information fields stamped onto an
// assembled chunk.
type Metadata struct {
	Title    string
	Subject  string
	Creator  string
	Producer string
}

// Assembler writes page ranges of a source PDF into new standalone documents.
type Assembler struct {
	conf *model.Configuration
}

// NewAssembler returns an Assembler with the default pdfcpu configuration.
func NewAssembler() *Assembler {
	return &Assembler{conf: model.NewDefaultConfiguration()}
}

// WriteChunk copies pages [startPage, endPage) (0-based, end-exclusive) of
// the PDF at srcPath into a new document at outPath, stamps meta onto its
// information dictionary, and adds a single outline entry labelled label
// pointing at the new document's first page. The source file is only read.
func (a *Assembler) WriteChunk(srcPath, outPath string, startPage, endPage int, label string, meta Metadata) error {
	if startPage >= endPage {
		return fmt.Errorf("empty page range [%d, %d)", startPage, endPage)
	}

	// pdfcpu page selections are 1-based and inclusive.
	pages := []string{fmt.Sprintf("%d-%d", startPage+1, endPage)}
	if err := api.TrimFile(srcPath, outPath, pages, a.conf); err != nil {
		return fmt.Errorf("extract pages %s: %w", pages[0], err)
	}

	if err := a.stampMetadata(outPath, meta); err != nil {
		return fmt.Errorf("stamp metadata: %w", err)
	}

	bms := []pdfcpu.Bookmark{{Title: label, PageFrom: 1}}
	if err := api.AddBookmarksFile(outPath, "", bms, true, a.conf); err != nil {
		return fmt.Errorf("add bookmark: %w", err)
	}

	return nil
}

// stampMetadata rewrites the document information fields of the PDF at path.
func (a *Assembler) stampMetadata(path string, meta Metadata) error {
	ctx, err := api.ReadContextFile(path)
	if err != nil {
		return err
	}

	ctx.Title = meta.Title
	ctx.Subject = meta.Subject
	ctx.Creator = meta.Creator
	ctx.Producer = meta.Producer

	return api.WriteContextFile(ctx, path)
}
