// Package splitter wires TOC detection, chunk planning and document assembly
// into the two end-to-end splitting flows: chapter mode and page mode.
package splitter

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/newjordan/pdfchunk/internal/fsutil"
	"github.com/newjordan/pdfchunk/internal/pdf"
	"github.com/newjordan/pdfchunk/internal/plan"
	"github.com/newjordan/pdfchunk/internal/toc"
)

const (
	creatorName  = "pdfchunk v2.0"
	producerName = "pdfchunk"

	chaptersDirSuffix = "_chapters"
	pagesDirSuffix    = "_pages"
)

// ErrNotFound reports that the input file does not exist.
var ErrNotFound = errors.New("input file not found")

// Options configures a split run.
type Options struct {
	// OutputDir is the base output directory. The actual output directory is
	// this path (or the input's directory when empty) joined with a
	// mode-specific subfolder derived from the input's base name.
	OutputDir string
	// ChunkSize is the page-mode chunk size. Zero means plan.DefaultChunkSize.
	ChunkSize int
	// ScanPages bounds the TOC search. Zero means toc.DefaultScanPages.
	ScanPages int
	// TitleMaxLength bounds sanitized titles in chapter filenames.
	// Zero means fsutil.DefaultMaxTitleLength.
	TitleMaxLength int
	Logger         *slog.Logger
}

// Result reports what a split run produced. Skipped counts chunks that were
// planned but failed to write; the run still succeeds with partial output.
type Result struct {
	OutputDir string
	Planned   int
	Created   []string
	Skipped   int
}

// source is the document handle the splitter reads from.
type source interface {
	PageCount() int
	PageText(pageNum int) (string, error)
	Close() error
}

// writeChunkFunc writes one page range of the source into a new document.
type writeChunkFunc func(srcPath, outPath string, startPage, endPage int, label string, meta pdf.Metadata) error

// Splitter runs the splitting flows. All work is strictly sequential:
// one page, one chunk at a time.
type Splitter struct {
	opts Options
	log  *slog.Logger

	open  func(path string) (source, error)
	write writeChunkFunc
}

// New returns a Splitter backed by the real PDF reader and assembler.
func New(opts Options) *Splitter {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	asm := pdf.NewAssembler()
	return &Splitter{
		opts:  opts,
		log:   log,
		open:  func(path string) (source, error) { return pdf.Open(path) },
		write: asm.WriteChunk,
	}
}

// SplitByChapters splits the PDF at inputPath into chapters detected from its
// table of contents. When no usable TOC is found it falls back to fixed-size
// page chunks at the default size, so chapter mode never fails outright for
// lack of a TOC.
func (s *Splitter) SplitByChapters(inputPath string) (*Result, error) {
	if _, err := os.Stat(inputPath); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, inputPath)
	}

	outDir := s.outputDir(inputPath, chaptersDirSuffix)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	doc, err := s.open(inputPath)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", inputPath, err)
	}
	defer doc.Close()

	totalPages := doc.PageCount()
	s.log.Info("processing", "file", filepath.Base(inputPath), "pages", totalPages)
	s.log.Info("extracting table of contents from first pages")

	loc := &toc.Locator{ScanPages: s.opts.ScanPages, Logger: s.log}
	entries := loc.Locate(doc)

	if len(entries) == 0 {
		s.log.Info("no table of contents found, falling back to page chunks",
			"size", plan.DefaultChunkSize)
		chunks := plan.FixedSize(totalPages, plan.DefaultChunkSize)
		return s.writePageChunks(inputPath, outDir, chunks), nil
	}

	s.logEntries(entries)

	chunks, droppedCount := plan.FromTOC(entries, totalPages)
	if droppedCount > 0 {
		s.log.Debug("dropped degenerate chapter ranges", "count", droppedCount)
	}

	base := stem(inputPath)
	res := &Result{OutputDir: outDir, Planned: len(chunks)}

	for _, c := range chunks {
		meta := pdf.Metadata{
			Title:    fmt.Sprintf("%s - %s", base, c.Title),
			Subject:  fmt.Sprintf("Chapter %d: %s", c.Index, c.Title),
			Creator:  creatorName,
			Producer: producerName,
		}
		name := fmt.Sprintf("%03d_%s.pdf", c.Index,
			fsutil.SanitizeTitle(c.Title, s.opts.TitleMaxLength))
		outPath := filepath.Join(outDir, name)

		if err := s.write(inputPath, outPath, c.StartPage, c.EndPage, c.Title, meta); err != nil {
			s.log.Error("failed to write chapter", "index", c.Index, "title", c.Title, "err", err)
			res.Skipped++
			continue
		}
		res.Created = append(res.Created, outPath)
		s.log.Info("created", "file", name, "pages", c.Pages())
	}

	s.log.Info("chapter split complete", "created", len(res.Created), "dir", outDir)
	return res, nil
}

// SplitByPages splits the PDF at inputPath into fixed-size page chunks.
func (s *Splitter) SplitByPages(inputPath string) (*Result, error) {
	if _, err := os.Stat(inputPath); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, inputPath)
	}

	size := s.opts.ChunkSize
	if size == 0 {
		size = plan.DefaultChunkSize
	}
	if size < 1 {
		return nil, fmt.Errorf("chunk size must be at least 1, got %d", size)
	}

	outDir := s.outputDir(inputPath, pagesDirSuffix)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	doc, err := s.open(inputPath)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", inputPath, err)
	}
	defer doc.Close()

	totalPages := doc.PageCount()
	s.log.Info("processing", "file", filepath.Base(inputPath), "pages", totalPages)

	chunks := plan.FixedSize(totalPages, size)
	s.log.Info("planned page chunks", "count", len(chunks), "size", size)

	return s.writePageChunks(inputPath, outDir, chunks), nil
}

// writePageChunks writes fixed-size chunks, skipping individual failures.
// It serves both page mode and the chapter-mode fallback.
func (s *Splitter) writePageChunks(inputPath, outDir string, chunks []plan.Chunk) *Result {
	base := stem(inputPath)
	total := len(chunks)
	res := &Result{OutputDir: outDir, Planned: total}

	for _, c := range chunks {
		meta := pdf.Metadata{
			Title:    fmt.Sprintf("%s - %s", base, c.Title),
			Subject:  fmt.Sprintf("PDF chunk %d of %d", c.Index, total),
			Creator:  creatorName,
			Producer: producerName,
		}
		name := fmt.Sprintf("%s_chunk_%03d.pdf", base, c.Index)
		outPath := filepath.Join(outDir, name)

		if err := s.write(inputPath, outPath, c.StartPage, c.EndPage, c.Title, meta); err != nil {
			s.log.Error("failed to write chunk", "index", c.Index, "err", err)
			res.Skipped++
			continue
		}
		res.Created = append(res.Created, outPath)
		s.log.Info("created", "file", name, "pages", c.Pages())
	}

	s.log.Info("page split complete", "created", len(res.Created), "dir", outDir)
	return res
}

// logEntries reports the detected TOC, previewing the first ten entries.
func (s *Splitter) logEntries(entries []toc.Entry) {
	s.log.Info("found chapter entries", "count", len(entries))
	preview := entries
	if len(preview) > 10 {
		preview = preview[:10]
	}
	for _, e := range preview {
		s.log.Info("  chapter", "title", e.Title, "page", e.Page)
	}
	if rest := len(entries) - len(preview); rest > 0 {
		s.log.Info("  more entries omitted", "count", rest)
	}
}

// outputDir derives the mode-specific output directory for an input file.
func (s *Splitter) outputDir(inputPath, suffix string) string {
	base := s.opts.OutputDir
	if base == "" {
		base = filepath.Dir(inputPath)
	}
	return filepath.Join(base, stem(inputPath)+suffix)
}

// stem returns the input's base name without its extension.
func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
