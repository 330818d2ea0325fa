package pdf

import (
	"path/filepath"
	"testing"
)

func TestOpen_MissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "missing.pdf")); err == nil {
		t.Fatal("expected error opening missing file")
	}
}

func TestWriteChunk_EmptyRange(t *testing.T) {
	a := NewAssembler()
	err := a.WriteChunk("in.pdf", "out.pdf", 5, 5, "label", Metadata{})
	if err == nil {
		t.Fatal("expected error for empty page range")
	}
}
