package toc

import (
	"errors"
	"reflect"
	"testing"
)

type fakeSource struct {
	pages     []string
	failPages map[int]bool
}

func (f *fakeSource) PageCount() int { return len(f.pages) }

func (f *fakeSource) PageText(pageNum int) (string, error) {
	if f.failPages[pageNum] {
		return "", errors.New("extraction failed")
	}
	return f.pages[pageNum-1], nil
}

func TestLocate(t *testing.T) {
	t.Run("finds entries on a contents page", func(t *testing.T) {
		src := &fakeSource{pages: []string{
			"Some Title Page",
			"Table of Contents\nIntroduction ........ 3\nGetting Started 15\nAdvanced Topics 42",
			"body text",
		}}

		got := (&Locator{}).Locate(src)
		want := []Entry{
			{Title: "Introduction", Page: 3},
			{Title: "Getting Started", Page: 15},
			{Title: "Advanced Topics", Page: 42},
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Locate() = %v, want %v", got, want)
		}
	})

	t.Run("returns nil without indicator keywords", func(t *testing.T) {
		src := &fakeSource{pages: []string{"Alpha Part 3\nBravo Section 5"}}
		if got := (&Locator{}).Locate(src); got != nil {
			t.Errorf("Locate() = %v, want nil", got)
		}
	})

	t.Run("skips pages that fail extraction", func(t *testing.T) {
		src := &fakeSource{
			pages: []string{
				"unreadable",
				"Contents\nIntroduction ........ 3",
			},
			failPages: map[int]bool{1: true},
		}

		got := (&Locator{}).Locate(src)
		want := []Entry{{Title: "Introduction", Page: 3}}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Locate() = %v, want %v", got, want)
		}
	})

	t.Run("respects scan page bound", func(t *testing.T) {
		src := &fakeSource{pages: []string{
			"front matter",
			"Contents\nIntroduction ........ 3",
		}}

		if got := (&Locator{ScanPages: 1}).Locate(src); got != nil {
			t.Errorf("Locate() = %v, want nil", got)
		}
	})
}

func TestParse_DedupAndSort(t *testing.T) {
	text := "Contents\n" +
		"Bravo Section 5\n" +
		"Alpha Part 3\n" +
		"Bravo Section 5\n" +
		"Charlie Part 3\n"

	got := Parse(text)
	want := []Entry{
		{Title: "Alpha Part", Page: 3},
		{Title: "Charlie Part", Page: 3},
		{Title: "Bravo Section", Page: 5},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Parse() = %v, want %v", got, want)
	}
}
