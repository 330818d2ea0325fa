// Package toc detects table-of-contents entries in the opening pages of a
// document using a small ordered battery of line-level text heuristics.
package toc

// Entry is one detected table-of-contents entry: a chapter or section title
// and its 1-based starting page number. Entries are immutable once produced;
// two entries are equal when both title and page match.
type Entry struct {
	Title string
	Page  int
}
