package toc

import "testing"

func TestMatch(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		wantTitle string
		wantPage  int
		wantOK    bool
	}{
		{
			name:      "dot leader",
			line:      "Introduction ........ 3",
			wantTitle: "Introduction",
			wantPage:  3,
			wantOK:    true,
		},
		{
			name:      "title with trailing page",
			line:      "Getting Started 15",
			wantTitle: "Getting Started",
			wantPage:  15,
			wantOK:    true,
		},
		{
			name:      "leading number joined into title",
			line:      "2 Getting Started 15",
			wantTitle: "2 Getting Started",
			wantPage:  15,
			wantOK:    true,
		},
		{
			name:      "chapter label with trailing text",
			line:      "Chapter 2:Getting Started 15 pages",
			wantTitle: "2 Getting Started",
			wantPage:  15,
			wantOK:    true,
		},
		{
			name:      "decimal section number",
			line:      "1.1 Overview 7",
			wantTitle: "1.1 Overview",
			wantPage:  7,
			wantOK:    true,
		},
		{
			name:      "surrounding whitespace trimmed",
			line:      "  Preface   12  ",
			wantTitle: "Preface",
			wantPage:  12,
			wantOK:    true,
		},
		{
			name:      "first match wins over later patterns",
			line:      "Intro .... 5 end 7",
			wantTitle: "Intro",
			wantPage:  5,
			wantOK:    true,
		},
		{
			name:   "page above range rejects line",
			line:   "Appendix Notes 99999",
			wantOK: false,
		},
		{
			name:   "page zero rejects line",
			line:   "Widgets .... 0",
			wantOK: false,
		},
		{
			name:   "line too short",
			line:   "A 1",
			wantOK: false,
		},
		{
			name:   "no page number",
			line:   "Just a heading",
			wantOK: false,
		},
		{
			name:   "empty line",
			line:   "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Match(tt.line)
			if ok != tt.wantOK {
				t.Fatalf("Match(%q) ok = %v, want %v", tt.line, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if got.Title != tt.wantTitle || got.Page != tt.wantPage {
				t.Errorf("Match(%q) = (%q, %d), want (%q, %d)",
					tt.line, got.Title, got.Page, tt.wantTitle, tt.wantPage)
			}
		})
	}
}
