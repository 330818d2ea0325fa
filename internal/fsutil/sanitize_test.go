package fsutil

import (
	"strings"
	"testing"
)

func TestSanitizeTitle(t *testing.T) {
	tests := []struct {
		name      string
		title     string
		maxLength int
		want      string
	}{
		{
			name:      "illegal characters and dot runs",
			title:     `A/B: The "Great" Chapter?? ..........`,
			maxLength: 50,
			want:      "A_B_ The _Great_ Chapter__ .....",
		},
		{
			name:      "whitespace collapsed and trimmed",
			title:     "  The \t Long\n  Road  ",
			maxLength: 50,
			want:      "The Long Road",
		},
		{
			name:      "truncation discards partial word",
			title:     "The Quick Brown Fox Jumps Over The Lazy Sleeping Dog",
			maxLength: 18,
			want:      "The Quick Brown",
		},
		{
			name:      "truncation without whitespace keeps cut prefix",
			title:     strings.Repeat("x", 60),
			maxLength: 50,
			want:      strings.Repeat("x", 50),
		},
		{
			name:      "short title untouched",
			title:     "Introduction",
			maxLength: 50,
			want:      "Introduction",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SanitizeTitle(tt.title, tt.maxLength)
			if got != tt.want {
				t.Errorf("SanitizeTitle(%q, %d) = %q, want %q",
					tt.title, tt.maxLength, got, tt.want)
			}
			if len([]rune(got)) > tt.maxLength {
				t.Errorf("result %q exceeds max length %d", got, tt.maxLength)
			}
		})
	}
}
