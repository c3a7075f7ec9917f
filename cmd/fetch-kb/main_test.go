package main

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
)

// TestExtractText tests readable-text extraction from HTML
func TestExtractText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "simple paragraph",
			input: "<p>John is the parent of Mary.</p>",
			want:  "John is the parent of Mary.",
		},
		{
			name:  "block boundaries become newlines",
			input: "<div><p>First sentence.</p><p>Second sentence.</p></div>",
			want:  "First sentence.\nSecond sentence.",
		},
		{
			name:  "inline tags do not split text",
			input: "<p><strong>Mary</strong> is the sibling of <em>Tom</em>.</p>",
			want:  "Mary is the sibling of Tom.",
		},
		{
			name:  "script is skipped",
			input: "<p>Kept.</p><script>var hidden = 1;</script>",
			want:  "Kept.",
		},
		{
			name:  "style is skipped",
			input: "<style>p { color: red; }</style><p>Kept.</p>",
			want:  "Kept.",
		},
		{
			name:  "noscript is skipped",
			input: "<noscript>Enable JS</noscript><p>Kept.</p>",
			want:  "Kept.",
		},
		{
			name:  "headings and list items",
			input: "<h1>Family</h1><ul><li>John</li><li>Mary</li></ul>",
			want:  "Family\nJohn\nMary",
		},
		{
			name:  "nested blocks collapse blank lines",
			input: "<section><div><p>Only line.</p></div></section>",
			want:  "Only line.",
		},
		{
			name:  "surrounding whitespace trimmed per line",
			input: "<p>  padded  </p><p>\ttabbed\t</p>",
			want:  "padded\ntabbed",
		},
		{
			name:  "empty document",
			input: "",
			want:  "",
		},
		{
			name:  "whitespace only",
			input: "<p>   \n\t  </p>",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := html.Parse(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("html.Parse: %v", err)
			}
			got := extractText(doc)
			if got != tt.want {
				t.Errorf("extractText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestIsBlock tests block-level tag classification
func TestIsBlock(t *testing.T) {
	tests := []struct {
		tag  string
		want bool
	}{
		{"p", true},
		{"div", true},
		{"li", true},
		{"h1", true},
		{"h6", true},
		{"br", true},
		{"tr", true},
		{"span", false},
		{"strong", false},
		{"em", false},
		{"a", false},
	}

	for _, tt := range tests {
		if got := isBlock(tt.tag); got != tt.want {
			t.Errorf("isBlock(%q) = %v, want %v", tt.tag, got, tt.want)
		}
	}
}
