package render

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{
			name:  "fits on one line",
			text:  "a short label",
			width: 20,
			want:  []string{"a short label"},
		},
		{
			name:  "breaks between words",
			text:  "one two three four",
			width: 9,
			want:  []string{"one two", "three", "four"},
		},
		{
			name:  "empty yields one empty line",
			text:  "",
			width: 10,
			want:  []string{""},
		},
		{
			name:  "oversized word stands alone",
			text:  "tiny incomprehensibilities tiny",
			width: 10,
			want:  []string{"tiny", "incomprehensibilities", "tiny"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := wrap(tc.text, tc.width)
			if len(got) != len(tc.want) {
				t.Fatalf("wrap(%q, %d) = %q, want %q", tc.text, tc.width, got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("wrap(%q, %d) = %q, want %q", tc.text, tc.width, got, tc.want)
				}
			}
		})
	}
}

func TestWrapNeverExceedsWidth(t *testing.T) {
	text := strings.Repeat("lorem ipsum dolor sit amet ", 10)
	for _, width := range []int{10, 20, 73} {
		for _, line := range wrap(text, width) {
			if utf8.RuneCountInString(line) > width {
				t.Errorf("width %d: line %q too wide", width, line)
			}
		}
	}
}
