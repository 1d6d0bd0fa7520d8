package render

import (
	"strings"
	"unicode/utf8"
)

// wrap greedily fills words into lines no wider than width columns. A
// single word wider than the budget stays on its own line rather than
// being split. Empty content yields one empty line so the bullet prefix
// still renders.
func wrap(text string, width int) []string {
	if width < 1 {
		width = 1
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	cur := words[0]
	curLen := utf8.RuneCountInString(cur)
	for _, w := range words[1:] {
		wl := utf8.RuneCountInString(w)
		if curLen+1+wl > width {
			lines = append(lines, cur)
			cur, curLen = w, wl
			continue
		}
		cur += " " + w
		curLen += 1 + wl
	}
	return append(lines, cur)
}
