package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// DefaultTabWidth matches the hardware tab stops of a VT100-style terminal.
const DefaultTabWidth = 8

// ExpandTabs replaces tab characters with spaces respecting terminal column width.
func ExpandTabs(text string, tabWidth int) string {
	if tabWidth <= 0 || !strings.ContainsRune(text, '\t') {
		return text
	}

	var builder strings.Builder
	column := 0
	for _, ru := range text {
		if ru == '\t' {
			spaces := tabWidth - (column % tabWidth)
			builder.WriteString(strings.Repeat(" ", spaces))
			column += spaces
			continue
		}
		builder.WriteRune(ru)
		column += runewidth.RuneWidth(ru)
	}
	return builder.String()
}

// DisplayWidth reports the printable width of text accounting for wide runes
// and grapheme clusters.
func DisplayWidth(text string) int {
	return runewidth.StringWidth(text)
}

// TruncateToWidth cuts text so it occupies at most width columns. Tabs are
// counted as advancing to the next DefaultTabWidth stop; zero-width runes stay
// with the rune they follow.
func TruncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if !strings.ContainsRune(text, '\t') && DisplayWidth(text) <= width {
		return text
	}

	column := 0
	for i, ru := range text {
		w := runewidth.RuneWidth(ru)
		if ru == '\t' {
			w = DefaultTabWidth - (column % DefaultTabWidth)
		}
		if column+w > width {
			return text[:i]
		}
		column += w
	}
	return text
}
