package grapheme

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Align selects where Fit places padding.
type Align uint8

const (
	AlignLeft Align = iota
	AlignRight
)

// Ellipsis marks text clipped by Truncate.
const Ellipsis = "…"

// Width returns the terminal cell width of text.
func Width(text string) int {
	if text == "" {
		return 0
	}
	return runewidth.StringWidth(text)
}

// Flatten replaces line breaks and tabs with spaces so a value renders on
// one terminal line.
func Flatten(text string) string {
	if !strings.ContainsAny(text, "\r\n\t") {
		return text
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case '\r', '\n', '\t':
			return ' '
		}
		return r
	}, text)
}

// Truncate clips text to at most width cells without splitting a grapheme
// cluster. Clipped text ends with Ellipsis when width allows it.
func Truncate(text string, width int) string {
	if width <= 0 || text == "" {
		return ""
	}
	if Width(text) <= width {
		return text
	}

	limit := width - runewidth.StringWidth(Ellipsis)
	if limit < 0 {
		limit = width
	}

	var sb strings.Builder
	used := 0
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		c := g.Str()
		w := runewidth.StringWidth(c)
		if used+w > limit {
			break
		}
		sb.WriteString(c)
		used += w
	}
	if limit < width {
		sb.WriteString(Ellipsis)
	}
	return sb.String()
}

// Fit flattens text, truncates it to width, and pads it to exactly width
// cells.
func Fit(text string, width int, align Align) string {
	if width <= 0 {
		return ""
	}
	s := Truncate(Flatten(text), width)
	pad := width - Width(s)
	if pad <= 0 {
		return s
	}
	if align == AlignRight {
		return strings.Repeat(" ", pad) + s
	}
	return s + strings.Repeat(" ", pad)
}
