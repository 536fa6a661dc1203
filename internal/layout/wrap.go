package layout

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Measurer reports the rendered width of a string in layout units.
type Measurer interface {
	Width(s string) float64
}

// CellMeasurer approximates glyph widths as terminal cells times a fixed
// advance. Wide East Asian runes count as two cells.
type CellMeasurer struct {
	Advance float64
}

// Width implements Measurer.
func (m CellMeasurer) Width(s string) float64 {
	advance := m.Advance
	if advance <= 0 {
		advance = 1
	}
	return float64(runewidth.StringWidth(s)) * advance
}

// Wrap splits text into lines no wider than width. Lines break at whitespace;
// a word wider than width on its own is broken between runes. Explicit
// newlines start a new line. Empty text yields no lines.
func Wrap(text string, width float64, m Measurer) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	if m == nil {
		m = CellMeasurer{Advance: 1}
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")

	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		lines = append(lines, wrapParagraph(paragraph, width, m)...)
	}
	return lines
}

func wrapParagraph(paragraph string, width float64, m Measurer) []string {
	words := strings.Fields(paragraph)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	current := ""
	for _, word := range words {
		if m.Width(word) > width {
			if current != "" {
				lines = append(lines, current)
				current = ""
			}
			pieces := hardBreak(word, width, m)
			lines = append(lines, pieces[:len(pieces)-1]...)
			current = pieces[len(pieces)-1]
			continue
		}
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if m.Width(candidate) <= width {
			current = candidate
			continue
		}
		lines = append(lines, current)
		current = word
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

// hardBreak cuts a word into pieces no wider than width. Every piece holds at
// least one rune, even if that rune alone is wider than width.
func hardBreak(word string, width float64, m Measurer) []string {
	var pieces []string
	var piece strings.Builder
	for _, r := range word {
		next := piece.String() + string(r)
		if piece.Len() > 0 && m.Width(next) > width {
			pieces = append(pieces, piece.String())
			piece.Reset()
		}
		piece.WriteRune(r)
	}
	if piece.Len() > 0 {
		pieces = append(pieces, piece.String())
	}
	return pieces
}
