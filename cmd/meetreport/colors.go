package main

import (
	"github.com/jedib0t/go-pretty/v6/text"

	"meetreport/internal/palette"
)

// terminalSwatches approximates the pastel palette with terminal colours, in
// the same order as the palette swatches.
var terminalSwatches = []text.Colors{
	{text.FgHiBlue},
	{text.FgHiRed},
	{text.FgHiGreen},
	{text.FgHiYellow},
	{text.FgHiMagenta},
	{text.FgHiCyan},
	{text.FgYellow},
	{text.FgWhite},
}

// speakerColors returns the terminal colours for a speaker's palette index.
func speakerColors(pal palette.Palette, speaker string) text.Colors {
	return terminalSwatches[pal.Index(speaker)%len(terminalSwatches)]
}

func paint(colorize bool, colors text.Colors, s string) string {
	if !colorize || len(colors) == 0 {
		return s
	}
	return colors.Sprint(s)
}
