package report

import (
	"meetreport/internal/layout"
	"meetreport/internal/palette"
	"meetreport/internal/transcript"
)

// DialogueStats summarizes one dialogue fold.
type DialogueStats struct {
	Blocks        int
	Continuations int
	PageBreaks    int
}

// blockLine is one printed row of a dialogue block.
type blockLine struct {
	text    string
	caption bool
}

// RenderDialogue lays out a timeline on its own, starting at the top margin of
// a fresh first page with no heading. It returns the pages and the cursor
// after the last block.
func RenderDialogue(timeline []transcript.Segment, pal palette.Palette, opts Options) ([]layout.Page, layout.Cursor) {
	opts = opts.withDefaults()
	f := layout.NewFlow(opts.Geometry)
	flowDialogue(f, timeline, pal, opts, false)
	return f.Pages(), f.Cursor()
}

// FlowDialogue continues an existing flow with the dialogue section: the
// heading followed by one block per segment.
func FlowDialogue(f *layout.Flow, timeline []transcript.Segment, pal palette.Palette, opts Options) DialogueStats {
	return flowDialogue(f, timeline, pal, opts.withDefaults(), true)
}

func flowDialogue(f *layout.Flow, timeline []transcript.Segment, pal palette.Palette, opts Options, heading bool) DialogueStats {
	g := f.Geometry()
	h := g.LineHeight
	startPages := f.PageCount()
	stats := DialogueStats{}

	var first []blockLine
	if len(timeline) > 0 {
		first = blockLines(timeline[0], opts, g.ContentWidth)
	}

	if heading {
		f.Skip(headingGap)
		// The heading moves with the whole first block when the pair fits on
		// one page, otherwise with a single line.
		keep := h
		if need := float64(len(first)) * h; need > keep && need <= g.Usable()-headingHeight {
			keep = need
		}
		if !f.Fits(headingHeight+keep) && !f.AtTop() {
			f.NewPage()
		}
		y, _ := f.Reserve(headingHeight)
		f.Emit(layout.Instruction{
			Kind: layout.KindText, X: g.LeftMargin, Y: y, Height: headingHeight,
			Style: layout.StyleHeading, FontSize: headingFontSize,
			Text: opts.text(opts.Labels.DialogueHeading),
		})
	}

	if len(timeline) == 0 {
		y, _ := f.Reserve(h)
		f.Emit(layout.Instruction{
			Kind: layout.KindPlaceholder, X: g.LeftMargin, Y: y, Height: h,
			Style: layout.StyleItalic, FontSize: dialogueFontSize,
			Text: opts.text(opts.Labels.NoTranscript),
		})
		stats.PageBreaks = f.PageCount() - startPages
		return stats
	}

	for i, seg := range timeline {
		lines := first
		if i > 0 {
			lines = blockLines(seg, opts, g.ContentWidth)
		}
		height := float64(len(lines)) * h
		// A first block that could not travel with the heading clips below it.
		held := i == 0 && heading
		if !held && !f.Fits(height) && !f.AtTop() && height <= g.Usable() {
			f.NewPage()
		}
		stats.Continuations += emitBlock(f, seg, pal.Swatch(seg.Speaker), lines, opts)
		stats.Blocks++
	}
	stats.PageBreaks = f.PageCount() - startPages
	return stats
}

func blockLines(seg transcript.Segment, opts Options, width float64) []blockLine {
	wrapped := layout.Wrap(opts.text(seg.Text), width, opts.Measurer)
	if len(wrapped) == 0 {
		wrapped = []string{""}
	}
	lines := make([]blockLine, 0, len(wrapped)+1)
	for _, w := range wrapped {
		lines = append(lines, blockLine{text: w})
	}
	if opts.ShowTimestamps {
		lines = append(lines, blockLine{text: opts.text(opts.Labels.Caption(seg.Start, seg.End)), caption: true})
	}
	return lines
}

// emitBlock places a block at the cursor, clipping it to the space left on
// each page and continuing on the next. It returns the number of
// continuation fragments emitted.
func emitBlock(f *layout.Flow, seg transcript.Segment, swatch palette.Swatch, lines []blockLine, opts Options) int {
	g := f.Geometry()
	h := g.LineHeight
	label := opts.text(seg.Speaker) + ":"
	fragments := 0
	for len(lines) > 0 {
		fit := f.RowsThatFit(h)
		if fit == 0 {
			f.NewPage()
			fit = max(f.RowsThatFit(h), 1)
		}
		n := min(fit, len(lines))
		y, _ := f.Reserve(float64(n) * h)
		f.Emit(layout.Instruction{
			Kind: layout.KindLabel, X: g.LabelMargin, Y: y, Height: h,
			Style: layout.StyleBold, FontSize: dialogueFontSize,
			Text: label, Color: swatch.Hex, Continued: fragments > 0,
		})

		var body []string
		for _, line := range lines[:n] {
			if !line.caption {
				body = append(body, line.text)
			}
		}
		if len(body) > 0 {
			f.Emit(layout.Instruction{
				Kind: layout.KindText, X: g.TextIndent, Y: y, Height: float64(len(body)) * h,
				Style: layout.StyleBody, FontSize: dialogueFontSize,
				Lines: body, Continued: fragments > 0,
			})
		}
		if last := lines[n-1]; last.caption {
			f.Emit(layout.Instruction{
				Kind: layout.KindCaption, X: g.TextIndent, Y: y + float64(len(body))*h, Height: h,
				Style: layout.StyleItalic, FontSize: dialogueFontSize, Text: last.text,
			})
		}
		lines = lines[n:]
		if len(lines) > 0 {
			fragments++
		}
	}
	return fragments
}
