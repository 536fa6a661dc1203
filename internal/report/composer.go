package report

import (
	"meetreport/internal/analysis"
	"meetreport/internal/layout"
)

// Vertical rhythm of the summary section.
const (
	titleHeight      = 12.0
	summaryLine      = 8.0
	distributionGap  = 8.0
	headingGap       = 4.0
	headingHeight    = 6.0
	titleFontSize    = 18.0
	summaryFontSize  = 12.0
	headingFontSize  = 14.0
	dialogueFontSize = 11.0
)

// TableRows returns one row per speaker, in roster order: id, duration as
// received, gender label.
func TableRows(res *analysis.AnalysisResult, l Labels) [][]string {
	if res == nil {
		return nil
	}
	rows := make([][]string, 0, len(res.Speakers))
	for _, spk := range res.Speakers {
		rows = append(rows, []string{spk.ID, spk.Duration.String(), l.GenderLabel(spk.Gender)})
	}
	return rows
}

// composeHeader emits the title, scalar lines, speaker table and
// distribution lines, leaving the cursor below the last distribution line.
func composeHeader(f *layout.Flow, res *analysis.AnalysisResult, opts Options) {
	g := f.Geometry()
	l := opts.Labels

	f.MoveTo(g.HeaderTop)
	y, _ := f.Reserve(titleHeight)
	f.Emit(layout.Instruction{
		Kind: layout.KindText, X: g.LeftMargin, Y: y, Height: titleHeight,
		Style: layout.StyleTitle, FontSize: titleFontSize, Text: opts.text(l.Title),
	})

	for _, line := range l.ScalarLines(res) {
		emitLine(f, opts, line)
	}

	header := make([]string, len(l.TableHeader))
	for i, h := range l.TableHeader {
		header[i] = opts.text(h)
	}
	rows := TableRows(res, l)
	for _, row := range rows {
		for i := range row {
			row[i] = opts.text(row[i])
		}
	}
	emitTable(f, header, rows)

	f.Skip(distributionGap)
	for _, line := range l.DistributionLines(res) {
		emitLine(f, opts, line)
	}
}

func emitLine(f *layout.Flow, opts Options, text string) {
	y, _ := f.Reserve(summaryLine)
	f.Emit(layout.Instruction{
		Kind: layout.KindText, X: f.Geometry().LeftMargin, Y: y, Height: summaryLine,
		Style: layout.StyleBody, FontSize: summaryFontSize, Text: opts.text(text),
	})
}

// emitTable places the table at the cursor. Rows that do not fit continue on
// the next page under a repeated header row.
func emitTable(f *layout.Flow, header []string, rows [][]string) {
	g := f.Geometry()
	rh := g.TableRowHeight
	continued := false
	for {
		fit := f.RowsThatFit(rh) - 1
		if fit < 1 && !f.AtTop() {
			f.NewPage()
			fit = f.RowsThatFit(rh) - 1
		}
		n := min(max(fit, 0), len(rows))
		height := float64(1+n) * rh
		y, _ := f.Reserve(height)
		f.Emit(layout.Instruction{
			Kind: layout.KindTable, X: g.LeftMargin, Y: y, Height: height,
			Style: layout.StyleBody, Continued: continued,
			Table: &layout.Table{Header: header, Rows: rows[:n:n], RowHeight: rh},
		})
		rows = rows[n:]
		if len(rows) == 0 {
			return
		}
		f.NewPage()
		continued = true
	}
}
