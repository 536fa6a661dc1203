package export

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"meetreport/internal/layout"
)

// labelColumn is the width the speaker label is padded to in the preview.
const labelColumn = 14

// TextSink prints each page as plain text: summary lines, tables drawn with
// box characters, and dialogue blocks with the speaker label in a gutter.
type TextSink struct{}

// Export implements Sink.
func (TextSink) Export(ctx context.Context, doc *layout.Document, w io.Writer) error {
	if doc == nil {
		return errors.New("export: nil document")
	}
	bw := bufio.NewWriter(w)
	for i, page := range doc.Pages {
		if err := ctx.Err(); err != nil {
			return err
		}
		if i > 0 {
			bw.WriteString("\n")
		}
		fmt.Fprintf(bw, "--- %d/%d ---\n", page.Number, len(doc.Pages))
		writePage(bw, page.Instructions)
	}
	return bw.Flush()
}

// Extension implements Sink.
func (TextSink) Extension() string { return ".txt" }

// ContentType implements Sink.
func (TextSink) ContentType() string { return "text/plain; charset=utf-8" }

func writePage(w io.StringWriter, instructions []layout.Instruction) {
	for i := 0; i < len(instructions); i++ {
		ins := instructions[i]
		switch ins.Kind {
		case layout.KindLabel:
			label := ins.Text
			if ins.Continued {
				label += " ..."
			}
			var body []string
			if i+1 < len(instructions) && instructions[i+1].Kind == layout.KindText && instructions[i+1].Y == ins.Y {
				body = instructions[i+1].Lines
				i++
			}
			writeBlock(w, label, body)
		case layout.KindTable:
			if ins.Table != nil {
				w.WriteString(renderTable(ins.Table))
				w.WriteString("\n")
			}
		case layout.KindCaption:
			w.WriteString(strings.Repeat(" ", labelColumn) + ins.Text + "\n")
		case layout.KindPlaceholder:
			w.WriteString(ins.Text + "\n")
		case layout.KindRule:
			w.WriteString(strings.Repeat("-", 40) + "\n")
		default:
			if ins.Style == layout.StyleTitle || ins.Style == layout.StyleHeading {
				w.WriteString("\n" + ins.Text + "\n")
				continue
			}
			if ins.Text != "" {
				w.WriteString(ins.Text + "\n")
			}
			for _, line := range ins.Lines {
				w.WriteString(strings.Repeat(" ", labelColumn) + line + "\n")
			}
		}
	}
}

func writeBlock(w io.StringWriter, label string, body []string) {
	gutter := text.Pad(label, labelColumn-1, ' ') + " "
	if len(body) == 0 {
		w.WriteString(strings.TrimRight(gutter, " ") + "\n")
		return
	}
	indent := strings.Repeat(" ", text.StringWidthWithoutEscSequences(gutter))
	for i, line := range body {
		if i == 0 {
			w.WriteString(gutter + line + "\n")
			continue
		}
		w.WriteString(indent + line + "\n")
	}
}

func renderTable(t *layout.Table) string {
	columns := len(t.Header)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	style := table.StyleLight
	style.Format.Header = text.FormatDefault
	tw.SetStyle(style)

	header := make(table.Row, columns)
	for i := range columns {
		header[i] = t.Header[i]
	}
	tw.AppendHeader(header)

	for _, row := range t.Rows {
		r := make(table.Row, columns)
		for i := range columns {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	configs := make([]table.ColumnConfig, 0, columns)
	for i := range columns {
		align := text.AlignLeft
		if i == 1 {
			align = text.AlignRight
		}
		configs = append(configs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(configs)

	return tw.Render()
}
