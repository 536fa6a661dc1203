package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"meetreport/internal/analysis"
	"meetreport/internal/palette"
	"meetreport/internal/report"
	"meetreport/internal/textutil"
)

type summaryView struct {
	Filename     string                   `json:"filename,omitempty"`
	Title        string                   `json:"title"`
	Lines        []string                 `json:"lines"`
	Distribution []string                 `json:"distribution"`
	Speakers     []analysis.SpeakerRecord `json:"speakers"`
	Rows         [][]string               `json:"rows"`
}

func newSummaryCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool
	var inputFormat string

	cmd := &cobra.Command{
		Use:   "summary <result.json|->",
		Short: "Print the report header: totals, speaker table and distributions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			res, err := loadInput(cmd, args[0], inputFormat)
			if err != nil {
				return err
			}
			labels := report.LabelsFor(cfg.Report.Language)
			fold := func(s string) string {
				if cfg.Report.ASCIIFold {
					return textutil.FoldASCII(s)
				}
				return s
			}
			foldAll := func(in []string) []string {
				out := make([]string, len(in))
				for i, s := range in {
					out[i] = fold(s)
				}
				return out
			}

			rows := report.TableRows(res, labels)
			for _, row := range rows {
				for i := range row {
					row[i] = fold(row[i])
				}
			}
			view := summaryView{
				Filename:     res.Filename,
				Title:        fold(labels.Title),
				Lines:        foldAll(labels.ScalarLines(res)),
				Distribution: foldAll(labels.DistributionLines(res)),
				Speakers:     res.Speakers,
				Rows:         rows,
			}
			if jsonOutput {
				return writeJSON(cmd, view)
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			pal := palette.New(res.Roster(), cfg.Report.PaletteSize)
			for i, row := range view.Rows {
				row[0] = paint(colorize, speakerColors(pal, res.Speakers[i].ID), row[0])
			}

			fmt.Fprintln(out, view.Title)
			if view.Filename != "" {
				fmt.Fprintln(out, view.Filename)
			}
			fmt.Fprintln(out)
			for _, line := range view.Lines {
				fmt.Fprintln(out, line)
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, renderTable(foldAll(labels.TableHeader[:]), view.Rows, []columnAlignment{alignLeft, alignRight, alignLeft}))
			fmt.Fprintln(out)
			for _, line := range view.Distribution {
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the summary as JSON")
	cmd.Flags().StringVar(&inputFormat, "input-format", "", "Input encoding: json or yaml (default from extension)")
	return cmd
}
