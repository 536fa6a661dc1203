package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"meetreport/internal/palette"
	"meetreport/internal/report"
	"meetreport/internal/textutil"
	"meetreport/internal/transcript"
)

type timelineEntry struct {
	transcript.Segment
	PaletteIndex int    `json:"palette_index"`
	Color        string `json:"color"`
}

func newTimelineCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool
	var inputFormat string
	var speaker string

	cmd := &cobra.Command{
		Use:   "timeline <result.json|->",
		Short: "Show the merged, chronological dialogue",
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
			pal := palette.New(res.Roster(), cfg.Report.PaletteSize)
			labels := report.LabelsFor(cfg.Report.Language)

			merged := transcript.MergeResult(res)
			entries := make([]timelineEntry, 0, len(merged))
			for _, seg := range merged {
				if speaker != "" && seg.Speaker != speaker {
					continue
				}
				entries = append(entries, timelineEntry{
					Segment:      seg,
					PaletteIndex: pal.Index(seg.Speaker),
					Color:        pal.Swatch(seg.Speaker).Hex,
				})
			}

			if jsonOutput {
				return writeJSON(cmd, entries)
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, labels.NoTranscript)
				return nil
			}
			colorize := shouldColorize(out)
			rows := make([][]string, 0, len(entries))
			for i, entry := range entries {
				rows = append(rows, []string{
					strconv.Itoa(i + 1),
					paint(colorize, speakerColors(pal, entry.Speaker), entry.Speaker),
					formatSeconds(entry.Start),
					formatSeconds(entry.End),
					entry.Text,
				})
			}
			fold := func(s string) string {
				if cfg.Report.ASCIIFold {
					return textutil.FoldASCII(s)
				}
				return s
			}
			headers := []string{"#", fold(labels.TableHeader[0]), "Start", "End", "Text"}
			fmt.Fprintln(out, renderTable(headers, rows, []columnAlignment{alignRight, alignLeft, alignRight, alignRight, alignLeft}))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the timeline as JSON")
	cmd.Flags().StringVar(&inputFormat, "input-format", "", "Input encoding: json or yaml (default from extension)")
	cmd.Flags().StringVar(&speaker, "speaker", "", "Only show turns by this speaker id")
	return cmd
}

func formatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
