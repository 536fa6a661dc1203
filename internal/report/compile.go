package report

import (
	"fmt"
	"log/slog"

	"meetreport/internal/analysis"
	"meetreport/internal/config"
	"meetreport/internal/layout"
	"meetreport/internal/logging"
	"meetreport/internal/palette"
	"meetreport/internal/textutil"
	"meetreport/internal/transcript"
)

// DefaultGlyphAdvance approximates the average advance of an 11pt body font
// in millimetres, giving about 80 characters per 160mm line.
const DefaultGlyphAdvance = 2.0

// Options control a compilation.
type Options struct {
	IncludeDialogue bool
	PaletteSize     int
	Geometry        layout.Geometry
	Measurer        layout.Measurer
	Labels          Labels
	// FoldASCII strips diacritics from every emitted string.
	FoldASCII      bool
	ShowTimestamps bool
	Logger         *slog.Logger
}

// DefaultOptions returns the reference report settings: Turkish labels folded
// to ASCII, A4 geometry, eight palette colours, dialogue included.
func DefaultOptions() Options {
	return Options{
		IncludeDialogue: true,
		PaletteSize:     palette.DefaultSize,
		Geometry:        layout.DefaultGeometry(),
		Measurer:        layout.CellMeasurer{Advance: DefaultGlyphAdvance},
		Labels:          LabelsFor("tr"),
		FoldASCII:       true,
	}
}

// OptionsFromConfig maps the [report] and [layout] sections onto Options.
func OptionsFromConfig(cfg *config.Config, logger *slog.Logger) Options {
	if cfg == nil {
		opts := DefaultOptions()
		opts.Logger = logger
		return opts
	}
	return Options{
		IncludeDialogue: cfg.Report.IncludeDialogue,
		PaletteSize:     cfg.Report.PaletteSize,
		Geometry:        cfg.Geometry(),
		Measurer:        layout.CellMeasurer{Advance: cfg.Layout.GlyphAdvance},
		Labels:          LabelsFor(cfg.Report.Language),
		FoldASCII:       cfg.Report.ASCIIFold,
		ShowTimestamps:  cfg.Report.ShowTimestamps,
		Logger:          logger,
	}
}

func (o Options) withDefaults() Options {
	if o.PaletteSize < 1 {
		o.PaletteSize = palette.DefaultSize
	}
	if o.Geometry == (layout.Geometry{}) {
		o.Geometry = layout.DefaultGeometry()
	}
	if o.Measurer == nil {
		o.Measurer = layout.CellMeasurer{Advance: DefaultGlyphAdvance}
	}
	if o.Labels.Title == "" {
		o.Labels = LabelsFor("tr")
	}
	if o.Logger == nil {
		o.Logger = logging.NewNop()
	}
	return o
}

func (o Options) text(s string) string {
	if o.FoldASCII {
		return textutil.FoldASCII(s)
	}
	return s
}

// Compile lays out the report for res. It fails only for a nil result or a
// geometry that cannot hold content; transcript problems are absorbed.
func Compile(res *analysis.AnalysisResult, opts Options) (*layout.Document, error) {
	if res == nil {
		return nil, &analysis.FieldError{Field: "result", Problem: "is required"}
	}
	opts = opts.withDefaults()
	if err := opts.Geometry.Validate(); err != nil {
		return nil, fmt.Errorf("compile report: %w", err)
	}
	logger := logging.NewComponentLogger(opts.Logger, "report")

	flow := layout.NewFlow(opts.Geometry)
	composeHeader(flow, res, opts)

	stats := DialogueStats{}
	if opts.IncludeDialogue {
		timeline := transcript.MergeResult(res)
		if dropped := res.TranscriptLineCount() - len(timeline); dropped > 0 {
			logger.Debug("transcript lines skipped",
				logging.Int("dropped_lines", dropped),
				logging.Int("parsed_segments", len(timeline)),
			)
		}
		pal := palette.New(res.Roster(), opts.PaletteSize)
		stats = flowDialogue(flow, timeline, pal, opts, true)
	}

	doc := flow.Document(opts.text(opts.Labels.Title))
	logger.Info("report compiled",
		logging.Int("pages", len(doc.Pages)),
		logging.Int("speakers", len(res.Speakers)),
		logging.Float64("duration_seconds", res.DurationSeconds.Float64()),
		logging.Int("segments", stats.Blocks),
		logging.Int("continuations", stats.Continuations),
		logging.Bool("dialogue", opts.IncludeDialogue),
	)
	return doc, nil
}
