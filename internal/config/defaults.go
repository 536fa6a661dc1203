package config

import "meetreport/internal/layout"

const (
	defaultConfigPath      = "~/.config/meetreport/config.toml"
	defaultOutputName      = "toplanti-analiz"
	defaultOutputDir       = "."
	defaultFormat          = "json"
	defaultLanguage        = "tr"
	defaultPaletteSize     = 8
	defaultGlyphAdvance    = 2.0
	defaultServerBind      = "127.0.0.1:8090"
	defaultBodyLimitMB     = 8
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
	envOutputDirOverride   = "MEETREPORT_OUTPUT_DIR"
	envLogLevelOverride    = "MEETREPORT_LOG_LEVEL"
	maxPaletteSize         = 64
	maxBodyLimitMB         = 256
	minGlyphAdvanceMM      = 0.1
	defaultIncludeDialogue = true
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	geo := layout.DefaultGeometry()
	return Config{
		Report: Report{
			IncludeDialogue: defaultIncludeDialogue,
			PaletteSize:     defaultPaletteSize,
			OutputName:      defaultOutputName,
			OutputDir:       defaultOutputDir,
			Format:          defaultFormat,
			Language:        defaultLanguage,
			ASCIIFold:       true,
		},
		Layout: Layout{
			PageWidth:      geo.PageWidth,
			PageHeight:     geo.PageHeight,
			HeaderTop:      geo.HeaderTop,
			TopMargin:      geo.TopMargin,
			BottomMargin:   geo.BottomMargin,
			LeftMargin:     geo.LeftMargin,
			LabelMargin:    geo.LabelMargin,
			TextIndent:     geo.TextIndent,
			LineHeight:     geo.LineHeight,
			ContentWidth:   geo.ContentWidth,
			TableRowHeight: geo.TableRowHeight,
			GlyphAdvance:   defaultGlyphAdvance,
		},
		Server: Server{
			Bind:        defaultServerBind,
			BodyLimitMB: defaultBodyLimitMB,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
