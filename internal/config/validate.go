package config

import (
	"errors"
	"fmt"
	"strings"

	"meetreport/internal/language"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateReport(); err != nil {
		return err
	}
	if err := c.validateLayout(); err != nil {
		return err
	}
	if err := c.validateServer(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateReport() error {
	if c.Report.PaletteSize < 1 || c.Report.PaletteSize > maxPaletteSize {
		return fmt.Errorf("report.palette_size must be between 1 and %d", maxPaletteSize)
	}
	switch c.Report.Format {
	case "json", "text":
	default:
		return fmt.Errorf("report.format %q is not supported (use json or text)", c.Report.Format)
	}
	if !language.Supported(c.Report.Language) {
		return fmt.Errorf("report.language %q is not supported (use %s)", c.Report.Language, strings.Join(language.Codes(), " or "))
	}
	if c.Report.OutputName == "" {
		return errors.New("report.output_name must be set")
	}
	return nil
}

func (c *Config) validateLayout() error {
	if c.Layout.GlyphAdvance < minGlyphAdvanceMM {
		return fmt.Errorf("layout.glyph_advance must be at least %.1f", minGlyphAdvanceMM)
	}
	if c.Layout.PageWidth <= 0 {
		return errors.New("layout.page_width must be positive")
	}
	if c.Layout.TextIndent+c.Layout.ContentWidth > c.Layout.PageWidth {
		return errors.New("layout.text_indent plus layout.content_width must fit within layout.page_width")
	}
	return c.Geometry().Validate()
}

func (c *Config) validateServer() error {
	if c.Server.Bind == "" {
		return errors.New("server.bind must be set")
	}
	if c.Server.BodyLimitMB < 1 || c.Server.BodyLimitMB > maxBodyLimitMB {
		return fmt.Errorf("server.body_limit_mb must be between 1 and %d", maxBodyLimitMB)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
		return nil
	default:
		return fmt.Errorf("logging.level %q is not recognized", c.Logging.Level)
	}
}
