package config

import (
	"fmt"
	"os"
	"strings"

	"meetreport/internal/language"
)

func (c *Config) normalize() error {
	if err := c.normalizeReport(); err != nil {
		return err
	}
	c.normalizeServer()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeReport() error {
	if value, ok := os.LookupEnv(envOutputDirOverride); ok && strings.TrimSpace(value) != "" {
		c.Report.OutputDir = strings.TrimSpace(value)
	}
	if strings.TrimSpace(c.Report.OutputDir) == "" {
		c.Report.OutputDir = defaultOutputDir
	}
	var err error
	if c.Report.OutputDir, err = expandPath(c.Report.OutputDir); err != nil {
		return fmt.Errorf("report.output_dir: %w", err)
	}
	c.Report.OutputName = strings.TrimSpace(c.Report.OutputName)
	if c.Report.OutputName == "" {
		c.Report.OutputName = defaultOutputName
	}
	c.Report.Format = strings.ToLower(strings.TrimSpace(c.Report.Format))
	if c.Report.Format == "" {
		c.Report.Format = defaultFormat
	}
	c.Report.Language = strings.ToLower(strings.TrimSpace(c.Report.Language))
	if c.Report.Language == "" {
		c.Report.Language = defaultLanguage
	}
	if code := language.ToISO2(c.Report.Language); code != "" {
		c.Report.Language = code
	}
	if c.Report.PaletteSize == 0 {
		c.Report.PaletteSize = defaultPaletteSize
	}
	if c.Layout.GlyphAdvance == 0 {
		c.Layout.GlyphAdvance = defaultGlyphAdvance
	}
	return nil
}

func (c *Config) normalizeServer() {
	c.Server.Bind = strings.TrimSpace(c.Server.Bind)
	if c.Server.Bind == "" {
		c.Server.Bind = defaultServerBind
	}
	if c.Server.BodyLimitMB == 0 {
		c.Server.BodyLimitMB = defaultBodyLimitMB
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	if value, ok := os.LookupEnv(envLogLevelOverride); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
