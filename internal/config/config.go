package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"meetreport/internal/layout"
)

//go:embed sample_config.toml
var sampleConfig string

// Report contains the compilation and output settings.
type Report struct {
	IncludeDialogue bool   `toml:"include_dialogue"`
	PaletteSize     int    `toml:"palette_size"`
	OutputName      string `toml:"output_name"`
	OutputDir       string `toml:"output_dir"`
	Format          string `toml:"format"`
	Language        string `toml:"language"`
	ASCIIFold       bool   `toml:"ascii_fold"`
	ShowTimestamps  bool   `toml:"show_timestamps"`
}

// Layout contains the page geometry in millimetres.
type Layout struct {
	PageWidth      float64 `toml:"page_width"`
	PageHeight     float64 `toml:"page_height"`
	HeaderTop      float64 `toml:"header_top"`
	TopMargin      float64 `toml:"top_margin"`
	BottomMargin   float64 `toml:"bottom_margin"`
	LeftMargin     float64 `toml:"left_margin"`
	LabelMargin    float64 `toml:"label_margin"`
	TextIndent     float64 `toml:"text_indent"`
	LineHeight     float64 `toml:"line_height"`
	ContentWidth   float64 `toml:"content_width"`
	TableRowHeight float64 `toml:"table_row_height"`
	// GlyphAdvance is the width of one character cell used when wrapping.
	GlyphAdvance float64 `toml:"glyph_advance"`
}

// Server contains the HTTP surface settings.
type Server struct {
	Bind        string `toml:"bind"`
	BodyLimitMB int    `toml:"body_limit_mb"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for meetreport.
//
// Configuration sections:
//   - Report: what gets compiled and where the artifact is written
//   - Layout: page geometry and wrapping
//   - Server: HTTP bind address and request limits
//   - Logging: log format and level
type Config struct {
	Report  Report  `toml:"report"`
	Layout  Layout  `toml:"layout"`
	Server  Server  `toml:"server"`
	Logging Logging `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigPath)
}

// Load locates, parses, and validates a configuration file. A missing file is
// not an error; defaults apply.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath(defaultConfigPath)
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("meetreport.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// Geometry converts the layout section into the page model.
func (c *Config) Geometry() layout.Geometry {
	l := c.Layout
	return layout.Geometry{
		PageWidth:      l.PageWidth,
		PageHeight:     l.PageHeight,
		HeaderTop:      l.HeaderTop,
		TopMargin:      l.TopMargin,
		BottomMargin:   l.BottomMargin,
		LeftMargin:     l.LeftMargin,
		LabelMargin:    l.LabelMargin,
		TextIndent:     l.TextIndent,
		LineHeight:     l.LineHeight,
		ContentWidth:   l.ContentWidth,
		TableRowHeight: l.TableRowHeight,
	}
}

// BodyLimitBytes returns the maximum accepted request body size.
func (c *Config) BodyLimitBytes() int {
	return c.Server.BodyLimitMB * 1024 * 1024
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
