package testsupport

import (
	"path/filepath"
	"testing"

	"meetreport/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a default config whose output directory is a unique
// temp directory, then applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Report.OutputDir = filepath.Join(base, "reports")
	cfgVal.Server.Bind = "127.0.0.1:0"
	cfgVal.Logging.Level = "error"

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithFormat selects the export format.
func WithFormat(format string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Report.Format = format
	}
}

// WithoutDialogue disables the dialogue section.
func WithoutDialogue() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Report.IncludeDialogue = false
	}
}

// WithLanguage selects the label set.
func WithLanguage(lang string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Report.Language = lang
	}
}

// WithBodyLimitMB sets the HTTP request body limit.
func WithBodyLimitMB(mb int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Server.BodyLimitMB = mb
	}
}
