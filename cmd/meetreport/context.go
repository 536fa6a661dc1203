package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"meetreport/internal/analysis"
	"meetreport/internal/config"
	"meetreport/internal/logging"
	"meetreport/internal/services"
)

type commandContext struct {
	configFlag   *string
	logLevelFlag *string

	configOnce sync.Once
	config     *config.Config
	configPath string
	configErr  error
}

func newCommandContext(configFlag, logLevelFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, resolved, _, err := config.Load(path)
		if err != nil {
			c.configErr = services.Wrap(services.ErrConfiguration, "config", "load", "", err)
			return
		}
		if c.logLevelFlag != nil && strings.TrimSpace(*c.logLevelFlag) != "" {
			cfg.Logging.Level = strings.TrimSpace(*c.logLevelFlag)
		}
		c.config = cfg
		c.configPath = resolved
	})
	return c.config, c.configErr
}

// logger builds a logger on the command's stderr so report bytes written to
// stdout stay clean.
func (c *commandContext) logger(cmd *cobra.Command) (*slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := logging.NewFromConfig(cfg, cmd.ErrOrStderr())
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "logging", "init", "", err)
	}
	return logger, nil
}

// loadInput decodes an analysis result from a path, or from stdin when path
// is "-".
func loadInput(cmd *cobra.Command, path string, format string) (*analysis.AnalysisResult, error) {
	var (
		res *analysis.AnalysisResult
		err error
	)
	if path == "-" {
		res, err = analysis.Decode(cmd.InOrStdin(), inputFormat(format, ""))
	} else {
		var file *os.File
		file, err = os.Open(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil, services.Wrap(services.ErrNotFound, "input", "open", path, err)
			}
			return nil, services.Wrap(services.ErrTransient, "input", "open", path, err)
		}
		defer file.Close()
		res, err = analysis.Decode(file, inputFormat(format, path))
	}
	if err != nil {
		if errors.Is(err, analysis.ErrInvalidInput) {
			return nil, services.Wrap(services.ErrValidation, "input", "decode", "", err)
		}
		return nil, services.Wrap(services.ErrTransient, "input", "decode", "", err)
	}
	return res, nil
}

func inputFormat(flag, path string) analysis.Format {
	switch strings.ToLower(strings.TrimSpace(flag)) {
	case "yaml", "yml":
		return analysis.FormatYAML
	case "json":
		return analysis.FormatJSON
	}
	if path == "" {
		return analysis.FormatJSON
	}
	return analysis.FormatFromPath(path)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}

func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}
