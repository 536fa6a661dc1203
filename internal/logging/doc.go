// Package logging assembles structured slog loggers and formatting helpers used
// across meetreport.
//
// It owns the configurable console/JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so compile and request code can
// tag log lines with the analysis source, stage, and correlation ID. The
// package also provides a no-op logger for tests and wiring code that cannot
// fail.
package logging
