package main

import (
	"fmt"
	"strings"

	"meetreport/internal/preflight"
)

type statusKind int

const (
	statusInfo statusKind = iota
	statusOK
	statusWarn
	statusError
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
)

var statusStyles = [...]struct {
	label string
	color string
}{
	statusInfo:  {"INFO", ansiBlue},
	statusOK:    {"OK", ansiGreen},
	statusWarn:  {"WARN", ansiYellow},
	statusError: {"ERROR", ansiRed},
}

const checkLabelWidth = 20

// renderStatusLine formats one indented "label: [KIND] detail" row.
func renderStatusLine(label string, kind statusKind, detail string, colorize bool) string {
	style := statusStyles[kind]
	line := fmt.Sprintf("  %-*s [%s]", checkLabelWidth, label+":", style.label)
	if detail != "" {
		line += " " + detail
	}
	if colorize {
		line = style.color + line + ansiReset
	}
	return line
}

func paint(s string, colorize bool) string {
	if !colorize {
		return s
	}
	return ansiBlue + s + ansiReset
}

// resultKind maps a check outcome to its row style. Failed advisory checks
// are warnings.
func resultKind(r preflight.Result) statusKind {
	switch {
	case r.Passed:
		return statusOK
	case r.Advisory:
		return statusWarn
	default:
		return statusError
	}
}

// renderPreflight prints the config source as an INFO row followed by one
// row per check result.
func renderPreflight(configPath string, configFound bool, results []preflight.Result, colorize bool) []string {
	title := "== Preflight =="
	lines := []string{paint(title, colorize), paint(strings.Repeat("-", len(title)), colorize)}

	source := configPath
	if !configFound {
		source += " (not found, defaults in use)"
	}
	lines = append(lines, renderStatusLine("Config file", statusInfo, source, colorize))
	for _, r := range results {
		lines = append(lines, renderStatusLine(r.Name, resultKind(r), r.Detail, colorize))
	}
	return lines
}
