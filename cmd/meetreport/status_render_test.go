package main

import (
	"strings"
	"testing"

	"meetreport/internal/preflight"
)

func TestRenderStatusLine(t *testing.T) {
	tests := []struct {
		kind  statusKind
		want  string
		color string
	}{
		{statusInfo, "  Config file:         [INFO] /tmp/meetreport.toml", ansiBlue},
		{statusOK, "  Config file:         [OK] /tmp/meetreport.toml", ansiGreen},
		{statusWarn, "  Config file:         [WARN] /tmp/meetreport.toml", ansiYellow},
		{statusError, "  Config file:         [ERROR] /tmp/meetreport.toml", ansiRed},
	}
	for _, tt := range tests {
		if got := renderStatusLine("Config file", tt.kind, "/tmp/meetreport.toml", false); got != tt.want {
			t.Fatalf("renderStatusLine(%d) = %q, want %q", tt.kind, got, tt.want)
		}
		colored := renderStatusLine("Config file", tt.kind, "", true)
		if !strings.HasPrefix(colored, tt.color) || !strings.HasSuffix(colored, ansiReset) {
			t.Fatalf("kind %d: unexpected colouring %q", tt.kind, colored)
		}
	}
}

func TestRenderPreflight(t *testing.T) {
	lines := renderPreflight("/etc/meetreport.toml", false, []preflight.Result{
		{Name: "Output directory", Passed: true, Detail: "ok"},
		{Name: "Page layout", Detail: "too narrow"},
		{Name: "Server bind", Detail: "busy", Advisory: true},
	}, false)
	if len(lines) != 6 {
		t.Fatalf("expected header, rule, config row and three results, got %q", lines)
	}
	if lines[0] != "== Preflight ==" || lines[1] != strings.Repeat("-", len(lines[0])) {
		t.Fatalf("unexpected header %q", lines[:2])
	}
	checks := []string{
		"[INFO] /etc/meetreport.toml (not found, defaults in use)",
		"[OK] ok",
		"[ERROR] too narrow",
		"[WARN] busy",
	}
	for i, want := range checks {
		if !strings.Contains(lines[i+2], want) {
			t.Fatalf("line %d = %q, want %q", i+2, lines[i+2], want)
		}
	}
}
