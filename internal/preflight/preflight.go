package preflight

import (
	"context"

	"meetreport/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
	// Advisory results are reported but never block the caller.
	Advisory bool
}

// Options select which checks RunAll performs.
type Options struct {
	// CheckBind also verifies the server bind address can be listened on.
	CheckBind bool
	// BindAdvisory downgrades a failed bind check to a warning. config
	// validate sets it because a running server holds the address.
	BindAdvisory bool
}

// RunAll executes the applicable preflight checks for the given config.
func RunAll(ctx context.Context, cfg *config.Config, opts Options) []Result {
	if cfg == nil {
		return nil
	}

	results := []Result{
		CheckOutputDirectory("Output directory", cfg.Report.OutputDir),
		CheckLayout("Page layout", cfg),
	}
	if opts.CheckBind {
		bind := CheckBindAvailable(ctx, "Server bind", cfg.Server.Bind)
		bind.Advisory = opts.BindAdvisory
		results = append(results, bind)
	}
	return results
}

// Failed returns the blocking results that did not pass.
func Failed(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if !r.Passed && !r.Advisory {
			failed = append(failed, r)
		}
	}
	return failed
}

// Warnings returns the advisory results that did not pass.
func Warnings(results []Result) []Result {
	var warned []Result
	for _, r := range results {
		if !r.Passed && r.Advisory {
			warned = append(warned, r)
		}
	}
	return warned
}
