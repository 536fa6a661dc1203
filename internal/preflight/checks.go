package preflight

import (
	"context"
	"fmt"
	"net"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"

	"meetreport/internal/config"
)

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckOutputDirectory passes when path is a writable directory, or when it
// does not exist yet and its nearest existing ancestor is writable.
func CheckOutputDirectory(name, path string) Result {
	if _, err := os.Stat(path); err == nil || !os.IsNotExist(err) {
		return CheckDirectoryAccess(name, path)
	}
	parent := filepath.Dir(filepath.Clean(path))
	for {
		if _, err := os.Stat(parent); err == nil {
			break
		}
		next := filepath.Dir(parent)
		if next == parent {
			break
		}
		parent = next
	}
	ancestor := CheckDirectoryAccess(name, parent)
	if !ancestor.Passed {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: cannot be created under %s)", path, parent)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (will be created)", path)}
}

// CheckLayout verifies that a dialogue block of one line fits below the top
// margin, so pagination always makes progress.
func CheckLayout(name string, cfg *config.Config) Result {
	geo := cfg.Geometry()
	if err := geo.Validate(); err != nil {
		return Result{Name: name, Detail: err.Error()}
	}
	lines := int(geo.Usable() / geo.LineHeight)
	chars := int(geo.ContentWidth / cfg.Layout.GlyphAdvance)
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%d lines x %d chars per page", lines, chars)}
}

// CheckBindAvailable verifies the address can be listened on.
func CheckBindAvailable(ctx context.Context, name, bind string) Result {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", bind)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %v)", bind, err)}
	}
	addr := ln.Addr().String()
	_ = ln.Close()
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (available)", addr)}
}
