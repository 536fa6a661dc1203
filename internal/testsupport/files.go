package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFile writes content to path, creating parent directories.
func WriteFile(t testing.TB, path, content string) string {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// WriteSampleJSON writes SampleJSON into a temp directory and returns the path.
func WriteSampleJSON(t testing.TB) string {
	t.Helper()
	return WriteFile(t, filepath.Join(t.TempDir(), "meeting.json"), SampleJSON)
}
