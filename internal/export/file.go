package export

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"meetreport/internal/fileutil"
	"meetreport/internal/layout"
	"meetreport/internal/services"
	"meetreport/internal/textutil"
)

const lockRetryDelay = 50 * time.Millisecond

// Delivery describes a written artifact.
type Delivery struct {
	Path   string `json:"path"`
	Bytes  int64  `json:"bytes"`
	SHA256 string `json:"sha256"`
}

// TargetPath returns the artifact path for a base name and sink. The base is
// sanitized and its extension, if any, replaced by the sink's.
func TargetPath(dir, base string, sink Sink) string {
	return filepath.Join(dir, textutil.BaseName(base, DefaultBaseName)+sink.Extension())
}

// WriteFile exports doc to <dir>/<base><ext>. Concurrent writers of the same
// target are serialized by an advisory lock beside it; the caller waits until
// ctx is done for the lock. The previous artifact is replaced atomically.
func WriteFile(ctx context.Context, dir, base string, sink Sink, doc *layout.Document) (Delivery, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Delivery{}, services.Wrap(services.ErrConfiguration, "export", "prepare", fmt.Sprintf("create output directory %q", dir), err)
	}
	target := TargetPath(dir, base, sink)

	lock := flock.New(filepath.Join(dir, "."+filepath.Base(target)+".lock"))
	locked, err := lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return Delivery{}, services.Wrap(services.ErrConflict, "export", "lock", target, err)
	}
	if !locked {
		return Delivery{}, services.Wrap(services.ErrConflict, "export", "lock", target+" is locked by another writer", nil)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	n, digest, err := fileutil.WriteAtomic(target, 0o644, func(w io.Writer) error {
		return sink.Export(ctx, doc, w)
	})
	if err != nil {
		return Delivery{}, services.Wrap(services.ErrTransient, "export", "write", target, err)
	}
	return Delivery{Path: target, Bytes: n, SHA256: digest}, nil
}
