package export

import (
	"context"
	"fmt"
	"io"
	"strings"

	"meetreport/internal/layout"
)

// DefaultBaseName is the artifact name used when none is configured.
const DefaultBaseName = "toplanti-analiz"

// Sink serializes a compiled document.
type Sink interface {
	Export(ctx context.Context, doc *layout.Document, w io.Writer) error
	// Extension is the file extension including the dot.
	Extension() string
	ContentType() string
}

// SinkFor returns the sink for a configured format name.
func SinkFor(format string) (Sink, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "":
		return JSONSink{Indent: true}, nil
	case "text", "txt":
		return TextSink{}, nil
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
}
