package export

import (
	"context"
	"encoding/json"
	"errors"
	"io"

	"meetreport/internal/layout"
)

// DocumentSchema identifies the JSON layout consumed by renderers.
const DocumentSchema = "meetreport.document/v1"

// JSONSink writes the document's page model.
type JSONSink struct {
	Indent bool
}

type jsonEnvelope struct {
	Schema    string          `json:"schema"`
	Title     string          `json:"title"`
	PageCount int             `json:"page_count"`
	Geometry  layout.Geometry `json:"geometry"`
	Pages     []layout.Page   `json:"pages"`
}

// Export implements Sink.
func (s JSONSink) Export(ctx context.Context, doc *layout.Document, w io.Writer) error {
	if doc == nil {
		return errors.New("export: nil document")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	if s.Indent {
		enc.SetIndent("", "  ")
	}
	enc.SetEscapeHTML(false)
	return enc.Encode(jsonEnvelope{
		Schema:    DocumentSchema,
		Title:     doc.Title,
		PageCount: len(doc.Pages),
		Geometry:  doc.Geometry,
		Pages:     doc.Pages,
	})
}

// Extension implements Sink.
func (JSONSink) Extension() string { return ".json" }

// ContentType implements Sink.
func (JSONSink) ContentType() string { return "application/json" }
