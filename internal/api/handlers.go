package api

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"meetreport/internal/analysis"
	"meetreport/internal/export"
	"meetreport/internal/logging"
	"meetreport/internal/palette"
	"meetreport/internal/report"
	"meetreport/internal/services"
	"meetreport/internal/transcript"
)

// TimelineSegment is one merged segment with its display identity.
type TimelineSegment struct {
	transcript.Segment
	PaletteIndex int    `json:"palette_index"`
	Color        string `json:"color"`
	Caption      string `json:"caption"`
}

// TimelineResponse is the body of POST /api/timeline.
type TimelineResponse struct {
	RequestID   string            `json:"request_id"`
	Filename    string            `json:"filename,omitempty"`
	Count       int               `json:"count"`
	Segments    []TimelineSegment `json:"segments"`
	Placeholder string            `json:"placeholder,omitempty"`
}

func (s *Server) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (s *Server) timeline(c *fiber.Ctx) error {
	res, err := s.decode(c)
	if err != nil {
		return err
	}
	labels := report.LabelsFor(s.cfg.Report.Language)
	pal := palette.New(res.Roster(), s.cfg.Report.PaletteSize)
	merged := transcript.MergeResult(res)

	resp := TimelineResponse{
		RequestID: requestIDOf(c),
		Filename:  res.Filename,
		Count:     len(merged),
		Segments:  make([]TimelineSegment, 0, len(merged)),
	}
	for _, seg := range merged {
		resp.Segments = append(resp.Segments, TimelineSegment{
			Segment:      seg,
			PaletteIndex: pal.Index(seg.Speaker),
			Color:        pal.Swatch(seg.Speaker).Hex,
			Caption:      labels.Caption(seg.Start, seg.End),
		})
	}
	if len(merged) == 0 {
		resp.Placeholder = labels.NoTranscript
	}
	return c.JSON(resp)
}

func (s *Server) report(c *fiber.Ctx) error {
	res, err := s.decode(c)
	if err != nil {
		return err
	}
	ctx := services.WithStage(c.UserContext(), "compile")
	logger := logging.WithContext(ctx, s.logger)

	opts := report.OptionsFromConfig(s.cfg, logger)
	if raw := c.Query("dialogue"); raw != "" {
		opts.IncludeDialogue = c.QueryBool("dialogue", opts.IncludeDialogue)
	}
	format := c.Query("format", s.cfg.Report.Format)
	sink, err := export.SinkFor(format)
	if err != nil {
		return services.Wrap(services.ErrValidation, "report", "format", "", err)
	}

	doc, err := report.Compile(res, opts)
	if err != nil {
		return services.Wrap(services.ErrConfiguration, "report", "compile", "", err)
	}

	var buf bytes.Buffer
	if err := sink.Export(ctx, doc, &buf); err != nil {
		return services.Wrap(services.ErrTransient, "report", "export", "", err)
	}
	filename := s.cfg.Report.OutputName + sink.Extension()
	c.Set(fiber.HeaderContentType, sink.ContentType())
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	c.Set("X-Report-Pages", fmt.Sprint(len(doc.Pages)))
	return c.Send(buf.Bytes())
}

// decode reads an AnalysisResult from a multipart "file" field or the raw
// body, choosing JSON or YAML from the file name or content type.
func (s *Server) decode(c *fiber.Ctx) (*analysis.AnalysisResult, error) {
	ctx := services.WithStage(c.UserContext(), "decode")
	var (
		res *analysis.AnalysisResult
		err error
	)
	if strings.HasPrefix(strings.ToLower(c.Get(fiber.HeaderContentType)), fiber.MIMEMultipartForm) {
		file, ferr := c.FormFile("file")
		if ferr != nil {
			return nil, services.Wrap(services.ErrValidation, "decode", "upload", "no file uploaded", nil)
		}
		ctx = services.WithSource(ctx, file.Filename)
		f, oerr := file.Open()
		if oerr != nil {
			return nil, services.Wrap(services.ErrTransient, "decode", "upload", "open uploaded file", oerr)
		}
		defer f.Close()
		res, err = analysis.Decode(f, analysis.FormatFromPath(file.Filename))
	} else {
		res, err = analysis.Decode(bytes.NewReader(c.Body()), analysis.FormatFromContentType(c.Get(fiber.HeaderContentType)))
	}
	if err != nil {
		if errors.Is(err, analysis.ErrInvalidInput) {
			return nil, services.Wrap(services.ErrValidation, "decode", "", "", err)
		}
		return nil, services.Wrap(services.ErrTransient, "decode", "", "", err)
	}
	logging.WithContext(ctx, s.logger).Debug("analysis decoded",
		logging.Int("speakers", len(res.Speakers)),
		logging.Int("transcript_lines", res.TranscriptLineCount()),
	)
	return res, nil
}
