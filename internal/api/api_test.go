package api

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"meetreport/internal/export"
	"meetreport/internal/logging"
	"meetreport/internal/testsupport"
)

func newTestServer(t *testing.T, opts ...testsupport.ConfigOption) *Server {
	t.Helper()
	return New(testsupport.NewConfig(t, opts...), logging.NewNop())
}

func do(t *testing.T, s *Server, req *http.Request) (*http.Response, []byte) {
	t.Helper()
	resp, err := s.App().Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, body
}

func postJSON(target, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	resp, body := do(t, s, httptest.NewRequest(http.MethodGet, "/health", nil))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if !strings.Contains(string(body), `"ok"`) {
		t.Fatalf("body = %s", body)
	}
	if resp.Header.Get(headerRequestID) == "" {
		t.Fatal("expected a generated request id header")
	}
}

func TestRequestIDIsEchoed(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(headerRequestID, "abc-123")
	resp, _ := do(t, s, req)
	if got := resp.Header.Get(headerRequestID); got != "abc-123" {
		t.Fatalf("request id = %q", got)
	}
}

func TestTimelineMergesAndColours(t *testing.T) {
	s := newTestServer(t)
	resp, body := do(t, s, postJSON("/api/timeline", testsupport.SampleJSON))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d body = %s", resp.StatusCode, body)
	}
	var got TimelineResponse
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Count != 4 || len(got.Segments) != 4 {
		t.Fatalf("count = %d segments = %d", got.Count, len(got.Segments))
	}
	wantStarts := []float64{0.0, 4.5, 9.0, 13.0}
	wantColours := []string{"#90caf9", "#ffab91", "#90caf9", "#ffab91"}
	for i, seg := range got.Segments {
		if seg.Start != wantStarts[i] || seg.Color != wantColours[i] {
			t.Fatalf("segment %d = start %v colour %s", i, seg.Start, seg.Color)
		}
	}
	if got.Segments[1].PaletteIndex != 1 || got.Segments[1].Speaker != "SPEAKER_01" {
		t.Fatalf("segment 1 = %+v", got.Segments[1])
	}
	if got.Segments[0].Caption != "[0.00 - 4.20 sn]" {
		t.Fatalf("caption = %q", got.Segments[0].Caption)
	}
	if got.Placeholder != "" {
		t.Fatalf("unexpected placeholder %q", got.Placeholder)
	}
	if got.Filename != "toplanti.wav" {
		t.Fatalf("filename = %q", got.Filename)
	}
}

func TestTimelineEmptyHasPlaceholder(t *testing.T) {
	s := newTestServer(t, testsupport.WithLanguage("en"))
	body := `{"duration_seconds": 1, "speech_seconds": 1, "silence_seconds": 0,
		"num_speakers": 0,
		"gender_distribution": {"male": 0, "female": 0},
		"participant_distribution": {"male": 0, "female": 0},
		"speakers": []}`
	resp, raw := do(t, s, postJSON("/api/timeline", body))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d body = %s", resp.StatusCode, raw)
	}
	var got TimelineResponse
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Count != 0 || got.Segments == nil {
		t.Fatalf("expected an empty, non-null segment list: %s", raw)
	}
	if got.Placeholder != "No transcript found." {
		t.Fatalf("placeholder = %q", got.Placeholder)
	}
}

func TestTimelineAcceptsYAML(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/api/timeline", strings.NewReader(testsupport.SampleYAML))
	req.Header.Set("Content-Type", "application/yaml")
	resp, body := do(t, s, req)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d body = %s", resp.StatusCode, body)
	}
}

func TestReportJSON(t *testing.T) {
	s := newTestServer(t)
	resp, body := do(t, s, postJSON("/api/report", testsupport.SampleJSON))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d body = %s", resp.StatusCode, body)
	}
	if cd := resp.Header.Get("Content-Disposition"); !strings.Contains(cd, "toplanti-analiz.json") {
		t.Fatalf("content disposition = %q", cd)
	}
	if resp.Header.Get("X-Report-Pages") != "1" {
		t.Fatalf("pages header = %q", resp.Header.Get("X-Report-Pages"))
	}
	var env struct {
		Schema    string `json:"schema"`
		Title     string `json:"title"`
		PageCount int    `json:"page_count"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Schema != export.DocumentSchema || env.PageCount != 1 {
		t.Fatalf("envelope = %+v", env)
	}
}

func TestReportTextWithoutDialogue(t *testing.T) {
	s := newTestServer(t)
	resp, body := do(t, s, postJSON("/api/report?format=text&dialogue=false", testsupport.SampleJSON))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d body = %s", resp.StatusCode, body)
	}
	if !strings.HasPrefix(resp.Header.Get("Content-Type"), "text/plain") {
		t.Fatalf("content type = %q", resp.Header.Get("Content-Type"))
	}
	text := string(body)
	if !strings.Contains(text, "SPEAKER_00") {
		t.Fatalf("expected the speaker table in:\n%s", text)
	}
	if strings.Contains(text, "Tesekkurler") {
		t.Fatalf("dialogue should be omitted:\n%s", text)
	}
}

func TestReportRejectsUnknownFormat(t *testing.T) {
	s := newTestServer(t)
	resp, body := do(t, s, postJSON("/api/report?format=pdf", testsupport.SampleJSON))
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d body = %s", resp.StatusCode, body)
	}
}

func TestInvalidInputIs422(t *testing.T) {
	s := newTestServer(t)
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"malformed json", `{"speakers": [`, ""},
		{"empty body", ``, ""},
		{"missing speakers", `{"duration_seconds": 1, "speech_seconds": 1, "silence_seconds": 0,
			"num_speakers": 0, "gender_distribution": {"male": 0, "female": 0},
			"participant_distribution": {"male": 0, "female": 0}}`, "speakers"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := postJSON("/api/report", tt.body)
			req.Header.Set(headerRequestID, "req-1")
			resp, raw := do(t, s, req)
			if resp.StatusCode != http.StatusUnprocessableEntity {
				t.Fatalf("status = %d body = %s", resp.StatusCode, raw)
			}
			var got map[string]any
			if err := json.Unmarshal(raw, &got); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if got["code"] != "ERR_INVALID_INPUT" || got["request_id"] != "req-1" {
				t.Fatalf("body = %v", got)
			}
			if tt.field != "" && got["field"] != tt.field {
				t.Fatalf("field = %v, want %s", got["field"], tt.field)
			}
		})
	}
}

func TestMultipartUpload(t *testing.T) {
	s := newTestServer(t)
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "meeting.yaml")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write([]byte(testsupport.SampleYAML)); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/timeline", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	resp, body := do(t, s, req)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d body = %s", resp.StatusCode, body)
	}
	var got TimelineResponse
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Count != 4 {
		t.Fatalf("count = %d", got.Count)
	}
}

func TestMultipartWithoutFile(t *testing.T) {
	s := newTestServer(t)
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	_ = mw.WriteField("note", "x")
	_ = mw.Close()
	req := httptest.NewRequest(http.MethodPost, "/api/timeline", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	resp, body := do(t, s, req)
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d body = %s", resp.StatusCode, body)
	}
}

func TestUnknownRouteIs404(t *testing.T) {
	s := newTestServer(t)
	resp, body := do(t, s, httptest.NewRequest(http.MethodGet, "/nope", nil))
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if !strings.Contains(string(body), "ERR_NOT_FOUND") {
		t.Fatalf("body = %s", body)
	}
}

func TestRejectedRequestLogsWarning(t *testing.T) {
	var logs bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "json", Level: "warn", Writer: &logs})
	if err != nil {
		t.Fatalf("logging.New: %v", err)
	}
	s := New(testsupport.NewConfig(t), logger)

	req := postJSON("/api/report", `{"speakers": [`)
	req.Header.Set(headerRequestID, "req-warn")
	resp, _ := do(t, s, req)
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	lines := strings.Split(strings.TrimSpace(logs.String()), "\n")
	var record map[string]any
	if err := json.Unmarshal([]byte(lines[len(lines)-1]), &record); err != nil {
		t.Fatalf("decode log %q: %v", logs.String(), err)
	}
	if record["level"] != "warn" || record[logging.FieldEventType] != "http_rejected" {
		t.Fatalf("record = %v", record)
	}
	if record[logging.FieldCorrelationID] != "req-warn" {
		t.Fatalf("correlation_id = %v", record[logging.FieldCorrelationID])
	}
	if record[logging.FieldErrorHint] == nil {
		t.Fatal("expected error hint")
	}
}
