package analysis

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidInput marks results that cannot be compiled because required data
// is missing or malformed.
var ErrInvalidInput = errors.New("invalid analysis result")

// FieldError identifies the offending field of an invalid result.
type FieldError struct {
	Field   string
	Problem string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrInvalidInput, e.Field, e.Problem)
}

func (e *FieldError) Unwrap() error { return ErrInvalidInput }

// Format selects the input encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the format from a file extension, defaulting to JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// FormatFromContentType maps an HTTP content type to a format, defaulting to
// JSON.
func FormatFromContentType(contentType string) Format {
	ct := strings.ToLower(contentType)
	if strings.Contains(ct, "yaml") {
		return FormatYAML
	}
	return FormatJSON
}

// wireResult mirrors AnalysisResult with pointers where absence must be
// distinguishable from a zero value.
type wireResult struct {
	Filename                string           `json:"filename" yaml:"filename"`
	DurationSeconds         Number           `json:"duration_seconds" yaml:"duration_seconds"`
	SpeechSeconds           Number           `json:"speech_seconds" yaml:"speech_seconds"`
	SilenceSeconds          Number           `json:"silence_seconds" yaml:"silence_seconds"`
	SpeechRatioPercent      Number           `json:"speech_ratio_percent" yaml:"speech_ratio_percent"`
	SilenceRatioPercent     Number           `json:"silence_ratio_percent" yaml:"silence_ratio_percent"`
	NumSpeakers             *int             `json:"num_speakers" yaml:"num_speakers"`
	GenderDistribution      *Distribution    `json:"gender_distribution" yaml:"gender_distribution"`
	ParticipantDistribution *Distribution    `json:"participant_distribution" yaml:"participant_distribution"`
	Speakers                *[]SpeakerRecord `json:"speakers" yaml:"speakers"`
	FullTranscript          string           `json:"full_transcript" yaml:"full_transcript"`
}

// Load reads and decodes a result file, choosing the format by extension.
func Load(path string) (*AnalysisResult, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open analysis result: %w", err)
	}
	defer file.Close()
	return Decode(file, FormatFromPath(path))
}

// Decode reads one result document and validates it. Unknown fields are
// ignored.
func Decode(r io.Reader, format Format) (*AnalysisResult, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read analysis result: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrInvalidInput)
	}

	var wire wireResult
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &wire)
	case FormatJSON, "":
		err = json.Unmarshal(data, &wire)
	default:
		return nil, fmt.Errorf("unsupported analysis format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s: %w", ErrInvalidInput, formatLabel(format), err)
	}

	result, err := wire.toResult()
	if err != nil {
		return nil, err
	}
	if err := result.Validate(); err != nil {
		return nil, err
	}
	return result, nil
}

func formatLabel(format Format) string {
	if format == "" {
		return string(FormatJSON)
	}
	return string(format)
}

func (w *wireResult) toResult() (*AnalysisResult, error) {
	if w.NumSpeakers == nil {
		return nil, &FieldError{Field: "num_speakers", Problem: "is required"}
	}
	if w.GenderDistribution == nil {
		return nil, &FieldError{Field: "gender_distribution", Problem: "is required"}
	}
	if w.ParticipantDistribution == nil {
		return nil, &FieldError{Field: "participant_distribution", Problem: "is required"}
	}
	if w.Speakers == nil {
		return nil, &FieldError{Field: "speakers", Problem: "is required"}
	}

	speakers := make([]SpeakerRecord, len(*w.Speakers))
	copy(speakers, *w.Speakers)
	for i := range speakers {
		speakers[i].ID = strings.TrimSpace(speakers[i].ID)
		if g, ok := ParseGender(string(speakers[i].Gender)); ok {
			speakers[i].Gender = g
		}
	}

	return &AnalysisResult{
		Filename:                strings.TrimSpace(w.Filename),
		DurationSeconds:         w.DurationSeconds,
		SpeechSeconds:           w.SpeechSeconds,
		SilenceSeconds:          w.SilenceSeconds,
		SpeechRatioPercent:      w.SpeechRatioPercent,
		SilenceRatioPercent:     w.SilenceRatioPercent,
		NumSpeakers:             *w.NumSpeakers,
		GenderDistribution:      *w.GenderDistribution,
		ParticipantDistribution: *w.ParticipantDistribution,
		Speakers:                speakers,
		FullTranscript:          w.FullTranscript,
	}, nil
}

// Validate checks the fields every consumer relies on. It does not check that
// durations or percentages are consistent with each other.
func (r *AnalysisResult) Validate() error {
	if r == nil {
		return fmt.Errorf("%w: nil result", ErrInvalidInput)
	}
	required := []struct {
		field string
		value Number
	}{
		{"duration_seconds", r.DurationSeconds},
		{"speech_seconds", r.SpeechSeconds},
		{"silence_seconds", r.SilenceSeconds},
		{"gender_distribution.male", r.GenderDistribution.Male},
		{"gender_distribution.female", r.GenderDistribution.Female},
		{"participant_distribution.male", r.ParticipantDistribution.Male},
		{"participant_distribution.female", r.ParticipantDistribution.Female},
	}
	for _, req := range required {
		if !req.value.IsSet() {
			return &FieldError{Field: req.field, Problem: "is required"}
		}
	}
	if r.NumSpeakers < 0 {
		return &FieldError{Field: "num_speakers", Problem: "must not be negative"}
	}

	seen := make(map[string]int, len(r.Speakers))
	for i, spk := range r.Speakers {
		field := fmt.Sprintf("speakers[%d]", i)
		if strings.TrimSpace(spk.ID) == "" {
			return &FieldError{Field: field + ".id", Problem: "is required"}
		}
		if prev, dup := seen[spk.ID]; dup {
			return &FieldError{Field: field + ".id", Problem: fmt.Sprintf("duplicates speakers[%d]", prev)}
		}
		seen[spk.ID] = i
		if _, ok := ParseGender(string(spk.Gender)); !ok {
			if spk.Gender == "" {
				return &FieldError{Field: field + ".gender", Problem: "is required"}
			}
			return &FieldError{Field: field + ".gender", Problem: fmt.Sprintf("has unsupported value %q", spk.Gender)}
		}
		if !spk.Duration.IsSet() {
			return &FieldError{Field: field + ".duration", Problem: "is required"}
		}
	}
	return nil
}
