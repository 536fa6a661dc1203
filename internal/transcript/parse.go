// Package transcript turns per-speaker annotated transcript lines into typed
// segments and merges them into one chronological timeline.
package transcript

import (
	"strconv"
	"strings"
	"unicode"

	"meetreport/internal/analysis"
)

// Segment is one timestamped utterance by one speaker.
type Segment struct {
	Speaker string          `json:"speaker"`
	Gender  analysis.Gender `json:"gender"`
	Start   float64         `json:"start"`
	End     float64         `json:"end"`
	Text    string          `json:"text"`
	// Roster is the speaker's position in the result's speaker list.
	Roster int `json:"roster"`
	// Line is the index of the raw line the segment was parsed from.
	Line int `json:"line"`
}

// Duration returns End - Start.
func (s Segment) Duration() float64 { return s.End - s.Start }

// ParseLine recognizes "<start>-<end>: <text>". Start and end are runs of
// ASCII digits and dots that must parse as decimal numbers. The text is the
// remainder with surrounding whitespace removed. ok is false for any line
// that does not match or whose text is empty.
func ParseLine(line string) (start, end float64, text string, ok bool) {
	rest := strings.TrimLeftFunc(line, unicode.IsSpace)

	startTok, rest := takeNumber(rest)
	if startTok == "" || !strings.HasPrefix(rest, "-") {
		return 0, 0, "", false
	}
	endTok, rest := takeNumber(rest[1:])
	if endTok == "" || !strings.HasPrefix(rest, ":") {
		return 0, 0, "", false
	}

	var err error
	if start, err = strconv.ParseFloat(startTok, 64); err != nil {
		return 0, 0, "", false
	}
	if end, err = strconv.ParseFloat(endTok, 64); err != nil {
		return 0, 0, "", false
	}
	if end < start {
		return 0, 0, "", false
	}

	text = strings.TrimSpace(rest[1:])
	if text == "" {
		return 0, 0, "", false
	}
	return start, end, text, true
}

// takeNumber splits off the leading run of digits and dots.
func takeNumber(s string) (token, rest string) {
	i := 0
	for i < len(s) && (s[i] == '.' || (s[i] >= '0' && s[i] <= '9')) {
		i++
	}
	return s[:i], s[i:]
}

// Parse extracts segments from a speaker's raw lines, preserving line order.
// Lines that do not match are dropped silently. rosterIndex is recorded on
// each segment.
func Parse(rec analysis.SpeakerRecord, rosterIndex int) []Segment {
	if len(rec.Transcripts) == 0 {
		return nil
	}
	segments := make([]Segment, 0, len(rec.Transcripts))
	for i, line := range rec.Transcripts {
		start, end, text, ok := ParseLine(line)
		if !ok {
			continue
		}
		segments = append(segments, Segment{
			Speaker: rec.ID,
			Gender:  rec.Gender,
			Start:   start,
			End:     end,
			Text:    text,
			Roster:  rosterIndex,
			Line:    i,
		})
	}
	return segments
}
