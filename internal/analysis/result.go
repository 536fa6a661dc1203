package analysis

import "strings"

// Gender is the backend's per-speaker gender classification.
type Gender string

const (
	GenderMale    Gender = "male"
	GenderFemale  Gender = "female"
	GenderUnknown Gender = "unknown"
)

// ParseGender normalizes a raw gender value. ok is false for values the
// backend never emits.
func ParseGender(raw string) (Gender, bool) {
	switch Gender(strings.ToLower(strings.TrimSpace(raw))) {
	case GenderMale:
		return GenderMale, true
	case GenderFemale:
		return GenderFemale, true
	case GenderUnknown:
		return GenderUnknown, true
	default:
		return "", false
	}
}

// Distribution is a male/female percentage split as computed upstream. The
// values are not required to sum to 100.
type Distribution struct {
	Male   Number `json:"male" yaml:"male"`
	Female Number `json:"female" yaml:"female"`
}

// SpeakerRecord describes one diarized speaker.
type SpeakerRecord struct {
	ID          string   `json:"id" yaml:"id"`
	Gender      Gender   `json:"gender" yaml:"gender"`
	Duration    Number   `json:"duration" yaml:"duration"`
	Transcripts []string `json:"transcripts,omitempty" yaml:"transcripts,omitempty"`
	// Segments carries the backend's raw "start-end" turn list. It is kept for
	// passthrough and never interpreted.
	Segments []string `json:"segments,omitempty" yaml:"segments,omitempty"`
}

// AnalysisResult is the complete backend response for one recording.
type AnalysisResult struct {
	Filename                string          `json:"filename,omitempty" yaml:"filename,omitempty"`
	DurationSeconds         Number          `json:"duration_seconds" yaml:"duration_seconds"`
	SpeechSeconds           Number          `json:"speech_seconds" yaml:"speech_seconds"`
	SilenceSeconds          Number          `json:"silence_seconds" yaml:"silence_seconds"`
	SpeechRatioPercent      Number          `json:"speech_ratio_percent,omitzero" yaml:"speech_ratio_percent,omitempty"`
	SilenceRatioPercent     Number          `json:"silence_ratio_percent,omitzero" yaml:"silence_ratio_percent,omitempty"`
	NumSpeakers             int             `json:"num_speakers" yaml:"num_speakers"`
	GenderDistribution      Distribution    `json:"gender_distribution" yaml:"gender_distribution"`
	ParticipantDistribution Distribution    `json:"participant_distribution" yaml:"participant_distribution"`
	Speakers                []SpeakerRecord `json:"speakers" yaml:"speakers"`
	FullTranscript          string          `json:"full_transcript,omitempty" yaml:"full_transcript,omitempty"`
}

// Roster returns speaker IDs in the order the backend listed them.
func (r *AnalysisResult) Roster() []string {
	if r == nil {
		return nil
	}
	ids := make([]string, 0, len(r.Speakers))
	for _, spk := range r.Speakers {
		ids = append(ids, spk.ID)
	}
	return ids
}

// TranscriptLineCount returns the number of raw transcript lines across all
// speakers.
func (r *AnalysisResult) TranscriptLineCount() int {
	if r == nil {
		return 0
	}
	total := 0
	for _, spk := range r.Speakers {
		total += len(spk.Transcripts)
	}
	return total
}
