package testsupport

import (
	"fmt"
	"strings"
	"testing"

	"meetreport/internal/analysis"
)

// SampleJSON is a backend response with two speakers, one malformed line and
// interleaved turns.
const SampleJSON = `{
  "filename": "toplanti.wav",
  "duration_seconds": 120.50,
  "speech_seconds": 98.25,
  "silence_seconds": 22.25,
  "speech_ratio_percent": 81.5,
  "silence_ratio_percent": 18.5,
  "num_speakers": 2,
  "gender_distribution": {"male": 62.4, "female": 37.6},
  "participant_distribution": {"male": 50, "female": 50},
  "speakers": [
    {
      "id": "SPEAKER_00",
      "gender": "male",
      "duration": 61.3,
      "segments": ["0.0-4.2", "9.0-12.5"],
      "transcripts": [
        "0.0-4.2: Merhaba, toplantıya hoş geldiniz.",
        "9.0-12.5: Bütçe konusuna geçelim.",
        "not a transcript line"
      ]
    },
    {
      "id": "SPEAKER_01",
      "gender": "female",
      "duration": 36.95,
      "transcripts": [
        "4.5-8.75: Teşekkürler, gündem hazır.",
        "13.0-15.0: Tamam."
      ]
    }
  ]
}`

// SampleYAML is SampleJSON expressed as YAML.
const SampleYAML = `duration_seconds: 120.50
speech_seconds: 98.25
silence_seconds: 22.25
num_speakers: 2
gender_distribution: {male: 62.4, female: 37.6}
participant_distribution: {male: 50, female: 50}
speakers:
  - id: SPEAKER_00
    gender: male
    duration: 61.3
    transcripts:
      - "0.0-4.2: Merhaba, toplantıya hoş geldiniz."
      - "9.0-12.5: Bütçe konusuna geçelim."
      - "not a transcript line"
  - id: SPEAKER_01
    gender: female
    duration: 36.95
    transcripts:
      - "4.5-8.75: Teşekkürler, gündem hazır."
      - "13.0-15.0: Tamam."
`

// SampleResult decodes SampleJSON.
func SampleResult(t testing.TB) *analysis.AnalysisResult {
	t.Helper()
	res, err := analysis.Decode(strings.NewReader(SampleJSON), analysis.FormatJSON)
	if err != nil {
		t.Fatalf("decode sample: %v", err)
	}
	return res
}

// Speaker builds a speaker record with the given transcript lines.
func Speaker(id string, gender analysis.Gender, duration float64, lines ...string) analysis.SpeakerRecord {
	return analysis.SpeakerRecord{
		ID:          id,
		Gender:      gender,
		Duration:    analysis.NewNumber(duration),
		Transcripts: lines,
	}
}

// Result builds a valid result around the given speakers.
func Result(speakers ...analysis.SpeakerRecord) *analysis.AnalysisResult {
	return &analysis.AnalysisResult{
		DurationSeconds:         analysis.NewNumber(60),
		SpeechSeconds:           analysis.NewNumber(50),
		SilenceSeconds:          analysis.NewNumber(10),
		NumSpeakers:             len(speakers),
		GenderDistribution:      analysis.Distribution{Male: analysis.NewNumber(50), Female: analysis.NewNumber(50)},
		ParticipantDistribution: analysis.Distribution{Male: analysis.NewNumber(50), Female: analysis.NewNumber(50)},
		Speakers:                speakers,
	}
}

// Lines returns n transcript lines one second apart, starting at offset.
func Lines(n int, offset float64, text string) []string {
	lines := make([]string, 0, n)
	for i := range n {
		start := offset + float64(i)
		lines = append(lines, fmt.Sprintf("%g-%g: %s", start, start+0.5, text))
	}
	return lines
}
