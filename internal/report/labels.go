package report

import (
	"fmt"

	"golang.org/x/text/language"

	"meetreport/internal/analysis"
	"meetreport/internal/textutil"
)

// Labels is the fixed set of strings a report is printed with.
type Labels struct {
	Tag             language.Tag
	Title           string
	TotalDuration   string
	Speech          string
	Silence         string
	SpeakerCount    string
	TableHeader     [3]string
	Male            string
	Female          string
	Unknown         string
	GenderSplit     string
	ParticipantMix  string
	DialogueHeading string
	NoTranscript    string
	SecondsUnit     string
}

var turkishLabels = Labels{
	Tag:             language.Turkish,
	Title:           "TOPLANTI ANALİZ RAPORU",
	TotalDuration:   "TOPLAM SÜRE",
	Speech:          "KONUŞMA",
	Silence:         "SESSİZLİK",
	SpeakerCount:    "KONUŞMACI SAYISI",
	TableHeader:     [3]string{"KONUŞMACI", "KONUŞMA SÜRESİ (s)", "CİNSİYET"},
	Male:            "Erkek",
	Female:          "Kadın",
	Unknown:         "Bilinmiyor",
	GenderSplit:     "CİNSİYET DAĞILIMI (KONUŞMA SÜRESİ)",
	ParticipantMix:  "KATILIMCI DAĞILIMI (KİŞİ SAYISI)",
	DialogueHeading: "SOHBET AKIŞI",
	NoTranscript:    "Transcript bulunamadı.",
	SecondsUnit:     "sn",
}

var englishLabels = Labels{
	Tag:             language.English,
	Title:           "MEETING ANALYSIS REPORT",
	TotalDuration:   "TOTAL DURATION",
	Speech:          "SPEECH",
	Silence:         "SILENCE",
	SpeakerCount:    "SPEAKER COUNT",
	TableHeader:     [3]string{"SPEAKER", "SPEECH DURATION (s)", "GENDER"},
	Male:            "Male",
	Female:          "Female",
	Unknown:         "Unknown",
	GenderSplit:     "GENDER DISTRIBUTION (SPEECH TIME)",
	ParticipantMix:  "PARTICIPANT DISTRIBUTION (HEADCOUNT)",
	DialogueHeading: "DIALOGUE FLOW",
	NoTranscript:    "No transcript found.",
	SecondsUnit:     "s",
}

var labelMatcher = language.NewMatcher([]language.Tag{language.Turkish, language.English})

// LabelsFor returns the label set closest to a BCP 47 tag such as "tr" or
// "en-GB". Unrecognized tags select Turkish.
func LabelsFor(tag string) Labels {
	_, idx := language.MatchStrings(labelMatcher, tag)
	if idx == 1 {
		return englishLabels
	}
	return turkishLabels
}

// GenderLabel maps a speaker gender to its upper-cased table label.
func (l Labels) GenderLabel(g analysis.Gender) string {
	label := l.Unknown
	switch g {
	case analysis.GenderMale:
		label = l.Male
	case analysis.GenderFemale:
		label = l.Female
	}
	return textutil.Upper(l.Tag, label)
}

// ScalarLines returns the four summary lines in print order.
func (l Labels) ScalarLines(res *analysis.AnalysisResult) []string {
	return []string{
		fmt.Sprintf("%s: %ss", l.TotalDuration, res.DurationSeconds),
		fmt.Sprintf("%s: %ss", l.Speech, res.SpeechSeconds),
		fmt.Sprintf("%s: %ss", l.Silence, res.SilenceSeconds),
		fmt.Sprintf("%s: %d", l.SpeakerCount, res.NumSpeakers),
	}
}

// DistributionLines returns the gender and participant distribution lines.
func (l Labels) DistributionLines(res *analysis.AnalysisResult) []string {
	return []string{
		l.distribution(l.GenderSplit, res.GenderDistribution),
		l.distribution(l.ParticipantMix, res.ParticipantDistribution),
	}
}

func (l Labels) distribution(prefix string, d analysis.Distribution) string {
	return fmt.Sprintf("%s: %s %%%s / %s %%%s",
		prefix,
		l.GenderLabel(analysis.GenderMale), d.Male,
		l.GenderLabel(analysis.GenderFemale), d.Female,
	)
}

// Caption formats a segment's time range, e.g. "[1.50 - 3.25 sn]".
func (l Labels) Caption(start, end float64) string {
	return fmt.Sprintf("[%.2f - %.2f %s]", start, end, l.SecondsUnit)
}
