package language

import "strings"

type entry struct {
	code2   string   // ISO 639-1 (2-letter)
	code3   string   // ISO 639-2 (3-letter)
	display string   // Human-readable name
	words   []string // Full word forms
}

// Only languages with a report label set are listed.
var languages = []entry{
	{"tr", "tur", "Turkish", []string{"turkish", "türkçe", "turkce"}},
	{"en", "eng", "English", []string{"english", "ingilizce"}},
}

var (
	byCode2 map[string]*entry
	byCode3 map[string]*entry
	byWord  map[string]*entry
)

func init() {
	byCode2 = make(map[string]*entry, len(languages))
	byCode3 = make(map[string]*entry, len(languages))
	byWord = make(map[string]*entry, len(languages)*2)
	for i := range languages {
		e := &languages[i]
		byCode2[e.code2] = e
		byCode3[e.code3] = e
		for _, w := range e.words {
			byWord[w] = e
		}
	}
}

func lookup(code string) *entry {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return nil
	}
	// BCP 47 region and script subtags do not change the label set.
	if idx := strings.IndexAny(code, "-_"); idx > 0 {
		code = code[:idx]
	}
	if e, ok := byCode2[code]; ok {
		return e
	}
	if e, ok := byCode3[code]; ok {
		return e
	}
	if e, ok := byWord[code]; ok {
		return e
	}
	return nil
}

// ToISO2 converts a recognized code or word to ISO 639-1. Unrecognized input
// returns an empty string.
func ToISO2(code string) string {
	if e := lookup(code); e != nil {
		return e.code2
	}
	return ""
}

// Supported reports whether code resolves to a report label set.
func Supported(code string) bool {
	return lookup(code) != nil
}

// DisplayName returns a human-readable language name. Returns "Unknown" for
// empty input, or the uppercased code for unrecognized input.
func DisplayName(code string) string {
	if strings.TrimSpace(code) == "" {
		return "Unknown"
	}
	if e := lookup(code); e != nil {
		return e.display
	}
	return strings.ToUpper(strings.TrimSpace(code))
}

// Codes lists the supported ISO 639-1 codes in preference order.
func Codes() []string {
	codes := make([]string, 0, len(languages))
	for _, e := range languages {
		codes = append(codes, e.code2)
	}
	return codes
}
