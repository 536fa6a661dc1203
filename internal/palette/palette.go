// Package palette assigns each speaker a stable visual identity.
//
// A Palette is built once from the speaker roster. A speaker's index is its
// zero-based roster position modulo the palette size, so rosters larger than
// the palette deliberately reuse colours. Lookups for speakers missing from
// the roster fall back to index 0.
package palette

// DefaultSize is the number of distinct identities in the reference design.
const DefaultSize = 8

// Swatch is the colour pair used to draw a speaker chip.
type Swatch struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

var swatches = [...]Swatch{
	{Name: "light-blue", Hex: "#90caf9"},
	{Name: "light-orange", Hex: "#ffab91"},
	{Name: "light-green", Hex: "#a5d6a7"},
	{Name: "light-yellow", Hex: "#ffe082"},
	{Name: "light-purple", Hex: "#ce93d8"},
	{Name: "light-cyan", Hex: "#80cbc4"},
	{Name: "light-beige", Hex: "#ffcc80"},
	{Name: "light-grey", Hex: "#b0bec5"},
}

// SwatchAt returns the swatch for a palette index. Indexes beyond the
// built-in swatches cycle through them.
func SwatchAt(index int) Swatch {
	if index < 0 {
		index = -index
	}
	return swatches[index%len(swatches)]
}

// Palette maps speaker IDs to palette indexes. The zero value assigns index 0
// to everyone.
type Palette struct {
	size    int
	indexes map[string]int
}

// New builds the assignment for a roster. size < 1 selects DefaultSize.
// Duplicate IDs keep their first position.
func New(roster []string, size int) Palette {
	if size < 1 {
		size = DefaultSize
	}
	indexes := make(map[string]int, len(roster))
	for pos, id := range roster {
		if _, seen := indexes[id]; seen {
			continue
		}
		indexes[id] = pos % size
	}
	return Palette{size: size, indexes: indexes}
}

// Size returns the number of distinct identities.
func (p Palette) Size() int {
	if p.size < 1 {
		return DefaultSize
	}
	return p.size
}

// Index returns the speaker's palette index, or 0 when the speaker is not in
// the roster.
func (p Palette) Index(speakerID string) int {
	return p.indexes[speakerID]
}

// Known reports whether the speaker was part of the roster.
func (p Palette) Known(speakerID string) bool {
	_, ok := p.indexes[speakerID]
	return ok
}

// Swatch returns the speaker's colour.
func (p Palette) Swatch(speakerID string) Swatch {
	return SwatchAt(p.Index(speakerID))
}
