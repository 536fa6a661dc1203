package layout

// Kind classifies a draw instruction.
type Kind string

const (
	KindText        Kind = "text"
	KindLabel       Kind = "label"
	KindTable       Kind = "table"
	KindRule        Kind = "rule"
	KindCaption     Kind = "caption"
	KindPlaceholder Kind = "placeholder"
)

// Style is a rendering hint. Backends map it to fonts.
type Style string

const (
	StyleTitle   Style = "title"
	StyleHeading Style = "heading"
	StyleBody    Style = "body"
	StyleBold    Style = "bold"
	StyleItalic  Style = "italic"
)

// Table carries structured rows. Column sizing is left to the backend.
type Table struct {
	Header    []string   `json:"header"`
	Rows      [][]string `json:"rows"`
	RowHeight float64    `json:"row_height"`
}

// Instruction is one positioned unit on a page. Y is the top of the unit and
// Height the vertical space it reserves.
type Instruction struct {
	Kind      Kind     `json:"kind"`
	X         float64  `json:"x"`
	Y         float64  `json:"y"`
	Height    float64  `json:"height"`
	Style     Style    `json:"style,omitempty"`
	FontSize  float64  `json:"font_size,omitempty"`
	Text      string   `json:"text,omitempty"`
	Lines     []string `json:"lines,omitempty"`
	Color     string   `json:"color,omitempty"`
	Table     *Table   `json:"table,omitempty"`
	Continued bool     `json:"continued,omitempty"`
}

// Bottom returns the lowest y the instruction reaches.
func (i Instruction) Bottom() float64 { return i.Y + i.Height }

// Page is an ordered list of instructions. Number is 1-based.
type Page struct {
	Number       int           `json:"number"`
	Instructions []Instruction `json:"instructions"`
}

// Document is the paginated report handed to an export sink.
type Document struct {
	Title    string   `json:"title"`
	Geometry Geometry `json:"geometry"`
	Pages    []Page   `json:"pages"`
}

// Count returns the number of instructions of the given kind across pages.
func (d *Document) Count(kind Kind) int {
	if d == nil {
		return 0
	}
	n := 0
	for _, p := range d.Pages {
		for _, ins := range p.Instructions {
			if ins.Kind == kind {
				n++
			}
		}
	}
	return n
}

// Overflows returns instructions that extend below the page's bottom limit.
func (d *Document) Overflows() []Instruction {
	if d == nil {
		return nil
	}
	var out []Instruction
	for _, p := range d.Pages {
		for _, ins := range p.Instructions {
			if !d.Geometry.Fits(ins.Y, ins.Height) {
				out = append(out, ins)
			}
		}
	}
	return out
}
