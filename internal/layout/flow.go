package layout

import "math"

// Cursor is the write position: a zero-based page index and a y offset.
type Cursor struct {
	Page int     `json:"page"`
	Y    float64 `json:"y"`
}

// Flow accumulates pages while a vertical cursor moves down them. It starts
// with one empty page and the cursor at the top margin.
type Flow struct {
	geo    Geometry
	pages  []Page
	cursor Cursor
}

// NewFlow starts a flow on a fresh first page.
func NewFlow(g Geometry) *Flow {
	return &Flow{
		geo:    g,
		pages:  []Page{{Number: 1}},
		cursor: Cursor{Page: 0, Y: g.TopMargin},
	}
}

// Geometry returns the page model the flow lays out against.
func (f *Flow) Geometry() Geometry { return f.geo }

// Cursor returns the current write position.
func (f *Flow) Cursor() Cursor { return f.cursor }

// PageCount returns the number of pages started so far.
func (f *Flow) PageCount() int { return len(f.pages) }

// MoveTo sets y on the current page.
func (f *Flow) MoveTo(y float64) { f.cursor.Y = y }

// Skip moves the cursor down by dy without checking for overflow; the next
// Reserve performs the check.
func (f *Flow) Skip(dy float64) { f.cursor.Y += dy }

// AtTop reports whether nothing has been reserved on the current page.
func (f *Flow) AtTop() bool { return f.cursor.Y <= f.geo.TopMargin+epsilon }

// Fits reports whether height fits below the cursor on the current page.
func (f *Flow) Fits(height float64) bool { return f.geo.Fits(f.cursor.Y, height) }

// Remaining returns the space left on the current page.
func (f *Flow) Remaining() float64 {
	return math.Max(0, f.geo.Bottom()-f.cursor.Y)
}

// RowsThatFit returns how many units of rowHeight fit below the cursor.
func (f *Flow) RowsThatFit(rowHeight float64) int {
	if rowHeight <= 0 {
		return 0
	}
	return int(math.Floor((f.Remaining() + epsilon) / rowHeight))
}

// NewPage appends a page and resets the cursor to the top margin.
func (f *Flow) NewPage() {
	f.pages = append(f.pages, Page{Number: len(f.pages) + 1})
	f.cursor = Cursor{Page: len(f.pages) - 1, Y: f.geo.TopMargin}
}

// Reserve claims height at the cursor, cutting to a new page first when the
// unit would cross the bottom limit. A unit taller than a whole page is
// placed at the top of a page and will overflow; callers split such units.
// It returns the y the unit starts at and whether a page break happened.
func (f *Flow) Reserve(height float64) (y float64, broke bool) {
	if !f.Fits(height) && !f.AtTop() {
		f.NewPage()
		broke = true
	}
	y = f.cursor.Y
	f.cursor.Y += height
	return y, broke
}

// Emit appends an instruction to the current page.
func (f *Flow) Emit(ins Instruction) {
	page := &f.pages[f.cursor.Page]
	page.Instructions = append(page.Instructions, ins)
}

// Pages returns the pages laid out so far.
func (f *Flow) Pages() []Page { return f.pages }

// Document finalizes the flow into a document.
func (f *Flow) Document(title string) *Document {
	return &Document{Title: title, Geometry: f.geo, Pages: f.pages}
}
