package layout

import (
	"errors"
	"fmt"
)

// epsilon absorbs float noise when a block ends exactly on the bottom limit.
const epsilon = 1e-9

// Geometry describes the fixed page model. All values share one unit
// (millimetres for the reference A4 layout).
type Geometry struct {
	PageWidth  float64 `json:"page_width"`
	PageHeight float64 `json:"page_height"`
	// HeaderTop is where the report title sits on the first page.
	HeaderTop    float64 `json:"header_top"`
	TopMargin    float64 `json:"top_margin"`
	BottomMargin float64 `json:"bottom_margin"`
	LeftMargin   float64 `json:"left_margin"`
	// LabelMargin is the x position of dialogue speaker chips.
	LabelMargin float64 `json:"label_margin"`
	// TextIndent is the x position of dialogue text.
	TextIndent     float64 `json:"text_indent"`
	LineHeight     float64 `json:"line_height"`
	ContentWidth   float64 `json:"content_width"`
	TableRowHeight float64 `json:"table_row_height"`
}

// DefaultGeometry returns the A4 portrait layout of the reference report.
func DefaultGeometry() Geometry {
	return Geometry{
		PageWidth:      210,
		PageHeight:     297,
		HeaderTop:      18,
		TopMargin:      20,
		BottomMargin:   17,
		LeftMargin:     14,
		LabelMargin:    7,
		TextIndent:     34,
		LineHeight:     7,
		ContentWidth:   160,
		TableRowHeight: 8,
	}
}

// Bottom is the lowest y any content may reach.
func (g Geometry) Bottom() float64 { return g.PageHeight - g.BottomMargin }

// Usable is the content height of a page below the top margin.
func (g Geometry) Usable() float64 { return g.Bottom() - g.TopMargin }

// Fits reports whether a unit of the given height placed at y stays on the
// page. A unit ending exactly on the bottom limit fits.
func (g Geometry) Fits(y, height float64) bool {
	return y+height <= g.Bottom()+epsilon
}

// Validate rejects geometries the flow cannot place content on.
func (g Geometry) Validate() error {
	positive := []struct {
		name  string
		value float64
	}{
		{"page_height", g.PageHeight},
		{"line_height", g.LineHeight},
		{"content_width", g.ContentWidth},
		{"table_row_height", g.TableRowHeight},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("layout.%s must be positive", p.name)
		}
	}
	if g.TopMargin < 0 || g.BottomMargin < 0 || g.HeaderTop < 0 {
		return errors.New("layout margins must not be negative")
	}
	if g.Usable() < g.LineHeight {
		return fmt.Errorf("layout usable height %.2f is smaller than one line (%.2f)", g.Usable(), g.LineHeight)
	}
	if g.Usable() < 2*g.TableRowHeight {
		return fmt.Errorf("layout usable height %.2f cannot hold a table header and one row", g.Usable())
	}
	if g.HeaderTop >= g.Bottom() {
		return errors.New("layout.header_top must be above the bottom margin")
	}
	return nil
}
