// Package layout holds the abstract page model a report is composed into:
// page geometry, positioned draw instructions, a vertical write cursor that
// cuts to new pages, and width-aware word wrapping.
//
// Nothing here paints glyphs. Backends receive a Document and decide fonts
// and pixels; the layout only decides which unit lands on which page and at
// what offset, and guarantees no unit crosses the bottom margin.
package layout
