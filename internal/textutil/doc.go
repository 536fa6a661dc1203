// Package textutil provides text helpers shared by the report compiler and
// its export sinks.
//
// The primary use cases are:
//   - Folding accented text to plain ASCII for renderers without the glyphs
//   - Locale-aware upper-casing of report labels
//   - Sanitizing output filenames for safe filesystem use
package textutil
