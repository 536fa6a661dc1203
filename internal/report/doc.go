// Package report compiles an AnalysisResult into a paginated layout.Document.
//
// Compile lays out the fixed summary section (title, four scalar lines, the
// per-speaker table and the two distribution lines) and, when enabled, the
// chronological dialogue. The dialogue is a fold over the merged timeline: each
// segment becomes one block (speaker chip plus wrapped text) that is moved to a
// fresh page whole when it would cross the bottom margin. Only a block taller
// than a full page is split, continuing on the following pages.
//
// Compilation is pure: no I/O, no shared state, and the same input always
// yields the same document.
package report
