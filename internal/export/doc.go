// Package export turns a compiled layout.Document into bytes and delivers them.
//
// A Sink serializes a document to a writer. JSONSink emits the page and
// instruction model for an external renderer; TextSink prints a plain-text
// preview of every page. WriteFile delivers a sink's output to a file under an
// advisory lock, replacing any previous artifact atomically.
package export
