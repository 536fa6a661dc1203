// Package analysis defines the AnalysisResult produced by the diarization
// backend and the validated decoding that turns raw JSON or YAML into it.
//
// The result is treated as read-only input: numeric fields keep their literal
// text so reports can echo them verbatim, and missing required fields are
// rejected at decode time with an error that wraps ErrInvalidInput.
package analysis
