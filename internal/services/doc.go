// Package services defines shared utilities consumed by the CLI commands and
// the HTTP surface.
//
// Key responsibilities:
//   - Context helpers that stamp correlation identifiers, the analysis source
//     and pipeline stage names for logging.
//   - Structured error markers plus the Wrap helper, and the mappings that turn
//     a marked error into an HTTP status, an API error code or an exit code.
//
// Use these helpers at every boundary so failures are classified the same way
// whether they surface as a response or a process exit.
package services
