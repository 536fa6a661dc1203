// Package main hosts the meetreport CLI entrypoint and command graph.
//
// The Cobra-based command tree loads an analysis result from disk or stdin,
// compiles it into a paginated report and either writes the artifact, previews
// the merged dialogue timeline, or serves the same operations over HTTP.
// Configuration resolution and logger setup live in the shared command
// context so subcommands only deal with their own flags.
//
// Keep this package lean: add behaviour to the internal packages first, then
// surface it through a command or flag here.
package main
