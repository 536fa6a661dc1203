// Package config loads, normalizes, and validates meetreport configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the MEETREPORT_OUTPUT_DIR and
// MEETREPORT_LOG_LEVEL environment overrides. A missing config file is not an
// error: the defaults reproduce the reference A4 report.
//
// Always obtain settings through this package so downstream code receives
// expanded paths, canonical formats, and clear validation errors.
package config
