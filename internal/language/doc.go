// Package language normalizes the report label language setting.
//
// Users may write the language as an ISO 639-1 or 639-2 code or as a word in
// English or Turkish; everything resolves to the two-letter code the label
// sets are keyed by.
package language
