// Package econ extracts economy records from untrusted coordinator payloads
// and encodes the outbound purchase request body.
//
// The coordinator declares no schema for these payloads. Extraction works by
// structural pattern: known field numbers at unknown nesting depth, found by
// depth-first search over the wire layer. Every extractor is a pure function
// of its input buffer.
package econ
