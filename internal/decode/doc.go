// Package decode materializes records from the raw recorder stream.
//
// The stream is a gzip-wrapped (optionally plain) byte sequence: one
// 8-byte little-endian interface version, then fixed-size records
// back-to-back with no framing. Decoding is two small pieces:
//
// Source is the fixed-layout value reader. It consumes exactly
// Kind.Size() bytes per call and reinterprets them, which is safe
// because every schema Kind accepts any bit pattern.
//
// RecordDecoder reads one value per schema leaf, strictly in the
// shared traversal order of schema.Record.Leaves(), all-or-nothing.
// Exhaustion cleanly at a record boundary is the end-of-stream signal
// (ErrEndOfStream); exhaustion mid-record is corruption and reported
// as a TruncatedError, never silently swallowed.
package decode
