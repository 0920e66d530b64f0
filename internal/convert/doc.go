// Package convert drives one conversion run: raw stream in, flat rows
// out.
//
// The driver is a single-pass, single-threaded state machine:
//
//	AwaitingVersion -> Streaming -> Done
//
// with failure reachable from every state. AwaitingVersion reads the
// 8-byte interface version and aborts on mismatch before any row is
// produced. Streaming decodes records one at a time and hands each to
// the sink; clean exhaustion at a record boundary moves to Done, a
// partial trailing record is a hard truncation error. Done reports the
// processed count.
//
// Sinks are pluggable. CSVSink writes delimited text with a
// configurable delimiter; SQLiteSink loads the same rows into a SQLite
// database so several runs can land in one analysis file, each keyed
// by a UUIDv7 run id. MultiSink fans one run out to both.
package convert
