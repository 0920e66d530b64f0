package convert

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/klauspost/compress/gzip"

	"github.com/roach88/fdr2csv/internal/decode"
	"github.com/roach88/fdr2csv/internal/schema"
)

// defaultProgressEvery is how many records pass between progress logs.
const defaultProgressEvery = 1000

// Result summarizes a completed run.
type Result struct {
	Version uint64 // interface version read from the stream
	Records int    // records decoded and written
}

// Driver converts one raw stream into one sink. It owns no resources:
// the caller opens and closes the input and the sink on every exit
// path; the driver only reads, decodes and writes.
type Driver struct {
	rec           *schema.Record
	dec           *decode.RecordDecoder
	expected      uint64
	progressEvery int
}

// NewDriver builds a driver for the given record layout and expected
// interface version.
func NewDriver(rec *schema.Record, expectedVersion uint64) *Driver {
	return &Driver{
		rec:           rec,
		dec:           decode.NewRecordDecoder(rec),
		expected:      expectedVersion,
		progressEvery: defaultProgressEvery,
	}
}

// Run performs a full conversion pass over r.
//
// Phases map one-to-one onto the driver states: the version read and
// check (AwaitingVersion), the decode/flatten loop (Streaming), and
// the summary (Done). Any error is terminal; no retry, no partial
// cleanup beyond what the caller does with its resources.
//
// Error kinds surfaced: schema.DeclarationError before anything is
// read, decode.VersionMismatchError before any row,
// decode.TruncatedError for a partial trailing record, and wrapped
// sink errors for write failures.
func (d *Driver) Run(r io.Reader, sink Sink) (*Result, error) {
	// A malformed layout cannot produce a well-formed header, so the
	// run aborts before touching the stream or the sink.
	if err := d.rec.Validate(); err != nil {
		return nil, fmt.Errorf("generate header: %w", err)
	}

	src := decode.NewSource(r)

	// AwaitingVersion: the stream must open with the exact compiled-in
	// interface version or nothing is converted.
	version, err := src.ReadVersion()
	if err != nil {
		return nil, fmt.Errorf("read interface version: %w", err)
	}
	if version != d.expected {
		return nil, &decode.VersionMismatchError{Expected: d.expected, Got: version}
	}

	if err := sink.WriteHeader(d.rec.Columns()); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	// Streaming: one record, one row, until the clean boundary.
	count := 0
	for {
		values, err := d.dec.Decode(src)
		if errors.Is(err, decode.ErrEndOfStream) {
			break
		}
		if err != nil {
			return nil, err
		}
		if err := sink.WriteRow(decode.Render(values)); err != nil {
			return nil, fmt.Errorf("write row %d: %w", count, err)
		}
		count++
		if d.progressEvery > 0 && count%d.progressEvery == 0 {
			slog.Info("processing", "records", count)
		}
	}

	// Done.
	return &Result{Version: version, Records: count}, nil
}

// PeekVersion reads only the interface version from r, without
// validating it or touching any record. Used by the version command.
func PeekVersion(r io.Reader) (uint64, error) {
	src := decode.NewSource(r)
	v, err := src.ReadVersion()
	if err != nil {
		return 0, fmt.Errorf("read interface version: %w", err)
	}
	return v, nil
}

// OpenStream prepares the raw input for decoding: chunked buffering
// always, plus the gzip envelope unless compression is disabled. The
// recorder writes gzip by default.
func OpenStream(r io.Reader, compressed bool) (io.Reader, error) {
	br := bufio.NewReaderSize(r, 64*1024)
	if !compressed {
		return br, nil
	}
	zr, err := gzip.NewReader(br)
	if err != nil {
		return nil, fmt.Errorf("open gzip stream: %w", err)
	}
	return zr, nil
}
