package convert

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// Sink receives the flattened output of a conversion run: the header
// exactly once, then one row per record. Row length always equals
// header length; that alignment is guaranteed by the schema traversal,
// not checked here.
type Sink interface {
	WriteHeader(columns []string) error
	WriteRow(tokens []string) error
	Close() error
}

// CSVSink writes delimited text using encoding/csv, which handles
// quoting and escaping when a token contains the delimiter. The sink
// does not own the underlying writer; closing flushes buffered lines
// but leaves the file to the caller.
type CSVSink struct {
	w *csv.Writer
}

// NewCSVSink creates a delimited-text sink. delimiter must be a valid
// single rune; the conventional default is ','.
func NewCSVSink(w io.Writer, delimiter rune) *CSVSink {
	cw := csv.NewWriter(w)
	cw.Comma = delimiter
	return &CSVSink{w: cw}
}

// WriteHeader writes the column-name line.
func (s *CSVSink) WriteHeader(columns []string) error {
	return s.w.Write(columns)
}

// WriteRow writes one record's tokens as a line.
func (s *CSVSink) WriteRow(tokens []string) error {
	return s.w.Write(tokens)
}

// Close flushes pending lines and reports any deferred write error.
func (s *CSVSink) Close() error {
	s.w.Flush()
	return s.w.Error()
}

// FileCSVSink is a CSVSink over a file that is created only when the
// header arrives, which the driver sends after the version check has
// passed. A run that fails before the header never touches the path,
// so prior output survives a rejected stream.
type FileCSVSink struct {
	path      string
	delimiter rune
	file      *os.File
	csv       *CSVSink
}

// NewFileCSVSink prepares a delimited-text sink for path without
// opening it.
func NewFileCSVSink(path string, delimiter rune) *FileCSVSink {
	return &FileCSVSink{path: path, delimiter: delimiter}
}

// WriteHeader creates the file fresh and writes the column-name line.
func (s *FileCSVSink) WriteHeader(columns []string) error {
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("failed to open output file: %w", err)
	}
	s.file = f
	s.csv = NewCSVSink(f, s.delimiter)
	return s.csv.WriteHeader(columns)
}

// WriteRow writes one record's tokens as a line.
func (s *FileCSVSink) WriteRow(tokens []string) error {
	if s.csv == nil {
		return errors.New("row written before header")
	}
	return s.csv.WriteRow(tokens)
}

// Close flushes and closes the file. Closing a sink that never saw a
// header is a no-op.
func (s *FileCSVSink) Close() error {
	if s.file == nil {
		return nil
	}
	err := s.csv.Close()
	if closeErr := s.file.Close(); err == nil {
		err = closeErr
	}
	return err
}

// MultiSink fans every header and row out to each child sink in order.
type MultiSink []Sink

// WriteHeader writes the header to every child, stopping at the first
// failure.
func (m MultiSink) WriteHeader(columns []string) error {
	for _, s := range m {
		if err := s.WriteHeader(columns); err != nil {
			return err
		}
	}
	return nil
}

// WriteRow writes the row to every child, stopping at the first
// failure.
func (m MultiSink) WriteRow(tokens []string) error {
	for _, s := range m {
		if err := s.WriteRow(tokens); err != nil {
			return err
		}
	}
	return nil
}

// Close closes every child sink, joining errors so a failing CSV flush
// does not mask a failing database close.
func (m MultiSink) Close() error {
	var errs []error
	for _, s := range m {
		if err := s.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
