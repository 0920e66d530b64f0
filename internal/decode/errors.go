package decode

import (
	"errors"
	"fmt"
)

// ErrEndOfStream signals that the source was exhausted exactly at a
// record boundary. This is the normal termination of a stream, not a
// failure; the driver converts it into a successful summary.
var ErrEndOfStream = errors.New("end of stream")

// ErrShortRead is the sentinel matched by errors.Is for any read that
// could not consume its full fixed-size value.
var ErrShortRead = errors.New("short read")

// ShortReadError reports a fixed-layout read that got fewer bytes than
// the target layout requires.
type ShortReadError struct {
	Want int   // bytes the layout requires
	Got  int   // bytes actually available
	Err  error // underlying reader error (io.EOF, io.ErrUnexpectedEOF, ...)
}

func (e *ShortReadError) Error() string {
	return fmt.Sprintf("short read: want %d bytes, got %d: %v", e.Want, e.Got, e.Err)
}

func (e *ShortReadError) Unwrap() error { return e.Err }

// Is matches the ErrShortRead sentinel.
func (e *ShortReadError) Is(target error) bool { return target == ErrShortRead }

// TruncatedError reports a stream that ended partway through a record:
// some bytes of the record were present but the leaf at Path could not
// be fully read. This is corruption, distinct from ErrEndOfStream.
type TruncatedError struct {
	Path string // leaf whose read failed
	Err  error
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("truncated record at %s: %v", e.Path, e.Err)
}

func (e *TruncatedError) Unwrap() error { return e.Err }

// IsTruncated reports whether err is a TruncatedError.
// Uses errors.As to handle wrapped errors.
func IsTruncated(err error) bool {
	var te *TruncatedError
	return errors.As(err, &te)
}

// VersionMismatchError reports a stream written against a different
// schema version than the converter was compiled with. There is no
// version negotiation; the run aborts before any record is processed.
type VersionMismatchError struct {
	Expected uint64
	Got      uint64
}

func (e *VersionMismatchError) Error() string {
	return fmt.Sprintf("mismatch between converter and file version (expected %d, got %d)", e.Expected, e.Got)
}

// IsVersionMismatch reports whether err is a VersionMismatchError.
func IsVersionMismatch(err error) bool {
	var ve *VersionMismatchError
	return errors.As(err, &ve)
}
