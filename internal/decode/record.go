package decode

import (
	"errors"
	"io"

	"github.com/roach88/fdr2csv/internal/schema"
)

// RecordDecoder materializes full records from a Source. It reads one
// value per schema leaf in the shared traversal order, so the decoded
// slice aligns index-for-index with schema.Record.Columns().
type RecordDecoder struct {
	leaves []schema.LeafInfo
}

// NewRecordDecoder builds a decoder over the record layout. The leaf
// list is captured once; Decode never re-walks the tree.
func NewRecordDecoder(rec *schema.Record) *RecordDecoder {
	return &RecordDecoder{leaves: rec.Leaves()}
}

// Decode reads one record, all-or-nothing.
//
// A clean boundary (zero bytes left where the next record would begin)
// returns ErrEndOfStream. Any other read failure returns a
// TruncatedError naming the leaf that could not be read; no partial
// record is ever returned.
func (d *RecordDecoder) Decode(src *Source) ([]Value, error) {
	values := make([]Value, len(d.leaves))
	for i, leaf := range d.leaves {
		v, err := src.ReadValue(leaf.Kind)
		if err != nil {
			if i == 0 && cleanBoundary(err) {
				return nil, ErrEndOfStream
			}
			return nil, &TruncatedError{Path: leaf.Path, Err: err}
		}
		values[i] = v
	}
	return values, nil
}

// Render converts a decoded record into its row tokens, one per leaf,
// in the same order as the header columns.
func Render(values []Value) []string {
	tokens := make([]string, len(values))
	for i, v := range values {
		tokens[i] = v.Render()
	}
	return tokens
}

// cleanBoundary reports whether err is a short read that consumed zero
// bytes, i.e. the stream ended exactly between records. io.ReadFull
// returns bare io.EOF in that case and io.ErrUnexpectedEOF when the
// value was cut mid-way.
func cleanBoundary(err error) bool {
	var sr *ShortReadError
	if !errors.As(err, &sr) {
		return false
	}
	return sr.Got == 0 && errors.Is(sr.Err, io.EOF) && !errors.Is(sr.Err, io.ErrUnexpectedEOF)
}
