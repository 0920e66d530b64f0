package decode

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/roach88/fdr2csv/internal/schema"
)

// Value is one decoded leaf: its layout kind and the raw bits, stored
// zero-extended in a uint64. Interpretation (sign extension, float
// bit patterns, flag truthiness) happens at render time.
type Value struct {
	Kind schema.Kind
	Bits uint64
}

// Render returns the canonical text token for the value:
//
//   - flags: "true" / "false" (any nonzero byte is true)
//   - integers: base-10, sign-extended for signed kinds
//   - floats: shortest decimal that round-trips ('g', precision -1)
//
// The same value always renders to the same token; rendering never
// depends on anything but Kind and Bits. Render panics on a kind that
// ReadValue would reject.
func (v Value) Render() string {
	switch v.Kind {
	case schema.Bool:
		return strconv.FormatBool(v.Bits != 0)
	case schema.U8, schema.U16, schema.U32, schema.U64:
		return strconv.FormatUint(v.Bits, 10)
	case schema.I8:
		return strconv.FormatInt(int64(int8(v.Bits)), 10)
	case schema.I16:
		return strconv.FormatInt(int64(int16(v.Bits)), 10)
	case schema.I32:
		return strconv.FormatInt(int64(int32(v.Bits)), 10)
	case schema.I64:
		return strconv.FormatInt(int64(v.Bits), 10)
	case schema.F32:
		return strconv.FormatFloat(float64(math.Float32frombits(uint32(v.Bits))), 'g', -1, 32)
	case schema.F64:
		return strconv.FormatFloat(math.Float64frombits(v.Bits), 'g', -1, 64)
	default:
		// Unreachable through ReadValue, which rejects unknown kinds.
		panic(fmt.Sprintf("render value of unknown kind %d", int(v.Kind)))
	}
}

// Source is a cursor over the raw byte stream. It only ever moves
// forward, exactly Kind.Size() bytes per read.
type Source struct {
	r   io.Reader
	buf [8]byte
}

// NewSource wraps a reader. Callers that care about throughput should
// hand in a buffered reader; Source imposes no buffering of its own.
func NewSource(r io.Reader) *Source {
	return &Source{r: r}
}

// ReadValue consumes exactly kind.Size() bytes and reinterprets them
// as a value of that kind, little-endian. On exhaustion it returns a
// ShortReadError wrapping the underlying reader error, so callers can
// distinguish a clean boundary (io.EOF with zero bytes read) from a
// mid-value cut (io.ErrUnexpectedEOF).
func (s *Source) ReadValue(kind schema.Kind) (Value, error) {
	if !kind.Valid() {
		return Value{}, fmt.Errorf("read value of unknown kind %d", int(kind))
	}
	n := kind.Size()
	got, err := io.ReadFull(s.r, s.buf[:n])
	if err != nil {
		return Value{}, &ShortReadError{Want: n, Got: got, Err: err}
	}

	var bits uint64
	switch n {
	case 1:
		bits = uint64(s.buf[0])
	case 2:
		bits = uint64(binary.LittleEndian.Uint16(s.buf[:2]))
	case 4:
		bits = uint64(binary.LittleEndian.Uint32(s.buf[:4]))
	case 8:
		bits = binary.LittleEndian.Uint64(s.buf[:8])
	}
	return Value{Kind: kind, Bits: bits}, nil
}

// ReadVersion reads the 8-byte interface version header that starts
// every stream.
func (s *Source) ReadVersion() (uint64, error) {
	v, err := s.ReadValue(schema.U64)
	if err != nil {
		return 0, err
	}
	return v.Bits, nil
}
