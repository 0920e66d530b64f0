package decode

import (
	"bytes"
	"errors"
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/fdr2csv/internal/schema"
)

func TestReadValueLittleEndian(t *testing.T) {
	tests := []struct {
		name  string
		kind  schema.Kind
		input []byte
		bits  uint64
	}{
		{"bool false", schema.Bool, []byte{0x00}, 0},
		{"bool true", schema.Bool, []byte{0x01}, 1},
		{"bool nonzero", schema.Bool, []byte{0xFF}, 0xFF},
		{"u8", schema.U8, []byte{0x2A}, 42},
		{"u16", schema.U16, []byte{0x34, 0x12}, 0x1234},
		{"u32", schema.U32, []byte{0x78, 0x56, 0x34, 0x12}, 0x12345678},
		{"u64", schema.U64, []byte{0xEF, 0xCD, 0xAB, 0x89, 0x67, 0x45, 0x23, 0x01}, 0x0123456789ABCDEF},
		{"i32 minus one", schema.I32, []byte{0xFF, 0xFF, 0xFF, 0xFF}, 0xFFFFFFFF},
		{"f32 3.5", schema.F32, []byte{0x00, 0x00, 0x60, 0x40}, uint64(math.Float32bits(3.5))},
		{"f64 3.5", schema.F64, []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x0C, 0x40}, math.Float64bits(3.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := NewSource(bytes.NewReader(tt.input))
			v, err := src.ReadValue(tt.kind)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, v.Kind)
			assert.Equal(t, tt.bits, v.Bits)
		})
	}
}

func TestReadValueConsumesExactly(t *testing.T) {
	// Two values back-to-back with no framing between them.
	src := NewSource(bytes.NewReader([]byte{0x01, 0x2A, 0x00, 0x00, 0x00}))

	flag, err := src.ReadValue(schema.Bool)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), flag.Bits)

	n, err := src.ReadValue(schema.U32)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), n.Bits)

	_, err = src.ReadValue(schema.U8)
	assert.ErrorIs(t, err, ErrShortRead)
}

func TestReadValueShortRead(t *testing.T) {
	tests := []struct {
		name    string
		input   []byte
		kind    schema.Kind
		wantGot int
	}{
		{"empty source", nil, schema.U64, 0},
		{"partial value", []byte{0x01, 0x02, 0x03}, schema.U64, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := NewSource(bytes.NewReader(tt.input))
			_, err := src.ReadValue(tt.kind)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrShortRead)

			var sr *ShortReadError
			require.ErrorAs(t, err, &sr)
			assert.Equal(t, tt.kind.Size(), sr.Want)
			assert.Equal(t, tt.wantGot, sr.Got)
			if tt.wantGot == 0 {
				assert.ErrorIs(t, err, io.EOF)
			} else {
				assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
			}
		})
	}
}

func TestReadValueUnknownKind(t *testing.T) {
	src := NewSource(bytes.NewReader([]byte{0x2A, 0x00}))

	_, err := src.ReadValue(schema.Kind(42))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown kind")

	// The cursor did not move: the next valid read sees the first byte.
	v, err := src.ReadValue(schema.U8)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), v.Bits)
}

func TestRenderUnknownKindPanics(t *testing.T) {
	v := Value{Kind: schema.Kind(42)}
	assert.Panics(t, func() { v.Render() })
}

func TestReadVersion(t *testing.T) {
	src := NewSource(bytes.NewReader([]byte{0xA1, 0xD4, 0x30, 0x00, 0x00, 0x00, 0x00, 0x00}))
	v, err := src.ReadVersion()
	require.NoError(t, err)
	assert.Equal(t, uint64(3200161), v)
}

func TestRenderCanonicalForms(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"bool true", Value{schema.Bool, 1}, "true"},
		{"bool false", Value{schema.Bool, 0}, "false"},
		{"bool any nonzero is true", Value{schema.Bool, 0xCC}, "true"},
		{"u8", Value{schema.U8, 200}, "200"},
		{"u64 max", Value{schema.U64, math.MaxUint64}, "18446744073709551615"},
		{"i8 sign extended", Value{schema.I8, 0xFF}, "-1"},
		{"i16 sign extended", Value{schema.I16, 0x8000}, "-32768"},
		{"i32 positive", Value{schema.I32, 42}, "42"},
		{"i64 negative", Value{schema.I64, uint64(0xFFFFFFFFFFFFFFD6)}, "-42"},
		{"f32 shortest", Value{schema.F32, uint64(math.Float32bits(3.5))}, "3.5"},
		{"f32 third", Value{schema.F32, uint64(math.Float32bits(1.0 / 3.0))}, "0.33333334"},
		{"f64 shortest", Value{schema.F64, math.Float64bits(3.5)}, "3.5"},
		{"f64 zero", Value{schema.F64, 0}, "0"},
		{"f64 nan", Value{schema.F64, math.Float64bits(math.NaN())}, "NaN"},
		{"f64 inf", Value{schema.F64, math.Float64bits(math.Inf(1))}, "+Inf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.Render())
		})
	}
}

func TestRenderDeterministic(t *testing.T) {
	v := Value{schema.F64, math.Float64bits(123456.78125)}
	first := v.Render()
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, v.Render())
	}
}

func TestShortReadErrorUnwrap(t *testing.T) {
	cause := io.ErrUnexpectedEOF
	err := &ShortReadError{Want: 8, Got: 3, Err: cause}
	assert.True(t, errors.Is(err, ErrShortRead))
	assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))
	assert.Contains(t, err.Error(), "want 8")
	assert.Contains(t, err.Error(), "got 3")
}
