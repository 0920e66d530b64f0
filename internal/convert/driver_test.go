package convert

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/fdr2csv/internal/decode"
	"github.com/roach88/fdr2csv/internal/schema"
)

const testVersion uint64 = 3200001

// testRecord is the miniature layout used throughout these tests.
func testRecord() *schema.Record {
	return schema.New(
		schema.Group("nav",
			schema.Leaf("valid", schema.Bool),
			schema.Leaf("mode", schema.I32),
			schema.Leaf("altitude_ft", schema.F64),
		),
		schema.Leaf("counter", schema.U16),
	)
}

type sample struct {
	valid    bool
	mode     int32
	altitude float64
	counter  uint16
}

// buildStream produces raw stream bytes: version header then records
// back-to-back, little-endian, no framing.
func buildStream(version uint64, samples ...sample) []byte {
	buf := &bytes.Buffer{}
	binary.Write(buf, binary.LittleEndian, version)
	for _, s := range samples {
		if s.valid {
			buf.WriteByte(1)
		} else {
			buf.WriteByte(0)
		}
		binary.Write(buf, binary.LittleEndian, s.mode)
		binary.Write(buf, binary.LittleEndian, s.altitude)
		binary.Write(buf, binary.LittleEndian, s.counter)
	}
	return buf.Bytes()
}

// memorySink records everything written to it.
type memorySink struct {
	header []string
	rows   [][]string
	closed bool
}

func (m *memorySink) WriteHeader(columns []string) error {
	m.header = append([]string(nil), columns...)
	return nil
}

func (m *memorySink) WriteRow(tokens []string) error {
	m.rows = append(m.rows, append([]string(nil), tokens...))
	return nil
}

func (m *memorySink) Close() error {
	m.closed = true
	return nil
}

func TestDriverConvertsStream(t *testing.T) {
	stream := buildStream(testVersion,
		sample{valid: true, mode: 42, altitude: 3.5, counter: 7},
		sample{valid: false, mode: -1, altitude: 0, counter: 65535},
	)

	sink := &memorySink{}
	driver := NewDriver(testRecord(), testVersion)
	result, err := driver.Run(bytes.NewReader(stream), sink)
	require.NoError(t, err)

	assert.Equal(t, testVersion, result.Version)
	assert.Equal(t, 2, result.Records)

	require.Equal(t, []string{"nav.valid", "nav.mode", "nav.altitude_ft", "counter"}, sink.header)
	require.Len(t, sink.rows, 2)
	assert.Equal(t, []string{"true", "42", "3.5", "7"}, sink.rows[0])
	assert.Equal(t, []string{"false", "-1", "0", "65535"}, sink.rows[1])
}

func TestDriverHeaderRowAlignment(t *testing.T) {
	stream := buildStream(testVersion,
		sample{valid: true, mode: 1, altitude: 1, counter: 1},
		sample{valid: true, mode: 2, altitude: 2, counter: 2},
		sample{valid: true, mode: 3, altitude: 3, counter: 3},
	)

	sink := &memorySink{}
	_, err := NewDriver(testRecord(), testVersion).Run(bytes.NewReader(stream), sink)
	require.NoError(t, err)

	for i, row := range sink.rows {
		assert.Len(t, row, len(sink.header), "row %d", i)
	}
}

func TestDriverVersionOnlyStream(t *testing.T) {
	// Version tag followed by zero records: success with count zero.
	sink := &memorySink{}
	result, err := NewDriver(testRecord(), testVersion).Run(bytes.NewReader(buildStream(testVersion)), sink)
	require.NoError(t, err)

	assert.Equal(t, 0, result.Records)
	assert.NotNil(t, sink.header)
	assert.Empty(t, sink.rows)
}

func TestDriverRejectsMalformedLayout(t *testing.T) {
	// An empty group cannot produce a header; the run must fail before
	// reading the stream or writing anything.
	rec := schema.New(schema.Group("nav"))

	sink := &memorySink{}
	_, err := NewDriver(rec, testVersion).Run(bytes.NewReader(buildStream(testVersion)), sink)
	require.Error(t, err)
	assert.True(t, schema.IsDeclarationError(err))
	assert.Nil(t, sink.header)
	assert.Empty(t, sink.rows)
}

func TestDriverVersionMismatch(t *testing.T) {
	stream := buildStream(testVersion+99,
		sample{valid: true, mode: 1, altitude: 1, counter: 1},
	)

	sink := &memorySink{}
	_, err := NewDriver(testRecord(), testVersion).Run(bytes.NewReader(stream), sink)
	require.Error(t, err)
	require.True(t, decode.IsVersionMismatch(err))

	var ve *decode.VersionMismatchError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, testVersion, ve.Expected)
	assert.Equal(t, testVersion+99, ve.Got)

	// No output of any kind before the version check passes.
	assert.Nil(t, sink.header)
	assert.Empty(t, sink.rows)
}

func TestDriverEmptyInput(t *testing.T) {
	sink := &memorySink{}
	_, err := NewDriver(testRecord(), testVersion).Run(bytes.NewReader(nil), sink)
	require.Error(t, err)
	assert.ErrorIs(t, err, decode.ErrShortRead)
	assert.Nil(t, sink.header)
}

func TestDriverTruncatedRecord(t *testing.T) {
	// Documented policy: a partial trailing record is a hard
	// truncation error, not a silent stop. Complete records before
	// the cut are still emitted.
	full := buildStream(testVersion,
		sample{valid: true, mode: 1, altitude: 1, counter: 1},
		sample{valid: true, mode: 2, altitude: 2, counter: 2},
	)
	truncated := full[:len(full)-5]

	sink := &memorySink{}
	_, err := NewDriver(testRecord(), testVersion).Run(bytes.NewReader(truncated), sink)
	require.Error(t, err)
	assert.True(t, decode.IsTruncated(err), "got %v", err)
	assert.Len(t, sink.rows, 1)
}

func TestDriverDeterministic(t *testing.T) {
	stream := buildStream(testVersion,
		sample{valid: true, mode: 123, altitude: -0.125, counter: 9},
		sample{valid: false, mode: -456, altitude: 99999.5, counter: 0},
	)

	first := &memorySink{}
	_, err := NewDriver(testRecord(), testVersion).Run(bytes.NewReader(stream), first)
	require.NoError(t, err)

	second := &memorySink{}
	_, err = NewDriver(testRecord(), testVersion).Run(bytes.NewReader(stream), second)
	require.NoError(t, err)

	assert.Equal(t, first.header, second.header)
	assert.Equal(t, first.rows, second.rows)
}

func TestPeekVersion(t *testing.T) {
	v, err := PeekVersion(bytes.NewReader(buildStream(3123456)))
	require.NoError(t, err)
	assert.Equal(t, uint64(3123456), v)

	_, err = PeekVersion(bytes.NewReader([]byte{1, 2, 3}))
	assert.Error(t, err)
}

func TestOpenStreamGzip(t *testing.T) {
	raw := buildStream(testVersion,
		sample{valid: true, mode: 42, altitude: 3.5, counter: 7},
	)

	compressed := &bytes.Buffer{}
	zw := gzip.NewWriter(compressed)
	_, err := zw.Write(raw)
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	stream, err := OpenStream(bytes.NewReader(compressed.Bytes()), true)
	require.NoError(t, err)

	sink := &memorySink{}
	result, err := NewDriver(testRecord(), testVersion).Run(stream, sink)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Records)
	assert.Equal(t, []string{"true", "42", "3.5", "7"}, sink.rows[0])
}

func TestOpenStreamUncompressed(t *testing.T) {
	raw := buildStream(testVersion)

	stream, err := OpenStream(bytes.NewReader(raw), false)
	require.NoError(t, err)

	result, err := NewDriver(testRecord(), testVersion).Run(stream, &memorySink{})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Records)
}

func TestOpenStreamBadGzip(t *testing.T) {
	_, err := OpenStream(bytes.NewReader([]byte("definitely not gzip")), true)
	assert.Error(t, err)
}
