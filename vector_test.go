package tlswire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimitPrefixLen(t *testing.T) {
	cases := []struct {
		limit Limit
		width int
	}{
		{0, 1},
		{Limit8, 1},
		{1 << 8, 2},
		{Limit16, 2},
		{1 << 16, 3},
		{Limit24, 3},
		{1 << 24, 4},
		{Limit32, 4},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.width, tc.limit.PrefixLen(), "limit %d", tc.limit)
	}
}

func TestVectorRoundTrip(t *testing.T) {
	items := []Uint16{0x0102, 0x0304, 0x0506}

	w := NewWriter()
	require.NoError(t, EncodeVector[Uint16](w, Limit8, items))
	assert.Equal(t, []byte{0x06, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06}, w.Bytes())

	r := NewReader(w.Bytes())
	got, err := DecodeVector[Uint16](r, Limit8)
	require.NoError(t, err)
	assert.Equal(t, items, got)
	assert.Zero(t, r.Remaining())
}

func TestVectorPrefixWidths(t *testing.T) {
	// The same content under a wider limit gets a wider prefix.
	items := []Uint8{0xAB}

	w := NewWriter()
	require.NoError(t, EncodeVector[Uint8](w, Limit16, items))
	assert.Equal(t, []byte{0x00, 0x01, 0xAB}, w.Bytes())

	w = NewWriter()
	require.NoError(t, EncodeVector[Uint8](w, Limit24, items))
	assert.Equal(t, []byte{0x00, 0x00, 0x01, 0xAB}, w.Bytes())

	w = NewWriter()
	require.NoError(t, EncodeVector[Uint8](w, Limit32, items))
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x01, 0xAB}, w.Bytes())
}

func TestVectorBoundary(t *testing.T) {
	t.Run("ContentAtLimitSucceeds", func(t *testing.T) {
		items := make([]Uint8, 255)
		w := NewWriter()
		require.NoError(t, EncodeVector[Uint8](w, Limit8, items))
		assert.Equal(t, 256, w.Count()) // 1-byte prefix 0xFF + 255 bytes
		assert.Equal(t, byte(0xFF), w.Bytes()[0])
	})

	t.Run("ContentPastLimitFailsAtConstruction", func(t *testing.T) {
		items := make([]Uint8, 256)

		_, err := NewVector[Uint8](Limit8, items)
		assert.ErrorIs(t, err, ErrInvalidVectorLength)

		w := NewWriter()
		err = EncodeVector[Uint8](w, Limit8, items)
		assert.ErrorIs(t, err, ErrInvalidVectorLength)
		assert.Zero(t, w.Count(), "an oversized vector must write nothing")
	})
}

func TestVectorTruncated(t *testing.T) {
	// Prefix claims 5 bytes of content, only 2 remain.
	r := NewReader([]byte{0x05, 0x01, 0x02})
	_, err := DecodeVector[Uint8](r, Limit8)
	assert.ErrorIs(t, err, ErrUnexpectedEOF)
	assert.Zero(t, r.Count(), "cursor must be restored on a truncated vector")
}

func TestVectorPrefixExceedsLimit(t *testing.T) {
	// A limit of 100 still uses a 1-byte prefix, so a declared length of
	// 200 is expressible on the wire but invalid for this vector type.
	data := append([]byte{200}, make([]byte, 200)...)
	r := NewReader(data)
	_, err := DecodeVector[Uint8](r, Limit(100))
	assert.ErrorIs(t, err, ErrInvalidVectorLength)
	assert.Zero(t, r.Count())
}

func TestVectorTrailingData(t *testing.T) {
	// Three bytes of content cannot hold a whole number of uint16
	// elements: the declared length lands mid-element.
	r := NewReader([]byte{0x03, 0x00, 0x01, 0x00})
	_, err := DecodeVector[Uint16](r, Limit8)
	assert.ErrorIs(t, err, ErrTrailingData)
	assert.Zero(t, r.Count())
}

// unitElem decodes successfully while consuming no bytes, the degenerate
// element shape a downstream type parameter can produce (Fixed[struct{}]
// has the same property).
type unitElem struct{}

func (unitElem) Size() int                   { return 0 }
func (unitElem) MarshalWire(w *Writer) error { return w.Err() }
func (*unitElem) UnmarshalWire(r *Reader) error {
	return r.Err()
}

func TestVectorZeroSizeElement(t *testing.T) {
	r := NewReader([]byte{0x01, 0xAA})
	_, err := DecodeVector[unitElem](r, Limit8)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoProgress)
	assert.Zero(t, r.Count(), "cursor must be restored when the decode aborts")

	// Same guard through the wrapper type.
	got := &Vector[unitElem, *unitElem]{Limit: Limit8}
	assert.ErrorIs(t, got.UnmarshalWire(NewReader([]byte{0x02, 0xAA, 0xBB})), ErrNoProgress)

	// An empty vector of a zero-size element is still fine: there is no
	// byte budget to exhaust.
	r = NewReader([]byte{0x00})
	items, err := DecodeVector[unitElem](r, Limit8)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestVectorEmpty(t *testing.T) {
	w := NewWriter()
	require.NoError(t, EncodeVector[Uint16](w, Limit16, nil))
	assert.Equal(t, []byte{0x00, 0x00}, w.Bytes())

	r := NewReader(w.Bytes())
	got, err := DecodeVector[Uint16](r, Limit16)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Zero(t, r.Remaining())
}

func TestVectorScopedToOwnBudget(t *testing.T) {
	// Bytes following the vector belong to the enclosing structure and
	// must survive the vector decode untouched.
	data := []byte{0x02, 0xAA, 0xBB, 0xDE, 0xAD}
	r := NewReader(data)
	got, err := DecodeVector[Uint8](r, Limit8)
	require.NoError(t, err)
	assert.Equal(t, []Uint8{0xAA, 0xBB}, got)

	var tail uint16
	r.ReadUint16(&tail)
	require.NoError(t, r.Err())
	assert.Equal(t, uint16(0xDEAD), tail)
}

// suiteList is a length-prefixed list usable as a vector element, giving a
// vector-of-vectors with each level owning its own byte budget.
type suiteList struct {
	Suites []Uint16
}

func (l suiteList) Size() int {
	return VectorSize[Uint16](Limit8, l.Suites)
}

func (l suiteList) MarshalWire(w *Writer) error {
	return EncodeVector[Uint16](w, Limit8, l.Suites)
}

func (l *suiteList) UnmarshalWire(r *Reader) error {
	suites, err := DecodeVector[Uint16](r, Limit8)
	if err != nil {
		return err
	}
	l.Suites = suites
	return nil
}

func TestVectorNested(t *testing.T) {
	lists := []suiteList{
		{Suites: []Uint16{0x1301, 0x1302}},
		{Suites: nil},
		{Suites: []Uint16{0x1303}},
	}

	w := NewWriter()
	require.NoError(t, EncodeVector[suiteList](w, Limit16, lists))
	expected := []byte{
		0x00, 0x09, // outer prefix: 9 content bytes
		0x04, 0x13, 0x01, 0x13, 0x02, // first inner list
		0x00,             // empty inner list
		0x02, 0x13, 0x03, // third inner list
	}
	assert.Equal(t, expected, w.Bytes())

	r := NewReader(w.Bytes())
	got, err := DecodeVector[suiteList](r, Limit16)
	require.NoError(t, err)
	assert.Equal(t, lists, got)
}

func TestVectorWrapperRoundTrip(t *testing.T) {
	v, err := NewVector[Uint16](Limit8, []Uint16{7, 8})
	require.NoError(t, err)
	assert.Equal(t, 5, v.Size())

	data, err := Marshal(v)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x04, 0x00, 0x07, 0x00, 0x08}, data)

	got := &Vector[Uint16, *Uint16]{Limit: Limit8}
	require.NoError(t, Unmarshal(data, got))
	assert.Equal(t, v.Items, got.Items)
}

func TestOpaqueRoundTrip(t *testing.T) {
	w := NewWriter()
	require.NoError(t, WriteOpaque(w, Limit16, []byte{0xCA, 0xFE}))
	assert.Equal(t, []byte{0x00, 0x02, 0xCA, 0xFE}, w.Bytes())

	r := NewReader(w.Bytes())
	got, err := ReadOpaque(r, Limit16)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xCA, 0xFE}, got)

	// The returned slice is a copy, not a view into the input.
	w.Bytes()[2] = 0x00
	assert.Equal(t, []byte{0xCA, 0xFE}, got)
}

func TestOpaqueTooLarge(t *testing.T) {
	w := NewWriter()
	err := WriteOpaque(w, Limit8, make([]byte, 256))
	assert.ErrorIs(t, err, ErrInvalidVectorLength)
	assert.Zero(t, w.Count())
}

func TestBytesTypes(t *testing.T) {
	b := Bytes16{0x01, 0x02, 0x03}
	assert.Equal(t, 5, b.Size())

	data, err := Marshal(b)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x03, 0x01, 0x02, 0x03}, data)

	var got Bytes16
	require.NoError(t, Unmarshal(data, &got))
	assert.Equal(t, b, got)

	var b8 Bytes8
	require.NoError(t, Unmarshal([]byte{0x00}, &b8))
	assert.Empty(t, b8)
}
