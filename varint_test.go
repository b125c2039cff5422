package tlswire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The first four cases are the canonical RFC 9000 §A.1 test vectors.
var varIntVectors = []struct {
	value   uint64
	encoded []byte
}{
	{37, []byte{0x25}},
	{15293, []byte{0x7b, 0xbd}},
	{494878333, []byte{0x9d, 0x7f, 0x3e, 0x7d}},
	{151288809941952652, []byte{0xc2, 0x19, 0x7c, 0x5e, 0xff, 0x14, 0xe8, 0x8c}},

	// Width boundaries.
	{0, []byte{0x00}},
	{63, []byte{0x3f}},
	{64, []byte{0x40, 0x40}},
	{16383, []byte{0x7f, 0xff}},
	{16384, []byte{0x80, 0x00, 0x40, 0x00}},
	{1073741823, []byte{0xbf, 0xff, 0xff, 0xff}},
	{1073741824, []byte{0xc0, 0x00, 0x00, 0x00, 0x40, 0x00, 0x00, 0x00}},
	{MaxVarInt, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
}

func TestVarIntEncode(t *testing.T) {
	for _, tc := range varIntVectors {
		w := NewWriter()
		w.WriteVarInt(tc.value)
		require.NoError(t, w.Err())
		assert.Equal(t, tc.encoded, w.Bytes(), "value %d", tc.value)
		assert.Equal(t, len(tc.encoded), VarIntLen(tc.value))
	}
}

func TestVarIntDecode(t *testing.T) {
	for _, tc := range varIntVectors {
		r := NewReader(tc.encoded)
		var v uint64
		r.ReadVarInt(&v)
		require.NoError(t, r.Err())
		assert.Equal(t, tc.value, v)
		assert.Zero(t, r.Remaining())
	}
}

func TestVarIntRoundTrip(t *testing.T) {
	for _, tc := range varIntVectors {
		v := VarInt(tc.value)
		data, err := Marshal(v)
		require.NoError(t, err)

		var got VarInt
		require.NoError(t, Unmarshal(data, &got))
		assert.Equal(t, v, got)
	}
}

func TestVarIntNonMinimalAccepted(t *testing.T) {
	// The decoder tolerates any legal width for a given magnitude;
	// rejecting non-minimal encodings is the caller's policy.
	cases := []struct {
		encoded []byte
		value   uint64
	}{
		{[]byte{0x40, 0x25}, 37},
		{[]byte{0x80, 0x00, 0x00, 0x25}, 37},
		{[]byte{0xc0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x25}, 37},
	}
	for _, tc := range cases {
		r := NewReader(tc.encoded)
		var v uint64
		r.ReadVarInt(&v)
		require.NoError(t, r.Err())
		assert.Equal(t, tc.value, v)
		// A strict caller can detect the non-minimal form.
		assert.Less(t, VarIntLen(v), len(tc.encoded))
	}
}

func TestVarIntTooLarge(t *testing.T) {
	w := NewWriter()
	w.WriteVarInt(MaxVarInt + 1)
	assert.ErrorIs(t, w.Err(), ErrVarIntTooLarge)
	assert.Zero(t, w.Count(), "nothing may be written for an unencodable value")

	assert.Equal(t, -1, VarIntLen(MaxVarInt+1))
}

func TestVarIntTruncated(t *testing.T) {
	// First byte declares an 8-byte encoding but only 3 bytes follow.
	r := NewReader([]byte{0xc2, 0x19, 0x7c})
	var v uint64
	r.ReadVarInt(&v)
	assert.ErrorIs(t, r.Err(), ErrUnexpectedEOF)
	assert.Zero(t, r.Count(), "failed read must not advance the cursor")
}

func TestVarIntEmptyInput(t *testing.T) {
	r := NewReader(nil)
	var v uint64
	r.ReadVarInt(&v)
	assert.ErrorIs(t, r.Err(), ErrUnexpectedEOF)
}
