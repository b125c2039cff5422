package tlswire

import "fmt"

// QUIC variable-length integer encoding, RFC 9000 §16. The top 2 bits of
// the first byte select the total width (00/01/10/11 → 1/2/4/8 bytes); the
// remaining 6 bits plus the following bytes form the big-endian magnitude.

// MaxVarInt is the largest value a variable-length integer can carry:
// 62 usable bits.
const MaxVarInt = 1<<62 - 1

// Largest value representable at each varint width.
const (
	maxVarInt1 = 1<<6 - 1
	maxVarInt2 = 1<<14 - 1
	maxVarInt4 = 1<<30 - 1
)

// VarIntLen returns the minimal encoded width (1, 2, 4 or 8 bytes) for v,
// or -1 if v exceeds MaxVarInt.
func VarIntLen(v uint64) int {
	switch {
	case v <= maxVarInt1:
		return 1
	case v <= maxVarInt2:
		return 2
	case v <= maxVarInt4:
		return 4
	case v <= MaxVarInt:
		return 8
	default:
		return -1
	}
}

// WriteVarInt appends the canonical minimal-width encoding of v. Values
// above MaxVarInt latch ErrVarIntTooLarge. The encoder never produces a
// non-minimal width; that rule is an invariant of the wire format, not a
// preference.
func (w *Writer) WriteVarInt(v uint64) {
	if w.err != nil {
		return
	}
	width := VarIntLen(v)
	if width < 0 {
		w.fail(fmt.Errorf("%w: %d", ErrVarIntTooLarge, v))
		return
	}
	tag := uint64(varIntTag(width)) << (8 * (width - 1))
	w.writeUint(tag|v, width)
}

// varIntTag maps a width to its 2-bit tag (placed in the top bits of the
// first byte).
func varIntTag(width int) byte {
	switch width {
	case 1:
		return 0b00
	case 2:
		return 0b01 << 6
	case 4:
		return 0b10 << 6
	default:
		return 0b11 << 6
	}
}

// ReadVarInt decodes a variable-length integer into dest. Any legal width
// is accepted for a given magnitude, including non-minimal encodings; a
// caller targeting a stricter profile can compare the consumed width
// against VarIntLen of the result. A truncated encoding fails with
// ErrUnexpectedEOF and leaves the position unchanged.
func (r *Reader) ReadVarInt(dest *uint64) {
	if r.err != nil {
		return
	}
	if r.Remaining() == 0 {
		r.fail(fmt.Errorf("%w: need 1 byte, 0 remain", ErrUnexpectedEOF))
		return
	}
	first := r.buf[r.pos]
	width := 1 << (first >> 6)
	b := r.take(width)
	if b == nil {
		return
	}
	v := uint64(b[0] & 0b0011_1111)
	for _, c := range b[1:] {
		v = v<<8 | uint64(c)
	}
	*dest = v
}
