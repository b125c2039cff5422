package tlswire

import (
	"encoding/binary"
	"fmt"
)

var be = binary.BigEndian

// Reader is a bounds-checked decoding cursor over a caller-supplied byte
// slice. Every fixed-size read either advances the position by exactly the
// requested count or fails with ErrUnexpectedEOF leaving the position
// unchanged.
//
// Reader tracks the first error. Subsequent reads become no-ops, so a
// sequence of primitive reads can be checked once via Err. A Reader is an
// exclusively-owned, sequential resource; it must not be shared across
// goroutines.
type Reader struct {
	buf []byte
	pos int
	err error // first error encountered.
}

// NewReader creates a Reader over data. The Reader borrows data for the
// duration of the decode and never retains it afterwards.
func NewReader(data []byte) *Reader {
	return &Reader{buf: data}
}

// Remaining reports the number of unread bytes. Length-prefixed decoders
// use it to bound nested reads without over-reading into data that belongs
// to an enclosing structure.
func (r *Reader) Remaining() int { return len(r.buf) - r.pos }

// Count returns the number of bytes consumed so far.
func (r *Reader) Count() int { return r.pos }

// Err returns the first error encountered, or nil.
func (r *Reader) Err() error { return r.err }

// fail records the first non-nil error and returns the latched error.
// This preserves the root cause of a failure chain instead of a later,
// less relevant error.
func (r *Reader) fail(err error) error {
	if r.err == nil && err != nil {
		r.err = err
	}
	return r.err
}

// take returns the next n bytes as a view into the input and advances the
// position. On a short input it latches ErrUnexpectedEOF and returns nil
// with the position unchanged.
func (r *Reader) take(n int) []byte {
	if r.err != nil {
		return nil
	}
	if n < 0 {
		r.fail(fmt.Errorf("%w: %d", ErrNegativeCount, n))
		return nil
	}
	if rem := r.Remaining(); rem < n {
		r.fail(fmt.Errorf("%w: need %d bytes, %d remain", ErrUnexpectedEOF, n, rem))
		return nil
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b
}

// Sub carves a child Reader scoped to exactly the next n bytes and advances
// this Reader past them. The child shares the underlying storage; it is how
// a length-prefixed decoder gives each nesting level its own byte budget.
func (r *Reader) Sub(n int) *Reader {
	b := r.take(n)
	if b == nil {
		return &Reader{err: r.err}
	}
	return &Reader{buf: b}
}

// ReadBytes reads n bytes and returns them as a view into the input.
// The view is only valid while the input slice is; callers that retain the
// bytes must copy them.
func (r *Reader) ReadBytes(n int) []byte {
	if n <= 0 {
		return nil
	}
	return r.take(n)
}

// ReadArray fills dest with the next len(dest) bytes. Fixed-size byte
// arrays carry no length prefix; the length is part of the static type.
func (r *Reader) ReadArray(dest []byte) {
	b := r.take(len(dest))
	if b != nil {
		copy(dest, b)
	}
}

// Skip discards the next n bytes.
func (r *Reader) Skip(n int) {
	r.take(n)
}

// readUint reads a big-endian unsigned integer of the given byte width.
// Widths 1 through 8 are supported; the odd width 3 is the TLS "uint24"
// used for medium-range lengths.
func (r *Reader) readUint(width int) (uint64, bool) {
	b := r.take(width)
	if b == nil {
		return 0, false
	}
	var v uint64
	for _, c := range b {
		v = v<<8 | uint64(c)
	}
	return v, true
}

// --- Primitive Read Operations ---

func (r *Reader) ReadUint8(dest *uint8) {
	if b := r.take(1); b != nil {
		*dest = b[0]
	}
}

func (r *Reader) ReadUint16(dest *uint16) {
	if b := r.take(2); b != nil {
		*dest = be.Uint16(b)
	}
}

// ReadUint24 reads a 3-byte big-endian integer into the low 24 bits of dest.
func (r *Reader) ReadUint24(dest *uint32) {
	if b := r.take(3); b != nil {
		*dest = uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2])
	}
}

func (r *Reader) ReadUint32(dest *uint32) {
	if b := r.take(4); b != nil {
		*dest = be.Uint32(b)
	}
}

func (r *Reader) ReadUint64(dest *uint64) {
	if b := r.take(8); b != nil {
		*dest = be.Uint64(b)
	}
}

// ReadBool decodes a single byte as a boolean. The decoder is lenient: any
// non-zero byte is accepted as true, tolerating third-party producers. The
// encoder side only ever emits 0x01.
func (r *Reader) ReadBool(dest *bool) {
	if b := r.take(1); b != nil {
		*dest = b[0] != 0
	}
}
