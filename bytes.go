package tlswire

import "fmt"

// Opaque byte vectors: the TLS `opaque data<0..2^N-1>` forms. Unlike
// element vectors, the content is raw bytes, so decoding never has an
// element boundary to misalign with.

// WriteOpaque writes b as a length-prefixed opaque vector under limit.
// Content longer than the limit is a construction error.
func WriteOpaque(w *Writer, limit Limit, b []byte) error {
	if w.err != nil {
		return w.err
	}
	limit = limit.clamp()
	if uint64(len(b)) > uint64(limit) {
		return w.fail(fmt.Errorf("%w: content is %d bytes, limit is %d", ErrInvalidVectorLength, len(b), limit))
	}
	w.writeUint(uint64(len(b)), limit.PrefixLen())
	w.WriteBytes(b)
	return w.err
}

// ReadOpaque reads a length-prefixed opaque vector under limit, returning
// a freshly allocated copy of the content. The returned slice is owned by
// the caller; the codec retains nothing. On failure the cursor position is
// restored to where the vector began.
func ReadOpaque(r *Reader, limit Limit) ([]byte, error) {
	if r.err != nil {
		return nil, r.err
	}
	limit = limit.clamp()
	start := r.pos
	n, ok := r.readUint(limit.PrefixLen())
	if !ok {
		return nil, r.err
	}
	if n > uint64(limit) {
		r.pos = start
		return nil, r.fail(fmt.Errorf("%w: declared length %d exceeds limit %d", ErrInvalidVectorLength, n, limit))
	}
	if rem := r.Remaining(); n > uint64(rem) {
		r.pos = start
		return nil, r.fail(fmt.Errorf("%w: vector claims %d bytes, %d remain", ErrUnexpectedEOF, n, rem))
	}
	b := make([]byte, n)
	copy(b, r.take(int(n)))
	return b, nil
}

// OpaqueSize returns the encoded size of content bytes under limit.
func OpaqueSize(limit Limit, n int) int {
	return limit.clamp().PrefixLen() + n
}

// Bytes8 through Bytes32 are []byte wrappers with the limit fixed at the
// maximum of each prefix width, implementing Codec so they can be struct
// fields and vector elements directly.
type (
	Bytes8  []byte
	Bytes16 []byte
	Bytes24 []byte
	Bytes32 []byte
)

func (b Bytes8) Size() int  { return OpaqueSize(Limit8, len(b)) }
func (b Bytes16) Size() int { return OpaqueSize(Limit16, len(b)) }
func (b Bytes24) Size() int { return OpaqueSize(Limit24, len(b)) }
func (b Bytes32) Size() int { return OpaqueSize(Limit32, len(b)) }

func (b Bytes8) MarshalWire(w *Writer) error  { return WriteOpaque(w, Limit8, b) }
func (b Bytes16) MarshalWire(w *Writer) error { return WriteOpaque(w, Limit16, b) }
func (b Bytes24) MarshalWire(w *Writer) error { return WriteOpaque(w, Limit24, b) }
func (b Bytes32) MarshalWire(w *Writer) error { return WriteOpaque(w, Limit32, b) }

func (b *Bytes8) UnmarshalWire(r *Reader) error {
	v, err := ReadOpaque(r, Limit8)
	if err != nil {
		return err
	}
	*b = v
	return nil
}

func (b *Bytes16) UnmarshalWire(r *Reader) error {
	v, err := ReadOpaque(r, Limit16)
	if err != nil {
		return err
	}
	*b = v
	return nil
}

func (b *Bytes24) UnmarshalWire(r *Reader) error {
	v, err := ReadOpaque(r, Limit24)
	if err != nil {
		return err
	}
	*b = v
	return nil
}

func (b *Bytes32) UnmarshalWire(r *Reader) error {
	v, err := ReadOpaque(r, Limit32)
	if err != nil {
		return err
	}
	*b = v
	return nil
}
