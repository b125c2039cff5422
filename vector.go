package tlswire

import (
	"errors"
	"fmt"
)

// Limit is the declared maximum encoded byte length of a vector's contents
// (the TLS presentation language's ceiling expression, e.g.
// `opaque data<0..2^16-1>`). The limit fixes the width of the length
// prefix, so both sides must declare the same one.
type Limit uint64

// Limits matching the maximum expressible by each prefix width. These are
// the ceilings real TLS structures declare almost exclusively.
const (
	Limit8  Limit = 1<<8 - 1
	Limit16 Limit = 1<<16 - 1
	Limit24 Limit = 1<<24 - 1
	Limit32 Limit = 1<<32 - 1
)

// PrefixLen returns the length-prefix width in bytes dictated by the limit:
// 1 below 2^8, 2 below 2^16, 3 below 2^24, 4 otherwise. Limits above
// Limit32 are not expressible on the wire and are treated as Limit32.
func (l Limit) PrefixLen() int {
	switch {
	case l < 1<<8:
		return 1
	case l < 1<<16:
		return 2
	case l < 1<<24:
		return 3
	default:
		return 4
	}
}

func (l Limit) clamp() Limit {
	if l > Limit32 {
		return Limit32
	}
	return l
}

// EncodeVector writes the length-prefixed encoding of items: the total
// content byte length in the prefix width dictated by limit, then each
// element's encoding in order. Content larger than the limit is a
// construction error (ErrInvalidVectorLength) and nothing is written.
// An empty slice encodes as a zero prefix with no element bytes.
func EncodeVector[T any, PT interface {
	*T
	Marshaler
}](w *Writer, limit Limit, items []T) error {
	if w.err != nil {
		return w.err
	}
	limit = limit.clamp()
	size := 0
	for i := range items {
		size += PT(&items[i]).Size()
	}
	if uint64(size) > uint64(limit) {
		return w.fail(fmt.Errorf("%w: content is %d bytes, limit is %d", ErrInvalidVectorLength, size, limit))
	}
	w.writeUint(uint64(size), limit.PrefixLen())
	for i := range items {
		if err := PT(&items[i]).MarshalWire(w); err != nil {
			return err
		}
	}
	return w.err
}

// DecodeVector reads a length-prefixed vector of T. The prefix width is
// known statically from limit; the declared length must not exceed the
// limit (ErrInvalidVectorLength) nor the bytes remaining in r
// (ErrUnexpectedEOF). Elements then decode from a sub-cursor scoped to
// exactly the declared span until it is exhausted; a declared length that
// lands mid-element fails with ErrTrailingData. On any failure the cursor
// position is restored to where the vector began.
func DecodeVector[T any, PT interface {
	*T
	Unmarshaler
}](r *Reader, limit Limit) ([]T, error) {
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
	sub := r.Sub(int(n))
	var items []T
	for sub.Remaining() > 0 {
		before := sub.Count()
		var item T
		if err := PT(&item).UnmarshalWire(sub); err != nil {
			r.pos = start
			if errors.Is(err, ErrUnexpectedEOF) {
				// The element ran past the declared span: the prefix lands
				// mid-element, which is a malformed vector rather than a
				// truncated input.
				err = fmt.Errorf("%w: declared length %d splits an element", ErrTrailingData, n)
			}
			return nil, r.fail(err)
		}
		if sub.Count() == before {
			// A zero-size element can never exhaust the declared span;
			// looping on it would append forever.
			r.pos = start
			return nil, r.fail(fmt.Errorf("%w: vector element of type %T", ErrNoProgress, item))
		}
		items = append(items, item)
	}
	return items, nil
}

// VectorSize returns the encoded size of a vector of items under limit:
// prefix plus content.
func VectorSize[T any, PT interface {
	*T
	Marshaler
}](limit Limit, items []T) int {
	size := limit.clamp().PrefixLen()
	for i := range items {
		size += PT(&items[i]).Size()
	}
	return size
}

// Vector is a length-prefixed sequence of T for embedding in composite
// types. It is an ephemeral wrapper around the caller-owned Items slice;
// the zero value with a Limit set is ready to use.
type Vector[T any, PT interface {
	*T
	Codec
}] struct {
	Limit Limit
	Items []T
}

// NewVector wraps items in a Vector after checking that their encoded
// content fits limit. Oversized content is reported here, at construction,
// rather than surfacing later on the wire.
func NewVector[T any, PT interface {
	*T
	Codec
}](limit Limit, items []T) (*Vector[T, PT], error) {
	size := 0
	for i := range items {
		size += PT(&items[i]).Size()
	}
	if uint64(size) > uint64(limit.clamp()) {
		return nil, fmt.Errorf("%w: content is %d bytes, limit is %d", ErrInvalidVectorLength, size, limit.clamp())
	}
	return &Vector[T, PT]{Limit: limit, Items: items}, nil
}

func (v *Vector[T, PT]) Size() int {
	return VectorSize[T, PT](v.Limit, v.Items)
}

func (v *Vector[T, PT]) MarshalWire(w *Writer) error {
	return EncodeVector[T, PT](w, v.Limit, v.Items)
}

func (v *Vector[T, PT]) UnmarshalWire(r *Reader) error {
	items, err := DecodeVector[T, PT](r, v.Limit)
	if err != nil {
		return err
	}
	v.Items = items
	return nil
}
