package tlswire

import (
	"encoding/binary"
	"reflect"

	"github.com/puzpuzpuz/xsync/v4"
)

// sizeCache avoids the high performance cost of reflection in `binary.Size`
// on every call. Using a concurrent map makes it safe for codecs running on
// separate cursors in parallel.
var sizeCache = xsync.NewMap[reflect.Type, int]()

// Fixed provides a Codec for any struct Value composed solely of
// fixed-width fields, eliminating boilerplate for flat records like
// protocol headers. Fields encode big-endian in declaration order, exactly
// as a hand-written MarshalWire over the same fields would.
//
// Constraint: Value must not contain variable-size fields such as slices,
// maps or strings; those need explicit composition with vectors.
type Fixed[Value any] struct {
	Value Value
}

var _ Codec = (*Fixed[struct{}])(nil)

// Size returns the fixed encoded size of Value in bytes, or -1 if Value is
// not a fixed-size type. The result is cached to avoid reflection overhead
// on subsequent calls.
func (c *Fixed[Value]) Size() int {
	t := reflect.TypeOf((*Value)(nil)).Elem()
	if size, ok := sizeCache.Load(t); ok {
		return size
	}
	size := binary.Size(&c.Value)
	sizeCache.Store(t, size)
	return size
}

func (c *Fixed[Value]) MarshalWire(w *Writer) error {
	size := c.Size()
	if size < 0 {
		return w.fail(ErrNotFixedSize)
	}
	if !w.reserve(size) {
		return w.err
	}
	buf := make([]byte, size)
	if _, err := binary.Encode(buf, be, &c.Value); err != nil {
		return w.fail(ErrNotFixedSize)
	}
	w.WriteBytes(buf)
	return w.err
}

func (c *Fixed[Value]) UnmarshalWire(r *Reader) error {
	size := c.Size()
	if size < 0 {
		return r.fail(ErrNotFixedSize)
	}
	b := r.take(size)
	if b == nil {
		return r.err
	}
	if _, err := binary.Decode(b, be, &c.Value); err != nil {
		return r.fail(ErrNotFixedSize)
	}
	return nil
}
