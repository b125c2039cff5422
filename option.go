package tlswire

import "fmt"

// Optional wraps a value that may be absent on the wire. The encoding is a
// one-byte presence flag (0x00 absent, 0x01 present) followed by the inner
// encoding when present; an absent value carries no further bytes.
//
// Unlike booleans, the presence flag is decoded strictly: any byte other
// than 0x00 or 0x01 fails with ErrUnknownVariant, because a garbled flag
// desynchronizes everything after it.
type Optional[T any, PT interface {
	*T
	Codec
}] struct {
	Value *T
}

// Some returns an Optional holding v.
func Some[T any, PT interface {
	*T
	Codec
}](v T) Optional[T, PT] {
	return Optional[T, PT]{Value: &v}
}

// None returns an absent Optional.
func None[T any, PT interface {
	*T
	Codec
}]() Optional[T, PT] {
	return Optional[T, PT]{}
}

// Present reports whether a value is held.
func (o Optional[T, PT]) Present() bool { return o.Value != nil }

func (o Optional[T, PT]) Size() int {
	if o.Value == nil {
		return 1
	}
	return 1 + PT(o.Value).Size()
}

func (o Optional[T, PT]) MarshalWire(w *Writer) error {
	if o.Value == nil {
		w.WriteUint8(0)
		return w.err
	}
	w.WriteUint8(1)
	return PT(o.Value).MarshalWire(w)
}

func (o *Optional[T, PT]) UnmarshalWire(r *Reader) error {
	var flag uint8
	r.ReadUint8(&flag)
	if r.err != nil {
		return r.err
	}
	switch flag {
	case 0:
		o.Value = nil
		return nil
	case 1:
		v := new(T)
		if err := PT(v).UnmarshalWire(r); err != nil {
			return err
		}
		o.Value = v
		return nil
	default:
		return r.fail(fmt.Errorf("%w: presence flag 0x%02x", ErrUnknownVariant, flag))
	}
}
