// Package tlswire implements the low-level binary codec shared by
// cryptographic wire formats: big-endian fixed-width integers, booleans and
// raw byte arrays (TLS presentation language, RFC 8446 §3), length-prefixed
// vectors with declared maximum sizes, and QUIC variable-length integers
// (RFC 9000 §16).
//
// All encoding and decoding goes through a bounds-checked Reader/Writer
// cursor pair over caller-supplied memory. Decoding fails closed on any
// malformed input; encoding always produces the canonical byte form.
package tlswire

import "fmt"

// Sizer is an interface for types that can report their encoded size.
// It is used to pre-size length prefixes and output buffers without a
// dry-run encode.
type Sizer interface {
	// Size returns the size of the type in bytes when wire encoded.
	Size() int
}

// Marshaler is the encoding half of the wire contract. Composite types
// implement MarshalWire by writing their fields in declaration order;
// field order is part of the wire format, not an implementation detail.
type Marshaler interface {
	Sizer

	// MarshalWire writes the canonical encoding of the value to w.
	// The same value always produces the same bytes.
	MarshalWire(w *Writer) error
}

// Unmarshaler is the decoding half of the wire contract. UnmarshalWire
// reads exactly the bytes the value's encoding occupies and reconstructs
// the value, returning an error on any malformed or truncated input.
type Unmarshaler interface {
	UnmarshalWire(r *Reader) error
}

// Codec aggregates both halves. A type implementing Codec is a complete,
// self-sizing wire encoder/decoder and can be used as a vector element,
// optional payload, or struct field.
type Codec interface {
	Marshaler
	Unmarshaler
}

// Marshal encodes v into a newly allocated byte slice sized from v.Size().
func Marshal(v Marshaler) ([]byte, error) {
	w := NewWriter()
	if n := v.Size(); n > 0 {
		w.buf = make([]byte, 0, n)
	}
	if err := v.MarshalWire(w); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// MarshalTo encodes v into the pre-allocated buffer buf, returning the
// number of bytes written. It fails with ErrOutputBufferFull if buf is too
// small, without allocating.
func MarshalTo(v Marshaler, buf []byte) (int, error) {
	w := NewFixedWriter(buf)
	if err := v.MarshalWire(w); err != nil {
		return w.Count(), err
	}
	return w.Count(), nil
}

// Append encodes v and appends the bytes to dst, returning the extended
// slice.
func Append(v Marshaler, dst []byte) ([]byte, error) {
	w := NewWriter()
	w.buf = dst
	if err := v.MarshalWire(w); err != nil {
		return dst, err
	}
	return w.buf, nil
}

// Unmarshal decodes v from data. The whole input must be consumed; bytes
// left over after the decode fail with ErrTrailingData, so a top-level
// message cannot silently ignore appended garbage.
func Unmarshal(data []byte, v Unmarshaler) error {
	r := NewReader(data)
	if err := v.UnmarshalWire(r); err != nil {
		return err
	}
	if n := r.Remaining(); n > 0 {
		return fmt.Errorf("%w: %d bytes remain after decoding", ErrTrailingData, n)
	}
	return nil
}
