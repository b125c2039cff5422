package tlswire

// Primitive value types implementing Codec, so fixed-width integers,
// booleans and varints can be vector elements and struct fields without
// wrapper boilerplate. Integers encode big-endian (network byte order) in
// the width the type declares.
type (
	Uint8  uint8
	Uint16 uint16
	// Uint24 carries the 3-byte integer the TLS presentation language uses
	// for medium-range lengths. Values of 2^24 or more fail to encode.
	Uint24 uint32
	Uint32 uint32
	Uint64 uint64
	Bool   bool
	// VarInt is a QUIC variable-length integer in [0, MaxVarInt].
	VarInt uint64
)

var (
	_ Codec = (*Uint8)(nil)
	_ Codec = (*Uint16)(nil)
	_ Codec = (*Uint24)(nil)
	_ Codec = (*Uint32)(nil)
	_ Codec = (*Uint64)(nil)
	_ Codec = (*Bool)(nil)
	_ Codec = (*VarInt)(nil)
)

func (v Uint8) Size() int  { return 1 }
func (v Uint16) Size() int { return 2 }
func (v Uint24) Size() int { return 3 }
func (v Uint32) Size() int { return 4 }
func (v Uint64) Size() int { return 8 }
func (v Bool) Size() int   { return 1 }

// Size returns the minimal encoded width of v. For values above MaxVarInt
// it reports the maximum width; MarshalWire rejects such values before
// writing anything.
func (v VarInt) Size() int {
	if n := VarIntLen(uint64(v)); n > 0 {
		return n
	}
	return 8
}

func (v Uint8) MarshalWire(w *Writer) error {
	w.WriteUint8(uint8(v))
	return w.err
}

func (v Uint16) MarshalWire(w *Writer) error {
	w.WriteUint16(uint16(v))
	return w.err
}

func (v Uint24) MarshalWire(w *Writer) error {
	w.WriteUint24(uint32(v))
	return w.err
}

func (v Uint32) MarshalWire(w *Writer) error {
	w.WriteUint32(uint32(v))
	return w.err
}

func (v Uint64) MarshalWire(w *Writer) error {
	w.WriteUint64(uint64(v))
	return w.err
}

func (v Bool) MarshalWire(w *Writer) error {
	w.WriteBool(bool(v))
	return w.err
}

func (v VarInt) MarshalWire(w *Writer) error {
	w.WriteVarInt(uint64(v))
	return w.err
}

func (v *Uint8) UnmarshalWire(r *Reader) error {
	r.ReadUint8((*uint8)(v))
	return r.err
}

func (v *Uint16) UnmarshalWire(r *Reader) error {
	r.ReadUint16((*uint16)(v))
	return r.err
}

func (v *Uint24) UnmarshalWire(r *Reader) error {
	r.ReadUint24((*uint32)(v))
	return r.err
}

func (v *Uint32) UnmarshalWire(r *Reader) error {
	r.ReadUint32((*uint32)(v))
	return r.err
}

func (v *Uint64) UnmarshalWire(r *Reader) error {
	r.ReadUint64((*uint64)(v))
	return r.err
}

func (v *Bool) UnmarshalWire(r *Reader) error {
	r.ReadBool((*bool)(v))
	return r.err
}

func (v *VarInt) UnmarshalWire(r *Reader) error {
	r.ReadVarInt((*uint64)(v))
	return r.err
}
