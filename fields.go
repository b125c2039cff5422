package tlswire

// Explicit field composition. Composite structs implement the wire
// contract by listing their fields in declaration order; the order is part
// of the wire format. These helpers keep such implementations to one line
// per method without reflection or code generation.

// SizeFields sums the encoded sizes of fields.
func SizeFields(fields ...Sizer) int {
	size := 0
	for _, f := range fields {
		size += f.Size()
	}
	return size
}

// MarshalFields encodes fields in order, stopping at the first error.
func MarshalFields(w *Writer, fields ...Marshaler) error {
	for _, f := range fields {
		if err := f.MarshalWire(w); err != nil {
			return err
		}
	}
	return w.err
}

// UnmarshalFields decodes fields in order, stopping at the first error.
func UnmarshalFields(r *Reader, fields ...Unmarshaler) error {
	for _, f := range fields {
		if err := f.UnmarshalWire(r); err != nil {
			return err
		}
	}
	return r.err
}
