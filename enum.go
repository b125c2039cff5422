package tlswire

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Enumerations encode as a discriminant of a per-enum declared width,
// followed by the variant's payload if any. The helpers here read and
// write the discriminant in the enum's own integer type; recognizing the
// value is the enum's job, and an unrecognized one is reported with
// UnknownVariant before any payload bytes are consumed.

// ReadDiscriminant decodes a big-endian discriminant of the given byte
// width (1 to 8) into dest.
func ReadDiscriminant[E constraints.Unsigned](r *Reader, width int, dest *E) {
	v, ok := r.readUint(width)
	if ok {
		*dest = E(v)
	}
}

// WriteDiscriminant encodes v as a big-endian discriminant of the given
// byte width. A value too large for the width latches ErrValueOutOfRange.
func WriteDiscriminant[E constraints.Unsigned](w *Writer, width int, v E) {
	if w.err != nil {
		return
	}
	u := uint64(v)
	if width < 8 && u >= uint64(1)<<(8*width) {
		w.fail(fmt.Errorf("%w: discriminant %d does not fit %d bytes", ErrValueOutOfRange, u, width))
		return
	}
	w.writeUint(u, width)
}

// UnknownVariant builds the error an enum decoder returns for a
// discriminant outside its declared variant set.
func UnknownVariant[E constraints.Unsigned](enum string, discriminant E) error {
	return fmt.Errorf("%w: %s(%d)", ErrUnknownVariant, enum, uint64(discriminant))
}
