package tlswire

import "errors"

var (
	// ErrUnexpectedEOF indicates that the input ended before all required
	// bytes could be read. The failed read leaves the cursor position
	// unchanged.
	ErrUnexpectedEOF = errors.New("tlswire: unexpected end of input")

	// ErrInvalidVectorLength indicates a vector length that violates its
	// declared maximum: either the content of a vector being encoded is
	// larger than the limit, or a decoded length prefix claims more bytes
	// than the limit allows.
	ErrInvalidVectorLength = errors.New("tlswire: invalid vector length")

	// ErrTrailingData indicates bytes left over after decoding: either a
	// top-level Unmarshal did not consume its whole input, or a vector's
	// declared length lands in the middle of an element.
	ErrTrailingData = errors.New("tlswire: trailing data after decoding")

	// ErrVarIntTooLarge indicates a value outside the 62-bit range that a
	// QUIC variable-length integer can carry.
	ErrVarIntTooLarge = errors.New("tlswire: varint value exceeds 62-bit range")

	// ErrUnknownVariant indicates an enum discriminant or presence flag
	// outside the declared set of variants. No payload bytes are consumed
	// after the unrecognized discriminant.
	ErrUnknownVariant = errors.New("tlswire: unknown enum variant")

	// ErrOutputBufferFull indicates that a fixed-capacity Writer ran out of
	// space during encoding.
	ErrOutputBufferFull = errors.New("tlswire: output buffer full")

	// ErrValueOutOfRange indicates a value that does not fit the fixed
	// width it is declared to encode with, e.g. a uint24 above 2^24-1.
	ErrValueOutOfRange = errors.New("tlswire: value out of range for declared width")

	// ErrNotFixedSize indicates that a Fixed codec was instantiated with a
	// type containing variable-size fields such as slices or strings.
	ErrNotFixedSize = errors.New("tlswire: type is not fixed size")

	// ErrNoProgress indicates an element decoder that succeeded without
	// consuming any bytes. A vector of such elements can never exhaust its
	// declared byte budget, so the decode is aborted instead of spinning.
	ErrNoProgress = errors.New("tlswire: element decoder consumed no bytes")

	// ErrNegativeCount indicates a read or skip was requested with a
	// negative byte count.
	ErrNegativeCount = errors.New("tlswire: negative byte count")
)
