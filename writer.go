package tlswire

import "fmt"

// Writer is the encoding sink: an appendable, position-tracking buffer.
// The default Writer grows as needed; NewFixedWriter wraps a caller-supplied
// buffer and fails with ErrOutputBufferFull when it runs out of space.
//
// Writer tracks the first error that occurs. After an error, all subsequent
// write operations become no-ops, so a sequence of primitive writes can be
// checked once via Err. A Writer must not be shared across goroutines.
type Writer struct {
	buf   []byte
	fixed bool
	err   error // first error encountered. Subsequent writes become no-ops.
}

// NewWriter creates a growable Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// NewFixedWriter creates a Writer over a pre-allocated buffer. Writes never
// grow the buffer; encoding more than len(buf) bytes fails with
// ErrOutputBufferFull.
func NewFixedWriter(buf []byte) *Writer {
	return &Writer{buf: buf[:0:len(buf)], fixed: true}
}

// Bytes returns the written bytes. For a fixed Writer this is a prefix of
// the caller's buffer.
func (w *Writer) Bytes() []byte { return w.buf }

// Count returns the number of bytes written.
func (w *Writer) Count() int { return len(w.buf) }

// Err returns the first error encountered, or nil.
func (w *Writer) Err() error { return w.err }

// fail records the first non-nil error and returns the latched error.
func (w *Writer) fail(err error) error {
	if w.err == nil && err != nil {
		w.err = err
	}
	return w.err
}

// reserve checks that n more bytes fit a fixed Writer, latching
// ErrOutputBufferFull if not.
func (w *Writer) reserve(n int) bool {
	if w.err != nil {
		return false
	}
	if w.fixed && len(w.buf)+n > cap(w.buf) {
		w.fail(fmt.Errorf("%w: need %d bytes, %d available", ErrOutputBufferFull, n, cap(w.buf)-len(w.buf)))
		return false
	}
	return true
}

// WriteBytes appends buf verbatim.
func (w *Writer) WriteBytes(buf []byte) {
	if len(buf) == 0 || !w.reserve(len(buf)) {
		return
	}
	w.buf = append(w.buf, buf...)
}

// writeUint appends a big-endian unsigned integer of the given byte width.
// The caller guarantees v fits the width.
func (w *Writer) writeUint(v uint64, width int) {
	if !w.reserve(width) {
		return
	}
	for shift := 8 * (width - 1); shift >= 0; shift -= 8 {
		w.buf = append(w.buf, byte(v>>shift))
	}
}

// --- Primitive Write Operations ---

func (w *Writer) WriteUint8(v uint8) {
	w.writeUint(uint64(v), 1)
}

func (w *Writer) WriteUint16(v uint16) {
	w.writeUint(uint64(v), 2)
}

// WriteUint24 appends the low 3 bytes of v big-endian. Values of 2^24 or
// more do not fit and latch ErrValueOutOfRange.
func (w *Writer) WriteUint24(v uint32) {
	if w.err != nil {
		return
	}
	if v >= 1<<24 {
		w.fail(fmt.Errorf("%w: %d does not fit in a uint24", ErrValueOutOfRange, v))
		return
	}
	w.writeUint(uint64(v), 3)
}

func (w *Writer) WriteUint32(v uint32) {
	w.writeUint(uint64(v), 4)
}

func (w *Writer) WriteUint64(v uint64) {
	w.writeUint(v, 8)
}

// WriteBool appends the canonical boolean encoding: 0x01 for true, 0x00 for
// false. The encoder is strict even though the decoder accepts any non-zero
// byte as true.
func (w *Writer) WriteBool(v bool) {
	if v {
		w.writeUint(1, 1)
	} else {
		w.writeUint(0, 1)
	}
}
