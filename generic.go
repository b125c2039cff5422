package tlswire

import (
	"bytes"
	"io"
	"sync"
)

// Bridging between the buffer-based cursor contract and the stdlib stream
// interfaces. The codec itself performs no I/O; these adapters let a wire
// type sit behind io.WriterTo/io.ReaderFrom seams (connections, files)
// without each format library writing its own glue.

// bytesBufPool reuses buffers when draining a stream before decoding.
// A 4KB default avoids re-allocations for common message sizes.
var bytesBufPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, 4096))
	},
}

// WriteToGeneric provides a generic io.WriterTo implementation: marshal to
// a buffer sized from Size, then write it out in one call.
func WriteToGeneric(v Marshaler, w io.Writer) (int64, error) {
	buf, err := Marshal(v)
	if err != nil {
		return 0, err
	}
	n, err := w.Write(buf)
	if err != nil {
		return int64(n), err
	}
	if n < len(buf) {
		return int64(n), io.ErrShortWrite
	}
	return int64(n), nil
}

// ReadFromGeneric provides a generic io.ReaderFrom implementation.
// WARNING: this is not streaming. It drains r into a pooled buffer before
// decoding, so it is unsuitable for unbounded inputs; wrap r in an
// io.LimitReader when the peer is untrusted.
func ReadFromGeneric(v Unmarshaler, r io.Reader) (int64, error) {
	buf := bytesBufPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer bytesBufPool.Put(buf)

	n, err := buf.ReadFrom(r)
	if err != nil {
		return n, err
	}
	return n, Unmarshal(buf.Bytes(), v)
}
