// Package bmpstat provides byte-exact addressing and mutation of single
// color-channel bits inside an in-memory BMP file.
package bmpstat

// MinLen is the smallest buffer length containing every header field this
// package reads.
const MinLen = 30

// Bitmap wraps a whole BMP file (header, optional color table and pixel
// array) as one mutable byte buffer. Header fields and the geometry
// derived from them are recomputed from the buffer on every call, so they
// always reflect its current content.
//
// A Bitmap owns its buffer exclusively: New and SetRawImage copy bytes
// in, RawImage and Payload copy bytes out. It is not safe for concurrent
// use; callers sharing one across goroutines must hold a single lock for
// the whole of each read-modify-write operation.
type Bitmap struct {
	raw []byte
}

// New returns a Bitmap over a copy of raw. The caller is responsible for
// supplying a well-formed BMP: methods reading header fields panic when
// the buffer is shorter than MinLen bytes.
func New(raw []byte) *Bitmap {
	b := &Bitmap{}
	b.SetRawImage(raw)
	return b
}

// SetRawImage replaces the buffer wholesale with a copy of raw.
func (b *Bitmap) SetRawImage(raw []byte) {
	b.raw = make([]byte, len(raw))
	copy(b.raw, raw)
}

// RawImage returns a copy of the whole buffer.
func (b *Bitmap) RawImage() []byte {
	out := make([]byte, len(b.raw))
	copy(out, b.raw)
	return out
}

// Len returns the current buffer length in bytes.
func (b *Bitmap) Len() int {
	return len(b.raw)
}
