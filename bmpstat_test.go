package bmpstat

import (
	"bytes"
	"encoding/binary"
	"testing"
)

// testImage assembles a minimal file: a zeroed header carrying just the
// four fields this package reads, followed by the payload bytes at
// payloadOffset.
func testImage(payloadOffset uint32, width, height int32, bpp uint16, payload []byte) []byte {
	raw := make([]byte, int(payloadOffset)+len(payload))
	binary.LittleEndian.PutUint32(raw[payloadOffsetPos:], payloadOffset)
	binary.LittleEndian.PutUint32(raw[widthPos:], uint32(width))
	binary.LittleEndian.PutUint32(raw[heightPos:], uint32(height))
	binary.LittleEndian.PutUint16(raw[bitsPerPixelPos:], bpp)
	copy(raw[int(payloadOffset):], payload)
	return raw
}

func TestNewCopiesBuffer(t *testing.T) {
	raw := testImage(54, 2, 1, 24, make([]byte, 8))
	b := New(raw)
	raw[54] = 0xFF
	if got := b.RawImage()[54]; got != 0 {
		t.Fatalf("mutating the input slice reached the bitmap: got %#x", got)
	}
}

func TestRawImageCopiesBuffer(t *testing.T) {
	b := New(testImage(54, 2, 1, 24, make([]byte, 8)))
	out := b.RawImage()
	out[54] = 0xFF
	if got := b.RawImage()[54]; got != 0 {
		t.Fatalf("mutating the returned slice reached the bitmap: got %#x", got)
	}
}

func TestSetRawImage(t *testing.T) {
	b := New(testImage(54, 2, 1, 24, make([]byte, 8)))
	next := testImage(54, 4, 2, 32, make([]byte, 32))
	b.SetRawImage(next)
	if !bytes.Equal(b.RawImage(), next) {
		t.Fatalf("buffer not replaced")
	}
	if got := b.Len(); got != len(next) {
		t.Fatalf("wrong length: want %d, got %d", len(next), got)
	}
	width, height := b.Dimensions()
	if width != 4 || height != 2 {
		t.Fatalf("header fields not re-read: got %dx%d", width, height)
	}
}
