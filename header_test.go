package bmpstat

import (
	"testing"
)

func TestHeaderFields(t *testing.T) {
	var tt = []struct {
		payloadOffset uint32
		width         int32
		height        int32
		bpp           uint16
	}{
		{payloadOffset: 54, width: 4, height: 2, bpp: 24},
		{payloadOffset: 54, width: 1, height: 1, bpp: 24},
		{payloadOffset: 138, width: 640, height: 480, bpp: 32},
		{payloadOffset: 1078, width: 3, height: 2, bpp: 8},
	}
	for _, v := range tt {
		b := New(testImage(v.payloadOffset, v.width, v.height, v.bpp, nil))
		if got := b.PayloadOffset(); got != v.payloadOffset {
			t.Fatalf("wrong payload offset: want %d, got %d", v.payloadOffset, got)
		}
		width, height := b.Dimensions()
		if width != v.width || height != v.height {
			t.Fatalf("wrong dimensions: want %dx%d, got %dx%d", v.width, v.height, width, height)
		}
		if got := b.BitsPerPixel(); got != v.bpp {
			t.Fatalf("wrong bit depth: want %d, got %d", v.bpp, got)
		}
	}
}

func TestDimensionsSigned(t *testing.T) {
	// Top-down files store a negative height; the sign must survive the
	// unsigned read.
	b := New(testImage(54, 4, -2, 24, nil))
	_, height := b.Dimensions()
	if height != -2 {
		t.Fatalf("negative height lost: got %d", height)
	}
}

func TestShortBufferPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic reading a buffer shorter than MinLen")
		}
	}()
	New(make([]byte, MinLen-1)).BitsPerPixel()
}
