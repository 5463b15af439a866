package bmpstat

import (
	"testing"
)

func TestGeometry(t *testing.T) {
	var tt = []struct {
		width         int32
		height        int32
		bpp           uint16
		bytesPerPixel int
		rowSize       int
		padding       int
		effRowSize    int
		payloadSize   int
	}{
		{width: 2, height: 1, bpp: 24, bytesPerPixel: 3, rowSize: 6, padding: 2, effRowSize: 8, payloadSize: 8},
		{width: 1, height: 1, bpp: 24, bytesPerPixel: 3, rowSize: 3, padding: 1, effRowSize: 4, payloadSize: 4},
		{width: 4, height: 2, bpp: 24, bytesPerPixel: 3, rowSize: 12, padding: 0, effRowSize: 12, payloadSize: 24},
		{width: 3, height: 13, bpp: 8, bytesPerPixel: 1, rowSize: 3, padding: 1, effRowSize: 4, payloadSize: 52},
		{width: 5, height: 3, bpp: 32, bytesPerPixel: 4, rowSize: 20, padding: 0, effRowSize: 20, payloadSize: 60},
		// Sub-byte depths report one byte per pixel: RowSize still counts
		// bits while Padding counts whole pixel bytes.
		{width: 3, height: 1, bpp: 1, bytesPerPixel: 1, rowSize: 1, padding: 1, effRowSize: 2, payloadSize: 2},
		{width: 0, height: 0, bpp: 24, bytesPerPixel: 3, rowSize: 0, padding: 0, effRowSize: 0, payloadSize: 0},
	}
	for _, v := range tt {
		b := New(testImage(54, v.width, v.height, v.bpp, nil))
		if got := b.BytesPerPixel(); got != v.bytesPerPixel {
			t.Fatalf("%dx%d@%d: wrong bytes per pixel: want %d, got %d", v.width, v.height, v.bpp, v.bytesPerPixel, got)
		}
		if got := b.RowSize(); got != v.rowSize {
			t.Fatalf("%dx%d@%d: wrong row size: want %d, got %d", v.width, v.height, v.bpp, v.rowSize, got)
		}
		if got := b.Padding(); got != v.padding {
			t.Fatalf("%dx%d@%d: wrong padding: want %d, got %d", v.width, v.height, v.bpp, v.padding, got)
		}
		if got := b.EffRowSize(); got != v.effRowSize {
			t.Fatalf("%dx%d@%d: wrong effective row size: want %d, got %d", v.width, v.height, v.bpp, v.effRowSize, got)
		}
		if got := b.PayloadSize(); got != v.payloadSize {
			t.Fatalf("%dx%d@%d: wrong payload size: want %d, got %d", v.width, v.height, v.bpp, v.payloadSize, got)
		}
	}
}

func TestPaddingAlignsRows(t *testing.T) {
	// Padding cycles 1,2,3,0 as 24-bit rows grow, and always tops the row
	// up to a 4-byte multiple.
	want := []int{1, 2, 3, 0, 1, 2, 3, 0}
	for n, wantPad := range want {
		width := int32(n + 1)
		b := New(testImage(54, width, 1, 24, nil))
		if got := b.Padding(); got != wantPad {
			t.Fatalf("width %d: wrong padding: want %d, got %d", width, wantPad, got)
		}
		if got := b.Padding(); got < 0 || got > 3 {
			t.Fatalf("width %d: padding %d outside [0,3]", width, got)
		}
		if aligned := b.EffRowSize() % 4; aligned != 0 {
			t.Fatalf("width %d: effective row size %d not 4-byte aligned", width, b.EffRowSize())
		}
	}
}
