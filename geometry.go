package bmpstat

// BytesPerPixel returns the pixel width in whole bytes, never less than
// one. For bit depths below 8 several pixels share a byte; addressing
// stays byte-granular and such images report 1.
func (b *Bitmap) BytesPerPixel() int {
	n := int(b.BitsPerPixel()) / 8
	if n < 1 {
		return 1
	}
	return n
}

// RowSizeBits returns the size of one pixel row in bits, padding excluded.
func (b *Bitmap) RowSizeBits() int {
	width, _ := b.Dimensions()
	return int(b.BitsPerPixel()) * int(width)
}

// RowSize returns the size of one pixel row in bytes, rounded up to whole
// bytes, padding excluded.
func (b *Bitmap) RowSize() int {
	return (b.RowSizeBits() + 7) / 8
}

// Padding returns the number of filler bytes appended to each stored row
// so that its length is a multiple of 4. The outer mod collapses the
// already-aligned case from 4 to 0; the result is always in [0,3].
func (b *Bitmap) Padding() int {
	width, _ := b.Dimensions()
	return (4 - (int(width)*b.BytesPerPixel())%4) % 4
}

// EffRowSize returns the stride between consecutive rows: row bytes plus
// padding.
func (b *Bitmap) EffRowSize() int {
	return b.RowSize() + b.Padding()
}

// PayloadSize returns the total pixel array size in bytes, padding
// included.
func (b *Bitmap) PayloadSize() int {
	_, height := b.Dimensions()
	return int(height) * b.EffRowSize()
}
