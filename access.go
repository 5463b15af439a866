package bmpstat

import (
	"github.com/apaonessaa/BMPstat/pkg/bitmask"
)

// CheckWidth validates column index i against [0, width).
func (b *Bitmap) CheckWidth(i int) error {
	width, _ := b.Dimensions()
	if i < 0 || i >= int(width) {
		return &RangeError{Coord: "width", Value: i, Start: 0, End: int(width)}
	}
	return nil
}

// CheckHeight validates row index j against [0, height).
func (b *Bitmap) CheckHeight(j int) error {
	_, height := b.Dimensions()
	if j < 0 || j >= int(height) {
		return &RangeError{Coord: "height", Value: j, Start: 0, End: int(height)}
	}
	return nil
}

// CheckLayer validates a channel index against [0, BytesPerPixel).
func (b *Bitmap) CheckLayer(layer int) error {
	bpp := b.BytesPerPixel()
	if layer < 0 || layer >= bpp {
		return &RangeError{Coord: "layer", Value: layer, Start: 0, End: bpp}
	}
	return nil
}

// CheckSublayer validates a bit position against [0, BitsPerPixel).
func (b *Bitmap) CheckSublayer(sublayer int) error {
	bpp := int(b.BitsPerPixel())
	if sublayer < 0 || sublayer >= bpp {
		return &RangeError{Coord: "sublayer", Value: sublayer, Start: 0, End: bpp}
	}
	return nil
}

// CheckWidthWithPadding validates a column index against the padded row,
// which is indexable one column past the last pixel whenever the payload
// is non-empty. It does not extend to every padding byte when the row
// carries more than one.
func (b *Bitmap) CheckWidthWithPadding(w int) error {
	width, _ := b.Dimensions()
	end := int(width)
	if b.PayloadSize() > 0 {
		end++
	}
	if w < 0 || w >= end {
		return &RangeError{Coord: "width+padding", Value: w, Start: 0, End: end}
	}
	return nil
}

// PixelOffset returns the absolute buffer offset of the first byte of
// pixel (i, j): the payload offset, plus j rows of stride, plus i pixels.
// No offset is computed for coordinates out of bounds.
func (b *Bitmap) PixelOffset(i, j int) (int, error) {
	if err := b.CheckWidth(i); err != nil {
		return 0, err
	}
	if err := b.CheckHeight(j); err != nil {
		return 0, err
	}
	return int(b.PayloadOffset()) + j*b.EffRowSize() + i*b.BytesPerPixel(), nil
}

// ApplyBitmask validates the whole coordinate, locates the channel byte
// of pixel (i, j) and transforms the single bit selected by sublayer with
// op. Exactly one byte of the buffer changes on success; validation
// failures leave the buffer untouched.
func (b *Bitmap) ApplyBitmask(i, j, layer, sublayer int, op bitmask.Op) error {
	if err := b.CheckWidth(i); err != nil {
		return err
	}
	if err := b.CheckHeight(j); err != nil {
		return err
	}
	if err := b.CheckLayer(layer); err != nil {
		return err
	}
	if err := b.CheckSublayer(sublayer); err != nil {
		return err
	}
	offset, err := b.PixelOffset(i, j)
	if err != nil {
		return err
	}
	offset += layer
	b.raw[offset] = op.Apply(b.raw[offset], bitmask.Mask(sublayer))
	return nil
}

// SetOne forces the addressed bit to 1.
func (b *Bitmap) SetOne(i, j, layer, sublayer int) error {
	if err := b.CheckSublayer(sublayer); err != nil {
		return err
	}
	return b.ApplyBitmask(i, j, layer, sublayer, bitmask.Set)
}

// SetZero forces the addressed bit to 0.
func (b *Bitmap) SetZero(i, j, layer, sublayer int) error {
	if err := b.CheckSublayer(sublayer); err != nil {
		return err
	}
	return b.ApplyBitmask(i, j, layer, sublayer, bitmask.Clear)
}

// Flip inverts the addressed bit.
func (b *Bitmap) Flip(i, j, layer, sublayer int) error {
	if err := b.CheckSublayer(sublayer); err != nil {
		return err
	}
	return b.ApplyBitmask(i, j, layer, sublayer, bitmask.Toggle)
}

// Bit reads the addressed bit and returns it as 0 or 1.
func (b *Bitmap) Bit(i, j, layer, sublayer int) (byte, error) {
	if err := b.CheckSublayer(sublayer); err != nil {
		return 0, err
	}
	if err := b.CheckLayer(layer); err != nil {
		return 0, err
	}
	offset, err := b.PixelOffset(i, j)
	if err != nil {
		return 0, err
	}
	if b.raw[offset+layer]&bitmask.Mask(sublayer) != 0 {
		return 1, nil
	}
	return 0, nil
}

// Payload returns a copy of the pixel array, the byte range starting at
// PayloadOffset and spanning PayloadSize bytes. Returning a copy keeps
// the buffer unreachable except through SetPayload and the bit mutators.
func (b *Bitmap) Payload() []byte {
	start := int(b.PayloadOffset())
	out := make([]byte, b.PayloadSize())
	copy(out, b.raw[start:start+len(out)])
	return out
}

// SetPayload overwrites the whole pixel array in place. The replacement
// must match the current payload size exactly; no partial or padded
// replacement happens.
func (b *Bitmap) SetPayload(p []byte) error {
	size := b.PayloadSize()
	if len(p) != size {
		return &PayloadSizeError{Got: len(p), Want: size}
	}
	start := int(b.PayloadOffset())
	copy(b.raw[start:start+size], p)
	return nil
}
