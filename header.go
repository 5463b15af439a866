package bmpstat

import "encoding/binary"

// Header field positions, as byte offsets from the start of the file.
// Every field is little-endian. No other header field is ever read or
// written; color tables, compression and resolution fields pass through
// opaquely inside the buffer.
const (
	payloadOffsetPos = 10 // uint32, start of the pixel array
	widthPos         = 18 // int32, image width in pixels
	heightPos        = 22 // int32, image height in pixels
	bitsPerPixelPos  = 28 // uint16, bit depth
)

// PayloadOffset returns the file offset at which the pixel array starts.
func (b *Bitmap) PayloadOffset() uint32 {
	return binary.LittleEndian.Uint32(b.raw[payloadOffsetPos : payloadOffsetPos+4])
}

// Dimensions returns the image width and height in pixels. Negative
// values (top-down row order) pass through unchanged; handling them is
// out of scope.
func (b *Bitmap) Dimensions() (width, height int32) {
	width = int32(binary.LittleEndian.Uint32(b.raw[widthPos : widthPos+4]))
	height = int32(binary.LittleEndian.Uint32(b.raw[heightPos : heightPos+4]))
	return width, height
}

// BitsPerPixel returns the bit depth of the image.
func (b *Bitmap) BitsPerPixel() uint16 {
	return binary.LittleEndian.Uint16(b.raw[bitsPerPixelPos : bitsPerPixelPos+2])
}
