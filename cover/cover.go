// Package cover produces BMP cover images: solid-color files generated
// from scratch and re-encodings of existing images, both returned as
// in-memory buffers ready for embedding.
package cover

import (
	"bytes"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strconv"
	"strings"

	"golang.org/x/image/bmp"
)

const (
	fileHeaderLen = 14
	infoHeaderLen = 40
	// pixelStart is where the pixel array begins in generated files: the
	// two headers back to back, no color table.
	pixelStart = fileHeaderLen + infoHeaderLen
)

// Generate builds an uncompressed 24-bit BMP of the given dimensions
// filled with a single color. Rows are stored bottom-up in BGR order and
// padded to 4-byte multiples.
func Generate(width, height int, c color.RGBA) ([]byte, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("cover: dimensions must be positive, got %dx%d", width, height)
	}
	rowSize := ((width*3 + 3) / 4) * 4
	pixelDataSize := rowSize * height
	buf := make([]byte, pixelStart+pixelDataSize)

	// BITMAPFILEHEADER
	buf[0] = 'B'
	buf[1] = 'M'
	binary.LittleEndian.PutUint32(buf[2:6], uint32(len(buf)))
	binary.LittleEndian.PutUint32(buf[10:14], pixelStart)

	// BITMAPINFOHEADER
	binary.LittleEndian.PutUint32(buf[14:18], infoHeaderLen)
	binary.LittleEndian.PutUint32(buf[18:22], uint32(width))
	binary.LittleEndian.PutUint32(buf[22:26], uint32(height))
	binary.LittleEndian.PutUint16(buf[26:28], 1)  // color planes
	binary.LittleEndian.PutUint16(buf[28:30], 24) // bits per pixel
	binary.LittleEndian.PutUint32(buf[34:38], uint32(pixelDataSize))

	for y := 0; y < height; y++ {
		row := buf[pixelStart+y*rowSize:]
		for x := 0; x < width; x++ {
			row[x*3] = c.B
			row[x*3+1] = c.G
			row[x*3+2] = c.R
		}
	}
	return buf, nil
}

// ParseColor parses "#rrggbb", "rrggbb" or "random" into an opaque color.
// The empty string means random.
func ParseColor(s string) (color.RGBA, error) {
	if s == "" || s == "random" {
		var buf [3]byte
		if _, err := rand.Read(buf[:]); err != nil {
			return color.RGBA{}, fmt.Errorf("cover: random color: %w", err)
		}
		return color.RGBA{R: buf[0], G: buf[1], B: buf[2], A: 0xFF}, nil
	}
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("cover: invalid color %q: expected 6-char hex", s)
	}
	r, err := strconv.ParseUint(hex[0:2], 16, 8)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("cover: invalid red channel in %q: %w", s, err)
	}
	g, err := strconv.ParseUint(hex[2:4], 16, 8)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("cover: invalid green channel in %q: %w", s, err)
	}
	b, err := strconv.ParseUint(hex[4:6], 16, 8)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("cover: invalid blue channel in %q: %w", s, err)
	}
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 0xFF}, nil
}

// Convert re-encodes img as an uncompressed BMP. Fully opaque sources come
// out as 24-bit files, sources with transparency as 32-bit.
func Convert(img image.Image) ([]byte, error) {
	bounds := img.Bounds()
	flat := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(flat, flat.Bounds(), img, bounds.Min, draw.Src)
	var buf bytes.Buffer
	if err := bmp.Encode(&buf, flat); err != nil {
		return nil, fmt.Errorf("cover: %w", err)
	}
	return buf.Bytes(), nil
}
