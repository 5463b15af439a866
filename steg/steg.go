// Package steg hides and recovers byte messages in the low-order bit
// planes of BMP images. A message travels as a frame of a 4-byte length
// prefix plus the body, written one bit per channel byte across the
// pixel array; every other bit of the image survives unchanged.
package steg

import (
	"encoding/binary"

	"github.com/pkg/errors"

	bmpstat "github.com/apaonessaa/BMPstat"
)

// headerLen is the length prefix embedded before the message body: a
// little-endian uint32 byte count, matching the byte order of the
// carrier format.
const headerLen = 4

var (
	// ErrMessageTooLarge reports a message whose frame exceeds the bit
	// capacity of the cover image.
	ErrMessageTooLarge = errors.New("steg: message does not fit in the cover image")
	// ErrNoMessage reports a cover that carries no plausible frame.
	ErrNoMessage = errors.New("steg: no embedded message found")
	// ErrBadPassphrase reports a sealed frame that did not authenticate
	// under the supplied passphrase.
	ErrBadPassphrase = errors.New("steg: wrong passphrase or corrupted message")
)

// Embed hides msg inside the pixel array of b: channels first within a
// pixel, then columns left to right, then stored rows in order, each
// frame byte least significant bit first. Only the selected bit plane
// changes; padding bytes are never touched.
func Embed(b *bmpstat.Bitmap, msg []byte, opts ...Options) error {
	c := defaultCodec()
	for _, fn := range opts {
		fn(c)
	}
	if err := checkSublayer(c.sublayer); err != nil {
		return err
	}
	body := msg
	if c.passphrase != "" {
		var err error
		body, err = seal(msg, c.passphrase)
		if err != nil {
			return err
		}
	}
	frame := make([]byte, headerLen+len(body))
	binary.LittleEndian.PutUint32(frame, uint32(len(body)))
	copy(frame[headerLen:], body)
	if len(frame)*8 > carrierBits(b) {
		return errors.Wrapf(ErrMessageTooLarge, "need %d carrier bits, have %d", len(frame)*8, carrierBits(b))
	}
	return writeBits(b, frame, c.sublayer)
}

// Extract recovers a message embedded with the same options. A length
// prefix that cannot fit the image means there is nothing to extract.
func Extract(b *bmpstat.Bitmap, opts ...Options) ([]byte, error) {
	c := defaultCodec()
	for _, fn := range opts {
		fn(c)
	}
	if err := checkSublayer(c.sublayer); err != nil {
		return nil, err
	}
	if carrierBits(b) < headerLen*8 {
		return nil, errors.Wrap(ErrNoMessage, "cover too small for a length prefix")
	}
	header, err := readBits(b, 0, headerLen*8, c.sublayer)
	if err != nil {
		return nil, err
	}
	length := int(binary.LittleEndian.Uint32(header))
	if headerLen*8+length*8 > carrierBits(b) {
		return nil, errors.Wrapf(ErrNoMessage, "declared length %d exceeds capacity", length)
	}
	body, err := readBits(b, headerLen*8, length*8, c.sublayer)
	if err != nil {
		return nil, err
	}
	if c.passphrase != "" {
		return open(body, c.passphrase)
	}
	return body, nil
}

// Capacity returns the number of message bytes one bit plane of the
// image can carry after the length prefix. Sealing with a passphrase
// consumes SealOverhead bytes of this budget.
func Capacity(b *bmpstat.Bitmap) int {
	bits := carrierBits(b)
	if bits <= headerLen*8 {
		return 0
	}
	return (bits - headerLen*8) / 8
}

// checkSublayer restricts the bit plane to the byte it addresses; the
// underlying bitmap accepts deeper planes but they select no bit.
func checkSublayer(sublayer int) error {
	if sublayer < 0 || sublayer > 7 {
		return errors.Errorf("steg: sublayer %d outside [0, 8)", sublayer)
	}
	return nil
}

// carrierBits is the number of addressable channel bytes, each carrying
// one bit per plane.
func carrierBits(b *bmpstat.Bitmap) int {
	width, height := b.Dimensions()
	if width <= 0 || height <= 0 {
		return 0
	}
	return int(width) * int(height) * b.BytesPerPixel()
}

// bitCoord maps the n-th carrier bit to its pixel coordinate and channel.
func bitCoord(n, width, bytesPerPixel int) (i, j, layer int) {
	layer = n % bytesPerPixel
	pixel := n / bytesPerPixel
	return pixel % width, pixel / width, layer
}

func writeBits(b *bmpstat.Bitmap, frame []byte, sublayer int) error {
	width, _ := b.Dimensions()
	bpp := b.BytesPerPixel()
	for n := 0; n < len(frame)*8; n++ {
		i, j, layer := bitCoord(n, int(width), bpp)
		var err error
		if frame[n/8]&(1<<uint(n%8)) != 0 {
			err = b.SetOne(i, j, layer, sublayer)
		} else {
			err = b.SetZero(i, j, layer, sublayer)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func readBits(b *bmpstat.Bitmap, start, nbits, sublayer int) ([]byte, error) {
	width, _ := b.Dimensions()
	bpp := b.BytesPerPixel()
	out := make([]byte, (nbits+7)/8)
	for n := 0; n < nbits; n++ {
		i, j, layer := bitCoord(start+n, int(width), bpp)
		bit, err := b.Bit(i, j, layer, sublayer)
		if err != nil {
			return nil, err
		}
		out[n/8] |= bit << uint(n%8)
	}
	return out, nil
}
