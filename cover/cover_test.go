package cover

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/bmp"

	bmpstat "github.com/apaonessaa/BMPstat"
)

func TestGenerate(t *testing.T) {
	var tt = []struct {
		name    string
		width   int
		height  int
		padding int
	}{
		{name: "1x1", width: 1, height: 1, padding: 1},
		{name: "2x1", width: 2, height: 1, padding: 2},
		{name: "3x3", width: 3, height: 3, padding: 3},
		{name: "4x2", width: 4, height: 2, padding: 0},
	}
	for _, v := range tt {
		t.Run(v.name, func(t *testing.T) {
			a := assert.New(t)
			raw, err := Generate(v.width, v.height, color.RGBA{R: 0x11, G: 0x22, B: 0x33, A: 0xFF})
			a.Nil(err)
			a.Equal(byte('B'), raw[0])
			a.Equal(byte('M'), raw[1])

			info := bmpstat.New(raw).Info()
			a.Equal(uint32(54), info.PayloadOffset)
			a.Equal(int32(v.width), info.Width)
			a.Equal(int32(v.height), info.Height)
			a.Equal(uint16(24), info.BitsPerPixel)
			a.Equal(v.padding, info.Padding)
			a.Equal(len(raw)-54, info.PayloadSize)

			// Channel bytes are stored B, G, R.
			payload := bmpstat.New(raw).Payload()
			a.Equal([]byte{0x33, 0x22, 0x11}, payload[:3])
		})
	}
}

func TestGenerateBadDimensions(t *testing.T) {
	a := assert.New(t)
	for _, v := range [][2]int{{0, 5}, {5, 0}, {-1, 5}, {5, -1}} {
		_, err := Generate(v[0], v[1], color.RGBA{A: 0xFF})
		a.NotNil(err)
	}
}

func TestGenerateDecodes(t *testing.T) {
	a := assert.New(t)
	raw, err := Generate(5, 4, color.RGBA{R: 0xAA, G: 0xBB, B: 0xCC, A: 0xFF})
	a.Nil(err)
	img, err := bmp.Decode(bytes.NewReader(raw))
	a.Nil(err)
	a.Equal(image.Rect(0, 0, 5, 4), img.Bounds())
	r, g, b, _ := img.At(2, 2).RGBA()
	a.Equal(uint8(0xAA), uint8(r>>8))
	a.Equal(uint8(0xBB), uint8(g>>8))
	a.Equal(uint8(0xCC), uint8(b>>8))
}

func TestParseColor(t *testing.T) {
	var tt = []struct {
		name  string
		in    string
		want  color.RGBA
		valid bool
	}{
		{name: "hex", in: "11aaff", want: color.RGBA{R: 0x11, G: 0xAA, B: 0xFF, A: 0xFF}, valid: true},
		{name: "hash hex", in: "#C0FFEE", want: color.RGBA{R: 0xC0, G: 0xFF, B: 0xEE, A: 0xFF}, valid: true},
		{name: "too short", in: "fff"},
		{name: "not hex", in: "zzzzzz"},
		{name: "bad green", in: "00zz00"},
	}
	for _, v := range tt {
		t.Run(v.name, func(t *testing.T) {
			a := assert.New(t)
			got, err := ParseColor(v.in)
			if !v.valid {
				a.NotNil(err)
				return
			}
			a.Nil(err)
			a.Equal(v.want, got)
		})
	}
	t.Run("random", func(t *testing.T) {
		a := assert.New(t)
		got, err := ParseColor("random")
		a.Nil(err)
		a.Equal(uint8(0xFF), got.A)
		got, err = ParseColor("")
		a.Nil(err)
		a.Equal(uint8(0xFF), got.A)
	})
}

func TestConvert(t *testing.T) {
	a := assert.New(t)
	src := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			src.Set(x, y, color.NRGBA{R: uint8(x * 50), G: uint8(y * 80), B: 0x7F, A: 0xFF})
		}
	}
	raw, err := Convert(src)
	a.Nil(err)

	info := bmpstat.New(raw).Info()
	a.Equal(int32(3), info.Width)
	a.Equal(int32(2), info.Height)
	a.Equal(uint16(24), info.BitsPerPixel)

	round, err := bmp.Decode(bytes.NewReader(raw))
	a.Nil(err)
	r, g, b, _ := round.At(2, 1).RGBA()
	a.Equal(uint8(100), uint8(r>>8))
	a.Equal(uint8(80), uint8(g>>8))
	a.Equal(uint8(0x7F), uint8(b>>8))
}

func TestConvertKeepsAlpha(t *testing.T) {
	a := assert.New(t)
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.Set(0, 0, color.NRGBA{R: 1, G: 2, B: 3, A: 0x80})
	raw, err := Convert(src)
	a.Nil(err)
	// A translucent source forces the 32-bit encoding.
	a.Equal(uint16(32), bmpstat.New(raw).BitsPerPixel())
}
