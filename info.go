package bmpstat

import "fmt"

// Info is a point-in-time snapshot of the header fields and of the
// geometry derived from them.
type Info struct {
	PayloadOffset uint32 `yaml:"payload_offset"`
	Width         int32  `yaml:"width"`
	Height        int32  `yaml:"height"`
	BitsPerPixel  uint16 `yaml:"bits_per_pixel"`
	BytesPerPixel int    `yaml:"bytes_per_pixel"`
	RowSize       int    `yaml:"row_size"`
	Padding       int    `yaml:"padding"`
	EffRowSize    int    `yaml:"effective_row_size"`
	PayloadSize   int    `yaml:"payload_size"`
}

// Info snapshots the current buffer. Like the header readers it panics
// when the buffer is shorter than MinLen.
func (b *Bitmap) Info() Info {
	width, height := b.Dimensions()
	return Info{
		PayloadOffset: b.PayloadOffset(),
		Width:         width,
		Height:        height,
		BitsPerPixel:  b.BitsPerPixel(),
		BytesPerPixel: b.BytesPerPixel(),
		RowSize:       b.RowSize(),
		Padding:       b.Padding(),
		EffRowSize:    b.EffRowSize(),
		PayloadSize:   b.PayloadSize(),
	}
}

// String renders the snapshot as a fixed-width report.
func (i Info) String() string {
	return fmt.Sprintf(
		"payload offset:     %d\n"+
			"width:              %d px\n"+
			"height:             %d px\n"+
			"bits per pixel:     %d\n"+
			"bytes per pixel:    %d\n"+
			"row size:           %d bytes\n"+
			"padding:            %d bytes\n"+
			"effective row size: %d bytes\n"+
			"payload size:       %d bytes",
		i.PayloadOffset, i.Width, i.Height, i.BitsPerPixel,
		i.BytesPerPixel, i.RowSize, i.Padding, i.EffRowSize, i.PayloadSize)
}
