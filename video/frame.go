package video

import (
	"errors"
	"fmt"

	"github.com/coalblack/gones/ppu"
)

const (
	Width  = 256
	Height = 240
)

// ErrOutOfBounds is returned by Set when x or y fall outside the
// visible frame.
var ErrOutOfBounds = errors.New("video: pixel coordinate out of bounds")

// Frame is one composed video buffer: Width x Height RGB pixels in
// row-major order.
type Frame struct {
	pix [Width * Height]RGB
}

func NewFrame() *Frame {
	return &Frame{}
}

func (f *Frame) Set(x, y int, c RGB) error {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, x, y)
	}
	f.pix[y*Width+x] = c
	return nil
}

func (f *Frame) At(x, y int) RGB {
	return f.pix[y*Width+x]
}

// Render composes a full frame from background tiles in raster order,
// coloring each pixel from the tile's palette via the system color
// table.
func Render(tiles []ppu.Tile) *Frame {
	f := NewFrame()
	for _, t := range tiles {
		baseX, baseY := t.GridX*8, t.GridY*8
		for row := 0; row < 8; row++ {
			for col := 0; col < 8; col++ {
				idx := t.Palette[t.Pixels[row][col]]
				f.Set(baseX+col, baseY+row, Colors[idx%64])
			}
		}
	}
	return f
}
