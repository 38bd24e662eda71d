// Command chrdump extracts a cartridge's CHR pattern tables as a PNG
// sprite sheet, one 8x8 tile at a time in pattern-table order.
package main

import (
	"flag"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"github.com/coalblack/gones/cartridge"
	"github.com/coalblack/gones/mappers"
	"github.com/coalblack/gones/ppu"
	"github.com/golang/glog"
	xdraw "golang.org/x/image/draw"
)

var (
	romFile = flag.String("nes_rom", "", "path to the iNES ROM to dump")
	outFile = flag.String("out", "chr.png", "path to write the sprite sheet PNG to")
	scale   = flag.Float64("scale", 1.0, "output scale factor")
)

const (
	tilesPerSheetRow = 50
	tileSize         = 8
)

func main() {
	flag.Parse()
	defer glog.Flush()

	data, err := os.ReadFile(*romFile)
	if err != nil {
		glog.Fatalf("reading ROM: %v", err)
	}

	cart, err := cartridge.Load(data)
	if err != nil {
		glog.Fatalf("parsing ROM: %v", err)
	}

	m, err := mappers.New(cart)
	if err != nil {
		glog.Fatalf("building mapper: %v", err)
	}

	sheet := dumpSheet(m)
	if *scale != 1.0 {
		sheet = rescale(sheet, *scale)
	}

	f, err := os.Create(*outFile)
	if err != nil {
		glog.Fatalf("creating %s: %v", *outFile, err)
	}
	defer f.Close()

	if err := png.Encode(f, sheet); err != nil {
		glog.Fatalf("encoding PNG: %v", err)
	}
}

// dumpSheet decodes every 16-byte tile in the cartridge's CHR data
// into a grayscale RGBA sprite sheet, tilesPerSheetRow wide.
func dumpSheet(m mappers.Mapper) *image.RGBA {
	tileCount := chrSize / 16
	rows := (tileCount + tilesPerSheetRow - 1) / tilesPerSheetRow

	img := image.NewRGBA(image.Rect(0, 0, tilesPerSheetRow*tileSize, rows*tileSize))

	for t := 0; t < tileCount; t++ {
		pattern := make([]byte, 16)
		for i := range pattern {
			pattern[i] = m.ChrRead(uint16(t*16 + i))
		}
		pixels, err := ppu.DecodeSprite(pattern)
		if err != nil {
			glog.Errorf("tile %d: %v", t, err)
			continue
		}

		baseX := (t % tilesPerSheetRow) * tileSize
		baseY := (t / tilesPerSheetRow) * tileSize
		for row := 0; row < tileSize; row++ {
			for col := 0; col < tileSize; col++ {
				shade := grayscaleShade(pixels[row][col])
				img.Set(baseX+col, baseY+row, shade)
			}
		}
	}
	return img
}

// grayscaleShade maps a tile's 2-bit color index to a grayscale shade:
// chrdump has no palette context (CHR data alone doesn't name one),
// so it renders the four possible indices as the gray levels 0, 117,
// 188 and 255.
func grayscaleShade(index uint8) color.RGBA {
	levels := [4]uint8{0, 117, 188, 255}
	v := levels[index&0x03]
	return color.RGBA{v, v, v, 0xff}
}

// chrSize is the PPU pattern-table address space every mapper in this
// package fills (8 KiB of CHR ROM, or CHR RAM sized to match).
const chrSize = 0x2000

func rescale(src *image.RGBA, factor float64) *image.RGBA {
	b := src.Bounds()
	w := int(float64(b.Dx()) * factor)
	h := int(float64(b.Dy()) * factor)

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
