package ppu

import "errors"

// ErrInvalidPatternLength is returned by DecodeSprite when given
// anything but exactly 16 bytes (two 8x8 bit planes).
var ErrInvalidPatternLength = errors.New("ppu: pattern must be exactly 16 bytes")

// Tile is one 8x8 background tile, positioned at a tile-grid
// coordinate (not a pixel coordinate), along with the four-color
// palette it was composed against.
type Tile struct {
	GridX, GridY int
	Pixels       [8][8]uint8 // 2-bit indices into Palette
	Palette      [4]uint8    // 6-bit NES system-palette indices
}

// DecodeSprite unpacks a 16-byte CHR pattern (two consecutive 8x8 bit
// planes, low plane in bytes 0-7, high plane in bytes 8-15) into
// 2-bit-per-pixel indices.
// https://www.nesdev.org/wiki/PPU_pattern_tables
func DecodeSprite(pattern []byte) ([8][8]uint8, error) {
	var out [8][8]uint8
	if len(pattern) != 16 {
		return out, ErrInvalidPatternLength
	}

	for row := 0; row < 8; row++ {
		lo := pattern[row]
		hi := pattern[row+8]
		for col := 0; col < 8; col++ {
			shift := uint(7 - col)
			bit0 := (lo >> shift) & 1
			bit1 := (hi >> shift) & 1
			out[row][col] = bit0 | bit1<<1
		}
	}
	return out, nil
}

// BuildTile composes the background tile at grid position (x, y)
// (x in [0,64), y in [0,60) across all four nametables) from the
// nametable's tile index, its attribute-table palette selection and
// the pattern table PPUCTRL currently names.
// https://www.nesdev.org/wiki/PPU_nametables
// https://www.nesdev.org/wiki/PPU_attribute_tables
func (r *Registers) BuildTile(x, y int) Tile {
	ntID := r.BaseNametable() ^ uint8(x/32&1) ^ uint8(y/30&1)<<1
	ntBase := uint16(0x2000) + uint16(ntID)*0x400

	col, row := x%32, y%30
	tileIndex := r.mem.Read(ntBase + uint16(row*32+col))

	attrByte := r.mem.Read(ntBase + 0x3C0 + uint16((row/4)*8+col/4))
	quadrant := ((row % 4) / 2) * 2
	quadrant += (col % 4) / 2
	paletteID := (attrByte >> (uint(quadrant) * 2)) & 0x03

	patternBase := r.BackgroundPatternTable() + uint16(tileIndex)*16
	pattern := make([]byte, 16)
	for i := range pattern {
		pattern[i] = r.mem.Read(patternBase + uint16(i))
	}
	pixels, _ := DecodeSprite(pattern)

	return Tile{
		GridX:   x,
		GridY:   y,
		Pixels:  pixels,
		Palette: r.paletteGroup(paletteID),
	}
}

// paletteGroup returns the universal background color plus the three
// colors of background palette p, all as raw system-palette indices.
func (r *Registers) paletteGroup(p uint8) [4]uint8 {
	base := 0x3F00 + uint16(p)*4
	return [4]uint8{
		r.mem.Read(0x3F00),
		r.mem.Read(base + 1),
		r.mem.Read(base + 2),
		r.mem.Read(base + 3),
	}
}
