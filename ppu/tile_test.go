package ppu

import (
	"errors"
	"testing"

	"github.com/coalblack/gones/mappers"
)

func TestDecodeSpriteWrongLength(t *testing.T) {
	if _, err := DecodeSprite(make([]byte, 15)); !errors.Is(err, ErrInvalidPatternLength) {
		t.Errorf("DecodeSprite(15 bytes) err = %v, want ErrInvalidPatternLength", err)
	}
}

func TestDecodeSpriteSolidTile(t *testing.T) {
	pattern := make([]byte, 16)
	for i := 0; i < 8; i++ {
		pattern[i] = 0xFF // low plane all set
	}
	pixels, err := DecodeSprite(pattern)
	if err != nil {
		t.Fatalf("DecodeSprite() = %v", err)
	}
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			if pixels[row][col] != 1 {
				t.Fatalf("pixels[%d][%d] = %d, want 1", row, col, pixels[row][col])
			}
		}
	}
}

func TestBuildTileReadsNametableAndAttributes(t *testing.T) {
	d := &mappers.Dummy{}
	mem := NewMemory(d)
	regs := NewRegisters(mem)

	mem.Write(0x2000, 0x05)        // tile index 5 at (0,0)
	mem.Write(0x23C0, 0b00000011)  // attribute byte for the top-left quadrant block: palette 3
	mem.Write(0x3F00, 0x01)        // universal background color
	mem.Write(0x3F0D, 0x10)        // palette 3, entry 1
	mem.Write(0x3F0E, 0x11)        // palette 3, entry 2
	mem.Write(0x3F0F, 0x12)        // palette 3, entry 3

	for i := 0; i < 8; i++ {
		mem.Write(uint16(5*16+i), 0x00)
		mem.Write(uint16(5*16+8+i), 0xFF) // pattern entirely "color 2"
	}

	tile := regs.BuildTile(0, 0)
	if tile.Pixels[0][0] != 2 {
		t.Errorf("Pixels[0][0] = %d, want 2", tile.Pixels[0][0])
	}
	want := [4]uint8{0x01, 0x10, 0x11, 0x12}
	if tile.Palette != want {
		t.Errorf("Palette = %v, want %v", tile.Palette, want)
	}
}
