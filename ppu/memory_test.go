package ppu

import (
	"testing"

	"github.com/coalblack/gones/cartridge"
	"github.com/coalblack/gones/mappers"
)

func TestMemoryPatternTableDelegatesToMapper(t *testing.T) {
	d := &mappers.Dummy{}
	d.Chr[0x0123] = 0x42
	m := NewMemory(d)

	if got := m.Read(0x0123); got != 0x42 {
		t.Errorf("Read(0x0123) = %#02x, want 0x42", got)
	}
}

func TestMemoryNametableHorizontalMirror(t *testing.T) {
	d := &mappers.Dummy{Mode: cartridge.MirrorHorizontal}
	m := NewMemory(d)

	m.Write(0x2000, 0x11)
	if got := m.Read(0x2400); got != 0x11 {
		t.Errorf("Read(0x2400) = %#02x, want 0x11 (mirrors 0x2000)", got)
	}
	if got := m.Read(0x2800); got == 0x11 {
		t.Errorf("Read(0x2800) = %#02x, want distinct nametable from 0x2000", got)
	}
}

func TestMemoryNametableVerticalMirror(t *testing.T) {
	d := &mappers.Dummy{Mode: cartridge.MirrorVertical}
	m := NewMemory(d)

	m.Write(0x2000, 0x22)
	if got := m.Read(0x2800); got != 0x22 {
		t.Errorf("Read(0x2800) = %#02x, want 0x22 (mirrors 0x2000)", got)
	}
}

func TestMemoryPaletteMirror(t *testing.T) {
	d := &mappers.Dummy{}
	m := NewMemory(d)

	m.Write(0x3F00, 0x0F)
	if got := m.Read(0x3F10); got != 0x0F {
		t.Errorf("Read(0x3F10) = %#02x, want 0x0F (mirrors universal background)", got)
	}
	if got := m.Read(0x3F20); got != 0x0F {
		t.Errorf("Read(0x3F20) = %#02x, want 0x0F (wraps every 0x20 bytes)", got)
	}
}
