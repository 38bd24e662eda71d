// Package ppu implements the NES Picture Processing Unit: its
// memory-mapped registers, its dot/scanline scheduler, and the tile
// and sprite decoders that turn pattern and nametable data into
// pixels.
package ppu

import (
	"github.com/coalblack/gones/cartridge"
	"github.com/coalblack/gones/mappers"
)

const (
	vramSize    = 2048
	paletteSize = 32
)

// PPU address space regions.
// https://www.nesdev.org/wiki/PPU_memory_map
const (
	patternTableEnd = 0x2000
	nametableMirror = 0x3F00
	addressSpace    = 0x4000
)

// Memory is the PPU's own bus: pattern tables live on the cartridge
// (via the mapper), nametable VRAM and palette RAM are owned here.
type Memory struct {
	mapper  mappers.Mapper
	vram    [vramSize]uint8
	palette [paletteSize]uint8
}

func NewMemory(m mappers.Mapper) *Memory {
	return &Memory{mapper: m}
}

func (m *Memory) Read(addr uint16) uint8 {
	addr %= addressSpace
	switch {
	case addr < patternTableEnd:
		return m.mapper.ChrRead(addr)
	case addr < nametableMirror:
		return m.vram[m.nametableAddr(addr)]
	default:
		return m.palette[m.paletteAddr(addr)]
	}
}

func (m *Memory) Write(addr uint16, val uint8) {
	addr %= addressSpace
	switch {
	case addr < patternTableEnd:
		m.mapper.ChrWrite(addr, val) // rejected (no-op) for CHR ROM boards
	case addr < nametableMirror:
		m.vram[m.nametableAddr(addr)] = val
	default:
		m.palette[m.paletteAddr(addr)] = val
	}
}

// nametableAddr maps a 0x2000-0x2FFF (or its 0x3000-0x3EFF mirror)
// address into the 2 KiB VRAM array according to the cartridge's
// mirroring arrangement.
// https://www.nesdev.org/wiki/Mirroring#Nametable_Mirroring
func (m *Memory) nametableAddr(addr uint16) uint16 {
	a := (addr - patternTableEnd) % 0x1000

	switch m.mapper.Mirroring() {
	case cartridge.MirrorVertical:
		return a % 0x0800
	case cartridge.MirrorFourScreen:
		return a % vramSize
	default: // horizontal
		if a >= 0x0800 {
			return 0x0400 + (a-0x0800)%0x0400
		}
		return a % 0x0400
	}
}

// paletteAddr folds a 0x3F00-0x3FFF address into the 32-byte palette
// RAM, applying the background/sprite "0th entry mirrors the
// universal background color" rule.
func (m *Memory) paletteAddr(addr uint16) uint16 {
	a := (addr - nametableMirror) % 0x20
	if a >= 0x10 && a%4 == 0 {
		a -= 0x10
	}
	return a
}
