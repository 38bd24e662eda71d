// Package mappers implements and registers mappers that are
// referenced numerically by iNES ROM files.
package mappers

import (
	"errors"
	"fmt"

	"github.com/coalblack/gones/cartridge"
)

// ErrIllegalWrite is returned when the CPU writes to a CHR-ROM region
// that has no backing RAM.
var ErrIllegalWrite = errors.New("mappers: illegal write to read-only CHR")

// ErrUnsupportedMapper is returned when a cartridge names a mapper
// number gones has no factory for.
var ErrUnsupportedMapper = errors.New("mappers: unsupported mapper")

// Mapper fans out CPU and PPU address-space accesses to the
// cartridge's program and character ROM/RAM, the way the physical
// cartridge board would.
type Mapper interface {
	PrgRead(addr uint16) uint8
	PrgWrite(addr uint16, val uint8)
	ChrRead(addr uint16) uint8
	ChrWrite(addr uint16, val uint8) error
	Mirroring() cartridge.Mirroring
}

type factory func(*cartridge.Cartridge) Mapper

var registry = map[uint8]factory{}

func register(id uint8, f factory) {
	if _, ok := registry[id]; ok {
		panic(fmt.Sprintf("mappers: mapper %d registered twice", id))
	}
	registry[id] = f
}

// New builds the Mapper named by the cartridge's mapper number.
func New(c *cartridge.Cartridge) (Mapper, error) {
	f, ok := registry[c.MapperNumber()]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedMapper, c.MapperNumber())
	}
	return f(c), nil
}
