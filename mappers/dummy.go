package mappers

import "github.com/coalblack/gones/cartridge"

// Dummy is a flat 64 KiB address space used by tests in other packages
// that need a Mapper but don't care about bank switching.
type Dummy struct {
	Prg  [0x10000]uint8
	Chr  [0x10000]uint8
	Mode cartridge.Mirroring // tests set this as needed
}

func (d *Dummy) PrgRead(addr uint16) uint8 {
	return d.Prg[addr]
}

func (d *Dummy) PrgWrite(addr uint16, val uint8) {
	d.Prg[addr] = val
}

func (d *Dummy) ChrRead(addr uint16) uint8 {
	return d.Chr[addr]
}

func (d *Dummy) ChrWrite(addr uint16, val uint8) error {
	d.Chr[addr] = val
	return nil
}

func (d *Dummy) Mirroring() cartridge.Mirroring {
	return d.Mode
}
