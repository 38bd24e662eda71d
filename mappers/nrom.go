package mappers

import "github.com/coalblack/gones/cartridge"

const chrRAMSize = 8192

func init() {
	register(0, newNROM)
}

// nrom implements mapper 0 (NROM): 16 or 32 KiB of PRG ROM with no
// bank switching, and either 8 KiB of CHR ROM or 8 KiB of CHR RAM.
type nrom struct {
	cart *cartridge.Cartridge
	chr  []byte // ROM (from the cartridge) or RAM (allocated here)
	ram  bool
}

func newNROM(c *cartridge.Cartridge) Mapper {
	chr := c.CHR()
	ram := len(chr) == 0
	if ram {
		chr = make([]byte, chrRAMSize)
	}

	return &nrom{cart: c, chr: chr, ram: ram}
}

// PrgRead serves addr in [0x8000, 0xFFFF]. A 16 KiB PRG image mirrors
// its one bank across both the 0x8000-0xBFFF and 0xC000-0xFFFF
// windows.
func (m *nrom) PrgRead(addr uint16) uint8 {
	prg := m.cart.PRG()
	return prg[int(addr-0x8000)%len(prg)]
}

// PrgWrite is a no-op: NROM has no PRG RAM and no bank-select
// registers to write to.
func (m *nrom) PrgWrite(addr uint16, val uint8) {}

func (m *nrom) ChrRead(addr uint16) uint8 {
	return m.chr[addr]
}

func (m *nrom) ChrWrite(addr uint16, val uint8) error {
	if !m.ram {
		return ErrIllegalWrite
	}
	m.chr[addr] = val
	return nil
}

func (m *nrom) Mirroring() cartridge.Mirroring {
	return m.cart.Mirroring()
}
