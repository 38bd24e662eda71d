package mappers

import (
	"errors"
	"testing"

	"github.com/coalblack/gones/cartridge"
)

func romBytes(prgUnits, chrUnits int, flags6 byte, fill byte) []byte {
	data := []byte{0x4E, 0x45, 0x53, 0x1A, byte(prgUnits), byte(chrUnits), flags6, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	for i := 0; i < prgUnits*16384; i++ {
		data = append(data, fill)
	}
	for i := 0; i < chrUnits*8192; i++ {
		data = append(data, fill+1)
	}
	return data
}

func TestNewUnsupportedMapper(t *testing.T) {
	c, err := cartridge.Load(romBytes(1, 1, 0xF0, 0))
	if err != nil {
		t.Fatalf("cartridge.Load() = %v", err)
	}

	if _, err := New(c); !errors.Is(err, ErrUnsupportedMapper) {
		t.Errorf("New() = %v, want ErrUnsupportedMapper", err)
	}
}

func TestNROM16KBMirrors(t *testing.T) {
	c, err := cartridge.Load(romBytes(1, 1, 0, 0xAB))
	if err != nil {
		t.Fatalf("cartridge.Load() = %v", err)
	}

	m, err := New(c)
	if err != nil {
		t.Fatalf("New() = %v", err)
	}

	if got, want := m.PrgRead(0x8000), uint8(0xAB); got != want {
		t.Errorf("PrgRead(0x8000) = %02x, want %02x", got, want)
	}
	if got, want := m.PrgRead(0x8000), m.PrgRead(0xC000); got != want {
		t.Errorf("16KiB PRG should mirror: PrgRead(0x8000) = %02x, PrgRead(0xC000) = %02x", got, want)
	}
}

func TestNROM32KBDoesNotMirror(t *testing.T) {
	c, err := cartridge.Load(romBytes(2, 1, 0, 0))
	if err != nil {
		t.Fatalf("cartridge.Load() = %v", err)
	}
	// Give the two 16KiB banks distinct content.
	for i := 16384; i < 2*16384; i++ {
		c.PRG()[i] = 0xFF
	}

	m, err := New(c)
	if err != nil {
		t.Fatalf("New() = %v", err)
	}

	if got := m.PrgRead(0x8000); got != 0 {
		t.Errorf("PrgRead(0x8000) = %02x, want 0", got)
	}
	if got := m.PrgRead(0xC000); got != 0xFF {
		t.Errorf("PrgRead(0xC000) = %02x, want ff", got)
	}
}

func TestNROMChrRAMIsWritable(t *testing.T) {
	c, err := cartridge.Load(romBytes(1, 0, 0, 0))
	if err != nil {
		t.Fatalf("cartridge.Load() = %v", err)
	}

	m, err := New(c)
	if err != nil {
		t.Fatalf("New() = %v", err)
	}

	if err := m.ChrWrite(0x0010, 0x42); err != nil {
		t.Fatalf("ChrWrite() = %v, want nil", err)
	}
	if got, want := m.ChrRead(0x0010), uint8(0x42); got != want {
		t.Errorf("ChrRead(0x0010) = %02x, want %02x", got, want)
	}
}

func TestNROMChrROMIsReadOnly(t *testing.T) {
	c, err := cartridge.Load(romBytes(1, 1, 0, 0))
	if err != nil {
		t.Fatalf("cartridge.Load() = %v", err)
	}

	m, err := New(c)
	if err != nil {
		t.Fatalf("New() = %v", err)
	}

	if err := m.ChrWrite(0x0000, 0x42); !errors.Is(err, ErrIllegalWrite) {
		t.Errorf("ChrWrite() = %v, want ErrIllegalWrite", err)
	}
}

func TestDummyImplementsMapper(t *testing.T) {
	var m Mapper = &Dummy{}
	m.PrgWrite(0x1234, 0x99)
	if got, want := m.PrgRead(0x1234), uint8(0x99); got != want {
		t.Errorf("PrgRead(0x1234) = %02x, want %02x", got, want)
	}
}
