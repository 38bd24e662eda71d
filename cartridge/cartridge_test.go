package cartridge

import (
	"bytes"
	"errors"
	"testing"
)

func buildRom(prgUnits, chrUnits int, flags6 byte, fill byte) []byte {
	var buf bytes.Buffer
	buf.Write([]byte{0x4E, 0x45, 0x53, 0x1A, byte(prgUnits), byte(chrUnits), flags6, 0, 0, 0, 0, 0, 0, 0, 0, 0})
	buf.Write(bytes.Repeat([]byte{fill}, prgUnits*prgBlockSize))
	buf.Write(bytes.Repeat([]byte{fill + 1}, chrUnits*chrBlockSize))
	return buf.Bytes()
}

func TestLoad(t *testing.T) {
	data := buildRom(2, 1, flagMirroring, 0xAB)

	c, err := Load(data)
	if err != nil {
		t.Fatalf("Load() = %v, want nil error", err)
	}

	if got, want := len(c.PRG()), 2*prgBlockSize; got != want {
		t.Errorf("len(PRG()) = %d, want %d", got, want)
	}
	if got, want := len(c.CHR()), chrBlockSize; got != want {
		t.Errorf("len(CHR()) = %d, want %d", got, want)
	}
	if got, want := c.Mirroring(), MirrorVertical; got != want {
		t.Errorf("Mirroring() = %v, want %v", got, want)
	}
	if c.PRG()[0] != 0xAB {
		t.Errorf("PRG()[0] = %02x, want ab", c.PRG()[0])
	}
}

func TestLoadInvalidHeader(t *testing.T) {
	cases := [][]byte{
		nil,
		{0x4E, 0x45, 0x53},
		append([]byte{0x00, 0x00, 0x00, 0x00}, buildRom(1, 1, 0, 0)[4:]...),
	}

	for i, data := range cases {
		if _, err := Load(data); !errors.Is(err, ErrInvalidHeader) {
			t.Errorf("%d: Load() = %v, want ErrInvalidHeader", i, err)
		}
	}
}

func TestLoadInvalidRomSize(t *testing.T) {
	data := buildRom(1, 1, 0, 0)
	data = data[:len(data)-1]

	if _, err := Load(data); !errors.Is(err, ErrInvalidRomSize) {
		t.Errorf("Load() = %v, want ErrInvalidRomSize", err)
	}
}

func TestLoadUnsupportedTrainer(t *testing.T) {
	data := buildRom(1, 1, flagTrainer, 0)

	if _, err := Load(data); !errors.Is(err, ErrUnsupportedTrainer) {
		t.Errorf("Load() = %v, want ErrUnsupportedTrainer", err)
	}
}

func TestMapperNumber(t *testing.T) {
	data := buildRom(1, 1, 0x30, 0) // mapper nibble 3
	c, err := Load(data)
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if got, want := c.MapperNumber(), uint8(3); got != want {
		t.Errorf("MapperNumber() = %d, want %d", got, want)
	}
}

func TestFourScreenOverridesMirroring(t *testing.T) {
	data := buildRom(1, 1, flagMirroring|flagFourScreen, 0)
	c, err := Load(data)
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if got, want := c.Mirroring(), MirrorFourScreen; got != want {
		t.Errorf("Mirroring() = %v, want %v", got, want)
	}
}
