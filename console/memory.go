package console

import "fmt"

// Memory is a flat, bounds-checked byte-addressable array. It backs
// the console's 2 KiB of work RAM.
type Memory struct {
	bytes []uint8
}

// ErrOutOfRange is wrapped in the value Read/Write/ReadRange panic
// with when an address falls outside the backing array.
var ErrOutOfRange = fmt.Errorf("console: address out of range")

func NewMemory(size int) *Memory {
	return &Memory{bytes: make([]uint8, size)}
}

func NewMemoryFromBytes(b []uint8) *Memory {
	return &Memory{bytes: b}
}

func (m *Memory) Len() int { return len(m.bytes) }

func (m *Memory) Read(addr uint16) uint8 {
	if int(addr) >= len(m.bytes) {
		panic(fmt.Errorf("%w: read at %#04x (size %d)", ErrOutOfRange, addr, len(m.bytes)))
	}
	return m.bytes[addr]
}

func (m *Memory) ReadRange(start, end uint16) []uint8 {
	if int(end) > len(m.bytes) || start > end {
		panic(fmt.Errorf("%w: range [%#04x, %#04x) (size %d)", ErrOutOfRange, start, end, len(m.bytes)))
	}
	return m.bytes[start:end]
}

func (m *Memory) Write(addr uint16, val uint8) {
	if int(addr) >= len(m.bytes) {
		panic(fmt.Errorf("%w: write at %#04x (size %d)", ErrOutOfRange, addr, len(m.bytes)))
	}
	m.bytes[addr] = val
}
