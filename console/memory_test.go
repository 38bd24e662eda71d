package console

import (
	"errors"
	"testing"
)

func TestMemoryReadWrite(t *testing.T) {
	m := NewMemory(16)
	m.Write(4, 0x42)
	if got := m.Read(4); got != 0x42 {
		t.Errorf("Read(4) = %#02x, want 0x42", got)
	}
}

func TestMemoryReadRange(t *testing.T) {
	m := NewMemoryFromBytes([]uint8{1, 2, 3, 4, 5})
	got := m.ReadRange(1, 4)
	want := []uint8{2, 3, 4}
	if len(got) != len(want) {
		t.Fatalf("len(ReadRange) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ReadRange()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestMemoryOutOfRangePanics(t *testing.T) {
	m := NewMemory(4)
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Read() past end did not panic")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrOutOfRange) {
			t.Errorf("recovered %v, want an ErrOutOfRange-wrapping error", r)
		}
	}()
	m.Read(10)
}
