package controller

import "testing"

func TestShiftsButtonsInOrder(t *testing.T) {
	c := &Controller{}
	c.Write(0x01)
	c.Set(A | Start)
	c.Write(0x00)

	want := []uint8{1, 0, 0, 1, 0, 0, 0, 0}
	for i, w := range want {
		if got := c.Read(); got != w {
			t.Errorf("Read() #%d = %d, want %d", i, got, w)
		}
	}
}

func TestReadPastEighthBitReturnsOne(t *testing.T) {
	c := &Controller{}
	c.Write(0x00)
	for i := 0; i < 8; i++ {
		c.Read()
	}
	if got := c.Read(); got != 1 {
		t.Errorf("Read() after 8 bits = %d, want 1", got)
	}
}

func TestStrobeHighAlwaysReturnsButtonA(t *testing.T) {
	c := &Controller{}
	c.Write(0x01)
	c.Set(A)

	if got := c.Read(); got != 1 {
		t.Errorf("Read() while strobed = %d, want 1", got)
	}
	if got := c.Read(); got != 1 {
		t.Errorf("second Read() while strobed = %d, want 1 (idx doesn't advance)", got)
	}
}
