// Package controller implements a standard NES controller, read by
// the CPU through the $4016/$4017 shift-register protocol.
package controller

import "github.com/hajimehoshi/ebiten/v2"

// Button bit positions, in shift-out order.
const (
	A uint8 = 1 << iota
	B
	Select
	Start
	Up
	Down
	Left
	Right
)

// keyBindings maps each NES button to the ebiten key that drives it,
// in the same order the hardware shifts bits out.
var keyBindings = []ebiten.Key{
	ebiten.KeyA,
	ebiten.KeyB,
	ebiten.KeySpace,
	ebiten.KeyEnter,
	ebiten.KeyUp,
	ebiten.KeyDown,
	ebiten.KeyLeft,
	ebiten.KeyRight,
}

// Controller is a single NES gamepad. The host game loop calls Poll
// once per frame to latch the current key state. A write to $4016
// sets strobe mode from bit 0; while strobed, every read returns
// button A's state. Writing 0 ends strobe mode and resets the shift
// index, and subsequent reads shift out the button byte Poll last
// sampled, one bit at a time.
// https://www.nesdev.org/wiki/Standard_controller
type Controller struct {
	strobe  bool
	buttons uint8
	idx     uint8
}

// Poll samples the host keyboard into the latched button state.
func (c *Controller) Poll() {
	var b uint8
	for i, key := range keyBindings {
		if ebiten.IsKeyPressed(key) {
			b |= 1 << i
		}
	}
	c.buttons = b
}

// Set overrides the latched button state directly, bypassing Poll
// (used by tests that don't depend on ebiten's input state).
func (c *Controller) Set(buttons uint8) { c.buttons = buttons }

func (c *Controller) Write(val uint8) {
	c.strobe = val&0x01 != 0
	if !c.strobe {
		c.idx = 0
	}
}

func (c *Controller) Read() uint8 {
	if c.strobe {
		return c.buttons & 0x01
	}
	if c.idx > 7 {
		return 1
	}
	bit := (c.buttons >> c.idx) & 0x01
	c.idx++
	return bit
}
