// Package console wires the CPU, PPU, cartridge mapper and controller
// together into a runnable NES.
package console

import (
	"context"
	"image/color"
	"sync"

	"github.com/coalblack/gones/controller"
	"github.com/coalblack/gones/mappers"
	"github.com/coalblack/gones/mos6502"
	"github.com/coalblack/gones/ppu"
	"github.com/coalblack/gones/video"
	"github.com/hajimehoshi/ebiten/v2"
)

// CPU memory map regions.
// https://www.nesdev.org/wiki/CPU_memory_map
const (
	workRAMSize      = 0x0800
	workRAMMirrorEnd = 0x1FFF
	ppuRegMirrorEnd  = 0x3FFF
	oamDMA           = 0x4014
	controller1      = 0x4016
	controller2      = 0x4017
	ioRegEnd         = 0x4020
	prgStart         = 0x8000
)

// FrameSink receives a completed frame once per vblank.
type FrameSink func(*video.Frame)

// Console is a complete NES: CPU, PPU, work RAM, the cartridge mapper
// and two controller ports, stepped one CPU instruction (and its
// corresponding PPU dots) at a time. Console itself satisfies
// ebiten.Game (Update/Draw/Layout), so cmd/gones just runs it through
// ebiten.RunGame while a background goroutine drives Run.
type Console struct {
	cpu   *mos6502.CPU
	regs  *ppu.Registers
	sched *ppu.Scheduler

	ram    *Memory
	mapper mappers.Mapper
	pad1   controller.Controller
	pad2   controller.Controller

	OnFrame FrameSink

	mu    sync.Mutex
	frame *video.Frame
}

func New(m mappers.Mapper) *Console {
	pmem := ppu.NewMemory(m)
	regs := ppu.NewRegisters(pmem)

	c := &Console{
		regs:   regs,
		sched:  ppu.NewScheduler(regs),
		ram:    NewMemory(workRAMSize),
		mapper: m,
		frame:  video.NewFrame(),
	}
	c.cpu = mos6502.New(&cpuBus{c})
	return c
}

// cpuBus implements mos6502.Memory by decoding the NES CPU's address
// space across work RAM, PPU registers, the two controller ports and
// the cartridge mapper.
// https://www.nesdev.org/wiki/CPU_memory_map
type cpuBus struct {
	c *Console
}

func (b *cpuBus) Read(addr uint16) uint8 {
	c := b.c
	switch {
	case addr <= workRAMMirrorEnd:
		return c.ram.Read(addr & 0x07FF)
	case addr <= ppuRegMirrorEnd:
		return c.regs.Read((addr - 0x2000) & 0x0007)
	case addr == controller1:
		return c.pad1.Read()
	case addr == controller2:
		return c.pad2.Read()
	case addr < ioRegEnd:
		return 0
	case addr < prgStart:
		return 0
	default:
		return c.mapper.PrgRead(addr)
	}
}

func (b *cpuBus) Write(addr uint16, val uint8) {
	c := b.c
	switch {
	case addr <= workRAMMirrorEnd:
		c.ram.Write(addr&0x07FF, val)
	case addr <= ppuRegMirrorEnd:
		c.regs.Write((addr-0x2000)&0x0007, val)
	case addr == oamDMA:
		c.doOAMDMA(val)
	case addr == controller1:
		c.pad1.Write(val)
	case addr == controller2:
		c.pad2.Write(val)
	case addr < ioRegEnd:
		// APU registers: not emulated.
	case addr < prgStart:
		// cartridge SRAM window: not emulated for NROM.
	default:
		c.mapper.PrgWrite(addr, val)
	}
}

// doOAMDMA copies one 256-byte CPU page into OAM, the way a $4014
// write stalls the CPU for 513/514 cycles on real hardware. gones
// doesn't model the stall.
func (c *Console) doOAMDMA(page uint8) {
	base := uint16(page) << 8
	bus := &cpuBus{c}
	var buf [256]uint8
	for i := range buf {
		buf[i] = bus.Read(base + uint16(i))
	}
	c.regs.WriteOAMDMA(buf)
}

// Step executes exactly one CPU instruction and advances the PPU the
// corresponding number of dots (3 PPU dots per CPU cycle), latching a
// new frame through OnFrame whenever one finishes and triggering NMI
// at the start of vblank when PPUCTRL asks for it.
func (c *Console) Step() (int, error) {
	cycles, err := c.cpu.Step(&cpuBus{c})
	if err != nil {
		return cycles, err
	}

	for i := 0; i < cycles*3; i++ {
		switch c.sched.Advance(1) {
		case ppu.VBlankStart:
			if c.regs.GenerateNMI() {
				c.cpu.TriggerNMI(&cpuBus{c})
			}
		case ppu.FrameDone:
			f := video.Render(c.sched.Background)
			c.sched.Background = c.sched.Background[:0]

			c.mu.Lock()
			c.frame = f
			c.mu.Unlock()

			if c.OnFrame != nil {
				c.OnFrame(f)
			}
		}
	}
	return cycles, nil
}

// Run steps the console until ctx is canceled.
func (c *Console) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			if _, err := c.Step(); err != nil {
				return err
			}
		}
	}
}

// Reset re-initializes CPU state from the reset vector.
func (c *Console) Reset() {
	c.cpu.Reset(&cpuBus{c})
}

// Update satisfies ebiten.Game. The emulation itself runs on a
// separate goroutine via Run; Update only samples the keyboard, since
// ebiten requires input queries to happen on its own update cycle.
func (c *Console) Update() error {
	c.pad1.Poll()
	return nil
}

// Draw satisfies ebiten.Game, blitting the most recently completed
// frame.
func (c *Console) Draw(screen *ebiten.Image) {
	c.mu.Lock()
	f := c.frame
	c.mu.Unlock()

	for y := 0; y < video.Height; y++ {
		for x := 0; x < video.Width; x++ {
			px := f.At(x, y)
			screen.Set(x, y, color.RGBA{px.R, px.G, px.B, 0xff})
		}
	}
}

// Layout satisfies ebiten.Game, fixing the logical screen to the
// NES's native resolution; ebiten handles window scaling.
func (c *Console) Layout(outsideWidth, outsideHeight int) (int, int) {
	return video.Width, video.Height
}
