// Package mos6502 implements the MOS Technology 6502 processor core
// used by the NES.
// https://en.wikipedia.org/wiki/MOS_Technology_6502
package mos6502

import (
	"errors"
	"fmt"
)

// Memory is the byte-addressable bus a CPU executes against. console
// supplies the production implementation (work RAM, PPU registers,
// cartridge PRG); tests supply a flat in-memory array.
type Memory interface {
	Read(addr uint16) uint8
	Write(addr uint16, val uint8)
}

// 6502 interrupt vectors.
// https://en.wikipedia.org/wiki/Interrupts_in_65xx_processors
const (
	vectorNMI   = 0xFFFA
	vectorReset = 0xFFFC
	vectorIRQ   = 0xFFFE
	vectorBRK   = vectorIRQ
)

const stackPage = 0x0100

// ErrUnknownOpcode is returned by Step when the byte at PC doesn't
// name a legal instruction.
var ErrUnknownOpcode = errors.New("mos6502: unknown opcode")

// CPU is the 6502's complete execution state.
type CPU struct {
	Registers
}

// New constructs a CPU in its documented power-up state and loads PC
// from the reset vector.
// https://www.nesdev.org/wiki/CPU_power_up_state
func New(mem Memory) *CPU {
	c := &CPU{
		Registers: Registers{
			S: 0xFD,
			P: FlagBreak2 | FlagBreak | FlagInterruptDisable,
		},
	}
	c.PC = c.read16(mem, vectorReset)
	return c
}

func (c *CPU) String() string {
	return c.Registers.String()
}

// Reset reloads PC from the reset vector and re-asserts
// Interrupt-Disable, the way the physical reset line does.
func (c *CPU) Reset(mem Memory) {
	c.P.set(FlagInterruptDisable, true)
	c.PC = c.read16(mem, vectorReset)
}

// TriggerNMI pushes PC and P and transfers control to the NMI vector,
// the way the PPU's vblank-start line does when NMI generation is
// enabled in PPUCTRL.
func (c *CPU) TriggerNMI(mem Memory) {
	c.pushU16(mem, c.PC)
	c.push(mem, uint8(c.P|FlagBreak2)&^uint8(FlagBreak))
	c.P.set(FlagInterruptDisable, true)
	c.PC = c.read16(mem, vectorNMI)
}

// Step fetches, decodes and executes exactly one instruction,
// returning the number of cycles it consumed.
func (c *CPU) Step(mem Memory) (int, error) {
	code := mem.Read(c.PC)
	op := opcodeTable[code]
	if op.Exec == nil {
		return 0, fmt.Errorf("%w: 0x%02x at 0x%04x", ErrUnknownOpcode, code, c.PC)
	}

	c.PC++
	addr := c.operandAddr(mem, op.Mode)

	cycles := int(op.Cycles)
	if op.Exec(c, mem, op.Mode, addr) {
		cycles++
	}
	return cycles, nil
}

// read16 returns the two bytes at addr, lower byte first.
func (c *CPU) read16(mem Memory, addr uint16) uint16 {
	lo := uint16(mem.Read(addr))
	hi := uint16(mem.Read(addr + 1))
	return hi<<8 | lo
}

// operandAddr computes the effective address for mode, consuming the
// operand bytes from PC as it goes.
// https://www.nesdev.org/obelisk-6502-guide/addressing.html
func (c *CPU) operandAddr(mem Memory, mode AddrMode) uint16 {
	switch mode {
	case Implicit, Accumulator:
		return 0
	case Immediate:
		addr := c.PC
		c.PC++
		return addr
	case ZeroPage:
		addr := uint16(mem.Read(c.PC))
		c.PC++
		return addr
	case ZeroPageX:
		base := mem.Read(c.PC)
		c.PC++
		return uint16(base + c.X)
	case ZeroPageY:
		base := mem.Read(c.PC)
		c.PC++
		return uint16(base + c.Y)
	case Absolute:
		addr := c.read16(mem, c.PC)
		c.PC += 2
		return addr
	case AbsoluteX:
		base := c.read16(mem, c.PC)
		c.PC += 2
		return base + uint16(c.X)
	case AbsoluteY:
		base := c.read16(mem, c.PC)
		c.PC += 2
		return base + uint16(c.Y)
	case Indirect:
		ptr := c.read16(mem, c.PC)
		c.PC += 2
		return c.read16(mem, ptr)
	case IndirectX:
		zp := mem.Read(c.PC) + c.X
		c.PC++
		lo := uint16(mem.Read(uint16(zp)))
		hi := uint16(mem.Read(uint16(zp + 1))) // wraps within the zero page
		return hi<<8 | lo
	case IndirectY:
		zp := mem.Read(c.PC)
		c.PC++
		lo := uint16(mem.Read(uint16(zp)))
		hi := uint16(mem.Read(uint16(zp + 1))) // wraps within the zero page
		base := hi<<8 | lo
		return base + uint16(c.Y)
	case Relative:
		offset := mem.Read(c.PC)
		c.PC++
		if offset < 0x80 {
			return c.PC + uint16(offset)
		}
		return c.PC + uint16(offset) - 0x100
	default:
		return 0
	}
}

func (c *CPU) push(mem Memory, val uint8) {
	mem.Write(stackPage|uint16(c.S), val)
	c.S--
}

func (c *CPU) pull(mem Memory) uint8 {
	c.S++
	return mem.Read(stackPage | uint16(c.S))
}

// pushU16 pushes the high byte then the low byte.
func (c *CPU) pushU16(mem Memory, val uint16) {
	c.push(mem, uint8(val>>8))
	c.push(mem, uint8(val))
}

// pullU16 pulls the low byte then the high byte.
func (c *CPU) pullU16(mem Memory) uint16 {
	lo := uint16(c.pull(mem))
	hi := uint16(c.pull(mem))
	return hi<<8 | lo
}
