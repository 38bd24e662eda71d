package mos6502

// execTable maps each mnemonic to the function that carries it out.
// Exec returns true when an extra cycle should be charged (a taken
// branch); every other instruction returns false.
func execTable() map[Mnemonic]func(c *CPU, mem Memory, mode AddrMode, addr uint16) bool {
	return map[Mnemonic]func(c *CPU, mem Memory, mode AddrMode, addr uint16) bool{
		ADC: execADC,
		AND: execAND,
		ASL: execASL,
		BCC: execBranch(FlagCarry, false),
		BCS: execBranch(FlagCarry, true),
		BEQ: execBranch(FlagZero, true),
		BIT: execBIT,
		BMI: execBranch(FlagNegative, true),
		BNE: execBranch(FlagZero, false),
		BPL: execBranch(FlagNegative, false),
		BRK: execBRK,
		BVC: execBranch(FlagOverflow, false),
		BVS: execBranch(FlagOverflow, true),
		CLC: execFlag(FlagCarry, false),
		CLD: execFlag(FlagDecimal, false),
		CLI: execFlag(FlagInterruptDisable, false),
		CLV: execFlag(FlagOverflow, false),
		CMP: execCompare(func(c *CPU) uint8 { return c.A }),
		CPX: execCompare(func(c *CPU) uint8 { return c.X }),
		CPY: execCompare(func(c *CPU) uint8 { return c.Y }),
		DEC: execIncDecMem(-1),
		DEX: execIncDecReg(&registerX, -1),
		DEY: execIncDecReg(&registerY, -1),
		EOR: execEOR,
		INC: execIncDecMem(1),
		INX: execIncDecReg(&registerX, 1),
		INY: execIncDecReg(&registerY, 1),
		JMP: execJMP,
		JSR: execJSR,
		LDA: execLoad(&registerA),
		LDX: execLoad(&registerX),
		LDY: execLoad(&registerY),
		LSR: execLSR,
		NOP: execNOP,
		ORA: execORA,
		PHA: execPHA,
		PHP: execPHP,
		PLA: execPLA,
		PLP: execPLP,
		ROL: execROL,
		ROR: execROR,
		RTI: execRTI,
		RTS: execRTS,
		SBC: execSBC,
		SEC: execFlag(FlagCarry, true),
		SED: execFlag(FlagDecimal, true),
		SEI: execFlag(FlagInterruptDisable, true),
		STA: execStore(func(c *CPU) uint8 { return c.A }),
		STX: execStore(func(c *CPU) uint8 { return c.X }),
		STY: execStore(func(c *CPU) uint8 { return c.Y }),
		TAX: execTransfer(func(c *CPU) uint8 { return c.A }, &registerX, true),
		TAY: execTransfer(func(c *CPU) uint8 { return c.A }, &registerY, true),
		TSX: execTransfer(func(c *CPU) uint8 { return c.S }, &registerX, true),
		TXA: execTransfer(func(c *CPU) uint8 { return c.X }, &registerA, true),
		TXS: execTransfer(func(c *CPU) uint8 { return c.X }, &registerS, false),
		TYA: execTransfer(func(c *CPU) uint8 { return c.Y }, &registerA, true),
	}
}

// register identifies an 8-bit CPU register by read/write closures,
// used to share one implementation of load/transfer/inc-dec across
// A, X and Y.
type register struct {
	get func(c *CPU) uint8
	set func(c *CPU, v uint8)
}

var (
	registerA = register{func(c *CPU) uint8 { return c.A }, func(c *CPU, v uint8) { c.A = v }}
	registerX = register{func(c *CPU) uint8 { return c.X }, func(c *CPU, v uint8) { c.X = v }}
	registerY = register{func(c *CPU) uint8 { return c.Y }, func(c *CPU, v uint8) { c.Y = v }}
	registerS = register{func(c *CPU) uint8 { return c.S }, func(c *CPU, v uint8) { c.S = v }}
)

func execLoad(r *register) func(*CPU, Memory, AddrMode, uint16) bool {
	return func(c *CPU, mem Memory, mode AddrMode, addr uint16) bool {
		v := mem.Read(addr)
		r.set(c, v)
		c.updateZeroAndNegative(v)
		return false
	}
}

func execStore(get func(*CPU) uint8) func(*CPU, Memory, AddrMode, uint16) bool {
	return func(c *CPU, mem Memory, mode AddrMode, addr uint16) bool {
		mem.Write(addr, get(c))
		return false
	}
}

func execTransfer(get func(*CPU) uint8, dst *register, updateFlags bool) func(*CPU, Memory, AddrMode, uint16) bool {
	return func(c *CPU, mem Memory, mode AddrMode, addr uint16) bool {
		v := get(c)
		dst.set(c, v)
		if updateFlags {
			c.updateZeroAndNegative(v)
		}
		return false
	}
}

func execPHA(c *CPU, mem Memory, mode AddrMode, addr uint16) bool {
	c.push(mem, c.A)
	return false
}

func execPHP(c *CPU, mem Memory, mode AddrMode, addr uint16) bool {
	c.push(mem, uint8(c.P|FlagBreak|FlagBreak2))
	return false
}

func execPLA(c *CPU, mem Memory, mode AddrMode, addr uint16) bool {
	c.A = c.pull(mem)
	c.updateZeroAndNegative(c.A)
	return false
}

func execPLP(c *CPU, mem Memory, mode AddrMode, addr uint16) bool {
	c.P = Flags(c.pull(mem))
	c.P.set(FlagBreak2, true)
	return false
}

func execAND(c *CPU, mem Memory, mode AddrMode, addr uint16) bool {
	c.A &= mem.Read(addr)
	c.updateZeroAndNegative(c.A)
	return false
}

func execORA(c *CPU, mem Memory, mode AddrMode, addr uint16) bool {
	c.A |= mem.Read(addr)
	c.updateZeroAndNegative(c.A)
	return false
}

func execEOR(c *CPU, mem Memory, mode AddrMode, addr uint16) bool {
	c.A ^= mem.Read(addr)
	c.updateZeroAndNegative(c.A)
	return false
}

func execBIT(c *CPU, mem Memory, mode AddrMode, addr uint16) bool {
	m := mem.Read(addr)
	c.P.set(FlagZero, c.A&m == 0)
	c.P.set(FlagOverflow, m&0x40 != 0)
	c.P.set(FlagNegative, m&0x80 != 0)
	return false
}

// execADC implements A := A + M + C with the documented carry/overflow
// rule.
func execADC(c *CPU, mem Memory, mode AddrMode, addr uint16) bool {
	m := mem.Read(addr)
	c.adc(m)
	return false
}

// execSBC implements subtraction as addition of the bitwise complement,
// which yields the identical carry/overflow formula ADC uses.
func execSBC(c *CPU, mem Memory, mode AddrMode, addr uint16) bool {
	m := mem.Read(addr)
	c.adc(^m)
	return false
}

func (c *CPU) adc(m uint8) {
	carry := uint16(0)
	if c.P.has(FlagCarry) {
		carry = 1
	}
	sum := uint16(c.A) + uint16(m) + carry
	res := uint8(sum)

	c.P.set(FlagCarry, sum > 0xFF)
	c.P.set(FlagOverflow, (c.A^m)&0x80 == 0 && (c.A^res)&0x80 != 0)
	c.A = res
	c.updateZeroAndNegative(c.A)
}

func execCompare(get func(*CPU) uint8) func(*CPU, Memory, AddrMode, uint16) bool {
	return func(c *CPU, mem Memory, mode AddrMode, addr uint16) bool {
		r := get(c)
		m := mem.Read(addr)
		res := r - m
		c.P.set(FlagCarry, r >= m)
		c.P.set(FlagZero, r == m)
		c.P.set(FlagNegative, res&0x80 != 0)
		return false
	}
}

func execIncDecMem(delta int8) func(*CPU, Memory, AddrMode, uint16) bool {
	return func(c *CPU, mem Memory, mode AddrMode, addr uint16) bool {
		v := mem.Read(addr) + uint8(delta)
		mem.Write(addr, v)
		c.updateZeroAndNegative(v)
		return false
	}
}

func execIncDecReg(r *register, delta int8) func(*CPU, Memory, AddrMode, uint16) bool {
	return func(c *CPU, mem Memory, mode AddrMode, addr uint16) bool {
		v := r.get(c) + uint8(delta)
		r.set(c, v)
		c.updateZeroAndNegative(v)
		return false
	}
}

// ASL/LSR/ROL/ROR operate on either the accumulator or a memory
// operand, picked by mode, via the shiftOperand/storeShifted helpers.

func execASL(c *CPU, mem Memory, mode AddrMode, addr uint16) bool {
	v := shiftOperand(c, mem, mode, addr)
	c.P.set(FlagCarry, v&0x80 != 0)
	v <<= 1
	storeShifted(c, mem, mode, addr, v)
	return false
}

func execLSR(c *CPU, mem Memory, mode AddrMode, addr uint16) bool {
	v := shiftOperand(c, mem, mode, addr)
	c.P.set(FlagCarry, v&0x01 != 0)
	v >>= 1
	storeShifted(c, mem, mode, addr, v)
	return false
}

func execROL(c *CPU, mem Memory, mode AddrMode, addr uint16) bool {
	v := shiftOperand(c, mem, mode, addr)
	oldCarry := c.P.has(FlagCarry)
	c.P.set(FlagCarry, v&0x80 != 0)
	v <<= 1
	if oldCarry {
		v |= 0x01
	}
	storeShifted(c, mem, mode, addr, v)
	return false
}

func execROR(c *CPU, mem Memory, mode AddrMode, addr uint16) bool {
	v := shiftOperand(c, mem, mode, addr)
	oldCarry := c.P.has(FlagCarry)
	c.P.set(FlagCarry, v&0x01 != 0)
	v >>= 1
	if oldCarry {
		v |= 0x80
	}
	storeShifted(c, mem, mode, addr, v)
	return false
}

func shiftOperand(c *CPU, mem Memory, mode AddrMode, addr uint16) uint8 {
	if mode == Accumulator {
		return c.A
	}
	return mem.Read(addr)
}

func storeShifted(c *CPU, mem Memory, mode AddrMode, addr uint16, v uint8) {
	if mode == Accumulator {
		c.A = v
	} else {
		mem.Write(addr, v)
	}
	c.updateZeroAndNegative(v)
}

func execJMP(c *CPU, mem Memory, mode AddrMode, addr uint16) bool {
	c.PC = addr
	return false
}

// execJSR pushes the address of the last byte of the JSR instruction
// (PC-1, since PC already points past it) and jumps to addr.
func execJSR(c *CPU, mem Memory, mode AddrMode, addr uint16) bool {
	c.pushU16(mem, c.PC-1)
	c.PC = addr
	return false
}

func execRTS(c *CPU, mem Memory, mode AddrMode, addr uint16) bool {
	c.PC = c.pullU16(mem) + 1
	return false
}

func execBRK(c *CPU, mem Memory, mode AddrMode, addr uint16) bool {
	c.pushU16(mem, c.PC)
	c.push(mem, uint8(c.P|FlagBreak|FlagBreak2))
	c.P.set(FlagInterruptDisable, true)
	c.P.set(FlagBreak, true)
	c.PC = c.read16(mem, vectorBRK)
	return false
}

func execRTI(c *CPU, mem Memory, mode AddrMode, addr uint16) bool {
	c.P = Flags(c.pull(mem))
	c.P.set(FlagBreak2, true)
	c.PC = c.pullU16(mem)
	return false
}

func execNOP(c *CPU, mem Memory, mode AddrMode, addr uint16) bool {
	return false
}

func execFlag(mask Flags, on bool) func(*CPU, Memory, AddrMode, uint16) bool {
	return func(c *CPU, mem Memory, mode AddrMode, addr uint16) bool {
		c.P.set(mask, on)
		return false
	}
}

// execBranch builds a branch instruction: taken when (P&mask != 0)
// equals want.
func execBranch(mask Flags, want bool) func(*CPU, Memory, AddrMode, uint16) bool {
	return func(c *CPU, mem Memory, mode AddrMode, addr uint16) bool {
		if c.P.has(mask) == want {
			c.PC = addr
			return true
		}
		return false
	}
}
