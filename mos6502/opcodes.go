package mos6502

// AddrMode names the addressing mode an opcode uses to compute its
// operand's effective address.
// https://www.nesdev.org/obelisk-6502-guide/addressing.html
type AddrMode uint8

const (
	Implicit AddrMode = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Relative
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect
	IndirectX // Indexed Indirect
	IndirectY // Indirect Indexed
)

var addrModeNames = map[AddrMode]string{
	Implicit:    "Implicit",
	Accumulator: "Accumulator",
	Immediate:   "Immediate",
	ZeroPage:    "ZeroPage",
	ZeroPageX:   "ZeroPageX",
	ZeroPageY:   "ZeroPageY",
	Relative:    "Relative",
	Absolute:    "Absolute",
	AbsoluteX:   "AbsoluteX",
	AbsoluteY:   "AbsoluteY",
	Indirect:    "Indirect",
	IndirectX:   "IndirectX",
	IndirectY:   "IndirectY",
}

func (m AddrMode) String() string {
	return addrModeNames[m]
}

// Mnemonic names an instruction. Invalid is the zero value and marks
// a byte that isn't a legal opcode.
// https://www.nesdev.org/obelisk-6502-guide/instructions.html
type Mnemonic uint8

const (
	Invalid Mnemonic = iota
	ADC
	AND
	ASL
	BCC
	BCS
	BEQ
	BIT
	BMI
	BNE
	BPL
	BRK
	BVC
	BVS
	CLC
	CLD
	CLI
	CLV
	CMP
	CPX
	CPY
	DEC
	DEX
	DEY
	EOR
	INC
	INX
	INY
	JMP
	JSR
	LDA
	LDX
	LDY
	LSR
	NOP
	ORA
	PHA
	PHP
	PLA
	PLP
	ROL
	ROR
	RTI
	RTS
	SBC
	SEC
	SED
	SEI
	STA
	STX
	STY
	TAX
	TAY
	TSX
	TXA
	TXS
	TYA
)

var mnemonicNames = map[Mnemonic]string{
	Invalid: "???",
	ADC:     "ADC", AND: "AND", ASL: "ASL", BCC: "BCC", BCS: "BCS",
	BEQ: "BEQ", BIT: "BIT", BMI: "BMI", BNE: "BNE", BPL: "BPL",
	BRK: "BRK", BVC: "BVC", BVS: "BVS", CLC: "CLC", CLD: "CLD",
	CLI: "CLI", CLV: "CLV", CMP: "CMP", CPX: "CPX", CPY: "CPY",
	DEC: "DEC", DEX: "DEX", DEY: "DEY", EOR: "EOR", INC: "INC",
	INX: "INX", INY: "INY", JMP: "JMP", JSR: "JSR", LDA: "LDA",
	LDX: "LDX", LDY: "LDY", LSR: "LSR", NOP: "NOP", ORA: "ORA",
	PHA: "PHA", PHP: "PHP", PLA: "PLA", PLP: "PLP", ROL: "ROL",
	ROR: "ROR", RTI: "RTI", RTS: "RTS", SBC: "SBC", SEC: "SEC",
	SED: "SED", SEI: "SEI", STA: "STA", STX: "STX", STY: "STY",
	TAX: "TAX", TAY: "TAY", TSX: "TSX", TXA: "TXA", TXS: "TXS",
	TYA: "TYA",
}

func (m Mnemonic) String() string {
	return mnemonicNames[m]
}

// Opcode describes one decoded byte: which instruction it names, the
// addressing mode it uses and how many bytes/cycles it consumes. Exec
// carries out the instruction against a CPU and its operand address.
type Opcode struct {
	Mnemonic Mnemonic
	Mode     AddrMode
	Bytes    uint8
	Cycles   uint8
	Exec     func(c *CPU, mem Memory, mode AddrMode, addr uint16) bool
}

func (o Opcode) String() string {
	return o.Mnemonic.String() + " " + o.Mode.String()
}

// opcodeTable is indexed directly by opcode byte. Entries for bytes
// that aren't legal opcodes are left as the zero value (Mnemonic:
// Invalid, Exec: nil); Step reports ErrUnknownOpcode for those.
var opcodeTable [256]Opcode

func init() {
	entries := []struct {
		code   uint8
		mnem   Mnemonic
		mode   AddrMode
		bytes  uint8
		cycles uint8
	}{
		{0x69, ADC, Immediate, 2, 2},
		{0x65, ADC, ZeroPage, 2, 3},
		{0x75, ADC, ZeroPageX, 2, 4},
		{0x6D, ADC, Absolute, 3, 4},
		{0x7D, ADC, AbsoluteX, 3, 4},
		{0x79, ADC, AbsoluteY, 3, 4},
		{0x61, ADC, IndirectX, 2, 6},
		{0x71, ADC, IndirectY, 2, 5},
		{0x29, AND, Immediate, 2, 2},
		{0x25, AND, ZeroPage, 2, 3},
		{0x35, AND, ZeroPageX, 2, 4},
		{0x2D, AND, Absolute, 3, 4},
		{0x3D, AND, AbsoluteX, 3, 4},
		{0x39, AND, AbsoluteY, 3, 4},
		{0x21, AND, IndirectX, 2, 6},
		{0x31, AND, IndirectY, 2, 5},
		{0x0A, ASL, Accumulator, 1, 2},
		{0x06, ASL, ZeroPage, 2, 5},
		{0x16, ASL, ZeroPageX, 2, 6},
		{0x0E, ASL, Absolute, 3, 6},
		{0x1E, ASL, AbsoluteX, 3, 7},
		{0x90, BCC, Relative, 2, 2},
		{0xB0, BCS, Relative, 2, 2},
		{0xF0, BEQ, Relative, 2, 2},
		{0x24, BIT, ZeroPage, 2, 3},
		{0x2C, BIT, Absolute, 3, 4},
		{0x30, BMI, Relative, 2, 2},
		{0xD0, BNE, Relative, 2, 2},
		{0x10, BPL, Relative, 2, 2},
		{0x00, BRK, Implicit, 1, 7},
		{0x50, BVC, Relative, 2, 2},
		{0x70, BVS, Relative, 2, 2},
		{0x18, CLC, Implicit, 1, 2},
		{0xD8, CLD, Implicit, 1, 2},
		{0x58, CLI, Implicit, 1, 2},
		{0xB8, CLV, Implicit, 1, 2},
		{0xC9, CMP, Immediate, 2, 2},
		{0xC5, CMP, ZeroPage, 2, 3},
		{0xD5, CMP, ZeroPageX, 2, 4},
		{0xCD, CMP, Absolute, 3, 4},
		{0xDD, CMP, AbsoluteX, 3, 4},
		{0xD9, CMP, AbsoluteY, 3, 4},
		{0xC1, CMP, IndirectX, 2, 6},
		{0xD1, CMP, IndirectY, 2, 5},
		{0xE0, CPX, Immediate, 2, 2},
		{0xE4, CPX, ZeroPage, 2, 3},
		{0xEC, CPX, Absolute, 3, 4},
		{0xC0, CPY, Immediate, 2, 2},
		{0xC4, CPY, ZeroPage, 2, 3},
		{0xCC, CPY, Absolute, 3, 4},
		{0xC6, DEC, ZeroPage, 2, 5},
		{0xD6, DEC, ZeroPageX, 2, 6},
		{0xCE, DEC, Absolute, 3, 6},
		{0xDE, DEC, AbsoluteX, 3, 7},
		{0xCA, DEX, Implicit, 1, 2},
		{0x88, DEY, Implicit, 1, 2},
		{0x49, EOR, Immediate, 2, 2},
		{0x45, EOR, ZeroPage, 2, 3},
		{0x55, EOR, ZeroPageX, 2, 4},
		{0x4D, EOR, Absolute, 3, 4},
		{0x5D, EOR, AbsoluteX, 3, 4},
		{0x59, EOR, AbsoluteY, 3, 4},
		{0x41, EOR, IndirectX, 2, 6},
		{0x51, EOR, IndirectY, 2, 5},
		{0xE6, INC, ZeroPage, 2, 5},
		{0xF6, INC, ZeroPageX, 2, 6},
		{0xEE, INC, Absolute, 3, 6},
		{0xFE, INC, AbsoluteX, 3, 7},
		{0xE8, INX, Implicit, 1, 2},
		{0xC8, INY, Implicit, 1, 2},
		{0x4C, JMP, Absolute, 3, 3},
		{0x6C, JMP, Indirect, 3, 5},
		{0x20, JSR, Absolute, 3, 6},
		{0xA9, LDA, Immediate, 2, 2},
		{0xA5, LDA, ZeroPage, 2, 3},
		{0xB5, LDA, ZeroPageX, 2, 4},
		{0xAD, LDA, Absolute, 3, 4},
		{0xBD, LDA, AbsoluteX, 3, 4},
		{0xB9, LDA, AbsoluteY, 3, 4},
		{0xA1, LDA, IndirectX, 2, 6},
		{0xB1, LDA, IndirectY, 2, 5},
		{0xA2, LDX, Immediate, 2, 2},
		{0xA6, LDX, ZeroPage, 2, 3},
		{0xB6, LDX, ZeroPageY, 2, 4},
		{0xAE, LDX, Absolute, 3, 4},
		{0xBE, LDX, AbsoluteY, 3, 4},
		{0xA0, LDY, Immediate, 2, 2},
		{0xA4, LDY, ZeroPage, 2, 3},
		{0xB4, LDY, ZeroPageX, 2, 4},
		{0xAC, LDY, Absolute, 3, 4},
		{0xBC, LDY, AbsoluteX, 3, 4},
		{0x4A, LSR, Accumulator, 1, 2},
		{0x46, LSR, ZeroPage, 2, 5},
		{0x56, LSR, ZeroPageX, 2, 6},
		{0x4E, LSR, Absolute, 3, 6},
		{0x5E, LSR, AbsoluteX, 3, 7},
		{0xEA, NOP, Implicit, 1, 2},
		{0x09, ORA, Immediate, 2, 2},
		{0x05, ORA, ZeroPage, 2, 3},
		{0x15, ORA, ZeroPageX, 2, 4},
		{0x0D, ORA, Absolute, 3, 4},
		{0x1D, ORA, AbsoluteX, 3, 4},
		{0x19, ORA, AbsoluteY, 3, 4},
		{0x01, ORA, IndirectX, 2, 6},
		{0x11, ORA, IndirectY, 2, 5},
		{0x48, PHA, Implicit, 1, 3},
		{0x08, PHP, Implicit, 1, 3},
		{0x68, PLA, Implicit, 1, 4},
		{0x28, PLP, Implicit, 1, 4},
		{0x2A, ROL, Accumulator, 1, 2},
		{0x26, ROL, ZeroPage, 2, 5},
		{0x36, ROL, ZeroPageX, 2, 6},
		{0x2E, ROL, Absolute, 3, 6},
		{0x3E, ROL, AbsoluteX, 3, 7},
		{0x6A, ROR, Accumulator, 1, 2},
		{0x66, ROR, ZeroPage, 2, 5},
		{0x76, ROR, ZeroPageX, 2, 6},
		{0x6E, ROR, Absolute, 3, 6},
		{0x7E, ROR, AbsoluteX, 3, 7},
		{0x40, RTI, Implicit, 1, 6},
		{0x60, RTS, Implicit, 1, 6},
		{0xE9, SBC, Immediate, 2, 2},
		{0xE5, SBC, ZeroPage, 2, 3},
		{0xF5, SBC, ZeroPageX, 2, 4},
		{0xED, SBC, Absolute, 3, 4},
		{0xFD, SBC, AbsoluteX, 3, 4},
		{0xF9, SBC, AbsoluteY, 3, 4},
		{0xE1, SBC, IndirectX, 2, 6},
		{0xF1, SBC, IndirectY, 2, 5},
		{0x38, SEC, Implicit, 1, 2},
		{0xF8, SED, Implicit, 1, 2},
		{0x78, SEI, Implicit, 1, 2},
		{0x85, STA, ZeroPage, 2, 3},
		{0x95, STA, ZeroPageX, 2, 4},
		{0x8D, STA, Absolute, 3, 4},
		{0x9D, STA, AbsoluteX, 3, 5},
		{0x99, STA, AbsoluteY, 3, 5},
		{0x81, STA, IndirectX, 2, 6},
		{0x91, STA, IndirectY, 2, 6},
		{0x86, STX, ZeroPage, 2, 3},
		{0x96, STX, ZeroPageY, 2, 4},
		{0x8E, STX, Absolute, 3, 4},
		{0x84, STY, ZeroPage, 2, 3},
		{0x94, STY, ZeroPageX, 2, 4},
		{0x8C, STY, Absolute, 3, 4},
		{0xAA, TAX, Implicit, 1, 2},
		{0xA8, TAY, Implicit, 1, 2},
		{0xBA, TSX, Implicit, 1, 2},
		{0x8A, TXA, Implicit, 1, 2},
		{0x9A, TXS, Implicit, 1, 2},
		{0x98, TYA, Implicit, 1, 2},
	}

	exec := execTable()
	for _, e := range entries {
		opcodeTable[e.code] = Opcode{
			Mnemonic: e.mnem,
			Mode:     e.mode,
			Bytes:    e.bytes,
			Cycles:   e.cycles,
			Exec:     exec[e.mnem],
		}
	}
}
