package cpu

// Reg is a register operand as encoded in the 3-bit opcode fields.
// REG_M is not a register: it selects memory addressed through HL, and is
// resolved by the executor's operand logic, never by Registers itself.
type Reg int

//go:generate go tool stringer -linecomment -type=Reg
const (
	REG_B = Reg(0) // B
	REG_C = Reg(1) // C
	REG_D = Reg(2) // D
	REG_E = Reg(3) // E
	REG_H = Reg(4) // H
	REG_L = Reg(5) // L
	REG_M = Reg(6) // M
	REG_A = Reg(7) // A
)

// RegPair is a register pair operand as encoded in the 2-bit opcode fields.
// The encoding 3 means SP everywhere except PUSH and POP, where it means
// the PSW; Op.StackPair applies that substitution.
type RegPair int

//go:generate go tool stringer -linecomment -type=RegPair
const (
	PAIR_BC  = RegPair(0) // B
	PAIR_DE  = RegPair(1) // D
	PAIR_HL  = RegPair(2) // H
	PAIR_SP  = RegPair(3) // SP
	PAIR_PSW = RegPair(4) // PSW
)

// Registers is the 8080 register file: seven independent 8-bit registers,
// plus the 16-bit stack pointer and program counter. PC and SP arithmetic
// wraps modulo 65536 by construction.
type Registers struct {
	A, B, C, D, E, H, L uint8

	SP uint16
	PC uint16
}

// Load returns the value of an 8-bit register.
func (reg *Registers) Load(r Reg) (value uint8) {
	switch r {
	case REG_B:
		value = reg.B
	case REG_C:
		value = reg.C
	case REG_D:
		value = reg.D
	case REG_E:
		value = reg.E
	case REG_H:
		value = reg.H
	case REG_L:
		value = reg.L
	case REG_A:
		value = reg.A
	default:
		panic("M is not a register")
	}

	return
}

// Store sets the value of an 8-bit register.
func (reg *Registers) Store(r Reg, value uint8) {
	switch r {
	case REG_B:
		reg.B = value
	case REG_C:
		reg.C = value
	case REG_D:
		reg.D = value
	case REG_E:
		reg.E = value
	case REG_H:
		reg.H = value
	case REG_L:
		reg.L = value
	case REG_A:
		reg.A = value
	default:
		panic("M is not a register")
	}
}

// Pair returns the 16-bit value of a register pair. BC, DE and HL are
// views composed from their 8-bit halves; SP is a genuine 16-bit register.
func (reg *Registers) Pair(rp RegPair) (value uint16) {
	switch rp {
	case PAIR_BC:
		value = uint16(reg.B)<<8 | uint16(reg.C)
	case PAIR_DE:
		value = uint16(reg.D)<<8 | uint16(reg.E)
	case PAIR_HL:
		value = uint16(reg.H)<<8 | uint16(reg.L)
	case PAIR_SP:
		value = reg.SP
	default:
		panic("PSW is not a register pair")
	}

	return
}

// SetPair sets the 16-bit value of a register pair.
func (reg *Registers) SetPair(rp RegPair, value uint16) {
	switch rp {
	case PAIR_BC:
		reg.B = uint8(value >> 8)
		reg.C = uint8(value)
	case PAIR_DE:
		reg.D = uint8(value >> 8)
		reg.E = uint8(value)
	case PAIR_HL:
		reg.H = uint8(value >> 8)
		reg.L = uint8(value)
	case PAIR_SP:
		reg.SP = value
	default:
		panic("PSW is not a register pair")
	}
}
