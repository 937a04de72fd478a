package cpu

// Flags holds the five 8080 status bits. The packed PSW byte layout is
// only materialized by Pack and Unpack; in between, each flag is a plain
// bool set by the most recent flag-affecting instruction.
type Flags struct {
	S  bool // Sign: bit 7 of the result.
	Z  bool // Zero: the result byte is zero.
	AC bool // Auxiliary carry out of (or borrow into) bit 3.
	P  bool // Parity: the result byte has an even number of set bits.
	CY bool // Carry out of (or borrow into) bit 7.
}

// FLAG_FIXED is the value of the reserved bits of the packed flag byte:
// bit 1 always reads as 1, bits 3 and 5 always read as 0.
const FLAG_FIXED = uint8(0x02)

// Pack returns the flag byte as pushed by PUSH PSW:
// S Z 0 AC 0 P 1 CY, from bit 7 down to bit 0.
func (fl Flags) Pack() (psw uint8) {
	psw = FLAG_FIXED
	if fl.S {
		psw |= 1 << 7
	}
	if fl.Z {
		psw |= 1 << 6
	}
	if fl.AC {
		psw |= 1 << 4
	}
	if fl.P {
		psw |= 1 << 2
	}
	if fl.CY {
		psw |= 1 << 0
	}

	return
}

// Unpack sets the flags from a packed flag byte, as popped by POP PSW.
// The reserved bits are ignored.
func (fl *Flags) Unpack(psw uint8) {
	fl.S = (psw>>7)&1 != 0
	fl.Z = (psw>>6)&1 != 0
	fl.AC = (psw>>4)&1 != 0
	fl.P = (psw>>2)&1 != 0
	fl.CY = (psw>>0)&1 != 0
}

// Condition is a branch condition as encoded in the 3-bit field of the
// conditional jump, call and return opcodes.
type Condition int

//go:generate go tool stringer -linecomment -type=Condition
const (
	COND_NZ = Condition(0) // NZ
	COND_Z  = Condition(1) // Z
	COND_NC = Condition(2) // NC
	COND_C  = Condition(3) // C
	COND_PO = Condition(4) // PO
	COND_PE = Condition(5) // PE
	COND_P  = Condition(6) // P
	COND_M  = Condition(7) // M
)

// Holds reports whether a branch condition is satisfied. Each condition
// tests exactly one flag bit.
func (fl Flags) Holds(cond Condition) (taken bool) {
	switch cond {
	case COND_NZ:
		taken = !fl.Z
	case COND_Z:
		taken = fl.Z
	case COND_NC:
		taken = !fl.CY
	case COND_C:
		taken = fl.CY
	case COND_PO:
		taken = !fl.P
	case COND_PE:
		taken = fl.P
	case COND_P:
		taken = !fl.S
	case COND_M:
		taken = fl.S
	}

	return
}
