package cpu

import (
	"fmt"
)

// Category is the instruction class the executor dispatches on. The
// grouping follows the 8080 programmer's manual.
type Category int

//go:generate go tool stringer -linecomment -type=Category
const (
	OP_CARRY     = Category(0)  // carry
	OP_SINGLE    = Category(1)  // single
	OP_TRANSFER  = Category(2)  // transfer
	OP_ALU       = Category(3)  // alu
	OP_ROTATE    = Category(4)  // rotate
	OP_PAIR      = Category(5)  // pair
	OP_IMMEDIATE = Category(6)  // immediate
	OP_DIRECT    = Category(7)  // direct
	OP_BRANCH    = Category(8)  // branch
	OP_STACK     = Category(9)  // stack
	OP_IO        = Category(10) // io
	OP_CONTROL   = Category(11) // control
	OP_UNDEFINED = Category(12) // undefined
)

// Op describes one decoded instruction. Descriptors are immutable and
// statically enumerated; Decode only indexes into the table.
type Op struct {
	Code     uint8    // The opcode byte.
	Name     string   // Mnemonic and operand pattern, e.g. "MOV B,M" or "ADI d8".
	Category Category // Execute dispatch class.
	Size     int      // Total instruction length in bytes, immediates included.
	Cycles   int      // Cycle cost (conditional branch not taken).
	Taken    int      // Cycle cost when a conditional branch is taken.
}

// Decode maps an opcode byte to its descriptor. It is pure and total:
// the twelve byte values with no defined 8080 instruction decode to an
// OP_UNDEFINED descriptor, and the executor decides how to react.
func Decode(code uint8) Op {
	return optab[code]
}

// Dst returns the destination register field (opcode bits 5..3).
func (op Op) Dst() Reg {
	return Reg(op.Code >> 3 & 0x07)
}

// Src returns the source register field (opcode bits 2..0).
func (op Op) Src() Reg {
	return Reg(op.Code & 0x07)
}

// Pair returns the register pair field (opcode bits 5..4).
func (op Op) Pair() RegPair {
	return RegPair(op.Code >> 4 & 0x03)
}

// StackPair returns the register pair field as PUSH and POP interpret
// it: the encoding that elsewhere means SP denotes the PSW.
func (op Op) StackPair() (rp RegPair) {
	rp = op.Pair()
	if rp == PAIR_SP {
		rp = PAIR_PSW
	}

	return
}

// Cond returns the branch condition field (opcode bits 5..3).
func (op Op) Cond() Condition {
	return Condition(op.Code >> 3 & 0x07)
}

// Vector returns the restart address encoded in an RST opcode.
func (op Op) Vector() uint16 {
	return uint16(op.Code & 0x38)
}

func (op Op) String() string {
	return op.Name
}

// cycleTable is the per-opcode cycle cost of the 8080, conditional
// branches counted as not taken. A taken conditional call costs 17 and a
// taken conditional return 11; Decode reports those through Op.Taken.
var cycleTable = [256]int{
	4, 10, 7, 5, 5, 5, 7, 4, 4, 10, 7, 5, 5, 5, 7, 4,
	4, 10, 7, 5, 5, 5, 7, 4, 4, 10, 7, 5, 5, 5, 7, 4,
	4, 10, 16, 5, 5, 5, 7, 4, 4, 10, 16, 5, 5, 5, 7, 4,
	4, 10, 13, 5, 10, 10, 10, 4, 4, 10, 13, 5, 5, 5, 7, 4,
	5, 5, 5, 5, 5, 5, 7, 5, 5, 5, 5, 5, 5, 5, 7, 5,
	5, 5, 5, 5, 5, 5, 7, 5, 5, 5, 5, 5, 5, 5, 7, 5,
	5, 5, 5, 5, 5, 5, 7, 5, 5, 5, 5, 5, 5, 5, 7, 5,
	7, 7, 7, 7, 7, 7, 7, 7, 5, 5, 5, 5, 5, 5, 7, 5,
	4, 4, 4, 4, 4, 4, 7, 4, 4, 4, 4, 4, 4, 4, 7, 4,
	4, 4, 4, 4, 4, 4, 7, 4, 4, 4, 4, 4, 4, 4, 7, 4,
	4, 4, 4, 4, 4, 4, 7, 4, 4, 4, 4, 4, 4, 4, 7, 4,
	4, 4, 4, 4, 4, 4, 7, 4, 4, 4, 4, 4, 4, 4, 7, 4,
	5, 10, 10, 10, 11, 11, 7, 11, 5, 10, 10, 10, 11, 17, 7, 11,
	5, 10, 10, 10, 11, 11, 7, 11, 5, 10, 10, 10, 11, 17, 7, 11,
	5, 10, 10, 18, 11, 11, 7, 11, 5, 5, 10, 4, 11, 17, 7, 11,
	5, 10, 10, 4, 11, 11, 7, 11, 5, 5, 10, 4, 11, 17, 7, 11,
}

var optab [256]Op

// encode maps mnemonic patterns ("MOV B,M", "ADI d8", "JNZ a16") back to
// descriptors. The assembler resolves instructions against this, so the
// decoder and the assembler can never disagree on an encoding.
var encode = map[string]Op{}

// define fills one decode table entry, taking the cycle cost from
// cycleTable. Entries defined later win, which lets the MOV block be
// filled wholesale and HLT carved out of it afterwards.
func define(code int, name string, cat Category, size int) {
	optab[code] = Op{
		Code:     uint8(code),
		Name:     name,
		Category: cat,
		Size:     size,
		Cycles:   cycleTable[code],
		Taken:    cycleTable[code],
	}
}

// aluNames indexes the accumulator operation field (opcode bits 5..3) of
// the 0x80..0xbf block; aluImmNames are the matching immediate forms.
var aluNames = [8]string{"ADD", "ADC", "SUB", "SBB", "ANA", "XRA", "ORA", "CMP"}
var aluImmNames = [8]string{"ADI", "ACI", "SUI", "SBI", "ANI", "XRI", "ORI", "CPI"}

func init() {
	for code := range 256 {
		define(code, fmt.Sprintf("?0x%02x", code), OP_UNDEFINED, 1)
	}

	// Register operands: the 3-bit fields select B C D E H L M A, where
	// M substitutes memory-via-HL uniformly (MOV, ALU, INR/DCR, MVI).
	for d := REG_B; d <= REG_A; d++ {
		for s := REG_B; s <= REG_A; s++ {
			define(0x40|int(d)<<3|int(s), "MOV "+d.String()+","+s.String(), OP_TRANSFER, 1)
		}
		for n, name := range aluNames {
			define(0x80|n<<3|int(d), name+" "+d.String(), OP_ALU, 1)
		}
		define(0x04|int(d)<<3, "INR "+d.String(), OP_SINGLE, 1)
		define(0x05|int(d)<<3, "DCR "+d.String(), OP_SINGLE, 1)
		define(0x06|int(d)<<3, "MVI "+d.String()+",d8", OP_IMMEDIATE, 2)
	}

	// Register pair operands: the 2-bit field selects BC DE HL SP, with
	// PSW substituted for SP in the PUSH/POP context.
	for p := PAIR_BC; p <= PAIR_SP; p++ {
		define(0x01|int(p)<<4, "LXI "+p.String()+",d16", OP_IMMEDIATE, 3)
		define(0x03|int(p)<<4, "INX "+p.String(), OP_PAIR, 1)
		define(0x09|int(p)<<4, "DAD "+p.String(), OP_PAIR, 1)
		define(0x0b|int(p)<<4, "DCX "+p.String(), OP_PAIR, 1)
	}
	for p := PAIR_BC; p <= PAIR_DE; p++ {
		define(0x02|int(p)<<4, "STAX "+p.String(), OP_TRANSFER, 1)
		define(0x0a|int(p)<<4, "LDAX "+p.String(), OP_TRANSFER, 1)
	}
	for p := PAIR_BC; p <= PAIR_SP; p++ {
		sp := p
		if sp == PAIR_SP {
			sp = PAIR_PSW
		}
		define(0xc1|int(p)<<4, "POP "+sp.String(), OP_STACK, 1)
		define(0xc5|int(p)<<4, "PUSH "+sp.String(), OP_STACK, 1)
	}

	define(0x07, "RLC", OP_ROTATE, 1)
	define(0x0f, "RRC", OP_ROTATE, 1)
	define(0x17, "RAL", OP_ROTATE, 1)
	define(0x1f, "RAR", OP_ROTATE, 1)

	define(0x27, "DAA", OP_SINGLE, 1)
	define(0x2f, "CMA", OP_SINGLE, 1)
	define(0x37, "STC", OP_CARRY, 1)
	define(0x3f, "CMC", OP_CARRY, 1)

	define(0x22, "SHLD a16", OP_DIRECT, 3)
	define(0x2a, "LHLD a16", OP_DIRECT, 3)
	define(0x32, "STA a16", OP_DIRECT, 3)
	define(0x3a, "LDA a16", OP_DIRECT, 3)

	for n, name := range aluImmNames {
		define(0xc6|n<<3, name+" d8", OP_IMMEDIATE, 2)
	}

	// Conditional branches: the 3-bit field selects the tested flag.
	// A taken call or return costs more than a skipped one.
	for c := COND_NZ; c <= COND_M; c++ {
		define(0xc0|int(c)<<3, "R"+c.String(), OP_BRANCH, 1)
		define(0xc2|int(c)<<3, "J"+c.String()+" a16", OP_BRANCH, 3)
		define(0xc4|int(c)<<3, "C"+c.String()+" a16", OP_BRANCH, 3)
		optab[0xc0|int(c)<<3].Taken = 11
		optab[0xc4|int(c)<<3].Taken = 17
	}
	for n := range 8 {
		define(0xc7|n<<3, fmt.Sprintf("RST %d", n), OP_BRANCH, 1)
	}
	define(0xc3, "JMP a16", OP_BRANCH, 3)
	define(0xc9, "RET", OP_BRANCH, 1)
	define(0xcd, "CALL a16", OP_BRANCH, 3)
	define(0xe9, "PCHL", OP_BRANCH, 1)

	define(0xe3, "XTHL", OP_PAIR, 1)
	define(0xeb, "XCHG", OP_PAIR, 1)
	define(0xf9, "SPHL", OP_PAIR, 1)

	define(0xd3, "OUT d8", OP_IO, 2)
	define(0xdb, "IN d8", OP_IO, 2)

	define(0x00, "NOP", OP_CONTROL, 1)
	define(0x76, "HLT", OP_CONTROL, 1)
	define(0xf3, "DI", OP_CONTROL, 1)
	define(0xfb, "EI", OP_CONTROL, 1)

	for _, op := range optab {
		if op.Category != OP_UNDEFINED {
			encode[op.Name] = op
		}
	}
}
