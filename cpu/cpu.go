package cpu

import (
	"fmt"
	"iter"
	"log"
	"maps"
)

var _cpu_defines = map[string]string{
	"RST0": "0x0000",
	"RST1": "0x0008",
	"RST2": "0x0010",
	"RST3": "0x0018",
	"RST4": "0x0020",
	"RST5": "0x0028",
	"RST6": "0x0030",
	"RST7": "0x0038",
}

// Cpu is the 8080 executor: it owns the register file and flags, and
// drives the memory and port buses it was constructed with. A Cpu is
// single-threaded by design; Step is one atomic state transition and a
// host serializes all access.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Reg  Registers // Register file.
	Flag Flags     // Status flags.

	Mem  MemoryBus // 64KB memory space.
	Port PortBus   // 256-port I/O space.

	Halted     bool // Set by HLT, cleared by Reset or a delivered interrupt.
	IntEnabled bool // Interrupt flip-flop, set by EI and cleared by DI.

	Ticks int // Total elapsed cycles since reset.
}

// NewCpu creates a CPU attached to the given buses.
func NewCpu(mem MemoryBus, port PortBus) (cpu *Cpu) {
	cpu = &Cpu{
		Mem:  mem,
		Port: port,
	}

	return
}

// Defines for the cpu.
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// Reset clears the registers, flags and counters and starts execution at
// the given entry address. The reset vector is the caller's choice, not
// a hard-coded zero.
func (cpu *Cpu) Reset(entry uint16) {
	if cpu.Verbose {
		log.Printf("cpu: reset to %04x", entry)
	}

	cpu.Reg = Registers{PC: entry}
	cpu.Flag = Flags{}
	cpu.Halted = false
	cpu.IntEnabled = false
	cpu.Ticks = 0
}

// Running reports whether the CPU is in the Running state.
func (cpu *Cpu) Running() bool {
	return !cpu.Halted
}

// Interrupt injects an interrupt between steps: the PC is pushed, the
// vector becomes the new PC, and a halted CPU resumes. Delivery costs
// the same as the equivalent RST. When the interrupt flip-flop is clear
// the request is ignored and false is returned; further interrupts stay
// disabled until the program executes EI again, as the hardware does on
// acknowledge.
func (cpu *Cpu) Interrupt(vector uint16) (ok bool) {
	if !cpu.IntEnabled {
		return
	}

	if cpu.Verbose {
		log.Printf("cpu: interrupt to %04x", vector)
	}

	cpu.IntEnabled = false
	cpu.Halted = false
	cpu.push(cpu.Reg.PC)
	cpu.Reg.PC = vector
	cpu.Ticks += cycleTable[0xc7]
	ok = true

	return
}

// Step executes one instruction and returns its cycle cost. While
// halted, Step is a no-op that costs HLT's own 7 cycles. A fetched byte
// with no defined instruction executes as a 4-cycle no-op and is
// reported as ErrOpcode; whether that is fatal is the caller's decision.
func (cpu *Cpu) Step() (cycles int, err error) {
	if cpu.Halted {
		cycles = cycleTable[0x76]
		cpu.Ticks += cycles

		return
	}

	base := cpu.Reg.PC
	op := Decode(cpu.Mem.ReadByte(base))

	if cpu.Verbose {
		log.Printf("%04x: %v", base, op)
	}

	// Immediate operands follow the opcode, 16-bit ones little-endian.
	var imm8 uint8
	var imm16 uint16
	switch op.Size {
	case 2:
		imm8 = cpu.Mem.ReadByte(base + 1)
	case 3:
		imm16 = ReadWord(cpu.Mem, base+1)
	}

	// The PC advances past the whole instruction up front; a taken
	// branch overwrites it below. CALL therefore pushes the address of
	// the instruction after itself, never its own.
	cpu.Reg.PC = base + uint16(op.Size)

	cycles = op.Cycles

	switch op.Category {
	case OP_CONTROL:
		switch op.Code {
		case 0x76: // HLT
			cpu.Halted = true
		case 0xf3: // DI
			cpu.IntEnabled = false
		case 0xfb: // EI
			cpu.IntEnabled = true
		default: // NOP
		}

	case OP_CARRY:
		if op.Code == 0x37 { // STC
			cpu.Flag.CY = true
		} else { // CMC
			cpu.Flag.CY = !cpu.Flag.CY
		}

	case OP_SINGLE:
		switch op.Code {
		case 0x27: // DAA
			cpu.Reg.A, cpu.Flag = AluDaa(cpu.Reg.A, cpu.Flag)
		case 0x2f: // CMA, no flags
			cpu.Reg.A = ^cpu.Reg.A
		default: // INR/DCR, all flags but CY
			var r uint8
			var fl Flags
			if op.Code&0x01 == 0 {
				r, fl = AluInc(cpu.loadReg(op.Dst()))
			} else {
				r, fl = AluDec(cpu.loadReg(op.Dst()))
			}
			fl.CY = cpu.Flag.CY
			cpu.storeReg(op.Dst(), r)
			cpu.Flag = fl
		}

	case OP_ROTATE:
		switch op.Code {
		case 0x07:
			cpu.Reg.A, cpu.Flag.CY = AluRlc(cpu.Reg.A)
		case 0x0f:
			cpu.Reg.A, cpu.Flag.CY = AluRrc(cpu.Reg.A)
		case 0x17:
			cpu.Reg.A, cpu.Flag.CY = AluRal(cpu.Reg.A, cpu.Flag.CY)
		case 0x1f:
			cpu.Reg.A, cpu.Flag.CY = AluRar(cpu.Reg.A, cpu.Flag.CY)
		}

	case OP_TRANSFER:
		switch {
		case op.Code >= 0x40: // MOV, no flags
			cpu.storeReg(op.Dst(), cpu.loadReg(op.Src()))
		case op.Code&0x08 == 0: // STAX
			cpu.Mem.WriteByte(cpu.Reg.Pair(op.Pair()), cpu.Reg.A)
		default: // LDAX
			cpu.Reg.A = cpu.Mem.ReadByte(cpu.Reg.Pair(op.Pair()))
		}

	case OP_ALU:
		cpu.aluOp(int(op.Code>>3&0x07), cpu.loadReg(op.Src()))

	case OP_IMMEDIATE:
		switch {
		case op.Code >= 0xc0: // ADI..CPI
			cpu.aluOp(int(op.Code>>3&0x07), imm8)
		case op.Code&0x07 == 0x06: // MVI
			cpu.storeReg(op.Dst(), imm8)
		default: // LXI
			cpu.Reg.SetPair(op.Pair(), imm16)
		}

	case OP_DIRECT:
		switch op.Code {
		case 0x22: // SHLD
			WriteWord(cpu.Mem, imm16, cpu.Reg.Pair(PAIR_HL))
		case 0x2a: // LHLD
			cpu.Reg.SetPair(PAIR_HL, ReadWord(cpu.Mem, imm16))
		case 0x32: // STA
			cpu.Mem.WriteByte(imm16, cpu.Reg.A)
		case 0x3a: // LDA
			cpu.Reg.A = cpu.Mem.ReadByte(imm16)
		}

	case OP_PAIR:
		switch op.Code {
		case 0xe3: // XTHL
			hl := cpu.Reg.Pair(PAIR_HL)
			cpu.Reg.SetPair(PAIR_HL, ReadWord(cpu.Mem, cpu.Reg.SP))
			WriteWord(cpu.Mem, cpu.Reg.SP, hl)
		case 0xeb: // XCHG, no flags
			de := cpu.Reg.Pair(PAIR_DE)
			cpu.Reg.SetPair(PAIR_DE, cpu.Reg.Pair(PAIR_HL))
			cpu.Reg.SetPair(PAIR_HL, de)
		case 0xf9: // SPHL
			cpu.Reg.SP = cpu.Reg.Pair(PAIR_HL)
		default:
			switch op.Code & 0x0f {
			case 0x03: // INX, no flags
				cpu.Reg.SetPair(op.Pair(), cpu.Reg.Pair(op.Pair())+1)
			case 0x0b: // DCX, no flags
				cpu.Reg.SetPair(op.Pair(), cpu.Reg.Pair(op.Pair())-1)
			case 0x09: // DAD, only CY
				sum := uint32(cpu.Reg.Pair(PAIR_HL)) + uint32(cpu.Reg.Pair(op.Pair()))
				cpu.Reg.SetPair(PAIR_HL, uint16(sum))
				cpu.Flag.CY = sum > 0xffff
			}
		}

	case OP_BRANCH:
		cycles = cpu.branch(op, imm16)

	case OP_STACK:
		if op.Code&0x04 != 0 { // PUSH
			if op.StackPair() == PAIR_PSW {
				cpu.push(uint16(cpu.Reg.A)<<8 | uint16(cpu.Flag.Pack()))
			} else {
				cpu.push(cpu.Reg.Pair(op.StackPair()))
			}
		} else { // POP
			value := cpu.pop()
			if op.StackPair() == PAIR_PSW {
				cpu.Reg.A = uint8(value >> 8)
				cpu.Flag.Unpack(uint8(value))
			} else {
				cpu.Reg.SetPair(op.StackPair(), value)
			}
		}

	case OP_IO:
		if op.Code == 0xdb { // IN
			cpu.Reg.A = cpu.Port.ReadPort(imm8)
		} else { // OUT
			cpu.Port.WritePort(imm8, cpu.Reg.A)
		}

	default:
		err = ErrOpcode(op.Code)
	}

	cpu.Ticks += cycles

	return
}

// branch executes the jump, call, return and restart instructions and
// returns the cycle cost, which for conditional forms depends on whether
// the branch was taken.
func (cpu *Cpu) branch(op Op, target uint16) (cycles int) {
	cycles = op.Cycles

	switch op.Code {
	case 0xc3: // JMP
		cpu.Reg.PC = target
	case 0xc9: // RET
		cpu.Reg.PC = cpu.pop()
	case 0xcd: // CALL
		cpu.push(cpu.Reg.PC)
		cpu.Reg.PC = target
	case 0xe9: // PCHL
		cpu.Reg.PC = cpu.Reg.Pair(PAIR_HL)
	default:
		if op.Code&0xc7 == 0xc7 { // RST
			cpu.push(cpu.Reg.PC)
			cpu.Reg.PC = op.Vector()

			return
		}

		if !cpu.Flag.Holds(op.Cond()) {
			return
		}
		cycles = op.Taken

		switch op.Code & 0xc7 {
		case 0xc0: // Rcc
			cpu.Reg.PC = cpu.pop()
		case 0xc2: // Jcc
			cpu.Reg.PC = target
		case 0xc4: // Ccc
			cpu.push(cpu.Reg.PC)
			cpu.Reg.PC = target
		}
	}

	return
}

// aluOp applies one of the eight accumulator operations selected by
// opcode bits 5..3, shared by the register forms (0x80..0xbf) and the
// immediate forms (ADI..CPI).
func (cpu *Cpu) aluOp(index int, operand uint8) {
	var carry uint8
	if cpu.Flag.CY {
		carry = 1
	}

	switch index {
	case 0: // ADD
		cpu.Reg.A, cpu.Flag = AluAdd(cpu.Reg.A, operand, 0)
	case 1: // ADC
		cpu.Reg.A, cpu.Flag = AluAdd(cpu.Reg.A, operand, carry)
	case 2: // SUB
		cpu.Reg.A, cpu.Flag = AluSub(cpu.Reg.A, operand, 0)
	case 3: // SBB
		cpu.Reg.A, cpu.Flag = AluSub(cpu.Reg.A, operand, carry)
	case 4: // ANA
		cpu.Reg.A, cpu.Flag = AluAnd(cpu.Reg.A, operand)
	case 5: // XRA
		cpu.Reg.A, cpu.Flag = AluXor(cpu.Reg.A, operand)
	case 6: // ORA
		cpu.Reg.A, cpu.Flag = AluOr(cpu.Reg.A, operand)
	case 7: // CMP leaves A unmodified
		_, cpu.Flag = AluSub(cpu.Reg.A, operand, 0)
	}
}

// loadReg resolves a 3-bit register operand, substituting memory at HL
// for the M encoding.
func (cpu *Cpu) loadReg(r Reg) (value uint8) {
	if r == REG_M {
		return cpu.Mem.ReadByte(cpu.Reg.Pair(PAIR_HL))
	}

	return cpu.Reg.Load(r)
}

// storeReg resolves a 3-bit register operand for writing.
func (cpu *Cpu) storeReg(r Reg, value uint8) {
	if r == REG_M {
		cpu.Mem.WriteByte(cpu.Reg.Pair(PAIR_HL), value)

		return
	}

	cpu.Reg.Store(r, value)
}

// push stores a word below SP; SP wraps silently like any other 16-bit
// address arithmetic.
func (cpu *Cpu) push(value uint16) {
	cpu.Reg.SP -= 2
	WriteWord(cpu.Mem, cpu.Reg.SP, value)
}

// pop loads the word at SP.
func (cpu *Cpu) pop() (value uint16) {
	value = ReadWord(cpu.Mem, cpu.Reg.SP)
	cpu.Reg.SP += 2

	return
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text = fmt.Sprintf("   a: %02x  psw: %02x\n", cpu.Reg.A, cpu.Flag.Pack())
	text += fmt.Sprintf("  bc: %04x\n", cpu.Reg.Pair(PAIR_BC))
	text += fmt.Sprintf("  de: %04x\n", cpu.Reg.Pair(PAIR_DE))
	text += fmt.Sprintf("  hl: %04x\n", cpu.Reg.Pair(PAIR_HL))
	text += fmt.Sprintf("  sp: %04x\n", cpu.Reg.SP)
	text += fmt.Sprintf("  pc: %04x\n", cpu.Reg.PC)
	state := "running"
	if cpu.Halted {
		state = "halted"
	}
	text += fmt.Sprintf("  state: %v ticks: %v\n", state, cpu.Ticks)

	return
}
