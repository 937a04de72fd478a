package cpu

import (
	"fmt"
	"iter"
	"strings"
)

// Opcode is one assembled instruction or data directive: the bytes it
// produced, where they land, and the source that produced them.
type Opcode struct {
	LineNo    int      // Source line number.
	Addr      int      // Load address of the first byte.
	Words     []string // Source words, for listings and diagnostics.
	Bytes     []uint8  // Assembled bytes.
	LinkLabel string   // Label to link into the trailing address word.
}

// Program is the output of the assembler.
type Program struct {
	Opcodes []Opcode
}

// Debug locates the source of an address.
type Debug struct {
	*Opcode
	Index int
}

// Debug returns the source information for an address, or the zero Debug
// when the address is outside the program.
func (prog *Program) Debug(addr uint16) (dbg Debug) {
	for n, op := range prog.Opcodes {
		if addr >= uint16(op.Addr) && addr < uint16(op.Addr)+uint16(len(op.Bytes)) {
			index := int(addr - uint16(op.Addr))
			dbg = Debug{
				Opcode: &prog.Opcodes[n],
				Index:  index,
			}
			break
		}
	}

	return
}

// Origin is the load address of the first assembled byte, which is also
// the program's entry point.
func (prog *Program) Origin() (addr uint16) {
	if len(prog.Opcodes) > 0 {
		addr = uint16(prog.Opcodes[0].Addr)
	}

	return
}

// Image iterates over every assembled byte with its load address.
func (prog *Program) Image() iter.Seq2[uint16, uint8] {
	return func(yield func(addr uint16, value uint8) bool) {
		for _, op := range prog.Opcodes {
			addr := uint16(op.Addr)
			for n, value := range op.Bytes {
				if !yield(addr+uint16(n), value) {
					return
				}
			}
		}
	}
}

// Listing formats the program as an address, bytes and source listing.
func (prog *Program) Listing() (text string) {
	for _, op := range prog.Opcodes {
		text += fmt.Sprintf("%04x: %-12s %v\n", op.Addr,
			fmt.Sprintf("% x", op.Bytes), strings.Join(op.Words, " "))
	}

	return
}
