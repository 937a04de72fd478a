// Package cpu implements the microprocessor and assembler for the emu80 system.
//
// The processor is an instruction-level model of the 8080: seven 8-bit
// working registers (with BC, DE and HL addressable as 16-bit pairs), a
// 16-bit stack pointer and program counter, five status flags, and a
// fetch/decode/execute step over a 64KB memory bus and a 256-port I/O bus.
// Every documented opcode is executed byte-for-byte and flag-for-flag as
// the hardware does, including silent 16-bit address and stack wraparound.
//
// The assembler provides a single-pass macro assembler for the 8080
// instruction set, supporting macros, labels, equates, data directives,
// and compile-time expression evaluation.
package cpu
