// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"
	"iter"
	"log"

	"github.com/ezrec/emu80/cpu"
	"github.com/ezrec/emu80/device"
	"github.com/ezrec/emu80/internal"
)

// Emulator state. CPU + memory + I/O devices.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	Strict   bool         // If set, an undefined opcode stops the run.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently running program listing.

	Mem   cpu.Memory     // 64KB of RAM.
	Ports cpu.Ports      // I/O port space.
	Con   device.Console // Serial console device.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Program: &cpu.Program{},
	}

	emu.Cpu = cpu.NewCpu(&emu.Mem, &emu.Ports)
	emu.Con.Attach(&emu.Ports)

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(
		emu.Cpu.Defines(),
		emu.Con.Defines(),
	)
}

// Reset clears memory, loads the program image and restarts the CPU at
// the program's origin.
func (emu *Emulator) Reset() {
	emu.Cpu.Verbose = emu.Verbose

	emu.Mem.Reset()
	for addr, value := range emu.Program.Image() {
		emu.Mem.WriteByte(addr, value)
	}

	emu.Cpu.Reset(emu.Program.Origin())
}

// Ticks returns the total cycles since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// LineNo returns the current line number for the executing opcode.
func (emu *Emulator) LineNo() int {
	dbg := emu.Program.Debug(emu.Cpu.Reg.PC)
	if dbg.Opcode == nil {
		return 0
	}

	return dbg.LineNo
}

// Tick performs a single instruction step of the emulator. The run is
// done when the CPU halts. An undefined opcode is logged and skipped
// unless Strict is set.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Err: err}
		}
	}()

	_, err = emu.Cpu.Step()
	if errors.Is(err, cpu.ErrOpcode(0)) && !emu.Strict {
		log.Printf("line %d: %v", lineno, err)
		err = nil
	}
	if err != nil {
		return
	}

	done = emu.Cpu.Halted

	return
}

// Run steps the emulator until the CPU halts or a runtime error occurs.
func (emu *Emulator) Run() (err error) {
	for {
		var done bool
		done, err = emu.Tick()
		if done || err != nil {
			return
		}
	}
}
