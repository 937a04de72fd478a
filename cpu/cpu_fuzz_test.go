package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func FuzzStep(f *testing.F) {
	for code := range 256 {
		f.Add(uint8(code), uint8(code*7), uint8(code*13), uint8(code*29))
	}

	f.Fuzz(func(t *testing.T, code uint8, lo uint8, hi uint8, a uint8) {
		assert := assert.New(t)

		mem := &Memory{}
		mem.Data[0x0100] = code
		mem.Data[0x0101] = lo
		mem.Data[0x0102] = hi

		cpu := NewCpu(mem, &Ports{})
		cpu.Reset(0x0100)
		cpu.Reg.SP = 0x8000
		cpu.Reg.A = a

		cycles, err := cpu.Step()

		op := Decode(code)
		if op.Category == OP_UNDEFINED {
			assert.ErrorIs(err, ErrOpcode(0))
		} else {
			assert.NoError(err)
		}

		// Every step costs either the base or the taken cycle count, and
		// the tick counter advances by exactly that.
		assert.Contains([]int{op.Cycles, op.Taken}, cycles)
		assert.Equal(cycles, cpu.Ticks)

		// The packed flag byte keeps its fixed bits no matter what ran.
		psw := cpu.Flag.Pack()
		assert.Equal(FLAG_FIXED, psw&0x02)
		assert.Equal(uint8(0), psw&0x28)
	})
}
