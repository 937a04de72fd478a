package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistersLoadStore(t *testing.T) {
	assert := assert.New(t)

	reg := &Registers{}

	for _, r := range []Reg{REG_B, REG_C, REG_D, REG_E, REG_H, REG_L, REG_A} {
		value := uint8(0x10 + r)
		reg.Store(r, value)
		assert.Equal(value, reg.Load(r))
	}

	assert.Equal(uint8(0x10), reg.B)
	assert.Equal(uint8(0x17), reg.A)

	assert.Panics(func() { reg.Load(REG_M) })
	assert.Panics(func() { reg.Store(REG_M, 0) })
}

func TestRegistersPairs(t *testing.T) {
	assert := assert.New(t)

	reg := &Registers{}

	reg.SetPair(PAIR_BC, 0x1234)
	assert.Equal(uint8(0x12), reg.B)
	assert.Equal(uint8(0x34), reg.C)
	assert.Equal(uint16(0x1234), reg.Pair(PAIR_BC))

	reg.SetPair(PAIR_DE, 0x5678)
	assert.Equal(uint8(0x56), reg.D)
	assert.Equal(uint8(0x78), reg.E)

	reg.SetPair(PAIR_HL, 0x9abc)
	assert.Equal(uint8(0x9a), reg.H)
	assert.Equal(uint8(0xbc), reg.L)

	reg.SetPair(PAIR_SP, 0xdef0)
	assert.Equal(uint16(0xdef0), reg.SP)

	assert.Panics(func() { reg.Pair(PAIR_PSW) })
	assert.Panics(func() { reg.SetPair(PAIR_PSW, 0) })
}

func TestRegistersStrings(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("A", REG_A.String())
	assert.Equal("M", REG_M.String())
	assert.Equal("SP", PAIR_SP.String())
	assert.Equal("PSW", PAIR_PSW.String())
	assert.Equal("NZ", COND_NZ.String())
	assert.Equal("PE", COND_PE.String())
}
