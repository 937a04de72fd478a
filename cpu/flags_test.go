package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlagsPack(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(uint8(0x02), Flags{}.Pack())
	assert.Equal(uint8(0x83), Flags{S: true, CY: true}.Pack())
	assert.Equal(uint8(0x46), Flags{Z: true, P: true}.Pack())
	assert.Equal(uint8(0xd7), Flags{S: true, Z: true, AC: true, P: true, CY: true}.Pack())
}

func TestFlagsUnpack(t *testing.T) {
	assert := assert.New(t)

	var fl Flags
	fl.Unpack(0xd7)
	assert.Equal(Flags{S: true, Z: true, AC: true, P: true, CY: true}, fl)

	// The reserved bits are ignored on the way in.
	fl.Unpack(0x28)
	assert.Equal(Flags{}, fl)
}

func TestFlagsRoundTrip(t *testing.T) {
	assert := assert.New(t)

	for n := range 32 {
		fl := Flags{
			S:  n&1 != 0,
			Z:  n&2 != 0,
			AC: n&4 != 0,
			P:  n&8 != 0,
			CY: n&16 != 0,
		}

		psw := fl.Pack()
		assert.Equal(FLAG_FIXED, psw&0x02)
		assert.Equal(uint8(0), psw&0x28)

		var back Flags
		back.Unpack(psw)
		assert.Equal(fl, back)
	}
}

func TestFlagsHolds(t *testing.T) {
	assert := assert.New(t)

	fl := Flags{Z: true, CY: true}

	assert.False(fl.Holds(COND_NZ))
	assert.True(fl.Holds(COND_Z))
	assert.False(fl.Holds(COND_NC))
	assert.True(fl.Holds(COND_C))
	assert.False(fl.Holds(COND_PE))
	assert.True(fl.Holds(COND_PO))
	assert.True(fl.Holds(COND_P))
	assert.False(fl.Holds(COND_M))

	fl = Flags{S: true, P: true}

	assert.True(fl.Holds(COND_NZ))
	assert.True(fl.Holds(COND_NC))
	assert.True(fl.Holds(COND_PE))
	assert.False(fl.Holds(COND_PO))
	assert.False(fl.Holds(COND_P))
	assert.True(fl.Holds(COND_M))
}
