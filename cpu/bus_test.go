package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemory(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{}

	assert.Equal(uint8(0x00), mem.ReadByte(0x1234))

	mem.WriteByte(0x1234, 0xa5)
	assert.Equal(uint8(0xa5), mem.ReadByte(0x1234))

	mem.Reset()
	assert.Equal(uint8(0x00), mem.ReadByte(0x1234))
}

func TestWordAccess(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{}

	WriteWord(mem, 0x2000, 0x1234)
	assert.Equal(uint8(0x34), mem.ReadByte(0x2000))
	assert.Equal(uint8(0x12), mem.ReadByte(0x2001))
	assert.Equal(uint16(0x1234), ReadWord(mem, 0x2000))

	// A word at the top of memory wraps to address zero.
	WriteWord(mem, 0xffff, 0xbeef)
	assert.Equal(uint8(0xef), mem.ReadByte(0xffff))
	assert.Equal(uint8(0xbe), mem.ReadByte(0x0000))
	assert.Equal(uint16(0xbeef), ReadWord(mem, 0xffff))
}

func TestPorts(t *testing.T) {
	assert := assert.New(t)

	ports := &Ports{}

	// Unattached ports float high and swallow writes.
	assert.Equal(uint8(0xff), ports.ReadPort(0x10))
	ports.WritePort(0x10, 0x42)

	dev := &testDevice{value: 0x33}
	ports.Attach(0x10, dev)

	assert.Equal(uint8(0x33), ports.ReadPort(0x10))
	ports.WritePort(0x10, 0x42)
	assert.Equal(uint8(0x42), dev.wrote)

	// Other ports are unaffected.
	assert.Equal(uint8(0xff), ports.ReadPort(0x11))

	ports.Attach(0x10, nil)
	assert.Equal(uint8(0xff), ports.ReadPort(0x10))
}
