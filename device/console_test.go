package device

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/emu80/cpu"
)

func TestConsoleInput(t *testing.T) {
	assert := assert.New(t)

	con := &Console{Input: strings.NewReader("Hi")}

	status := con.In(CONSOLE_STATUS)
	assert.Equal(CONSOLE_TX_READY|CONSOLE_RX_READY, status)

	assert.Equal(uint8('H'), con.In(CONSOLE_DATA))
	assert.Equal(uint8('i'), con.In(CONSOLE_DATA))

	// Exhausted input drops the receive ready bit and reads as zero.
	status = con.In(CONSOLE_STATUS)
	assert.Equal(CONSOLE_TX_READY, status)
	assert.Equal(uint8(0), con.In(CONSOLE_DATA))
}

func TestConsoleOutput(t *testing.T) {
	assert := assert.New(t)

	output := &bytes.Buffer{}
	con := &Console{Output: output}

	con.Out(CONSOLE_DATA, 'o')
	con.Out(CONSOLE_DATA, 'k')
	assert.Equal("ok", output.String())

	// Status writes are ignored.
	con.Out(CONSOLE_STATUS, 0xff)
	assert.Equal("ok", output.String())
}

func TestConsoleNil(t *testing.T) {
	assert := assert.New(t)

	// A console with no reader or writer is inert.
	con := &Console{}

	assert.Equal(CONSOLE_TX_READY, con.In(CONSOLE_STATUS))
	assert.Equal(uint8(0), con.In(CONSOLE_DATA))
	con.Out(CONSOLE_DATA, 'x')
}

func TestConsoleAttach(t *testing.T) {
	assert := assert.New(t)

	ports := &cpu.Ports{}
	con := &Console{Input: strings.NewReader("A")}
	con.Attach(ports)

	assert.Equal(CONSOLE_TX_READY|CONSOLE_RX_READY, ports.ReadPort(CONSOLE_STATUS))
	assert.Equal(uint8('A'), ports.ReadPort(CONSOLE_DATA))
}

func TestConsoleDefines(t *testing.T) {
	assert := assert.New(t)

	con := &Console{}

	defines := map[string]string{}
	for attr, value := range con.Defines() {
		defines[attr] = value
	}

	assert.Equal(fmt.Sprintf("%#v", CONSOLE_STATUS), defines["CONSOLE_STATUS"])
	assert.Equal(fmt.Sprintf("%#v", CONSOLE_DATA), defines["CONSOLE_DATA"])
}
