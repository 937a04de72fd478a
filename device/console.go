// Package device provides the peripherals behind the I/O port space:
// currently a byte-oriented console attached to a reader and writer pair.
package device

import (
	"fmt"
	"io"
	"iter"
	"maps"

	"github.com/ezrec/emu80/cpu"
)

const (
	CONSOLE_STATUS = uint8(0x10) // Console status port.
	CONSOLE_DATA   = uint8(0x11) // Console data port.
)

const (
	CONSOLE_RX_READY = uint8(0x01) // An input byte is available.
	CONSOLE_TX_READY = uint8(0x02) // Output can accept a byte.
)

var _console_defines = map[string]string{
	"CONSOLE_STATUS":   fmt.Sprintf("%#v", CONSOLE_STATUS),
	"CONSOLE_DATA":     fmt.Sprintf("%#v", CONSOLE_DATA),
	"CONSOLE_RX_READY": fmt.Sprintf("%#v", CONSOLE_RX_READY),
	"CONSOLE_TX_READY": fmt.Sprintf("%#v", CONSOLE_TX_READY),
}

// Console is a two-port serial console. The status port reports transmit
// and receive readiness; the data port reads received bytes and writes
// transmitted ones. Input is buffered one byte ahead, so the receive
// ready bit drops once the reader is exhausted.
type Console struct {
	Input  io.Reader // Received bytes, may be nil.
	Output io.Writer // Transmitted bytes, may be nil.

	pending  uint8
	hasInput bool
}

var _ cpu.Device = (*Console)(nil)

// Attach connects the console to its two ports.
func (con *Console) Attach(ports *cpu.Ports) {
	ports.Attach(CONSOLE_STATUS, con)
	ports.Attach(CONSOLE_DATA, con)
}

// Defines for the console.
func (con *Console) Defines() iter.Seq2[string, string] {
	return maps.All(_console_defines)
}

// poll tops up the one byte lookahead.
func (con *Console) poll() {
	if con.hasInput || con.Input == nil {
		return
	}

	var buf [1]uint8
	n, _ := con.Input.Read(buf[:])
	if n == 1 {
		con.pending = buf[0]
		con.hasInput = true
	}
}

func (con *Console) In(port uint8) (value uint8) {
	switch port {
	case CONSOLE_STATUS:
		con.poll()
		value = CONSOLE_TX_READY
		if con.hasInput {
			value |= CONSOLE_RX_READY
		}
	case CONSOLE_DATA:
		con.poll()
		if con.hasInput {
			value = con.pending
			con.hasInput = false
		}
	}

	return
}

func (con *Console) Out(port uint8, value uint8) {
	if port == CONSOLE_DATA && con.Output != nil {
		con.Output.Write([]byte{value})
	}
}
