package cpu

// MemoryBus is the 64KB byte-addressable space the executor fetches from
// and operates on. Implementations perform no validation beyond masking
// the address to 16 bits, which uint16 does by construction; out-of-range
// addresses do not exist.
type MemoryBus interface {
	ReadByte(addr uint16) uint8
	WriteByte(addr uint16, value uint8)
}

// PortBus is the 256-port I/O space driven by the IN and OUT instructions.
type PortBus interface {
	ReadPort(port uint8) uint8
	WritePort(port uint8, value uint8)
}

// ReadWord reads a little-endian 16-bit word. The second byte wraps
// around the top of memory, never past it.
func ReadWord(bus MemoryBus, addr uint16) (value uint16) {
	value = uint16(bus.ReadByte(addr)) | uint16(bus.ReadByte(addr+1))<<8

	return
}

// WriteWord writes a little-endian 16-bit word.
func WriteWord(bus MemoryBus, addr uint16, value uint16) {
	bus.WriteByte(addr, uint8(value))
	bus.WriteByte(addr+1, uint8(value>>8))
}

// Memory is the reference MemoryBus: 65536 independently addressable bytes.
type Memory struct {
	Data [65536]uint8
}

var _ MemoryBus = (*Memory)(nil)

func (mem *Memory) ReadByte(addr uint16) uint8 {
	return mem.Data[addr]
}

func (mem *Memory) WriteByte(addr uint16, value uint8) {
	mem.Data[addr] = value
}

// Reset clears all of memory.
func (mem *Memory) Reset() {
	clear(mem.Data[:])
}

// Device is a peripheral visible through one or more I/O ports. The port
// number is passed through so one device can serve several ports.
type Device interface {
	In(port uint8) (value uint8)
	Out(port uint8, value uint8)
}

// Ports is the reference PortBus: a device per port. Unattached ports
// read as 0xff (the open bus floats high) and drop writes; this is the
// single place that default is decided.
type Ports struct {
	device [256]Device
}

var _ PortBus = (*Ports)(nil)

// Attach connects a device to a port. A nil device detaches the port.
func (po *Ports) Attach(port uint8, dev Device) {
	po.device[port] = dev
}

func (po *Ports) ReadPort(port uint8) (value uint8) {
	value = 0xff
	if dev := po.device[port]; dev != nil {
		value = dev.In(port)
	}

	return
}

func (po *Ports) WritePort(port uint8, value uint8) {
	if dev := po.device[port]; dev != nil {
		dev.Out(port, value)
	}
}
