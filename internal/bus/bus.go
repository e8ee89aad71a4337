// Package bus wires the CPU, PPU, cartridge mapper, and controller together
// into the console's single shared address space, and is the sole place
// where CPU time turns into PPU dots: every Read, Write, or Tick advances
// the PPU by three dots before returning.
package bus

import (
	"github.com/nesgo/nesgo/internal/cartridge"
	"github.com/nesgo/nesgo/internal/cpu"
	"github.com/nesgo/nesgo/internal/input"
)

// PPU is the subset of *ppu.PPU the bus drives directly.
type PPU interface {
	Tick()
	ReadRegister(reg uint16) uint8
	WriteRegister(reg uint16, value uint8)
	WriteOAMByte(value uint8)
	ConsumeNMI() bool
	ConsumeFrame() bool
}

// Bus is the NES memory bus: 2KB CPU RAM, the PPU register window, the
// controller port, OAM DMA, and the cartridge mapper beyond $4020.
type Bus struct {
	ram [0x0800]uint8

	ppu  PPU
	cart *cartridge.Cartridge
	pad1 *input.Controller
	cpu  *cpu.CPU

	cycles uint64
}

// New constructs a Bus. SetCPU must be called once the CPU exists, since the
// CPU and bus reference each other.
func New(cart *cartridge.Cartridge, p PPU, pad1 *input.Controller) *Bus {
	return &Bus{cart: cart, ppu: p, pad1: pad1}
}

// SetCPU completes the CPU<->Bus wiring so Step can deliver NMIs to the CPU
// and run its instructions. OAM DMA parity uses the bus's own cycle count.
func (b *Bus) SetCPU(c *cpu.CPU) {
	b.cpu = c
}

// Tick advances the PPU by three dots; used for bus accesses that don't
// correspond to a specific address (internal CPU cycles).
func (b *Bus) Tick() {
	b.ppu.Tick()
	b.ppu.Tick()
	b.ppu.Tick()
	b.cycles++
}

// Read services a CPU bus read, ticking the PPU before resolving the value.
func (b *Bus) Read(addr uint16) uint8 {
	b.Tick()
	return b.readNoTick(addr)
}

func (b *Bus) readNoTick(addr uint16) uint8 {
	switch {
	case addr < 0x2000:
		return b.ram[addr&0x07FF]
	case addr < 0x4000:
		return b.ppu.ReadRegister(0x2000 + (addr & 7))
	case addr == 0x4016:
		return b.pad1.Read()
	case addr < 0x4020:
		// $4017 (APU frame counter) and the rest of the unmodeled I/O range
		// read as zero; this core has one controller port.
		return 0
	default:
		return b.cart.Mapper.CPURead(addr)
	}
}

// Write services a CPU bus write, ticking the PPU before applying the value.
func (b *Bus) Write(addr uint16, value uint8) {
	b.Tick()
	switch {
	case addr < 0x2000:
		b.ram[addr&0x07FF] = value
	case addr < 0x4000:
		b.ppu.WriteRegister(0x2000+(addr&7), value)
	case addr == 0x4014:
		b.oamDMA(value)
	case addr == 0x4016:
		b.pad1.Write(value)
	case addr < 0x4020:
		// APU and remaining I/O registers: modeled as a stub.
	default:
		b.cart.Mapper.CPUWrite(addr, value)
	}
}

// oamDMA performs the 513/514-cycle OAM DMA transfer triggered by a write to
// $4014: one alignment idle cycle (two if the transfer starts on an odd CPU
// cycle), then 256 read/write pairs copying $HH00-$HHFF into PPU OAM.
func (b *Bus) oamDMA(page uint8) {
	if b.cycles%2 == 1 {
		b.Tick()
	}
	b.Tick()
	base := uint16(page) << 8
	for i := 0; i < 256; i++ {
		value := b.Read(base + uint16(i))
		b.ppu.WriteOAMByte(value)
		b.Tick()
	}
}

// ConsumeNMI and ConsumeFrame let the driver poll the PPU's edge-triggered
// signals without reaching into the PPU directly.
func (b *Bus) ConsumeNMI() bool   { return b.ppu.ConsumeNMI() }
func (b *Bus) ConsumeFrame() bool { return b.ppu.ConsumeFrame() }

// Step runs the driver contract for a single instruction: service any
// pending NMI, then execute one CPU instruction.
func (b *Bus) Step() {
	if b.ConsumeNMI() {
		b.cpu.RaiseNMI()
	}
	b.cpu.ServiceInterrupts()
	b.cpu.Step()
}
