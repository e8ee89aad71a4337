package bus

import (
	"testing"

	"github.com/nesgo/nesgo/internal/input"
)

// fakePPU is a minimal PPU double. Tick just counts dots; the register
// methods and OAM sink are plain byte stores, enough to exercise the bus's
// own address decoding and DMA timing independent of real PPU behavior.
type fakePPU struct {
	dots      int
	oam       [256]uint8
	oamAddr   uint8
	regWrites map[uint16]uint8
	nmi       bool
	frame     bool
}

func newFakePPU() *fakePPU {
	return &fakePPU{regWrites: make(map[uint16]uint8)}
}

func (p *fakePPU) Tick()                                   { p.dots++ }
func (p *fakePPU) ReadRegister(reg uint16) uint8            { return p.regWrites[reg] }
func (p *fakePPU) WriteRegister(reg uint16, value uint8)    { p.regWrites[reg] = value }
func (p *fakePPU) WriteOAMByte(value uint8) {
	p.oam[p.oamAddr] = value
	p.oamAddr++
}
func (p *fakePPU) ConsumeNMI() bool   { v := p.nmi; p.nmi = false; return v }
func (p *fakePPU) ConsumeFrame() bool { v := p.frame; p.frame = false; return v }

func newTestBus() (*Bus, *fakePPU) {
	ppu := newFakePPU()
	b := New(nil, ppu, input.New())
	return b, ppu
}

func TestRAMMirroringAcrossEightKB(t *testing.T) {
	b, _ := newTestBus()
	b.Write(0x0001, 0x55)
	if v := b.Read(0x0801); v != 0x55 {
		t.Fatalf("Read($0801) = %#02x, want 0x55 (mirrors $0001)", v)
	}
	if v := b.Read(0x1001); v != 0x55 {
		t.Fatalf("Read($1001) = %#02x, want 0x55 (mirrors $0001)", v)
	}
}

func TestEveryAccessTicksThreeDots(t *testing.T) {
	b, ppu := newTestBus()
	b.Read(0x0000)
	if ppu.dots != 3 {
		t.Fatalf("dots = %d, want 3 per bus access", ppu.dots)
	}
}

func TestOAMDMACopies256BytesFromSelectedPage(t *testing.T) {
	b, ppu := newTestBus()
	for i := 0; i < 256; i++ {
		b.ram[i] = uint8(i ^ 0x3C)
	}
	b.Write(0x4014, 0x00) // page $00: $0000-$00FF, which is RAM
	for i := 0; i < 256; i++ {
		if ppu.oam[i] != uint8(i^0x3C) {
			t.Fatalf("oam[%d] = %#02x, want %#02x", i, ppu.oam[i], uint8(i^0x3C))
		}
	}
}

func TestOAMDMAEvenStartCosts513Cycles(t *testing.T) {
	b, ppu := newTestBus()
	before := ppu.dots
	b.cycles = 0 // force an even starting cycle
	b.oamDMA(0x02)
	cycles := (ppu.dots - before) / 3
	if cycles != 513 {
		t.Fatalf("cycles = %d, want 513", cycles)
	}
}

func TestOAMDMAOddStartCosts514Cycles(t *testing.T) {
	b, ppu := newTestBus()
	before := ppu.dots
	b.cycles = 1 // force an odd starting cycle
	b.oamDMA(0x02)
	cycles := (ppu.dots - before) / 3
	if cycles != 514 {
		t.Fatalf("cycles = %d, want 514", cycles)
	}
}

func TestControllerStrobeRoutesToPad1(t *testing.T) {
	b, _ := newTestBus()
	b.pad1.SetButtons(0x01) // A held
	b.Write(0x4016, 0x01)
	b.Write(0x4016, 0x00)
	if v := b.Read(0x4016) & 0x01; v != 0x01 {
		t.Fatalf("Read($4016) bit0 = %d, want 1 (A held)", v)
	}
}

func TestUnmodeledIOStubsReadZero(t *testing.T) {
	b, _ := newTestBus()
	if v := b.Read(0x4017); v != 0 {
		t.Fatalf("Read($4017) = %#02x, want 0 (APU frame counter stub)", v)
	}
	if v := b.Read(0x4015); v != 0 {
		t.Fatalf("Read($4015) = %#02x, want 0 (APU status stub)", v)
	}
}
