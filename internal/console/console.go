// Package console assembles the CPU, PPU, cartridge, and controller into a
// runnable machine and implements the thin per-frame driver contract.
package console

import (
	"github.com/nesgo/nesgo/internal/bus"
	"github.com/nesgo/nesgo/internal/cartridge"
	"github.com/nesgo/nesgo/internal/cpu"
	"github.com/nesgo/nesgo/internal/input"
	"github.com/nesgo/nesgo/internal/ppu"
)

// Console owns every subsystem needed to run one loaded cartridge.
type Console struct {
	Bus  *bus.Bus
	CPU  *cpu.CPU
	PPU  *ppu.PPU
	Cart *cartridge.Cartridge
	Pad1 *input.Controller
}

// Load reads a ROM from path and wires up a ready-to-run Console.
func Load(path string) (*Console, error) {
	rom, err := cartridge.LoadFile(path)
	if err != nil {
		return nil, err
	}
	cart, err := cartridge.New(rom)
	if err != nil {
		return nil, err
	}
	return New(cart), nil
}

// New wires a Console around an already-loaded cartridge.
func New(cart *cartridge.Cartridge) *Console {
	p := ppu.New(cart.Mapper)
	pad1 := input.New()
	b := bus.New(cart, p, pad1)
	c := cpu.New(b)
	b.SetCPU(c)

	console := &Console{Bus: b, CPU: c, PPU: p, Cart: cart, Pad1: pad1}
	console.PPU.Reset()
	console.CPU.Reset()
	return console
}

// RunFrame advances the console until a frame becomes ready, honoring the
// driver contract: check NMI, step one instruction, check frame-ready.
func (c *Console) RunFrame() {
	for {
		c.Bus.Step()
		if c.Bus.ConsumeFrame() {
			return
		}
	}
}

// SetButtons updates player 1's controller state for the next latch.
func (c *Console) SetButtons(buttons uint8) {
	c.Pad1.SetButtons(buttons)
}

// Framebuffer exposes the PPU's most recently completed frame.
func (c *Console) Framebuffer() *[256 * 240]ppu.RGB {
	return &c.PPU.Framebuffer
}
