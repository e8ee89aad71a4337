// Package ppu implements a cycle-accurate Ricoh 2C02 picture processing unit:
// the background/sprite fetch pipeline, the loopy v/t/x/w scroll registers,
// and the $2000-$2007 CPU-visible register file.
package ppu

import "github.com/nesgo/nesgo/internal/cartridge"

const (
	dotsPerScanline  = 341
	scanlinesPerFrame = 262
	visibleWidth     = 256
	visibleHeight    = 240

	// vblankNeverSet is the sentinel vblankSetAt starts at so a $2002 read
	// before the first vblank can never be mistaken for a race against it.
	vblankNeverSet int64 = -1 << 40

	// vblankRaceWindow bounds how many dots may separate a $2002 read from
	// the moment vblank was latched for the read to still be considered
	// racing the set: a CPU bus access advances the PPU three dots before
	// the register read resolves, so a set within that same three-dot
	// burst leaves a gap of at most 3.
	vblankRaceWindow int64 = 3
)

// Cartridge is the PPU's view of the loaded mapper for pattern-table and
// mirroring access.
type Cartridge interface {
	PPURead(addr uint16) uint8
	PPUWrite(addr uint16, value uint8)
	Mirroring() cartridge.Mirror
}

type spriteSlot struct {
	patternLo, patternHi uint8
	attr                 uint8
	x                    uint8
	isSprite0            bool
}

// PPU holds 2C02 register and pipeline state.
type PPU struct {
	cart Cartridge

	nametables [0x800]uint8
	paletteRAM [0x20]uint8
	oam        [0x100]uint8
	secondary  [0x20]uint8 // 8 sprites * 4 bytes

	// CPU-visible register latches.
	ctrl      uint8
	mask      uint8
	status    uint8
	oamAddr   uint8
	dataBuf   uint8
	openBus   uint8
	writeLatW bool

	// Loopy scroll registers.
	v, t uint16
	x    uint8

	scanline int
	dot      int
	frameOdd bool

	// totalDots counts every Tick call since Reset; vblankSetAt records its
	// value at the moment vblank was last latched, so a $2002 read can tell
	// whether it landed inside the same bus access that set the flag.
	totalDots   int64
	vblankSetAt int64

	// Background shifters.
	bgShiftLo, bgShiftHi     uint16
	bgAttrShiftLo, bgAttrShiftHi uint16
	nextTile, nextAttr       uint8
	nextPatternLo, nextPatternHi uint8

	spriteCount int
	sprites     [8]spriteSlot

	nmiOutput bool
	frameRdy  bool

	Framebuffer [visibleWidth * visibleHeight]RGB
}

// New creates a PPU bound to cart.
func New(cart Cartridge) *PPU {
	return &PPU{cart: cart}
}

// Reset returns the PPU to its post-power-up state.
func (p *PPU) Reset() {
	p.ctrl, p.mask, p.status = 0, 0, 0
	p.oamAddr = 0
	p.v, p.t, p.x = 0, 0, 0
	p.writeLatW = false
	p.scanline, p.dot = 0, 0
	p.frameOdd = false
	p.nmiOutput = false
	p.frameRdy = false
	p.totalDots = 0
	p.vblankSetAt = vblankNeverSet
}

// ConsumeNMI returns and clears the latched vblank NMI edge.
func (p *PPU) ConsumeNMI() bool {
	v := p.nmiOutput
	p.nmiOutput = false
	return v
}

// ConsumeFrame returns and clears the frame-ready flag set at the start of
// vertical blank.
func (p *PPU) ConsumeFrame() bool {
	v := p.frameRdy
	p.frameRdy = false
	return v
}

func (p *PPU) renderingEnabled() bool {
	return p.mask&0x18 != 0
}

// Tick advances the PPU by exactly one dot. Bus implementations call this
// three times per CPU bus access.
func (p *PPU) Tick() {
	p.runCycle()
	p.totalDots++
	p.dot++
	if p.dot > 340 {
		p.dot = 0
		p.scanline++
		if p.scanline > 261 {
			p.scanline = 0
			p.frameOdd = !p.frameOdd
		}
	}
	// Odd-frame short pre-render scanline: dots 0-339 run normally and only
	// dot 340 is skipped, collapsing the scanline to 340 dots total.
	if p.scanline == 261 && p.dot == 340 && p.frameOdd && p.renderingEnabled() {
		p.dot = 0
		p.scanline = 0
		p.frameOdd = !p.frameOdd
	}
}

func (p *PPU) runCycle() {
	switch {
	case p.scanline >= 0 && p.scanline <= 239:
		p.visibleOrPrerenderCycle(false)
	case p.scanline == 241 && p.dot == 1:
		p.status |= 0x80
		p.frameRdy = true
		p.vblankSetAt = p.totalDots
		if p.ctrl&0x80 != 0 {
			p.nmiOutput = true
		}
	case p.scanline == 261:
		if p.dot == 1 {
			p.status &^= 0xE0
		}
		p.visibleOrPrerenderCycle(true)
	}
}

// vblankRace reports whether vblank was latched within the current bus
// access's own three-dot tick burst, the race window for the
// read-$2002-suppresses-NMI quirk.
func (p *PPU) vblankRace() bool {
	return p.totalDots-p.vblankSetAt <= vblankRaceWindow
}

func (p *PPU) visibleOrPrerenderCycle(prerender bool) {
	if !p.renderingEnabled() {
		return
	}
	d := p.dot

	if (d >= 1 && d <= 256) || (d >= 321 && d <= 336) {
		p.shiftBackground()
		switch d % 8 {
		case 1:
			p.loadBackgroundShifters()
			p.nextTile = p.cart.PPURead(0x2000 | (p.v & 0x0FFF))
		case 3:
			attrAddr := 0x23C0 | (p.v & 0x0C00) | ((p.v >> 4) & 0x38) | ((p.v >> 2) & 0x07)
			attr := p.cart.PPURead(attrAddr)
			shift := ((p.v >> 4) & 4) | (p.v & 2)
			p.nextAttr = (attr >> shift) & 0x03
		case 5:
			fineY := (p.v >> 12) & 0x07
			base := p.bgPatternBase()
			p.nextPatternLo = p.cart.PPURead(base | (uint16(p.nextTile) << 4) | fineY)
		case 7:
			fineY := (p.v >> 12) & 0x07
			base := p.bgPatternBase()
			p.nextPatternHi = p.cart.PPURead(base | (uint16(p.nextTile) << 4) | fineY | 0x08)
		case 0:
			p.incrementCoarseX()
		}
	}

	if d == 256 {
		p.incrementFineY()
	}
	if d == 257 {
		p.copyHorizontalBits()
		p.evaluateSprites()
	}
	if prerender && d >= 280 && d <= 304 {
		p.copyVerticalBits()
	}
	if d >= 257 && d <= 320 {
		p.loadSprites(d)
	}
	if d == 1 && prerender {
		p.secondaryOAMClear()
	}
	if d >= 1 && d <= 64 {
		p.secondary[(d-1)%32] = 0xFF
	}

	if !prerender && d >= 1 && d <= 256 {
		p.renderPixel(d - 1)
	}
}

func (p *PPU) bgPatternBase() uint16 {
	if p.ctrl&0x10 != 0 {
		return 0x1000
	}
	return 0x0000
}

func (p *PPU) secondaryOAMClear() {
	for i := range p.secondary {
		p.secondary[i] = 0xFF
	}
}

func (p *PPU) loadBackgroundShifters() {
	p.bgShiftLo = (p.bgShiftLo &^ 0x00FF) | uint16(p.nextPatternLo)
	p.bgShiftHi = (p.bgShiftHi &^ 0x00FF) | uint16(p.nextPatternHi)
	lo, hi := uint16(0), uint16(0)
	if p.nextAttr&0x01 != 0 {
		lo = 0x00FF
	}
	if p.nextAttr&0x02 != 0 {
		hi = 0x00FF
	}
	p.bgAttrShiftLo = (p.bgAttrShiftLo &^ 0x00FF) | lo
	p.bgAttrShiftHi = (p.bgAttrShiftHi &^ 0x00FF) | hi
}

func (p *PPU) shiftBackground() {
	p.bgShiftLo <<= 1
	p.bgShiftHi <<= 1
	p.bgAttrShiftLo <<= 1
	p.bgAttrShiftHi <<= 1
}

func (p *PPU) incrementCoarseX() {
	if p.v&0x001F == 31 {
		p.v &^= 0x001F
		p.v ^= 0x0400
	} else {
		p.v++
	}
}

func (p *PPU) incrementFineY() {
	if p.v&0x7000 != 0x7000 {
		p.v += 0x1000
		return
	}
	p.v &^= 0x7000
	y := (p.v & 0x03E0) >> 5
	switch y {
	case 29:
		y = 0
		p.v ^= 0x0800
	case 31:
		y = 0
	default:
		y++
	}
	p.v = (p.v &^ 0x03E0) | (y << 5)
}

func (p *PPU) copyHorizontalBits() {
	p.v = (p.v &^ 0x041F) | (p.t & 0x041F)
}

func (p *PPU) copyVerticalBits() {
	p.v = (p.v &^ 0x7BE0) | (p.t & 0x7BE0)
}

func (p *PPU) evaluateSprites() {
	height := 8
	if p.ctrl&0x20 != 0 {
		height = 16
	}
	count := 0
	overflow := false
	for i := 0; i < 64 && count < 9; i++ {
		y := int(p.oam[i*4])
		row := p.scanline - y
		if row < 0 || row >= height {
			continue
		}
		if count < 8 {
			copy(p.secondary[count*4:count*4+4], p.oam[i*4:i*4+4])
		} else {
			overflow = true
		}
		count++
	}
	if count > 8 {
		count = 8
	}
	p.spriteCount = count
	if overflow {
		p.status |= 0x20
	}
}

func (p *PPU) loadSprites(d int) {
	slot := (d - 257) / 8
	phase := (d - 257) % 8
	if slot >= 8 || phase != 7 {
		return
	}
	height := 8
	if p.ctrl&0x20 != 0 {
		height = 16
	}
	if slot >= p.spriteCount {
		p.sprites[slot] = spriteSlot{}
		return
	}
	y := p.secondary[slot*4]
	tile := p.secondary[slot*4+1]
	attr := p.secondary[slot*4+2]
	x := p.secondary[slot*4+3]

	row := p.scanline - int(y)
	if attr&0x80 != 0 {
		row = height - 1 - row
	}

	var base uint16
	var patternTile uint16
	if height == 16 {
		base = uint16(tile&0x01) * 0x1000
		patternTile = uint16(tile &^ 0x01)
		if row >= 8 {
			patternTile++
			row -= 8
		}
	} else {
		if p.ctrl&0x08 != 0 {
			base = 0x1000
		}
		patternTile = uint16(tile)
	}

	addr := base | (patternTile << 4) | uint16(row)
	lo := p.cart.PPURead(addr)
	hi := p.cart.PPURead(addr | 0x08)
	if attr&0x40 != 0 {
		lo = reverseBits(lo)
		hi = reverseBits(hi)
	}
	p.sprites[slot] = spriteSlot{
		patternLo: lo,
		patternHi: hi,
		attr:      attr,
		x:         x,
		isSprite0: slot == 0 && p.spriteCount > 0 && p.secondary[0] == p.oam[0] && p.secondary[1] == p.oam[1],
	}
}

func reverseBits(v uint8) uint8 {
	var r uint8
	for i := 0; i < 8; i++ {
		r = (r << 1) | (v & 1)
		v >>= 1
	}
	return r
}

func (p *PPU) renderPixel(x int) {
	bgPixel, bgPalette := p.backgroundPixel()
	sprPixel, sprPalette, sprPriority, sprite0 := p.spritePixel(x)

	leftClipBG := x < 8 && p.mask&0x02 == 0
	leftClipSPR := x < 8 && p.mask&0x04 == 0
	if p.mask&0x08 == 0 || leftClipBG {
		bgPixel = 0
	}
	if p.mask&0x10 == 0 || leftClipSPR {
		sprPixel = 0
	}

	var paletteIndex uint8
	switch {
	case bgPixel == 0 && sprPixel == 0:
		paletteIndex = 0
	case bgPixel == 0:
		paletteIndex = 0x10 + sprPalette*4 + sprPixel
	case sprPixel == 0:
		paletteIndex = bgPalette*4 + bgPixel
	default:
		if sprite0 && x != 255 {
			p.status |= 0x40
		}
		if sprPriority {
			paletteIndex = bgPalette*4 + bgPixel
		} else {
			paletteIndex = 0x10 + sprPalette*4 + sprPixel
		}
	}

	color := p.readPalette(paletteIndex)
	if p.scanline >= 0 && p.scanline < visibleHeight {
		p.Framebuffer[p.scanline*visibleWidth+x] = ColorFor(color)
	}
}

func (p *PPU) backgroundPixel() (uint8, uint8) {
	mux := uint16(0x8000) >> p.x
	lo := uint8(0)
	hi := uint8(0)
	if p.bgShiftLo&mux != 0 {
		lo = 1
	}
	if p.bgShiftHi&mux != 0 {
		hi = 1
	}
	pixel := (hi << 1) | lo

	alo := uint8(0)
	ahi := uint8(0)
	if p.bgAttrShiftLo&mux != 0 {
		alo = 1
	}
	if p.bgAttrShiftHi&mux != 0 {
		ahi = 1
	}
	palette := (ahi << 1) | alo
	return pixel, palette
}

func (p *PPU) spritePixel(x int) (pixel uint8, palette uint8, priority bool, sprite0 bool) {
	for i := 0; i < p.spriteCount; i++ {
		s := p.sprites[i]
		offset := x - int(s.x)
		if offset < 0 || offset > 7 {
			continue
		}
		bit := uint(7 - offset)
		lo := (s.patternLo >> bit) & 1
		hi := (s.patternHi >> bit) & 1
		px := (hi << 1) | lo
		if px == 0 {
			continue
		}
		return px, s.attr & 0x03, s.attr&0x20 != 0, s.isSprite0
	}
	return 0, 0, false, false
}

func (p *PPU) readPalette(index uint8) uint8 {
	addr := index & 0x1F
	if addr&0x13 == 0x10 {
		addr &^= 0x10
	}
	return p.paletteRAM[addr] & 0x3F
}

// --- CPU-visible register file ($2000-$2007) --------------------------------

// ReadRegister services a CPU read at $2000+(addr&7).
func (p *PPU) ReadRegister(reg uint16) uint8 {
	switch reg & 7 {
	case 2:
		status := p.status & 0xE0
		if p.vblankRace() {
			// Reading $2002 in the same tick burst that sets vblank reads
			// the flag back as 0 and suppresses the NMI for this frame.
			status &^= 0x80
			p.nmiOutput = false
		}
		v := status | (p.openBus & 0x1F)
		p.status &^= 0x80
		p.writeLatW = false
		p.openBus = v
		return v
	case 4:
		v := p.oam[p.oamAddr]
		p.openBus = v
		return v
	case 7:
		v := p.readData()
		p.openBus = v
		return v
	default:
		return p.openBus
	}
}

// WriteRegister services a CPU write at $2000+(addr&7).
func (p *PPU) WriteRegister(reg uint16, value uint8) {
	p.openBus = value
	switch reg & 7 {
	case 0:
		p.ctrl = value
		p.t = (p.t &^ 0x0C00) | (uint16(value&0x03) << 10)
	case 1:
		p.mask = value
	case 3:
		p.oamAddr = value
	case 4:
		p.oam[p.oamAddr] = value
		p.oamAddr++
	case 5:
		if !p.writeLatW {
			p.t = (p.t &^ 0x001F) | uint16(value>>3)
			p.x = value & 0x07
		} else {
			p.t = (p.t &^ 0x73E0) | (uint16(value&0x07) << 12) | (uint16(value&0xF8) << 2)
		}
		p.writeLatW = !p.writeLatW
	case 6:
		if !p.writeLatW {
			p.t = (p.t &^ 0x7F00) | (uint16(value&0x3F) << 8)
		} else {
			p.t = (p.t &^ 0x00FF) | uint16(value)
			p.v = p.t
		}
		p.writeLatW = !p.writeLatW
	case 7:
		p.writeData(value)
	}
}

func (p *PPU) vramStep() uint16 {
	if p.ctrl&0x04 != 0 {
		return 32
	}
	return 1
}

func (p *PPU) readData() uint8 {
	addr := p.v & 0x3FFF
	var result uint8
	if addr >= 0x3F00 {
		result = p.readPalette(uint8(addr))
		p.dataBuf = p.readVRAM(addr - 0x1000)
	} else {
		result = p.dataBuf
		p.dataBuf = p.readVRAM(addr)
	}
	p.v += p.vramStep()
	return result
}

func (p *PPU) writeData(value uint8) {
	addr := p.v & 0x3FFF
	if addr >= 0x3F00 {
		a := addr & 0x1F
		if a&0x13 == 0x10 {
			a &^= 0x10
		}
		p.paletteRAM[a] = value
	} else {
		p.writeVRAM(addr, value)
	}
	p.v += p.vramStep()
}

func (p *PPU) readVRAM(addr uint16) uint8 {
	if addr < 0x2000 {
		return p.cart.PPURead(addr)
	}
	return p.nametables[p.mirrorNametable(addr)]
}

func (p *PPU) writeVRAM(addr uint16, value uint8) {
	if addr < 0x2000 {
		p.cart.PPUWrite(addr, value)
		return
	}
	p.nametables[p.mirrorNametable(addr)] = value
}

// mirrorNametable maps a $2000-$3EFF address down to one of the two 1KB
// physical nametable pages per the cartridge's mirroring mode.
func (p *PPU) mirrorNametable(addr uint16) uint16 {
	a := (addr - 0x2000) % 0x1000
	table := a / 0x0400
	offset := a % 0x0400

	var page uint16
	switch p.cart.Mirroring() {
	case cartridge.MirrorVertical:
		page = uint16(table % 2)
	case cartridge.MirrorHorizontal:
		page = uint16(table / 2)
	case cartridge.MirrorSingleScreen0:
		page = 0
	case cartridge.MirrorSingleScreen1:
		page = 1
	default: // four-screen: not backed by extra VRAM here, fold to two pages
		page = uint16(table % 2)
	}
	return page*0x0400 + offset
}

// WriteOAMByte is used by OAM DMA to store a byte directly at the current
// OAMADDR, post-incrementing it, bypassing the $2004 register semantics.
func (p *PPU) WriteOAMByte(value uint8) {
	p.oam[p.oamAddr] = value
	p.oamAddr++
}
