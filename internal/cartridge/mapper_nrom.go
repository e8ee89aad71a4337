package cartridge

// nrom implements mapper 0: PRG fixed at $8000-$FFFF (mirrored if only one
// 16KB bank), an optional 8KB PRG-RAM window at $6000-$7FFF, and CHR-ROM or
// CHR-RAM with no banking.
type nrom struct {
	rom    *ROM
	prgRAM [0x2000]uint8
	chrRAM []uint8
}

func newNROM(rom *ROM) *nrom {
	m := &nrom{rom: rom}
	if rom.hasCHRRAM() {
		m.chrRAM = make([]uint8, chrBankSize)
	}
	return m
}

func (m *nrom) CPUInRange(addr uint16) bool {
	return addr >= 0x6000
}

func (m *nrom) CPURead(addr uint16) uint8 {
	switch {
	case addr >= 0x8000:
		off := int(addr - 0x8000)
		if len(m.rom.PRG) == prgBankSize {
			off %= prgBankSize
		}
		if off < len(m.rom.PRG) {
			return m.rom.PRG[off]
		}
		return 0xFF
	case addr >= 0x6000:
		return m.prgRAM[addr-0x6000]
	default:
		return 0xFF
	}
}

func (m *nrom) CPUWrite(addr uint16, value uint8) {
	if addr >= 0x6000 && addr < 0x8000 {
		m.prgRAM[addr-0x6000] = value
	}
	// Writes into the PRG ROM window are not wired to anything on NROM.
}

func (m *nrom) PPURead(addr uint16) uint8 {
	if m.chrRAM != nil {
		return m.chrRAM[addr&0x1FFF]
	}
	if int(addr) < len(m.rom.CHR) {
		return m.rom.CHR[addr]
	}
	return 0
}

func (m *nrom) PPUWrite(addr uint16, value uint8) {
	if m.chrRAM != nil {
		m.chrRAM[addr&0x1FFF] = value
	}
}

func (m *nrom) Mirroring() Mirror {
	return m.rom.Mirror
}
