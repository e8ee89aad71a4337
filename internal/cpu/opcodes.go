package cpu

// addrMode names how an instruction's operand address is computed. relative
// and accumulator/implied opcodes bypass resolveAddress entirely since their
// cycle shape doesn't fit the generic "fetch bytes, maybe dummy-read" pattern.
type addrMode int

const (
	modeImplied addrMode = iota
	modeAccumulator
	modeImmediate
	modeZeroPage
	modeZeroPageX
	modeZeroPageY
	modeAbsolute
	modeAbsoluteX
	modeAbsoluteY
	modeIndirect
	modeIndexedIndirect // (zp,X)
	modeIndirectIndexed // (zp),Y
	modeRelative
)

type opcodeEntry struct {
	exec func(c *CPU, mode addrMode)
	mode addrMode
}

// resolveAddress fetches the operand bytes for mode and returns the
// effective address, issuing exactly the bus accesses real hardware would:
// one internal tick for zero-page indexing, and a dummy read at the
// wrong (uncarried) address whenever indexing crosses a page -- or always,
// when alwaysDummy is set by the caller for store/read-modify-write opcodes.
func (c *CPU) resolveAddress(mode addrMode, alwaysDummy bool) uint16 {
	switch mode {
	case modeImmediate:
		addr := c.PC
		c.PC++
		return addr
	case modeZeroPage:
		return uint16(c.fetch())
	case modeZeroPageX:
		base := c.fetch()
		c.bus.Tick()
		return uint16(base + c.X)
	case modeZeroPageY:
		base := c.fetch()
		c.bus.Tick()
		return uint16(base + c.Y)
	case modeAbsolute:
		lo := c.fetch()
		hi := c.fetch()
		return uint16(hi)<<8 | uint16(lo)
	case modeAbsoluteX:
		return c.resolveIndexed(c.X, alwaysDummy)
	case modeAbsoluteY:
		return c.resolveIndexed(c.Y, alwaysDummy)
	case modeIndexedIndirect:
		base := c.fetch()
		c.bus.Tick()
		ptr := base + c.X
		lo := c.bus.Read(uint16(ptr))
		hi := c.bus.Read(uint16(uint8(ptr + 1)))
		return uint16(hi)<<8 | uint16(lo)
	case modeIndirectIndexed:
		ptr := c.fetch()
		lo := c.bus.Read(uint16(ptr))
		hi := c.bus.Read(uint16(uint8(ptr + 1)))
		base := uint16(hi)<<8 | uint16(lo)
		addr := base + uint16(c.Y)
		crossed := base&0xFF00 != addr&0xFF00
		if crossed || alwaysDummy {
			wrong := (base & 0xFF00) | (addr & 0x00FF)
			c.bus.Read(wrong)
		}
		return addr
	default:
		return 0
	}
}

func (c *CPU) resolveIndexed(index uint8, alwaysDummy bool) uint16 {
	lo := c.fetch()
	hi := c.fetch()
	base := uint16(hi)<<8 | uint16(lo)
	addr := base + uint16(index)
	crossed := base&0xFF00 != addr&0xFF00
	if crossed || alwaysDummy {
		wrong := (base & 0xFF00) | (addr & 0x00FF)
		c.bus.Read(wrong)
	}
	return addr
}

// --- read-class instructions: LDA/ORA/AND/... -----------------------------

func execRead(c *CPU, mode addrMode, apply func(c *CPU, v uint8)) {
	addr := c.resolveAddress(mode, false)
	apply(c, c.bus.Read(addr))
}

func execLDA(c *CPU, mode addrMode) {
	execRead(c, mode, func(c *CPU, v uint8) { c.A = v; c.setZN(v) })
}
func execLDX(c *CPU, mode addrMode) {
	execRead(c, mode, func(c *CPU, v uint8) { c.X = v; c.setZN(v) })
}
func execLDY(c *CPU, mode addrMode) {
	execRead(c, mode, func(c *CPU, v uint8) { c.Y = v; c.setZN(v) })
}
func execORA(c *CPU, mode addrMode) {
	execRead(c, mode, func(c *CPU, v uint8) { c.A |= v; c.setZN(c.A) })
}
func execAND(c *CPU, mode addrMode) {
	execRead(c, mode, func(c *CPU, v uint8) { c.A &= v; c.setZN(c.A) })
}
func execEOR(c *CPU, mode addrMode) {
	execRead(c, mode, func(c *CPU, v uint8) { c.A ^= v; c.setZN(c.A) })
}
func execADC(c *CPU, mode addrMode) {
	execRead(c, mode, func(c *CPU, v uint8) { c.addWithCarry(v) })
}
func execSBC(c *CPU, mode addrMode) {
	execRead(c, mode, func(c *CPU, v uint8) { c.addWithCarry(v ^ 0xFF) })
}
func execCMP(c *CPU, mode addrMode) {
	execRead(c, mode, func(c *CPU, v uint8) { c.compare(c.A, v) })
}
func execCPX(c *CPU, mode addrMode) {
	execRead(c, mode, func(c *CPU, v uint8) { c.compare(c.X, v) })
}
func execCPY(c *CPU, mode addrMode) {
	execRead(c, mode, func(c *CPU, v uint8) { c.compare(c.Y, v) })
}
func execBIT(c *CPU, mode addrMode) {
	execRead(c, mode, func(c *CPU, v uint8) {
		c.Z = c.A&v == 0
		c.V = v&0x40 != 0
		c.N = v&0x80 != 0
	})
}
func execLAX(c *CPU, mode addrMode) {
	execRead(c, mode, func(c *CPU, v uint8) { c.A, c.X = v, v; c.setZN(v) })
}
func execNOPRead(c *CPU, mode addrMode) {
	execRead(c, mode, func(c *CPU, v uint8) {})
}

func (c *CPU) addWithCarry(v uint8) {
	carry := uint16(0)
	if c.C {
		carry = 1
	}
	sum := uint16(c.A) + uint16(v) + carry
	result := uint8(sum)
	c.V = (c.A^result)&(v^result)&0x80 != 0
	c.C = sum > 0xFF
	c.A = result
	c.setZN(c.A)
}

func (c *CPU) compare(reg, v uint8) {
	c.C = reg >= v
	c.setZN(reg - v)
}

// --- store-class: STA/STX/STY/SAX ------------------------------------------

func execSTA(c *CPU, mode addrMode) {
	addr := c.resolveAddress(mode, true)
	c.bus.Write(addr, c.A)
}
func execSTX(c *CPU, mode addrMode) {
	addr := c.resolveAddress(mode, true)
	c.bus.Write(addr, c.X)
}
func execSTY(c *CPU, mode addrMode) {
	addr := c.resolveAddress(mode, true)
	c.bus.Write(addr, c.Y)
}
func execSAX(c *CPU, mode addrMode) {
	addr := c.resolveAddress(mode, true)
	c.bus.Write(addr, c.A&c.X)
}

// --- read-modify-write: ASL/LSR/ROL/ROR/INC/DEC and illegal RMWs -----------

func execRMW(c *CPU, mode addrMode, op func(c *CPU, v uint8) uint8) {
	if mode == modeAccumulator {
		c.bus.Tick()
		c.A = op(c, c.A)
		return
	}
	addr := c.resolveAddress(mode, true)
	old := c.bus.Read(addr)
	c.bus.Write(addr, old) // dummy write of the unmodified value
	result := op(c, old)
	c.bus.Write(addr, result)
}

func execASL(c *CPU, mode addrMode) {
	execRMW(c, mode, func(c *CPU, v uint8) uint8 {
		c.C = v&0x80 != 0
		r := v << 1
		c.setZN(r)
		return r
	})
}
func execLSR(c *CPU, mode addrMode) {
	execRMW(c, mode, func(c *CPU, v uint8) uint8 {
		c.C = v&0x01 != 0
		r := v >> 1
		c.setZN(r)
		return r
	})
}
func execROL(c *CPU, mode addrMode) {
	execRMW(c, mode, func(c *CPU, v uint8) uint8 {
		carryIn := uint8(0)
		if c.C {
			carryIn = 1
		}
		c.C = v&0x80 != 0
		r := (v << 1) | carryIn
		c.setZN(r)
		return r
	})
}
func execROR(c *CPU, mode addrMode) {
	execRMW(c, mode, func(c *CPU, v uint8) uint8 {
		carryIn := uint8(0)
		if c.C {
			carryIn = 0x80
		}
		c.C = v&0x01 != 0
		r := (v >> 1) | carryIn
		c.setZN(r)
		return r
	})
}
func execINC(c *CPU, mode addrMode) {
	execRMW(c, mode, func(c *CPU, v uint8) uint8 { r := v + 1; c.setZN(r); return r })
}
func execDEC(c *CPU, mode addrMode) {
	execRMW(c, mode, func(c *CPU, v uint8) uint8 { r := v - 1; c.setZN(r); return r })
}
func execSLO(c *CPU, mode addrMode) {
	execRMW(c, mode, func(c *CPU, v uint8) uint8 {
		c.C = v&0x80 != 0
		r := v << 1
		c.A |= r
		c.setZN(c.A)
		return r
	})
}
func execRLA(c *CPU, mode addrMode) {
	execRMW(c, mode, func(c *CPU, v uint8) uint8 {
		carryIn := uint8(0)
		if c.C {
			carryIn = 1
		}
		c.C = v&0x80 != 0
		r := (v << 1) | carryIn
		c.A &= r
		c.setZN(c.A)
		return r
	})
}
func execSRE(c *CPU, mode addrMode) {
	execRMW(c, mode, func(c *CPU, v uint8) uint8 {
		c.C = v&0x01 != 0
		r := v >> 1
		c.A ^= r
		c.setZN(c.A)
		return r
	})
}
func execRRA(c *CPU, mode addrMode) {
	execRMW(c, mode, func(c *CPU, v uint8) uint8 {
		carryIn := uint8(0)
		if c.C {
			carryIn = 0x80
		}
		c.C = v&0x01 != 0
		r := (v >> 1) | carryIn
		c.addWithCarry(r)
		return r
	})
}
func execDCP(c *CPU, mode addrMode) {
	execRMW(c, mode, func(c *CPU, v uint8) uint8 {
		r := v - 1
		c.compare(c.A, r)
		return r
	})
}
func execISC(c *CPU, mode addrMode) {
	execRMW(c, mode, func(c *CPU, v uint8) uint8 {
		r := v + 1
		c.addWithCarry(r ^ 0xFF)
		return r
	})
}

// --- implied / register ops -------------------------------------------------

func execImplied(f func(c *CPU)) func(c *CPU, mode addrMode) {
	return func(c *CPU, mode addrMode) {
		c.bus.Tick()
		f(c)
	}
}

var (
	execTAX = execImplied(func(c *CPU) { c.X = c.A; c.setZN(c.X) })
	execTAY = execImplied(func(c *CPU) { c.Y = c.A; c.setZN(c.Y) })
	execTXA = execImplied(func(c *CPU) { c.A = c.X; c.setZN(c.A) })
	execTYA = execImplied(func(c *CPU) { c.A = c.Y; c.setZN(c.A) })
	execTSX = execImplied(func(c *CPU) { c.X = c.SP; c.setZN(c.X) })
	execTXS = execImplied(func(c *CPU) { c.SP = c.X })
	execINX = execImplied(func(c *CPU) { c.X++; c.setZN(c.X) })
	execINY = execImplied(func(c *CPU) { c.Y++; c.setZN(c.Y) })
	execDEX = execImplied(func(c *CPU) { c.X--; c.setZN(c.X) })
	execDEY = execImplied(func(c *CPU) { c.Y--; c.setZN(c.Y) })
	execCLC = execImplied(func(c *CPU) { c.C = false })
	execSEC = execImplied(func(c *CPU) { c.C = true })
	execCLI = execImplied(func(c *CPU) { c.I = false })
	execSEI = execImplied(func(c *CPU) { c.I = true })
	execCLV = execImplied(func(c *CPU) { c.V = false })
	execCLD = execImplied(func(c *CPU) { c.D = false })
	execSED = execImplied(func(c *CPU) { c.D = true })
	execNOP = execImplied(func(c *CPU) {})
)

// --- stack ops ---------------------------------------------------------------

func execPHA(c *CPU, mode addrMode) {
	c.bus.Tick()
	c.push(c.A)
}
func execPHP(c *CPU, mode addrMode) {
	c.bus.Tick()
	c.push(c.statusByte() | flagB)
}
func execPLA(c *CPU, mode addrMode) {
	c.bus.Tick()
	c.bus.Tick()
	c.A = c.pop()
	c.setZN(c.A)
}
func execPLP(c *CPU, mode addrMode) {
	c.bus.Tick()
	c.bus.Tick()
	c.setStatusByte(c.pop())
}

// --- control flow ------------------------------------------------------------

func execJMP(c *CPU, mode addrMode) {
	if mode == modeIndirect {
		lo := c.fetch()
		hi := c.fetch()
		ptr := uint16(hi)<<8 | uint16(lo)
		// Hardware bug: the high byte fetch doesn't cross a page boundary,
		// it wraps within the same page.
		hiAddr := (ptr & 0xFF00) | uint16(uint8(ptr)+1)
		lo2 := c.bus.Read(ptr)
		hi2 := c.bus.Read(hiAddr)
		c.PC = uint16(hi2)<<8 | uint16(lo2)
		return
	}
	c.PC = c.resolveAddress(modeAbsolute, false)
}

func execJSR(c *CPU, mode addrMode) {
	lo := c.fetch()
	c.bus.Tick()
	target := c.PC
	c.push(uint8(target >> 8))
	hi := c.fetch()
	c.push(uint8(target))
	c.PC = uint16(hi)<<8 | uint16(lo)
}

func execRTS(c *CPU, mode addrMode) {
	c.bus.Tick()
	c.bus.Tick()
	ret := c.popWord()
	c.bus.Tick()
	c.PC = ret + 1
}

func execRTI(c *CPU, mode addrMode) {
	c.bus.Tick()
	c.bus.Tick()
	c.setStatusByte(c.pop())
	c.PC = c.popWord()
}

func execBRK(c *CPU, mode addrMode) {
	c.fetch() // padding byte, discarded
	c.interruptSequence(vectorIRQ, true)
}

func branch(cond func(c *CPU) bool) func(c *CPU, mode addrMode) {
	return func(c *CPU, mode addrMode) {
		offset := int8(c.fetch())
		if !cond(c) {
			return
		}
		c.bus.Tick()
		oldPC := c.PC
		newPC := uint16(int32(oldPC) + int32(offset))
		if oldPC&0xFF00 != newPC&0xFF00 {
			c.bus.Tick()
		}
		c.PC = newPC
	}
}

var (
	execBCC = branch(func(c *CPU) bool { return !c.C })
	execBCS = branch(func(c *CPU) bool { return c.C })
	execBEQ = branch(func(c *CPU) bool { return c.Z })
	execBNE = branch(func(c *CPU) bool { return !c.Z })
	execBMI = branch(func(c *CPU) bool { return c.N })
	execBPL = branch(func(c *CPU) bool { return !c.N })
	execBVC = branch(func(c *CPU) bool { return !c.V })
	execBVS = branch(func(c *CPU) bool { return c.V })
)

// opcodeTable maps all 256 opcodes to their execution function and
// addressing mode. Unassigned entries (zero value, exec == nil) are
// genuinely unimplemented illegal opcodes (the KIL/JAM family and a
// handful of rare unofficial combinations); Step logs and no-ops them.
var opcodeTable = [256]opcodeEntry{
	0x00: {execBRK, modeImplied},
	0x01: {execORA, modeIndexedIndirect},
	0x03: {execSLO, modeIndexedIndirect},
	0x04: {execNOPRead, modeZeroPage},
	0x05: {execORA, modeZeroPage},
	0x06: {execASL, modeZeroPage},
	0x07: {execSLO, modeZeroPage},
	0x08: {execPHP, modeImplied},
	0x09: {execORA, modeImmediate},
	0x0A: {execASL, modeAccumulator},
	0x0C: {execNOPRead, modeAbsolute},
	0x0D: {execORA, modeAbsolute},
	0x0E: {execASL, modeAbsolute},
	0x0F: {execSLO, modeAbsolute},

	0x10: {execBPL, modeRelative},
	0x11: {execORA, modeIndirectIndexed},
	0x13: {execSLO, modeIndirectIndexed},
	0x14: {execNOPRead, modeZeroPageX},
	0x15: {execORA, modeZeroPageX},
	0x16: {execASL, modeZeroPageX},
	0x17: {execSLO, modeZeroPageX},
	0x18: {execCLC, modeImplied},
	0x19: {execORA, modeAbsoluteY},
	0x1A: {execNOP, modeImplied},
	0x1B: {execSLO, modeAbsoluteY},
	0x1C: {execNOPRead, modeAbsoluteX},
	0x1D: {execORA, modeAbsoluteX},
	0x1E: {execASL, modeAbsoluteX},
	0x1F: {execSLO, modeAbsoluteX},

	0x20: {execJSR, modeAbsolute},
	0x21: {execAND, modeIndexedIndirect},
	0x23: {execRLA, modeIndexedIndirect},
	0x24: {execBIT, modeZeroPage},
	0x25: {execAND, modeZeroPage},
	0x26: {execROL, modeZeroPage},
	0x27: {execRLA, modeZeroPage},
	0x28: {execPLP, modeImplied},
	0x29: {execAND, modeImmediate},
	0x2A: {execROL, modeAccumulator},
	0x2C: {execBIT, modeAbsolute},
	0x2D: {execAND, modeAbsolute},
	0x2E: {execROL, modeAbsolute},
	0x2F: {execRLA, modeAbsolute},

	0x30: {execBMI, modeRelative},
	0x31: {execAND, modeIndirectIndexed},
	0x33: {execRLA, modeIndirectIndexed},
	0x34: {execNOPRead, modeZeroPageX},
	0x35: {execAND, modeZeroPageX},
	0x36: {execROL, modeZeroPageX},
	0x37: {execRLA, modeZeroPageX},
	0x38: {execSEC, modeImplied},
	0x39: {execAND, modeAbsoluteY},
	0x3A: {execNOP, modeImplied},
	0x3B: {execRLA, modeAbsoluteY},
	0x3C: {execNOPRead, modeAbsoluteX},
	0x3D: {execAND, modeAbsoluteX},
	0x3E: {execROL, modeAbsoluteX},
	0x3F: {execRLA, modeAbsoluteX},

	0x40: {execRTI, modeImplied},
	0x41: {execEOR, modeIndexedIndirect},
	0x43: {execSRE, modeIndexedIndirect},
	0x44: {execNOPRead, modeZeroPage},
	0x45: {execEOR, modeZeroPage},
	0x46: {execLSR, modeZeroPage},
	0x47: {execSRE, modeZeroPage},
	0x48: {execPHA, modeImplied},
	0x49: {execEOR, modeImmediate},
	0x4A: {execLSR, modeAccumulator},
	0x4C: {execJMP, modeAbsolute},
	0x4D: {execEOR, modeAbsolute},
	0x4E: {execLSR, modeAbsolute},
	0x4F: {execSRE, modeAbsolute},

	0x50: {execBVC, modeRelative},
	0x51: {execEOR, modeIndirectIndexed},
	0x53: {execSRE, modeIndirectIndexed},
	0x54: {execNOPRead, modeZeroPageX},
	0x55: {execEOR, modeZeroPageX},
	0x56: {execLSR, modeZeroPageX},
	0x57: {execSRE, modeZeroPageX},
	0x58: {execCLI, modeImplied},
	0x59: {execEOR, modeAbsoluteY},
	0x5A: {execNOP, modeImplied},
	0x5B: {execSRE, modeAbsoluteY},
	0x5C: {execNOPRead, modeAbsoluteX},
	0x5D: {execEOR, modeAbsoluteX},
	0x5E: {execLSR, modeAbsoluteX},
	0x5F: {execSRE, modeAbsoluteX},

	0x60: {execRTS, modeImplied},
	0x61: {execADC, modeIndexedIndirect},
	0x63: {execRRA, modeIndexedIndirect},
	0x64: {execNOPRead, modeZeroPage},
	0x65: {execADC, modeZeroPage},
	0x66: {execROR, modeZeroPage},
	0x67: {execRRA, modeZeroPage},
	0x68: {execPLA, modeImplied},
	0x69: {execADC, modeImmediate},
	0x6A: {execROR, modeAccumulator},
	0x6C: {execJMP, modeIndirect},
	0x6D: {execADC, modeAbsolute},
	0x6E: {execROR, modeAbsolute},
	0x6F: {execRRA, modeAbsolute},

	0x70: {execBVS, modeRelative},
	0x71: {execADC, modeIndirectIndexed},
	0x73: {execRRA, modeIndirectIndexed},
	0x74: {execNOPRead, modeZeroPageX},
	0x75: {execADC, modeZeroPageX},
	0x76: {execROR, modeZeroPageX},
	0x77: {execRRA, modeZeroPageX},
	0x78: {execSEI, modeImplied},
	0x79: {execADC, modeAbsoluteY},
	0x7A: {execNOP, modeImplied},
	0x7B: {execRRA, modeAbsoluteY},
	0x7C: {execNOPRead, modeAbsoluteX},
	0x7D: {execADC, modeAbsoluteX},
	0x7E: {execROR, modeAbsoluteX},
	0x7F: {execRRA, modeAbsoluteX},

	0x80: {execNOPRead, modeImmediate},
	0x81: {execSTA, modeIndexedIndirect},
	0x82: {execNOPRead, modeImmediate},
	0x83: {execSAX, modeIndexedIndirect},
	0x84: {execSTY, modeZeroPage},
	0x85: {execSTA, modeZeroPage},
	0x86: {execSTX, modeZeroPage},
	0x87: {execSAX, modeZeroPage},
	0x88: {execDEY, modeImplied},
	0x89: {execNOPRead, modeImmediate},
	0x8A: {execTXA, modeImplied},
	0x8C: {execSTY, modeAbsolute},
	0x8D: {execSTA, modeAbsolute},
	0x8E: {execSTX, modeAbsolute},
	0x8F: {execSAX, modeAbsolute},

	0x90: {execBCC, modeRelative},
	0x91: {execSTA, modeIndirectIndexed},
	0x94: {execSTY, modeZeroPageX},
	0x95: {execSTA, modeZeroPageX},
	0x96: {execSTX, modeZeroPageY},
	0x97: {execSAX, modeZeroPageY},
	0x98: {execTYA, modeImplied},
	0x99: {execSTA, modeAbsoluteY},
	0x9A: {execTXS, modeImplied},
	0x9D: {execSTA, modeAbsoluteX},

	0xA0: {execLDY, modeImmediate},
	0xA1: {execLDA, modeIndexedIndirect},
	0xA2: {execLDX, modeImmediate},
	0xA3: {execLAX, modeIndexedIndirect},
	0xA4: {execLDY, modeZeroPage},
	0xA5: {execLDA, modeZeroPage},
	0xA6: {execLDX, modeZeroPage},
	0xA7: {execLAX, modeZeroPage},
	0xA8: {execTAY, modeImplied},
	0xA9: {execLDA, modeImmediate},
	0xAA: {execTAX, modeImplied},
	0xAC: {execLDY, modeAbsolute},
	0xAD: {execLDA, modeAbsolute},
	0xAE: {execLDX, modeAbsolute},
	0xAF: {execLAX, modeAbsolute},

	0xB0: {execBCS, modeRelative},
	0xB1: {execLDA, modeIndirectIndexed},
	0xB3: {execLAX, modeIndirectIndexed},
	0xB4: {execLDY, modeZeroPageX},
	0xB5: {execLDA, modeZeroPageX},
	0xB6: {execLDX, modeZeroPageY},
	0xB7: {execLAX, modeZeroPageY},
	0xB8: {execCLV, modeImplied},
	0xB9: {execLDA, modeAbsoluteY},
	0xBA: {execTSX, modeImplied},
	0xBC: {execLDY, modeAbsoluteX},
	0xBD: {execLDA, modeAbsoluteX},
	0xBE: {execLDX, modeAbsoluteY},
	0xBF: {execLAX, modeAbsoluteY},

	0xC0: {execCPY, modeImmediate},
	0xC1: {execCMP, modeIndexedIndirect},
	0xC2: {execNOPRead, modeImmediate},
	0xC3: {execDCP, modeIndexedIndirect},
	0xC4: {execCPY, modeZeroPage},
	0xC5: {execCMP, modeZeroPage},
	0xC6: {execDEC, modeZeroPage},
	0xC7: {execDCP, modeZeroPage},
	0xC8: {execINY, modeImplied},
	0xC9: {execCMP, modeImmediate},
	0xCA: {execDEX, modeImplied},
	0xCC: {execCPY, modeAbsolute},
	0xCD: {execCMP, modeAbsolute},
	0xCE: {execDEC, modeAbsolute},
	0xCF: {execDCP, modeAbsolute},

	0xD0: {execBNE, modeRelative},
	0xD1: {execCMP, modeIndirectIndexed},
	0xD3: {execDCP, modeIndirectIndexed},
	0xD4: {execNOPRead, modeZeroPageX},
	0xD5: {execCMP, modeZeroPageX},
	0xD6: {execDEC, modeZeroPageX},
	0xD7: {execDCP, modeZeroPageX},
	0xD8: {execCLD, modeImplied},
	0xD9: {execCMP, modeAbsoluteY},
	0xDA: {execNOP, modeImplied},
	0xDB: {execDCP, modeAbsoluteY},
	0xDC: {execNOPRead, modeAbsoluteX},
	0xDD: {execCMP, modeAbsoluteX},
	0xDE: {execDEC, modeAbsoluteX},
	0xDF: {execDCP, modeAbsoluteX},

	0xE0: {execCPX, modeImmediate},
	0xE1: {execSBC, modeIndexedIndirect},
	0xE2: {execNOPRead, modeImmediate},
	0xE3: {execISC, modeIndexedIndirect},
	0xE4: {execCPX, modeZeroPage},
	0xE5: {execSBC, modeZeroPage},
	0xE6: {execINC, modeZeroPage},
	0xE7: {execISC, modeZeroPage},
	0xE8: {execINX, modeImplied},
	0xE9: {execSBC, modeImmediate},
	0xEA: {execNOP, modeImplied},
	0xEB: {execSBC, modeImmediate}, // duplicate unofficial SBC
	0xEC: {execCPX, modeAbsolute},
	0xED: {execSBC, modeAbsolute},
	0xEE: {execINC, modeAbsolute},
	0xEF: {execISC, modeAbsolute},

	0xF0: {execBEQ, modeRelative},
	0xF1: {execSBC, modeIndirectIndexed},
	0xF3: {execISC, modeIndirectIndexed},
	0xF4: {execNOPRead, modeZeroPageX},
	0xF5: {execSBC, modeZeroPageX},
	0xF6: {execINC, modeZeroPageX},
	0xF7: {execISC, modeZeroPageX},
	0xF8: {execSED, modeImplied},
	0xF9: {execSBC, modeAbsoluteY},
	0xFA: {execNOP, modeImplied},
	0xFB: {execISC, modeAbsoluteY},
	0xFC: {execNOPRead, modeAbsoluteX},
	0xFD: {execSBC, modeAbsoluteX},
	0xFE: {execINC, modeAbsoluteX},
	0xFF: {execISC, modeAbsoluteX},
}
