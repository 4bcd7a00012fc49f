package chip8

// dispatch0 handles the 0x0 family: CLS, RET, and the SCHIP 00CN/00FB-00FF
// extensions, which all share the high nibble 0.
func (c *CPU) dispatch0(d decoded) {
	switch {
	case d.op&0xFFF0 == 0x00C0:
		c.opScrollDown(d)
	case d.op == 0x00E0:
		c.opClear()
	case d.op == 0x00EE:
		c.opReturn()
	case d.op == 0x00FB:
		c.opScrollRight()
	case d.op == 0x00FC:
		c.opScrollLeft()
	case d.op == 0x00FD:
		c.opEnd()
	case d.op == 0x00FE:
		c.opDisplayMode(ModeStandard)
	case d.op == 0x00FF:
		c.opDisplayMode(ModeExtended)
	default:
		// Unknown 0x0 opcode (e.g. a machine-language subroutine call
		// at 0NNN): silently skip.
		c.advance()
	}
}

func (c *CPU) opClear() {
	c.vram.Clear()
	c.advance()
}

func (c *CPU) opReturn() {
	addr, err := c.stackPop()
	if err != nil {
		c.enterFault(err)
		return
	}
	c.pc = addr + 2
}

// opJump implements 1NNN. A jump to the instruction's own address is
// treated as END, letting ROMs that spin on `JMP self` halt cleanly.
func (c *CPU) opJump(d decoded) {
	if d.nnn == c.pc {
		c.opEnd()
		return
	}
	c.pc = d.nnn
}

func (c *CPU) opCall(d decoded) {
	if err := c.stackPush(c.pc); err != nil {
		c.enterFault(err)
		return
	}
	c.pc = d.nnn
}

func (c *CPU) opJumpV0(d decoded) {
	c.pc = d.nnn + uint16(c.v[0])
}

func (c *CPU) opSkipEqImm(d decoded) {
	c.skip(c.v[d.x] == d.nn)
}

func (c *CPU) opSkipNeImm(d decoded) {
	c.skip(c.v[d.x] != d.nn)
}

func (c *CPU) opSkipEqReg(d decoded) {
	c.skip(c.v[d.x] == c.v[d.y])
}

func (c *CPU) opSkipNeReg(d decoded) {
	c.skip(c.v[d.x] != c.v[d.y])
}

// dispatchE handles the 0xE family: key-down/key-up skips.
func (c *CPU) dispatchE(d decoded) {
	switch d.nn {
	case 0x9E:
		c.skip(c.keypad.KeyIsDown(c.v[d.x]))
	case 0xA1:
		c.skip(!c.keypad.KeyIsDown(c.v[d.x]))
	default:
		c.advance()
	}
}

// opEnd implements SCHIP 00FD: halt without advancing PC.
func (c *CPU) opEnd() {
	c.halted = true
	c.haltReason = HaltEnd
}

func (c *CPU) opDisplayMode(mode Mode) {
	c.setMode(mode)
	c.advance()
}

func (c *CPU) opScrollDown(d decoded) {
	c.vram.scrollDown(int(d.n))
	c.advance()
}

func (c *CPU) opScrollRight() {
	c.vram.scrollRight(c.scrollPixels())
	c.advance()
}

func (c *CPU) opScrollLeft() {
	c.vram.scrollLeft(c.scrollPixels())
	c.advance()
}

func (c *CPU) scrollPixels() int {
	if c.mode == ModeExtended {
		return 4
	}
	return 2
}
