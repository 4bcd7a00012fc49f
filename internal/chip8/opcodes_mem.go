package chip8

func (c *CPU) opLoadI(d decoded) {
	c.i = d.nnn
	c.advance()
}

// dispatchF handles the 0xF family: timers, keypad wait, I-register
// arithmetic, font lookup, BCD, block transfer, and HP-48 flag storage.
func (c *CPU) dispatchF(d decoded) {
	switch d.nn {
	case 0x07:
		c.v[d.x] = c.delay
		c.advance()
	case 0x0A:
		c.opWaitKey(d)
	case 0x15:
		c.delay = c.v[d.x]
		c.advance()
	case 0x18:
		c.sound = c.v[d.x]
		c.advance()
	case 0x1E:
		c.i += uint16(c.v[d.x])
		c.advance()
	case 0x29:
		c.i = smallFontBase + uint16(c.v[d.x])*5
		c.advance()
	case 0x30:
		c.i = largeFontBase + uint16(c.v[d.x])*10
		c.advance()
	case 0x33:
		c.opBCD(d)
		c.advance()
	case 0x55:
		c.opStoreRegs(d)
		c.advance()
	case 0x65:
		c.opLoadRegs(d)
		c.advance()
	case 0x75:
		c.opSaveFlags(d)
		c.advance()
	case 0x85:
		c.opRestoreFlags(d)
		c.advance()
	default:
		c.advance()
	}
}

// opWaitKey implements FX0A. With no key down it halts without advancing
// PC; Step will keep re-entering this handler until a key is observed.
func (c *CPU) opWaitKey(d decoded) {
	if c.keypad.KeyCount() == 0 {
		c.halted = true
		c.haltReason = HaltAwaitingKey
		return
	}
	c.v[d.x] = c.keypad.LastKey()
	c.halted = false
	c.haltReason = HaltNone
	c.advance()
}

// opBCD implements FX33, writing the binary-coded decimal digits of VX to
// memory starting at I. Writes past the end of RAM are discarded instead
// of faulting.
func (c *CPU) opBCD(d decoded) {
	v := c.v[d.x]
	c.setMemByte(c.i, v/100)
	c.setMemByte(c.i+1, (v/10)%10)
	c.setMemByte(c.i+2, v%10)
}

// opStoreRegs implements FX55: V0..VX are written to memory starting at I.
// I itself is left unmodified. Writes past the end of RAM are discarded
// instead of faulting.
func (c *CPU) opStoreRegs(d decoded) {
	for idx := uint16(0); idx <= d.x; idx++ {
		c.setMemByte(c.i+idx, c.v[idx])
	}
}

// opLoadRegs implements FX65, the inverse of opStoreRegs. Reads past the
// end of RAM come back as 0 instead of faulting.
func (c *CPU) opLoadRegs(d decoded) {
	for idx := uint16(0); idx <= d.x; idx++ {
		c.v[idx] = c.memByte(c.i + idx)
	}
}

// opSaveFlags implements FX75. X is expected to be <= 7; a larger X is
// clamped to the 8 available HP-48 slots instead of indexing out of
// bounds.
func (c *CPU) opSaveFlags(d decoded) {
	for idx := uint16(0); idx <= d.x && idx < hp48Flags; idx++ {
		c.hp48[idx] = c.v[idx]
	}
}

// opRestoreFlags implements FX85, the inverse of opSaveFlags.
func (c *CPU) opRestoreFlags(d decoded) {
	for idx := uint16(0); idx <= d.x && idx < hp48Flags; idx++ {
		c.v[idx] = c.hp48[idx]
	}
}
