package chip8

// Snapshot is a serializable copy of everything Restore needs to put a CPU
// back into an observationally identical state, short of the ROM image
// itself: Restore assumes the same ROM is already loaded via New.
//
// Modified program memory is stored as one contiguous range plus its lower
// bound. The range starts at the first byte within the ROM image's extent
// that differs from the original ROM (or at 0x200 when none does) and ends
// at the last nonzero byte in 0x200..0xFFF. It is not trimmed to the last
// differing byte: unchanged ROM bytes after a modification are included,
// and a ROM that never self-modifies yields its whole image up to its last
// nonzero byte. ModifiedMemory is empty only when 0x200..0xFFF is all zero.
type Snapshot struct {
	PC    uint16
	Stack [stackDepth]uint16
	SP    uint8

	V [numRegisters]byte
	I uint16

	Delay, Sound uint8

	Halted     bool
	HaltReason HaltReason

	KeyTable [16]bool

	Mode Mode
	VRAM []byte // row-major, width*height bytes, 0 or 1

	// ModifiedMemoryBase is the lowest address (>= entryPoint) covered
	// by ModifiedMemory.
	ModifiedMemoryBase uint16
	ModifiedMemory     []byte
}

// Snapshot captures the CPU's observable and internal state. The HP-48
// flags are not part of a Snapshot.
func (c *CPU) Snapshot() Snapshot {
	w, h := c.vram.Dimensions()
	vram := make([]byte, w*h)
	copy(vram, c.vram.pixels)

	base, modified := c.modifiedProgramMemory()

	return Snapshot{
		PC:                 c.pc,
		Stack:              c.stack,
		SP:                 c.sp,
		V:                  c.v,
		I:                  c.i,
		Delay:              c.delay,
		Sound:              c.sound,
		Halted:             c.halted,
		HaltReason:         c.haltReason,
		KeyTable:           c.keypad.KeyTable(),
		Mode:               c.mode,
		VRAM:               vram,
		ModifiedMemoryBase: base,
		ModifiedMemory:     modified,
	}
}

// modifiedProgramMemory computes the range Snapshot stores: find the last
// nonzero byte in program memory, then the first byte before it (within the
// ROM image's extent) that diverges from the ROM, falling back to 0x200
// when no such byte exists.
func (c *CPU) modifiedProgramMemory() (base uint16, data []byte) {
	upper := entryPoint
	for i := memSize; i > entryPoint; i-- {
		if c.memory[i-1] != 0x00 {
			upper = i
			break
		}
	}

	lower := entryPoint
	limit := upper
	if romEnd := entryPoint + len(c.rom); romEnd < limit {
		limit = romEnd
	}
	for i := entryPoint; i < limit; i++ {
		if c.memory[i] != c.rom[i-entryPoint] {
			lower = i
			break
		}
	}
	if lower >= upper {
		return entryPoint, nil
	}

	out := make([]byte, upper-lower)
	copy(out, c.memory[lower:upper])
	return uint16(lower), out
}

// Restore reinstates every field from s. It assumes the CPU was
// constructed with the same ROM image s was taken from; the ROM itself is
// not part of the snapshot.
func (c *CPU) Restore(s Snapshot) error {
	w, h := s.Mode.dimensions()
	if len(s.VRAM) != w*h {
		return ErrRestoreMismatch
	}
	if s.SP > stackDepth {
		return ErrRestoreMismatch
	}
	base := int(s.ModifiedMemoryBase)
	if base < entryPoint || base > memSize {
		return ErrRestoreMismatch
	}
	if base+len(s.ModifiedMemory) > memSize {
		return ErrRestoreMismatch
	}

	c.pc = s.PC
	c.stack = s.Stack
	c.sp = s.SP
	c.v = s.V
	c.i = s.I
	c.delay = s.Delay
	c.sound = s.Sound
	c.halted = s.Halted
	c.haltReason = s.HaltReason
	c.keypad.SetKeyTable(s.KeyTable)

	c.setMode(s.Mode)
	copy(c.vram.pixels, s.VRAM)

	limit := base - entryPoint
	if limit > len(c.rom) {
		limit = len(c.rom)
	}
	if err := c.writeROM(c.rom[:limit]); err != nil {
		return err
	}
	copy(c.memory[base:], s.ModifiedMemory)

	return nil
}
