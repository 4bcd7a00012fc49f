package chip8

import "fmt"

// smallFont holds sixteen 8x5 glyphs (digits 0-F) at 0x000..0x04F.
var smallFont = [16 * 5]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0x10, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// largeFont holds sixteen 8x10 glyphs (digits 0-F) at 0x050..0x0EF, taken
// from David Winter's SCHIP documentation.
var largeFont = [16 * 10]byte{
	0xF0, 0xF0, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0xF0, 0xF0, // 0
	0x20, 0x20, 0x60, 0x60, 0x20, 0x20, 0x20, 0x20, 0x70, 0x70, // 1
	0xF0, 0xF0, 0x10, 0x10, 0xF0, 0xF0, 0x80, 0x80, 0xF0, 0xF0, // 2
	0xF0, 0xF0, 0x10, 0x10, 0xF0, 0xF0, 0x10, 0x10, 0xF0, 0xF0, // 3
	0x90, 0x90, 0x90, 0x90, 0xF0, 0xF0, 0x10, 0x10, 0x10, 0x10, // 4
	0xF0, 0xF0, 0x80, 0x80, 0xF0, 0xF0, 0x10, 0x10, 0xF0, 0xF0, // 5
	0xF0, 0xF0, 0x80, 0x80, 0xF0, 0xF0, 0x90, 0x90, 0xF0, 0xF0, // 6
	0xF0, 0xF0, 0x10, 0x10, 0x20, 0x20, 0x40, 0x40, 0x40, 0x40, // 7
	0xF0, 0xF0, 0x90, 0x90, 0xF0, 0xF0, 0x90, 0x90, 0xF0, 0xF0, // 8
	0xF0, 0xF0, 0x90, 0x90, 0xF0, 0xF0, 0x10, 0x10, 0xF0, 0xF0, // 9
	0xF0, 0xF0, 0x90, 0x90, 0xF0, 0xF0, 0x90, 0x90, 0x90, 0x90, // A
	0xE0, 0xE0, 0x90, 0x90, 0xE0, 0xE0, 0x90, 0x90, 0xE0, 0xE0, // B
	0xF0, 0xF0, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0xF0, 0xF0, // C
	0xE0, 0xE0, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0xE0, 0xE0, // D
	0xF0, 0xF0, 0x80, 0x80, 0xF0, 0xF0, 0x80, 0x80, 0xF0, 0xF0, // E
	0xF0, 0xF0, 0x80, 0x80, 0xF0, 0xF0, 0x80, 0x80, 0x80, 0x80, // F
}

const (
	smallFontBase = 0x000
	largeFontBase = 0x050
)

// memByte reads memory at addr, returning 0 for any address at or beyond
// the end of RAM instead of indexing out of bounds.
func (c *CPU) memByte(addr uint16) byte {
	if int(addr) >= memSize {
		return 0
	}
	return c.memory[addr]
}

// setMemByte writes memory at addr, discarding the write if addr is at or
// beyond the end of RAM instead of indexing out of bounds.
func (c *CPU) setMemByte(addr uint16, v byte) {
	if int(addr) >= memSize {
		return
	}
	c.memory[addr] = v
}

// loadROM resets memory (font tables plus zero padding) and writes rom at
// entryPoint, retaining rom as the CPU's immutable reference image.
func (c *CPU) loadROM(rom []byte) error {
	if len(rom) > maxROMSize {
		return fmt.Errorf("chip8: rom too large: %d bytes, max %d", len(rom), maxROMSize)
	}
	c.rom = append([]byte(nil), rom...)
	return c.writeROM(rom)
}

// writeROM clears memory and writes rom at entryPoint without touching the
// retained original image. Used by Reset and Restore.
func (c *CPU) writeROM(rom []byte) error {
	if len(rom) > maxROMSize {
		return fmt.Errorf("chip8: rom too large: %d bytes, max %d", len(rom), maxROMSize)
	}
	c.memory = [memSize]byte{}
	copy(c.memory[smallFontBase:], smallFont[:])
	copy(c.memory[largeFontBase:], largeFont[:])
	copy(c.memory[entryPoint:], rom)
	return nil
}
