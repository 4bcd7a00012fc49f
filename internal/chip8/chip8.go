// Package chip8 implements the CHIP-8 / SUPER-CHIP virtual machine: memory,
// registers, call stack, timers, framebuffer, and the instruction decoder.
// The CPU owns all of its own state; a keypad and a display are passed in
// as small capability interfaces so the core never reaches back out to its
// host.
package chip8

import (
	"fmt"
)

const (
	memSize = 4096

	// entryPoint is where ROM bytes are written and where PC starts.
	entryPoint = 0x200

	// maxROMSize is the largest ROM image that fits between entryPoint
	// and the end of memory.
	maxROMSize = memSize - entryPoint

	numRegisters = 16
	stackDepth   = 16
	hp48Flags    = 8
)

// HaltReason records why the CPU is not advancing its program counter.
type HaltReason int

const (
	// HaltNone means the CPU is running normally.
	HaltNone HaltReason = iota
	// HaltAwaitingKey means the CPU is parked on an FX0A waiting for a
	// key to be pressed.
	HaltAwaitingKey
	// HaltEnd means a SCHIP 00FD (or a jump-to-self) stopped the CPU.
	HaltEnd
	// HaltFault means the CPU hit an unrecoverable stack fault.
	HaltFault
)

func (r HaltReason) String() string {
	switch r {
	case HaltNone:
		return "none"
	case HaltAwaitingKey:
		return "awaiting-key"
	case HaltEnd:
		return "end"
	case HaltFault:
		return "fault"
	default:
		return "unknown"
	}
}

// CPU is the CHIP-8/SCHIP virtual machine. It is single-threaded and
// synchronous: Step executes at most one instruction and never blocks.
type CPU struct {
	memory [memSize]byte

	// rom is the original, immutable ROM image as loaded. It is kept
	// separately from memory so Snapshot can compute which bytes of
	// program memory a running ROM has modified.
	rom []byte

	v [numRegisters]byte
	i uint16
	pc uint16

	stack [stackDepth]uint16
	sp    uint8

	delay uint8
	sound uint8

	hp48 [hp48Flags]byte

	mode Mode
	vram Framebuffer

	halted     bool
	haltReason HaltReason
	fault      error

	keypad  Keypad
	display Display
	rng     RNG
}

// New constructs a CPU with the given keypad and display collaborators and
// loads rom into program memory. The display is notified of the initial
// (standard) display dimensions.
func New(keypad Keypad, display Display, rom []byte) (*CPU, error) {
	c := &CPU{
		keypad:  keypad,
		display: display,
		rng:     defaultRNG{},
	}
	if err := c.loadROM(rom); err != nil {
		return nil, err
	}
	c.resetState()
	return c, nil
}

// Reset reinitializes memory, registers, the framebuffer, and timers, and
// reloads the original ROM image.
func (c *CPU) Reset() {
	rom := c.rom
	c.resetState()
	_ = c.writeROM(rom)
}

func (c *CPU) resetState() {
	c.v = [numRegisters]byte{}
	c.i = 0
	c.pc = entryPoint
	c.stack = [stackDepth]uint16{}
	c.sp = 0
	c.delay = 0
	c.sound = 0
	c.hp48 = [hp48Flags]byte{}
	c.halted = false
	c.haltReason = HaltNone
	c.fault = nil
	c.setMode(ModeStandard)
}

// IsHalted reports whether the CPU will refuse to advance PC on the next
// Step call.
func (c *CPU) IsHalted() bool {
	return c.halted
}

// HaltReason reports why the CPU is halted. It is HaltNone while running.
func (c *CPU) HaltReason() HaltReason {
	return c.haltReason
}

// Fault returns the error that caused a HaltFault, or nil.
func (c *CPU) Fault() error {
	return c.fault
}

// DelayTimer returns the current delay timer value.
func (c *CPU) DelayTimer() byte { return c.delay }

// SoundTimer returns the current sound timer value.
func (c *CPU) SoundTimer() byte { return c.sound }

// DecrementDelayTimer decrements the delay timer by one, saturating at 0.
// The host is expected to call this at roughly 60 Hz.
func (c *CPU) DecrementDelayTimer() {
	if c.delay > 0 {
		c.delay--
	}
}

// DecrementSoundTimer decrements the sound timer by one, saturating at 0.
// The host is expected to call this at roughly 60 Hz.
func (c *CPU) DecrementSoundTimer() {
	if c.sound > 0 {
		c.sound--
	}
}

// Framebuffer returns the CPU's video memory for the host to render.
func (c *CPU) Framebuffer() *Framebuffer {
	return &c.vram
}

// Mode returns the current display mode.
func (c *CPU) Mode() Mode {
	return c.mode
}

func (c *CPU) setMode(mode Mode) {
	c.mode = mode
	c.vram.Resize(mode)
	if c.display != nil {
		w, h := c.vram.Dimensions()
		c.display.SetDisplayProperties(w, h)
	}
}

// Step fetches, decodes, and executes a single instruction. It is a no-op
// once the CPU has halted on a fault or on END; an FX0A halt is retried
// every call, simply re-running the waiting instruction until the keypad
// reports a key.
func (c *CPU) Step() error {
	if c.halted && c.haltReason != HaltAwaitingKey {
		return nil
	}
	if c.pc > memSize-2 {
		return fmt.Errorf("chip8: program counter out of range: %#x", c.pc)
	}

	op := uint16(c.memory[c.pc])<<8 | uint16(c.memory[c.pc+1])
	d := decode(op)
	c.dispatch(d)
	return nil
}

func (c *CPU) dispatch(d decoded) {
	switch d.hi {
	case 0x0:
		c.dispatch0(d)
	case 0x1:
		c.opJump(d)
	case 0x2:
		c.opCall(d)
	case 0x3:
		c.opSkipEqImm(d)
	case 0x4:
		c.opSkipNeImm(d)
	case 0x5:
		c.opSkipEqReg(d)
	case 0x6:
		c.opLoadImm(d)
	case 0x7:
		c.opAddImm(d)
	case 0x8:
		c.dispatch8(d)
	case 0x9:
		c.opSkipNeReg(d)
	case 0xA:
		c.opLoadI(d)
	case 0xB:
		c.opJumpV0(d)
	case 0xC:
		c.opRandom(d)
	case 0xD:
		c.opDraw(d)
	case 0xE:
		c.dispatchE(d)
	case 0xF:
		c.dispatchF(d)
	default:
		c.advance()
	}
}

// advance moves PC to the next instruction. Used by handlers with no other
// side effect on PC.
func (c *CPU) advance() {
	c.pc += 2
}

// skip advances PC by either 2 or 4 depending on whether a conditional
// skip was taken.
func (c *CPU) skip(taken bool) {
	if taken {
		c.pc += 4
	} else {
		c.pc += 2
	}
}

func (c *CPU) enterFault(err error) {
	c.halted = true
	c.haltReason = HaltFault
	c.fault = err
}
