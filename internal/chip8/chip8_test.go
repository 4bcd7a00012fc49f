package chip8

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestCPU(t *testing.T, rom []byte) *CPU {
	t.Helper()
	cpu, err := New(NewBitsetKeypad(), NopDisplay{}, rom)
	require.NoError(t, err)
	return cpu
}

func TestStep_00E0_ClearsScreen(t *testing.T) {
	cpu := newTestCPU(t, []byte{0x00, 0xE0})

	for y := 0; y < 32; y++ {
		for x := 0; x < 64; x++ {
			cpu.vram.xorPixel(x, y)
		}
	}

	require.NoError(t, cpu.Step())

	for y := 0; y < 32; y++ {
		for x := 0; x < 64; x++ {
			require.False(t, cpu.vram.At(x, y))
		}
	}
}

func TestStep_CallAndReturn(t *testing.T) {
	// 0x200: CALL 0x206
	// 0x202: JMP 0x204
	// 0x204: unknown opcode, ignored
	// 0x206: RET
	rom := []byte{
		0x22, 0x06,
		0x12, 0x04,
		0x00, 0x00,
		0x00, 0xEE,
	}
	cpu := newTestCPU(t, rom)

	require.NoError(t, cpu.Step()) // CALL -> pc = 0x206
	require.Equal(t, uint16(0x206), cpu.pc)
	require.Equal(t, uint8(1), cpu.sp)

	require.NoError(t, cpu.Step()) // RET -> pc = 0x202
	require.Equal(t, uint16(0x202), cpu.pc)
	require.Equal(t, uint8(0), cpu.sp)

	require.NoError(t, cpu.Step()) // JMP 0x204
	require.Equal(t, uint16(0x204), cpu.pc)
}

func TestStep_CounterLoop(t *testing.T) {
	// 0x200: V0 = 0
	// 0x202: V0 += 1
	// 0x204: skip next if V0 == 5
	// 0x206: JMP 0x202
	// 0x208: JMP 0x208 (self-loop -> halt)
	rom := []byte{
		0x60, 0x00,
		0x70, 0x01,
		0x30, 0x05,
		0x12, 0x02,
		0x12, 0x08,
	}
	cpu := newTestCPU(t, rom)

	for i := 0; i < 100 && !cpu.IsHalted(); i++ {
		require.NoError(t, cpu.Step())
	}

	require.Equal(t, byte(5), cpu.v[0])
	require.Equal(t, uint16(0x208), cpu.pc)
	require.True(t, cpu.IsHalted())
	require.Equal(t, HaltEnd, cpu.HaltReason())
}

func TestStep_AddImmediate_WrapsWithoutTouchingVF(t *testing.T) {
	rom := []byte{
		0x60, 0xF0, // V0 = 0xF0
		0x70, 0x20, // V0 += 0x20 (wraps to 0x10)
	}
	cpu := newTestCPU(t, rom)
	cpu.v[0xF] = 0x42

	require.NoError(t, cpu.Step())
	require.NoError(t, cpu.Step())

	require.Equal(t, byte(0x10), cpu.v[0])
	require.Equal(t, byte(0x42), cpu.v[0xF], "VF must be untouched by 7XNN")
}

func TestStep_8XY4_AddWithCarry(t *testing.T) {
	rom := []byte{0x80, 0x14}
	cpu := newTestCPU(t, rom)
	cpu.v[0] = 0xF0
	cpu.v[1] = 0x20

	require.NoError(t, cpu.Step())

	require.Equal(t, byte(0x10), cpu.v[0])
	require.Equal(t, byte(1), cpu.v[0xF])
}

func TestStep_8XY5_SubWithBorrow(t *testing.T) {
	rom := []byte{0x80, 0x15}
	cpu := newTestCPU(t, rom)
	cpu.v[0] = 0x10
	cpu.v[1] = 0x20

	require.NoError(t, cpu.Step())

	require.Equal(t, byte(0xF0), cpu.v[0])
	require.Equal(t, byte(0), cpu.v[0xF])
}

func TestStep_8XY6_ShiftRightIgnoresY(t *testing.T) {
	rom := []byte{0x80, 0x16}
	cpu := newTestCPU(t, rom)
	cpu.v[0] = 0x03
	cpu.v[1] = 0xFF // must be ignored

	require.NoError(t, cpu.Step())

	require.Equal(t, byte(0x01), cpu.v[0])
	require.Equal(t, byte(1), cpu.v[0xF])
}

func TestStep_8XYE_ShiftLeftNormalizesVF(t *testing.T) {
	rom := []byte{0x80, 0x1E}
	cpu := newTestCPU(t, rom)
	cpu.v[0] = 0x81 // top bit set

	require.NoError(t, cpu.Step())

	require.Equal(t, byte(0x02), cpu.v[0])
	require.Equal(t, byte(1), cpu.v[0xF], "VF must be normalized to 0/1")
}

func TestStep_BNNN_JumpsToNNNPlusV0(t *testing.T) {
	rom := []byte{0xB3, 0x00}
	cpu := newTestCPU(t, rom)
	cpu.v[0] = 0x10

	require.NoError(t, cpu.Step())

	require.Equal(t, uint16(0x310), cpu.pc)
}

func TestStep_FX33_BCD(t *testing.T) {
	rom := []byte{0xF0, 0x33}
	cpu := newTestCPU(t, rom)
	cpu.v[0] = 234
	cpu.i = 0x300

	require.NoError(t, cpu.Step())

	require.Equal(t, byte(2), cpu.memory[0x300])
	require.Equal(t, byte(3), cpu.memory[0x301])
	require.Equal(t, byte(4), cpu.memory[0x302])
}

func TestStep_FX55_FX65_DoNotModifyI(t *testing.T) {
	rom := []byte{
		0xF2, 0x55, // store V0..V2 at I
		0xF2, 0x65, // load V0..V2 from I
	}
	cpu := newTestCPU(t, rom)
	cpu.i = 0x300
	cpu.v[0], cpu.v[1], cpu.v[2] = 1, 2, 3

	require.NoError(t, cpu.Step())
	require.Equal(t, uint16(0x300), cpu.i)

	cpu.v[0], cpu.v[1], cpu.v[2] = 0, 0, 0
	require.NoError(t, cpu.Step())
	require.Equal(t, uint16(0x300), cpu.i)
	require.Equal(t, byte(1), cpu.v[0])
	require.Equal(t, byte(2), cpu.v[1])
	require.Equal(t, byte(3), cpu.v[2])
}

func TestStep_DXYN_CollisionOnSecondDraw(t *testing.T) {
	rom := []byte{
		0xD0, 0x01, // draw 8x1 sprite at (V0,V0)
	}
	cpu := newTestCPU(t, rom)
	cpu.i = 0x300
	cpu.memory[0x300] = 0xFF

	require.NoError(t, cpu.Step())
	require.Equal(t, byte(0), cpu.v[0xF])
	for x := 0; x < 8; x++ {
		require.True(t, cpu.vram.At(x, 0))
	}

	cpu.pc = 0x200
	require.NoError(t, cpu.Step())
	require.Equal(t, byte(1), cpu.v[0xF])
	for x := 0; x < 8; x++ {
		require.False(t, cpu.vram.At(x, 0))
	}
}

func TestStep_DXYN_ClipsAtScreenEdge(t *testing.T) {
	rom := []byte{0xD0, 0x18} // draw 8x8 sprite at (V0=60, V1=0)
	cpu := newTestCPU(t, rom)
	cpu.i = 0x300
	for i := 0; i < 8; i++ {
		cpu.memory[0x300+i] = 0xFF
	}
	cpu.v[0] = 60

	require.NoError(t, cpu.Step())

	for x := 60; x < 64; x++ {
		require.True(t, cpu.vram.At(x, 0))
	}
}

func TestStep_FX0A_HaltsUntilKey(t *testing.T) {
	rom := []byte{0xF0, 0x0A}
	keypad := NewBitsetKeypad()
	cpu, err := New(keypad, NopDisplay{}, rom)
	require.NoError(t, err)

	require.NoError(t, cpu.Step())
	require.True(t, cpu.IsHalted())
	require.Equal(t, HaltAwaitingKey, cpu.HaltReason())
	require.Equal(t, uint16(0x200), cpu.pc)

	keypad.SetKeyDown(0x7)
	require.NoError(t, cpu.Step())

	require.False(t, cpu.IsHalted())
	require.Equal(t, byte(0x7), cpu.v[0])
	require.Equal(t, uint16(0x202), cpu.pc)
}

func TestStep_CallStackOverflowFaults(t *testing.T) {
	rom := []byte{0x22, 0x00} // CALL 0x200, forever
	cpu := newTestCPU(t, rom)

	for i := 0; i < stackDepth; i++ {
		require.NoError(t, cpu.Step())
		require.False(t, cpu.IsHalted())
	}

	require.NoError(t, cpu.Step())
	require.True(t, cpu.IsHalted())
	require.Equal(t, HaltFault, cpu.HaltReason())
	require.ErrorIs(t, cpu.Fault(), ErrStackOverflow)
}

func TestStep_UnknownOpcodeIsSkipped(t *testing.T) {
	rom := []byte{0x00, 0x01, 0x60, 0x2A}
	cpu := newTestCPU(t, rom)

	require.NoError(t, cpu.Step())
	require.Equal(t, uint16(0x202), cpu.pc)

	require.NoError(t, cpu.Step())
	require.Equal(t, byte(0x2A), cpu.v[0])
}

func TestDecrementTimers_SaturateAtZero(t *testing.T) {
	cpu := newTestCPU(t, nil)
	cpu.delay = 5

	for i := 0; i < 10; i++ {
		cpu.DecrementDelayTimer()
	}

	require.Equal(t, byte(0), cpu.DelayTimer())
}

func TestVRegistersStayInByteRange(t *testing.T) {
	rom := []byte{
		0x60, 0xFF,
		0x70, 0xFF,
		0x70, 0xFF,
	}
	cpu := newTestCPU(t, rom)

	for i := 0; i < 3; i++ {
		require.NoError(t, cpu.Step())
		for _, v := range cpu.v {
			require.LessOrEqual(t, v, byte(0xFF))
		}
	}
}
