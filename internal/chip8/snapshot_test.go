package chip8

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSnapshotRestore_RoundTrip(t *testing.T) {
	rom := []byte{
		0x60, 0x05, // V0 = 5
		0xA3, 0x00, // I = 0x300
		0xF0, 0x33, // BCD(V0) at I
		0xD0, 0x08, // draw 8x8 at (V0,V0) = (5,5) -- self-modifies nothing, just dirties vram
	}
	keypad := NewBitsetKeypad()
	cpu, err := New(keypad, NopDisplay{}, rom)
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		require.NoError(t, cpu.Step())
	}
	keypad.SetKeyDown(0x3)

	snap := cpu.Snapshot()

	restored, err := New(NewBitsetKeypad(), NopDisplay{}, rom)
	require.NoError(t, err)
	require.NoError(t, restored.Restore(snap))

	require.Equal(t, cpu.pc, restored.pc)
	require.Equal(t, cpu.v, restored.v)
	require.Equal(t, cpu.i, restored.i)
	require.Equal(t, cpu.sp, restored.sp)
	require.Equal(t, cpu.stack, restored.stack)
	require.Equal(t, cpu.delay, restored.delay)
	require.Equal(t, cpu.sound, restored.sound)
	require.Equal(t, cpu.halted, restored.halted)
	require.Equal(t, cpu.mode, restored.mode)
	require.Equal(t, cpu.memory, restored.memory)
	require.Equal(t, keypad.KeyTable(), restored.keypad.KeyTable())

	w, h := cpu.vram.Dimensions()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			require.Equal(t, cpu.vram.At(x, y), restored.vram.At(x, y))
		}
	}
}

func TestSnapshot_ModifiedMemoryRangeIsCompact(t *testing.T) {
	rom := []byte{0x00, 0x00, 0x00, 0x00, 0x12, 0x00}
	cpu := newTestCPU(t, rom)

	// Self-modify a single byte in the middle of the ROM image.
	cpu.memory[0x203] = 0xAB

	snap := cpu.Snapshot()

	require.Equal(t, uint16(0x203), snap.ModifiedMemoryBase)
	require.Equal(t, []byte{0xAB, 0x12}, snap.ModifiedMemory)
}

func TestRestore_RejectsDimensionMismatch(t *testing.T) {
	cpu := newTestCPU(t, nil)
	snap := cpu.Snapshot()
	snap.VRAM = snap.VRAM[:len(snap.VRAM)-1]

	require.ErrorIs(t, cpu.Restore(snap), ErrRestoreMismatch)
}
