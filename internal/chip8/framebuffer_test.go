package chip8

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFramebuffer_ResizeMatchesMode(t *testing.T) {
	var fb Framebuffer

	fb.Resize(ModeStandard)
	w, h := fb.Dimensions()
	require.Equal(t, 64, w)
	require.Equal(t, 32, h)

	fb.Resize(ModeExtended)
	w, h = fb.Dimensions()
	require.Equal(t, 128, w)
	require.Equal(t, 64, h)
}

func TestFramebuffer_XorPixelReportsCollision(t *testing.T) {
	var fb Framebuffer
	fb.Resize(ModeStandard)

	require.False(t, fb.xorPixel(1, 1))
	require.True(t, fb.At(1, 1))

	require.True(t, fb.xorPixel(1, 1))
	require.False(t, fb.At(1, 1))
}

func TestFramebuffer_OutOfBoundsIsNoOp(t *testing.T) {
	var fb Framebuffer
	fb.Resize(ModeStandard)

	require.False(t, fb.xorPixel(-1, 0))
	require.False(t, fb.xorPixel(0, -1))
	require.False(t, fb.xorPixel(64, 0))
	require.False(t, fb.xorPixel(0, 32))
	require.False(t, fb.At(100, 100))
}

func TestFramebuffer_ScrollDownFillsTopWithZero(t *testing.T) {
	var fb Framebuffer
	fb.Resize(ModeStandard)
	fb.xorPixel(5, 0)

	fb.scrollDown(4)

	require.False(t, fb.At(5, 0))
	require.True(t, fb.At(5, 4))
}

func TestFramebuffer_ScrollRightAndLeft(t *testing.T) {
	var fb Framebuffer
	fb.Resize(ModeExtended)
	fb.xorPixel(0, 0)

	fb.scrollRight(4)
	require.False(t, fb.At(0, 0))
	require.True(t, fb.At(4, 0))

	fb.scrollLeft(4)
	require.True(t, fb.At(0, 0))
}
