package chip8

// Display is the capability interface the CPU notifies when the display
// mode changes (00FE/00FF). The host is expected to read Framebuffer()
// itself each frame; this interface exists only for dimension changes,
// which the host may need to know about before it next reads pixels (e.g.
// to resize a window).
type Display interface {
	SetDisplayProperties(width, height int)
}

// NopDisplay discards display property notifications. Useful for tests
// and headless tools (dump/restore) that never render.
type NopDisplay struct{}

func (NopDisplay) SetDisplayProperties(width, height int) {}
