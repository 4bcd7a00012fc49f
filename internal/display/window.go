// Package display renders a chip8.CPU's framebuffer with faiface/pixel and
// maps pixelgl key events onto the CHIP-8 hex keypad.
package display

import (
	"fmt"
	"time"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"github.com/faiface/pixel/text"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/mkessler-dev/octachip/internal/chip8"
)

const keyRepeatDur = time.Second / 5

const (
	screenWidth  = 1024
	screenHeight = 768
)

// Window embeds a pixelgl window, a hex-keypad keymap, and per-key repeat
// tickers. It implements chip8.Display.
type Window struct {
	*pixelgl.Window
	title    string
	keyMap   map[byte]pixelgl.Button
	keysDown [16]*time.Ticker
	width    int
	height   int
	font     *text.Text
}

// NewWindow opens a pixelgl window sized for the standard CHIP-8 display
// and returns a Window ready to be driven by a host loop.
func NewWindow(title string) (*Window, error) {
	cfg := pixelgl.WindowConfig{
		Title:  title,
		Bounds: pixel.R(0, 0, screenWidth, screenHeight),
		VSync:  true,
	}
	w, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return nil, fmt.Errorf("display: error creating window: %w", err)
	}

	atlas := text.NewAtlas(basicfont.Face7x13, text.ASCII)

	return &Window{
		Window: w,
		title:  title,
		keyMap: defaultKeyMap(),
		width:  64,
		height: 32,
		font:   text.New(pixel.V(8, screenHeight-20), atlas),
	}, nil
}

func defaultKeyMap() map[byte]pixelgl.Button {
	return map[byte]pixelgl.Button{
		0x1: pixelgl.Key1, 0x2: pixelgl.Key2, 0x3: pixelgl.Key3, 0xC: pixelgl.Key4,
		0x4: pixelgl.KeyQ, 0x5: pixelgl.KeyW, 0x6: pixelgl.KeyE, 0xD: pixelgl.KeyR,
		0x7: pixelgl.KeyA, 0x8: pixelgl.KeyS, 0x9: pixelgl.KeyD, 0xE: pixelgl.KeyF,
		0xA: pixelgl.KeyZ, 0x0: pixelgl.KeyX, 0xB: pixelgl.KeyC, 0xF: pixelgl.KeyV,
	}
}

// SetDisplayProperties implements chip8.Display. It's called by the CPU
// whenever a SCHIP 00FE/00FF switches display mode.
func (w *Window) SetDisplayProperties(width, height int) {
	w.width = width
	w.height = height
}

// DrawGraphics clears the window and redraws every set pixel of fb scaled
// to fill the window.
func (w *Window) DrawGraphics(fb *chip8.Framebuffer, status string) {
	w.Clear(colornames.Black)

	fbw, fbh := fb.Dimensions()
	draw := imdraw.New(nil)
	draw.Color = pixel.RGB(1, 1, 1)
	cellW, cellH := screenWidth/float64(fbw), screenHeight/float64(fbh)

	for y := 0; y < fbh; y++ {
		for x := 0; x < fbw; x++ {
			if !fb.At(x, y) {
				continue
			}
			flippedY := fbh - 1 - y
			draw.Push(pixel.V(cellW*float64(x), cellH*float64(flippedY)))
			draw.Push(pixel.V(cellW*float64(x)+cellW, cellH*float64(flippedY)+cellH))
			draw.Rectangle(0)
		}
	}
	draw.Draw(w)

	w.font.Clear()
	fmt.Fprint(w.font, status)
	w.font.Draw(w, pixel.IM)

	w.Update()
}

// HandleKeyInput polls pixelgl's key state and mirrors it onto kp, applying
// a short repeat interval so held keys keep registering as "down" the way
// the original CHIP-8 keypad would under a polling host loop.
func (w *Window) HandleKeyInput(kp *chip8.BitsetKeypad) {
	for id, button := range w.keyMap {
		switch {
		case w.JustPressed(button):
			if w.keysDown[id] == nil {
				w.keysDown[id] = time.NewTicker(keyRepeatDur)
			}
			kp.SetKeyDown(id)
		case w.JustReleased(button):
			if w.keysDown[id] != nil {
				w.keysDown[id].Stop()
				w.keysDown[id] = nil
			}
			kp.SetKeyUp(id)
		}

		if w.keysDown[id] == nil {
			continue
		}
		select {
		case <-w.keysDown[id].C:
			kp.SetKeyDown(id)
		default:
		}
	}
}
