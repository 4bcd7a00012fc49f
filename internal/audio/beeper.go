// Package audio plays a beep tone whenever the host loop triggers it for
// the CHIP-8 sound timer.
package audio

import (
	"os"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
)

// Beeper decodes a single mp3 tone once and replays it every time Trigger
// is called. It is driven by the host loop, not by the CPU directly: the
// core has no business reaching into an audio backend.
type Beeper struct {
	streamer beep.StreamSeekCloser
	format   beep.Format
	ready    bool
}

// New opens path (an mp3 file) and initializes the speaker. If the file
// can't be opened or decoded, the returned Beeper is inert: Trigger becomes
// a no-op rather than the host crashing over a missing asset.
func New(path string) *Beeper {
	b := &Beeper{}

	f, err := os.Open(path)
	if err != nil {
		return b
	}

	streamer, format, err := mp3.Decode(f)
	if err != nil {
		return b
	}

	speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10))
	b.streamer = streamer
	b.format = format
	b.ready = true
	return b
}

// Trigger plays the decoded tone from the beginning. Call it once per
// frame in which the sound timer transitions to nonzero, or every frame
// the sound timer is 1 right before it reaches 0.
func (b *Beeper) Trigger() {
	if !b.ready {
		return
	}
	_ = b.streamer.Seek(0)
	speaker.Play(b.streamer)
}

// Close releases the underlying decoder.
func (b *Beeper) Close() error {
	if !b.ready {
		return nil
	}
	return b.streamer.Close()
}
