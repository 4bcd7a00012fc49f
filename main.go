package main

import (
	"github.com/faiface/pixel/pixelgl"

	"github.com/mkessler-dev/octachip/cmd"
)

func main() {
	// pixelgl needs access to the main thread, so the Cobra command tree
	// (whose `run` command opens a pixelgl window) is executed from
	// inside pixelgl.Run rather than directly from main.
	pixelgl.Run(cmd.Execute)
}
