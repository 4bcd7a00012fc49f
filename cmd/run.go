package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mkessler-dev/octachip/internal/audio"
	"github.com/mkessler-dev/octachip/internal/chip8"
	"github.com/mkessler-dev/octachip/internal/display"
	"github.com/mkessler-dev/octachip/internal/rom"
	"github.com/mkessler-dev/octachip/internal/snapshotio"
)

var (
	cyclesPerFrame int
	framesPerSec   int
	beepAssetPath  string
	verboseRun     bool
	resumeState    string
)

// runCmd runs the octachip virtual machine against a ROM until the window
// is closed.
var runCmd = &cobra.Command{
	Use:   "run path/to/rom",
	Short: "run a ROM in a window",
	Args:  cobra.ExactArgs(1),
	Run:   runOctachip,
}

func init() {
	runCmd.Flags().IntVar(&cyclesPerFrame, "cycles-per-frame", 10, "CPU steps executed per rendered frame")
	runCmd.Flags().IntVar(&framesPerSec, "fps", 60, "target frames (and timer ticks) per second")
	runCmd.Flags().StringVar(&beepAssetPath, "beep", "assets/beep.mp3", "path to the beep tone asset")
	runCmd.Flags().BoolVar(&verboseRun, "verbose", false, "log each frame's halt state")
	runCmd.Flags().StringVar(&resumeState, "resume", "", "resume from a state file written by `octachip dump`")
}

func runOctachip(cmd *cobra.Command, args []string) {
	pathToROM := args[0]

	romBytes, err := rom.Load(pathToROM)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	win, err := display.NewWindow("octachip: " + pathToROM)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	keypad := chip8.NewBitsetKeypad()
	cpu, err := chip8.New(keypad, win, romBytes)
	if err != nil {
		fmt.Printf("error creating CPU: %v\n", err)
		os.Exit(1)
	}

	if resumeState != "" {
		snap, err := snapshotio.Load(resumeState)
		if err != nil {
			fmt.Printf("error loading state: %v\n", err)
			os.Exit(1)
		}
		if err := cpu.Restore(snap); err != nil {
			fmt.Printf("error restoring state: %v\n", err)
			os.Exit(1)
		}
	}

	beeper := audio.New(beepAssetPath)
	defer beeper.Close()

	ticker := time.NewTicker(time.Second / time.Duration(framesPerSec))
	defer ticker.Stop()

	for range ticker.C {
		if win.Closed() {
			return
		}

		for i := 0; i < cyclesPerFrame; i++ {
			if err := cpu.Step(); err != nil {
				fmt.Printf("step error: %v\n", err)
				return
			}
		}

		cpu.DecrementDelayTimer()
		if cpu.SoundTimer() == 1 {
			beeper.Trigger()
		}
		cpu.DecrementSoundTimer()

		win.HandleKeyInput(keypad)
		win.DrawGraphics(cpu.Framebuffer(), statusLine(cpu))

		if verboseRun {
			fmt.Printf("halted=%v reason=%v mode=%v\n", cpu.IsHalted(), cpu.HaltReason(), cpu.Mode())
		}
	}
}

func statusLine(cpu *chip8.CPU) string {
	if cpu.IsHalted() {
		return fmt.Sprintf("%s [halted: %s]", "octachip", cpu.HaltReason())
	}
	return "octachip"
}
