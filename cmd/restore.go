package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkessler-dev/octachip/internal/chip8"
	"github.com/mkessler-dev/octachip/internal/rom"
	"github.com/mkessler-dev/octachip/internal/snapshotio"
)

var restoreCycles int

// restoreCmd loads a ROM and a previously dumped state file, resumes
// execution headlessly for a fixed number of cycles, and reports the
// resulting state. `run --resume` does the windowed equivalent.
var restoreCmd = &cobra.Command{
	Use:   "restore path/to/rom path/to/state",
	Short: "resume a ROM from a dumped state file and report its state",
	Args:  cobra.ExactArgs(2),
	Run:   runRestore,
}

func init() {
	restoreCmd.Flags().IntVar(&restoreCycles, "cycles", 1000, "number of CPU steps to execute after restoring")
}

func runRestore(cmd *cobra.Command, args []string) {
	romPath, statePath := args[0], args[1]

	romBytes, err := rom.Load(romPath)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	snap, err := snapshotio.Load(statePath)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	cpu, err := chip8.New(chip8.NewBitsetKeypad(), chip8.NopDisplay{}, romBytes)
	if err != nil {
		fmt.Printf("error creating CPU: %v\n", err)
		os.Exit(1)
	}
	if err := cpu.Restore(snap); err != nil {
		fmt.Printf("error restoring state: %v\n", err)
		os.Exit(1)
	}

	for i := 0; i < restoreCycles && !cpu.IsHalted(); i++ {
		if err := cpu.Step(); err != nil {
			fmt.Printf("step error: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Printf("resumed from %s (halted=%v reason=%v)\n", statePath, cpu.IsHalted(), cpu.HaltReason())
}
