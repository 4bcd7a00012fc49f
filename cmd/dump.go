package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkessler-dev/octachip/internal/chip8"
	"github.com/mkessler-dev/octachip/internal/rom"
	"github.com/mkessler-dev/octachip/internal/snapshotio"
)

var dumpCycles int

// dumpCmd runs a ROM headlessly for a fixed number of cycles and writes
// the resulting CPU state to a file, exercising Snapshot outside of the
// windowed `run` command.
var dumpCmd = &cobra.Command{
	Use:   "dump path/to/rom path/to/state",
	Short: "run a ROM headlessly and write its state to a file",
	Args:  cobra.ExactArgs(2),
	Run:   runDump,
}

func init() {
	dumpCmd.Flags().IntVar(&dumpCycles, "cycles", 1000, "number of CPU steps to execute before dumping state")
}

func runDump(cmd *cobra.Command, args []string) {
	romPath, statePath := args[0], args[1]

	romBytes, err := rom.Load(romPath)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	cpu, err := chip8.New(chip8.NewBitsetKeypad(), chip8.NopDisplay{}, romBytes)
	if err != nil {
		fmt.Printf("error creating CPU: %v\n", err)
		os.Exit(1)
	}

	for i := 0; i < dumpCycles && !cpu.IsHalted(); i++ {
		if err := cpu.Step(); err != nil {
			fmt.Printf("step error: %v\n", err)
			os.Exit(1)
		}
	}

	if err := snapshotio.Save(statePath, cpu.Snapshot()); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	fmt.Printf("wrote state to %s (halted=%v reason=%v)\n", statePath, cpu.IsHalted(), cpu.HaltReason())
}
