// Command byzgen runs the oral-messages Byzantine Generals simulator:
// build a scenario from flags, a YAML file, or a named preset, execute
// the round loop, print the per-participant report, and optionally drop
// into an interactive DOT/text dump REPL.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "byzgen",
		Short: "Simulate the Lamport-Shostak-Pease oral-messages Byzantine Generals protocol",
	}
	root.AddCommand(newRunCmd())
	root.AddCommand(newBatchCmd())
	return root
}
