package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dipak93/Byzantine-Generals-Problem/oral"
	"github.com/dipak93/Byzantine-Generals-Problem/scenario"
)

func newBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch [presets...]",
		Short: "Run several named scenario presets concurrently and report each",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := args
			if len(names) == 0 {
				names = []string{"honest-source", "faulty-source", "reference", "all-unknown", "exact-tie"}
			}

			items := make([]oral.BatchItem, 0, len(names))
			for _, name := range names {
				p, ok := scenario.Named(name)
				if !ok {
					return fmt.Errorf("unrecognized preset %q", name)
				}
				items = append(items, oral.BatchItem{Name: name, Policy: p})
			}

			results := oral.Batch(context.Background(), items, slog.Default())
			out := cmd.OutOrStdout()
			for _, r := range results {
				if r.Err != nil {
					fmt.Fprintf(out, "%s: error: %v\n", r.Name, r.Err)
					continue
				}
				fmt.Fprintf(out, "%s:\n", r.Name)
				printReports(cmd, r.Reports)
			}
			return nil
		},
	}
	return cmd
}
