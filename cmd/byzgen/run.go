package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dipak93/Byzantine-Generals-Problem/core"
	"github.com/dipak93/Byzantine-Generals-Problem/oral"
	"github.com/dipak93/Byzantine-Generals-Problem/render"
	"github.com/dipak93/Byzantine-Generals-Problem/scenario"
)

func newRunCmd() *cobra.Command {
	var (
		n, m, sourceID int
		debug          bool
		sourceValue    int
		defaultValue   int
		preset         string
		configPath     string
		repl           bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one simulation and report each participant's decision",
		RunE: func(cmd *cobra.Command, args []string) error {
			var policy core.Policy
			switch {
			case configPath != "":
				p, err := scenario.LoadFile(configPath)
				if err != nil {
					return err
				}
				policy = p
			case preset != "":
				p, ok := scenario.Named(preset)
				if !ok {
					return fmt.Errorf("unrecognized preset %q", preset)
				}
				policy = p
			default:
				policy = scenario.NewPolicy(sourceID, m, n, core.Value(sourceValue), core.Value(defaultValue)).WithDebug(debug)
			}

			logger := slog.Default()
			if policy.Debug() {
				logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
			}
			sim, err := oral.New(policy, logger)
			if err != nil {
				return err
			}
			if err := sim.Run(context.Background()); err != nil {
				return err
			}

			printReports(cmd, sim.Reports())

			if repl {
				return runRepl(cmd, sim)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&n, "n", 7, "number of participants")
	cmd.Flags().IntVar(&m, "m", 2, "recursion depth (rounds beyond round 0)")
	cmd.Flags().IntVar(&sourceID, "source", 3, "source (commander) participant id")
	cmd.Flags().BoolVar(&debug, "debug", false, "emit per-delivery trace lines")
	cmd.Flags().IntVar(&sourceValue, "source-value", int(core.Zero), "source's true value (0=ZERO, 1=ONE)")
	cmd.Flags().IntVar(&defaultValue, "default-value", int(core.One), "tie-break default (0=ZERO, 1=ONE)")
	cmd.Flags().StringVar(&preset, "preset", "", "named scenario preset (overrides n/m/source flags)")
	cmd.Flags().StringVar(&configPath, "config", "", "path to a YAML scenario document (overrides preset and flags)")
	cmd.Flags().BoolVar(&repl, "repl", false, "start the interactive dump REPL after reporting")

	return cmd
}

func printReports(cmd *cobra.Command, reports []oral.Report) {
	out := cmd.OutOrStdout()
	for _, r := range reports {
		var line strings.Builder
		if r.IsSource {
			line.WriteString("Source ")
		}
		fmt.Fprintf(&line, "Process %d", r.ID)
		switch {
		case r.IsFaulty && !r.IsSource:
			line.WriteString(" is faulty")
		case r.Err != nil:
			fmt.Fprintf(&line, " error: %v", r.Err)
		default:
			fmt.Fprintf(&line, " decides on value %s", r.Decision)
		}
		fmt.Fprintln(out, line.String())
	}
}

func runRepl(cmd *cobra.Command, sim *oral.Simulation) error {
	out := cmd.OutOrStdout()
	scanner := bufio.NewScanner(cmd.InOrStdin())

	for {
		fmt.Fprint(out, "\nID of process to dump, or enter to quit: ")
		if !scanner.Scan() {
			return nil
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			return nil
		}

		id, err := strconv.Atoi(line)
		if err != nil || sim.Participant(id) == nil {
			fmt.Fprintf(out, "no such process %q\n", line)
			continue
		}

		p := sim.Participant(id)
		topo := sim.Topology()

		if sim.Policy().Debug() {
			fmt.Fprintln(out, render.Text(p, topo, topo.Root()))
		}
		fmt.Fprintln(out, render.DOT(p, topo, topo.Root()))
	}
}
