package cmd

import (
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/mattn/go-isatty"
	"github.com/zeu5/bandit-testbed/analysis"
	"github.com/zeu5/bandit-testbed/core"
	"github.com/zeu5/bandit-testbed/util"
)

func runComparison(out io.Writer, cmp *core.Comparison) error {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt) // channel for interrupts from os
	defer signal.Stop(sigCh)

	doneCh := make(chan struct{}) // channel for done signal from application
	defer close(doneCh)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		select {
		case <-sigCh:
		case <-doneCh:
		}
		cancel()
	}()

	var progressOut *os.File
	if !flags.Quiet {
		progressOut = os.Stderr
	}
	return executeComparison(ctx, cmp, out, util.NewProgressWriter(progressOut))
}

func addComparators(cmp *core.Comparison) {
	if flags.NoChart {
		cmp.AddComparator("chart", analysis.NewNoOpComparator())
	} else {
		cmp.AddComparator("chart", analysis.NewChartComparator(flags.SavePath))
	}
}

// executeComparison runs the comparison and prints the summaries once the
// progress writer is stopped, a live writer would clear lines printed
// while it is active
func executeComparison(ctx context.Context, cmp *core.Comparison, out io.Writer, progress *util.ProgressWriter) error {
	addComparators(cmp)

	progress.Start()
	results, runErr := cmp.Run(ctx, &core.RunConfig{
		Timesteps: flags.Timesteps,
		Runs:      flags.Runs,
		Seed:      flags.Seed,
		Writer:    progress,
	})
	progress.Stop()

	colors := false
	if f, ok := out.(*os.File); ok {
		colors = isatty.IsTerminal(f.Fd())
	}
	summary := analysis.NewSummaryComparator(out, flags.SummaryWindow, colors)
	for _, e := range cmp.Experiments {
		result, ok := results[e.Name]
		if !ok {
			continue
		}
		if err := summary.Compare(e.Name, result); err != nil {
			return err
		}
	}
	return runErr
}
