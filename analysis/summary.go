package analysis

import (
	"fmt"
	"io"

	"github.com/logrusorgru/aurora"
	"github.com/zeu5/bandit-testbed/core"
)

// SummaryComparator prints the mean reward and % optimal action of every
// agent over the last Window timesteps. The agent with the highest mean
// reward is marked, and highlighted when colours are enabled.
type SummaryComparator struct {
	out    io.Writer
	window int
	au     aurora.Aurora
}

var _ core.Comparator = &SummaryComparator{}

func NewSummaryComparator(out io.Writer, window int, colors bool) *SummaryComparator {
	return &SummaryComparator{
		out:    out,
		window: window,
		au:     aurora.NewAurora(colors),
	}
}

func (s *SummaryComparator) Compare(experiment string, result *core.Result) error {
	window := s.window
	if window <= 0 || window > result.Timesteps {
		window = result.Timesteps
	}

	best := 0
	rewards := make([]float64, len(result.Names))
	optimal := make([]float64, len(result.Names))
	for i := range result.Names {
		rewards[i], optimal[i] = result.Final(i, window)
		if rewards[i] > rewards[best] {
			best = i
		}
	}

	_, err := fmt.Fprintf(s.out, "%s (runs: %d, timesteps: %d, last %d steps)\n",
		s.au.Bold(experiment), result.Runs, result.Timesteps, window)
	if err != nil {
		return err
	}
	for i, name := range result.Names {
		line := fmt.Sprintf("  %-40s reward %8.4f  optimal %6.2f%%", name, rewards[i], 100*optimal[i])
		if i == best {
			_, err = fmt.Fprintf(s.out, "%s *\n", s.au.Green(line))
		} else {
			_, err = fmt.Fprintln(s.out, line)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
