package analysis

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
	"github.com/zeu5/bandit-testbed/core"
)

// ChartComparator renders the learning curves of an experiment into an
// HTML page with two line charts: average reward and % optimal action
type ChartComparator struct {
	savePath string
}

var _ core.Comparator = &ChartComparator{}

func NewChartComparator(savePath string) *ChartComparator {
	return &ChartComparator{
		savePath: savePath,
	}
}

// FileName returns where the page of an experiment is written
func (c *ChartComparator) FileName(experiment string) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ' ', ':':
			return '_'
		}
		return r
	}, experiment)
	return filepath.Join(c.savePath, name+".html")
}

func (c *ChartComparator) Compare(experiment string, result *core.Result) error {
	if err := os.MkdirAll(c.savePath, 0755); err != nil {
		return err
	}

	steps := make([]string, result.Timesteps)
	for i := range steps {
		steps[i] = strconv.Itoa(i + 1)
	}
	subtitle := fmt.Sprintf("%d runs", result.Runs)

	rewards := newLineChart(experiment+": average reward", subtitle, "Average reward")
	rewards.SetXAxis(steps)
	optimal := newLineChart(experiment+": optimal action", subtitle, "% Optimal action")
	optimal.SetXAxis(steps)

	for i, name := range result.Names {
		rewardItems := make([]opts.LineData, result.Timesteps)
		optimalItems := make([]opts.LineData, result.Timesteps)
		for t := 0; t < result.Timesteps; t++ {
			rewardItems[t] = opts.LineData{Value: result.Rewards[i][t]}
			optimalItems[t] = opts.LineData{Value: 100 * result.OptimalActions[i][t]}
		}
		rewards.AddSeries(name, rewardItems)
		optimal.AddSeries(name, optimalItems)
	}

	page := components.NewPage()
	page.AddCharts(rewards, optimal)

	f, err := os.Create(c.FileName(experiment))
	if err != nil {
		return err
	}
	defer f.Close()
	return page.Render(f)
}

func newLineChart(title, subtitle, yName string) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeInfographic,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: subtitle,
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Steps"}),
		charts.WithYAxisOpts(opts.YAxis{Name: yName}),
	)
	return line
}
