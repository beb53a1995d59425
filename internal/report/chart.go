package report

import (
	"errors"
	"fmt"

	"github.com/vicanso/go-charts/v2"

	"ProposalEngine/internal/model"
)

// ErrNoChartData is returned when a chart would have nothing to plot.
var ErrNoChartData = errors.New("no chart data")

const (
	chartWidth  = 900
	chartHeight = 500
)

// GrowthChart plots the growth of a dollar for both sides of a comparison as
// a PNG. The benchmark is aligned to the portfolio's months; a month the
// benchmark lacks repeats its previous value.
func GrowthChart(c *model.Comparison) ([]byte, error) {
	growth := c.Portfolio.GrowthOfDollar
	if len(growth) == 0 {
		return nil, ErrNoChartData
	}

	xLabels := make([]string, len(growth))
	portfolio := make([]float64, len(growth))
	for i, p := range growth {
		xLabels[i] = p.Date
		portfolio[i] = p.Value
	}

	byDate := make(map[string]float64, len(c.Benchmark.GrowthOfDollar))
	for _, p := range c.Benchmark.GrowthOfDollar {
		byDate[p.Date] = p.Value
	}
	benchmark := make([]float64, len(growth))
	last := 1.0
	for i, date := range xLabels {
		if v, ok := byDate[date]; ok {
			last = v
		}
		benchmark[i] = last
	}

	p, err := charts.LineRender(
		[][]float64{portfolio, benchmark},
		charts.TitleTextOptionFunc(c.Proposal+"\nGrowth of $1"),
		charts.XAxisOptionFunc(charts.XAxisOption{
			Data:        xLabels,
			SplitNumber: splitNumber(len(xLabels)),
			BoundaryGap: charts.FalseFlag(),
		}),
		charts.LegendOptionFunc(charts.LegendOption{
			Data: []string{c.Portfolio.Name, c.Benchmark.Name},
			Top:  charts.PositionTop,
		}),
		charts.ThemeOptionFunc(charts.ThemeLight),
		charts.WidthOptionFunc(chartWidth),
		charts.HeightOptionFunc(chartHeight),
	)
	if err != nil {
		return nil, fmt.Errorf("render growth chart: %w", err)
	}
	buf, err := p.Bytes()
	if err != nil {
		return nil, fmt.Errorf("encode growth chart: %w", err)
	}
	return buf, nil
}

// HistogramChart draws the rolling 12-month return histogram of one side as
// a bar chart of window counts per bucket.
func HistogramChart(m *model.PerformanceMetrics, title string) ([]byte, error) {
	bins := m.RollingReturnsDistribution
	if len(bins) == 0 {
		return nil, ErrNoChartData
	}

	labels := make([]string, len(bins))
	counts := make([]float64, len(bins))
	for i, bin := range bins {
		labels[i] = bin.Label
		counts[i] = float64(bin.Count)
	}

	p, err := charts.BarRender(
		[][]float64{counts},
		charts.TitleTextOptionFunc(title),
		charts.XAxisDataOptionFunc(labels),
		charts.LegendOptionFunc(charts.LegendOption{
			Data: []string{m.Name},
			Top:  charts.PositionTop,
		}),
		charts.ThemeOptionFunc(charts.ThemeLight),
		charts.WidthOptionFunc(chartWidth),
		charts.HeightOptionFunc(chartHeight),
	)
	if err != nil {
		return nil, fmt.Errorf("render histogram: %w", err)
	}
	buf, err := p.Bytes()
	if err != nil {
		return nil, fmt.Errorf("encode histogram: %w", err)
	}
	return buf, nil
}

// splitNumber caps the x axis at a dozen labels.
func splitNumber(points int) int {
	if points < 12 {
		return points
	}
	return 12
}
