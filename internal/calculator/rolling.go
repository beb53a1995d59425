package calculator

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"gonum.org/v1/gonum/stat"

	"ProposalEngine/internal/model"
)

// RollingWindow is the rolling-return window length in months.
const RollingWindow = 12

const (
	histogramBuckets   = 10
	histogramMinWidth  = 0.01
	histogramPrecision = 1000 // one decimal place of a percent
)

// RollingReturns returns the compounded return of every trailing 12-month
// window, dated by the window's last month. Series shorter than 12 months
// yield an empty slice.
func RollingReturns(series model.ReturnSeries) []model.MonthlyReturn {
	if len(series) < RollingWindow {
		return []model.MonthlyReturn{}
	}
	values := series.Values()
	out := make([]model.MonthlyReturn, 0, len(series)-RollingWindow+1)
	for end := RollingWindow; end <= len(series); end++ {
		out = append(out, model.MonthlyReturn{
			Date:  series[end-1].Date,
			Value: CompoundReturn(values[end-RollingWindow : end]),
		})
	}
	return out
}

// AnalyzeRolling summarizes rolling returns. A window counts as positive only
// when its return is strictly above zero.
func AnalyzeRolling(rolling []model.MonthlyReturn) (model.RollingAnalysis, error) {
	if len(rolling) == 0 {
		return model.RollingAnalysis{}, fmt.Errorf("rolling analysis: %w", ErrEmptySeries)
	}
	values := make([]float64, len(rolling))
	positive := 0
	for i, r := range rolling {
		values[i] = r.Value
		if r.Value > 0 {
			positive++
		}
	}
	pctPositive := float64(positive) / float64(len(rolling)) * 100
	best, worst := values[0], values[0]
	for _, v := range values[1:] {
		best = math.Max(best, v)
		worst = math.Min(worst, v)
	}
	return model.RollingAnalysis{
		Windows:         len(rolling),
		PercentPositive: pctPositive,
		PercentNegative: 100 - pctPositive,
		Average:         stat.Mean(values, nil),
		Best:            best,
		Worst:           worst,
	}, nil
}

// RollingHistogram buckets rolling returns. The range is the data's min and
// max rounded outward to a tenth of a percent; bucket width is a tenth of
// that range but never below one percent. Only occupied buckets are returned,
// ordered by their numeric start.
func RollingHistogram(rolling []model.MonthlyReturn) []model.HistogramBin {
	if len(rolling) == 0 {
		return []model.HistogramBin{}
	}

	lo, hi := rolling[0].Value, rolling[0].Value
	for _, r := range rolling[1:] {
		lo = math.Min(lo, r.Value)
		hi = math.Max(hi, r.Value)
	}
	lo = math.Floor(lo*histogramPrecision) / histogramPrecision
	hi = math.Ceil(hi*histogramPrecision) / histogramPrecision
	width := math.Max(histogramMinWidth, (hi-lo)/histogramBuckets)
	buckets := int(math.Ceil((hi-lo)/width - 1e-9))
	if buckets < 1 {
		buckets = 1
	}

	counts := make(map[int]int)
	for _, r := range rolling {
		idx := int(math.Floor((r.Value - lo) / width))
		if idx < 0 {
			idx = 0
		}
		if idx >= buckets {
			idx = buckets - 1
		}
		counts[idx]++
	}

	bins := make([]model.HistogramBin, 0, len(counts))
	for idx, n := range counts {
		start := lo + float64(idx)*width
		end := start + width
		bins = append(bins, model.HistogramBin{
			Label:   fmt.Sprintf("%s%% to %s%%", formatPercent(start), formatPercent(end)),
			Start:   start,
			End:     end,
			Count:   n,
			Percent: float64(n) / float64(len(rolling)) * 100,
		})
	}
	sort.Slice(bins, func(i, j int) bool { return bins[i].Start < bins[j].Start })
	return bins
}

// formatPercent renders a fractional value as a percent with at most one decimal.
func formatPercent(v float64) string {
	pct := math.Round(v*histogramPrecision) / 10
	if pct == 0 {
		pct = 0 // drop negative zero
	}
	return strconv.FormatFloat(pct, 'f', -1, 64)
}
