package report

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"ProposalEngine/internal/model"
)

const notAvailable = "N/A"

// FormatSummary renders a comparison as Markdown tables. Any value that could
// not be computed is printed as N/A.
func FormatSummary(c *model.Comparison) string {
	var b strings.Builder
	p, bm := &c.Portfolio, &c.Benchmark

	b.WriteString(fmt.Sprintf("# %s\n\n", c.Proposal))

	// Trailing returns
	b.WriteString(fmt.Sprintf("## Trailing Returns (%s)\n\n", p.ReturnType))
	b.WriteString(fmt.Sprintf("| Period | %s | %s | Excess |\n", p.Name, bm.Name))
	b.WriteString("|---|---:|---:|---:|\n")
	for _, years := range model.TrailingPeriods {
		b.WriteString(fmt.Sprintf("| %d Year | %s | %s | %s |\n", years,
			percentOrNA(p.Returns.Get(years)),
			percentOrNA(bm.Returns.Get(years)),
			percentOrNA(c.ExcessReturns.Get(years))))
	}
	b.WriteString(fmt.Sprintf("| Volatility | %s | %s | |\n\n", percentOrNA(p.Volatility), percentOrNA(bm.Volatility)))

	// Drawdowns
	b.WriteString("## Largest Drawdowns\n\n")
	writeDrawdowns(&b, p)
	writeDrawdowns(&b, bm)

	// Rolling returns
	b.WriteString("## Rolling 12-Month Returns\n\n")
	b.WriteString(fmt.Sprintf("| | %s | %s |\n", p.Name, bm.Name))
	b.WriteString("|---|---:|---:|\n")
	writeRollingRow(&b, "Windows", p, bm, func(r *model.RollingAnalysis) string { return fmt.Sprintf("%d", r.Windows) })
	writeRollingRow(&b, "Positive", p, bm, func(r *model.RollingAnalysis) string { return fmt.Sprintf("%.1f%%", r.PercentPositive) })
	writeRollingRow(&b, "Negative", p, bm, func(r *model.RollingAnalysis) string { return fmt.Sprintf("%.1f%%", r.PercentNegative) })
	writeRollingRow(&b, "Average", p, bm, func(r *model.RollingAnalysis) string { return formatPercent(r.Average) })
	writeRollingRow(&b, "Best", p, bm, func(r *model.RollingAnalysis) string { return formatPercent(r.Best) })
	writeRollingRow(&b, "Worst", p, bm, func(r *model.RollingAnalysis) string { return formatPercent(r.Worst) })
	b.WriteString("\n")

	// Distribution analysis, only when at least one side ran the simulation
	pd, pOK := p.DistributionAnalysis.Get()
	bd, bOK := bm.DistributionAnalysis.Get()
	if pOK || bOK {
		b.WriteString("## Retirement Distribution Analysis\n\n")
		b.WriteString(fmt.Sprintf("| | %s | %s |\n", p.Name, bm.Name))
		b.WriteString("|---|---:|---:|\n")
		rows := []struct {
			label string
			value func(model.DistributionAnalysis) string
		}{
			{"Success Rate", func(d model.DistributionAnalysis) string { return fmt.Sprintf("%.1f%%", d.SuccessRate) }},
			{"Median Final Value", func(d model.DistributionAnalysis) string { return formatCurrency(d.MedianFinalValue) }},
			{"10th Percentile", func(d model.DistributionAnalysis) string { return formatCurrency(d.P10FinalValue) }},
			{"90th Percentile", func(d model.DistributionAnalysis) string { return formatCurrency(d.P90FinalValue) }},
			{"Total Distributions", func(d model.DistributionAnalysis) string { return formatCurrency(d.TotalDistributions) }},
			{"Years Simulated", func(d model.DistributionAnalysis) string { return fmt.Sprintf("%d", d.SimulationYears) }},
		}
		for _, row := range rows {
			left, right := notAvailable, notAvailable
			if pOK {
				left = row.value(pd)
			}
			if bOK {
				right = row.value(bd)
			}
			b.WriteString(fmt.Sprintf("| %s | %s | %s |\n", row.label, left, right))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func writeDrawdowns(b *strings.Builder, m *model.PerformanceMetrics) {
	b.WriteString(fmt.Sprintf("### %s\n\n", m.Name))
	if len(m.Drawdowns) == 0 {
		b.WriteString("No drawdowns.\n\n")
		return
	}
	b.WriteString("| Peak | Trough | Recovery | Drawdown |\n")
	b.WriteString("|---|---|---|---:|\n")
	for _, d := range m.Drawdowns {
		recovery := notAvailable
		if d.RecoveryDate != nil {
			recovery = *d.RecoveryDate
		}
		b.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n", d.PeakDate, d.TroughDate, recovery, formatPercent(d.Drawdown)))
	}
	b.WriteString("\n")
}

func writeRollingRow(b *strings.Builder, label string, p, bm *model.PerformanceMetrics, value func(*model.RollingAnalysis) string) {
	left, right := notAvailable, notAvailable
	if p.RollingReturnsAnalysis != nil {
		left = value(p.RollingReturnsAnalysis)
	}
	if bm.RollingReturnsAnalysis != nil {
		right = value(bm.RollingReturnsAnalysis)
	}
	b.WriteString(fmt.Sprintf("| %s | %s | %s |\n", label, left, right))
}

func formatPercent(v float64) string {
	return fmt.Sprintf("%.2f%%", v*100)
}

func percentOrNA(v *float64) string {
	if v == nil {
		return notAvailable
	}
	return formatPercent(*v)
}

func formatCurrency(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
