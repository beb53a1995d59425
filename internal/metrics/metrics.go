package metrics

import (
	"log"

	"ProposalEngine/internal/calculator"
	"ProposalEngine/internal/model"
)

// Options carries the optional client context of a report.
type Options struct {
	// Name labels the series in logs and output.
	Name string
	// InvestmentAmount and AnnualDistribution switch trailing returns to IRR
	// mode when both are positive.
	InvestmentAmount   float64
	AnnualDistribution float64
	// ClientAge enables the retirement simulation when positive.
	ClientAge int
	// TargetAge defaults to 95.
	TargetAge int
	// Simulations defaults to 100.
	Simulations int
	// Seed is passed to the simulator; zero means unseeded.
	Seed int64
}

// MonthlyDistribution is the annual distribution spread evenly over twelve months.
func (o Options) MonthlyDistribution() float64 {
	return o.AnnualDistribution / calculator.MonthsPerYear
}

// UsesIRR reports whether trailing returns are money-weighted.
func (o Options) UsesIRR() bool {
	return o.InvestmentAmount > 0 && o.MonthlyDistribution() > 0
}

func (o Options) withDefaults() Options {
	if o.TargetAge == 0 {
		o.TargetAge = calculator.DefaultTargetAge
	}
	if o.Simulations == 0 {
		o.Simulations = calculator.DefaultSimulations
	}
	return o
}

// Calculate computes every metric of a return series. It never fails: each
// metric that cannot be computed is left nil, empty or absent and the reason
// is logged.
func Calculate(series model.ReturnSeries, opts Options) model.PerformanceMetrics {
	opts = opts.withDefaults()

	m := model.PerformanceMetrics{
		Name:       opts.Name,
		Months:     len(series),
		ReturnType: model.ReturnTypeTWR,
	}
	if opts.UsesIRR() {
		m.ReturnType = model.ReturnTypeIRR
	}

	// Trailing returns
	for _, years := range model.TrailingPeriods {
		var (
			v   float64
			err error
		)
		if m.ReturnType == model.ReturnTypeIRR {
			v, err = calculator.AnnualizedIRR(series, years, opts.InvestmentAmount, opts.MonthlyDistribution())
		} else {
			v, err = calculator.AnnualizedReturn(series, years)
		}
		if err != nil {
			log.Printf("[WARN] %s: %d-year %s unavailable: %v", opts.Name, years, m.ReturnType, err)
			continue
		}
		m.Returns.Set(years, &v)
	}

	// Volatility
	if vol, err := calculator.AnnualizedVolatility(series); err != nil {
		log.Printf("[WARN] %s: volatility unavailable: %v", opts.Name, err)
	} else {
		m.Volatility = &vol
	}

	m.Drawdowns = calculator.Drawdowns(series, calculator.MaxDrawdowns)

	// Rolling 12-month returns
	rolling := calculator.RollingReturns(series)
	if analysis, err := calculator.AnalyzeRolling(rolling); err != nil {
		log.Printf("[WARN] %s: rolling returns unavailable: %v", opts.Name, err)
	} else {
		m.RollingReturnsAnalysis = &analysis
	}
	m.RollingReturnsDistribution = calculator.RollingHistogram(rolling)

	m.GrowthOfDollar = calculator.GrowthOfDollar(series)

	m.DistributionAnalysis = distributionAnalysis(m, opts)
	return m
}

// distributionAnalysis runs the retirement simulation when the client context
// and the history allow it, using the 10-year return and full-history
// volatility as forward assumptions.
func distributionAnalysis(m model.PerformanceMetrics, opts Options) model.OptionalDistribution {
	switch {
	case opts.ClientAge <= 0, opts.InvestmentAmount <= 0, opts.AnnualDistribution <= 0:
		return model.AbsentDistribution()
	case m.Returns.TenYear == nil:
		log.Printf("[WARN] %s: distribution analysis skipped: no 10-year return", opts.Name)
		return model.AbsentDistribution()
	case m.Volatility == nil:
		log.Printf("[WARN] %s: distribution analysis skipped: no volatility", opts.Name)
		return model.AbsentDistribution()
	}

	analysis, err := calculator.SimulateDistributions(calculator.SimulationInput{
		InitialInvestment:  opts.InvestmentAmount,
		ClientAge:          opts.ClientAge,
		TargetAge:          opts.TargetAge,
		AnnualDistribution: opts.AnnualDistribution,
		MeanReturn:         *m.Returns.TenYear,
		Volatility:         *m.Volatility,
		NumSimulations:     opts.Simulations,
		Seed:               opts.Seed,
	})
	if err != nil {
		log.Printf("[WARN] %s: distribution analysis skipped: %v", opts.Name, err)
		return model.AbsentDistribution()
	}
	return model.PresentDistribution(analysis)
}
