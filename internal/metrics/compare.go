package metrics

import (
	"context"

	"golang.org/x/sync/errgroup"

	"ProposalEngine/internal/calculator"
	"ProposalEngine/internal/model"
)

// Proposal is a portfolio to be presented against a benchmark.
type Proposal struct {
	Name          string
	PortfolioName string
	BenchmarkName string
	Portfolio     []model.WeightedComponent
	Benchmark     []model.WeightedComponent
	AnnualFeePct  float64
	ClientOptions Options
}

// Compare blends the portfolio (net of the proposal fee) and the benchmark,
// then computes both metric sets concurrently. Client options apply to both
// sides so their returns are measured the same way.
func Compare(ctx context.Context, p Proposal) (*model.Comparison, error) {
	portfolio := calculator.Blend(p.Portfolio, p.AnnualFeePct)
	benchmark := calculator.Blend(p.Benchmark, 0)

	c := &model.Comparison{Proposal: p.Name}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		opts := p.ClientOptions
		opts.Name = p.PortfolioName
		c.Portfolio = Calculate(portfolio, opts)
		return nil
	})
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		opts := p.ClientOptions
		opts.Name = p.BenchmarkName
		c.Benchmark = Calculate(benchmark, opts)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	c.ExcessReturns = ExcessReturns(c.Portfolio.Returns, c.Benchmark.Returns)
	return c, nil
}

// ExcessReturns subtracts benchmark from portfolio per window. A window is nil
// when either side is nil.
func ExcessReturns(portfolio, benchmark model.TrailingReturns) model.TrailingReturns {
	var out model.TrailingReturns
	for _, years := range model.TrailingPeriods {
		p, b := portfolio.Get(years), benchmark.Get(years)
		if p == nil || b == nil {
			continue
		}
		diff := *p - *b
		out.Set(years, &diff)
	}
	return out
}
