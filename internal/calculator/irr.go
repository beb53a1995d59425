package calculator

import (
	"fmt"
	"math"

	"ProposalEngine/internal/model"
)

// Bisection bounds and stopping rules for the monthly IRR search.
const (
	irrLowerBound    = -0.99
	irrUpperBound    = 1.0
	irrTolerance     = 1e-7
	irrMaxIterations = 100
)

// DistributionCashFlows builds the monthly cash flows of an investor who puts
// in investment up front and withdraws monthlyDistribution every month.
//
// Flow 0 is -investment. For each month the balance grows by the month's
// return, then the withdrawal is clamped to the available balance so the
// balance never goes negative. The remaining balance is liquidated into the
// last month's flow.
func DistributionCashFlows(series model.ReturnSeries, investment, monthlyDistribution float64) []float64 {
	flows := make([]float64, len(series)+1)
	flows[0] = -investment
	value := investment
	for i, r := range series {
		value *= 1 + r.Value
		withdrawal := clampedWithdrawal(value, monthlyDistribution)
		value -= withdrawal
		flows[i+1] = withdrawal
	}
	if len(series) > 0 {
		flows[len(series)] += value
	}
	return flows
}

func clampedWithdrawal(balance, requested float64) float64 {
	return math.Min(balance, requested)
}

// NPV discounts cash flows at a per-period rate. Flow t is discounted by (1+rate)^t.
func NPV(rate float64, flows []float64) float64 {
	npv := 0.0
	for t, cf := range flows {
		npv += cf / math.Pow(1+rate, float64(t))
	}
	return npv
}

// IRR finds the per-period rate where NPV is zero by bisection over
// [-0.99, 1.0]. It fails when the bounds do not bracket a sign change or the
// search does not converge within 100 iterations.
func IRR(flows []float64) (float64, error) {
	if len(flows) < 2 {
		return 0, fmt.Errorf("need at least 2 cash flows, have %d: %w", len(flows), ErrNonConvergentIRR)
	}
	lo, hi := irrLowerBound, irrUpperBound
	npvLo, npvHi := NPV(lo, flows), NPV(hi, flows)
	if math.IsNaN(npvLo) || math.IsNaN(npvHi) || npvLo*npvHi > 0 {
		return 0, fmt.Errorf("no sign change between %.2f and %.2f: %w", lo, hi, ErrNonConvergentIRR)
	}
	if npvLo == 0 {
		return lo, nil
	}
	if npvHi == 0 {
		return hi, nil
	}

	for i := 0; i < irrMaxIterations; i++ {
		mid := (lo + hi) / 2
		npvMid := NPV(mid, flows)
		if math.Abs(npvMid) < irrTolerance || (hi-lo)/2 < irrTolerance {
			return mid, nil
		}
		if (npvMid > 0) == (npvLo > 0) {
			lo, npvLo = mid, npvMid
		} else {
			hi = mid
		}
	}
	return 0, fmt.Errorf("no convergence after %d iterations: %w", irrMaxIterations, ErrNonConvergentIRR)
}

// AnnualizedIRR computes the money-weighted return of the trailing years*12
// months for an investor taking monthly distributions, annualized as
// (1+monthly)^12 - 1.
func AnnualizedIRR(series model.ReturnSeries, years int, investment, monthlyDistribution float64) (float64, error) {
	if years <= 0 {
		return 0, fmt.Errorf("period must be positive, got %d years", years)
	}
	months := years * MonthsPerYear
	if len(series) < months {
		return 0, fmt.Errorf("%d-year irr needs %d months, have %d: %w", years, months, len(series), ErrInsufficientHistory)
	}
	flows := DistributionCashFlows(series.Trailing(months), investment, monthlyDistribution)
	monthly, err := IRR(flows)
	if err != nil {
		return 0, fmt.Errorf("%d-year irr: %w", years, err)
	}
	return math.Pow(1+monthly, MonthsPerYear) - 1, nil
}
