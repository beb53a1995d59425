package calculator

import "ProposalEngine/internal/model"

// Blend combines weighted components into one series on the date axis of the
// first component. A later component with no return for one of those months
// contributes zero for that month; dates only present in later components are
// dropped. Weights are not normalized. A positive annualFeePercent is deducted
// from the blended result.
func Blend(components []model.WeightedComponent, annualFeePercent float64) model.ReturnSeries {
	if len(components) == 0 {
		return model.ReturnSeries{}
	}

	// One full-weight component returns its own values. Summing from 0.0
	// would turn a -0.0 month into +0.0.
	if len(components) == 1 && components[0].Weight == 1 {
		return AdjustForFee(components[0].Series.Clone(), annualFeePercent)
	}

	lookups := make([]map[string]float64, len(components))
	for i, c := range components {
		m := make(map[string]float64, len(c.Series))
		for _, r := range c.Series {
			m[r.Date] = r.Value
		}
		lookups[i] = m
	}

	axis := components[0].Series
	blended := make(model.ReturnSeries, len(axis))
	for i, r := range axis {
		sum := 0.0
		for j, c := range components {
			if v, ok := lookups[j][r.Date]; ok {
				sum += c.Weight * v
			}
		}
		blended[i] = model.MonthlyReturn{Date: r.Date, Value: sum}
	}

	return AdjustForFee(blended, annualFeePercent)
}
