package calculator

import "ProposalEngine/internal/model"

// MonthsPerYear is the periodicity of every series handled here.
const MonthsPerYear = 12

// AdjustForFee deducts annualFeePercent/100/12 from every monthly return.
// The deduction is simple pro-rata, not compounded. A zero or negative fee
// returns an unchanged copy.
func AdjustForFee(series model.ReturnSeries, annualFeePercent float64) model.ReturnSeries {
	out := series.Clone()
	if annualFeePercent <= 0 {
		return out
	}
	monthlyFee := annualFeePercent / 100 / MonthsPerYear
	for i := range out {
		out[i].Value -= monthlyFee
	}
	return out
}
