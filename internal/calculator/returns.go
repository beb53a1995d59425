package calculator

import (
	"fmt"
	"math"

	"ProposalEngine/internal/model"
)

// CompoundReturn links the returns geometrically: prod(1+r) - 1.
func CompoundReturn(values []float64) float64 {
	product := 1.0
	for _, v := range values {
		product *= 1 + v
	}
	return product - 1
}

// AnnualizedReturn computes the time-weighted return over the trailing
// years*12 months, annualized as product^(12/months) - 1.
func AnnualizedReturn(series model.ReturnSeries, years int) (float64, error) {
	if years <= 0 {
		return 0, fmt.Errorf("period must be positive, got %d years", years)
	}
	months := years * MonthsPerYear
	if len(series) < months {
		return 0, fmt.Errorf("%d-year return needs %d months, have %d: %w", years, months, len(series), ErrInsufficientHistory)
	}
	product := 1 + CompoundReturn(series.Trailing(months).Values())
	return math.Pow(product, float64(MonthsPerYear)/float64(months)) - 1, nil
}
