package calculator

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"ProposalEngine/internal/model"
)

// AnnualizedVolatility is the sample standard deviation (n-1) of every
// monthly return in the series, scaled by sqrt(12). It always uses the full
// history, independent of any trailing return window.
func AnnualizedVolatility(series model.ReturnSeries) (float64, error) {
	if len(series) < 2 {
		return 0, fmt.Errorf("volatility needs 2 months, have %d: %w", len(series), ErrInsufficientHistory)
	}
	return stat.StdDev(series.Values(), nil) * math.Sqrt(MonthsPerYear), nil
}
