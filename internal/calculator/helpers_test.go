package calculator

import (
	"fmt"
	"math"
	"math/rand"

	"ProposalEngine/internal/model"
)

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// monthlySeries builds a contiguous series starting January 2010.
func monthlySeries(values ...float64) model.ReturnSeries {
	s := make(model.ReturnSeries, len(values))
	for i, v := range values {
		s[i] = model.MonthlyReturn{
			Date:  fmt.Sprintf("%04d-%02d", 2010+i/12, i%12+1),
			Value: v,
		}
	}
	return s
}

func constantSeries(n int, v float64) model.ReturnSeries {
	values := make([]float64, n)
	for i := range values {
		values[i] = v
	}
	return monthlySeries(values...)
}

func randomSeries(rng *rand.Rand, n int) model.ReturnSeries {
	values := make([]float64, n)
	for i := range values {
		values[i] = rng.NormFloat64()*0.04 + 0.006
	}
	return monthlySeries(values...)
}
