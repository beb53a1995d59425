package model

// MonthlyReturn is one fractional return for a calendar month ("YYYY-MM").
type MonthlyReturn struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// ReturnSeries is a sequence of monthly returns ordered ascending by date.
// Gaps between months are tolerated and never filled.
type ReturnSeries []MonthlyReturn

// Values returns the return column.
func (s ReturnSeries) Values() []float64 {
	out := make([]float64, len(s))
	for i, r := range s {
		out[i] = r.Value
	}
	return out
}

// Dates returns the date column.
func (s ReturnSeries) Dates() []string {
	out := make([]string, len(s))
	for i, r := range s {
		out[i] = r.Date
	}
	return out
}

// Trailing returns a copy of the most recent n records. If n exceeds the
// series length the whole series is copied.
func (s ReturnSeries) Trailing(n int) ReturnSeries {
	if n <= 0 {
		return ReturnSeries{}
	}
	start := len(s) - n
	if start < 0 {
		start = 0
	}
	out := make(ReturnSeries, len(s)-start)
	copy(out, s[start:])
	return out
}

// Clone returns an independent copy of the series.
func (s ReturnSeries) Clone() ReturnSeries {
	out := make(ReturnSeries, len(s))
	copy(out, s)
	return out
}

// WeightedComponent is a series contributing to a blend with a fractional weight (0.6 for 60%).
type WeightedComponent struct {
	Name   string
	Series ReturnSeries
	Weight float64
}
