package model

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// ReturnType tells how trailing returns were computed.
type ReturnType string

const (
	ReturnTypeTWR ReturnType = "TWR"
	ReturnTypeIRR ReturnType = "IRR"
)

// TrailingReturns holds annualized returns per trailing window. A nil field
// means the window had insufficient history (or the IRR did not converge).
type TrailingReturns struct {
	OneYear   *float64 `json:"1 Year"`
	ThreeYear *float64 `json:"3 Year"`
	FiveYear  *float64 `json:"5 Year"`
	TenYear   *float64 `json:"10 Year"`
}

// TrailingPeriods lists the windows reported, in years.
var TrailingPeriods = []int{1, 3, 5, 10}

// Get returns the field for a window length in years.
func (t TrailingReturns) Get(years int) *float64 {
	switch years {
	case 1:
		return t.OneYear
	case 3:
		return t.ThreeYear
	case 5:
		return t.FiveYear
	case 10:
		return t.TenYear
	}
	return nil
}

// Set stores v for a window length in years. Unknown windows are ignored.
func (t *TrailingReturns) Set(years int, v *float64) {
	switch years {
	case 1:
		t.OneYear = v
	case 3:
		t.ThreeYear = v
	case 5:
		t.FiveYear = v
	case 10:
		t.TenYear = v
	}
}

// Drawdown is one peak-to-trough-to-recovery episode of the wealth curve.
type Drawdown struct {
	PeakDate     string  `json:"peakDate"`
	TroughDate   string  `json:"troughDate"`
	RecoveryDate *string `json:"recoveryDate"`
	Drawdown     float64 `json:"drawdown"`
}

// RollingAnalysis summarizes the trailing 12-month return distribution.
// Percentages are expressed on a 0-100 scale.
type RollingAnalysis struct {
	Windows         int     `json:"windows"`
	PercentPositive float64 `json:"percentPositive"`
	PercentNegative float64 `json:"percentNegative"`
	Average         float64 `json:"average"`
	Best            float64 `json:"best"`
	Worst           float64 `json:"worst"`
}

// HistogramBin is one bucket of the rolling-return histogram. Start and End
// are fractional returns; Label is the display form ("5% to 10%").
type HistogramBin struct {
	Label   string  `json:"label"`
	Start   float64 `json:"start"`
	End     float64 `json:"end"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// GrowthPoint is one value of the growth-of-a-dollar curve.
type GrowthPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// DistributionAnalysis is the outcome of a retirement Monte Carlo run.
type DistributionAnalysis struct {
	SuccessRate        float64         `json:"successRate"`
	MedianFinalValue   decimal.Decimal `json:"medianFinalValue"`
	TotalDistributions decimal.Decimal `json:"totalDistributions"`
	SimulationYears    int             `json:"simulationYears"`
	Runs               int             `json:"runs"`
	Successes          int             `json:"successes"`
	P10FinalValue      decimal.Decimal `json:"p10FinalValue"`
	P90FinalValue      decimal.Decimal `json:"p90FinalValue"`
}

// OptionalDistribution is either a DistributionAnalysis or nothing.
// The zero value is absent.
type OptionalDistribution struct {
	analysis DistributionAnalysis
	present  bool
}

// PresentDistribution wraps a computed analysis.
func PresentDistribution(a DistributionAnalysis) OptionalDistribution {
	return OptionalDistribution{analysis: a, present: true}
}

// AbsentDistribution is the variant used when the simulation was not run.
func AbsentDistribution() OptionalDistribution {
	return OptionalDistribution{}
}

// Get returns the analysis and whether it is present.
func (o OptionalDistribution) Get() (DistributionAnalysis, bool) {
	return o.analysis, o.present
}

// IsZero reports absence; it lets encoding/json drop the field with omitzero.
func (o OptionalDistribution) IsZero() bool {
	return !o.present
}

func (o OptionalDistribution) MarshalJSON() ([]byte, error) {
	if !o.present {
		return []byte("null"), nil
	}
	return json.Marshal(o.analysis)
}

func (o *OptionalDistribution) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*o = AbsentDistribution()
		return nil
	}
	var a DistributionAnalysis
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*o = PresentDistribution(a)
	return nil
}

// PerformanceMetrics is everything computed for one return series.
type PerformanceMetrics struct {
	Name                       string               `json:"name"`
	Months                     int                  `json:"months"`
	Returns                    TrailingReturns      `json:"returns"`
	Volatility                 *float64             `json:"volatility"`
	Drawdowns                  []Drawdown           `json:"drawdowns"`
	RollingReturnsAnalysis     *RollingAnalysis     `json:"rollingReturnsAnalysis"`
	RollingReturnsDistribution []HistogramBin       `json:"rollingReturnsDistribution"`
	GrowthOfDollar             []GrowthPoint        `json:"growthOfDollar"`
	ReturnType                 ReturnType           `json:"returnType"`
	DistributionAnalysis       OptionalDistribution `json:"distributionAnalysis,omitzero"`
}

// Comparison puts a proposed portfolio next to its benchmark.
type Comparison struct {
	Proposal      string             `json:"proposal"`
	Portfolio     PerformanceMetrics `json:"portfolio"`
	Benchmark     PerformanceMetrics `json:"benchmark"`
	ExcessReturns TrailingReturns    `json:"excessReturns"`
}
