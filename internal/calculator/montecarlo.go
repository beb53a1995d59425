package calculator

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"

	"ProposalEngine/internal/model"
)

const (
	// DefaultSimulations is the trial count used when none is given.
	DefaultSimulations = 100
	// DefaultTargetAge is the age the retirement projection runs to.
	DefaultTargetAge = 95
)

// SimulationInput parameterizes a retirement Monte Carlo run. Returns and
// volatility are annual fractions; amounts are currency units.
type SimulationInput struct {
	InitialInvestment  float64
	ClientAge          int
	TargetAge          int
	AnnualDistribution float64
	MeanReturn         float64
	Volatility         float64
	NumSimulations     int
	// Seed makes a run reproducible. Zero seeds from the clock.
	Seed int64
}

// Years is the projection length.
func (in SimulationInput) Years() int {
	return in.TargetAge - in.ClientAge
}

func (in SimulationInput) validate() error {
	switch {
	case in.ClientAge <= 0:
		return fmt.Errorf("client age must be positive, got %d: %w", in.ClientAge, ErrInvalidSimulationInputs)
	case in.ClientAge >= in.TargetAge:
		return fmt.Errorf("client age %d must be below target age %d: %w", in.ClientAge, in.TargetAge, ErrInvalidSimulationInputs)
	case in.InitialInvestment <= 0:
		return fmt.Errorf("investment must be positive: %w", ErrInvalidSimulationInputs)
	case in.AnnualDistribution <= 0:
		return fmt.Errorf("annual distribution must be positive: %w", ErrInvalidSimulationInputs)
	case in.NumSimulations <= 0:
		return fmt.Errorf("simulation count must be positive, got %d: %w", in.NumSimulations, ErrInvalidSimulationInputs)
	case in.Volatility < 0:
		return fmt.Errorf("volatility must not be negative: %w", ErrInvalidSimulationInputs)
	}
	return nil
}

// SimulateDistributions projects a portfolio year by year from the client's
// age to the target age. Each year draws a normal return mean+z*volatility,
// grows the balance, then withdraws min(balance, distribution). A trial fails
// when the balance is exhausted before the final simulated year.
//
// Zero successes is a valid result (0% success, zero amounts).
func SimulateDistributions(in SimulationInput) (model.DistributionAnalysis, error) {
	if err := in.validate(); err != nil {
		return model.DistributionAnalysis{}, err
	}
	seed := in.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	years := in.Years()
	outcomes := make([]trialOutcome, in.NumSimulations)
	for i := range outcomes {
		outcomes[i].final, outcomes[i].survived = runTrial(rng, in, years)
	}
	return summarizeTrials(outcomes, in.AnnualDistribution, years)
}

type trialOutcome struct {
	final    float64
	survived bool
}

// summarizeTrials aggregates trial outcomes. The median and percentile final
// values are taken over surviving trials only.
func summarizeTrials(outcomes []trialOutcome, annualDistribution float64, years int) (model.DistributionAnalysis, error) {
	finals := make([]float64, 0, len(outcomes))
	for _, o := range outcomes {
		if o.survived {
			finals = append(finals, o.final)
		}
	}

	result := model.DistributionAnalysis{
		SimulationYears: years,
		Runs:            len(outcomes),
		Successes:       len(finals),
	}
	if len(outcomes) > 0 {
		result.SuccessRate = float64(len(finals)) / float64(len(outcomes)) * 100
	}
	if len(finals) == 0 {
		return result, nil
	}

	data := stats.Float64Data(finals)
	median, err := stats.Median(data)
	if err != nil {
		return model.DistributionAnalysis{}, fmt.Errorf("median final value: %w", err)
	}
	// nearest rank stays defined below ten survivors
	p10, err := stats.PercentileNearestRank(data, 10)
	if err != nil {
		return model.DistributionAnalysis{}, fmt.Errorf("10th percentile: %w", err)
	}
	p90, err := stats.PercentileNearestRank(data, 90)
	if err != nil {
		return model.DistributionAnalysis{}, fmt.Errorf("90th percentile: %w", err)
	}

	result.MedianFinalValue = currency(median)
	result.P10FinalValue = currency(p10)
	result.P90FinalValue = currency(p90)
	result.TotalDistributions = currency(annualDistribution * float64(years))
	return result, nil
}

// runTrial simulates one path and returns its final balance and whether it survived.
func runTrial(rng *rand.Rand, in SimulationInput, years int) (float64, bool) {
	value := in.InitialInvestment
	for year := 0; year < years; year++ {
		annualReturn := in.MeanReturn + boxMuller(rng)*in.Volatility
		value *= 1 + annualReturn
		value -= clampedWithdrawal(value, in.AnnualDistribution)
		if value <= 0 && year < years-1 {
			return 0, false
		}
	}
	return value, true
}

// boxMuller draws a standard normal variate from two uniforms.
func boxMuller(rng *rand.Rand) float64 {
	u1 := 1 - rng.Float64() // (0, 1]
	u2 := rng.Float64()
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}

func currency(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}
