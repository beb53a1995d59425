package calculator

import (
	"errors"
	"math"
	"testing"
)

func TestAnnualizedReturn_OneYearConstant(t *testing.T) {
	got, err := AnnualizedReturn(constantSeries(12, 0.01), 1)
	if err != nil {
		t.Fatal(err)
	}
	want := math.Pow(1.01, 12) - 1
	if !approxEqual(got, want, 1e-12) || !approxEqual(got, 0.126825, 1e-6) {
		t.Errorf("expected %.6f, got %.6f", want, got)
	}
}

func TestAnnualizedReturn_UsesTrailingMonths(t *testing.T) {
	// 12 bad months followed by 12 flat months: the 1-year window sees only the flat ones.
	values := make([]float64, 24)
	for i := 0; i < 12; i++ {
		values[i] = -0.05
	}
	s := monthlySeries(values...)
	got, err := AnnualizedReturn(s, 1)
	if err != nil {
		t.Fatal(err)
	}
	if got != 0 {
		t.Errorf("expected 0, got %.6f", got)
	}
}

func TestAnnualizedReturn_ThreeYears(t *testing.T) {
	got, err := AnnualizedReturn(constantSeries(40, 0.005), 3)
	if err != nil {
		t.Fatal(err)
	}
	want := math.Pow(1.005, 12) - 1
	if !approxEqual(got, want, 1e-12) {
		t.Errorf("expected %.8f, got %.8f", want, got)
	}
}

func TestAnnualizedReturn_InsufficientHistory(t *testing.T) {
	tests := []struct {
		months, years int
	}{
		{0, 1},
		{11, 1},
		{35, 3},
		{119, 10},
	}
	for _, tt := range tests {
		_, err := AnnualizedReturn(constantSeries(tt.months, 0.01), tt.years)
		if !errors.Is(err, ErrInsufficientHistory) {
			t.Errorf("%d months / %d years: expected ErrInsufficientHistory, got %v", tt.months, tt.years, err)
		}
	}
}

func TestIRR_SinglePeriod(t *testing.T) {
	got, err := IRR([]float64{-1000, 1100})
	if err != nil {
		t.Fatal(err)
	}
	if !approxEqual(got, 0.10, 1e-6) {
		t.Errorf("expected 0.10, got %.8f", got)
	}
}

func TestIRR_NoSignChange(t *testing.T) {
	_, err := IRR([]float64{1000, 1100})
	if !errors.Is(err, ErrNonConvergentIRR) {
		t.Errorf("expected ErrNonConvergentIRR, got %v", err)
	}
	_, err = IRR([]float64{-1000})
	if !errors.Is(err, ErrNonConvergentIRR) {
		t.Errorf("single flow: expected ErrNonConvergentIRR, got %v", err)
	}
}

func TestDistributionCashFlows_Clamped(t *testing.T) {
	// Balance 1000 -> 500 after -50%, withdraw 400 -> 100, then +0% withdraw capped at 100.
	s := monthlySeries(-0.5, 0)
	flows := DistributionCashFlows(s, 1000, 400)
	want := []float64{-1000, 400, 100}
	if len(flows) != len(want) {
		t.Fatalf("expected %d flows, got %d", len(want), len(flows))
	}
	for i := range want {
		if !approxEqual(flows[i], want[i], 1e-9) {
			t.Errorf("flow %d: expected %.2f, got %.2f", i, want[i], flows[i])
		}
	}
}

func TestDistributionCashFlows_Liquidation(t *testing.T) {
	s := monthlySeries(0.1, 0.1)
	flows := DistributionCashFlows(s, 1000, 10)
	// month1: 1100-10=1090; month2: 1199-10=1189 liquidated with the last withdrawal.
	want := []float64{-1000, 10, 10 + 1189}
	for i := range want {
		if !approxEqual(flows[i], want[i], 1e-9) {
			t.Errorf("flow %d: expected %.2f, got %.2f", i, want[i], flows[i])
		}
	}
}

func TestAnnualizedIRR_MatchesTWRWithoutWithdrawalDrag(t *testing.T) {
	// With constant returns the money-weighted rate equals the monthly return.
	got, err := AnnualizedIRR(constantSeries(12, 0.01), 1, 100000, 500)
	if err != nil {
		t.Fatal(err)
	}
	want := math.Pow(1.01, 12) - 1
	if !approxEqual(got, want, 1e-5) {
		t.Errorf("expected %.6f, got %.6f", want, got)
	}
}

func TestAnnualizedIRR_InsufficientHistory(t *testing.T) {
	_, err := AnnualizedIRR(constantSeries(30, 0.01), 3, 100000, 500)
	if !errors.Is(err, ErrInsufficientHistory) {
		t.Errorf("expected ErrInsufficientHistory, got %v", err)
	}
}

func TestAnnualizedVolatility(t *testing.T) {
	got, err := AnnualizedVolatility(constantSeries(12, 0.01))
	if err != nil {
		t.Fatal(err)
	}
	if !approxEqual(got, 0, 1e-12) {
		t.Errorf("expected zero volatility, got %g", got)
	}

	// Sample stddev of {0.01, -0.01} is sqrt(0.0002); annualized by sqrt(12).
	got, err = AnnualizedVolatility(monthlySeries(0.01, -0.01))
	if err != nil {
		t.Fatal(err)
	}
	want := math.Sqrt(0.0002) * math.Sqrt(12)
	if !approxEqual(got, want, 1e-12) {
		t.Errorf("expected %.8f, got %.8f", want, got)
	}

	if _, err := AnnualizedVolatility(monthlySeries(0.01)); !errors.Is(err, ErrInsufficientHistory) {
		t.Errorf("expected ErrInsufficientHistory, got %v", err)
	}
}
