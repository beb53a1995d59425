package calculator

import (
	"math"
	"math/rand"
	"testing"

	"ProposalEngine/internal/model"
)

func TestAdjustForFee(t *testing.T) {
	s := monthlySeries(0.01, -0.02, 0)
	got := AdjustForFee(s, 1.2)
	want := []float64{0.009, -0.021, -0.001}
	for i := range want {
		if !approxEqual(got[i].Value, want[i], 1e-15) {
			t.Errorf("month %d: expected %.6f, got %.6f", i, want[i], got[i].Value)
		}
		if got[i].Date != s[i].Date {
			t.Errorf("month %d: date changed from %s to %s", i, s[i].Date, got[i].Date)
		}
	}
	if s[0].Value != 0.01 {
		t.Error("input series was modified")
	}
}

func TestAdjustForFee_ZeroFee(t *testing.T) {
	s := monthlySeries(0.01, -0.02)
	got := AdjustForFee(s, 0)
	for i := range s {
		if got[i] != s[i] {
			t.Errorf("month %d: expected %+v, got %+v", i, s[i], got[i])
		}
	}
}

func TestBlend_Empty(t *testing.T) {
	got := Blend(nil, 1)
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil series, got %#v", got)
	}
}

func TestBlend_SingleComponentRoundTrip(t *testing.T) {
	s := monthlySeries(0.0123456789, math.Copysign(0, -1), -0.05, 0.1)
	got := Blend([]model.WeightedComponent{{Series: s, Weight: 1}}, 0)
	if len(got) != len(s) {
		t.Fatalf("expected %d months, got %d", len(s), len(got))
	}
	for i := range s {
		if got[i].Date != s[i].Date || math.Float64bits(got[i].Value) != math.Float64bits(s[i].Value) {
			t.Errorf("month %d: expected %+v, got %+v", i, s[i], got[i])
		}
	}
}

func TestBlend_WeightedAverage(t *testing.T) {
	a := monthlySeries(0.10, -0.05, 0.02)
	b := monthlySeries(0.00, 0.05, -0.02)
	got := Blend([]model.WeightedComponent{{Series: a, Weight: 0.6}, {Series: b, Weight: 0.4}}, 0)
	want := []float64{0.06, -0.01, 0.004}
	for i := range want {
		if !approxEqual(got[i].Value, want[i], 1e-12) {
			t.Errorf("month %d: expected %.4f, got %.4f", i, want[i], got[i].Value)
		}
	}
}

func TestBlend_FirstComponentDefinesAxis(t *testing.T) {
	a := monthlySeries(0.01, 0.02, 0.03)
	// b only covers the last month of a and adds one month a does not have.
	b := model.ReturnSeries{{Date: a[2].Date, Value: 0.10}, {Date: "2010-04", Value: 0.5}}
	got := Blend([]model.WeightedComponent{{Series: a, Weight: 0.5}, {Series: b, Weight: 0.5}}, 0)
	if len(got) != 3 {
		t.Fatalf("expected the first component's 3 months, got %d", len(got))
	}
	want := []float64{0.005, 0.01, 0.065}
	for i := range want {
		if !approxEqual(got[i].Value, want[i], 1e-12) {
			t.Errorf("month %d: expected %.4f, got %.4f", i, want[i], got[i].Value)
		}
	}
}

func TestBlend_FeeIsLinear(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 50; trial++ {
		n := 2 + rng.Intn(4)
		months := 12 + rng.Intn(60)
		fee := rng.Float64() * 3

		weights := make([]float64, n)
		total := 0.0
		for i := range weights {
			weights[i] = rng.Float64() + 0.01
			total += weights[i]
		}
		plain := make([]model.WeightedComponent, n)
		adjusted := make([]model.WeightedComponent, n)
		for i := range weights {
			s := randomSeries(rng, months)
			plain[i] = model.WeightedComponent{Series: s, Weight: weights[i] / total}
			adjusted[i] = model.WeightedComponent{Series: AdjustForFee(s, fee), Weight: weights[i] / total}
		}

		blendThenFee := Blend(plain, fee)
		feeThenBlend := Blend(adjusted, 0)
		for m := range blendThenFee {
			if !approxEqual(blendThenFee[m].Value, feeThenBlend[m].Value, 1e-12) {
				t.Fatalf("trial %d month %d: blend-then-fee %.15f != fee-then-blend %.15f",
					trial, m, blendThenFee[m].Value, feeThenBlend[m].Value)
			}
		}
	}
}
