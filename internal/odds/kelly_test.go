package odds

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
)

func TestKellyFraction(t *testing.T) {
	tests := []struct {
		name     string
		decimal  float64
		prob     float64
		expected float64
	}{
		{"Coin flip at plus money", 2.20, 0.5, 0.0833333},
		{"No edge - fair odds", 2.00, 0.5, 0},
		{"Negative edge clamps to zero", 1.90, 0.5, 0},
		{"Underdog value", 2.5, 0.4545, 0.0908333},
		{"Strong favorite edge", 1.60, 0.70, 0.20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := KellyFraction(tt.decimal, tt.prob)
			if math.Abs(got-tt.expected) > 0.0001 {
				t.Errorf("KellyFraction(%.2f, %.4f) = %.6f, want %.6f", tt.decimal, tt.prob, got, tt.expected)
			}
		})
	}
}

// Kelly stays in [0,1] and is zero exactly when the fair probability does
// not beat the implied probability
func TestKellyFractionBounds(t *testing.T) {
	decimals := []float64{1.2, 1.5, 1.909, 2.0, 2.5, 5.0, 11.0}
	probs := []float64{0.05, 0.2, 0.4, 0.5, 0.6, 0.8, 0.95}

	for _, d := range decimals {
		for _, p := range probs {
			f := KellyFraction(d, p)
			if f < 0 || f > 1 {
				t.Fatalf("KellyFraction(%.3f, %.2f) = %.4f out of [0,1]", d, p, f)
			}
			if p <= 1/d && f != 0 {
				t.Errorf("KellyFraction(%.3f, %.2f) = %.4f, want 0 (no edge)", d, p, f)
			}
		}
	}
}

func TestKellyFractionDegenerateInputs(t *testing.T) {
	cases := []struct {
		decimal float64
		prob    float64
	}{
		{1.0, 0.5},
		{0.5, 0.5},
		{2.0, 0},
		{2.0, 1},
		{2.0, -0.2},
		{2.0, 1.4},
	}
	for _, c := range cases {
		if got := KellyFraction(c.decimal, c.prob); got != 0 {
			t.Errorf("KellyFraction(%.2f, %.2f) = %.4f, want 0", c.decimal, c.prob, got)
		}
	}
}

func TestStakeQuarterKelly(t *testing.T) {
	full, stake := Stake(2.5, 0.4545, StakeParams{
		Bankroll:     decimal.NewFromInt(1000),
		KellyPercent: 25,
	})

	if math.Abs(full-0.0908333) > 0.0001 {
		t.Errorf("full Kelly = %.6f, want ~0.0908", full)
	}

	got, _ := stake.Float64()
	if math.Abs(got-22.71) > 0.02 {
		t.Errorf("stake = %.2f, want ~22.71", got)
	}
}

func TestStakeZeroOnDegenerateInputs(t *testing.T) {
	cases := []struct {
		name    string
		decimal float64
		prob    float64
		params  StakeParams
	}{
		{"Zero bankroll", 2.5, 0.4545, StakeParams{Bankroll: decimal.Zero, KellyPercent: 25}},
		{"Negative bankroll", 2.5, 0.4545, StakeParams{Bankroll: decimal.NewFromInt(-100), KellyPercent: 25}},
		{"Zero kelly percent", 2.5, 0.4545, StakeParams{Bankroll: decimal.NewFromInt(1000)}},
		{"Decimal odds at 1", 1.0, 0.5, StakeParams{Bankroll: decimal.NewFromInt(1000), KellyPercent: 25}},
		{"No edge", 2.0, 0.4, StakeParams{Bankroll: decimal.NewFromInt(1000), KellyPercent: 25}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, stake := Stake(c.decimal, c.prob, c.params)
			if !stake.IsZero() {
				t.Errorf("stake = %s, want 0", stake)
			}
		})
	}
}

func TestStakeRespectsMaxStake(t *testing.T) {
	_, stake := Stake(2.5, 0.6, StakeParams{
		Bankroll:     decimal.NewFromInt(10000),
		KellyPercent: 100,
		MaxStake:     decimal.NewFromInt(500),
	})

	if !stake.Equal(decimal.NewFromInt(500)) {
		t.Errorf("stake = %s, want capped at 500", stake)
	}
}
