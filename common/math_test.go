package common

import (
	"math"
	"testing"
)

func TestClampAndSign(t *testing.T) {
	cases := []struct {
		name string
		got  float64
		want float64
	}{
		{"clamp_low", Clamp(-3, 0, 10), 0},
		{"clamp_high", Clamp(12, 0, 10), 10},
		{"clamp_inside", Clamp(4, 0, 10), 4},
		{"sign_neg", Sign(-0.2), -1},
		{"sign_pos", Sign(7), 1},
		{"sign_zero", Sign(0), 0},
		{"sign_nan", Sign(math.NaN()), 0},
		{"lerp_mid", Lerp(0, 10, 0.5), 5},
		{"finite_inf", Finite(math.Inf(-1)), 0},
		{"finite_value", Finite(2.5), 2.5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if c.got != c.want {
				t.Fatalf("expected %v, got %v", c.want, c.got)
			}
		})
	}
}
