package component

import "testing"

func TestGroundedThreshold(t *testing.T) {
	cases := []struct {
		name     string
		elapsed  float64
		grounded bool
	}{
		{"just_touched", 0, true},
		{"one_tick_airborne", 1.0 / 60.0, false},
		{"never_grounded", TimerCeiling, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g := NewGrounded()
			if c.elapsed != TimerCeiling {
				g.TimeSinceGrounded.Start()
				g.TimeSinceGrounded.Advance(c.elapsed)
			}
			if got := g.IsGrounded(); got != c.grounded {
				t.Fatalf("IsGrounded with elapsed %v = %t, want %t", c.elapsed, got, c.grounded)
			}
		})
	}
}
