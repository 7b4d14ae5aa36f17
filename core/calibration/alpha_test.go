package calibration

import (
	"math"
	"testing"
)

func TestNeutralInputsGiveBaseAlpha(t *testing.T) {
	cfg := DefaultConfig()
	got := cfg.Alpha(0.5, 0.5, nil)
	if math.Abs(got-cfg.Base) > 1e-12 {
		t.Errorf("neutral confidence should give base alpha %v, got %v", cfg.Base, got)
	}
}

func TestAlphaStaysWithinBounds(t *testing.T) {
	cfg := DefaultConfig()
	for _, tc := range []struct{ stability, performance float64 }{
		{0, 0}, {1, 0}, {0, 1}, {1, 1}, {0.5, 0.5}, {0.9, 0.1}, {0.1, 0.9},
	} {
		got := cfg.Alpha(tc.stability, tc.performance, nil)
		if got < cfg.Min || got > cfg.Max {
			t.Errorf("Alpha(%v, %v) = %v, outside [%v, %v]", tc.stability, tc.performance, got, cfg.Min, cfg.Max)
		}
	}
}

func TestStableSensorsRaiseAlpha(t *testing.T) {
	cfg := DefaultConfig()
	base := cfg.Alpha(0.5, 0.5, nil)
	raised := cfg.Alpha(0.9, 0.5, nil)
	if raised <= base {
		t.Errorf("stable sensors should raise alpha: %v vs %v", raised, base)
	}
}

func TestStrongModelLowersAlpha(t *testing.T) {
	cfg := DefaultConfig()
	base := cfg.Alpha(0.5, 0.5, nil)
	lowered := cfg.Alpha(0.5, 0.9, nil)
	if lowered >= base {
		t.Errorf("a trusted model should lower alpha: %v vs %v", lowered, base)
	}
}

func TestMLSensitivityOutweighsSensorSensitivity(t *testing.T) {
	cfg := DefaultConfig()
	// Raise both scores by the same amount: the ML pull must dominate,
	// leaving alpha below base.
	got := cfg.Alpha(0.9, 0.9, nil)
	if got >= cfg.Base {
		t.Errorf("ML weight should outweigh sensor weight: got %v, base %v", got, cfg.Base)
	}
}

func TestOverrideBypassesPolicy(t *testing.T) {
	cfg := DefaultConfig()

	override := 0.95 // outside the policy bounds, legal for an override
	if got := cfg.Alpha(0.5, 0.5, &override); got != 0.95 {
		t.Errorf("override not honored: got %v, want 0.95", got)
	}

	tooHigh := 1.8
	if got := cfg.Alpha(0.5, 0.5, &tooHigh); got != 1 {
		t.Errorf("out-of-range override should clamp to 1, got %v", got)
	}

	tooLow := -0.3
	if got := cfg.Alpha(0.5, 0.5, &tooLow); got != 0 {
		t.Errorf("out-of-range override should clamp to 0, got %v", got)
	}
}
