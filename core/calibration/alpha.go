// Package calibration maps the two confidence scores into the blend weight
// applied to the kinetic prediction.
package calibration

import (
	"math"
)

// Config holds the calibration policy constants.
// The weights are asymmetric on purpose: a validated model track record is
// stronger evidence than momentary environmental calm, so the ML term moves
// alpha harder than the sensor term.
type Config struct {
	// Base is the starting blend weight before adjustments
	Base float64 `json:"base"`

	// Min and Max bound the computed weight so neither sub-model can
	// dominate completely
	Min float64 `json:"min"`
	Max float64 `json:"max"`

	// SensorWeight scales the (stability - 0.5) term
	SensorWeight float64 `json:"sensor_weight"`

	// MLWeight scales the (performance - 0.5) term
	MLWeight float64 `json:"ml_weight"`
}

// DefaultConfig returns the calibration constants the engine ships with
func DefaultConfig() Config {
	return Config{
		Base:         0.35,
		Min:          0.1,
		Max:          0.8,
		SensorWeight: 0.30,
		MLWeight:     0.40,
	}
}

// Alpha computes the blend weight for the kinetic prediction. Stable sensor
// data pulls weight toward the physics model; a well-performing regressor
// pulls weight away from it. An explicit override bypasses the policy and is
// clamped to [0, 1].
func (c Config) Alpha(sensorStability, mlPerformance float64, override *float64) float64 {
	if override != nil {
		return math.Max(0, math.Min(1, *override))
	}

	alpha := c.Base
	alpha += (sensorStability - 0.5) * c.SensorWeight
	alpha -= (mlPerformance - 0.5) * c.MLWeight
	return math.Max(c.Min, math.Min(c.Max, alpha))
}
