package kinetics

import (
	"math"
)

const (
	// GasConstant R in J/(mol*K)
	GasConstant = 8.314

	// RefTempC is the reference temperature the profile table is anchored to
	RefTempC = 5.0

	// OptimalHumidity is the relative humidity with no shelf-life penalty
	OptimalHumidity = 90.0

	kelvinOffset = 273.15
)

// RateConstantAt computes the Arrhenius rate constant k = A * exp(-Ea / (R * T))
func RateConstantAt(p Profile, tempK float64) float64 {
	return p.RateConstant * math.Exp(-p.ActivationEnergy/(GasConstant*tempK))
}

// PredictDays estimates shelf life in days for a profile at the given
// temperature and relative humidity. Temperatures above the reference shrink
// the estimate, temperatures below it extend it.
func PredictDays(p Profile, tempC, humidityPct float64) float64 {
	tempK := tempC + kelvinOffset
	kInput := RateConstantAt(p, tempK)
	kRef := RateConstantAt(p, RefTempC+kelvinOffset)
	ratio := kRef / kInput
	return p.RefLifeDays * ratio * HumidityFactor(humidityPct)
}

// HumidityFactor is the multiplicative penalty for deviating from the optimal
// relative humidity. Humidity is clamped to the plausible 30-100% range and
// the penalty grows sub-linearly, so small deviations barely register.
func HumidityFactor(humidityPct float64) float64 {
	rh := math.Max(30.0, math.Min(100.0, humidityPct))
	deviation := math.Abs(rh - OptimalHumidity)
	return math.Exp(-0.02 * math.Pow(deviation, 1.2))
}
