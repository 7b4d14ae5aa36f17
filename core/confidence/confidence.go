// Package confidence scores the two independent trust signals that drive the
// blend weight: stability of recent sensor telemetry, and the learned model's
// track record against observed outcomes.
package confidence

import (
	"math"

	"freshchain/core/history"
	"freshchain/core/telemetry"
)

const (
	// NeutralScore is used when there is no evidence either way
	NeutralScore = 0.5

	// SingleSampleScore is used when variance cannot be computed
	SingleSampleScore = 0.6

	// epsilon keeps coefficient-of-variation finite for near-zero means
	epsilon = 1e-6

	// Temperature swings matter more for spoilage than humidity swings,
	// so temperature CV is penalized twice as hard.
	tempCVPenalty = 10.0
	humCVPenalty  = 5.0

	validatedWindow   = 20
	consistencyWindow = 10
)

// SensorStability scores how stable the recent environment was, in [0, 1].
// 1 means perfectly stable. Zero readings give the neutral default; a single
// reading gives a fixed moderate score since variance is undefined.
func SensorStability(readings []telemetry.Reading, fallbackTemp, fallbackHum float64) float64 {
	if len(readings) == 0 {
		return NeutralScore
	}
	if len(readings) < 2 {
		return SingleSampleScore
	}

	temps := make([]float64, len(readings))
	hums := make([]float64, len(readings))
	for i, r := range readings {
		temps[i] = r.Temperature
		hums[i] = r.Humidity
	}

	tempScore := math.Max(0, 1-coefficientOfVariation(temps)*tempCVPenalty)
	humScore := math.Max(0, 1-coefficientOfVariation(hums)*humCVPenalty)
	return clamp01((tempScore + humScore) / 2)
}

// MLPerformance scores trust in the learned regressor, in [0, 1].
// Validated outcomes win: over the most recent validated entries, accuracy is
// a normalized absolute error against the recorded hybrid prediction. With no
// validated outcomes the score falls back to self-consistency of the
// regressor's recent raw predictions for the same product. No usable history
// gives the neutral default.
func MLPerformance(entries []history.Entry, product string) float64 {
	if len(entries) == 0 {
		return NeutralScore
	}

	if score, ok := validatedAccuracy(entries); ok {
		return score
	}
	return selfConsistency(entries, product)
}

func validatedAccuracy(entries []history.Entry) (float64, bool) {
	var validated []history.Entry
	for _, e := range entries {
		if e.Validated() {
			validated = append(validated, e)
		}
	}
	if len(validated) == 0 {
		return 0, false
	}
	if len(validated) > validatedWindow {
		validated = validated[len(validated)-validatedWindow:]
	}

	var sum float64
	for _, e := range validated {
		actual := *e.ActualShelfLife
		err := math.Abs(actual-e.HybridPrediction) / math.Max(actual, epsilon)
		sum += math.Max(0, 1-err)
	}
	return sum / float64(len(validated)), true
}

// selfConsistency converts low variance of recent raw predictions into a
// high score. Predictions are scoped to one product so cross-product spread
// is not mistaken for model drift.
func selfConsistency(entries []history.Entry, product string) float64 {
	recent := entries
	if len(recent) > consistencyWindow {
		recent = recent[len(recent)-consistencyWindow:]
	}

	var preds []float64
	for _, e := range recent {
		if product != "" && e.Product != product {
			continue
		}
		preds = append(preds, e.MLPrediction)
	}
	if len(preds) < 2 {
		return NeutralScore
	}

	return clamp01(1 - coefficientOfVariation(preds))
}

func coefficientOfVariation(values []float64) float64 {
	m := mean(values)
	return stddev(values, m) / (m + epsilon)
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// stddev is the population standard deviation
func stddev(values []float64, m float64) float64 {
	var sum float64
	for _, v := range values {
		d := v - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(values)))
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
