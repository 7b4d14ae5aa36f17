// Package telemetry provides environmental reading types and context resolution.
// Raw readings come from the sensor collaborators; this package only shapes
// them for the predictor.
package telemetry

import (
	"time"

	"freshchain/internal/errors"
)

// Reading is a single environmental sample from a transport or retail sensor
type Reading struct {
	// Temperature in degrees Celsius
	Temperature float64 `json:"temperature"`

	// Humidity is relative humidity in percent
	Humidity float64 `json:"humidity"`

	// CapturedAt is when the sensor reported the sample
	CapturedAt time.Time `json:"captured_at,omitempty"`
}

// Context is the resolved environmental input for a prediction call
type Context struct {
	// Temperature is the resolved input temperature in Celsius
	Temperature float64

	// Humidity is the resolved relative humidity in percent
	Humidity float64

	// Readings are the raw samples that informed the resolution
	Readings []Reading
}

// Resolve produces the environmental context for a prediction call.
// Caller overrides take precedence; otherwise readings are averaged.
// With no readings and no overrides there is nothing to predict from.
func Resolve(readings []Reading, tempOverride, humOverride *float64) (*Context, error) {
	ctx := &Context{Readings: readings}

	switch {
	case tempOverride != nil:
		ctx.Temperature = *tempOverride
	case len(readings) > 0:
		ctx.Temperature = meanTemperature(readings)
	default:
		return nil, errors.Input("no temperature data available: provide an override or sensor readings")
	}

	switch {
	case humOverride != nil:
		ctx.Humidity = *humOverride
	case len(readings) > 0:
		ctx.Humidity = meanHumidity(readings)
	default:
		return nil, errors.Input("no humidity data available: provide an override or sensor readings")
	}

	return ctx, nil
}

func meanTemperature(readings []Reading) float64 {
	var sum float64
	for _, r := range readings {
		sum += r.Temperature
	}
	return sum / float64(len(readings))
}

func meanHumidity(readings []Reading) float64 {
	var sum float64
	for _, r := range readings {
		sum += r.Humidity
	}
	return sum / float64(len(readings))
}
