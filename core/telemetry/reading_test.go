package telemetry

import (
	"math"
	"testing"

	"freshchain/internal/errors"
)

func TestResolveAveragesReadings(t *testing.T) {
	readings := []Reading{
		{Temperature: 4, Humidity: 88},
		{Temperature: 6, Humidity: 92},
	}

	ctx, err := Resolve(readings, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(ctx.Temperature-5) > 1e-12 {
		t.Errorf("Temperature = %v, want 5", ctx.Temperature)
	}
	if math.Abs(ctx.Humidity-90) > 1e-12 {
		t.Errorf("Humidity = %v, want 90", ctx.Humidity)
	}
	if len(ctx.Readings) != 2 {
		t.Errorf("raw readings not carried through: %d", len(ctx.Readings))
	}
}

func TestResolveOverridesWin(t *testing.T) {
	readings := []Reading{{Temperature: 4, Humidity: 88}}
	temp := 7.5

	ctx, err := Resolve(readings, &temp, nil)
	if err != nil {
		t.Fatal(err)
	}
	if ctx.Temperature != 7.5 {
		t.Errorf("temperature override ignored: %v", ctx.Temperature)
	}
	if ctx.Humidity != 88 {
		t.Errorf("humidity should fall back to readings: %v", ctx.Humidity)
	}
}

func TestResolveNoDataFails(t *testing.T) {
	_, err := Resolve(nil, nil, nil)
	if err == nil {
		t.Fatal("expected error with no readings and no overrides")
	}
	if !errors.IsType(err, errors.TypeInput) {
		t.Errorf("expected INPUT_ERROR, got %v", err)
	}
}

func TestResolveOverridesAloneSuffice(t *testing.T) {
	temp, hum := 5.0, 90.0
	ctx, err := Resolve(nil, &temp, &hum)
	if err != nil {
		t.Fatal(err)
	}
	if ctx.Temperature != 5 || ctx.Humidity != 90 {
		t.Errorf("overrides alone should resolve: %+v", ctx)
	}
}
