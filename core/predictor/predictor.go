// Package predictor orchestrates the hybrid shelf-life estimate: an
// Arrhenius kinetic prediction and a learned regression prediction, blended
// by a confidence-derived weight.
package predictor

import (
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"freshchain/core/calibration"
	"freshchain/core/confidence"
	"freshchain/core/history"
	"freshchain/core/kinetics"
	"freshchain/core/regressor"
	"freshchain/core/telemetry"
	"freshchain/internal/errors"
	"freshchain/internal/logging"
)

var validate = validator.New()

// Request is one prediction call
type Request struct {
	// Product is matched case-insensitively against the kinetic table
	Product string `validate:"required"`

	// Temperature is the resolved input temperature in Celsius
	Temperature float64 `validate:"gte=-50,lte=60"`

	// Humidity is the resolved relative humidity in percent
	Humidity float64 `validate:"gte=0,lte=100"`

	// Readings are the raw sensor samples behind the resolved pair
	Readings []telemetry.Reading

	// AlphaOverride bypasses calibration when set; it is clamped, not rejected
	AlphaOverride *float64

	// BatchID is recorded for traceability only
	BatchID string
}

// Result is the externally visible output of a prediction call
type Result struct {
	MLPrediction      float64 `json:"ml_prediction_days"`
	KineticPrediction float64 `json:"kinetic_prediction_days"`
	HybridPrediction  float64 `json:"hybrid_prediction_days"`
	AlphaUsed         float64 `json:"alpha_used"`
	SensorTemperature float64 `json:"sensor_temperature_c"`
	SensorHumidity    float64 `json:"sensor_humidity_percent"`
	SensorSamples     int     `json:"sensor_samples"`
	SensorStability   float64 `json:"sensor_stability"`
	MLPerformance     float64 `json:"ml_performance"`
}

// Predictor is the façade over the kinetic model, regressor and history log
type Predictor struct {
	registry *kinetics.Registry
	adapter  *regressor.Adapter
	store    *history.Store
	calib    calibration.Config
}

// New assembles a predictor from its collaborators
func New(registry *kinetics.Registry, adapter *regressor.Adapter, store *history.Store, calib calibration.Config) (*Predictor, error) {
	if registry == nil {
		return nil, errors.Internal("predictor requires a kinetic profile registry", nil)
	}
	if adapter == nil {
		return nil, errors.ModelSchema("predictor requires a regression model adapter")
	}
	if store == nil {
		return nil, errors.Internal("predictor requires a history store", nil)
	}
	return &Predictor{
		registry: registry,
		adapter:  adapter,
		store:    store,
		calib:    calib,
	}, nil
}

// Predict runs one self-contained prediction transaction. The history entry
// is appended only after both sub-predictions succeed; structural failures
// abort the call with no partial write.
func (p *Predictor) Predict(req Request) (*Result, error) {
	if err := validate.Struct(req); err != nil {
		return nil, errors.Wrap(errors.TypeInput, "invalid prediction request", err)
	}

	product := kinetics.Normalize(req.Product)
	profile, err := p.registry.Lookup(product)
	if err != nil {
		return nil, err
	}

	entries := p.store.LoadAll()
	stability := confidence.SensorStability(req.Readings, req.Temperature, req.Humidity)
	performance := confidence.MLPerformance(entries, product)
	alpha := p.calib.Alpha(stability, performance, req.AlphaOverride)

	mlPred, err := p.adapter.PredictDays(product, req.Temperature, req.Humidity)
	if err != nil {
		return nil, err
	}
	kineticPred := kinetics.PredictDays(profile, req.Temperature, req.Humidity)
	hybrid := alpha*kineticPred + (1-alpha)*mlPred

	entry := history.Entry{
		BatchID:           req.BatchID,
		Product:           product,
		Temperature:       req.Temperature,
		Humidity:          req.Humidity,
		MLPrediction:      mlPred,
		KineticPrediction: kineticPred,
		HybridPrediction:  hybrid,
		AlphaUsed:         alpha,
		SensorSamples:     len(req.Readings),
		RecordedAt:        time.Now().UTC(),
	}
	if err := p.store.Append(entry); err != nil {
		// Estimation stays available even when the log cannot be written.
		logging.Warn("failed to persist prediction history", zap.Error(err))
	}

	logging.Debug("hybrid shelf-life prediction",
		zap.String("product", product),
		zap.Float64("alpha", alpha),
		zap.Float64("hybrid_days", hybrid))

	return &Result{
		MLPrediction:      mlPred,
		KineticPrediction: kineticPred,
		HybridPrediction:  hybrid,
		AlphaUsed:         alpha,
		SensorTemperature: req.Temperature,
		SensorHumidity:    req.Humidity,
		SensorSamples:     len(req.Readings),
		SensorStability:   stability,
		MLPerformance:     performance,
	}, nil
}

// HistorySummary reports the recent state of the prediction log
func (p *Predictor) HistorySummary() history.Summary {
	return p.store.Summarize()
}

// SupportedProducts lists the products the kinetic table covers
func (p *Predictor) SupportedProducts() []string {
	return p.registry.Products()
}
