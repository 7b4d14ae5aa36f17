package regressor

import (
	"strings"
	"unicode"

	"freshchain/internal/errors"
)

const (
	temperatureFeature = "Temperature_C"
	humidityFeature    = "Humidity_%"
	productPrefix      = "Type_"
)

// Adapter converts (product, temperature, humidity) triples into the feature
// vector the trained model expects
type Adapter struct {
	model Model
}

// NewAdapter wraps a model provider. The model must declare its feature
// schema; a schemaless model cannot be used safely.
func NewAdapter(model Model) (*Adapter, error) {
	if model == nil {
		return nil, errors.ModelSchema("no regression model provided")
	}
	if len(model.FeatureNames()) == 0 {
		return nil, errors.ModelSchema("loaded model is missing feature metadata")
	}
	return &Adapter{model: model}, nil
}

// PredictDays returns the model's day-count estimate for a product under the
// given conditions. The result is floored at zero days.
func (a *Adapter) PredictDays(product string, tempC, humidityPct float64) (float64, error) {
	features := a.encode(product, tempC, humidityPct)
	days, err := a.model.Predict(features)
	if err != nil {
		return 0, err
	}
	if days < 0 {
		days = 0
	}
	return days, nil
}

// encode builds the feature vector in the model's declared order. Numeric
// features are filled by name, product indicators are one-hot, and any
// column the adapter does not recognize stays zero.
func (a *Adapter) encode(product string, tempC, humidityPct float64) []float64 {
	names := a.model.FeatureNames()
	indicator := productPrefix + capitalize(product)

	features := make([]float64, len(names))
	for i, name := range names {
		switch {
		case name == temperatureFeature:
			features[i] = tempC
		case name == humidityFeature:
			features[i] = humidityPct
		case strings.HasPrefix(name, productPrefix) && name == indicator:
			features[i] = 1
		}
	}
	return features
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
