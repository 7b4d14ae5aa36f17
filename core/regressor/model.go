// Package regressor adapts a pre-trained regression model to shelf-life
// prediction inputs. The model declares its own feature schema; the adapter
// reconstructs the expected feature vector from that schema rather than
// hard-coding the layout.
package regressor

import (
	"encoding/json"
	"os"

	"freshchain/internal/errors"
	"freshchain/internal/logging"
)

// Model is the capability contract a trained model provider must satisfy.
// FeatureNames defines both the dimensionality and the ordering of the
// feature vector passed to Predict.
type Model interface {
	// FeatureNames returns the ordered feature schema the model was trained on
	FeatureNames() []string

	// Predict evaluates the model on a feature vector matching FeatureNames
	Predict(features []float64) (float64, error)
}

// LinearModel is a trained linear regression loaded from a JSON artifact
type LinearModel struct {
	Features     []string  `json:"feature_names"`
	Coefficients []float64 `json:"coefficients"`
	Intercept    float64   `json:"intercept"`
}

// LoadLinearModel reads and validates a linear model artifact
func LoadLinearModel(path string) (*LinearModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Config("shelf-life model missing at "+path, err)
	}

	var m LinearModel
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, errors.Config("failed to parse shelf-life model artifact", err)
	}
	if err := m.validate(); err != nil {
		return nil, err
	}

	logging.Sugar.Infow("loaded shelf-life regression model",
		"path", path, "features", len(m.Features))
	return &m, nil
}

func (m *LinearModel) validate() error {
	if len(m.Features) == 0 {
		return errors.ModelSchema("loaded model is missing feature metadata")
	}
	if len(m.Coefficients) != len(m.Features) {
		return errors.Newf(errors.TypeModelSchema,
			"model declares %d features but %d coefficients",
			len(m.Features), len(m.Coefficients))
	}
	return nil
}

// FeatureNames returns the ordered feature schema
func (m *LinearModel) FeatureNames() []string {
	return m.Features
}

// Predict evaluates the linear model on a feature vector
func (m *LinearModel) Predict(features []float64) (float64, error) {
	if len(features) != len(m.Coefficients) {
		return 0, errors.Newf(errors.TypeModelSchema,
			"feature vector has %d values, model expects %d",
			len(features), len(m.Coefficients))
	}

	sum := m.Intercept
	for i, c := range m.Coefficients {
		sum += c * features[i]
	}
	return sum, nil
}
