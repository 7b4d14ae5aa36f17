package regressor

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"freshchain/internal/errors"
)

func testModel() *LinearModel {
	return &LinearModel{
		Features:     []string{"Temperature_C", "Humidity_%", "Type_Apple", "Type_Banana", "Type_Tomato"},
		Coefficients: []float64{-1.5, 0.05, 40, 2, 3},
		Intercept:    10,
	}
}

func TestAdapterEncodesFromModelSchema(t *testing.T) {
	// Schema order deliberately scrambled: the adapter must follow the
	// model's declared order, not a fixed layout.
	model := &LinearModel{
		Features:     []string{"Type_Banana", "Humidity_%", "Type_Apple", "Temperature_C"},
		Coefficients: []float64{0, 0, 0, 0},
	}
	adapter, err := NewAdapter(model)
	if err != nil {
		t.Fatal(err)
	}

	features := adapter.encode("apple", 5, 90)
	want := []float64{0, 90, 1, 5}
	for i := range want {
		if features[i] != want[i] {
			t.Errorf("feature[%d] = %v, want %v (schema order violated)", i, features[i], want[i])
		}
	}
}

func TestAdapterOneHotSelectsSingleProduct(t *testing.T) {
	adapter, err := NewAdapter(testModel())
	if err != nil {
		t.Fatal(err)
	}

	features := adapter.encode("banana", 14, 88)
	indicators := features[2:]
	want := []float64{0, 1, 0}
	for i := range want {
		if indicators[i] != want[i] {
			t.Errorf("indicator[%d] = %v, want %v", i, indicators[i], want[i])
		}
	}
}

func TestPredictDaysIsDeterministic(t *testing.T) {
	adapter, err := NewAdapter(testModel())
	if err != nil {
		t.Fatal(err)
	}

	first, err := adapter.PredictDays("apple", 5, 90)
	if err != nil {
		t.Fatal(err)
	}
	second, err := adapter.PredictDays("apple", 5, 90)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("identical inputs gave different predictions: %v vs %v", first, second)
	}

	// apple at 5C/90%: 10 - 1.5*5 + 0.05*90 + 40 = 47
	if math.Abs(first-47) > 1e-9 {
		t.Errorf("prediction = %v, want 47", first)
	}
}

func TestPredictDaysFloorsAtZero(t *testing.T) {
	model := &LinearModel{
		Features:     []string{"Temperature_C"},
		Coefficients: []float64{-10},
		Intercept:    5,
	}
	adapter, err := NewAdapter(model)
	if err != nil {
		t.Fatal(err)
	}

	days, err := adapter.PredictDays("apple", 30, 90)
	if err != nil {
		t.Fatal(err)
	}
	if days != 0 {
		t.Errorf("negative raw prediction should floor at 0, got %v", days)
	}
}

func TestAdapterRejectsSchemalessModel(t *testing.T) {
	_, err := NewAdapter(&LinearModel{})
	if err == nil {
		t.Fatal("expected error for model without feature metadata")
	}
	if !errors.IsType(err, errors.TypeModelSchema) {
		t.Errorf("expected MODEL_SCHEMA_ERROR, got %v", err)
	}
}

func TestLoadLinearModel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "model.json")
	artifact := `{
  "feature_names": ["Temperature_C", "Humidity_%", "Type_Apple"],
  "coefficients": [-1.2, 0.03, 35],
  "intercept": 12
}`
	if err := os.WriteFile(path, []byte(artifact), 0644); err != nil {
		t.Fatal(err)
	}

	model, err := LoadLinearModel(path)
	if err != nil {
		t.Fatalf("LoadLinearModel: %v", err)
	}
	if len(model.FeatureNames()) != 3 {
		t.Errorf("feature count = %d, want 3", len(model.FeatureNames()))
	}
}

func TestLoadLinearModelArityMismatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "model.json")
	artifact := `{
  "feature_names": ["Temperature_C", "Humidity_%"],
  "coefficients": [-1.2],
  "intercept": 0
}`
	if err := os.WriteFile(path, []byte(artifact), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadLinearModel(path)
	if err == nil {
		t.Fatal("expected error for coefficient/feature arity mismatch")
	}
	if !errors.IsType(err, errors.TypeModelSchema) {
		t.Errorf("expected MODEL_SCHEMA_ERROR, got %v", err)
	}
}

func TestLoadLinearModelMissing(t *testing.T) {
	_, err := LoadLinearModel("/nonexistent/model.json")
	if err == nil {
		t.Fatal("expected error for missing model artifact")
	}
	if !errors.IsType(err, errors.TypeConfig) {
		t.Errorf("expected CONFIG_ERROR, got %v", err)
	}
}
