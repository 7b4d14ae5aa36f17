// Package cmd - predict command
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"freshchain/core/calibration"
	"freshchain/core/history"
	"freshchain/core/kinetics"
	"freshchain/core/predictor"
	"freshchain/core/regressor"
	"freshchain/core/telemetry"
	"freshchain/internal/config"
)

var (
	productFlag     string
	temperatureFlag float64
	humidityFlag    float64
	readingsFile    string
	alphaFlag       float64
	batchFlag       string
	outputFormat    string
)

// predictCmd represents the predict command
var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Predict shelf life for a perishable batch",
	Long: `Run one hybrid shelf-life prediction.

Temperature and humidity can be given directly, or resolved by averaging a
JSON file of raw sensor readings. Explicit values win over averages.

Examples:
  freshchain predict --product apple --temperature 5 --humidity 90
  freshchain predict --product mango --readings samples.json
  freshchain predict --product banana --temperature 14 --humidity 88 --alpha 0.5`,
	RunE: runPredict,
}

func init() {
	predictCmd.Flags().StringVarP(&productFlag, "product", "p", "", "product type (required)")
	predictCmd.Flags().Float64VarP(&temperatureFlag, "temperature", "t", 0, "average temperature in Celsius")
	predictCmd.Flags().Float64VarP(&humidityFlag, "humidity", "H", 0, "average relative humidity in percent")
	predictCmd.Flags().StringVar(&readingsFile, "readings", "", "JSON file with raw sensor readings")
	predictCmd.Flags().Float64VarP(&alphaFlag, "alpha", "a", 0, "explicit blend weight override in [0,1]")
	predictCmd.Flags().StringVarP(&batchFlag, "batch", "b", "", "batch identifier for traceability")
	predictCmd.Flags().StringVarP(&outputFormat, "format", "f", "cli", "output format (cli, json)")
	_ = predictCmd.MarkFlagRequired("product")
}

func runPredict(cmd *cobra.Command, args []string) error {
	p, err := buildPredictor()
	if err != nil {
		return err
	}

	var readings []telemetry.Reading
	if readingsFile != "" {
		data, err := os.ReadFile(readingsFile)
		if err != nil {
			return fmt.Errorf("failed to read sensor readings: %w", err)
		}
		if err := json.Unmarshal(data, &readings); err != nil {
			return fmt.Errorf("failed to parse sensor readings: %w", err)
		}
	}

	var tempOverride, humOverride *float64
	if cmd.Flags().Changed("temperature") {
		tempOverride = &temperatureFlag
	}
	if cmd.Flags().Changed("humidity") {
		humOverride = &humidityFlag
	}

	envCtx, err := telemetry.Resolve(readings, tempOverride, humOverride)
	if err != nil {
		return err
	}

	req := predictor.Request{
		Product:     productFlag,
		Temperature: envCtx.Temperature,
		Humidity:    envCtx.Humidity,
		Readings:    envCtx.Readings,
		BatchID:     batchFlag,
	}
	if cmd.Flags().Changed("alpha") {
		req.AlphaOverride = &alphaFlag
	}

	result, err := p.Predict(req)
	if err != nil {
		return err
	}

	if outputFormat == "json" {
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Printf("Product:             %s\n", kinetics.Normalize(productFlag))
	if batchFlag != "" {
		fmt.Printf("Batch:               %s\n", batchFlag)
	}
	fmt.Printf("Conditions:          %.1f C / %.1f%% RH (%d samples)\n",
		result.SensorTemperature, result.SensorHumidity, result.SensorSamples)
	fmt.Printf("Kinetic estimate:    %.2f days\n", result.KineticPrediction)
	fmt.Printf("Model estimate:      %.2f days\n", result.MLPrediction)
	fmt.Printf("Hybrid estimate:     %.2f days (alpha %.3f)\n", result.HybridPrediction, result.AlphaUsed)
	fmt.Printf("Sensor stability:    %.2f\n", result.SensorStability)
	fmt.Printf("Model performance:   %.2f\n", result.MLPerformance)
	return nil
}

// buildPredictor assembles the predictor from configuration
func buildPredictor() (*predictor.Predictor, error) {
	cfg := config.Get().Predictor

	registry, err := kinetics.LoadProfiles(cfg.ProfilesPath)
	if err != nil {
		return nil, err
	}

	model, err := regressor.LoadLinearModel(cfg.ModelPath)
	if err != nil {
		return nil, err
	}
	adapter, err := regressor.NewAdapter(model)
	if err != nil {
		return nil, err
	}

	store, err := history.NewStore(cfg.HistoryPath, cfg.HistoryLimit)
	if err != nil {
		return nil, err
	}

	return predictor.New(registry, adapter, store, calibration.DefaultConfig())
}
