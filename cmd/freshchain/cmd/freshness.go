// Package cmd - freshness command
package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"freshchain/core/freshness"
)

var (
	predictedDays float64
	ageDays       float64
	basePrice     string
)

// freshnessCmd converts a shelf-life estimate into a consumer score and price
var freshnessCmd = &cobra.Command{
	Use:   "freshness",
	Short: "Compute a freshness score and markdown price",
	Long: `Turn a shelf-life estimate and batch age into a consumer freshness score
and a marked-down retail price.

Example:
  freshchain freshness --predicted 12 --age 3 --base-price 4.50`,
	RunE: runFreshness,
}

func init() {
	freshnessCmd.Flags().Float64Var(&predictedDays, "predicted", 0, "predicted total shelf life in days (required)")
	freshnessCmd.Flags().Float64Var(&ageDays, "age", 0, "batch age in days")
	freshnessCmd.Flags().StringVar(&basePrice, "base-price", "", "base retail price")
	_ = freshnessCmd.MarkFlagRequired("predicted")
}

func runFreshness(cmd *cobra.Command, args []string) error {
	remaining := freshness.Remaining(predictedDays, ageDays)
	score := freshness.Score(remaining, predictedDays)

	fmt.Printf("Remaining life:  %.2f days\n", remaining)
	fmt.Printf("Freshness score: %.1f\n", score)

	if basePrice != "" {
		price, err := decimal.NewFromString(basePrice)
		if err != nil {
			return fmt.Errorf("invalid base price %q: %w", basePrice, err)
		}
		fmt.Printf("Markdown price:  %s\n", freshness.Markdown(price, score).StringFixed(2))
	}
	return nil
}
