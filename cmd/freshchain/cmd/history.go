// Package cmd - history commands
package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"freshchain/core/history"
	"freshchain/internal/config"
)

var (
	historyFormat string
	annotateBatch string
	annotateDays  float64
)

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Summarize the prediction history log",
	RunE:  runHistory,
}

// annotateCmd attaches an observed shelf life to a past prediction
var annotateCmd = &cobra.Command{
	Use:   "annotate",
	Short: "Record the observed shelf life for a batch",
	Long: `Attach an observed shelf-life outcome to the most recent prediction for a
batch. Validated outcomes feed the model-performance score on later calls.

Example:
  freshchain history annotate --batch B-17 --actual 11.5`,
	RunE: runAnnotate,
}

func init() {
	historyCmd.Flags().StringVarP(&historyFormat, "format", "f", "cli", "output format (cli, json)")
	annotateCmd.Flags().StringVarP(&annotateBatch, "batch", "b", "", "batch identifier (required)")
	annotateCmd.Flags().Float64Var(&annotateDays, "actual", 0, "observed shelf life in days (required)")
	_ = annotateCmd.MarkFlagRequired("batch")
	_ = annotateCmd.MarkFlagRequired("actual")
	historyCmd.AddCommand(annotateCmd)
}

func openStore() (*history.Store, error) {
	cfg := config.Get().Predictor
	return history.NewStore(cfg.HistoryPath, cfg.HistoryLimit)
}

func runHistory(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	summary := store.Summarize()
	if historyFormat == "json" {
		out, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Printf("Entries:              %d\n", summary.Entries)
	fmt.Printf("Validated outcomes:   %d\n", summary.Validated)
	if summary.Entries > 0 {
		fmt.Printf("Recent alpha:         %.3f\n", summary.RecentAlpha)
		fmt.Printf("Recent ML prediction: %.2f days\n", summary.RecentMLPrediction)
	}
	return nil
}

func runAnnotate(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	if err := store.AnnotateLatest(annotateBatch, annotateDays); err != nil {
		return err
	}
	fmt.Printf("Recorded %.2f days for batch %s\n", annotateDays, annotateBatch)
	return nil
}
