// Package cmd provides the CLI commands for freshchain.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"freshchain/internal/config"
	"freshchain/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "freshchain",
	Short: "Hybrid shelf-life prediction for perishable batches",
	Long: `freshchain estimates remaining shelf life for perishable batches by
blending an Arrhenius chemical-kinetics model with a trained regression
model, weighted by sensor stability and the model's own track record.

Examples:
  freshchain predict --product apple --temperature 5 --humidity 90
  freshchain predict --product banana --readings samples.json --batch B-17
  freshchain history
  freshchain profiles`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.freshchain/config.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(predictCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(profilesCmd)
	rootCmd.AddCommand(freshnessCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	config.Set(cfg)

	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
		os.Exit(1)
	}
}
