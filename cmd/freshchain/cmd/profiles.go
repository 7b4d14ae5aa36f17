// Package cmd - profiles command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"freshchain/core/kinetics"
	"freshchain/internal/config"
)

var profilesFile string

// profilesCmd lists the kinetic profile table
var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List the kinetic profiles in effect",
	RunE:  runProfiles,
}

func init() {
	profilesCmd.Flags().StringVar(&profilesFile, "profiles", "", "HCL file overriding kinetic profiles")
}

func runProfiles(cmd *cobra.Command, args []string) error {
	path := profilesFile
	if path == "" {
		path = config.Get().Predictor.ProfilesPath
	}

	registry, err := kinetics.LoadProfiles(path)
	if err != nil {
		return err
	}

	fmt.Printf("%-12s %14s %14s %14s\n", "PRODUCT", "Ea (J/mol)", "A", "REF LIFE (d)")
	for _, name := range registry.Products() {
		p, err := registry.Lookup(name)
		if err != nil {
			return err
		}
		fmt.Printf("%-12s %14.0f %14.3g %14.1f\n",
			p.Product, p.ActivationEnergy, p.RateConstant, p.RefLifeDays)
	}
	return nil
}
