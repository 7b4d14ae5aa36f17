// Package cmd - version command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the freshchain version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("freshchain %s\n", Version)
	},
}
