// Package main is the entry point for the freshchain CLI.
package main

import (
	"os"

	"freshchain/cmd/freshchain/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
