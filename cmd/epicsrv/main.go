// Package main is the entry point for the epic progression CLI
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "epicsrv",
	Short: "Epic progression rules engine",
	Long:  `epicsrv inspects the epic rulebook catalogs and runs advancement dry runs against the progression tables.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(planCmd)
}
