package main

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any
// subcommands
var rootCmd = &cobra.Command{
	Use: "saltid",
	Short: "SaltID CLI tool can perform common tasks related to salted " +
		"identifier allocation.",
	Long: `SaltID CLI tool can perform common tasks related to salted ` +
		`identifier allocation. Currently, it supports minting identifiers ` +
		`and resolving the partition of an identifier.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
