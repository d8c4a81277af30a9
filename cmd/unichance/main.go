// Package main provides the entry point for the UniChance admission advisor.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "unichance",
	Short: "UniChance admission advisor",
	Long:  "UniChance parses university admission documents into structured requirements and generates personalized improvement tips from profile gap analysis.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
