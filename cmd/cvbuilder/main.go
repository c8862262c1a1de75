// Package main provides the cvbuilder CLI: edit a CV, preview it and export it as a PDF.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cvbuilder",
	Short: "Interactive CV builder",
	Long: "cvbuilder edits a structured CV document, autosaves every change, previews it with one of " +
		"three templates and exports it as a single-page PDF.",
	SilenceUsage: true,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
