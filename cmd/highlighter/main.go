// Package main provides the writing-highlighter command line tool and HTTP server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "highlighter",
	Short: "Criteria-driven highlighting for student writing",
	Long: "Highlighter marks the passages of a writing sample that evidence each success criterion, " +
		"using the teacher's justifications first and category heuristics as a fallback.",
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
