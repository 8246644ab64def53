// Package main provides the entry point for the CareerPilot backend server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "careerpilot",
	Short: "CareerPilot backend HTTP API server",
	Long:  "CareerPilot matches uploaded resumes against live job listings: it extracts skills with an LLM, fans out to job-search providers, and returns a deduplicated, relevance-ranked result set via REST.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
