// Package main provides the entry point for the Job Assistant CLI and
// HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "job_assistant",
	Short: "Job Assistant resume tailoring service",
	Long:  "Job Assistant rewrites resumes to target specific job postings, extracting verifiable facts up front and validating the rewrite against them so nothing gets fabricated.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
