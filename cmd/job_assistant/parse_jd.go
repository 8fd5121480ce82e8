package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sanaai/job-assistant/internal/config"
	"github.com/sanaai/job-assistant/internal/ingestion"
	"github.com/sanaai/job-assistant/internal/llm"
	"github.com/sanaai/job-assistant/internal/parsing"
)

var parseJDCmd = &cobra.Command{
	Use:   "parse-jd",
	Short: "Parse a job description into structured fields",
	Long:  "Parses a job description (file path or URL) into structured skills, requirements, and keywords, validated against the bundled JSON schema.",
	RunE:  runParseJD,
}

var (
	parseJDSource     string
	parseJDOutputFile string
	parseJDAPIKey     string
	parseJDUseBrowser bool
)

func init() {
	parseJDCmd.Flags().StringVarP(&parseJDSource, "job", "j", "", "Job posting: file path or URL (required)")
	parseJDCmd.Flags().StringVarP(&parseJDOutputFile, "out", "o", "", "Path to output JSON file (defaults to stdout)")
	parseJDCmd.Flags().StringVar(&parseJDAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	parseJDCmd.Flags().BoolVar(&parseJDUseBrowser, "use-browser", false, "Render the job posting URL with a headless browser")

	if err := parseJDCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}

	rootCmd.AddCommand(parseJDCmd)
}

func runParseJD(_ *cobra.Command, _ []string) error {
	cfg := config.Config{APIKey: parseJDAPIKey}
	apiKey := cfg.ResolveAPIKey()
	if apiKey == "" {
		return fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or use --api-key flag)")
	}

	ctx := context.Background()

	posting, err := ingestion.LoadPosting(ctx, parseJDSource, parseJDUseBrowser)
	if err != nil {
		return fmt.Errorf("failed to load job posting: %w", err)
	}

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	parsed, err := parsing.ParseJD(ctx, client, posting)
	if err != nil {
		return fmt.Errorf("failed to parse job description: %w", err)
	}

	jsonBytes, err := json.MarshalIndent(parsed, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if parseJDOutputFile == "" {
		_, _ = fmt.Fprintln(os.Stdout, string(jsonBytes))
		return nil
	}

	if err := os.WriteFile(parseJDOutputFile, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", parseJDOutputFile)
	return nil
}
