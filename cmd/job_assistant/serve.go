package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sanaai/job-assistant/internal/config"
	"github.com/sanaai/job-assistant/internal/server"
)

var (
	servePort       int
	serveModel      string
	serveCacheSize  int
	serveConfigFile string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for parsing job descriptions, rewriting resumes, and compiling LaTeX to PDF.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default 8080)")
	serveCmd.Flags().StringVar(&serveModel, "model", "", "Override the standard model tier")
	serveCmd.Flags().IntVar(&serveCacheSize, "cache-size", 0, "Document metadata cache capacity (0 uses the default)")
	serveCmd.Flags().StringVar(&serveConfigFile, "config", "", "Path to a JSON config file providing flag defaults")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	merged := config.Config{
		Port:      servePort,
		Model:     serveModel,
		CacheSize: serveCacheSize,
	}
	if serveConfigFile != "" {
		fileCfg, err := config.LoadConfig(serveConfigFile)
		if err != nil {
			return err
		}
		merged = merged.MergeWithDefaults(*fileCfg)
	}
	if merged.Port == 0 {
		merged.Port = 8080
	}
	if err := merged.Validate(); err != nil {
		return err
	}

	apiKey := merged.ResolveAPIKey()
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	cfg := server.Config{
		Port:           merged.Port,
		APIKey:         apiKey,
		Model:          merged.Model,
		CacheSize:      merged.CacheSize,
		MaxPromptChars: merged.MaxPromptChars,
	}

	srv, err := server.New(context.Background(), cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
