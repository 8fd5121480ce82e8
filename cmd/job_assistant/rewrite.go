package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sanaai/job-assistant/internal/cache"
	"github.com/sanaai/job-assistant/internal/config"
	"github.com/sanaai/job-assistant/internal/facts"
	"github.com/sanaai/job-assistant/internal/ingestion"
	"github.com/sanaai/job-assistant/internal/llm"
	"github.com/sanaai/job-assistant/internal/observability"
	"github.com/sanaai/job-assistant/internal/pipeline"
	"github.com/sanaai/job-assistant/internal/rendering"
)

var rewriteCmd = &cobra.Command{
	Use:   "rewrite",
	Short: "Rewrite a resume to target a job posting",
	Long:  "Rewrites a resume (plain text or LaTeX) to emphasize the skills and keywords a job posting asks for, then validates the result against the original facts.",
	RunE:  runRewrite,
}

var (
	rewriteResumeFile string
	rewriteJobSource  string
	rewriteOutputFile string
	rewritePDFFile    string
	rewriteAPIKey     string
	rewriteUseBrowser bool
	rewriteVerbose    bool
	rewriteConfigFile string
)

func init() {
	rewriteCmd.Flags().StringVarP(&rewriteResumeFile, "resume", "r", "", "Path to resume file, .tex or .txt (required)")
	rewriteCmd.Flags().StringVarP(&rewriteJobSource, "job", "j", "", "Job posting: file path or URL (required)")
	rewriteCmd.Flags().StringVarP(&rewriteOutputFile, "out", "o", "", "Path to write the rewritten resume (required)")
	rewriteCmd.Flags().StringVar(&rewritePDFFile, "pdf", "", "Also compile the rewrite to a PDF at this path (LaTeX input only)")
	rewriteCmd.Flags().StringVar(&rewriteAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	rewriteCmd.Flags().BoolVar(&rewriteUseBrowser, "use-browser", false, "Render the job posting URL with a headless browser")
	rewriteCmd.Flags().BoolVarP(&rewriteVerbose, "verbose", "v", false, "Print extracted facts, keywords, and validation details")
	rewriteCmd.Flags().StringVar(&rewriteConfigFile, "config", "", "Path to a JSON config file providing flag defaults")

	rootCmd.AddCommand(rewriteCmd)
}

// mergeRewriteConfig folds config file values under the flag values.
// Flags always win; the file only fills in what was left unset.
func mergeRewriteConfig() (config.Config, error) {
	merged := config.Config{
		Resume:     rewriteResumeFile,
		Output:     rewriteOutputFile,
		PDFPath:    rewritePDFFile,
		APIKey:     rewriteAPIKey,
		UseBrowser: rewriteUseBrowser,
		Verbose:    rewriteVerbose,
	}
	if ingestion.IsURL(rewriteJobSource) {
		merged.JobURL = rewriteJobSource
	} else {
		merged.Job = rewriteJobSource
	}

	if rewriteConfigFile != "" {
		fileCfg, err := config.LoadConfig(rewriteConfigFile)
		if err != nil {
			return config.Config{}, err
		}
		merged = merged.MergeWithDefaults(*fileCfg)
		// A job source given on the command line overrides both file fields.
		if rewriteJobSource != "" {
			if ingestion.IsURL(rewriteJobSource) {
				merged.Job, merged.JobURL = "", rewriteJobSource
			} else {
				merged.Job, merged.JobURL = rewriteJobSource, ""
			}
		}
	}

	if err := merged.Validate(); err != nil {
		return config.Config{}, err
	}
	if merged.Resume == "" {
		return config.Config{}, fmt.Errorf("a resume file is required (--resume or config)")
	}
	if merged.Job == "" && merged.JobURL == "" {
		return config.Config{}, fmt.Errorf("a job posting is required (--job or config)")
	}
	if merged.Output == "" {
		return config.Config{}, fmt.Errorf("an output path is required (--out or config)")
	}
	return merged, nil
}

func runRewrite(_ *cobra.Command, _ []string) error {
	cfg, err := mergeRewriteConfig()
	if err != nil {
		return err
	}

	resumeContent, err := os.ReadFile(cfg.Resume)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	apiKey := cfg.ResolveAPIKey()
	if apiKey == "" {
		return fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or use --api-key flag)")
	}

	jobSource := cfg.Job
	if jobSource == "" {
		jobSource = cfg.JobURL
	}

	ctx := context.Background()

	posting, err := ingestion.LoadPosting(ctx, jobSource, cfg.UseBrowser)
	if err != nil {
		return fmt.Errorf("failed to load job posting: %w", err)
	}

	llmCfg := llm.DefaultConfig()
	if cfg.Model != "" {
		llmCfg = llmCfg.WithModel(llm.TierAdvanced, cfg.Model)
	}
	client, err := llm.NewClient(ctx, llmCfg, apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	rewriter := pipeline.NewRewriter(client, cache.New(cfg.CacheSize), facts.NewExtractor(), cfg.MaxPromptChars)
	result, err := rewriter.Rewrite(ctx, string(resumeContent), posting)
	if err != nil {
		return fmt.Errorf("rewrite failed: %w", err)
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintFactSet(result.Facts)
		printer.PrintKeywordBucket(result.Bucket)
		printer.PrintShortfalls(result.Shortfalls)
		printer.PrintValidationReport(result.Report)
	}

	// Ensure output directory exists
	outputDir := filepath.Dir(cfg.Output)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(cfg.Output, []byte(result.Rewritten), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	if !result.Report.Passed {
		_, _ = fmt.Fprintln(os.Stderr, "Warning: validation failed; review the report before using the rewrite")
		for _, msg := range result.Report.Errors {
			_, _ = fmt.Fprintf(os.Stderr, "  %s\n", msg)
		}
	}

	_, _ = fmt.Fprintf(os.Stdout, "Rewritten resume (%s format) written to %s\n", result.Format, cfg.Output)

	if cfg.PDFPath != "" {
		pdf, err := rendering.CompilePDF(ctx, result.Rewritten)
		if err != nil {
			return fmt.Errorf("failed to compile PDF: %w", err)
		}
		if err := os.WriteFile(cfg.PDFPath, pdf, 0644); err != nil {
			return fmt.Errorf("failed to write PDF: %w", err)
		}
		_, _ = fmt.Fprintf(os.Stdout, "PDF written to %s\n", cfg.PDFPath)
	}

	return nil
}
