package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sanaai/job-assistant/internal/rendering"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Compile a LaTeX resume to PDF",
	RunE:  runRender,
}

var (
	renderInputFile  string
	renderOutputFile string
)

func init() {
	renderCmd.Flags().StringVarP(&renderInputFile, "in", "i", "", "Path to LaTeX source file (required)")
	renderCmd.Flags().StringVarP(&renderOutputFile, "out", "o", "", "Path to output PDF file (required)")

	if err := renderCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}
	if err := renderCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(renderCmd)
}

func runRender(_ *cobra.Command, _ []string) error {
	source, err := os.ReadFile(renderInputFile)
	if err != nil {
		return fmt.Errorf("failed to read LaTeX file: %w", err)
	}

	pdf, err := rendering.CompilePDF(context.Background(), string(source))
	if err != nil {
		return fmt.Errorf("failed to compile PDF: %w", err)
	}

	if err := os.WriteFile(renderOutputFile, pdf, 0644); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "PDF written to %s\n", renderOutputFile)
	return nil
}
