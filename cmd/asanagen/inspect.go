package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mboyd1/asanagen/internal/config"
	"github.com/mboyd1/asanagen/internal/pipeline"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Show how a document's styles map onto the heading roles",
	Long: `Inspect counts the paragraphs matching each configured heading role.
Handy when a document converts to a root-only CSV and you want to know
whether its products section was recognized at all.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()
		cfg := config.Load()
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		runner := pipeline.NewRunner(cfg, log)

		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		survey, err := runner.Inspect(f, filepath.Base(args[0]))
		if err != nil {
			return err
		}

		fmt.Printf("%s\n", filepath.Base(args[0]))
		fmt.Printf("  paragraphs:     %d\n", survey.Paragraphs)
		fmt.Printf("  section:        %d\n", survey.Sections)
		fmt.Printf("  product type:   %d\n", survey.ProductTypes)
		fmt.Printf("  manufacturer:   %d\n", survey.Manufacturers)
		fmt.Printf("  description:    %d\n", survey.Descriptions)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
