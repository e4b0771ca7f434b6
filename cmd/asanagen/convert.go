package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mboyd1/asanagen/internal/config"
	"github.com/mboyd1/asanagen/internal/pipeline"
)

var convertCmd = &cobra.Command{
	Use:   "convert [files...]",
	Short: "Convert documents into Asana import CSVs",
	Long: `Convert processes one or more documents (or, with --dir, every
supported document in a directory) and writes one <name>.csv per
document into the output directory. Documents without a products
section still produce a CSV containing just the root task.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()
		cfg := config.Load()
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		outDir, _ := cmd.Flags().GetString("out")
		dir, _ := cmd.Flags().GetString("dir")
		if workers, _ := cmd.Flags().GetInt("workers"); workers > 0 {
			cfg.Workers = workers
		}

		runner := pipeline.NewRunner(cfg, log)

		if dir != "" {
			summary, err := runner.ProcessDir(cmd.Context(), dir, outDir)
			if err != nil {
				return err
			}
			for _, res := range summary.Results {
				if !res.Succeeded() {
					fmt.Fprintf(os.Stderr, "failed: %s: %v\n", res.File, res.Err)
				}
			}
			fmt.Printf("Processed %d/%d documents successfully\n", summary.Succeeded, summary.Total)
			if summary.Failed > 0 {
				return fmt.Errorf("%d of %d documents failed", summary.Failed, summary.Total)
			}
			return nil
		}

		if len(args) == 0 {
			return fmt.Errorf("provide input files or --dir")
		}

		failed := 0
		for _, path := range args {
			res := runner.ProcessFile(path, outDir)
			if res.Succeeded() {
				fmt.Printf("%s -> %s (%d rows)\n", res.File, res.OutputPath, res.Rows)
			} else {
				failed++
				fmt.Fprintf(os.Stderr, "failed: %s: %v\n", res.File, res.Err)
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d documents failed", failed, len(args))
		}
		return nil
	},
}

func init() {
	convertCmd.Flags().String("out", ".", "output directory for generated CSV files")
	convertCmd.Flags().String("dir", "", "process every supported document in this directory")
	convertCmd.Flags().Int("workers", 0, "concurrent documents in --dir mode (default from config)")

	rootCmd.AddCommand(convertCmd)
}
