// Package pipeline runs documents end to end: ingest, outline
// extraction, flattening, CSV export. Each document is processed
// independently; runs share nothing but the runner's immutable
// configuration, so batches parallelize freely.
package pipeline

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mboyd1/asanagen/internal/config"
	"github.com/mboyd1/asanagen/internal/flatten"
	"github.com/mboyd1/asanagen/internal/ingest"
	"github.com/mboyd1/asanagen/internal/outline"
	"github.com/mboyd1/asanagen/internal/taskcsv"
)

// Runner converts documents using one fixed configuration.
type Runner struct {
	cfg       config.Config
	log       *slog.Logger
	extractor *outline.Extractor
}

func NewRunner(cfg config.Config, log *slog.Logger) *Runner {
	return &Runner{
		cfg:       cfg,
		log:       log,
		extractor: outline.NewExtractor(cfg.Rules, log),
	}
}

// Result captures the outcome for a single document. Failures are
// values, never faults; a failed document does not stop a batch.
type Result struct {
	File       string
	OutputPath string
	Rows       int
	Err        error
}

func (r Result) Succeeded() bool { return r.Err == nil }

// Convert runs ingest → extract → flatten for one document stream.
// The returned rows are ready for CSV serialization.
func (r *Runner) Convert(rd io.Reader, filename string) ([]flatten.TaskRow, error) {
	ing, err := ingest.ForFile(filename)
	if err != nil {
		return nil, err
	}

	paragraphs, err := ing.Read(rd, filename)
	if err != nil {
		return nil, fmt.Errorf("ingest %s: %w", filename, err)
	}

	tree := r.extractor.Extract(ingest.DocumentName(filename), paragraphs)

	rows, err := flatten.Flatten(tree, flatten.Defaults{
		Section: r.cfg.DefaultSection,
		Project: r.cfg.DefaultProject,
	})
	if err != nil {
		return nil, fmt.Errorf("flatten %s: %w", filename, err)
	}
	return rows, nil
}

// Inspect summarizes how a document's styles map onto the heading
// roles, without converting it.
func (r *Runner) Inspect(rd io.Reader, filename string) (outline.Survey, error) {
	ing, err := ingest.ForFile(filename)
	if err != nil {
		return outline.Survey{}, err
	}
	paragraphs, err := ing.Read(rd, filename)
	if err != nil {
		return outline.Survey{}, fmt.Errorf("ingest %s: %w", filename, err)
	}
	return r.extractor.Survey(paragraphs), nil
}

// ProcessFile converts one document and writes <basename>.csv into
// outDir.
func (r *Runner) ProcessFile(path, outDir string) Result {
	res := Result{File: path}

	f, err := os.Open(path)
	if err != nil {
		res.Err = fmt.Errorf("open %s: %w", path, err)
		return res
	}
	defer f.Close()

	rows, err := r.Convert(f, filepath.Base(path))
	if err != nil {
		res.Err = err
		return res
	}

	out := filepath.Join(outDir, ingest.DocumentName(path)+".csv")
	if err := taskcsv.WriteFile(out, rows); err != nil {
		res.Err = err
		return res
	}

	res.OutputPath = out
	res.Rows = len(rows)
	r.log.Info("exported document", "file", path, "output", out, "rows", len(rows))
	return res
}
