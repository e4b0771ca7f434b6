package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/mboyd1/asanagen/internal/ingest"
)

// BatchSummary aggregates per-document results for one directory run.
type BatchSummary struct {
	Total     int
	Succeeded int
	Failed    int
	Results   []Result // in directory order
}

// ProcessDir converts every supported document in dir, writing one CSV
// per document into outDir. Documents are processed concurrently with
// a bounded worker count; per-document failures land in the summary
// and never abort the batch. An unreadable input directory is the only
// error this returns.
func (r *Runner) ProcessDir(ctx context.Context, dir, outDir string) (BatchSummary, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return BatchSummary{}, fmt.Errorf("read input directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		// "~$" files are Office lock files, not documents.
		if strings.HasPrefix(name, "~$") {
			continue
		}
		if ingest.IsSupportedExtension(name) {
			files = append(files, filepath.Join(dir, name))
		}
	}
	sort.Strings(files)

	if len(files) == 0 {
		r.log.Warn("no supported documents found", "dir", dir)
		return BatchSummary{}, nil
	}

	summary := BatchSummary{
		Total:   len(files),
		Results: make([]Result, len(files)),
	}

	sem := make(chan struct{}, r.cfg.Workers)
	var wg sync.WaitGroup
	for i, path := range files {
		select {
		case <-ctx.Done():
			summary.Results[i] = Result{File: path, Err: ctx.Err()}
			continue
		case sem <- struct{}{}:
		}
		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			defer func() { <-sem }()
			summary.Results[i] = r.ProcessFile(path, outDir)
		}(i, path)
	}
	wg.Wait()

	for _, res := range summary.Results {
		if res.Succeeded() {
			summary.Succeeded++
		} else {
			summary.Failed++
			r.log.Error("document failed", "file", res.File, "error", res.Err)
		}
	}

	r.log.Info("batch complete", "total", summary.Total, "succeeded", summary.Succeeded, "failed", summary.Failed)
	return summary, nil
}
