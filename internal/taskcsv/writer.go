// Package taskcsv serializes task rows into Asana's import CSV layout.
package taskcsv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mboyd1/asanagen/internal/flatten"
)

// Columns is the fixed header, in Asana import order.
var Columns = []string{
	"Task Name",
	"Section/Column",
	"Assignee",
	"Due Date",
	"Priority",
	"Notes",
	"Parent Task",
	"Project",
}

// Write serializes the header and rows. encoding/csv handles field
// quoting and escaping.
func Write(w io.Writer, rows []flatten.TaskRow) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, row := range rows {
		record := []string{
			row.TaskName,
			row.Section,
			row.Assignee,
			row.DueDate,
			row.Priority,
			row.Notes,
			row.ParentTask,
			row.Project,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteFile writes rows to path, creating parent directories as needed.
func WriteFile(path string, rows []flatten.TaskRow) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}

	if err := Write(f, rows); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
