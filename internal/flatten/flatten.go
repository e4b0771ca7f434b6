// Package flatten converts a document tree into the ordered,
// parent-name-linked task rows the Asana CSV import expects.
package flatten

import (
	"errors"
	"strings"

	"github.com/mboyd1/asanagen/internal/outline"
)

// ErrEmptyDocumentName reports a tree whose root task would have no
// name; parent linking downstream would be ambiguous, so nothing is
// emitted.
var ErrEmptyDocumentName = errors.New("document name is empty")

// TaskRow is one row of the import file. All fields are strings;
// ParentTask is a name-based back-reference to an earlier row, empty
// for the root.
type TaskRow struct {
	TaskName   string `json:"task_name"`
	Section    string `json:"section_column"`
	Assignee   string `json:"assignee"`
	DueDate    string `json:"due_date"`
	Priority   string `json:"priority"`
	Notes      string `json:"notes"`
	ParentTask string `json:"parent_task"`
	Project    string `json:"project"`
}

// Defaults carries the configured values stamped onto every row.
type Defaults struct {
	Section string
	Project string
}

// Flatten emits the root row, then product-type rows, then manufacturer
// rows, in tree order. Row 0 is always the root; every later row's
// ParentTask equals the TaskName of a row before it. Product types and
// manufacturers with empty names are skipped (skipping a product type
// skips its manufacturers, which would otherwise reference a parent
// that was never emitted).
func Flatten(tree outline.DocumentTree, defaults Defaults) ([]TaskRow, error) {
	docName := Sanitize(tree.DocumentName)
	if docName == "" {
		return nil, ErrEmptyDocumentName
	}

	rows := []TaskRow{{
		TaskName: docName,
		Section:  defaults.Section,
		Notes:    "Root task for document",
		Project:  defaults.Project,
	}}

	for _, pt := range tree.ProductTypes {
		typeName := Sanitize(pt.Name)
		if typeName == "" {
			continue
		}
		rows = append(rows, TaskRow{
			TaskName:   typeName,
			Section:    defaults.Section,
			ParentTask: docName,
			Project:    defaults.Project,
		})

		for _, m := range pt.Manufacturers {
			manName := Sanitize(m.Name)
			if manName == "" {
				continue
			}
			rows = append(rows, TaskRow{
				TaskName:   manName,
				Section:    defaults.Section,
				Notes:      composeNotes(manName, m.Descriptions),
				ParentTask: typeName,
				Project:    defaults.Project,
			})
		}
	}

	return rows, nil
}

// composeNotes joins the manufacturer name and its description lines.
// Sanitation runs per sub-field so that the name loses embedded
// newlines while the composed notes keep their line structure; empty
// description lines are preserved.
func composeNotes(manName string, descriptions []string) string {
	if len(descriptions) == 0 {
		return manName
	}
	lines := make([]string, len(descriptions))
	for i, d := range descriptions {
		lines[i] = Sanitize(d)
	}
	return manName + "\n\n" + strings.Join(lines, "\n")
}
