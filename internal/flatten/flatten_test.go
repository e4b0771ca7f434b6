package flatten

import (
	"errors"
	"strings"
	"testing"

	"github.com/mboyd1/asanagen/internal/outline"
)

var testDefaults = Defaults{Section: "CA Submittal Check-list", Project: "Spec Review"}

func wellFormedTree() outline.DocumentTree {
	return outline.DocumentTree{
		DocumentName:  "spec-042",
		SectionMarker: &outline.SectionMarker{Position: 2, Label: "Products"},
		ProductTypes: []outline.ProductType{
			{
				Name: "TypeA",
				Manufacturers: []outline.Manufacturer{
					{Name: "Manufacturer: X", Descriptions: []string{"Desc 1"}},
				},
			},
		},
	}
}

func TestFlatten_WellFormedRoundTrip(t *testing.T) {
	rows, err := Flatten(wellFormedTree(), testDefaults)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}

	root := rows[0]
	if root.TaskName != "spec-042" || root.ParentTask != "" {
		t.Errorf("unexpected root row: %+v", root)
	}

	pt := rows[1]
	if pt.TaskName != "TypeA" || pt.ParentTask != "spec-042" {
		t.Errorf("unexpected product type row: %+v", pt)
	}

	m := rows[2]
	if m.TaskName != "Manufacturer: X" || m.ParentTask != "TypeA" {
		t.Errorf("unexpected manufacturer row: %+v", m)
	}
	if !strings.Contains(m.Notes, "Manufacturer: X") || !strings.Contains(m.Notes, "Desc 1") {
		t.Errorf("expected notes to carry name and description, got %q", m.Notes)
	}
}

func TestFlatten_DefaultsStampedOnEveryRow(t *testing.T) {
	rows, err := Flatten(wellFormedTree(), testDefaults)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, row := range rows {
		if row.Section != testDefaults.Section || row.Project != testDefaults.Project {
			t.Errorf("row %d: missing defaults: %+v", i, row)
		}
		if row.Assignee != "" || row.DueDate != "" || row.Priority != "" {
			t.Errorf("row %d: expected empty assignee/due/priority: %+v", i, row)
		}
	}
}

func TestFlatten_LinkageInvariant(t *testing.T) {
	tree := wellFormedTree()
	tree.ProductTypes = append(tree.ProductTypes, outline.ProductType{
		Name: "TypeB",
		Manufacturers: []outline.Manufacturer{
			{Name: "Manufacturers"},
			{Name: "Manufacturer of record", Descriptions: []string{"a", "b"}},
		},
	})

	rows, err := Flatten(tree, testDefaults)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rows[0].ParentTask != "" {
		t.Fatalf("row 0 must be the root, got parent %q", rows[0].ParentTask)
	}
	for i := 1; i < len(rows); i++ {
		found := false
		for j := 0; j < i; j++ {
			if rows[j].TaskName == rows[i].ParentTask {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("row %d parent %q does not precede it", i, rows[i].ParentTask)
		}
	}
}

func TestFlatten_EmptyTreeYieldsRootOnly(t *testing.T) {
	tree := outline.DocumentTree{
		DocumentName:  "empty-doc",
		SectionMarker: &outline.SectionMarker{Position: 4, Label: "Products"},
	}
	rows, err := Flatten(tree, testDefaults)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row (root only), got %d", len(rows))
	}
}

func TestFlatten_EmptyDocumentNameFails(t *testing.T) {
	tree := wellFormedTree()
	tree.DocumentName = ""

	rows, err := Flatten(tree, testDefaults)
	if !errors.Is(err, ErrEmptyDocumentName) {
		t.Fatalf("expected ErrEmptyDocumentName, got %v", err)
	}
	if rows != nil {
		t.Errorf("expected no partial output, got %d rows", len(rows))
	}

	// Whitespace-only names sanitize to empty and fail the same way.
	tree.DocumentName = "   \n "
	if _, err := Flatten(tree, testDefaults); !errors.Is(err, ErrEmptyDocumentName) {
		t.Fatalf("expected ErrEmptyDocumentName for whitespace name, got %v", err)
	}
}

func TestFlatten_SkipsEmptyNames(t *testing.T) {
	tree := outline.DocumentTree{
		DocumentName: "doc",
		ProductTypes: []outline.ProductType{
			{Name: "", Manufacturers: []outline.Manufacturer{{Name: "Manufacturer: orphan"}}},
			{Name: "TypeA", Manufacturers: []outline.Manufacturer{
				{Name: ""},
				{Name: "Manufacturers"},
			}},
		},
	}
	rows, err := Flatten(tree, testDefaults)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// root + TypeA + one named manufacturer; the unnamed product type's
	// subtree is skipped entirely.
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d: %+v", len(rows), rows)
	}
	for _, row := range rows {
		if row.TaskName == "" {
			t.Errorf("emitted a row with an empty task name: %+v", row)
		}
	}
}

func TestFlatten_NotesCompose(t *testing.T) {
	tree := outline.DocumentTree{
		DocumentName: "doc",
		ProductTypes: []outline.ProductType{{
			Name: "TypeA",
			Manufacturers: []outline.Manufacturer{
				{Name: "Manufacturer: X", Descriptions: []string{"Line 1", "", "Line 3"}},
				{Name: "Manufacturers"},
			},
		}},
	}
	rows, err := Flatten(tree, testDefaults)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Name, blank line, then description lines with empties preserved.
	want := "Manufacturer: X\n\nLine 1\n\nLine 3"
	if rows[2].Notes != want {
		t.Errorf("expected notes %q, got %q", want, rows[2].Notes)
	}

	// No descriptions: notes carry the name alone.
	if rows[3].Notes != "Manufacturers" {
		t.Errorf("expected name-only notes, got %q", rows[3].Notes)
	}
}

func TestFlatten_NameFieldsCollapseNewlines(t *testing.T) {
	tree := outline.DocumentTree{
		DocumentName: "my\ndoc",
		ProductTypes: []outline.ProductType{{
			Name: "Type\n  A",
			Manufacturers: []outline.Manufacturer{
				{Name: "Manufacturer:\nX", Descriptions: []string{"Desc  with   runs"}},
			},
		}},
	}
	rows, err := Flatten(tree, testDefaults)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rows[0].TaskName != "my doc" || rows[1].TaskName != "Type A" || rows[2].TaskName != "Manufacturer: X" {
		t.Errorf("expected collapsed names, got %q, %q, %q", rows[0].TaskName, rows[1].TaskName, rows[2].TaskName)
	}
	if rows[1].ParentTask != "my doc" || rows[2].ParentTask != "Type A" {
		t.Errorf("parent references must use the sanitized names: %+v", rows)
	}
	// Notes keep their composed newlines while each sub-field is collapsed.
	if rows[2].Notes != "Manufacturer: X\n\nDesc with runs" {
		t.Errorf("unexpected notes: %q", rows[2].Notes)
	}
}
