// Package outline turns the implicit heading structure of a document's
// paragraph sequence into an explicit product tree: the document, a
// products section marker, and product types with their manufacturers
// and description lines.
package outline

import (
	"log/slog"
	"strings"

	"github.com/mboyd1/asanagen/internal/ingest"
)

// SectionMarker anchors where product data begins: the second
// paragraph matching both the section style role and the section
// caption vocabulary. The first qualifying occurrence is typically a
// table-of-contents mention, so the second is authoritative.
type SectionMarker struct {
	Position int    // index into the paragraph sequence
	Label    string // trimmed caption text
}

// Manufacturer is a level-3 heading plus its description lines.
type Manufacturer struct {
	Name         string
	Descriptions []string
}

// ProductType is a level-2 heading plus its manufacturers.
type ProductType struct {
	Name          string
	Manufacturers []Manufacturer
}

// DocumentTree is the complete parse result for one document. It is
// never mutated after Extract returns.
type DocumentTree struct {
	DocumentName  string
	SectionMarker *SectionMarker // nil when no qualifying marker exists
	ProductTypes  []ProductType
}

// Extractor runs the outline extraction with fixed rules. One
// extractor may be shared across documents; it holds no per-run state.
type Extractor struct {
	rules Rules
	log   *slog.Logger
}

func NewExtractor(rules Rules, log *slog.Logger) *Extractor {
	return &Extractor{rules: rules, log: log}
}

// Extract builds the document tree in a single forward pass. A missing
// products section is a normal outcome and yields an empty product-type
// list; unreadable input is the caller's concern (no paragraphs, no
// tree).
func (e *Extractor) Extract(docName string, paragraphs []ingest.Paragraph) DocumentTree {
	tree := DocumentTree{DocumentName: docName}

	marker := e.findSectionMarker(paragraphs)
	if marker == nil {
		e.log.Warn("products section not found", "document", docName)
		return tree
	}
	tree.SectionMarker = marker
	e.log.Debug("found products section", "document", docName, "position", marker.Position, "label", marker.Label)

	// Forward pass strictly after the marker. "Currently open" product
	// type and manufacturer are tracked as indices; children never
	// point back at parents.
	typeIdx := -1
	manIdx := -1

	for i := marker.Position + 1; i < len(paragraphs); i++ {
		para := paragraphs[i]
		switch {
		case e.rules.Section.MatchesStyle(para.Style):
			// A new top-level section closes the products region,
			// whatever its text says.
			return tree

		case e.rules.ProductType.MatchesStyle(para.Style):
			tree.ProductTypes = append(tree.ProductTypes, ProductType{
				Name: strings.TrimSpace(para.Text),
			})
			typeIdx = len(tree.ProductTypes) - 1
			manIdx = -1

		case e.rules.Manufacturer.MatchesStyle(para.Style):
			if typeIdx < 0 {
				e.log.Debug("manufacturer heading before any product type, dropped", "document", docName, "text", para.Text)
				continue
			}
			// A manufacturer-styled heading whose text is not a
			// manufacturer caption is neither a manufacturer nor a
			// description.
			if !MatchText(para.Text, e.rules.ManufacturerCaptions) {
				continue
			}
			pt := &tree.ProductTypes[typeIdx]
			pt.Manufacturers = append(pt.Manufacturers, Manufacturer{
				Name: strings.TrimSpace(para.Text),
			})
			manIdx = len(pt.Manufacturers) - 1

		case e.rules.Description.MatchesStyle(para.Style):
			if typeIdx < 0 || manIdx < 0 {
				e.log.Debug("description with no open manufacturer, dropped", "document", docName, "text", para.Text)
				continue
			}
			m := &tree.ProductTypes[typeIdx].Manufacturers[manIdx]
			m.Descriptions = append(m.Descriptions, strings.TrimSpace(para.Text))
		}
		// Paragraphs matching no role are narrative filler.
	}

	return tree
}

// findSectionMarker scans for paragraphs matching the section role and
// caption vocabulary and selects the second occurrence.
func (e *Extractor) findSectionMarker(paragraphs []ingest.Paragraph) *SectionMarker {
	count := 0
	for i, para := range paragraphs {
		if !e.rules.Section.MatchesStyle(para.Style) {
			continue
		}
		if !MatchText(para.Text, e.rules.SectionCaptions) {
			continue
		}
		count++
		if count == 2 {
			return &SectionMarker{
				Position: i,
				Label:    strings.TrimSpace(para.Text),
			}
		}
	}
	return nil
}
