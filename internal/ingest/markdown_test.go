package ingest

import (
	"strings"
	"testing"
)

func TestMarkdownIngester_HeadingLevelsBecomeStyles(t *testing.T) {
	input := `# Products

Intro text.

## TypeA

### Manufacturer: X

#### Desc 1
`
	p := &MarkdownIngester{}
	paragraphs, err := p.Read(strings.NewReader(input), "spec.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []Paragraph{
		{Text: "Products", Style: "Heading 1"},
		{Text: "Intro text.", Style: StyleNormal},
		{Text: "TypeA", Style: "Heading 2"},
		{Text: "Manufacturer: X", Style: "Heading 3"},
		{Text: "Desc 1", Style: "Heading 4"},
	}
	if len(paragraphs) != len(want) {
		t.Fatalf("expected %d paragraphs, got %d: %+v", len(want), len(paragraphs), paragraphs)
	}
	for i, w := range want {
		if paragraphs[i] != w {
			t.Errorf("paragraph[%d] = %+v, want %+v", i, paragraphs[i], w)
		}
	}
}

func TestMarkdownIngester_EmptyInput(t *testing.T) {
	p := &MarkdownIngester{}
	paragraphs, err := p.Read(strings.NewReader(""), "empty.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(paragraphs) != 0 {
		t.Errorf("expected 0 paragraphs, got %d", len(paragraphs))
	}
}

func TestMarkdownIngester_ListItemsAreNormalText(t *testing.T) {
	input := "## TypeA\n\n- item one\n- item two\n"
	p := &MarkdownIngester{}
	paragraphs, err := p.Read(strings.NewReader(input), "list.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(paragraphs) < 2 {
		t.Fatalf("expected heading plus list content, got %+v", paragraphs)
	}
	if paragraphs[0].Style != "Heading 2" {
		t.Errorf("expected Heading 2 first, got %q", paragraphs[0].Style)
	}
	for _, para := range paragraphs[1:] {
		if para.Style != StyleNormal {
			t.Errorf("expected list content as Normal, got %q", para.Style)
		}
	}
}
