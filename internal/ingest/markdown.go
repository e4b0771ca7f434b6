package ingest

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownIngester handles Markdown files using goldmark. Heading
// blocks of level N become "Heading N" paragraphs; all other blocks
// become Normal paragraphs.
type MarkdownIngester struct{}

func (p *MarkdownIngester) Read(r io.Reader, filename string) ([]Paragraph, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New()
	reader := text.NewReader(src)
	doc := md.Parser().Parse(reader)

	var paragraphs []Paragraph
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			paragraphs = append(paragraphs, Paragraph{
				Text:  string(node.Text(src)),
				Style: fmt.Sprintf("Heading %d", node.Level),
			})
		default:
			t := mdBlockText(n, src)
			if t != "" {
				paragraphs = append(paragraphs, Paragraph{
					Text:  t,
					Style: StyleNormal,
				})
			}
		}
	}

	return paragraphs, nil
}

// mdBlockText gets the text content of a goldmark AST block node.
// Leaf blocks carry their raw source lines; container blocks (lists,
// quotes) are walked recursively.
func mdBlockText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	if n.Type() == ast.TypeBlock && n.Lines().Len() > 0 {
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			buf.Write(seg.Value(src))
		}
		return strings.TrimSpace(buf.String())
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t := mdBlockText(c, src); t != "" {
			if buf.Len() > 0 {
				buf.WriteByte('\n')
			}
			buf.WriteString(t)
		}
	}
	return strings.TrimSpace(buf.String())
}
