package ingest

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// HTMLIngester handles HTML files. Heading tags h1..h6 become
// "Heading N" paragraphs; other content blocks become Normal ones.
type HTMLIngester struct{}

func (p *HTMLIngester) Read(r io.Reader, filename string) ([]Paragraph, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var paragraphs []Paragraph

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if level := htmlHeadingLevel(n.Data); level > 0 {
				paragraphs = append(paragraphs, Paragraph{
					Text:  htmlTextContent(n),
					Style: fmt.Sprintf("Heading %d", level),
				})
				return // Heading text already extracted, don't recurse.
			}

			switch n.Data {
			case "script", "style", "nav", "footer", "header":
				return
			case "p", "li", "td", "blockquote":
				if t := htmlTextContent(n); t != "" {
					paragraphs = append(paragraphs, Paragraph{
						Text:  t,
						Style: StyleNormal,
					})
				}
				return
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	if body := findBody(doc); body != nil {
		walk(body)
	} else {
		walk(doc)
	}

	return paragraphs, nil
}

func htmlHeadingLevel(tag string) int {
	switch tag {
	case "h1":
		return 1
	case "h2":
		return 2
	case "h3":
		return 3
	case "h4":
		return 4
	case "h5":
		return 5
	case "h6":
		return 6
	}
	return 0
}

func htmlTextContent(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(buf.String())
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}
