package ingest

import (
	"bufio"
	"io"
	"strings"
)

// TextIngester handles plain text files. Blank lines separate
// paragraphs; every paragraph gets the Normal style since plain text
// carries no heading information.
type TextIngester struct{}

func (p *TextIngester) Read(r io.Reader, filename string) ([]Paragraph, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var paragraphs []Paragraph
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			paragraphs = append(paragraphs, Paragraph{
				Text:  current.String(),
				Style: StyleNormal,
			})
			current.Reset()
		}
	}

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			flush()
		} else {
			if current.Len() > 0 {
				current.WriteString("\n")
			}
			current.WriteString(line)
		}
	}
	flush()

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return paragraphs, nil
}
