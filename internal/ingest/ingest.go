package ingest

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// StyleNormal is the style label given to body text in formats that
// carry no named paragraph styles of their own.
const StyleNormal = "Normal"

// Paragraph is one paragraph of a source document in reading order.
type Paragraph struct {
	Text  string // plain text, possibly empty
	Style string // style label, application-specific, never empty
}

// Ingester converts raw document bytes into an ordered paragraph sequence.
type Ingester interface {
	Read(r io.Reader, filename string) ([]Paragraph, error)
}

// SupportedExtensions lists file extensions this tool can handle.
var SupportedExtensions = map[string]bool{
	".docx": true,
	".md":   true,
	".html": true,
	".htm":  true,
	".txt":  true,
	".pdf":  true,
}

// ForFile returns the appropriate ingester for a filename.
func ForFile(filename string) (Ingester, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".docx":
		return &DOCXIngester{}, nil
	case ".md", ".markdown":
		return &MarkdownIngester{}, nil
	case ".html", ".htm":
		return &HTMLIngester{}, nil
	case ".txt":
		return &TextIngester{}, nil
	case ".pdf":
		return &PDFIngester{FallbackPdftotext: true}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == ".markdown" {
		return true
	}
	return SupportedExtensions[ext]
}

// DocumentName derives the root task name from a filename: the base
// name with its extension removed.
func DocumentName(filename string) string {
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
