package service

import (
	"fmt"
	"os"
	"strings"

	docx "github.com/fumiama/go-docx"
)

// DocxTextExtractor pulls the plain text out of a DOCX document.
type DocxTextExtractor struct{}

// NewDocxTextExtractor creates a new DOCX text extractor
func NewDocxTextExtractor() *DocxTextExtractor {
	return &DocxTextExtractor{}
}

// ExtractText parses the document and concatenates its paragraphs and
// tables, one per line. Unreadable DOCX files fail on parse.
func (e *DocxTextExtractor) ExtractText(inputPath string) (string, error) {
	f, err := os.Open(inputPath)
	if err != nil {
		return "", fmt.Errorf("failed to open DOCX: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("failed to stat DOCX: %w", err)
	}

	doc, err := docx.Parse(f, info.Size())
	if err != nil {
		return "", fmt.Errorf("failed to parse DOCX: %w", err)
	}

	var b strings.Builder
	for _, item := range doc.Document.Body.Items {
		switch item.(type) {
		case *docx.Paragraph, *docx.Table:
			fmt.Fprintln(&b, item)
		}
	}
	return b.String(), nil
}
