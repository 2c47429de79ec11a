package service

import (
	"fmt"
	"os"
	"strings"

	docx "github.com/fumiama/go-docx"
	"github.com/gen2brain/go-fitz"

	"file-converter/internal/domain"
)

// PDFToDocxConverter rebuilds a PDF's extractable text as a DOCX
// document, one paragraph per non-empty line.
type PDFToDocxConverter struct {
	logger domain.Logger
}

// NewPDFToDocxConverter creates a new PDF to DOCX converter
func NewPDFToDocxConverter(logger domain.Logger) *PDFToDocxConverter {
	return &PDFToDocxConverter{logger: logger}
}

// Convert extracts text page by page and writes the DOCX artifact.
// Malformed PDFs fail on open.
func (c *PDFToDocxConverter) Convert(inputPath, outputPath string) error {
	doc, err := fitz.New(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	out := docx.New().WithDefaultTheme()

	numPages := doc.NumPage()
	for page := 0; page < numPages; page++ {
		c.logger.Debug("Extracting PDF page", "page", page+1, "total", numPages)
		text, err := doc.Text(page)
		if err != nil {
			return fmt.Errorf("failed to extract text from page %d: %w", page+1, err)
		}
		for _, line := range strings.Split(text, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			out.AddParagraph().AddText(line)
		}
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	if _, err := out.WriteTo(f); err != nil {
		return fmt.Errorf("failed to write DOCX: %w", err)
	}
	return nil
}
