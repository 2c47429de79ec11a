package service

import (
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"file-converter/internal/domain"
)

// PDFMerger concatenates PDFs with pdfcpu.
type PDFMerger struct {
	logger domain.Logger
}

// NewPDFMerger creates a new PDF merge engine
func NewPDFMerger(logger domain.Logger) *PDFMerger {
	return &PDFMerger{logger: logger}
}

// Merge appends the inputs in order and writes the combined document.
func (m *PDFMerger) Merge(inputPaths []string, outputPath string) error {
	m.logger.Debug("Merging PDFs", "count", len(inputPaths), "output", outputPath)
	if err := api.MergeCreateFile(inputPaths, outputPath, false, nil); err != nil {
		return fmt.Errorf("failed to merge PDFs: %w", err)
	}
	return nil
}
