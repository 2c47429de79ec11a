package service

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"file-converter/internal/domain"
)

// ConvertService is the conversion dispatcher. It stages uploads to
// disk, invokes the matching converter capability, confirms the output
// artifact and records the action. It knows nothing about formats
// beyond file name suffixes.
type ConvertService struct {
	storage   *StorageService
	pdfToDocx domain.PDFToDocxConverter
	docxText  domain.DocxTextExtractor
	images    domain.ImageTranscoder
	merger    domain.PDFMerger
	history   domain.HistoryService
	logger    domain.Logger
}

// NewConvertService creates a new dispatcher instance
func NewConvertService(
	storage *StorageService,
	pdfToDocx domain.PDFToDocxConverter,
	docxText domain.DocxTextExtractor,
	images domain.ImageTranscoder,
	merger domain.PDFMerger,
	history domain.HistoryService,
	logger domain.Logger,
) *ConvertService {
	return &ConvertService{
		storage:   storage,
		pdfToDocx: pdfToDocx,
		docxText:  docxText,
		images:    images,
		merger:    merger,
		history:   history,
		logger:    logger,
	}
}

// PDFToDocx converts a single PDF upload to a DOCX artifact.
func (s *ConvertService) PDFToDocx(userID uint, upload domain.Upload) (*domain.ConversionResult, error) {
	inputPath, err := s.storage.StageUpload(upload)
	if err != nil {
		return nil, err
	}

	outputName := replaceSuffix(filepath.Base(inputPath), ".pdf", ".docx")
	outputPath := s.storage.ResultPath(outputName)

	if err := s.pdfToDocx.Convert(inputPath, outputPath); err != nil {
		s.logger.Error("PDF to DOCX conversion failed", err, "input", upload.Filename)
		return nil, fmt.Errorf("%w: %v", domain.ErrConversionFailed, err)
	}

	return s.finish(userID, domain.ActionPDFToDoc, outputPath)
}

// DocxToText extracts the text of a DOCX upload into a TXT artifact.
func (s *ConvertService) DocxToText(userID uint, upload domain.Upload) (*domain.ConversionResult, error) {
	inputPath, err := s.storage.StageUpload(upload)
	if err != nil {
		return nil, err
	}

	text, err := s.docxText.ExtractText(inputPath)
	if err != nil {
		s.logger.Error("DOCX text extraction failed", err, "input", upload.Filename)
		return nil, fmt.Errorf("%w: %v", domain.ErrConversionFailed, err)
	}

	outputName := replaceSuffix(filepath.Base(inputPath), ".docx", ".txt")
	outputPath := s.storage.ResultPath(outputName)
	if err := os.WriteFile(outputPath, []byte(text), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write text output: %w", err)
	}

	return s.finish(userID, domain.ActionDocToTxt, outputPath)
}

// ImageToJPEG re-encodes a raster image upload as an RGB JPEG artifact.
func (s *ConvertService) ImageToJPEG(userID uint, upload domain.Upload) (*domain.ConversionResult, error) {
	inputPath, err := s.storage.StageUpload(upload)
	if err != nil {
		return nil, err
	}

	base := filepath.Base(inputPath)
	outputName := strings.TrimSuffix(base, filepath.Ext(base)) + ".jpg"
	outputPath := s.storage.ResultPath(outputName)

	if err := s.images.TranscodeJPEG(inputPath, outputPath); err != nil {
		s.logger.Error("Image transcode failed", err, "input", upload.Filename)
		return nil, err
	}

	return s.finish(userID, domain.ActionImgToJpg, outputPath)
}

// MergePDFs concatenates 2 or more PDF uploads into a single artifact.
// Files without a .pdf suffix are skipped, not errored; this leniency
// matches the documented merge policy. The output name carries a
// per-request id so concurrent merges never collide.
func (s *ConvertService) MergePDFs(userID uint, uploads []domain.Upload) (*domain.ConversionResult, error) {
	var inputPaths []string
	for _, upload := range uploads {
		if !strings.HasSuffix(strings.ToLower(upload.Filename), ".pdf") {
			s.logger.Debug("Skipping non-PDF merge input", "filename", upload.Filename)
			continue
		}
		path, err := s.storage.StageUpload(upload)
		if err != nil {
			return nil, err
		}
		inputPaths = append(inputPaths, path)
	}

	if len(inputPaths) < 2 {
		return nil, domain.ErrInsufficientInput
	}

	outputName := fmt.Sprintf("merged-%s.pdf", uuid.NewString())
	outputPath := s.storage.ResultPath(outputName)

	if err := s.merger.Merge(inputPaths, outputPath); err != nil {
		s.logger.Error("PDF merge failed", err, "inputs", len(inputPaths))
		return nil, fmt.Errorf("%w: %v", domain.ErrConversionFailed, err)
	}

	return s.finish(userID, domain.ActionPDFMerge, outputPath)
}

// finish confirms the artifact exists on disk, records the action and
// builds the result. History is written strictly after the output file
// so a failed write can never leave a phantom log entry.
func (s *ConvertService) finish(userID uint, action, outputPath string) (*domain.ConversionResult, error) {
	if _, err := os.Stat(outputPath); err != nil {
		return nil, fmt.Errorf("output artifact missing: %w", err)
	}

	s.history.Record(userID, action, outputPath)

	return &domain.ConversionResult{
		OutputPath: outputPath,
		Filename:   filepath.Base(outputPath),
	}, nil
}

// replaceSuffix swaps a case-insensitive suffix for another; names
// without the expected suffix just gain the new one.
func replaceSuffix(name, oldSuffix, newSuffix string) string {
	if strings.HasSuffix(strings.ToLower(name), oldSuffix) {
		name = name[:len(name)-len(oldSuffix)]
	}
	return name + newSuffix
}
