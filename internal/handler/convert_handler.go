package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"file-converter/internal/domain"
)

// ConvertHandler exposes the conversion and merge endpoints. Each
// endpoint extracts the multipart payload, hands it to the dispatcher
// and streams the produced artifact back as an attachment. Conversion
// faults surface as a notice on the dashboard, not a fault page.
type ConvertHandler struct {
	convertService domain.ConvertService
	maxFileSize    int64
	logger         domain.Logger
}

// NewConvertHandler creates a new convert handler instance
func NewConvertHandler(convertService domain.ConvertService, maxFileSize int64, logger domain.Logger) *ConvertHandler {
	return &ConvertHandler{
		convertService: convertService,
		maxFileSize:    maxFileSize,
		logger:         logger,
	}
}

// PDFToDoc converts an uploaded PDF to DOCX.
func (h *ConvertHandler) PDFToDoc(w http.ResponseWriter, r *http.Request) {
	h.convertSingle(w, r, h.convertService.PDFToDocx)
}

// DocToTxt extracts the text of an uploaded DOCX.
func (h *ConvertHandler) DocToTxt(w http.ResponseWriter, r *http.Request) {
	h.convertSingle(w, r, h.convertService.DocxToText)
}

// ImgToJpg re-encodes an uploaded image as JPEG.
func (h *ConvertHandler) ImgToJpg(w http.ResponseWriter, r *http.Request) {
	h.convertSingle(w, r, h.convertService.ImageToJPEG)
}

// MergePDF merges 2 or more uploaded PDFs into one.
func (h *ConvertHandler) MergePDF(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	uploads, err := h.uploadsFromRequest(r, "files")
	if err != nil {
		h.failWithNotice(w, r, err)
		return
	}

	result, err := h.convertService.MergePDFs(userID, uploads)
	if err != nil {
		h.failWithNotice(w, r, err)
		return
	}

	h.sendAttachment(w, r, result)
}

type convertFunc func(userID uint, upload domain.Upload) (*domain.ConversionResult, error)

func (h *ConvertHandler) convertSingle(w http.ResponseWriter, r *http.Request, convert convertFunc) {
	userID, ok := UserIDFromContext(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	upload, err := h.uploadFromRequest(r, "file")
	if err != nil {
		h.failWithNotice(w, r, err)
		return
	}

	result, err := convert(userID, upload)
	if err != nil {
		h.failWithNotice(w, r, err)
		return
	}

	h.sendAttachment(w, r, result)
}

func (h *ConvertHandler) uploadFromRequest(r *http.Request, field string) (domain.Upload, error) {
	if err := r.ParseMultipartForm(h.maxFileSize); err != nil {
		return domain.Upload{}, domain.ErrNoFileProvided
	}

	file, header, err := r.FormFile(field)
	if err != nil {
		return domain.Upload{}, domain.ErrNoFileProvided
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return domain.Upload{}, fmt.Errorf("failed to read upload: %w", err)
	}

	return domain.Upload{Filename: header.Filename, Data: data}, nil
}

func (h *ConvertHandler) uploadsFromRequest(r *http.Request, field string) ([]domain.Upload, error) {
	if err := r.ParseMultipartForm(h.maxFileSize); err != nil {
		return nil, domain.ErrNoFileProvided
	}
	if r.MultipartForm == nil || len(r.MultipartForm.File[field]) == 0 {
		return nil, domain.ErrNoFileProvided
	}

	var uploads []domain.Upload
	for _, header := range r.MultipartForm.File[field] {
		file, err := header.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open upload: %w", err)
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read upload: %w", err)
		}
		uploads = append(uploads, domain.Upload{Filename: header.Filename, Data: data})
	}
	return uploads, nil
}

func (h *ConvertHandler) sendAttachment(w http.ResponseWriter, r *http.Request, result *domain.ConversionResult) {
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	http.ServeFile(w, r, result.OutputPath)
}

// failWithNotice maps dispatcher errors onto user-visible notices and
// returns to the dashboard.
func (h *ConvertHandler) failWithNotice(w http.ResponseWriter, r *http.Request, err error) {
	var notice string
	switch {
	case errors.Is(err, domain.ErrNoFileProvided):
		notice = "No file uploaded."
	case errors.Is(err, domain.ErrInsufficientInput):
		notice = "Please select at least 2 PDF files to merge."
	case errors.Is(err, domain.ErrUnsupportedImageFormat):
		notice = "That file is not a supported image format."
	case errors.Is(err, domain.ErrConversionFailed):
		notice = "The file could not be converted. Is it valid?"
	default:
		h.logger.Error("Conversion request failed", err)
		notice = "Something went wrong. Please try again."
	}
	setFlash(w, notice)
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}
