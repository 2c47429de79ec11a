package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"file-converter/internal/domain"
)

func multipartRequest(t *testing.T, path, field string, files map[string][]byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for name, data := range files {
		part, err := writer.CreateFormFile(field, name)
		if err != nil {
			t.Fatalf("failed to create form file: %v", err)
		}
		if _, err := part.Write(data); err != nil {
			t.Fatalf("failed to write form file: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close writer: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func authenticated(r *http.Request, userID uint) *http.Request {
	return r.WithContext(contextWithUserID(r.Context(), userID))
}

func testResult(t *testing.T, filename, content string) *domain.ConversionResult {
	t.Helper()
	path := filepath.Join(t.TempDir(), filename)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write result fixture: %v", err)
	}
	return &domain.ConversionResult{OutputPath: path, Filename: filename}
}

func TestConvertHandler_PDFToDoc_StreamsAttachment(t *testing.T) {
	convertService := &mockConvertService{result: testResult(t, "report.docx", "docx-bytes")}
	h := NewConvertHandler(convertService, 1<<20, NewMockHandlerLogger())

	req := authenticated(multipartRequest(t, "/convert/pdf-to-doc", "file", map[string][]byte{"report.pdf": []byte("%PDF")}), 5)
	rr := httptest.NewRecorder()

	h.PDFToDoc(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if cd := rr.Header().Get("Content-Disposition"); !strings.Contains(cd, `attachment; filename="report.docx"`) {
		t.Fatalf("unexpected Content-Disposition: %q", cd)
	}
	if rr.Body.String() != "docx-bytes" {
		t.Fatalf("unexpected body: %q", rr.Body.String())
	}
	if convertService.lastUserID != 5 {
		t.Fatalf("expected user id 5, got %d", convertService.lastUserID)
	}
	if convertService.lastUpload.Filename != "report.pdf" {
		t.Fatalf("expected upload report.pdf, got %q", convertService.lastUpload.Filename)
	}
}

func TestConvertHandler_NoFile_NoticeAndRedirect(t *testing.T) {
	convertService := &mockConvertService{}
	h := NewConvertHandler(convertService, 1<<20, NewMockHandlerLogger())

	req := authenticated(httptest.NewRequest(http.MethodPost, "/convert/pdf-to-doc", nil), 5)
	rr := httptest.NewRecorder()

	h.PDFToDoc(rr, req)

	if rr.Code != http.StatusSeeOther {
		t.Fatalf("expected status %d, got %d", http.StatusSeeOther, rr.Code)
	}
	if loc := rr.Header().Get("Location"); loc != "/dashboard" {
		t.Fatalf("expected redirect to /dashboard, got %q", loc)
	}
	flash := findCookie(rr, flashCookieName)
	if flash == nil {
		t.Fatalf("expected a flash notice")
	}
	message, _ := url.QueryUnescape(flash.Value)
	if !strings.Contains(message, "No file uploaded") {
		t.Fatalf("unexpected notice: %q", message)
	}
}

func TestConvertHandler_ConversionFault_NoticeNotFaultPage(t *testing.T) {
	convertService := &mockConvertService{err: domain.ErrConversionFailed}
	h := NewConvertHandler(convertService, 1<<20, NewMockHandlerLogger())

	req := authenticated(multipartRequest(t, "/convert/doc-to-txt", "file", map[string][]byte{"broken.docx": []byte("junk")}), 5)
	rr := httptest.NewRecorder()

	h.DocToTxt(rr, req)

	if rr.Code != http.StatusSeeOther {
		t.Fatalf("expected redirect, got %d", rr.Code)
	}
	if loc := rr.Header().Get("Location"); loc != "/dashboard" {
		t.Fatalf("expected redirect to /dashboard, got %q", loc)
	}
}

func TestConvertHandler_MergePDF_PassesAllUploads(t *testing.T) {
	convertService := &mockConvertService{result: testResult(t, "merged-abc.pdf", "merged")}
	h := NewConvertHandler(convertService, 1<<20, NewMockHandlerLogger())

	req := authenticated(multipartRequest(t, "/merge/pdf", "files", map[string][]byte{
		"a.pdf":     []byte("%PDF-a"),
		"b.pdf":     []byte("%PDF-b"),
		"notes.txt": []byte("text"),
	}), 7)
	rr := httptest.NewRecorder()

	h.MergePDF(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	// Filtering is the dispatcher's job; the handler forwards everything.
	if len(convertService.lastUploads) != 3 {
		t.Fatalf("expected 3 uploads forwarded, got %d", len(convertService.lastUploads))
	}
}

func TestConvertHandler_MergePDF_InsufficientInput(t *testing.T) {
	convertService := &mockConvertService{err: domain.ErrInsufficientInput}
	h := NewConvertHandler(convertService, 1<<20, NewMockHandlerLogger())

	req := authenticated(multipartRequest(t, "/merge/pdf", "files", map[string][]byte{"only.pdf": []byte("%PDF")}), 7)
	rr := httptest.NewRecorder()

	h.MergePDF(rr, req)

	if loc := rr.Header().Get("Location"); loc != "/dashboard" {
		t.Fatalf("expected redirect to /dashboard, got %q", loc)
	}
	flash := findCookie(rr, flashCookieName)
	if flash == nil {
		t.Fatalf("expected a flash notice")
	}
	message, _ := url.QueryUnescape(flash.Value)
	if !strings.Contains(message, "at least 2 PDF files") {
		t.Fatalf("unexpected notice: %q", message)
	}
}
