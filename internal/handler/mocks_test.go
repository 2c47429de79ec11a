package handler

import (
	"file-converter/internal/domain"
)

// mockAuthService implements domain.AuthService for handler tests.
type mockAuthService struct {
	registerErr error
	authErr     error
	user        *domain.User
	sessionErr  error
	validUserID uint
	validateErr error
	lastToken   string
}

func (m *mockAuthService) Register(username, password string) (*domain.User, error) {
	if m.registerErr != nil {
		return nil, m.registerErr
	}
	return m.user, nil
}

func (m *mockAuthService) Authenticate(username, password string) (*domain.User, error) {
	if m.authErr != nil {
		return nil, m.authErr
	}
	return m.user, nil
}

func (m *mockAuthService) IssueSession(userID uint) (string, error) {
	if m.sessionErr != nil {
		return "", m.sessionErr
	}
	return "token-for-" + string(rune('0'+userID)), nil
}

func (m *mockAuthService) ValidateSession(token string) (uint, error) {
	m.lastToken = token
	if m.validateErr != nil {
		return 0, m.validateErr
	}
	return m.validUserID, nil
}

// mockConvertService implements domain.ConvertService.
type mockConvertService struct {
	result *domain.ConversionResult
	err    error

	lastUserID  uint
	lastUpload  domain.Upload
	lastUploads []domain.Upload
}

func (m *mockConvertService) PDFToDocx(userID uint, upload domain.Upload) (*domain.ConversionResult, error) {
	m.lastUserID, m.lastUpload = userID, upload
	return m.result, m.err
}

func (m *mockConvertService) DocxToText(userID uint, upload domain.Upload) (*domain.ConversionResult, error) {
	m.lastUserID, m.lastUpload = userID, upload
	return m.result, m.err
}

func (m *mockConvertService) ImageToJPEG(userID uint, upload domain.Upload) (*domain.ConversionResult, error) {
	m.lastUserID, m.lastUpload = userID, upload
	return m.result, m.err
}

func (m *mockConvertService) MergePDFs(userID uint, uploads []domain.Upload) (*domain.ConversionResult, error) {
	m.lastUserID, m.lastUploads = userID, uploads
	return m.result, m.err
}

// mockHistoryService implements domain.HistoryService.
type mockHistoryService struct {
	entries []domain.HistoryEntry
	err     error
}

func (m *mockHistoryService) Record(userID uint, action, filename string) {}

func (m *mockHistoryService) ListForUser(userID uint) ([]domain.HistoryEntry, error) {
	return m.entries, m.err
}
