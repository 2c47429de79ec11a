package service

import (
	"path/filepath"

	"file-converter/internal/domain"
)

// HistoryService records completed actions and lists them per user.
type HistoryService struct {
	repo   domain.HistoryRepository
	logger domain.Logger
}

// NewHistoryService creates a new history service instance
func NewHistoryService(repo domain.HistoryRepository, logger domain.Logger) *HistoryService {
	return &HistoryService{repo: repo, logger: logger}
}

// Record appends one entry. It is best-effort: a failed write is logged
// and swallowed so it can never block the conversion response. Only the
// base name of the artifact is stored.
func (s *HistoryService) Record(userID uint, action, filename string) {
	if userID == 0 {
		return
	}
	entry := &domain.HistoryEntry{
		UserID:   userID,
		Action:   action,
		Filename: filepath.Base(filename),
	}
	if err := s.repo.Append(entry); err != nil {
		s.logger.Error("Failed to record history entry", err, "user_id", userID, "action", action)
	}
}

// ListForUser returns the user's past actions in insertion order.
func (s *HistoryService) ListForUser(userID uint) ([]domain.HistoryEntry, error) {
	return s.repo.ListForUser(userID)
}
