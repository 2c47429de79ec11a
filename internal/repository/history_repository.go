package repository

import (
	"fmt"

	"gorm.io/gorm"

	"file-converter/internal/domain"
)

// HistoryRepository persists the append-only conversion log.
type HistoryRepository struct {
	db *gorm.DB
}

// NewHistoryRepository creates a new history repository instance
func NewHistoryRepository(db *gorm.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// Append adds one entry to the log.
func (r *HistoryRepository) Append(entry *domain.HistoryEntry) error {
	if err := r.db.Create(entry).Error; err != nil {
		return fmt.Errorf("failed to append history entry: %w", err)
	}
	return nil
}

// ListForUser returns the user's entries in insertion order.
func (r *HistoryRepository) ListForUser(userID uint) ([]domain.HistoryEntry, error) {
	entries := []domain.HistoryEntry{}
	if err := r.db.Where("user_id = ?", userID).Order("id ASC").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	return entries, nil
}
