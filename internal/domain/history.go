package domain

// HistoryEntry records one completed conversion or merge action.
// Entries are append-only; filename is always a base name with no
// directory component.
type HistoryEntry struct {
	ID       uint   `gorm:"primaryKey"`
	UserID   uint   `gorm:"index;not null"`
	Action   string `gorm:"not null"`
	Filename string `gorm:"not null"`
}

// TableName keeps the legacy table name.
func (HistoryEntry) TableName() string {
	return "history"
}

// HistoryRepository defines the port for the history log.
type HistoryRepository interface {
	Append(entry *HistoryEntry) error
	ListForUser(userID uint) ([]HistoryEntry, error)
}

type HistoryService interface {
	// Record is best-effort: failures are logged, never returned, so a
	// logging problem can never block a conversion response.
	Record(userID uint, action, filename string)
	ListForUser(userID uint) ([]HistoryEntry, error)
}
