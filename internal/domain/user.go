package domain

import (
	"time"
)

// User represents a registered account.
type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	CreatedAt    time.Time
}

// UserRepository defines the port for account persistence.
type UserRepository interface {
	// Create inserts a new user. The unique index on username is the
	// only duplicate check; a violation surfaces as ErrDuplicateUsername.
	Create(username, passwordHash string) (*User, error)
	GetByUsername(username string) (*User, error)
}

type AuthService interface {
	Register(username, password string) (*User, error)
	Authenticate(username, password string) (*User, error)
	IssueSession(userID uint) (string, error)
	ValidateSession(token string) (uint, error)
}
