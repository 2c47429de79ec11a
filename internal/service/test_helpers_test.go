package service

import (
	"file-converter/internal/domain"
)

// nopLogger discards everything; used across the package tests.
type nopLogger struct{}

func (nopLogger) Info(msg string, fields ...interface{})             {}
func (nopLogger) Error(msg string, err error, fields ...interface{}) {}
func (nopLogger) Debug(msg string, fields ...interface{})            {}
func (nopLogger) Warn(msg string, fields ...interface{})             {}

// recordingHistory captures Record calls for assertions.
type recordingHistory struct {
	userIDs   []uint
	actions   []string
	filenames []string
}

func (h *recordingHistory) Record(userID uint, action, filename string) {
	h.userIDs = append(h.userIDs, userID)
	h.actions = append(h.actions, action)
	h.filenames = append(h.filenames, filename)
}

func (h *recordingHistory) ListForUser(userID uint) ([]domain.HistoryEntry, error) {
	return nil, nil
}

// fakeUserRepo is a map-backed UserRepository.
type fakeUserRepo struct {
	users  map[string]*domain.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User), nextID: 1}
}

func (r *fakeUserRepo) Create(username, passwordHash string) (*domain.User, error) {
	if _, exists := r.users[username]; exists {
		return nil, domain.ErrDuplicateUsername
	}
	user := &domain.User{ID: r.nextID, Username: username, PasswordHash: passwordHash}
	r.nextID++
	r.users[username] = user
	return user, nil
}

func (r *fakeUserRepo) GetByUsername(username string) (*domain.User, error) {
	user, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}
