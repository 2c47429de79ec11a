package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"file-converter/internal/domain"
)

type sessionClaims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}

// AuthService handles registration, credential checks and session tokens.
type AuthService struct {
	users      domain.UserRepository
	secret     []byte
	sessionTTL time.Duration
	logger     domain.Logger
}

// NewAuthService creates a new auth service instance
func NewAuthService(users domain.UserRepository, secret []byte, sessionTTL time.Duration, logger domain.Logger) *AuthService {
	return &AuthService{
		users:      users,
		secret:     secret,
		sessionTTL: sessionTTL,
		logger:     logger,
	}
}

// Register creates a new account. The password is stored only as a
// bcrypt hash. Duplicate usernames surface as ErrDuplicateUsername.
func (s *AuthService) Register(username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, &domain.ValidationError{Message: "username and password are required"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.users.Create(username, string(hash))
	if err != nil {
		return nil, err
	}

	s.logger.Info("User registered", "user_id", user.ID)
	return user, nil
}

// Authenticate checks credentials. Unknown users and wrong passwords
// both return ErrInvalidCredentials so the response does not reveal
// which usernames exist.
func (s *AuthService) Authenticate(username, password string) (*domain.User, error) {
	user, err := s.users.GetByUsername(username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return user, nil
}

// IssueSession mints a signed session token for the user.
func (s *AuthService) IssueSession(userID uint) (string, error) {
	claims := &sessionClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.sessionTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// ValidateSession parses a session token and returns the user id.
func (s *AuthService) ValidateSession(tokenStr string) (uint, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, domain.ErrInvalidSession
	}
	return claims.UserID, nil
}
