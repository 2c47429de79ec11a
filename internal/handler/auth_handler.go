package handler

import (
	"errors"
	"net/http"
	"time"

	"file-converter/internal/domain"
)

// AuthHandler serves the login and registration forms.
type AuthHandler struct {
	authService domain.AuthService
	sessionTTL  time.Duration
	logger      domain.Logger
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(authService domain.AuthService, sessionTTL time.Duration, logger domain.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		sessionTTL:  sessionTTL,
		logger:      logger,
	}
}

// ShowLogin renders the login form.
func (h *AuthHandler) ShowLogin(w http.ResponseWriter, r *http.Request) {
	if err := renderPage(w, "login.html", pageData{Flash: popFlash(w, r)}); err != nil {
		h.logger.Error("Failed to render login page", err)
	}
}

// Login checks credentials and establishes a session. Failures
// redisplay the form with a notice, never an error payload.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	user, err := h.authService.Authenticate(username, password)
	if err != nil {
		if !errors.Is(err, domain.ErrInvalidCredentials) {
			h.logger.Error("Login failed", err)
		}
		setFlash(w, "Invalid username or password.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	token, err := h.authService.IssueSession(user.ID)
	if err != nil {
		h.logger.Error("Failed to issue session", err, "user_id", user.ID)
		setFlash(w, "Something went wrong. Please try again.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	setSessionCookie(w, token, h.sessionTTL)
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// ShowRegister renders the registration form.
func (h *AuthHandler) ShowRegister(w http.ResponseWriter, r *http.Request) {
	if err := renderPage(w, "register.html", pageData{Flash: popFlash(w, r)}); err != nil {
		h.logger.Error("Failed to render register page", err)
	}
}

// Register creates an account and sends the user to the login form.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	if _, err := h.authService.Register(username, password); err != nil {
		var validationErr *domain.ValidationError
		switch {
		case errors.Is(err, domain.ErrDuplicateUsername):
			setFlash(w, "Username already exists. Please choose another.")
		case errors.As(err, &validationErr):
			setFlash(w, validationErr.Message+".")
		default:
			h.logger.Error("Registration failed", err)
			setFlash(w, "Something went wrong. Please try again.")
		}
		http.Redirect(w, r, "/register", http.StatusSeeOther)
		return
	}

	setFlash(w, "Registration successful! Please log in.")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// Logout clears the session and returns to the login form.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	clearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
