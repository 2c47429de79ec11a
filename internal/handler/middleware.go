package handler

import (
	"net/http"

	"file-converter/internal/domain"
)

// AuthMiddleware guards browser-facing routes. A missing or invalid
// session redirects to the login form instead of returning an error
// payload; this is a navigational fallback, not an API rejection.
type AuthMiddleware struct {
	authService domain.AuthService
	logger      domain.Logger
}

// NewAuthMiddleware creates a new auth middleware instance
func NewAuthMiddleware(authService domain.AuthService, logger domain.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
		logger:      logger,
	}
}

// Middleware validates the session cookie and stores the user id in the
// request context.
func (m *AuthMiddleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookieName)
		if err != nil || cookie.Value == "" {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		userID, err := m.authService.ValidateSession(cookie.Value)
		if err != nil {
			m.logger.Debug("Rejected session cookie", "error", err)
			clearSessionCookie(w)
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		next.ServeHTTP(w, r.WithContext(contextWithUserID(r.Context(), userID)))
	})
}
