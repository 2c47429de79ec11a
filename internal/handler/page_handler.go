package handler

import (
	"net/http"

	"file-converter/internal/domain"
)

// PageHandler serves the static-ish pages: landing and dashboard.
type PageHandler struct {
	logger domain.Logger
}

// NewPageHandler creates a new page handler instance
func NewPageHandler(logger domain.Logger) *PageHandler {
	return &PageHandler{logger: logger}
}

// Home renders the public landing page.
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	if err := renderPage(w, "index.html", pageData{}); err != nil {
		h.logger.Error("Failed to render landing page", err)
	}
}

// Dashboard renders the conversion forms.
func (h *PageHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	if err := renderPage(w, "dashboard.html", pageData{Flash: popFlash(w, r)}); err != nil {
		h.logger.Error("Failed to render dashboard", err)
	}
}
