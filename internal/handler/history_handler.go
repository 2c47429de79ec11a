package handler

import (
	"net/http"

	"file-converter/internal/domain"
	apperrors "file-converter/pkg/errors"
)

// HistoryHandler lists the caller's past conversions.
type HistoryHandler struct {
	historyService domain.HistoryService
	logger         domain.Logger
}

// NewHistoryHandler creates a new history handler instance
func NewHistoryHandler(historyService domain.HistoryService, logger domain.Logger) *HistoryHandler {
	return &HistoryHandler{
		historyService: historyService,
		logger:         logger,
	}
}

// History renders the caller's conversion log, oldest first.
func (h *HistoryHandler) History(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	entries, err := h.historyService.ListForUser(userID)
	if err != nil {
		appErr := apperrors.NewInternalError("failed to load history", err)
		h.logger.Error("Failed to list history", appErr, "user_id", userID)
		if rerr := renderErrorPage(w, apperrors.GetStatusCode(appErr), "We couldn't load your history. Please try again."); rerr != nil {
			h.logger.Error("Failed to render error page", rerr)
		}
		return
	}

	if err := renderPage(w, "history.html", pageData{Flash: popFlash(w, r), History: entries}); err != nil {
		h.logger.Error("Failed to render history page", err)
	}
}
