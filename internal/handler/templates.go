package handler

import (
	"embed"
	"html/template"
	"net/http"

	"file-converter/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type pageData struct {
	Flash   string
	Message string
	History []domain.HistoryEntry
}

func renderPage(w http.ResponseWriter, name string, data pageData) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return templates.ExecuteTemplate(w, name, data)
}

// renderErrorPage writes the error page with the given status. The
// status header must go out before the template body.
func renderErrorPage(w http.ResponseWriter, status int, message string) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	return templates.ExecuteTemplate(w, "error.html", pageData{Message: message})
}
