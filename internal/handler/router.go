package handler

import (
	"net/http"

	"file-converter/internal/config"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(container *config.Container) http.Handler {
	router := mux.NewRouter()

	// Health check endpoint (no auth required)
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"file-converter"}`))
	}).Methods("GET")

	// Initialize handlers
	pageHandler := NewPageHandler(container.Logger)
	authHandler := NewAuthHandler(container.AuthService, container.Config.GetSessionTTL(), container.Logger)
	convertHandler := NewConvertHandler(container.ConvertService, container.Config.GetMaxFileSize(), container.Logger)
	historyHandler := NewHistoryHandler(container.HistoryService, container.Logger)

	// Public routes
	router.HandleFunc("/", pageHandler.Home).Methods("GET")
	router.HandleFunc("/login", authHandler.ShowLogin).Methods("GET")
	router.HandleFunc("/login", authHandler.Login).Methods("POST")
	router.HandleFunc("/register", authHandler.ShowRegister).Methods("GET")
	router.HandleFunc("/register", authHandler.Register).Methods("POST")
	router.HandleFunc("/logout", authHandler.Logout).Methods("GET")

	// Protected routes (require an active session)
	authMiddleware := NewAuthMiddleware(container.AuthService, container.Logger)
	protected := router.NewRoute().Subrouter()
	protected.Use(authMiddleware.Middleware)

	protected.HandleFunc("/dashboard", pageHandler.Dashboard).Methods("GET")
	protected.HandleFunc("/convert/pdf-to-doc", convertHandler.PDFToDoc).Methods("POST")
	protected.HandleFunc("/convert/doc-to-txt", convertHandler.DocToTxt).Methods("POST")
	protected.HandleFunc("/convert/img-to-jpg", convertHandler.ImgToJpg).Methods("POST")
	protected.HandleFunc("/merge/pdf", convertHandler.MergePDF).Methods("POST")
	protected.HandleFunc("/history", historyHandler.History).Methods("GET")

	// Configure CORS
	c := cors.New(cors.Options{
		AllowedOrigins: []string{
			"http://localhost:8080",
			"http://localhost:3000",
		},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
		},
		AllowCredentials: true,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	})

	return c.Handler(router)
}
