package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"trainingdash/internal/delivery/http/controllers"
	"trainingdash/internal/delivery/http/middleware"
	"trainingdash/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes.
func NewRouter(eventController *controllers.EventController, exportController *controllers.ExportController, authController *controllers.AuthController, verifier domain.TokenVerifier) *http.ServeMux {
	mux := http.NewServeMux()
	requireAuth := middleware.RequireAuth(verifier)

	// Events and rosters
	mux.HandleFunc("GET /events", requireAuth(eventController.ListEvents))
	mux.HandleFunc("GET /events/export", requireAuth(exportController.ExportEvents))
	mux.HandleFunc("GET /events/{eventID}", requireAuth(eventController.GetEvent))
	mux.HandleFunc("GET /events/{eventID}/roster", requireAuth(eventController.GetRoster))

	// Exports
	mux.HandleFunc("GET /events/{eventID}/export", requireAuth(exportController.ExportRoster))
	mux.HandleFunc("POST /events/{eventID}/export/email", requireAuth(exportController.EmailRoster))

	// Auth
	mux.HandleFunc("GET /auth/login", authController.Login)
	mux.HandleFunc("GET /auth/callback", authController.Callback)
	mux.HandleFunc("GET /auth/me", requireAuth(authController.Me))
	mux.HandleFunc("POST /auth/logout", authController.Logout)

	// Health
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
