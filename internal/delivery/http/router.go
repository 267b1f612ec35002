package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"studiosessions/internal/delivery/http/controllers"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(sessionController *controllers.SessionController) *http.ServeMux {
	mux := http.NewServeMux()

	// API Routes
	mux.HandleFunc("GET /active-session", sessionController.ActiveSession)
	mux.HandleFunc("POST /extend-session", sessionController.ExtendSession)
	mux.HandleFunc("GET /test-calendar", sessionController.TestCalendar)
	mux.HandleFunc("GET /healthz", sessionController.Healthz)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
