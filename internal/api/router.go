package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tvasilyev/rosterbook/internal/api/handler"
	apimiddleware "github.com/tvasilyev/rosterbook/internal/api/middleware"
	"github.com/tvasilyev/rosterbook/internal/middleware"
	"github.com/tvasilyev/rosterbook/internal/services/roster"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger        *slog.Logger
	RosterManager *roster.Manager
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	rosterHandler := handler.NewRosterHandler(cfg.RosterManager)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(apimiddleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))

	api.HandleFunc("/roster", rosterHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/roster/players", rosterHandler.AddPlayer).Methods(http.MethodPost)
	api.HandleFunc("/roster/players/{id}/comments", rosterHandler.AddComment).Methods(http.MethodPost)
	api.HandleFunc("/roster/players/{id}/comments/{comment_id}", rosterHandler.DeleteComment).Methods(http.MethodDelete)

	api.HandleFunc("/username", rosterHandler.GetUsername).Methods(http.MethodGet)
	api.HandleFunc("/username", rosterHandler.SetUsername).Methods(http.MethodPut)

	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
