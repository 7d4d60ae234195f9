package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"deepmirror/internal/cache"
	"deepmirror/internal/repository"
	"deepmirror/internal/service"
	"deepmirror/internal/transport/rest/handler"
)

// Container holds all dependencies for the router.
type Container struct {
	SessionRepo     repository.SessionRepo
	MetricsCache    cache.MetricsCache
	AnalysisService *service.AnalysisService
}

// NewRouter creates the API router with all endpoints.
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	sessionHandler := handler.NewSessionHandler(c.SessionRepo, c.MetricsCache)
	analysisHandler := handler.NewAnalysisHandler(c.AnalysisService)

	r.Use(corsMiddleware)

	v1 := r.PathPrefix("/v1").Subrouter()

	v1.HandleFunc("/questions", sessionHandler.Questions).Methods("GET", "OPTIONS")
	v1.HandleFunc("/sessions", sessionHandler.Create).Methods("POST", "OPTIONS")
	v1.HandleFunc("/sessions/{id}", sessionHandler.Get).Methods("GET", "OPTIONS")
	v1.HandleFunc("/sessions/{id}/answers", sessionHandler.SubmitAnswers).Methods("PUT", "OPTIONS")
	v1.HandleFunc("/sessions/{id}/profile", sessionHandler.UpdateProfile).Methods("PUT", "OPTIONS")

	v1.HandleFunc("/sessions/{id}/metrics", analysisHandler.GetMetrics).Methods("GET", "OPTIONS")
	v1.HandleFunc("/sessions/{id}/analysis", analysisHandler.GetOrCreateAnalysis).Methods("POST", "OPTIONS")
	v1.HandleFunc("/sessions/{id}/analysis", analysisHandler.InvalidateAnalysis).Methods("DELETE", "OPTIONS")
	v1.HandleFunc("/sessions/{id}/ai-logs", analysisHandler.ListLogs).Methods("GET", "OPTIONS")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
