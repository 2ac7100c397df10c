package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/F3lipe9/campuslog/internal/storage"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	db     *storage.DB
	log    *slog.Logger
	apiKey string
	router chi.Router
}

// New creates a new Server with all routes configured.
func New(db *storage.DB, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		db:     db,
		log:    log,
		apiKey: apiKey,
		router: chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	s.router.Get("/healthz", s.handleHealthz)

	// Account endpoints (no identity needed — they establish it)
	s.router.Post("/api/v1/auth/register", s.handleRegister)
	s.router.Post("/api/v1/auth/login", s.handleLogin)

	// Batch import from the offline sync CLI (API key required)
	s.router.Route("/api/v1/import", func(r chi.Router) {
		r.Use(APIKeyAuth(s.apiKey))
		r.Use(s.Identity)
		r.Post("/", s.handleImport)
	})

	// App endpoints, scoped by the X-User identity header
	s.router.Group(func(r chi.Router) {
		r.Use(s.Identity)

		r.Get("/api/v1/exercises", s.handleListExercises)
		r.Post("/api/v1/exercises", s.handleCreateExercise)
		r.Get("/api/v1/exercises/{id}", s.handleGetExercise)
		r.Put("/api/v1/exercises/{id}", s.handleUpdateExercise)
		r.Delete("/api/v1/exercises/{id}", s.handleDeleteExercise)
		r.Get("/api/v1/exercises/{id}/history", s.handleExerciseHistory)
		r.Get("/api/v1/exercises/{id}/suggestion", s.handleExerciseSuggestion)

		r.Get("/api/v1/sessions", s.handleListSessions)
		r.Post("/api/v1/sessions", s.handleCreateSession)
		r.Get("/api/v1/sessions/{id}", s.handleGetSession)
		r.Post("/api/v1/sessions/{id}/end", s.handleEndSession)
		r.Post("/api/v1/sessions/{id}/sets", s.handleAddSet)
		r.Delete("/api/v1/sessions/{id}/sets/{setID}", s.handleDeleteSet)

		r.Get("/api/v1/water", s.handleListWater)
		r.Post("/api/v1/water", s.handleAddWater)
		r.Get("/api/v1/water/summary", s.handleWaterSummary)

		r.Get("/api/v1/assignments", s.handleListAssignments)
		r.Post("/api/v1/assignments", s.handleCreateAssignment)
		r.Put("/api/v1/assignments/{id}", s.handleUpdateAssignment)
		r.Delete("/api/v1/assignments/{id}", s.handleDeleteAssignment)

		r.Get("/api/v1/exams", s.handleListExams)
		r.Post("/api/v1/exams", s.handleCreateExam)
		r.Delete("/api/v1/exams/{id}", s.handleDeleteExam)

		r.Get("/api/v1/planner/upcoming", s.handleUpcoming)

		r.Get("/api/v1/habits", s.handleListHabits)
		r.Post("/api/v1/habits", s.handleCreateHabit)
		r.Delete("/api/v1/habits/{id}", s.handleDeleteHabit)
	})
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
