package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/F3lipe9/campuslog/internal/models"
)

func (s *Server) handleListWater(w http.ResponseWriter, r *http.Request) {
	start, end, err := parseTimeRange(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	entries, err := s.db.ListWaterEntries(r.Context(), userIDFromContext(r), start, end)
	if err != nil {
		writeStorageError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleAddWater(w http.ResponseWriter, r *http.Request) {
	var e models.WaterEntry
	if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if e.AmountOz <= 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "amount_oz must be positive"})
		return
	}
	e.UserID = userIDFromContext(r)

	created, err := s.db.InsertWaterEntry(r.Context(), e)
	if err != nil {
		writeStorageError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleWaterSummary(w http.ResponseWriter, r *http.Request) {
	start, end, err := parseTimeRange(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	totals, err := s.db.DailyWaterTotals(r.Context(), userIDFromContext(r), start, end)
	if err != nil {
		writeStorageError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, totals)
}

func (s *Server) handleListAssignments(w http.ResponseWriter, r *http.Request) {
	includeCompleted := r.URL.Query().Get("all") == "true"
	assignments, err := s.db.ListAssignments(r.Context(), userIDFromContext(r), includeCompleted)
	if err != nil {
		writeStorageError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, assignments)
}

func (s *Server) handleCreateAssignment(w http.ResponseWriter, r *http.Request) {
	var a models.Assignment
	if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if strings.TrimSpace(a.Title) == "" || a.DueDate.IsZero() {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "title and due_date are required"})
		return
	}
	a.UserID = userIDFromContext(r)

	created, err := s.db.CreateAssignment(r.Context(), a)
	if err != nil {
		writeStorageError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleUpdateAssignment(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid assignment ID"})
		return
	}
	var a models.Assignment
	if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	a.ID = id
	a.UserID = userIDFromContext(r)

	if err := s.db.UpdateAssignment(r.Context(), a); err != nil {
		writeStorageError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (s *Server) handleDeleteAssignment(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid assignment ID"})
		return
	}
	if err := s.db.DeleteAssignment(r.Context(), id, userIDFromContext(r)); err != nil {
		writeStorageError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListExams(w http.ResponseWriter, r *http.Request) {
	exams, err := s.db.ListExams(r.Context(), userIDFromContext(r))
	if err != nil {
		writeStorageError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, exams)
}

func (s *Server) handleCreateExam(w http.ResponseWriter, r *http.Request) {
	var e models.Exam
	if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if strings.TrimSpace(e.Title) == "" || e.StartsAt.IsZero() {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "title and starts_at are required"})
		return
	}
	e.UserID = userIDFromContext(r)

	created, err := s.db.CreateExam(r.Context(), e)
	if err != nil {
		writeStorageError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleDeleteExam(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid exam ID"})
		return
	}
	if err := s.db.DeleteExam(r.Context(), id, userIDFromContext(r)); err != nil {
		writeStorageError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleUpcoming(w http.ResponseWriter, r *http.Request) {
	horizon := 14 * 24 * time.Hour
	if d := r.URL.Query().Get("days"); d != "" {
		if days, err := strconv.Atoi(d); err == nil && days > 0 {
			horizon = time.Duration(days) * 24 * time.Hour
		}
	}
	deadlines, err := s.db.UpcomingDeadlines(r.Context(), userIDFromContext(r), horizon)
	if err != nil {
		writeStorageError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, deadlines)
}

func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	var payload models.ImportPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	result, err := s.db.ImportBatch(r.Context(), userIDFromContext(r), &payload)
	if err != nil {
		s.log.Error("import error", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, result)
}
