// Package api exposes HTTP handlers for the workout service.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"example.com/workouts/internal/domain"
)

// Handler coordinates HTTP requests with the domain service.
type Handler struct {
	service *domain.Service
}

// NewHandler builds a Handler.
func NewHandler(service *domain.Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires endpoints to the mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/v1/workouts", h.workouts)
	mux.HandleFunc("/v1/workouts/", h.workoutByID)
	mux.HandleFunc("/healthz", healthz)
}

// healthz reports a simple OK status for container health checks.
func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) workouts(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.createWorkout(w, r)
	case http.MethodGet:
		h.listWorkouts(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
	}
}

func (h *Handler) workoutByID(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/v1/workouts/")
	if id == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "missing workout id")
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.getWorkout(w, r, id)
	case http.MethodDelete:
		h.deleteWorkout(w, r, id)
	case http.MethodPatch:
		h.updateWorkout(w, r, id)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
	}
}

func (h *Handler) listWorkouts(w http.ResponseWriter, r *http.Request) {
	workouts, err := h.service.ListWorkouts(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	items := make([]WorkoutView, 0, len(workouts))
	for _, workout := range workouts {
		items = append(items, toWorkoutView(workout))
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) getWorkout(w http.ResponseWriter, r *http.Request, id string) {
	workout, err := h.service.GetWorkout(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrWorkoutNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "no such workout")
			return
		}
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, toWorkoutView(*workout))
}

func (h *Handler) createWorkout(w http.ResponseWriter, r *http.Request) {
	var req CreateWorkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "unable to parse body")
		return
	}

	workout, err := h.service.CreateWorkout(r.Context(), domain.CreateWorkoutInput{
		Title: req.Title,
		Reps:  req.Reps,
		Load:  req.Load,
	})
	if err != nil {
		// Any create failure, validation included, surfaces the underlying
		// message with a 400.
		writeError(w, http.StatusBadRequest, "create_failed", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, toWorkoutView(*workout))
}

func (h *Handler) deleteWorkout(w http.ResponseWriter, r *http.Request, id string) {
	workout, err := h.service.DeleteWorkout(r.Context(), id)
	if err != nil {
		// Unlike get, a missing or malformed id is reported as 400 here.
		if errors.Is(err, domain.ErrWorkoutNotFound) {
			writeError(w, http.StatusBadRequest, "not_found", "no such workout")
			return
		}
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	writeJSON(w, http.StatusNoContent, toWorkoutView(*workout))
}

func (h *Handler) updateWorkout(w http.ResponseWriter, r *http.Request, id string) {
	var req UpdateWorkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "unable to parse body")
		return
	}

	workout, err := h.service.UpdateWorkout(r.Context(), id, domain.WorkoutPatch{
		Title: req.Title,
		Reps:  req.Reps,
		Load:  req.Load,
	})
	if err != nil {
		if errors.Is(err, domain.ErrWorkoutNotFound) {
			writeError(w, http.StatusBadRequest, "not_found", "no such workout")
			return
		}
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, toWorkoutView(*workout))
}

// CreateWorkoutRequest is the payload for POST /v1/workouts. Reps and Load
// are pointers so a missing field is distinguishable from zero.
type CreateWorkoutRequest struct {
	Title string `json:"title"`
	Reps  *int   `json:"reps"`
	Load  *int   `json:"load"`
}

// UpdateWorkoutRequest is the payload for PATCH /v1/workouts/{id}. Every
// field is optional; omitted fields keep their stored values.
type UpdateWorkoutRequest struct {
	Title *string `json:"title"`
	Reps  *int    `json:"reps"`
	Load  *int    `json:"load"`
}

// WorkoutView exposes full details about a workout.
type WorkoutView struct {
	WorkoutID string    `json:"workout_id"`
	Title     string    `json:"title"`
	Reps      int       `json:"reps"`
	Load      int       `json:"load"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func writeError(w http.ResponseWriter, status int, code, detail string) {
	payload := map[string]string{
		"type":   code,
		"detail": detail,
	}
	writeJSON(w, status, payload)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func toWorkoutView(workout domain.Workout) WorkoutView {
	return WorkoutView{
		WorkoutID: workout.ID,
		Title:     workout.Title,
		Reps:      workout.Reps,
		Load:      workout.Load,
		CreatedAt: workout.CreatedAt,
		UpdatedAt: workout.UpdatedAt,
	}
}
