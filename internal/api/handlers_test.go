package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"example.com/workouts/internal/domain"
	"example.com/workouts/internal/persistence/memory"
)

func newTestHandler() (*Handler, *memory.Repository) {
	repo := memory.NewRepository()
	service := domain.NewService(repo)
	return NewHandler(service), repo
}

func seedWorkout(t *testing.T, repo *memory.Repository, title string, reps, load int, createdAt time.Time) domain.Workout {
	t.Helper()
	workout := domain.Workout{
		ID:        fmt.Sprintf("a2b7e0cc-0000-4000-8000-%012d", createdAt.UnixNano()%1_000_000_000_000),
		Title:     title,
		Reps:      reps,
		Load:      load,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	if err := repo.Create(context.Background(), workout); err != nil {
		t.Fatalf("seed create failed: %v", err)
	}
	return workout
}

func TestCreateWorkoutReturnsRecord(t *testing.T) {
	handler, _ := newTestHandler()

	body := strings.NewReader(`{"title":"Push ups","reps":40,"load":5}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/workouts", body)
	rr := httptest.NewRecorder()
	handler.workouts(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", rr.Code, rr.Body.String())
	}

	var view WorkoutView
	if err := json.Unmarshal(rr.Body.Bytes(), &view); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if view.Title != "Push ups" || view.Reps != 40 || view.Load != 5 {
		t.Fatalf("unexpected record %+v", view)
	}
	if view.WorkoutID == "" {
		t.Fatal("expected an assigned workout id")
	}
	if view.CreatedAt.IsZero() {
		t.Fatal("expected an assigned creation timestamp")
	}
}

func TestCreateWorkoutMissingFieldFails(t *testing.T) {
	handler, _ := newTestHandler()

	body := strings.NewReader(`{"title":"Push ups","reps":40}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/workouts", body)
	rr := httptest.NewRecorder()
	handler.workouts(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "load is required") {
		t.Fatalf("expected underlying message in body, got %s", rr.Body.String())
	}
}

func TestGetWorkoutMalformedIDIsNotFound(t *testing.T) {
	handler, _ := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/v1/workouts/not-a-uuid", nil)
	rr := httptest.NewRecorder()
	handler.workoutByID(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rr.Code)
	}
}

func TestGetWorkoutAbsentIDIsNotFound(t *testing.T) {
	handler, _ := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/v1/workouts/7f6a1f6e-8f1c-4a8e-9a27-0f3a3f1b2c4d", nil)
	rr := httptest.NewRecorder()
	handler.workoutByID(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rr.Code)
	}
}

func TestDeleteWorkoutMalformedIDIsBadRequest(t *testing.T) {
	handler, _ := newTestHandler()

	req := httptest.NewRequest(http.MethodDelete, "/v1/workouts/not-a-uuid", nil)
	rr := httptest.NewRecorder()
	handler.workoutByID(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rr.Code)
	}
}

func TestUpdateWorkoutAbsentIDIsBadRequest(t *testing.T) {
	handler, _ := newTestHandler()

	body := strings.NewReader(`{"reps":12}`)
	req := httptest.NewRequest(http.MethodPatch, "/v1/workouts/7f6a1f6e-8f1c-4a8e-9a27-0f3a3f1b2c4d", body)
	rr := httptest.NewRecorder()
	handler.workoutByID(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rr.Code)
	}
}

func TestDeleteThenGetIsNotFound(t *testing.T) {
	handler, repo := newTestHandler()
	now := time.Now().UTC()
	workout := seedWorkout(t, repo, "Bench press", 10, 60, now)

	req := httptest.NewRequest(http.MethodDelete, "/v1/workouts/"+workout.ID, nil)
	rr := httptest.NewRecorder()
	handler.workoutByID(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected 204 got %d", rr.Code)
	}

	var deleted WorkoutView
	if err := json.Unmarshal(rr.Body.Bytes(), &deleted); err != nil {
		t.Fatalf("failed to decode deleted record: %v", err)
	}
	if deleted.WorkoutID != workout.ID {
		t.Fatalf("expected deleted record %s in body, got %s", workout.ID, deleted.WorkoutID)
	}

	req = httptest.NewRequest(http.MethodGet, "/v1/workouts/"+workout.ID, nil)
	rr = httptest.NewRecorder()
	handler.workoutByID(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", rr.Code)
	}
}

func TestUpdateWorkoutPartialKeepsOmittedFields(t *testing.T) {
	handler, repo := newTestHandler()
	now := time.Now().UTC()
	workout := seedWorkout(t, repo, "Squats", 20, 80, now)

	body := strings.NewReader(`{"reps":25}`)
	req := httptest.NewRequest(http.MethodPatch, "/v1/workouts/"+workout.ID, body)
	rr := httptest.NewRecorder()
	handler.workoutByID(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rr.Code, rr.Body.String())
	}

	var view WorkoutView
	if err := json.Unmarshal(rr.Body.Bytes(), &view); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if view.Reps != 25 {
		t.Fatalf("expected reps 25 got %d", view.Reps)
	}
	if view.Title != "Squats" || view.Load != 80 {
		t.Fatalf("omitted fields changed: %+v", view)
	}
}

func TestListWorkoutsNewestFirst(t *testing.T) {
	handler, repo := newTestHandler()
	base := time.Date(2025, time.November, 3, 18, 0, 0, 0, time.UTC)
	oldest := seedWorkout(t, repo, "Row", 15, 40, base)
	middle := seedWorkout(t, repo, "Curl", 12, 15, base.Add(time.Minute))
	newest := seedWorkout(t, repo, "Press", 8, 50, base.Add(2*time.Minute))

	req := httptest.NewRequest(http.MethodGet, "/v1/workouts", nil)
	rr := httptest.NewRecorder()
	handler.workouts(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rr.Code)
	}

	var items []WorkoutView
	if err := json.Unmarshal(rr.Body.Bytes(), &items); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 items got %d", len(items))
	}
	if items[0].WorkoutID != newest.ID || items[1].WorkoutID != middle.ID || items[2].WorkoutID != oldest.ID {
		t.Fatalf("unexpected order: %s, %s, %s", items[0].WorkoutID, items[1].WorkoutID, items[2].WorkoutID)
	}
}

func TestListWorkoutsEmptyIsArray(t *testing.T) {
	handler, _ := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/v1/workouts", nil)
	rr := httptest.NewRecorder()
	handler.workouts(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rr.Code)
	}
	if strings.TrimSpace(rr.Body.String()) != "[]" {
		t.Fatalf("expected empty array body, got %s", rr.Body.String())
	}
}
