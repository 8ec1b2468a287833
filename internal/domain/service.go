// Package domain defines the business logic for the workout service.
package domain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"example.com/workouts/internal/observability"
)

// ErrWorkoutNotFound is returned when a workout cannot be located, including
// when the supplied identifier is not a valid workout id at all.
var ErrWorkoutNotFound = errors.New("workout not found")

// WorkoutRepository captures persistence operations.
type WorkoutRepository interface {
	// List returns every workout ordered by creation time, newest first.
	List(ctx context.Context) ([]Workout, error)
	Get(ctx context.Context, id string) (*Workout, error)
	Create(ctx context.Context, workout Workout) error
	// Delete removes the workout and returns the record as it was stored.
	Delete(ctx context.Context, id string) (*Workout, error)
	// Update merges the patch into the stored record and returns the result.
	Update(ctx context.Context, id string, patch WorkoutPatch) (*Workout, error)
}

// Service orchestrates workout CRUD.
type Service struct {
	repo WorkoutRepository
}

// NewService constructs a Service.
func NewService(repo WorkoutRepository) *Service {
	return &Service{repo: repo}
}

// CreateWorkoutInput captures the payload from the API layer. Reps and Load
// are pointers so that absent fields can be told apart from zero values.
type CreateWorkoutInput struct {
	Title string
	Reps  *int
	Load  *int
}

// ListWorkouts fetches all workouts, newest first.
func (s *Service) ListWorkouts(ctx context.Context) ([]Workout, error) {
	return s.repo.List(ctx)
}

// GetWorkout fetches by ID. A malformed id short-circuits to not-found
// without touching the store.
func (s *Service) GetWorkout(ctx context.Context, id string) (*Workout, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrWorkoutNotFound
	}
	return s.repo.Get(ctx, id)
}

// CreateWorkout validates required fields, assigns id and timestamps, and
// persists the record.
func (s *Service) CreateWorkout(ctx context.Context, input CreateWorkoutInput) (*Workout, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("workout validation failed: title is required")
	}
	if input.Reps == nil {
		return nil, fmt.Errorf("workout validation failed: reps is required")
	}
	if input.Load == nil {
		return nil, fmt.Errorf("workout validation failed: load is required")
	}

	now := time.Now().UTC()
	workout := Workout{
		ID:        uuid.NewString(),
		Title:     input.Title,
		Reps:      *input.Reps,
		Load:      *input.Load,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, workout); err != nil {
		return nil, err
	}

	observability.RecordWorkoutPersisted(workout.CreatedAt)
	return &workout, nil
}

// DeleteWorkout removes a workout and returns the deleted record.
func (s *Service) DeleteWorkout(ctx context.Context, id string) (*Workout, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrWorkoutNotFound
	}

	workout, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	observability.RecordWorkoutDeleted()
	return workout, nil
}

// UpdateWorkout merges the provided fields into an existing workout.
func (s *Service) UpdateWorkout(ctx context.Context, id string, patch WorkoutPatch) (*Workout, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrWorkoutNotFound
	}
	return s.repo.Update(ctx, id, patch)
}
