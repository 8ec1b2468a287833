// Package memory provides an in-memory workout repository for tests and
// dependency-free local runs.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"example.com/workouts/internal/domain"
)

// Repository implements domain.WorkoutRepository using in-memory storage.
type Repository struct {
	workouts map[string]domain.Workout
	mu       sync.RWMutex
}

var _ domain.WorkoutRepository = (*Repository)(nil)

// NewRepository creates an empty in-memory workout repository.
func NewRepository() *Repository {
	return &Repository{
		workouts: make(map[string]domain.Workout),
	}
}

// List returns every workout ordered by creation time, newest first.
func (r *Repository) List(ctx context.Context) ([]domain.Workout, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Workout, 0, len(r.workouts))
	for _, w := range r.workouts {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Get fetches a workout by id.
func (r *Repository) Get(ctx context.Context, id string) (*domain.Workout, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	workout, exists := r.workouts[id]
	if !exists {
		return nil, domain.ErrWorkoutNotFound
	}
	return &workout, nil
}

// Create stores a new workout.
func (r *Repository) Create(ctx context.Context, workout domain.Workout) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.workouts[workout.ID] = workout
	return nil
}

// Delete removes a workout and returns the deleted record.
func (r *Repository) Delete(ctx context.Context, id string) (*domain.Workout, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	workout, exists := r.workouts[id]
	if !exists {
		return nil, domain.ErrWorkoutNotFound
	}
	delete(r.workouts, id)
	return &workout, nil
}

// Update merges the patch into the stored record and returns the result.
func (r *Repository) Update(ctx context.Context, id string, patch domain.WorkoutPatch) (*domain.Workout, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	workout, exists := r.workouts[id]
	if !exists {
		return nil, domain.ErrWorkoutNotFound
	}

	if patch.Title != nil {
		workout.Title = *patch.Title
	}
	if patch.Reps != nil {
		workout.Reps = *patch.Reps
	}
	if patch.Load != nil {
		workout.Load = *patch.Load
	}
	workout.UpdatedAt = time.Now().UTC()

	r.workouts[id] = workout
	return &workout, nil
}
