package domain

import "time"

// Workout represents the canonical workout record stored in DynamoDB.
type Workout struct {
	ID        string
	Title     string
	Reps      int
	Load      int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// WorkoutPatch carries a partial update. Nil fields are left untouched.
type WorkoutPatch struct {
	Title *string
	Reps  *int
	Load  *int
}

// IsEmpty reports whether the patch carries no changes.
func (p WorkoutPatch) IsEmpty() bool {
	return p.Title == nil && p.Reps == nil && p.Load == nil
}
