package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	workoutPersistGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "workout_service",
		Subsystem: "persistence",
		Name:      "last_workout_persisted_timestamp_seconds",
		Help:      "Unix timestamp of the most recent workout persisted to the store.",
	})
	workoutCreatedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "workout_service",
		Subsystem: "persistence",
		Name:      "workouts_created_total",
		Help:      "Total number of workouts created.",
	})
	workoutDeletedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "workout_service",
		Subsystem: "persistence",
		Name:      "workouts_deleted_total",
		Help:      "Total number of workouts deleted.",
	})
)

func init() {
	prometheus.MustRegister(workoutPersistGauge, workoutCreatedCounter, workoutDeletedCounter)
}

// RecordWorkoutPersisted updates the persistence watermark gauge and the
// created counter.
func RecordWorkoutPersisted(ts time.Time) {
	if ts.IsZero() {
		return
	}
	workoutPersistGauge.Set(float64(ts.Unix()))
	workoutCreatedCounter.Inc()
}

// RecordWorkoutDeleted increments the deleted counter.
func RecordWorkoutDeleted() {
	workoutDeletedCounter.Inc()
}
