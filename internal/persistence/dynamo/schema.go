package dynamo

import "fmt"

// DynamoDB schema constants for the workouts table (single-table layout).
const (
	AttrPK         = "PK"
	AttrSK         = "SK"
	AttrGSI1PK     = "GSI1PK"
	AttrGSI1SK     = "GSI1SK"
	AttrEntityType = "entity_type"

	EntityTypeWorkout = "Workout"

	// IndexCreatedAt orders all workouts by creation time.
	IndexCreatedAt = "GSI1"

	// gsi1PartitionValue is the constant partition key that collects every
	// workout under the creation-time index.
	gsi1PartitionValue = "WORKOUT"
)

// Workout keys: PK=WORKOUT#{id}, SK=META
func workoutPK(id string) string {
	return fmt.Sprintf("WORKOUT#%s", id)
}

func workoutSK() string {
	return "META"
}
