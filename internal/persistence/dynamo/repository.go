// Package dynamo provides DynamoDB-backed persistence for workouts.
package dynamo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"example.com/workouts/internal/domain"
)

// Repository implements domain.WorkoutRepository using AWS DynamoDB.
type Repository struct {
	client    Client
	tableName string
}

var _ domain.WorkoutRepository = (*Repository)(nil)

// NewRepository creates a DynamoDB-backed workout repository.
func NewRepository(client Client, tableName string) *Repository {
	return &Repository{
		client:    client,
		tableName: tableName,
	}
}

// workoutRecord is the stored shape of a workout item.
type workoutRecord struct {
	ID        string    `dynamodbav:"id"`
	Title     string    `dynamodbav:"title"`
	Reps      int       `dynamodbav:"reps"`
	Load      int       `dynamodbav:"load"`
	CreatedAt time.Time `dynamodbav:"created_at"`
	UpdatedAt time.Time `dynamodbav:"updated_at"`
}

func toRecord(w domain.Workout) workoutRecord {
	return workoutRecord{
		ID:        w.ID,
		Title:     w.Title,
		Reps:      w.Reps,
		Load:      w.Load,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}

func (r workoutRecord) toDomain() domain.Workout {
	return domain.Workout{
		ID:        r.ID,
		Title:     r.Title,
		Reps:      r.Reps,
		Load:      r.Load,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// Create persists a new workout item.
func (r *Repository) Create(ctx context.Context, workout domain.Workout) error {
	item, err := attributevalue.MarshalMap(toRecord(workout))
	if err != nil {
		return fmt.Errorf("failed to marshal workout: %w", err)
	}

	item[AttrPK] = &types.AttributeValueMemberS{Value: workoutPK(workout.ID)}
	item[AttrSK] = &types.AttributeValueMemberS{Value: workoutSK()}
	item[AttrEntityType] = &types.AttributeValueMemberS{Value: EntityTypeWorkout}
	item[AttrGSI1PK] = &types.AttributeValueMemberS{Value: gsi1PartitionValue}
	item[AttrGSI1SK] = &types.AttributeValueMemberS{Value: workout.CreatedAt.Format(time.RFC3339Nano)}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("failed to create workout: %w", err)
	}

	return nil
}

// Get fetches a workout by id.
func (r *Repository) Get(ctx context.Context, id string) (*domain.Workout, error) {
	result, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			AttrPK: &types.AttributeValueMemberS{Value: workoutPK(id)},
			AttrSK: &types.AttributeValueMemberS{Value: workoutSK()},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get workout: %w", err)
	}

	if result.Item == nil {
		return nil, domain.ErrWorkoutNotFound
	}

	var record workoutRecord
	if err := attributevalue.UnmarshalMap(result.Item, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal workout: %w", err)
	}

	workout := record.toDomain()
	return &workout, nil
}

// List returns every workout ordered by creation time, newest first. It
// queries the creation-time index descending and pages through all results.
func (r *Repository) List(ctx context.Context) ([]domain.Workout, error) {
	workouts := []domain.Workout{}
	var lastEvaluatedKey map[string]types.AttributeValue

	keyExpr := expression.Key(AttrGSI1PK).Equal(expression.Value(gsi1PartitionValue))
	expr, err := expression.NewBuilder().WithKeyCondition(keyExpr).Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build list expression: %w", err)
	}

	for {
		queryInput := &dynamodb.QueryInput{
			TableName:                 aws.String(r.tableName),
			IndexName:                 aws.String(IndexCreatedAt),
			KeyConditionExpression:    expr.KeyCondition(),
			ExpressionAttributeNames:  expr.Names(),
			ExpressionAttributeValues: expr.Values(),
			ScanIndexForward:          aws.Bool(false),
		}

		if lastEvaluatedKey != nil {
			queryInput.ExclusiveStartKey = lastEvaluatedKey
		}

		result, err := r.client.Query(ctx, queryInput)
		if err != nil {
			return nil, fmt.Errorf("failed to list workouts: %w", err)
		}

		for _, item := range result.Items {
			var record workoutRecord
			if err := attributevalue.UnmarshalMap(item, &record); err != nil {
				return nil, fmt.Errorf("failed to unmarshal workout: %w", err)
			}
			workouts = append(workouts, record.toDomain())
		}

		if result.LastEvaluatedKey == nil {
			break
		}
		lastEvaluatedKey = result.LastEvaluatedKey
	}

	return workouts, nil
}

// Delete removes a workout and returns the deleted record.
func (r *Repository) Delete(ctx context.Context, id string) (*domain.Workout, error) {
	result, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			AttrPK: &types.AttributeValueMemberS{Value: workoutPK(id)},
			AttrSK: &types.AttributeValueMemberS{Value: workoutSK()},
		},
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to delete workout: %w", err)
	}

	if len(result.Attributes) == 0 {
		return nil, domain.ErrWorkoutNotFound
	}

	var record workoutRecord
	if err := attributevalue.UnmarshalMap(result.Attributes, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal deleted workout: %w", err)
	}

	workout := record.toDomain()
	return &workout, nil
}

// Update merges the patch into an existing workout and returns the updated
// record. Only fields present in the patch are written; updated_at is always
// touched so the update expression is never empty.
func (r *Repository) Update(ctx context.Context, id string, patch domain.WorkoutPatch) (*domain.Workout, error) {
	update := expression.Set(expression.Name("updated_at"), expression.Value(time.Now().UTC()))
	if patch.Title != nil {
		update = update.Set(expression.Name("title"), expression.Value(*patch.Title))
	}
	if patch.Reps != nil {
		update = update.Set(expression.Name("reps"), expression.Value(*patch.Reps))
	}
	if patch.Load != nil {
		update = update.Set(expression.Name("load"), expression.Value(*patch.Load))
	}

	cond := expression.AttributeExists(expression.Name(AttrPK))

	expr, err := expression.NewBuilder().WithUpdate(update).WithCondition(cond).Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build update expression: %w", err)
	}

	result, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			AttrPK: &types.AttributeValueMemberS{Value: workoutPK(id)},
			AttrSK: &types.AttributeValueMemberS{Value: workoutSK()},
		},
		UpdateExpression:          expr.Update(),
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var conditionFailed *types.ConditionalCheckFailedException
		if errors.As(err, &conditionFailed) {
			return nil, domain.ErrWorkoutNotFound
		}
		return nil, fmt.Errorf("failed to update workout: %w", err)
	}

	var record workoutRecord
	if err := attributevalue.UnmarshalMap(result.Attributes, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal updated workout: %w", err)
	}

	workout := record.toDomain()
	return &workout, nil
}
