package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/AnjalSotang/FYP-sub002/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ExerciseRepository defines the interface for exercise library operations
type ExerciseRepository interface {
	CreateExercise(ctx context.Context, exercise *models.Exercise) error
	GetExerciseByID(ctx context.Context, id string) (*models.Exercise, error)
	GetExercises(ctx context.Context, muscleGroup string, skip, limit int64) ([]models.Exercise, error)
	UpdateExercise(ctx context.Context, id string, exercise *models.Exercise) error
	DeleteExercise(ctx context.Context, id string) error
}

// MongoExerciseRepository implements ExerciseRepository for MongoDB
type MongoExerciseRepository struct {
	collection *mongo.Collection
}

// NewMongoExerciseRepository creates a new MongoExerciseRepository
func NewMongoExerciseRepository(db *mongo.Database) *MongoExerciseRepository {
	return &MongoExerciseRepository{collection: db.Collection("exercises")}
}

// CreateExercise creates a new exercise document in MongoDB
func (r *MongoExerciseRepository) CreateExercise(ctx context.Context, exercise *models.Exercise) error {
	exercise.ID = primitive.NewObjectID()
	exercise.CreatedAt = time.Now()
	exercise.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, exercise)
	return err
}

// GetExerciseByID retrieves an exercise by ID from MongoDB
func (r *MongoExerciseRepository) GetExerciseByID(ctx context.Context, id string) (*models.Exercise, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid exercise ID format: %w", err)
	}

	var exercise models.Exercise
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&exercise)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("exercise not found")
		}
		return nil, err
	}
	return &exercise, nil
}

// GetExercises retrieves exercises with optional muscle-group filter and pagination
func (r *MongoExerciseRepository) GetExercises(ctx context.Context, muscleGroup string, skip, limit int64) ([]models.Exercise, error) {
	filter := bson.M{}
	if muscleGroup != "" {
		filter["muscle_group"] = muscleGroup
	}

	var exercises []models.Exercise
	findOptions := options.Find().SetSkip(skip).SetLimit(limit).SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &exercises); err != nil {
		return nil, err
	}
	return exercises, nil
}

// UpdateExercise updates an existing exercise document in MongoDB
func (r *MongoExerciseRepository) UpdateExercise(ctx context.Context, id string, exercise *models.Exercise) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid exercise ID format: %w", err)
	}

	exercise.UpdatedAt = time.Now()
	update := bson.M{
		"$set": bson.M{
			"name":         exercise.Name,
			"muscle_group": exercise.MuscleGroup,
			"equipment":    exercise.Equipment,
			"difficulty":   exercise.Difficulty,
			"instructions": exercise.Instructions,
			"video_url":    exercise.VideoURL,
			"image_url":    exercise.ImageURL,
			"updated_at":   exercise.UpdatedAt,
		},
	}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("exercise not found")
	}
	return nil
}

// DeleteExercise removes an exercise document from MongoDB
func (r *MongoExerciseRepository) DeleteExercise(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid exercise ID format: %w", err)
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("exercise not found")
	}
	return nil
}
