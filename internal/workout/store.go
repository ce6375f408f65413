package workout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"fitlog/internal/models"
)

// ErrNotFound is returned when a workout id does not resolve to a document.
var ErrNotFound = errors.New("workout not found")

const opTimeout = 5 * time.Second

// MongoStore persists workouts in a MongoDB collection.
type MongoStore struct {
	col *mongo.Collection
}

// NewMongoStore returns a store backed by the given workouts collection.
func NewMongoStore(col *mongo.Collection) *MongoStore {
	return &MongoStore{col: col}
}

// All returns every workout in the collection, across all users.
func (s *MongoStore) All(ctx context.Context) ([]models.Workout, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	cur, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error listing workouts: %w", err)
	}
	var workouts []models.Workout
	if err := cur.All(ctx, &workouts); err != nil {
		return nil, fmt.Errorf("error decoding workouts: %w", err)
	}
	return workouts, nil
}

// Search runs a $text search over the whole collection. The search is global,
// not scoped to the requesting user. An empty query matches no documents
// under Mongo's $text semantics.
func (s *MongoStore) Search(ctx context.Context, query string) ([]models.Workout, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	cur, err := s.col.Find(ctx, bson.M{"$text": bson.M{"$search": query}})
	if err != nil {
		return nil, fmt.Errorf("error searching workouts: %w", err)
	}
	var workouts []models.Workout
	if err := cur.All(ctx, &workouts); err != nil {
		return nil, fmt.Errorf("error decoding workouts: %w", err)
	}
	return workouts, nil
}

// Get looks up a single workout by its hex id.
func (s *MongoStore) Get(ctx context.Context, id string) (models.Workout, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Workout{}, ErrNotFound
	}
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	var w models.Workout
	err = s.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&w)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Workout{}, ErrNotFound
		}
		return models.Workout{}, fmt.Errorf("error retrieving workout: %w", err)
	}
	return w, nil
}

// Insert stores a new workout.
func (s *MongoStore) Insert(ctx context.Context, w models.Workout) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	if _, err := s.col.InsertOne(ctx, w); err != nil {
		return fmt.Errorf("error inserting workout: %w", err)
	}
	return nil
}

// Replace swaps the stored document at id for w wholesale, keeping only the
// _id. Returns ErrNotFound when the id does not resolve. Last writer wins;
// there is no optimistic locking.
func (s *MongoStore) Replace(ctx context.Context, id string, w models.Workout) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	w.ID = oid
	res, err := s.col.ReplaceOne(ctx, bson.M{"_id": oid}, w)
	if err != nil {
		return fmt.Errorf("error replacing workout: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the workout at id. Deleting an absent id is not an error;
// the operation is idempotent by id.
func (s *MongoStore) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	if _, err := s.col.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("error deleting workout: %w", err)
	}
	return nil
}

// ActiveMinutes sums timing over all workouts with status "on". The group
// stage keeps the original shape: one global bucket whose user field is the
// first one encountered, not a per-user breakdown. Returns nil when no
// workout is "on".
func (s *MongoStore) ActiveMinutes(ctx context.Context) (*Summary, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"status": models.StatusOn}}},
		{{Key: "$group", Value: bson.M{
			"_id":     0,
			"user":    bson.M{"$first": "$user"},
			"minutes": bson.M{"$sum": "$timing"},
		}}},
	}
	cur, err := s.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("error aggregating workouts: %w", err)
	}
	var results []Summary
	if err := cur.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("error decoding summary: %w", err)
	}
	if len(results) == 0 {
		return nil, nil
	}
	return &results[0], nil
}
