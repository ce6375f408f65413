package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"fitlog/internal/config"
)

// Connect establishes a connection to MongoDB and returns the client.
func Connect(ctx context.Context, cfg *config.Config) (*mongo.Client, error) {
	clientOptions := options.Client().ApplyURI(cfg.MongoURI)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}
	// Ping the database to verify connection.
	ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctxPing, nil); err != nil {
		return nil, err
	}
	log.Println("Connected to MongoDB")
	return client, nil
}

// Users returns the MongoDB collection for users.
func Users(client *mongo.Client, cfg *config.Config) *mongo.Collection {
	return client.Database(cfg.MongoDBName).Collection("users")
}

// Workouts returns the MongoDB collection for workouts.
func Workouts(client *mongo.Client, cfg *config.Config) *mongo.Collection {
	return client.Database(cfg.MongoDBName).Collection("workouts")
}

// EnsureIndexes creates the text index that backs workout search. Creating an
// index that already exists is a no-op on the server side.
func EnsureIndexes(ctx context.Context, workouts *mongo.Collection) error {
	ctxIdx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	_, err := workouts.Indexes().CreateOne(ctxIdx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "user", Value: "text"},
			{Key: "date", Value: "text"},
			{Key: "exercise_1", Value: "text"},
			{Key: "exercise_2", Value: "text"},
			{Key: "exercise_3", Value: "text"},
			{Key: "exercise_4", Value: "text"},
			{Key: "exercise_5", Value: "text"},
			{Key: "interval", Value: "text"},
			{Key: "comment", Value: "text"},
		},
	})
	return err
}
