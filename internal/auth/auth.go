// Package auth implements registration and login against the users
// collection: lookup-before-insert uniqueness and bcrypt password hashing.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"fitlog/internal/models"
)

var (
	// ErrDuplicateUser is returned when the username is already registered.
	ErrDuplicateUser = errors.New("username already exists")
	// ErrInvalidCredentials is returned on an unknown username or a wrong
	// password; callers must not distinguish the two.
	ErrInvalidCredentials = errors.New("incorrect username and/or password")
	// ErrUnauthenticated is returned when an operation requires an active
	// session and none is present.
	ErrUnauthenticated = errors.New("not logged in")
)

// UserStore persists user credentials.
type UserStore interface {
	FindByUsername(ctx context.Context, username string) (models.User, error)
	Insert(ctx context.Context, user models.User) error
}

// Register creates a new user. The username is lowercased before the
// duplicate check and the write, so uniqueness is case-insensitive. Returns
// ErrDuplicateUser if the name is taken, and the canonical (lowercased)
// username on success.
func Register(ctx context.Context, store UserStore, username, password string) (string, error) {
	username = strings.ToLower(username)

	_, err := store.FindByUsername(ctx, username)
	if err == nil {
		return "", ErrDuplicateUser
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return "", fmt.Errorf("error checking existing user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	newUser := models.User{
		Username: username,
		Password: string(hash),
	}
	if err := store.Insert(ctx, newUser); err != nil {
		return "", fmt.Errorf("error inserting user: %w", err)
	}
	log.Printf("User %s registered successfully.", username)
	return username, nil
}

// Login verifies a username/password pair. Returns the canonical username on
// success and ErrInvalidCredentials on an unknown user or a hash mismatch.
func Login(ctx context.Context, store UserStore, username, password string) (string, error) {
	username = strings.ToLower(username)

	user, err := store.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("error retrieving user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return user.Username, nil
}

// MongoUserStore is the MongoDB-backed UserStore.
type MongoUserStore struct {
	col *mongo.Collection
}

// NewMongoUserStore returns a store backed by the given users collection.
func NewMongoUserStore(col *mongo.Collection) *MongoUserStore {
	return &MongoUserStore{col: col}
}

// FindByUsername looks up a user by exact (already lowercased) username.
// Propagates mongo.ErrNoDocuments when the user is absent.
func (s *MongoUserStore) FindByUsername(ctx context.Context, username string) (models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	var user models.User
	err := s.col.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	return user, err
}

// Insert stores a new user record.
func (s *MongoUserStore) Insert(ctx context.Context, user models.User) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	_, err := s.col.InsertOne(ctx, user)
	return err
}
