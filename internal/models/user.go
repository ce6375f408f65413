package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a registered user. Password holds the bcrypt hash, never
// the plaintext. Usernames are stored lowercased; uniqueness is enforced by
// lookup-before-insert rather than an index constraint.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Username string             `bson:"username"`
	Password string             `bson:"password"`
}
