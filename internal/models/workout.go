package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Workout statuses. A workout is "on" when the submitting form checked the
// status box, "off" otherwise.
const (
	StatusOn  = "on"
	StatusOff = "off"
)

// Interval labels offered by the workout form. Timing is derived from the
// exact label text; anything else falls back to the easy timing.
const (
	IntervalEasy   = "Easy - 30secs on, 30secs off"
	IntervalMedium = "Medium - 45secs on, 15secs off"
	IntervalHard   = "Hard - 60secs on, 0 secs off"
)

// Workout is a single logged workout. User is the session user that submitted
// the record; an edit replaces the whole document with the current session
// user, so ownership follows the last editor.
type Workout struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	User      string             `bson:"user"`
	Date      string             `bson:"date"`
	Exercise1 string             `bson:"exercise_1"`
	Exercise2 string             `bson:"exercise_2"`
	Exercise3 string             `bson:"exercise_3"`
	Exercise4 string             `bson:"exercise_4"`
	Exercise5 string             `bson:"exercise_5"`
	Interval  string             `bson:"interval"`
	Comment   string             `bson:"comment"`
	Status    string             `bson:"status"`
	Timing    int                `bson:"timing"`
}
