// Package workout holds the workout record lifecycle: deriving status and
// timing from form input, assembling records, and persisting them in MongoDB.
package workout

import (
	"net/url"

	"fitlog/internal/models"
)

// DeriveStatusAndTiming maps the raw form fields onto the stored status and
// timing values. Status is "on" iff the status field was submitted with a
// non-empty value. Timing depends on an exact match of the interval label;
// any other text, including an empty or misspelled one, falls back to 30.
// Unrecognized intervals are not an error.
func DeriveStatusAndTiming(form url.Values) (status string, timing int) {
	status = models.StatusOff
	if form.Get("status") != "" {
		status = models.StatusOn
	}
	switch form.Get("interval") {
	case models.IntervalMedium:
		timing = 45
	case models.IntervalHard:
		timing = 60
	default:
		timing = 30
	}
	return status, timing
}

// BuildRecord assembles a Workout from the active session user and the
// submitted form. It does not persist anything; that is the caller's job.
// Used for both create and edit, so an edit stamps the current session user
// onto the replaced document.
func BuildRecord(sessionUser string, form url.Values) models.Workout {
	status, timing := DeriveStatusAndTiming(form)
	return models.Workout{
		User:      sessionUser,
		Date:      form.Get("date"),
		Exercise1: form.Get("exercise_1"),
		Exercise2: form.Get("exercise_2"),
		Exercise3: form.Get("exercise_3"),
		Exercise4: form.Get("exercise_4"),
		Exercise5: form.Get("exercise_5"),
		Interval:  form.Get("interval"),
		Comment:   form.Get("comment"),
		Status:    status,
		Timing:    timing,
	}
}

// Summary is the result of the active-minutes aggregation: the total timing
// over all "on" workouts, together with one representative user field. The
// sum is global across users, not a per-user breakdown; the representative
// user is whichever record the store happened to visit first. This mirrors
// the original aggregation exactly rather than redesigning it.
type Summary struct {
	User    string `bson:"user"`
	Minutes int    `bson:"minutes"`
}
