// Package web wires the HTTP surface: routing, session checks, and template
// rendering. Every error kind surfaces as a flash notice and a redirect.
package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"fitlog/internal/auth"
	"fitlog/internal/models"
	"fitlog/internal/session"
	"fitlog/internal/workout"
)

// WorkoutStore is the store surface the handlers need.
type WorkoutStore interface {
	All(ctx context.Context) ([]models.Workout, error)
	Search(ctx context.Context, query string) ([]models.Workout, error)
	Get(ctx context.Context, id string) (models.Workout, error)
	Insert(ctx context.Context, w models.Workout) error
	Replace(ctx context.Context, id string, w models.Workout) error
	Delete(ctx context.Context, id string) error
	ActiveMinutes(ctx context.Context) (*workout.Summary, error)
}

// Server holds the handler dependencies.
type Server struct {
	users    auth.UserStore
	workouts WorkoutStore
	sessions *session.Manager
	tmpl     *Templates
}

// NewServer assembles a Server from its collaborators.
func NewServer(users auth.UserStore, workouts WorkoutStore, sessions *session.Manager, tmpl *Templates) *Server {
	return &Server{
		users:    users,
		workouts: workouts,
		sessions: sessions,
		tmpl:     tmpl,
	}
}

// Routes returns the application router.
func (s *Server) Routes() *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/", s.handleHome).Methods("GET")
	router.HandleFunc("/go_home", s.handleHome).Methods("GET")
	router.HandleFunc("/register", s.handleRegister).Methods("GET", "POST")
	router.HandleFunc("/login", s.handleLogin).Methods("GET", "POST")
	router.HandleFunc("/logout", s.handleLogout).Methods("GET")
	router.HandleFunc("/view_workouts/{username}", s.handleViewWorkouts).Methods("GET", "POST")
	router.HandleFunc("/search/{username}", s.handleSearch).Methods("GET", "POST")
	router.HandleFunc("/profile/{username}", s.handleProfile).Methods("GET", "POST")
	router.HandleFunc("/create_workout", s.handleCreateWorkout).Methods("GET", "POST")
	router.HandleFunc("/edit_workout/{id}", s.handleEditWorkout).Methods("GET", "POST")
	router.HandleFunc("/delete_workout/{id}", s.handleDeleteWorkout).Methods("GET")
	return router
}

// pageData is the payload handed to every template.
type pageData struct {
	Username string
	LoggedIn bool
	Flashes  []string
	Workouts []models.Workout
	Workout  models.Workout
	Summary  *workout.Summary
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, page string, data pageData) {
	user, ok := s.sessions.CurrentUser(r)
	data.Username = user
	data.LoggedIn = ok
	data.Flashes = s.sessions.Flashes(w, r)
	if err := s.tmpl.Render(w, page, data); err != nil {
		log.Printf("Error rendering %s: %v", page, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// redirectFlash queues msg and redirects to url.
func (s *Server) redirectFlash(w http.ResponseWriter, r *http.Request, msg, url string) {
	s.sessions.Flash(w, r, msg)
	http.Redirect(w, r, url, http.StatusFound)
}

// requireUser returns the session user, or flashes and redirects to the
// login page when no session is active.
func (s *Server) requireUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	user, ok := s.sessions.CurrentUser(r)
	if !ok {
		s.redirectFlash(w, r, "Please log in to continue", "/login")
		return "", false
	}
	return user, true
}

func workoutListURL(username string) string {
	return "/view_workouts/" + username
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, "home", pageData{})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.render(w, r, "register", pageData{})
		return
	}
	username, err := auth.Register(r.Context(), s.users,
		r.FormValue("username"), r.FormValue("password"))
	if err != nil {
		if errors.Is(err, auth.ErrDuplicateUser) {
			s.redirectFlash(w, r, "Username already exists", "/register")
			return
		}
		log.Printf("Error registering user: %v", err)
		s.redirectFlash(w, r, "Something went wrong, please try again", "/register")
		return
	}
	if err := s.sessions.SignIn(w, r, username); err != nil {
		log.Printf("Error starting session: %v", err)
	}
	s.redirectFlash(w, r, "Registration Successful!", workoutListURL(username))
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.render(w, r, "login", pageData{})
		return
	}
	username, err := auth.Login(r.Context(), s.users,
		r.FormValue("username"), r.FormValue("password"))
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			s.redirectFlash(w, r, "Incorrect Username and/or Password", "/login")
			return
		}
		log.Printf("Error logging in: %v", err)
		s.redirectFlash(w, r, "Something went wrong, please try again", "/login")
		return
	}
	if err := s.sessions.SignIn(w, r, username); err != nil {
		log.Printf("Error starting session: %v", err)
	}
	s.redirectFlash(w, r, fmt.Sprintf("Welcome, %s", username), workoutListURL(username))
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.sessions.CurrentUser(r); !ok {
		// No active session to clear; treated as unauthenticated rather
		// than panicking the way an unconditional pop would.
		s.redirectFlash(w, r, "Please log in to continue", "/login")
		return
	}
	if err := s.sessions.SignOut(w, r); err != nil {
		log.Printf("Error clearing session: %v", err)
	}
	s.redirectFlash(w, r, "You have been logged out", "/login")
}

// handleViewWorkouts lists every workout in the store. The {username} path
// segment is ignored in favor of the session user, and the list is not
// scoped per user; both quirks are kept from the original product.
func (s *Server) handleViewWorkouts(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireUser(w, r); !ok {
		return
	}
	workouts, err := s.workouts.All(r.Context())
	if err != nil {
		log.Printf("Error listing workouts: %v", err)
		s.redirectFlash(w, r, "Could not load workouts", "/")
		return
	}
	s.render(w, r, "view_workouts", pageData{Workouts: workouts})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireUser(w, r); !ok {
		return
	}
	query := r.FormValue("search")
	workouts, err := s.workouts.Search(r.Context(), query)
	if err != nil {
		log.Printf("Error searching workouts: %v", err)
		s.redirectFlash(w, r, "Search failed", "/")
		return
	}
	s.render(w, r, "view_workouts", pageData{Workouts: workouts})
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireUser(w, r); !ok {
		return
	}
	workouts, err := s.workouts.All(r.Context())
	if err != nil {
		log.Printf("Error listing workouts: %v", err)
		s.redirectFlash(w, r, "Could not load workouts", "/")
		return
	}
	summary, err := s.workouts.ActiveMinutes(r.Context())
	if err != nil {
		log.Printf("Error aggregating workouts: %v", err)
		s.redirectFlash(w, r, "Could not load workouts", "/")
		return
	}
	s.render(w, r, "profile", pageData{Workouts: workouts, Summary: summary})
}

func (s *Server) handleCreateWorkout(w http.ResponseWriter, r *http.Request) {
	user, ok := s.requireUser(w, r)
	if !ok {
		return
	}
	if r.Method != http.MethodPost {
		s.render(w, r, "create_workout", pageData{})
		return
	}
	if err := r.ParseForm(); err != nil {
		s.redirectFlash(w, r, "Invalid form submission", "/create_workout")
		return
	}
	record := workout.BuildRecord(user, r.PostForm)
	if err := s.workouts.Insert(r.Context(), record); err != nil {
		log.Printf("Error inserting workout: %v", err)
		s.redirectFlash(w, r, "Could not save workout", "/create_workout")
		return
	}
	s.redirectFlash(w, r, "Workout Added Successfully", workoutListURL(user))
}

func (s *Server) handleEditWorkout(w http.ResponseWriter, r *http.Request) {
	user, ok := s.requireUser(w, r)
	if !ok {
		return
	}
	id := mux.Vars(r)["id"]
	if r.Method != http.MethodPost {
		record, err := s.workouts.Get(r.Context(), id)
		if err != nil {
			if errors.Is(err, workout.ErrNotFound) {
				s.redirectFlash(w, r, "Workout not found", workoutListURL(user))
				return
			}
			log.Printf("Error retrieving workout: %v", err)
			s.redirectFlash(w, r, "Could not load workout", workoutListURL(user))
			return
		}
		s.render(w, r, "edit_workout", pageData{Workout: record})
		return
	}
	if err := r.ParseForm(); err != nil {
		s.redirectFlash(w, r, "Invalid form submission", workoutListURL(user))
		return
	}
	// Full-document replace: the stored record is rebuilt from the form and
	// the current session user, whoever originally created it.
	record := workout.BuildRecord(user, r.PostForm)
	if err := s.workouts.Replace(r.Context(), id, record); err != nil {
		if errors.Is(err, workout.ErrNotFound) {
			s.redirectFlash(w, r, "Workout not found", workoutListURL(user))
			return
		}
		log.Printf("Error replacing workout: %v", err)
		s.redirectFlash(w, r, "Could not update workout", workoutListURL(user))
		return
	}
	s.redirectFlash(w, r, "Workout Updated Successfully", workoutListURL(user))
}

func (s *Server) handleDeleteWorkout(w http.ResponseWriter, r *http.Request) {
	user, ok := s.requireUser(w, r)
	if !ok {
		return
	}
	id := mux.Vars(r)["id"]
	// Unconditional remove: deleting an id that is already gone is fine.
	if err := s.workouts.Delete(r.Context(), id); err != nil {
		log.Printf("Error deleting workout: %v", err)
		s.redirectFlash(w, r, "Could not remove workout", workoutListURL(user))
		return
	}
	s.redirectFlash(w, r, "Workout Removed Successfully", workoutListURL(user))
}
