// Package session wraps the signed cookie session: the single active
// username plus one-shot flash notices.
package session

import (
	"net/http"

	"github.com/gorilla/sessions"
)

const (
	sessionName = "fitlog"
	userKey     = "user"
)

// Manager reads and writes the session cookie.
type Manager struct {
	store *sessions.CookieStore
}

// NewManager returns a Manager whose cookies are signed with secretKey.
func NewManager(secretKey string) *Manager {
	store := sessions.NewCookieStore([]byte(secretKey))
	store.Options.HttpOnly = true
	return &Manager{store: store}
}

func (m *Manager) session(r *http.Request) *sessions.Session {
	// Get never fails fatally: a missing or undecodable cookie yields a
	// fresh session.
	s, _ := m.store.Get(r, sessionName)
	return s
}

// CurrentUser returns the active username, if any.
func (m *Manager) CurrentUser(r *http.Request) (string, bool) {
	s := m.session(r)
	user, ok := s.Values[userKey].(string)
	if !ok || user == "" {
		return "", false
	}
	return user, true
}

// SignIn records username as the active user.
func (m *Manager) SignIn(w http.ResponseWriter, r *http.Request, username string) error {
	s := m.session(r)
	s.Values[userKey] = username
	return s.Save(r, w)
}

// SignOut clears the active user. Clearing an absent session is a no-op.
func (m *Manager) SignOut(w http.ResponseWriter, r *http.Request) error {
	s := m.session(r)
	delete(s.Values, userKey)
	return s.Save(r, w)
}

// Flash queues a one-shot notice for the next rendered page.
func (m *Manager) Flash(w http.ResponseWriter, r *http.Request, msg string) {
	s := m.session(r)
	s.AddFlash(msg)
	s.Save(r, w)
}

// Flashes drains and returns the queued notices.
func (m *Manager) Flashes(w http.ResponseWriter, r *http.Request) []string {
	s := m.session(r)
	raw := s.Flashes()
	if len(raw) == 0 {
		return nil
	}
	msgs := make([]string, 0, len(raw))
	for _, f := range raw {
		if msg, ok := f.(string); ok {
			msgs = append(msgs, msg)
		}
	}
	s.Save(r, w)
	return msgs
}
