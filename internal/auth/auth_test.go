package auth

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"

	"fitlog/internal/models"
)

// fakeUserStore is an in-memory UserStore keyed by username.
type fakeUserStore struct {
	users map[string]models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]models.User)}
}

func (f *fakeUserStore) FindByUsername(_ context.Context, username string) (models.User, error) {
	u, ok := f.users[username]
	if !ok {
		return models.User{}, mongo.ErrNoDocuments
	}
	return u, nil
}

func (f *fakeUserStore) Insert(_ context.Context, user models.User) error {
	f.users[user.Username] = user
	return nil
}

func TestRegister_LowercasesUsername(t *testing.T) {
	store := newFakeUserStore()

	got, err := Register(context.Background(), store, "Alice", "pw1")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if got != "alice" {
		t.Errorf("canonical username = %q, want %q", got, "alice")
	}
	if _, ok := store.users["alice"]; !ok {
		t.Error("user not stored under lowercased name")
	}
}

func TestRegister_DuplicateIsCaseInsensitive(t *testing.T) {
	store := newFakeUserStore()

	if _, err := Register(context.Background(), store, "alice", "pw1"); err != nil {
		t.Fatalf("first Register error: %v", err)
	}
	_, err := Register(context.Background(), store, "ALICE", "pw2")
	if !errors.Is(err, ErrDuplicateUser) {
		t.Fatalf("second Register error = %v, want ErrDuplicateUser", err)
	}
}

func TestRegister_HashIsNotPlaintext(t *testing.T) {
	store := newFakeUserStore()

	if _, err := Register(context.Background(), store, "alice", "pw1"); err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if store.users["alice"].Password == "pw1" {
		t.Error("password stored in plaintext")
	}
}

func TestLogin_RoundTrip(t *testing.T) {
	store := newFakeUserStore()

	if _, err := Register(context.Background(), store, "alice", "pw1"); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	got, err := Login(context.Background(), store, "Alice", "pw1")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if got != "alice" {
		t.Errorf("Login username = %q, want %q", got, "alice")
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	store := newFakeUserStore()

	if _, err := Register(context.Background(), store, "alice", "pw1"); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	_, err := Login(context.Background(), store, "alice", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("Login error = %v, want ErrInvalidCredentials", err)
	}
}

func TestLogin_UnknownUser(t *testing.T) {
	store := newFakeUserStore()

	_, err := Login(context.Background(), store, "nobody", "pw")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("Login error = %v, want ErrInvalidCredentials", err)
	}
}
