package auth

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"saree-store/internal/models"
)

var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidRegistration = errors.New("invalid registration data")
)

// Store is the mock authentication state: SignedOut or SignedIn(User),
// with the signed-in record mirrored to a JSON file so a restart picks the
// session back up. There is no password verification anywhere in here --
// sign-in succeeds for any non-empty inputs, exactly like the storefront's
// demo auth.
type Store struct {
	mu    sync.Mutex
	user  *models.User
	path  string
	delay time.Duration // simulated network latency, zero in tests
}

// NewStore loads any persisted session from path. A record that fails to
// decode is deleted and ignored; the store starts signed out.
func NewStore(path string, delay time.Duration) *Store {
	s := &Store{path: path, delay: delay}

	data, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	var u models.User
	if err := json.Unmarshal(data, &u); err != nil || u.ID == "" {
		log.Println("⚠️ Discarding malformed session record:", path)
		os.Remove(path)
		return s
	}
	s.user = &u
	return s
}

// Login signs in with any non-empty email and password, fabricating a user
// named after the email's local part. The previous session, if any, is
// replaced.
func (s *Store) Login(email, password string) (*models.User, error) {
	time.Sleep(s.delay)

	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}
	u := &models.User{
		ID:    "user123",
		Name:  strings.SplitN(email, "@", 2)[0],
		Email: email,
	}
	s.setUser(u)
	out := *u
	return &out, nil
}

// Register signs in with the given name for any non-empty inputs.
func (s *Store) Register(name, email, password string) (*models.User, error) {
	time.Sleep(s.delay)

	if name == "" || email == "" || password == "" {
		return nil, ErrInvalidRegistration
	}
	u := &models.User{ID: "user123", Name: name, Email: email}
	s.setUser(u)
	out := *u
	return &out, nil
}

// Logout signs out and erases the persisted record.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	os.Remove(s.path)
}

// Current returns the signed-in user, if any.
func (s *Store) Current() (*models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil, false
	}
	out := *s.user
	return &out, true
}

func (s *Store) setUser(u *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = u

	data, err := json.Marshal(u)
	if err == nil {
		err = os.WriteFile(s.path, data, 0644)
	}
	if err != nil {
		log.Println("⚠️ Failed to persist session record:", err)
	}
}
