package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrSessionExpired signals that no usable bearer token exists and the user
// must log in again.
var ErrSessionExpired = errors.New("session expired")

// Profile is the cached account snapshot attached to the session.
type Profile struct {
	UserID   int64  `json:"userId"`
	Email    string `json:"email"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
	IsSeller bool   `json:"isSeller"`
}

type state struct {
	Token string   `json:"token"`
	User  *Profile `json:"user,omitempty"`
}

// Store is the single read/write boundary for the bearer token and cached
// profile. Every component goes through it instead of touching storage
// directly.
type Store struct {
	mu    sync.Mutex
	path  string
	state state
	now   func() time.Time
}

// NewStore opens (or initializes) the session file at path.
func NewStore(path string) (*Store, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil, fmt.Errorf("session path is required")
	}

	s := &Store{path: trimmed, now: time.Now}
	raw, err := os.ReadFile(trimmed)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("reading session file: %w", err)
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &s.state); err != nil {
			// A corrupt session file is treated as logged out.
			s.state = state{}
		}
	}
	return s, nil
}

// Token returns the stored bearer token. It fails with ErrSessionExpired
// when no token exists or the token's exp claim has passed. The signature
// is not checked here; the backend owns verification.
func (s *Store) Token() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	token := strings.TrimSpace(s.state.Token)
	if token == "" {
		return "", ErrSessionExpired
	}
	if expired, err := tokenExpired(token, s.now()); err == nil && expired {
		return "", ErrSessionExpired
	}
	return token, nil
}

// SetToken stores the bearer token and persists the session.
func (s *Store) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Token = strings.TrimSpace(token)
	return s.persistLocked()
}

// User returns the cached profile, or nil when none is stored.
func (s *Store) User() *Profile {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.User == nil {
		return nil
	}
	copied := *s.state.User
	return &copied
}

// SetUser caches the profile and persists the session.
func (s *Store) SetUser(profile *Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if profile == nil {
		s.state.User = nil
	} else {
		copied := *profile
		s.state.User = &copied
	}
	return s.persistLocked()
}

// Clear drops the token and profile. Called on any 401/403 from the API.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = state{}
	return s.persistLocked()
}

func (s *Store) persistLocked() error {
	if dir := filepath.Dir(s.path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("creating session dir: %w", err)
		}
	}
	raw, err := json.Marshal(s.state)
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("writing session file: %w", err)
	}
	return nil
}

func tokenExpired(token string, now time.Time) (bool, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false, err
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false, err
	}
	return exp.Before(now), nil
}
