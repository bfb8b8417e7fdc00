// Package session persists the authenticated session (access token and
// user profile) between CLI invocations.
package session

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"gopkg.in/yaml.v3"
)

// User is the profile returned by the API on login or registration.
type User struct {
	ID      int64  `json:"id" yaml:"id"`
	Name    string `json:"nombre" yaml:"nombre"`
	Surname string `json:"apellidos,omitempty" yaml:"apellidos,omitempty"`
	Email   string `json:"email" yaml:"email"`
	Phone   string `json:"telefono,omitempty" yaml:"telefono,omitempty"`
	Company string `json:"empresa,omitempty" yaml:"empresa,omitempty"`
}

// Session is the state persisted to disk. The server URL survives
// logout; the token and user are cleared together.
type Session struct {
	ServerURL string `yaml:"server_url,omitempty"`
	Token     string `yaml:"token,omitempty"`
	User      *User  `yaml:"user,omitempty"`
}

// Authenticated returns true if a token is stored.
func (s Session) Authenticated() bool { return s.Token != "" }

// Store reads and writes the session file.
type Store struct {
	path string
}

// NewStore creates a store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath returns the default session file location.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".config", "tg", "session.yaml"), nil
}

// Load reads the session from disk.
// Returns a zero-value session if the file doesn't exist.
func (st *Store) Load() (Session, error) {
	data, err := os.ReadFile(st.path)
	if os.IsNotExist(err) {
		return Session{}, nil
	}
	if err != nil {
		return Session{}, fmt.Errorf("reading session: %w", err)
	}

	var s Session
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Session{}, fmt.Errorf("parsing session: %w", err)
	}

	return s, nil
}

// Save writes the session to disk with owner-only permissions.
func (st *Store) Save(s Session) error {
	if err := os.MkdirAll(filepath.Dir(st.path), 0o700); err != nil {
		return fmt.Errorf("creating session directory: %w", err)
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshaling session: %w", err)
	}

	if err := os.WriteFile(st.path, data, 0o600); err != nil {
		return fmt.Errorf("writing session: %w", err)
	}

	return nil
}

// Clear drops the token and cached user, keeping the server URL.
func (st *Store) Clear() error {
	s, err := st.Load()
	if err != nil {
		return err
	}
	s.Token = ""
	s.User = nil
	return st.Save(s)
}

// TokenExpiry extracts the expiration time from the access token without
// verifying its signature. Verification is the server's job; this is
// display-only. The second return is false when the token carries no
// readable expiry.
func TokenExpiry(token string) (time.Time, bool) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
