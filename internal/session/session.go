// Package session persists the CLI's login and selected child between runs.
package session

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// FileName is the default session file under the user's config directory.
const FileName = "childcare/session.json"

// Session is the persisted CLI state.
type Session struct {
	BaseURL        string `json:"baseUrl"`
	Token          string `json:"token,omitempty"`
	CurrentChildID string `json:"currentChildId,omitempty"`
}

// DefaultPath returns the session file location for the current user.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "locate config dir")
	}
	return filepath.Join(dir, FileName), nil
}

// Load reads the session at path. A missing file yields an empty session.
func Load(path string) (*Session, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Session{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "read session")
	}
	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrapf(err, "parse session %s", path)
	}
	return &s, nil
}

// Save writes the session to path, creating parent directories.
func (s *Session) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return errors.Wrap(err, "create session dir")
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode session")
	}
	return errors.Wrap(os.WriteFile(path, data, 0o600), "write session")
}

// SelectChild sets the current child.
func (s *Session) SelectChild(id string) {
	s.CurrentChildID = id
}

// RequireToken fails when the session has no token.
func (s *Session) RequireToken() error {
	if s.Token == "" {
		return errors.New("not logged in: run `token --save` first")
	}
	return nil
}
