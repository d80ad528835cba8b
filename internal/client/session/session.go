// Package session persists the authenticated user's token and profile
// across client runs, the way the browser app keeps them in local storage.
// The session is an explicit value handed around by the caller, read once
// at startup and cleared on logout.
package session

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"taskboard/internal/models"
)

type Session struct {
	Token string         `json:"token"`
	User  models.Profile `json:"user"`
}

func (s Session) LoggedIn() bool {
	return s.Token != ""
}

type Store struct {
	path string
}

func NewStore(path string) Store {
	return Store{path: path}
}

// Load reads the stored session. A missing file yields a zero session; a
// file that fails to parse is removed and also yields a zero session, so
// a corrupted store never blocks the client from starting.
func (s Store) Load() Session {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return Session{}
	}

	var session Session
	err = json.Unmarshal(data, &session)
	if err != nil {
		_ = os.Remove(s.path)
		return Session{}
	}
	return session
}

func (s Store) Save(session Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(s.path), 0o700)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

func (s Store) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
