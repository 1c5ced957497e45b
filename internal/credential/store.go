// Package credential persists the session bearer token between runs.
//
// The token lives in a small JSON document under a fixed key so the backend's
// own tooling and the TUI agree on where to find it:
//
//	{"acs_token": "..."}
package credential

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/abapcodestudio/codestudio/internal/errors"
)

// Key is the field name the token is stored under.
const Key = "acs_token"

// FileName is the credential file's name inside the codestudio directory.
const FileName = "credentials.json"

// Store reads and writes the credential file. The zero value is not usable;
// create one with NewStore.
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore returns a Store backed by the file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath returns ~/.codestudio/credentials.json.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".codestudio", FileName), nil
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load returns the stored token. A missing file yields an empty token and no
// error, since an unauthenticated client sends an empty bearer.
func (s *Store) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", errors.CredentialLoadFailed(s.path, err)
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return "", errors.E(errors.Op("credential.Load"), errors.KindDecode, s.path, err)
	}
	token, _ := doc[Key].(string)
	return token, nil
}

// Save replaces the stored token. Other keys already present in the file are
// preserved. The file is written with owner-only permissions.
func (s *Store) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := map[string]any{}
	if data, err := os.ReadFile(s.path); err == nil {
		// A corrupt file is overwritten rather than blocking login.
		_ = json.Unmarshal(data, &doc)
	}
	doc[Key] = token

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.CredentialSaveFailed(s.path, err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return errors.CredentialSaveFailed(s.path, err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return errors.CredentialSaveFailed(s.path, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return errors.CredentialSaveFailed(s.path, err)
	}
	return nil
}
