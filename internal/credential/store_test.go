package credential

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abapcodestudio/codestudio/internal/errors"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), ".codestudio", FileName))
}

func TestLoad_MissingFile(t *testing.T) {
	s := newTestStore(t)

	token, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestSaveLoad(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Save("tok-123"))
	token, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-123", token)

	require.NoError(t, s.Save("tok-456"))
	token, err = s.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-456", token, "Save replaces the previous token")
}

func TestSave_FixedKeyAndMode(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Save("secret"))

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)

	var doc map[string]string
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, map[string]string{"acs_token": "secret"}, doc)

	info, err := os.Stat(s.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestSave_PreservesOtherKeys(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(s.Path()), 0700))
	require.NoError(t, os.WriteFile(s.Path(), []byte(`{"acs_token":"old","user":"dev"}`), 0600))

	require.NoError(t, s.Save("new"))

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	var doc map[string]string
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "new", doc["acs_token"])
	assert.Equal(t, "dev", doc["user"])
}

func TestLoad_Corrupt(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(s.Path()), 0700))
	require.NoError(t, os.WriteFile(s.Path(), []byte("not json"), 0600))

	_, err := s.Load()
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.KindDecode))

	// Save recovers from a corrupt file.
	require.NoError(t, s.Save("fresh"))
	token, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "fresh", token)
}

func TestLoad_NonStringToken(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(s.Path()), 0700))
	require.NoError(t, os.WriteFile(s.Path(), []byte(`{"acs_token": 42}`), 0600))

	token, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestWatch_ReportsExternalChange(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Save("initial"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, err := s.Watch(ctx, nil)
	require.NoError(t, err)

	other := NewStore(s.Path())
	require.NoError(t, other.Save("rotated"))

	select {
	case token := <-changes:
		assert.Equal(t, "rotated", token)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for credential change")
	}

	cancel()
	select {
	case _, ok := <-changes:
		for ok {
			_, ok = <-changes
		}
	case <-time.After(5 * time.Second):
		t.Fatal("watch channel not closed after cancel")
	}
}

func TestWatch_FirstLoginIntoMissingDir(t *testing.T) {
	s := newTestStore(t)
	_, err := os.Stat(filepath.Dir(s.Path()))
	require.True(t, os.IsNotExist(err))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, err := s.Watch(ctx, nil)
	require.NoError(t, err)

	info, err := os.Stat(filepath.Dir(s.Path()))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	require.NoError(t, NewStore(s.Path()).Save("first"))

	select {
	case token := <-changes:
		assert.Equal(t, "first", token)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for first credential")
	}

	cancel()
	for range changes {
	}
}
