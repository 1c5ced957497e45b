package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/abapcodestudio/codestudio/internal/credential"
)

func newTestStore(t *testing.T) *credential.Store {
	t.Helper()
	return credential.NewStore(filepath.Join(t.TempDir(), "credentials.json"))
}

func TestLogin_FromArgument(t *testing.T) {
	store := newTestStore(t)
	var out bytes.Buffer

	if err := runLoginWith(store, []string{"  acs_token  "}, strings.NewReader(""), &out); err != nil {
		t.Fatalf("runLoginWith() error = %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatal(err)
	}
	if got != "acs_token" {
		t.Errorf("stored token = %q, want %q", got, "acs_token")
	}
	if !strings.Contains(out.String(), store.Path()) {
		t.Errorf("output %q should name the credential file", out.String())
	}
}

func TestLogin_FromStdin(t *testing.T) {
	store := newTestStore(t)
	var out bytes.Buffer

	if err := runLoginWith(store, nil, strings.NewReader("piped\nignored\n"), &out); err != nil {
		t.Fatalf("runLoginWith() error = %v", err)
	}
	got, _ := store.Load()
	if got != "piped" {
		t.Errorf("stored token = %q, want %q", got, "piped")
	}
}

func TestLogin_StdinWithoutNewline(t *testing.T) {
	store := newTestStore(t)
	if err := runLoginWith(store, nil, strings.NewReader("tail"), &bytes.Buffer{}); err != nil {
		t.Fatalf("runLoginWith() error = %v", err)
	}
	got, _ := store.Load()
	if got != "tail" {
		t.Errorf("stored token = %q, want %q", got, "tail")
	}
}

func TestLogin_EmptyToken(t *testing.T) {
	store := newTestStore(t)
	if err := runLoginWith(store, nil, strings.NewReader("\n"), &bytes.Buffer{}); err == nil {
		t.Fatal("expected an error for an empty token")
	}
	got, _ := store.Load()
	if got != "" {
		t.Errorf("nothing should be stored, got %q", got)
	}
}
