package notification

import (
	"errors"
	"os"
	"testing"

	"github.com/abapcodestudio/codestudio/internal/logger"
)

func TestMain(m *testing.M) {
	logger.Reset()
	logger.Init(os.DevNull)
	code := m.Run()
	logger.Reset()
	os.Exit(code)
}

// mockNotification records calls to the notification function
type mockNotification struct {
	calls []struct {
		title   string
		message string
	}
	err error
}

func (m *mockNotification) notify(title, message string, _ any) error {
	m.calls = append(m.calls, struct {
		title   string
		message string
	}{title, message})
	return m.err
}

func TestSend(t *testing.T) {
	tests := []struct {
		name        string
		mockErr     error
		expectError bool
	}{
		{"successful notification", nil, false},
		{"notification error", errors.New("notification failed"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockNotification{err: tt.mockErr}
			SetNotifier(mock.notify)
			defer ResetNotifier()

			err := Send("Title", "Message")
			if tt.expectError != (err != nil) {
				t.Errorf("Send() error = %v, expectError %v", err, tt.expectError)
			}
			if len(mock.calls) != 1 {
				t.Fatalf("expected 1 call, got %d", len(mock.calls))
			}
			if mock.calls[0].title != "Title" || mock.calls[0].message != "Message" {
				t.Errorf("unexpected call %+v", mock.calls[0])
			}
		})
	}
}

func TestPipelineFinished(t *testing.T) {
	tests := []struct {
		passed bool
		want   string
	}{
		{true, "Pipeline for s-1 passed"},
		{false, "Pipeline for s-1 needs attention"},
	}

	for _, tt := range tests {
		mock := &mockNotification{}
		SetNotifier(mock.notify)

		if err := PipelineFinished("s-1", tt.passed); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(mock.calls) != 1 {
			t.Fatalf("expected 1 call, got %d", len(mock.calls))
		}
		if mock.calls[0].title != AppName {
			t.Errorf("title = %q, want %q", mock.calls[0].title, AppName)
		}
		if mock.calls[0].message != tt.want {
			t.Errorf("message = %q, want %q", mock.calls[0].message, tt.want)
		}
		ResetNotifier()
	}
}

func TestDiffReady(t *testing.T) {
	mock := &mockNotification{}
	SetNotifier(mock.notify)
	defer ResetNotifier()

	if err := DiffReady("ZCL_SALES_ORDER"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := mock.calls[0].message; got != "ZCL_SALES_ORDER has a change ready for review" {
		t.Errorf("message = %q", got)
	}
}
