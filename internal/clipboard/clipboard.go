// Package clipboard copies text (diffs, generated source) to the system clipboard.
package clipboard

import (
	"fmt"
	"sync"

	"golang.design/x/clipboard"

	"github.com/abapcodestudio/codestudio/internal/logger"
)

var (
	mu          sync.Mutex
	initialized bool

	// Swappable for tests; the real clipboard needs a display.
	initFn  = clipboard.Init
	writeFn = func(b []byte) { clipboard.Write(clipboard.FmtText, b) }
	readFn  = func() []byte { return clipboard.Read(clipboard.FmtText) }
)

// Init initializes the clipboard. Safe to call multiple times.
func Init() error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked()
}

func initLocked() error {
	if initialized {
		return nil
	}
	if err := initFn(); err != nil {
		logger.WithComponent("clipboard").Debug("init failed", "error", err)
		return fmt.Errorf("failed to initialize clipboard: %w", err)
	}
	initialized = true
	return nil
}

// WriteText places text on the clipboard.
func WriteText(text string) error {
	mu.Lock()
	defer mu.Unlock()

	if err := initLocked(); err != nil {
		return err
	}
	writeFn([]byte(text))
	logger.WithComponent("clipboard").Debug("copied text", "bytes", len(text))
	return nil
}

// ReadText returns the clipboard's text content.
func ReadText() (string, error) {
	mu.Lock()
	defer mu.Unlock()

	if err := initLocked(); err != nil {
		return "", err
	}
	return string(readFn()), nil
}
