package credential

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reports token changes made to the credential file by other processes,
// such as `codestudio login` run in another terminal. The directory is watched
// rather than the file so atomic renames and first-time creation are seen; it
// is created if missing.
//
// The returned channel receives the new token each time it differs from the
// previous value, and is closed when ctx is done or the watcher fails.
func (s *Store) Watch(ctx context.Context, log *slog.Logger) (<-chan string, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		w.Close()
		return nil, err
	}
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, err
	}

	last, _ := s.Load()
	out := make(chan string, 1)

	go func() {
		defer close(out)
		defer w.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != filepath.Clean(s.path) {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
					continue
				}
				token, err := s.Load()
				if err != nil {
					if log != nil {
						log.Debug("credential reload failed", "error", err)
					}
					continue
				}
				if token == last {
					continue
				}
				last = token
				select {
				case out <- token:
				case <-ctx.Done():
					return
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				if log != nil {
					log.Warn("credential watcher error", "error", err)
				}
			}
		}
	}()

	return out, nil
}
