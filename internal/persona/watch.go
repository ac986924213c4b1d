package persona

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watch reloads the registry whenever the personas file changes on disk.
// The watch is on the containing directory: editors and config pushes
// usually replace the file rather than write it in place.
func (r *Registry) Watch(ctx context.Context, logger *zap.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	if err := watcher.Add(filepath.Dir(r.path)); err != nil {
		watcher.Close()
		return err
	}

	go func() {
		defer watcher.Close()

		target := filepath.Clean(r.path)
		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}

				if err := r.Reload(); err != nil {
					logger.Error("Failed to reload personas, keeping previous set",
						zap.String("path", r.path),
						zap.Error(err),
					)
					continue
				}
				logger.Info("Personas reloaded", zap.String("path", r.path))

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("Personas watcher error", zap.Error(err))
			}
		}
	}()

	return nil
}
