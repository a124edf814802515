package ingest

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/solargrid-io/lease-tracker/constants"
)

type WatchConfig struct {
	Roots       []string            // directories to watch (recursive)
	AllowedExts map[string]struct{} // lowercased sans '.'; nil -> constants.AllowedExtensions
	InitialScan bool                // if true, walk roots and emit existing files
	Debounce    time.Duration       // coalesce rapid update/rename bursts
}

// StartWatcher emits paths of lease documents created or updated under the
// configured roots. The channels close when ctx is cancelled.
func StartWatcher(ctx context.Context, cfg WatchConfig) (<-chan string, <-chan error, error) {
	if len(cfg.Roots) == 0 {
		slog.Error("watcher start failed: no roots provided")
		return nil, nil, errors.New("no roots provided")
	}
	evCh := make(chan string, 256)
	errCh := make(chan error, 1)

	w, err := fsnotify.NewWatcher()
	if err != nil {
		slog.Error("failed to create fsnotify watcher", "error", err)
		return nil, nil, err
	}

	watchable := func(path string) bool {
		ext := constants.NormalizeExt(filepath.Ext(path))
		if cfg.AllowedExts != nil {
			_, ok := cfg.AllowedExts[ext]
			return ok
		}
		return AllowedExt(ext)
	}

	addDir := func(root string) error {
		return filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				return walkErr
			}
			if d.IsDir() {
				return w.Add(path)
			}
			if cfg.InitialScan && watchable(path) {
				select {
				case evCh <- path:
				default:
				}
			}
			return nil
		})
	}
	for _, r := range cfg.Roots {
		if err := addDir(r); err != nil {
			slog.Error("failed to add root directory", "root", r, "error", err)
			_ = w.Close()
			return nil, nil, err
		}
	}

	go func() {
		defer close(evCh)
		defer close(errCh)
		defer w.Close()

		var timer *time.Timer
		pending := map[string]struct{}{}

		sendPending := func() {
			for p := range pending {
				select {
				case evCh <- p:
				default:
				}
				delete(pending, p)
			}
		}

		for {
			select {
			case <-ctx.Done():
				return
			case e, ok := <-w.Events:
				if !ok {
					return
				}
				if e.Op.Has(fsnotify.Create) {
					// a new directory needs its own watch; Add on a
					// plain file is a harmless no-op for our purposes
					if err := w.Add(e.Name); err != nil {
						slog.Debug("watcher add skipped", "path", e.Name, "error", err)
					}
				}

				if watchable(e.Name) && e.Op.Has(fsnotify.Create|fsnotify.Write|fsnotify.Rename) {
					pending[e.Name] = struct{}{}
					if cfg.Debounce > 0 {
						if timer != nil {
							timer.Stop()
						}
						timer = time.AfterFunc(cfg.Debounce, sendPending)
					} else {
						sendPending()
					}
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				slog.Error("watcher error", "error", err)
				select {
				case errCh <- err:
				default:
				}
			}
		}
	}()

	return evCh, errCh, nil
}
