package mirror

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

const (
	// watchTick период проверки отложенных событий
	watchTick = 250 * time.Millisecond
	// DefaultQuiet пауза после последней записи в файл перед импортом
	DefaultQuiet = 500 * time.Millisecond
)

// Watch следит за каталогом и импортирует измененные .md файлы. Частые
// записи в один файл схлопываются: импорт идет после паузы quiet.
// refresh запускает Export (например, после pull). Блокирует до отмены ctx.
// Работает только поверх afero.NewOsFs.
func (m *Mirror) Watch(ctx context.Context, quiet time.Duration, refresh <-chan struct{}) error {
	if quiet <= 0 {
		quiet = DefaultQuiet
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := os.MkdirAll(m.dir, dirPerm); err != nil {
		return fmt.Errorf("creating mirror dir: %w", err)
	}
	if err := addRecursive(watcher, m.dir); err != nil {
		return fmt.Errorf("watching mirror dir: %w", err)
	}

	m.logger.Info("mirror watcher started", slog.String("dir", m.dir))

	pending := make(map[string]time.Time)
	ticker := time.NewTicker(watchTick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-refresh:
			if _, err := m.Export(ctx); err != nil {
				m.logger.Warn("mirror export failed", slog.Any("error", err))
			}

		case event, ok := <-watcher.Events:
			if !ok {
				return fmt.Errorf("fsnotify events channel closed unexpectedly")
			}

			rel, ok := m.relative(event.Name)
			if !ok || ignored(rel) {
				continue
			}

			if event.Has(fsnotify.Create) || event.Has(fsnotify.Write) {
				if info, err := os.Lstat(event.Name); err == nil && info.IsDir() {
					if info.Mode()&os.ModeSymlink == 0 {
						_ = addRecursive(watcher, event.Name)
					}
					continue
				}
				pending[rel] = time.Now()
			}

			if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				delete(pending, rel)
				_ = watcher.Remove(event.Name)
				m.Remove(rel)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return fmt.Errorf("fsnotify errors channel closed unexpectedly")
			}
			m.logger.Warn("watcher error", slog.Any("error", err))

		case now := <-ticker.C:
			for rel, at := range pending {
				if now.Sub(at) < quiet {
					continue
				}
				delete(pending, rel)
				if err := m.Import(ctx, rel); err != nil {
					m.logger.Warn("mirror import failed", slog.String("path", rel), slog.Any("error", err))
				}
			}
		}
	}
}

func (m *Mirror) relative(abs string) (string, bool) {
	rel, err := filepath.Rel(m.dir, abs)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return "", false
	}
	return cleanRel(rel), true
}

// ignored отсекает скрытые и временные файлы редакторов
func ignored(rel string) bool {
	for _, part := range strings.Split(rel, "/") {
		if strings.HasPrefix(part, ".") {
			return true
		}
	}
	base := filepath.Base(rel)
	return strings.HasSuffix(base, "~") || strings.HasSuffix(base, ".swp") || strings.HasSuffix(base, ".tmp")
}

func addRecursive(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if p != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		return w.Add(p)
	})
}
