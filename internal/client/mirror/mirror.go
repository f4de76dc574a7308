// Package mirror выгружает документы в каталог как markdown файлы и
// возвращает правки из этого каталога в локальное хранилище.
package mirror

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/spf13/afero"
	"golang.org/x/text/unicode/norm"

	"github.com/iudanet/mdkeeper/internal/client/data"
	"github.com/iudanet/mdkeeper/internal/models"
)

const (
	dirPerm  = fs.FileMode(0o755)
	filePerm = fs.FileMode(0o644)
	ext      = ".md"
)

// Mirror связывает каталог с локальными документами.
// Пути внутри Mirror относительные, с '/' в качестве разделителя.
type Mirror struct {
	fs     afero.Fs
	data   data.Service
	logger *slog.Logger
	dir    string

	mu      sync.Mutex
	docs    map[string]string // путь файла -> id документа
	paths   map[string]string // id документа -> путь файла
	folders map[string]string // путь каталога -> id папки
}

// New creates a mirror rooted at dir. fsys is usually afero.NewOsFs().
func New(fsys afero.Fs, dir string, svc data.Service, logger *slog.Logger) *Mirror {
	return &Mirror{
		fs:      fsys,
		dir:     dir,
		data:    svc,
		logger:  logger,
		docs:    make(map[string]string),
		paths:   make(map[string]string),
		folders: make(map[string]string),
	}
}

// Dir returns the mirror root.
func (m *Mirror) Dir() string {
	return m.dir
}

// Export выгружает все живые документы. Файлы, выгруженные ранее, но
// исчезнувшие из хранилища, удаляются. Возвращает число записанных файлов.
func (m *Mirror) Export(ctx context.Context) (int, error) {
	folders, err := m.data.ListFolders(ctx)
	if err != nil {
		return 0, err
	}
	docs, err := m.data.ListDocuments(ctx, "", true)
	if err != nil {
		return 0, err
	}

	if err := m.fs.MkdirAll(m.dir, dirPerm); err != nil {
		return 0, fmt.Errorf("create mirror dir: %w", err)
	}

	folderPaths := buildFolderPaths(folders)

	m.mu.Lock()
	defer m.mu.Unlock()

	previous := m.paths
	m.docs = make(map[string]string, len(docs))
	m.paths = make(map[string]string, len(docs))
	m.folders = make(map[string]string, len(folderPaths))
	for id, p := range folderPaths {
		m.folders[p] = id
		if err := m.fs.MkdirAll(m.abs(p), dirPerm); err != nil {
			return 0, fmt.Errorf("create folder %s: %w", p, err)
		}
	}

	// стабильный порядок для разрешения коллизий имен
	sort.Slice(docs, func(i, j int) bool { return docs[i].CreatedAt.Before(docs[j].CreatedAt) })

	written := 0
	for _, doc := range docs {
		rel := m.allocPath(folderPaths[doc.ParentID], doc)
		changed, err := m.writeDoc(rel, doc)
		if err != nil {
			return written, err
		}
		if changed {
			written++
		}
	}

	for id, rel := range previous {
		if _, owned := m.docs[rel]; owned {
			continue
		}
		if err := m.fs.Remove(m.abs(rel)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			m.logger.Warn("failed to remove stale mirror file", slog.String("path", rel), slog.Any("error", err))
		}
	}

	m.logger.Debug("mirror exported", slog.Int("documents", len(docs)), slog.Int("written", written))
	return written, nil
}

// Import читает файл rel и переносит правку в хранилище. Файл без id
// становится новым документом, после чего в него дописывается front matter.
func (m *Mirror) Import(ctx context.Context, rel string) error {
	rel = cleanRel(rel)
	if !strings.HasSuffix(rel, ext) {
		return nil
	}

	raw, err := afero.ReadFile(m.fs, m.abs(rel))
	if err != nil {
		return fmt.Errorf("read %s: %w", rel, err)
	}
	fm, body := Parse(raw)

	var doc *models.Entity
	if fm.ID != "" {
		doc, err = m.data.Get(ctx, models.EntityKey{ID: fm.ID, Type: models.EntityTypeDocument})
		if err != nil && !errors.Is(err, data.ErrNotFound) {
			return err
		}
	}

	if doc == nil {
		return m.importNew(ctx, rel, fm, body)
	}

	if doc.Content != body {
		if doc, err = m.data.UpdateContent(ctx, doc.ID, body); err != nil {
			return err
		}
	}
	if title := norm.NFC.String(fm.Title); title != "" && title != doc.Name {
		if doc, err = m.data.Rename(ctx, doc.Key(), title); err != nil {
			return err
		}
	}

	m.mu.Lock()
	m.track(rel, doc.ID)
	m.mu.Unlock()
	return nil
}

func (m *Mirror) importNew(ctx context.Context, rel string, fm FrontMatter, body string) error {
	parentID, err := m.ensureFolder(ctx, path.Dir(rel))
	if err != nil {
		return err
	}

	name := fm.Title
	if name == "" {
		name = strings.TrimSuffix(path.Base(rel), ext)
	}

	doc, err := m.data.CreateDocument(ctx, norm.NFC.String(name), parentID, body)
	if err != nil {
		return err
	}

	m.logger.Info("mirror file imported", slog.String("path", rel), slog.String("id", doc.ID))

	m.mu.Lock()
	defer m.mu.Unlock()
	_, err = m.writeDoc(rel, doc)
	return err
}

// ensureFolder создает недостающие папки для каталога rel
func (m *Mirror) ensureFolder(ctx context.Context, rel string) (string, error) {
	if rel == "." || rel == "" {
		return "", nil
	}

	m.mu.Lock()
	id, ok := m.folders[rel]
	m.mu.Unlock()
	if ok {
		return id, nil
	}

	parentID, err := m.ensureFolder(ctx, path.Dir(rel))
	if err != nil {
		return "", err
	}

	folder, err := m.data.CreateFolder(ctx, norm.NFC.String(path.Base(rel)), parentID, "")
	if err != nil {
		return "", err
	}

	m.mu.Lock()
	m.folders[rel] = folder.ID
	m.mu.Unlock()
	return folder.ID, nil
}

// Remove вызывается при удалении файла. Удаление не распространяется на
// документ: файл будет выгружен снова при следующем Export.
func (m *Mirror) Remove(rel string) {
	rel = cleanRel(rel)

	m.mu.Lock()
	id, ok := m.docs[rel]
	if ok {
		delete(m.docs, rel)
		delete(m.paths, id)
	}
	m.mu.Unlock()

	if ok {
		m.logger.Info("mirror file removed, document kept", slog.String("path", rel), slog.String("id", id))
	}
}

// writeDoc пишет файл, если его содержимое отличается. Требует m.mu.
func (m *Mirror) writeDoc(rel string, doc *models.Entity) (bool, error) {
	m.track(rel, doc.ID)

	content, err := Render(doc)
	if err != nil {
		return false, err
	}

	abs := m.abs(rel)
	if existing, err := afero.ReadFile(m.fs, abs); err == nil && bytes.Equal(existing, content) {
		return false, nil
	}

	if err := m.fs.MkdirAll(filepath.Dir(abs), dirPerm); err != nil {
		return false, fmt.Errorf("create dir for %s: %w", rel, err)
	}
	if err := afero.WriteFile(m.fs, abs, content, filePerm); err != nil {
		return false, fmt.Errorf("write %s: %w", rel, err)
	}
	return true, nil
}

// allocPath выбирает имя файла в каталоге dir. Требует m.mu.
func (m *Mirror) allocPath(dir string, doc *models.Entity) string {
	base := strings.TrimSuffix(doc.Name, ext)
	rel := path.Join(dir, base+ext)
	if owner, taken := m.docs[rel]; taken && owner != doc.ID {
		rel = path.Join(dir, fmt.Sprintf("%s (%s)%s", base, shortID(doc.ID), ext))
	}
	return rel
}

func (m *Mirror) track(rel, id string) {
	if old, ok := m.paths[id]; ok && old != rel {
		delete(m.docs, old)
	}
	m.docs[rel] = id
	m.paths[id] = rel
}

// PathOf returns the mirrored path of a document.
func (m *Mirror) PathOf(id string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rel, ok := m.paths[id]
	return rel, ok
}

func (m *Mirror) abs(rel string) string {
	return filepath.Join(m.dir, filepath.FromSlash(rel))
}

// buildFolderPaths возвращает путь каталога для каждой папки
func buildFolderPaths(folders []*models.Entity) map[string]string {
	byID := make(map[string]*models.Entity, len(folders))
	for _, f := range folders {
		byID[f.ID] = f
	}

	paths := make(map[string]string, len(folders))
	var resolve func(id string, depth int) string
	resolve = func(id string, depth int) string {
		if p, ok := paths[id]; ok {
			return p
		}
		f, ok := byID[id]
		if !ok || depth > len(folders) {
			return ""
		}
		p := path.Join(resolve(f.ParentID, depth+1), f.Name)
		paths[id] = p
		return p
	}

	for _, f := range folders {
		resolve(f.ID, 0)
	}
	return paths
}

func cleanRel(rel string) string {
	return norm.NFC.String(path.Clean(filepath.ToSlash(rel)))
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
