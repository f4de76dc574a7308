// Package data реализует локальные операции над документами и папками.
// Каждая мутация сохраняется в локальное хранилище и ставится в очередь
// синхронизации.
package data

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/iudanet/mdkeeper/internal/client/storage"
	"github.com/iudanet/mdkeeper/internal/models"
	"github.com/iudanet/mdkeeper/internal/validation"
)

//go:generate moq -out service_mock.go . Service
//go:generate moq -out queuer_mock.go . Queuer

var (
	ErrNotFound      = errors.New("not found")
	ErrAmbiguous     = errors.New("ambiguous reference")
	ErrInvalidParent = errors.New("invalid parent folder")
)

// Queuer принимает локальные мутации для синхронизации (sync.Coordinator)
type Queuer interface {
	QueueDocumentSync(ctx context.Context, doc *models.Entity) error
	QueueFolderSync(ctx context.Context, folder *models.Entity) error
}

// Service операции над локальными документами и папками
type Service interface {
	CreateDocument(ctx context.Context, name, parentID, content string) (*models.Entity, error)
	UpdateContent(ctx context.Context, id, content string) (*models.Entity, error)
	CreateFolder(ctx context.Context, name, parentID, color string) (*models.Entity, error)
	SetColor(ctx context.Context, folderID, color string) (*models.Entity, error)
	Rename(ctx context.Context, key models.EntityKey, name string) (*models.Entity, error)
	Move(ctx context.Context, key models.EntityKey, parentID string) (*models.Entity, error)
	Delete(ctx context.Context, key models.EntityKey) error
	Get(ctx context.Context, key models.EntityKey) (*models.Entity, error)
	Resolve(ctx context.Context, typ models.EntityType, ref string) (*models.Entity, error)
	ListDocuments(ctx context.Context, parentID string, recursive bool) ([]*models.Entity, error)
	ListFolders(ctx context.Context) ([]*models.Entity, error)
}

type service struct {
	store  storage.EntityStorage
	queue  Queuer
	logger *slog.Logger
	now    func() time.Time
}

// NewService creates a new data service
func NewService(store storage.EntityStorage, queue Queuer, logger *slog.Logger) Service {
	return &service{
		store:  store,
		queue:  queue,
		logger: logger,
		now:    time.Now,
	}
}

// CreateDocument создает документ в папке parentID (пусто = корень)
func (s *service) CreateDocument(ctx context.Context, name, parentID, content string) (*models.Entity, error) {
	name, err := validation.ValidateName(name)
	if err != nil {
		return nil, err
	}
	if err := s.checkParent(ctx, parentID, ""); err != nil {
		return nil, err
	}

	doc := models.NewDocument(name, parentID, content, s.now())
	if err := s.commit(ctx, doc); err != nil {
		return nil, err
	}

	s.logger.Info("document created", slog.String("id", doc.ID), slog.String("name", doc.Name))
	return doc, nil
}

// UpdateContent заменяет текст документа. Без изменений ничего не ставится в очередь.
func (s *service) UpdateContent(ctx context.Context, id, content string) (*models.Entity, error) {
	doc, err := s.Get(ctx, models.EntityKey{ID: id, Type: models.EntityTypeDocument})
	if err != nil {
		return nil, err
	}
	if doc.Content == content {
		return doc, nil
	}

	doc.Content = content
	doc.Touch(s.now())
	if err := s.commit(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// CreateFolder создает папку
func (s *service) CreateFolder(ctx context.Context, name, parentID, color string) (*models.Entity, error) {
	name, err := validation.ValidateName(name)
	if err != nil {
		return nil, err
	}
	if err := validation.ValidateColor(color); err != nil {
		return nil, err
	}
	if err := s.checkParent(ctx, parentID, ""); err != nil {
		return nil, err
	}

	folder := models.NewFolder(name, parentID, color, s.now())
	if err := s.commit(ctx, folder); err != nil {
		return nil, err
	}

	s.logger.Info("folder created", slog.String("id", folder.ID), slog.String("name", folder.Name))
	return folder, nil
}

// SetColor меняет цвет папки
func (s *service) SetColor(ctx context.Context, folderID, color string) (*models.Entity, error) {
	if err := validation.ValidateColor(color); err != nil {
		return nil, err
	}
	return s.mutate(ctx, models.EntityKey{ID: folderID, Type: models.EntityTypeFolder}, func(e *models.Entity) bool {
		if e.Color == color {
			return false
		}
		e.Color = color
		return true
	})
}

// Rename переименовывает документ или папку
func (s *service) Rename(ctx context.Context, key models.EntityKey, name string) (*models.Entity, error) {
	name, err := validation.ValidateName(name)
	if err != nil {
		return nil, err
	}
	return s.mutate(ctx, key, func(e *models.Entity) bool {
		if e.Name == name {
			return false
		}
		e.Name = name
		return true
	})
}

// Move переносит сущность в другую папку. Папку нельзя перенести внутрь самой себя.
func (s *service) Move(ctx context.Context, key models.EntityKey, parentID string) (*models.Entity, error) {
	self := ""
	if key.Type == models.EntityTypeFolder {
		self = key.ID
	}
	if err := s.checkParent(ctx, parentID, self); err != nil {
		return nil, err
	}
	return s.mutate(ctx, key, func(e *models.Entity) bool {
		if e.ParentID == parentID {
			return false
		}
		e.ParentID = parentID
		return true
	})
}

// Delete помечает сущность удаленной. Папка удаляется вместе с содержимым.
func (s *service) Delete(ctx context.Context, key models.EntityKey) error {
	e, err := s.Get(ctx, key)
	if err != nil {
		return err
	}

	if e.Type == models.EntityTypeFolder {
		children, err := s.children(ctx, e.ID)
		if err != nil {
			return err
		}
		for _, child := range children {
			if err := s.Delete(ctx, child.Key()); err != nil {
				return err
			}
		}
	}

	e.SoftDelete(s.now())
	if err := s.commit(ctx, e); err != nil {
		return err
	}

	s.logger.Info("entity deleted", slog.String("id", e.ID), slog.String("type", string(e.Type)))
	return nil
}

// Get возвращает живую сущность, tombstone считается отсутствующей
func (s *service) Get(ctx context.Context, key models.EntityKey) (*models.Entity, error) {
	e, err := s.store.GetEntity(ctx, key)
	if errors.Is(err, storage.ErrEntityNotFound) {
		return nil, fmt.Errorf("%s %s: %w", key.Type, key.ID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", key, err)
	}
	if e.IsDeleted() {
		return nil, fmt.Errorf("%s %s: %w", key.Type, key.ID, ErrNotFound)
	}
	return e, nil
}

// Resolve находит сущность по id, уникальному префиксу id или точному имени
func (s *service) Resolve(ctx context.Context, typ models.EntityType, ref string) (*models.Entity, error) {
	if ref == "" {
		return nil, fmt.Errorf("empty %s reference: %w", typ, ErrNotFound)
	}

	if e, err := s.Get(ctx, models.EntityKey{ID: ref, Type: typ}); err == nil {
		return e, nil
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	all, err := s.store.ListEntities(ctx, typ, false)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", typ, err)
	}

	name := validation.NormalizeName(ref)
	var matches []*models.Entity
	for _, e := range all {
		if strings.HasPrefix(e.ID, ref) || e.Name == name {
			matches = append(matches, e)
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%s %q: %w", typ, ref, ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("%s %q matches %d entries: %w", typ, ref, len(matches), ErrAmbiguous)
	}
}

// ListDocuments возвращает документы папки parentID. recursive включает
// вложенные папки; parentID="" с recursive - все документы.
func (s *service) ListDocuments(ctx context.Context, parentID string, recursive bool) ([]*models.Entity, error) {
	docs, err := s.store.ListEntities(ctx, models.EntityTypeDocument, false)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	if recursive && parentID == "" {
		return docs, nil
	}

	within := map[string]bool{parentID: true}
	if recursive {
		folders, err := s.ListFolders(ctx)
		if err != nil {
			return nil, err
		}
		within = subtree(folders, parentID)
	}

	result := make([]*models.Entity, 0, len(docs))
	for _, d := range docs {
		if within[d.ParentID] {
			result = append(result, d)
		}
	}
	return result, nil
}

// subtree возвращает root и id всех вложенных в него папок
func subtree(folders []*models.Entity, root string) map[string]bool {
	children := make(map[string][]string, len(folders))
	for _, f := range folders {
		children[f.ParentID] = append(children[f.ParentID], f.ID)
	}

	within := map[string]bool{root: true}
	stack := []string{root}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, child := range children[id] {
			if !within[child] {
				within[child] = true
				stack = append(stack, child)
			}
		}
	}
	return within
}

// ListFolders возвращает живые папки
func (s *service) ListFolders(ctx context.Context) ([]*models.Entity, error) {
	folders, err := s.store.ListEntities(ctx, models.EntityTypeFolder, false)
	if err != nil {
		return nil, fmt.Errorf("failed to list folders: %w", err)
	}
	return folders, nil
}

func (s *service) mutate(ctx context.Context, key models.EntityKey, apply func(e *models.Entity) bool) (*models.Entity, error) {
	e, err := s.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if !apply(e) {
		return e, nil
	}
	e.Touch(s.now())
	if err := s.commit(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// commit сохраняет сущность и ставит ее в очередь синхронизации.
// Если поставить в очередь не удалось, сохранение откатывается:
// правка без элемента очереди никогда не дойдет до сервера.
func (s *service) commit(ctx context.Context, e *models.Entity) error {
	prev, err := s.store.GetEntity(ctx, e.Key())
	if err != nil {
		if !errors.Is(err, storage.ErrEntityNotFound) {
			return fmt.Errorf("failed to load %s: %w", e.Key(), err)
		}
		prev = nil
	}

	if err := s.store.SaveEntity(ctx, e); err != nil {
		return fmt.Errorf("failed to save %s: %w", e.Key(), err)
	}

	switch e.Type {
	case models.EntityTypeDocument:
		err = s.queue.QueueDocumentSync(ctx, e)
	case models.EntityTypeFolder:
		err = s.queue.QueueFolderSync(ctx, e)
	default:
		err = fmt.Errorf("unknown entity type %q", e.Type)
	}
	if err != nil {
		if rerr := s.rollback(ctx, e.Key(), prev); rerr != nil {
			s.logger.Error("Failed to roll back unqueued change",
				"id", e.ID,
				"type", e.Type,
				"error", rerr)
		}
		return fmt.Errorf("failed to queue %s: %w", e.Key(), err)
	}
	return nil
}

// rollback возвращает prev, nil означает, что сущности не было
func (s *service) rollback(ctx context.Context, key models.EntityKey, prev *models.Entity) error {
	if prev == nil {
		return s.store.PurgeEntity(ctx, key)
	}
	return s.store.SaveEntity(ctx, prev)
}

// checkParent: parentID пустой или живая папка, не лежащая внутри self
func (s *service) checkParent(ctx context.Context, parentID, self string) error {
	for id, depth := parentID, 0; id != ""; depth++ {
		if id == self {
			return fmt.Errorf("%w: folder cannot contain itself", ErrInvalidParent)
		}
		if depth > 256 {
			return fmt.Errorf("%w: folder tree too deep", ErrInvalidParent)
		}
		folder, err := s.Get(ctx, models.EntityKey{ID: id, Type: models.EntityTypeFolder})
		if errors.Is(err, ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrInvalidParent, id)
		}
		if err != nil {
			return err
		}
		id = folder.ParentID
	}
	return nil
}

func (s *service) children(ctx context.Context, folderID string) ([]*models.Entity, error) {
	var result []*models.Entity
	for _, typ := range []models.EntityType{models.EntityTypeFolder, models.EntityTypeDocument} {
		all, err := s.store.ListEntities(ctx, typ, false)
		if err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", typ, err)
		}
		for _, e := range all {
			if e.ParentID == folderID {
				result = append(result, e)
			}
		}
	}
	return result, nil
}

// SortByUpdated сортирует по времени изменения, новые первыми
func SortByUpdated(entities []*models.Entity) {
	sort.SliceStable(entities, func(i, j int) bool {
		return entities[i].UpdatedAt.After(entities[j].UpdatedAt)
	})
}
