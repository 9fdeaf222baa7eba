// Package memory is an in-process item store for development and tests.
package memory

import (
	"context"
	"sync"

	"cms/internal/core"
	"cms/internal/domain/entity"
	"cms/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ItemRepository keeps every list's items in insertion order.
type ItemRepository struct {
	mu    sync.RWMutex
	lists map[string]core.ListConfig
	items map[string][]entity.Item
}

// NewItemRepository is the constructor for the in-memory ItemRepository.
func NewItemRepository(lists map[string]core.ListConfig) *ItemRepository {
	return &ItemRepository{
		lists: lists,
		items: make(map[string][]entity.Item, len(lists)),
	}
}

// FindOne returns a copy of the first item whose fields equal every where value.
func (repo *ItemRepository) FindOne(_ context.Context, listKey string, where map[string]any) (entity.Item, error) {
	if _, ok := repo.lists[listKey]; !ok {
		return nil, errors.Errorf("unknown list %q", listKey)
	}

	repo.mu.RLock()
	defer repo.mu.RUnlock()

	for _, item := range repo.items[listKey] {
		if matches(item, where) {
			return item.Clone(), nil
		}
	}

	return nil, repository.ErrItemNotFound
}

// Create stores a copy of data under a generated uuid, rejecting duplicate unique values.
func (repo *ItemRepository) Create(_ context.Context, listKey string, data map[string]any) (entity.Item, error) {
	list, ok := repo.lists[listKey]
	if !ok {
		return nil, errors.Errorf("unknown list %q", listKey)
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()

	for name, field := range list.Fields {
		value, ok := data[name]
		if !field.IsUnique() || !ok || value == nil {
			continue
		}
		for _, existing := range repo.items[listKey] {
			if existing[name] == value {
				return nil, errors.Wrapf(repository.ErrDuplicateItem, "%s.%s", listKey, name)
			}
		}
	}

	item := entity.Item(data).Clone()
	item[entity.FieldID] = uuid.NewString()
	repo.items[listKey] = append(repo.items[listKey], item)

	return item.Clone(), nil
}

// Delete removes the item with id. It reports whether an item was removed.
func (repo *ItemRepository) Delete(_ context.Context, listKey, id string) bool {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	items := repo.items[listKey]
	for i, item := range items {
		if item.ID() == id {
			repo.items[listKey] = append(items[:i:i], items[i+1:]...)

			return true
		}
	}

	return false
}

func matches(item entity.Item, where map[string]any) bool {
	for key, want := range where {
		if item[key] != want {
			return false
		}
	}

	return true
}
