package postgres

import (
	"context"

	"cms/internal/core"
	"cms/internal/domain/entity"
	"cms/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// itemRepository implements repository.ItemRepository with one table per list
// and one snake_cased column per field. Tables are managed outside the application.
type itemRepository struct {
	db    *gorm.DB
	lists map[string]core.ListConfig
}

// NewItemRepository is the constructor for itemRepository.
func NewItemRepository(db *gorm.DB, lists map[string]core.ListConfig) repository.ItemRepository {
	return &itemRepository{
		db:    db,
		lists: lists,
	}
}

// FindOne returns the single row of the list's table matching every where value.
func (repo *itemRepository) FindOne(ctx context.Context, listKey string, where map[string]any) (entity.Item, error) {
	list, ok := repo.lists[listKey]
	if !ok {
		return nil, errors.Errorf("unknown list %q", listKey)
	}

	row := map[string]any{}
	err := repo.db.WithContext(ctx).
		Table(list.TableName(listKey)).
		Where(toColumns(where)).
		Take(&row).Error
	if err != nil {
		return nil, translateError(err, "find "+listKey)
	}
	if len(row) == 0 {
		return nil, repository.ErrItemNotFound
	}

	return toItem(list, row), nil
}

// Create inserts a row with a generated uuid primary key.
func (repo *itemRepository) Create(ctx context.Context, listKey string, data map[string]any) (entity.Item, error) {
	list, ok := repo.lists[listKey]
	if !ok {
		return nil, errors.Errorf("unknown list %q", listKey)
	}

	id := uuid.NewString()
	row := toColumns(data)
	row[entity.FieldID] = id

	if err := repo.db.WithContext(ctx).Table(list.TableName(listKey)).Create(row).Error; err != nil {
		return nil, translateError(err, "create "+listKey)
	}

	item := entity.Item(data).Clone()
	item[entity.FieldID] = id

	return item, nil
}

func toColumns(values map[string]any) map[string]any {
	columns := make(map[string]any, len(values)+1)
	for key, value := range values {
		columns[core.SnakeCase(key)] = value
	}

	return columns
}

func toItem(list core.ListConfig, row map[string]any) entity.Item {
	item := entity.Item{entity.FieldID: normalizeValue(row[entity.FieldID])}
	for key := range list.Fields {
		if value, ok := row[core.SnakeCase(key)]; ok {
			item[key] = normalizeValue(value)
		}
	}

	return item
}

// normalizeValue converts driver representations into plain Go values.
func normalizeValue(v any) any {
	switch value := v.(type) {
	case []byte:
		return string(value)
	case [16]byte:
		return uuid.UUID(value).String()
	case uuid.UUID:
		return value.String()
	default:
		return value
	}
}
