// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"cms/internal/domain/entity"
)

// Domain-specific errors for item persistence.
// ErrItemNotFound and ErrAccessDenied describe an expected absence and never indicate a broken backend.
var (
	// ErrItemNotFound is returned when no item matches the filter.
	ErrItemNotFound = errors.New("item not found")
	// ErrAccessDenied is returned when list access control rejects the operation.
	ErrAccessDenied = errors.New("access denied")
	// ErrDuplicateItem is returned when a create violates a unique field.
	ErrDuplicateItem = errors.New("item with the same unique value already exists")
)

// ItemRepository defines the storage operations the framework performs on list items.
// Implementations do not apply access control; that is the request context's job.
type ItemRepository interface {
	// FindOne returns the single item of listKey whose fields equal every value in where.
	FindOne(ctx context.Context, listKey string, where map[string]any) (entity.Item, error)

	// Create persists a new item of listKey and returns it with its generated id.
	Create(ctx context.Context, listKey string, data map[string]any) (entity.Item, error)
}
