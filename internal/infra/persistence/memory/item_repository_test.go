package memory

import (
	"context"
	"testing"

	"cms/internal/core"
	"cms/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo() *ItemRepository {
	return NewItemRepository(map[string]core.ListConfig{
		"User": {Fields: map[string]core.FieldConfig{
			"name":  core.Text(),
			"email": core.Text(core.Unique()),
		}},
	})
}

func TestItemRepository_CreateAndFind(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	created, err := repo.Create(ctx, "User", map[string]any{"name": "Boris Bozic", "email": "boris@keystonejs.com"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID())

	byEmail, err := repo.FindOne(ctx, "User", map[string]any{"email": "boris@keystonejs.com"})
	require.NoError(t, err)
	assert.Equal(t, created, byEmail)

	byID, err := repo.FindOne(ctx, "User", map[string]any{"id": created.ID()})
	require.NoError(t, err)
	assert.Equal(t, "Boris Bozic", byID.String("name"))
}

func TestItemRepository_ReturnsCopies(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	created, err := repo.Create(ctx, "User", map[string]any{"name": "Jed Watson"})
	require.NoError(t, err)
	created["name"] = "changed"

	found, err := repo.FindOne(ctx, "User", map[string]any{"id": created.ID()})
	require.NoError(t, err)
	assert.Equal(t, "Jed Watson", found.String("name"))
}

func TestItemRepository_NotFound(t *testing.T) {
	repo := newTestRepo()

	_, err := repo.FindOne(context.Background(), "User", map[string]any{"email": "nobody@keystonejs.com"})
	assert.ErrorIs(t, err, repository.ErrItemNotFound)

	_, err = repo.FindOne(context.Background(), "Post", map[string]any{"id": "1"})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrItemNotFound)
}

func TestItemRepository_DuplicateUnique(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	_, err := repo.Create(ctx, "User", map[string]any{"email": "bad@keystonejs.com"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, "User", map[string]any{"email": "bad@keystonejs.com"})
	assert.ErrorIs(t, err, repository.ErrDuplicateItem)
}

func TestItemRepository_Delete(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	created, err := repo.Create(ctx, "User", map[string]any{"name": "Boris Bozic"})
	require.NoError(t, err)

	assert.True(t, repo.Delete(ctx, "User", created.ID()))
	assert.False(t, repo.Delete(ctx, "User", created.ID()))

	_, err = repo.FindOne(ctx, "User", map[string]any{"id": created.ID()})
	assert.ErrorIs(t, err, repository.ErrItemNotFound)
}
