package postgres

import (
	"testing"

	"cms/internal/core"
	"cms/internal/domain/entity"
	"cms/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestToColumns(t *testing.T) {
	columns := toColumns(map[string]any{"email": "boris@keystonejs.com", "isAdmin": true})

	assert.Equal(t, map[string]any{"email": "boris@keystonejs.com", "is_admin": true}, columns)
}

func TestToItem(t *testing.T) {
	list := core.ListConfig{Fields: map[string]core.FieldConfig{
		"name":    core.Text(),
		"isAdmin": core.Checkbox(),
	}}
	id := uuid.New()

	item := toItem(list, map[string]any{
		"id":       [16]byte(id),
		"name":     []byte("Boris Bozic"),
		"is_admin": false,
		"ignored":  "column without a field",
	})

	assert.Equal(t, entity.Item{"id": id.String(), "name": "Boris Bozic", "isAdmin": false}, item)
}

func TestTranslateError(t *testing.T) {
	assert.NoError(t, translateError(nil, "find User"))
	assert.ErrorIs(t, translateError(gorm.ErrRecordNotFound, "find User"), repository.ErrItemNotFound)
	assert.ErrorIs(t, translateError(gorm.ErrDuplicatedKey, "create User"), repository.ErrDuplicateItem)
	assert.ErrorIs(t,
		translateError(errors.New(`ERROR: duplicate key value violates unique constraint (SQLSTATE 23505)`), "create User"),
		repository.ErrDuplicateItem)

	err := translateError(errors.New("connection refused"), "find User")
	assert.Contains(t, err.Error(), "connection refused")
	assert.NotErrorIs(t, err, repository.ErrItemNotFound)
}
