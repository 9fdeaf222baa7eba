package impl

import (
	"context"
	"testing"

	"cms/internal/domain/entity"
	"cms/internal/domain/repository"
	mockRepo "cms/internal/mocks/repository"
	mockSvc "cms/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestValidator(t *testing.T, secret *mockSvc.MockSecretField) *secretValidator {
	t.Helper()

	secret.EXPECT().GenerateHash(mock.Anything, timingPlaceholder).Return("dummy-hash", nil).Once()

	validator, err := NewSecretValidator(testAuthConfig(), secret, testLogger())
	require.NoError(t, err)

	return validator.(*secretValidator)
}

func TestSecretValidator_Validate_Match(t *testing.T) {
	repo := mockRepo.NewMockItemRepository(t)
	secret := mockSvc.NewMockSecretField(t)
	validator := newTestValidator(t, secret)
	kctx := newTestContext(t, repo, nil).Sudo()
	ctx := context.Background()

	boris := entity.Item{"id": "1", "email": "boris@keystonejs.com", "password": "boris-hash"}
	repo.EXPECT().FindOne(mock.Anything, testList, map[string]any{"email": "boris@keystonejs.com"}).Return(boris, nil)
	secret.EXPECT().Compare(mock.Anything, "correctbattery", "boris-hash").Return(true, nil).Once()

	item, err := validator.Validate(ctx, kctx, "boris@keystonejs.com", "correctbattery")

	require.NoError(t, err)
	assert.Equal(t, "1", item.ID())
}

func TestSecretValidator_Validate_Mismatch(t *testing.T) {
	repo := mockRepo.NewMockItemRepository(t)
	secret := mockSvc.NewMockSecretField(t)
	validator := newTestValidator(t, secret)
	kctx := newTestContext(t, repo, nil).Sudo()

	boris := entity.Item{"id": "1", "email": "boris@keystonejs.com", "password": "boris-hash"}
	repo.EXPECT().FindOne(mock.Anything, testList, mock.Anything).Return(boris, nil)
	secret.EXPECT().Compare(mock.Anything, "incorrectbattery", "boris-hash").Return(false, nil).Once()

	item, err := validator.Validate(context.Background(), kctx, "boris@keystonejs.com", "incorrectbattery")

	require.NoError(t, err)
	assert.Nil(t, item)
}

func TestSecretValidator_Validate_UnknownIdentityComparesPlaceholder(t *testing.T) {
	repo := mockRepo.NewMockItemRepository(t)
	secret := mockSvc.NewMockSecretField(t)
	validator := newTestValidator(t, secret)
	kctx := newTestContext(t, repo, nil).Sudo()

	repo.EXPECT().FindOne(mock.Anything, testList, mock.Anything).Return(nil, repository.ErrItemNotFound)
	// The miss path pays for exactly one comparison, like the wrong-secret path.
	secret.EXPECT().Compare(mock.Anything, "correctbattery", "dummy-hash").Return(false, nil).Once()

	item, err := validator.Validate(context.Background(), kctx, "nobody@keystonejs.com", "correctbattery")

	require.NoError(t, err)
	assert.Nil(t, item)
}

func TestSecretValidator_Validate_MissingHashComparesPlaceholder(t *testing.T) {
	repo := mockRepo.NewMockItemRepository(t)
	secret := mockSvc.NewMockSecretField(t)
	validator := newTestValidator(t, secret)
	kctx := newTestContext(t, repo, nil).Sudo()

	repo.EXPECT().FindOne(mock.Anything, testList, mock.Anything).
		Return(entity.Item{"id": "3", "email": "bad@keystonejs.com"}, nil)
	secret.EXPECT().Compare(mock.Anything, "incorrectbattery", "dummy-hash").Return(false, nil).Once()

	item, err := validator.Validate(context.Background(), kctx, "bad@keystonejs.com", "incorrectbattery")

	require.NoError(t, err)
	assert.Nil(t, item)
}

func TestSecretValidator_Validate_RepositoryError(t *testing.T) {
	repo := mockRepo.NewMockItemRepository(t)
	secret := mockSvc.NewMockSecretField(t)
	validator := newTestValidator(t, secret)
	kctx := newTestContext(t, repo, nil).Sudo()

	repo.EXPECT().FindOne(mock.Anything, testList, mock.Anything).Return(nil, errors.New("connection refused"))

	item, err := validator.Validate(context.Background(), kctx, "boris@keystonejs.com", "correctbattery")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
	assert.Nil(t, item)
}

func TestSecretValidator_Validate_CompareError(t *testing.T) {
	repo := mockRepo.NewMockItemRepository(t)
	secret := mockSvc.NewMockSecretField(t)
	validator := newTestValidator(t, secret)
	kctx := newTestContext(t, repo, nil).Sudo()

	repo.EXPECT().FindOne(mock.Anything, testList, mock.Anything).
		Return(entity.Item{"id": "1", "password": "corrupt"}, nil)
	secret.EXPECT().Compare(mock.Anything, "correctbattery", "corrupt").Return(false, errors.New("malformed hash"))

	item, err := validator.Validate(context.Background(), kctx, "boris@keystonejs.com", "correctbattery")

	assert.Error(t, err)
	assert.Nil(t, item)
}

func TestNewSecretValidator_Errors(t *testing.T) {
	_, err := NewSecretValidator(testAuthConfig(), nil, testLogger())
	assert.Error(t, err)

	secret := mockSvc.NewMockSecretField(t)
	secret.EXPECT().GenerateHash(mock.Anything, timingPlaceholder).Return("", errors.New("boom"))

	_, err = NewSecretValidator(testAuthConfig(), secret, testLogger())
	assert.Error(t, err)
}
