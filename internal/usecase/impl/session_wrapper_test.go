package impl

import (
	"context"
	"testing"

	"cms/internal/domain/entity"
	"cms/internal/domain/repository"
	mockCore "cms/internal/mocks/core"
	mockRepo "cms/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type hookRecorder struct {
	stages []string
	errs   []error
}

func (r *hookRecorder) record(_ context.Context, stage string, err error) {
	r.stages = append(r.stages, stage)
	r.errs = append(r.errs, err)
}

func TestSessionWrapper_Get_Hydrates(t *testing.T) {
	repo := mockRepo.NewMockItemRepository(t)
	base := mockCore.NewMockSessionStrategy(t)
	hooks := &hookRecorder{}
	wrapper := NewSessionWrapper(base, testAuthConfig(), testLogger(), WithHydrationErrorHook(hooks.record))
	kctx := newTestContext(t, repo, wrapper)
	ctx := context.Background()

	base.EXPECT().Get(ctx, kctx).Return(&entity.Session{ListKey: testList, ItemID: "1"}, nil)
	repo.EXPECT().FindOne(mock.Anything, testList, map[string]any{"id": "1"}).
		Return(entity.Item{"id": "1", "name": "Boris Bozic", "email": "boris@keystonejs.com"}, nil)

	session, err := wrapper.Get(ctx, kctx)

	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, testList, session.ListKey)
	assert.Equal(t, "1", session.ItemID)
	assert.Equal(t, map[string]any{"id": "1", "name": "Boris Bozic"}, session.Data)
	assert.Empty(t, hooks.stages)
}

func TestSessionWrapper_Get_ExpectedAbsence(t *testing.T) {
	tests := []struct {
		name    string
		session *entity.Session
		setup   func(repo *mockRepo.MockItemRepository)
	}{
		{name: "no base session"},
		{name: "no item id", session: &entity.Session{ListKey: testList}},
		{name: "other list", session: &entity.Session{ListKey: "Post", ItemID: "1"}},
		{
			name:    "deleted item",
			session: &entity.Session{ListKey: testList, ItemID: "9"},
			setup: func(repo *mockRepo.MockItemRepository) {
				repo.EXPECT().FindOne(mock.Anything, testList, map[string]any{"id": "9"}).
					Return(nil, repository.ErrItemNotFound)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mockRepo.NewMockItemRepository(t)
			if tt.setup != nil {
				tt.setup(repo)
			}
			base := mockCore.NewMockSessionStrategy(t)
			hooks := &hookRecorder{}
			wrapper := NewSessionWrapper(base, testAuthConfig(), testLogger(), WithHydrationErrorHook(hooks.record))
			kctx := newTestContext(t, repo, wrapper)

			base.EXPECT().Get(mock.Anything, kctx).Return(tt.session, nil)

			session, err := wrapper.Get(context.Background(), kctx)

			require.NoError(t, err)
			assert.Nil(t, session)
			assert.Empty(t, hooks.stages)
		})
	}
}

func TestSessionWrapper_Get_UnexpectedFailuresReachHook(t *testing.T) {
	t.Run("base", func(t *testing.T) {
		base := mockCore.NewMockSessionStrategy(t)
		hooks := &hookRecorder{}
		wrapper := NewSessionWrapper(base, testAuthConfig(), testLogger(), WithHydrationErrorHook(hooks.record))
		kctx := newTestContext(t, mockRepo.NewMockItemRepository(t), wrapper)

		base.EXPECT().Get(mock.Anything, kctx).Return(nil, errors.New("bad token signature"))

		session, err := wrapper.Get(context.Background(), kctx)

		require.NoError(t, err)
		assert.Nil(t, session)
		assert.Equal(t, []string{"base"}, hooks.stages)
	})

	t.Run("hydrate", func(t *testing.T) {
		repo := mockRepo.NewMockItemRepository(t)
		base := mockCore.NewMockSessionStrategy(t)
		hooks := &hookRecorder{}
		wrapper := NewSessionWrapper(base, testAuthConfig(), testLogger(), WithHydrationErrorHook(hooks.record))
		kctx := newTestContext(t, repo, wrapper)

		base.EXPECT().Get(mock.Anything, kctx).Return(&entity.Session{ListKey: testList, ItemID: "1"}, nil)
		repo.EXPECT().FindOne(mock.Anything, testList, mock.Anything).Return(nil, errors.New("connection reset"))

		session, err := wrapper.Get(context.Background(), kctx)

		require.NoError(t, err)
		assert.Nil(t, session)
		require.Equal(t, []string{"hydrate"}, hooks.stages)
		assert.Contains(t, hooks.errs[0].Error(), "connection reset")
	})
}

func TestSessionWrapper_StartAndEndDelegate(t *testing.T) {
	base := mockCore.NewMockSessionStrategy(t)
	wrapper := NewSessionWrapper(base, testAuthConfig(), testLogger())
	kctx := newTestContext(t, mockRepo.NewMockItemRepository(t), wrapper)
	ctx := context.Background()
	data := entity.SessionData{ListKey: testList, ItemID: "1"}

	base.EXPECT().Start(ctx, kctx, data).Return("token-1", nil)
	base.EXPECT().End(ctx, kctx).Return(nil)

	token, err := wrapper.Start(ctx, kctx, data)
	require.NoError(t, err)
	assert.Equal(t, "token-1", token)

	assert.NoError(t, wrapper.End(ctx, kctx))
}
