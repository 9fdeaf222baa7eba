package graphql

import (
	"context"
	"testing"

	"cms/internal/core"
	"cms/internal/domain/entity"
	domainerrors "cms/internal/domain/errors"
	"cms/internal/domain/service"
	mockRepo "cms/internal/mocks/repository"
	mockSvc "cms/internal/mocks/service"
	mockUsecase "cms/internal/mocks/usecase"
	"cms/internal/usecase"

	"github.com/graphql-go/graphql"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testAuthConfig() entity.AuthConfig {
	return entity.AuthConfig{
		ListKey:       "User",
		IdentityField: "email",
		SecretField:   "password",
		SessionData:   "id name",
	}
}

func testLists(secret service.SecretField) map[string]core.ListConfig {
	return map[string]core.ListConfig{
		"User": {
			Fields: map[string]core.FieldConfig{
				"name":     core.Text(),
				"email":    core.Text(core.Unique(), core.Required()),
				"password": core.Password(secret),
				"isAdmin":  core.Checkbox(core.Unique()),
			},
		},
	}
}

func factoryReturning(uc usecase.AuthUsecase) UsecaseFactory {
	return func(service.SecretField) (usecase.AuthUsecase, error) {
		return uc, nil
	}
}

func TestNamesFor(t *testing.T) {
	assert.Equal(t, Names{
		AuthenticateWithPassword: "authenticateUserWithPassword",
		Result:                   "UserAuthenticationWithPasswordResult",
		Success:                  "UserAuthenticationWithPasswordSuccess",
		Failure:                  "UserAuthenticationWithPasswordFailure",
	}, NamesFor("User"))
}

func TestAuthExtension_InvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*entity.AuthConfig)
		wantMsg string
	}{
		{
			name:   "identity field not unique",
			mutate: func(c *entity.AuthConfig) { c.IdentityField = "name" },
			wantMsg: "createAuth was called with an identityField of name on the list User " +
				"but that field doesn't allow being searched uniquely with a String or ID. " +
				"You should likely add `isIndexed: 'unique'` to the field at User.name",
		},
		{
			name:    "identity field not a string",
			mutate:  func(c *entity.AuthConfig) { c.IdentityField = "isAdmin" },
			wantMsg: "identityField of isAdmin on the list User",
		},
		{
			name:   "secret field without secret capability",
			mutate: func(c *entity.AuthConfig) { c.SecretField = "name" },
			wantMsg: `A createAuth() invocation for the "User" list specifies "name" as its secretField, ` +
				"but the field type doesn't implement the required functionality.",
		},
		{
			name:    "session data syntax error",
			mutate:  func(c *entity.AuthConfig) { c.SessionData = "id {" },
			wantMsg: "The query to get session data has a syntax error, the sessionData option in your createAuth usage is likely incorrect",
		},
		{
			name:    "session data validation error",
			mutate:  func(c *entity.AuthConfig) { c.SessionData = "id nickname" },
			wantMsg: "The query to get session data has validation errors, the sessionData option in your createAuth usage is likely incorrect",
		},
		{
			name:    "unknown list",
			mutate:  func(c *entity.AuthConfig) { c.ListKey = "Person" },
			wantMsg: `list "Person" is not part of the schema`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authCfg := testAuthConfig()
			tt.mutate(&authCfg)

			_, err := core.BuildSchema(core.Config{
				Lists:               testLists(mockSvc.NewMockSecretField(t)),
				ExtendGraphqlSchema: []core.SchemaExtension{NewAuthExtension(authCfg, factoryReturning(nil))},
			})

			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.wantMsg)
			assert.Contains(t, err.Error(), `schema extension "auth"`)
		})
	}
}

func TestAuthExtension_FactoryReceivesSecretField(t *testing.T) {
	secret := mockSvc.NewMockSecretField(t)
	var got service.SecretField

	_, err := core.BuildSchema(core.Config{
		Lists: testLists(secret),
		ExtendGraphqlSchema: []core.SchemaExtension{NewAuthExtension(testAuthConfig(),
			func(s service.SecretField) (usecase.AuthUsecase, error) {
				got = s

				return mockUsecase.NewMockAuthUsecase(t), nil
			})},
	})

	require.NoError(t, err)
	assert.Same(t, secret, got)
}

func TestAuthExtension_FactoryError(t *testing.T) {
	_, err := core.BuildSchema(core.Config{
		Lists: testLists(mockSvc.NewMockSecretField(t)),
		ExtendGraphqlSchema: []core.SchemaExtension{NewAuthExtension(testAuthConfig(),
			func(service.SecretField) (usecase.AuthUsecase, error) {
				return nil, errors.New("boom")
			})},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to build auth usecase: boom")
}

func newExecContext(t *testing.T, uc usecase.AuthUsecase) *core.Context {
	t.Helper()

	cfg := core.Config{
		Lists:               testLists(mockSvc.NewMockSecretField(t)),
		ExtendGraphqlSchema: []core.SchemaExtension{NewAuthExtension(testAuthConfig(), factoryReturning(uc))},
	}
	schema, err := core.BuildSchema(cfg)
	require.NoError(t, err)

	return core.NewContextFactory(cfg, mockRepo.NewMockItemRepository(t), schema, nil).New(nil, nil)
}

const authenticateMutation = `
mutation($email: String!, $password: String!) {
  authenticateUserWithPassword(email: $email, password: $password) {
    __typename
    ... on UserAuthenticationWithPasswordSuccess { sessionToken item { id name } }
    ... on UserAuthenticationWithPasswordFailure { message }
  }
}`

func execute(t *testing.T, kctx *core.Context, query string, variables map[string]any) *graphql.Result {
	t.Helper()

	return kctx.Execute(context.Background(), core.GraphQLRequest{Query: query, Variables: variables})
}

func TestAuthenticateWithPassword_Success(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	kctx := newExecContext(t, uc)

	uc.EXPECT().AuthenticateWithPassword(mock.Anything, mock.Anything, "boris@keystonejs.com", "correctbattery").
		Return(entity.NewAuthSuccess("token-1", entity.Item{"id": "1", "name": "Boris Bozic"}), nil)

	result := execute(t, kctx, authenticateMutation, map[string]any{"email": "boris@keystonejs.com", "password": "correctbattery"})

	require.Empty(t, result.Errors)
	assert.Equal(t, map[string]any{
		"authenticateUserWithPassword": map[string]any{
			"__typename":   "UserAuthenticationWithPasswordSuccess",
			"sessionToken": "token-1",
			"item":         map[string]any{"id": "1", "name": "Boris Bozic"},
		},
	}, result.Data)
}

func TestAuthenticateWithPassword_Failure(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	kctx := newExecContext(t, uc)

	uc.EXPECT().AuthenticateWithPassword(mock.Anything, mock.Anything, "boris@keystonejs.com", "incorrectbattery").
		Return(entity.NewAuthFailure(entity.MessageAuthenticationFailed), nil)

	result := execute(t, kctx, authenticateMutation, map[string]any{"email": "boris@keystonejs.com", "password": "incorrectbattery"})

	require.Empty(t, result.Errors)
	assert.Equal(t, map[string]any{
		"authenticateUserWithPassword": map[string]any{
			"__typename": "UserAuthenticationWithPasswordFailure",
			"message":    "Authentication failed.",
		},
	}, result.Data)
}

func TestAuthenticateWithPassword_UsecaseError(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	kctx := newExecContext(t, uc)

	uc.EXPECT().AuthenticateWithPassword(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrMissingSession)

	result := execute(t, kctx, authenticateMutation, map[string]any{"email": "a", "password": "b"})

	require.Len(t, result.Errors, 1)
	assert.Equal(t, "No session implementation available on context", result.Errors[0].Message)
}

func TestAuthenticatedItem(t *testing.T) {
	query := `{ authenticatedItem { __typename ... on User { id name } } }`

	t.Run("item", func(t *testing.T) {
		uc := mockUsecase.NewMockAuthUsecase(t)
		kctx := newExecContext(t, uc)
		uc.EXPECT().AuthenticatedItem(mock.Anything, mock.Anything).
			Return(entity.Item{"id": "1", "name": "Boris Bozic"}, nil)

		result := execute(t, kctx, query, nil)

		require.Empty(t, result.Errors)
		assert.Equal(t, map[string]any{
			"authenticatedItem": map[string]any{"__typename": "User", "id": "1", "name": "Boris Bozic"},
		}, result.Data)
	})

	t.Run("no item", func(t *testing.T) {
		uc := mockUsecase.NewMockAuthUsecase(t)
		kctx := newExecContext(t, uc)
		uc.EXPECT().AuthenticatedItem(mock.Anything, mock.Anything).Return(nil, nil)

		result := execute(t, kctx, query, nil)

		require.Empty(t, result.Errors)
		assert.Equal(t, map[string]any{"authenticatedItem": nil}, result.Data)
	})
}
