package impl

import (
	"io"
	"log/slog"
	"testing"

	"cms/internal/core"
	"cms/internal/domain/entity"
	"cms/internal/domain/repository"

	"github.com/stretchr/testify/require"
)

const testList = "User"

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testAuthConfig() entity.AuthConfig {
	return entity.AuthConfig{
		ListKey:       testList,
		IdentityField: "email",
		SecretField:   "password",
		SessionData:   "id name",
	}
}

// newTestContext builds a request context over a User list backed by repo.
func newTestContext(t *testing.T, repo repository.ItemRepository, session core.SessionStrategy) *core.Context {
	t.Helper()

	cfg := core.Config{
		Lists: map[string]core.ListConfig{
			testList: {
				Fields: map[string]core.FieldConfig{
					"name":     core.Text(),
					"email":    core.Text(core.Unique(), core.Required()),
					"password": core.Password(nil),
				},
			},
		},
		Session: session,
	}

	schema, err := core.BuildSchema(cfg)
	require.NoError(t, err)

	return core.NewContextFactory(cfg, repo, schema, testLogger()).New(nil, nil)
}
