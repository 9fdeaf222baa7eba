package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"cms/internal/core"
	deliverycontext "cms/internal/delivery/context"

	"github.com/graphql-go/graphql"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdminRequest(factory *core.ContextFactory, target string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	deliverycontext.SetFrameworkContext(c, factory.New(rec, req))

	return c, rec
}

func TestAdminHandler_WithoutUIConfig(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	factory := core.NewContextFactory(core.Config{
		Lists: map[string]core.ListConfig{
			"User": {Fields: map[string]core.FieldConfig{"name": core.Text()}},
		},
	}, nil, graphql.Schema{}, logger)

	h, err := NewAdminHandler(factory, logger)
	require.NoError(t, err)
	assert.True(t, h.Enabled())
	assert.Empty(t, h.BasePath())

	c, rec := newAdminRequest(factory, "/")
	require.NoError(t, h.Serve(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<li>User</li>")

	c, rec = newAdminRequest(factory, "/missing")
	require.NoError(t, h.Serve(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "NOT_FOUND")
}

func TestAdminHandler_Disabled(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	factory := core.NewContextFactory(core.Config{
		Lists: map[string]core.ListConfig{"User": {}},
		UI:    &core.UIConfig{IsDisabled: true, BasePath: "/admin"},
	}, nil, graphql.Schema{}, logger)

	h, err := NewAdminHandler(factory, logger)
	require.NoError(t, err)
	assert.False(t, h.Enabled())
	assert.Equal(t, "/admin", h.BasePath())
}

func TestAdminHandler_MissingFrameworkContext(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	factory := core.NewContextFactory(core.Config{Lists: map[string]core.ListConfig{"User": {}}}, nil, graphql.Schema{}, logger)

	h, err := NewAdminHandler(factory, logger)
	require.NoError(t, err)

	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	err = h.Serve(c)
	assert.ErrorContains(t, err, "framework context missing from request")
}
