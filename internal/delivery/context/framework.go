package context

import (
	"cms/internal/core"

	"github.com/labstack/echo/v4"
)

// KeyFramework is the echo.Context key holding the request's *core.Context.
const KeyFramework ContextKey = "cms_context"

// SetFrameworkContext stores the resolved framework context on the echo context.
func SetFrameworkContext(c echo.Context, kctx *core.Context) {
	c.Set(string(KeyFramework), kctx)
}

// GetFrameworkContext returns the framework context stored by the session middleware.
func GetFrameworkContext(c echo.Context) (*core.Context, bool) {
	kctx, ok := c.Get(string(KeyFramework)).(*core.Context)

	return kctx, ok && kctx != nil
}
