package middleware

import (
	"cms/internal/core"
	deliverycontext "cms/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// SessionMiddleware resolves the request's session and stores the framework context on echo.Context.
type SessionMiddleware struct {
	factory *core.ContextFactory
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(factory *core.ContextFactory) *SessionMiddleware {
	return &SessionMiddleware{factory: factory}
}

// Process runs the session strategy once per request. Handlers read the result with
// deliverycontext.GetFrameworkContext.
func (m *SessionMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		kctx := m.factory.ForRequest(req.Context(), c.Response(), req)
		deliverycontext.SetFrameworkContext(c, kctx)

		return next(c)
	}
}
