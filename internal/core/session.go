package core

import (
	"context"

	"cms/internal/domain/entity"
)

// SessionStrategy translates between an opaque client-held token and a session.
type SessionStrategy interface {
	// Start mints a token for data and attaches it to the response when one is available.
	Start(ctx context.Context, kctx *Context, data entity.SessionData) (string, error)

	// Get resolves the request's token into a session. A nil session means "not logged in".
	Get(ctx context.Context, kctx *Context) (*entity.Session, error)

	// End invalidates the request's session.
	End(ctx context.Context, kctx *Context) error
}
