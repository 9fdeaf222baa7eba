// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"cms/internal/core"
	"cms/internal/domain/entity"
)

// SecretValidator matches an identity and a plaintext secret against the stored item.
type SecretValidator interface {
	// Validate returns the matching item, or nil when the identity is unknown or the secret is wrong.
	// An error is returned only for unexpected repository or hashing failures.
	Validate(ctx context.Context, kctx *core.Context, identity, secret string) (entity.Item, error)
}

// AuthUsecase defines the password authentication operations exposed over GraphQL.
type AuthUsecase interface {
	AuthenticateWithPassword(ctx context.Context, kctx *core.Context, identity, secret string) (*entity.AuthResult, error)
	AuthenticatedItem(ctx context.Context, kctx *core.Context) (entity.Item, error)
}
