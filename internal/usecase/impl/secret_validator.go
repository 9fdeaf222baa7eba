// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"cms/internal/core"
	deliverycontext "cms/internal/delivery/context"
	"cms/internal/domain/entity"
	"cms/internal/domain/repository"
	"cms/internal/domain/service"
	"cms/internal/usecase"

	"github.com/pkg/errors"
)

// timingPlaceholder is hashed once so lookups that miss still pay for one comparison.
const timingPlaceholder = "simulated-password-to-counter-timing-attack"

// secretValidator implements the SecretValidator interface.
type secretValidator struct {
	listKey       string
	identityField string
	secretField   string
	secret        service.SecretField
	dummyHash     string
	logger        *slog.Logger
}

// NewSecretValidator is the constructor for secretValidator.
// It hashes the timing placeholder with the field's own implementation, so it fails if hashing fails.
func NewSecretValidator(
	cfg entity.AuthConfig,
	secret service.SecretField,
	logger *slog.Logger,
) (usecase.SecretValidator, error) {
	if secret == nil {
		return nil, errors.Errorf("secret field %s.%s has no secret implementation", cfg.ListKey, cfg.SecretField)
	}

	dummyHash, err := secret.GenerateHash(context.Background(), timingPlaceholder)
	if err != nil {
		return nil, errors.Wrap(err, "failed to prepare timing placeholder hash")
	}

	return &secretValidator{
		listKey:       cfg.ListKey,
		identityField: cfg.IdentityField,
		secretField:   cfg.SecretField,
		secret:        secret,
		dummyHash:     dummyHash,
		logger:        logger,
	}, nil
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (v *secretValidator) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, v.logger)
}

// Validate looks up the item by its identity field and compares the secret against the stored hash.
func (v *secretValidator) Validate(ctx context.Context, kctx *core.Context, identity, secret string) (entity.Item, error) {
	item, err := kctx.DB(v.listKey).FindOne(ctx, map[string]any{v.identityField: identity})
	if err != nil && !errors.Is(err, repository.ErrItemNotFound) {
		return nil, errors.Wrap(err, "failed to look up identity")
	}

	hash := item.String(v.secretField)
	if item == nil || hash == "" {
		v.counterTimingAttack(ctx, secret)

		return nil, nil
	}

	ok, err := v.secret.Compare(ctx, secret, hash)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compare secret")
	}
	if !ok {
		v.log(ctx).Debug("Secret mismatch", slog.String("list", v.listKey))

		return nil, nil
	}

	return item, nil
}

// counterTimingAttack spends one comparison so a miss costs about as much as a wrong secret.
func (v *secretValidator) counterTimingAttack(ctx context.Context, secret string) {
	if _, err := v.secret.Compare(ctx, secret, v.dummyHash); err != nil {
		v.log(ctx).Warn("Timing placeholder comparison failed", slog.Any("error", err))
	}
	v.log(ctx).Debug("Identity not found", slog.String("list", v.listKey))
}
