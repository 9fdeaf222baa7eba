package impl

import (
	"context"
	"log/slog"

	"cms/internal/core"
	deliverycontext "cms/internal/delivery/context"
	"cms/internal/domain/entity"
	domainerrors "cms/internal/domain/errors"
	"cms/internal/domain/repository"
	"cms/internal/usecase"

	"github.com/pkg/errors"
)

// authService implements the AuthUsecase interface.
type authService struct {
	listKey   string
	validator usecase.SecretValidator
	logger    *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	cfg entity.AuthConfig,
	validator usecase.SecretValidator,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		listKey:   cfg.ListKey,
		validator: validator,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AuthenticateWithPassword validates the credentials with elevated access and starts a session on a match.
// Unknown identities and wrong secrets produce the same failure result.
func (srv *authService) AuthenticateWithPassword(
	ctx context.Context,
	kctx *core.Context,
	identity, secret string,
) (*entity.AuthResult, error) {
	if kctx.SessionStrategy == nil {
		return nil, domainerrors.ErrMissingSession
	}

	item, err := srv.validator.Validate(ctx, kctx.Sudo(), identity, secret)
	if err != nil {
		return nil, errors.Wrap(err, "failed to validate secret")
	}
	if item == nil {
		srv.log(ctx).Info("Authentication failed", slog.String("list", srv.listKey))

		return entity.NewAuthFailure(entity.MessageAuthenticationFailed), nil
	}

	token, err := kctx.SessionStrategy.Start(ctx, kctx, entity.SessionData{
		ListKey: srv.listKey,
		ItemID:  item.ID(),
	})
	if err != nil {
		srv.log(ctx).Error("Failed to start session",
			slog.String("list", srv.listKey),
			slog.String("item_id", item.ID()),
			slog.Any("error", err))

		return entity.NewAuthFailure(entity.MessageFailedToStartSession), nil
	}
	if token == "" {
		srv.log(ctx).Warn("Session strategy returned an empty token", slog.String("list", srv.listKey))

		return entity.NewAuthFailure(entity.MessageFailedToStartSession), nil
	}

	srv.log(ctx).Info("Authentication succeeded",
		slog.String("list", srv.listKey),
		slog.String("item_id", item.ID()))

	return entity.NewAuthSuccess(token, item), nil
}

// AuthenticatedItem returns the item behind the request's session, subject to list access control.
// It returns nil when there is no session, the session has no item id or belongs to another list.
func (srv *authService) AuthenticatedItem(ctx context.Context, kctx *core.Context) (entity.Item, error) {
	session := kctx.Session
	if session == nil || session.ItemID == "" || session.ListKey != srv.listKey {
		return nil, nil
	}

	item, err := kctx.DB(srv.listKey).FindOne(ctx, map[string]any{entity.FieldID: session.ItemID})
	if errors.Is(err, repository.ErrItemNotFound) || errors.Is(err, repository.ErrAccessDenied) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load authenticated item")
	}

	return item, nil
}
