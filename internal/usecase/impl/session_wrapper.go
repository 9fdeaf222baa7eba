package impl

import (
	"context"
	"log/slog"

	"cms/internal/core"
	deliverycontext "cms/internal/delivery/context"
	"cms/internal/domain/entity"
	"cms/internal/domain/repository"

	"github.com/pkg/errors"
)

// HydrationErrorHook receives unexpected failures raised while resolving a session.
type HydrationErrorHook func(ctx context.Context, stage string, err error)

// SessionWrapperOption customizes a SessionWrapper.
type SessionWrapperOption func(*SessionWrapper)

// WithHydrationErrorHook registers a hook for unexpected session resolution failures.
func WithHydrationErrorHook(hook HydrationErrorHook) SessionWrapperOption {
	return func(w *SessionWrapper) { w.onHydrationError = hook }
}

type sessionStage struct {
	name string
	run  func(ctx context.Context, kctx *core.Context, session *entity.Session) (*entity.Session, error)
}

// SessionWrapper decorates a session strategy so every resolved session carries
// the configured selection of its item. Start and End are delegated untouched.
type SessionWrapper struct {
	base             core.SessionStrategy
	listKey          string
	sessionData      string
	stages           []sessionStage
	onHydrationError HydrationErrorHook
	logger           *slog.Logger
}

var _ core.SessionStrategy = (*SessionWrapper)(nil)

// NewSessionWrapper is the constructor for SessionWrapper.
func NewSessionWrapper(
	base core.SessionStrategy,
	cfg entity.AuthConfig,
	logger *slog.Logger,
	opts ...SessionWrapperOption,
) *SessionWrapper {
	w := &SessionWrapper{
		base:        base,
		listKey:     cfg.ListKey,
		sessionData: cfg.SessionData,
		logger:      logger,
	}
	w.stages = []sessionStage{
		{name: "base", run: w.baseStage},
		{name: "require-item-id", run: w.requireItemID},
		{name: "require-list", run: w.requireList},
		{name: "hydrate", run: w.hydrate},
	}
	for _, opt := range opts {
		opt(w)
	}

	return w
}

// log returns a request-scoped logger if available, otherwise falls back to the wrapper's logger.
func (w *SessionWrapper) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, w.logger)
}

// Start delegates to the base strategy.
func (w *SessionWrapper) Start(ctx context.Context, kctx *core.Context, data entity.SessionData) (string, error) {
	return w.base.Start(ctx, kctx, data)
}

// End delegates to the base strategy.
func (w *SessionWrapper) End(ctx context.Context, kctx *core.Context) error {
	return w.base.End(ctx, kctx)
}

// Get resolves the base session and attaches its data. Every failure yields "no session";
// unexpected ones are logged at error level and passed to the hydration error hook.
func (w *SessionWrapper) Get(ctx context.Context, kctx *core.Context) (*entity.Session, error) {
	var session *entity.Session
	for _, stage := range w.stages {
		next, err := stage.run(ctx, kctx, session)
		if err != nil {
			w.fail(ctx, stage.name, err)

			return nil, nil
		}
		if next == nil {
			w.log(ctx).Debug("No session", slog.String("stage", stage.name))

			return nil, nil
		}
		session = next
	}

	return session, nil
}

func (w *SessionWrapper) fail(ctx context.Context, stage string, err error) {
	if errors.Is(err, repository.ErrItemNotFound) || errors.Is(err, repository.ErrAccessDenied) {
		w.log(ctx).Debug("Session item unavailable", slog.String("stage", stage), slog.Any("error", err))

		return
	}

	w.log(ctx).Error("Failed to resolve session",
		slog.String("stage", stage),
		slog.String("list", w.listKey),
		slog.Any("error", err))
	if w.onHydrationError != nil {
		w.onHydrationError(ctx, stage, err)
	}
}

func (w *SessionWrapper) baseStage(ctx context.Context, kctx *core.Context, _ *entity.Session) (*entity.Session, error) {
	return w.base.Get(ctx, kctx)
}

func (w *SessionWrapper) requireItemID(_ context.Context, _ *core.Context, session *entity.Session) (*entity.Session, error) {
	if session.ItemID == "" {
		return nil, nil
	}

	return session, nil
}

func (w *SessionWrapper) requireList(_ context.Context, _ *core.Context, session *entity.Session) (*entity.Session, error) {
	if session.ListKey != w.listKey {
		return nil, nil
	}

	return session, nil
}

func (w *SessionWrapper) hydrate(ctx context.Context, kctx *core.Context, session *entity.Session) (*entity.Session, error) {
	data, err := kctx.Sudo().Query(w.listKey).FindOne(ctx, session.ItemID, w.sessionData)
	if err != nil {
		return nil, err
	}

	return session.WithData(data), nil
}
