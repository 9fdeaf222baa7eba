// Package auth turns a list into an authentication source by transforming the framework
// config: it validates the referenced fields, wraps the session strategy, adds the auth
// schema extension and gates the admin UI behind a sign-in page.
package auth

import (
	"context"
	"fmt"
	"log/slog"

	"cms/internal/core"
	authgraphql "cms/internal/delivery/graphql"
	"cms/internal/domain/entity"
	domainerrors "cms/internal/domain/errors"
	"cms/internal/domain/service"
	"cms/internal/usecase"
	"cms/internal/usecase/impl"

	"github.com/pkg/errors"
)

const (
	defaultSessionData = "id"

	// RedirectStageName is the page middleware stage sending signed-out users to the sign-in page.
	RedirectStageName = "auth-signin-redirect"
)

// Auth applies password authentication for one list to a framework config.
type Auth struct {
	cfg         entity.AuthConfig
	logger      *slog.Logger
	wrapperOpts []impl.SessionWrapperOption
}

// New is the constructor for Auth. An empty SessionData selects only the id.
func New(cfg entity.AuthConfig, logger *slog.Logger, opts ...impl.SessionWrapperOption) *Auth {
	if cfg.SessionData == "" {
		cfg.SessionData = defaultSessionData
	}

	return &Auth{
		cfg:         cfg,
		logger:      logger,
		wrapperOpts: opts,
	}
}

// Config returns the effective auth config.
func (a *Auth) Config() entity.AuthConfig {
	return a.cfg
}

// WithAuth returns a copy of cfg extended with password authentication.
// The input config is left untouched.
func (a *Auth) WithAuth(cfg core.Config) (core.Config, error) {
	if err := a.checkConfig(cfg); err != nil {
		return core.Config{}, err
	}

	out := cfg.Clone()
	if out.UI == nil || !out.UI.IsDisabled {
		out.UI = a.withUI(out.UI)
	}

	if out.Session == nil {
		return core.Config{}, domainerrors.NewConfigError("Missing .session configuration")
	}
	out.Session = impl.NewSessionWrapper(out.Session, a.cfg, a.logger, a.wrapperOpts...)

	out.ExtendGraphqlSchema = append(
		[]core.SchemaExtension{authgraphql.NewAuthExtension(a.cfg, a.newUsecase)},
		out.ExtendGraphqlSchema...,
	)

	return out, nil
}

func (a *Auth) checkConfig(cfg core.Config) error {
	list, ok := cfg.Lists[a.cfg.ListKey]
	if !ok {
		return domainerrors.NewConfigError(fmt.Sprintf("withAuth cannot find the list %q", a.cfg.ListKey))
	}
	if _, ok := list.Fields[a.cfg.IdentityField]; !ok {
		return domainerrors.NewConfigError(fmt.Sprintf(
			"withAuth cannot find the identity field \"%s.%s\"", a.cfg.ListKey, a.cfg.IdentityField))
	}
	if _, ok := list.Fields[a.cfg.SecretField]; !ok {
		return domainerrors.NewConfigError(fmt.Sprintf(
			"withAuth cannot find the secret field \"%s.%s\"", a.cfg.ListKey, a.cfg.SecretField))
	}

	return nil
}

func (a *Auth) withUI(ui *core.UIConfig) *core.UIConfig {
	if ui == nil {
		ui = &core.UIConfig{}
	}

	ui.PublicPages = append(ui.PublicPages, ui.BasePath+SigninPagePath)
	ui.AdditionalFiles = append(ui.AdditionalFiles, a.signinFiles(ui.BasePath))
	if ui.IsAccessAllowed == nil {
		ui.IsAccessAllowed = hasSession
	}
	ui.PageMiddleware = append([]core.PageMiddleware{{
		Name:   RedirectStageName,
		Handle: redirectToSignin,
	}}, ui.PageMiddleware...)

	return ui
}

func hasSession(_ context.Context, kctx *core.Context) (bool, error) {
	return kctx != nil && kctx.Session != nil, nil
}

func redirectToSignin(_ context.Context, args core.PageMiddlewareArgs) (*core.PageDecision, error) {
	if args.WasAccessAllowed {
		return nil, nil
	}

	return &core.PageDecision{Kind: core.DecisionRedirect, To: args.BasePath + SigninPagePath}, nil
}

func (a *Auth) newUsecase(secret service.SecretField) (usecase.AuthUsecase, error) {
	validator, err := impl.NewSecretValidator(a.cfg, secret, a.logger)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build secret validator")
	}

	return impl.NewAuthService(a.cfg, validator, a.logger), nil
}
