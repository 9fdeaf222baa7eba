package main

import (
	"context"
	"log/slog"
	"os"

	"cms/config"
	"cms/internal/auth"
	"cms/internal/core"
	"cms/internal/delivery"
	"cms/internal/delivery/api"
	apimiddleware "cms/internal/delivery/api/middleware"
	"cms/internal/delivery/api/router/handler"
	"cms/internal/domain/entity"
	"cms/internal/domain/repository"
	logs "cms/internal/infra/log"
	"cms/internal/infra/persistence/memory"
	"cms/internal/infra/persistence/postgres"
	"cms/internal/infra/session"
	"cms/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectSession(),
		injectFramework(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		newLists,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			newItemRepository,
		),
	)
}

// newItemRepository selects the storage backend from database.provider.
func newItemRepository(
	lc fx.Lifecycle,
	cfg *config.Config,
	logger *slog.Logger,
	lists map[string]core.ListConfig,
) (repository.ItemRepository, error) {
	switch cfg.Database.Provider {
	case config.DatabaseMemory:
		logger.Warn("Using in-memory item storage; data is lost on restart")

		return memory.NewItemRepository(lists), nil
	case config.DatabasePostgres:
		db, err := postgres.New(postgres.Params{Lifecycle: lc, Config: cfg, Logger: logger})
		if err != nil {
			return nil, err
		}

		return postgres.NewItemRepository(db, lists), nil
	default:
		return nil, errors.Errorf("unknown database provider %q", cfg.Database.Provider)
	}
}

func injectSession() fx.Option {
	return fx.Options(
		fx.Provide(
			newSessionStrategy,
		),
	)
}

// newSessionStrategy builds the base session strategy from session.strategy.
func newSessionStrategy(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger) (core.SessionStrategy, error) {
	switch cfg.Session.Strategy {
	case config.SessionStateless:
		return session.NewStateless(cfg.Session, logger)
	case config.SessionRedis:
		client, err := session.NewRedisClient(cfg.Redis)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				return errors.WithStack(client.Close())
			},
		})

		return session.NewRedis(client, cfg.Session, logger)
	default:
		return nil, errors.Errorf("unknown session strategy %q", cfg.Session.Strategy)
	}
}

func injectFramework() fx.Option {
	return fx.Options(
		fx.Provide(
			newAuth,
			newFrameworkConfig,
			core.BuildSchema,
			core.NewContextFactory,
		),
	)
}

func newAuth(cfg *config.Config, logger *slog.Logger) *auth.Auth {
	return auth.New(entity.AuthConfig{
		ListKey:       cfg.Auth.ListKey,
		IdentityField: cfg.Auth.IdentityField,
		SecretField:   cfg.Auth.SecretField,
		SessionData:   cfg.Auth.SessionData,
	}, logger, impl.WithHydrationErrorHook(func(ctx context.Context, stage string, _ error) {
		logger.WarnContext(ctx, "Session dropped after a backend failure", slog.String("stage", stage))
	}))
}

// newFrameworkConfig assembles the declarative config and applies withAuth to it.
func newFrameworkConfig(
	cfg *config.Config,
	lists map[string]core.ListConfig,
	strategy core.SessionStrategy,
	a *auth.Auth,
) (core.Config, error) {
	final, err := a.WithAuth(core.Config{
		Lists:   lists,
		Session: strategy,
		UI: &core.UIConfig{
			IsDisabled:      cfg.UI.IsDisabled,
			BasePath:        cfg.UI.BasePath,
			IsAccessAllowed: isAdmin,
		},
	})
	if err != nil {
		return core.Config{}, errors.Wrap(err, "failed to apply withAuth")
	}

	return final, nil
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewSessionMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewGraphQLHandler,
			handler.NewAdminHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
