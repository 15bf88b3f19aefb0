package main

import (
	"context"
	"log/slog"
	"os"

	"vendo/config"
	"vendo/internal/delivery"
	"vendo/internal/delivery/api"
	"vendo/internal/delivery/api/middleware"
	"vendo/internal/delivery/api/router/handler"
	"vendo/internal/domain/lifecycle"
	"vendo/internal/infra/auth"
	logs "vendo/internal/infra/log"
	"vendo/internal/infra/persistence/postgres"
	"vendo/internal/usecase"
	"vendo/internal/usecase/impl"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
	Logger     *slog.Logger
}

type seedAdminParams struct {
	fx.In
	fx.Lifecycle

	// Migrator is required so the seed hook runs after the migration hook.
	Migrator    *postgres.Migrator
	AdminAuthUC usecase.AdminAuthUsecase
	Config      *config.Config
	Logger      *slog.Logger
}

func main() {
	fx.New(
		fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger}
		}),
		fx.StartTimeout(lifecycle.MigrationTimeout+lifecycle.DefaultTimeout),
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			seedAdmin,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		postgres.New,
		postgres.NewMigrator,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewAdminRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			auth.NewAuthorizationGate,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewAdminAuthService,
			impl.NewProfileService,
			impl.NewAdminUserService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewAdminAuthHandler,
			handler.NewProfileHandler,
			handler.NewAdminUserHandler,
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

// seedAdmin provisions the configured admin once the schema is in place.
func seedAdmin(params seedAdminParams) {
	if !params.Config.AdminSeed.Enabled() {
		params.Logger.Debug("Admin seed not configured")

		return
	}

	seed := params.Config.AdminSeed
	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			_, err := params.AdminAuthUC.SeedAdmin(ctx, usecase.SeedAdminInput{
				Username: seed.Username,
				Email:    seed.Email,
				Password: seed.Password,
			})

			return err
		},
	})
}

func startServer(params startServerParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			for _, d := range params.Deliveries {
				go func() {
					if err := d.Serve(context.Background()); err != nil {
						params.Logger.Error("Failed to start server", slog.Any("error", err))
						os.Exit(1)
					}
				}()
			}

			return nil
		},
	})
}
