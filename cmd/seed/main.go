package main

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"userauth/config"
	"userauth/internal/infra/auth"
	logs "userauth/internal/infra/log"
	"userauth/internal/infra/persistence/postgres"
	"userauth/internal/seed"
)

type runSeedParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Seeder *seed.Seeder
	Logger *slog.Logger
}

func main() {
	fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
			postgres.NewTransactionManager,
			auth.NewBcryptHasher,
			seed.NewSeeder,
		),
		fx.Invoke(
			runSeed,
		),
	).Run()
}

// runSeed starts after the database hooks (ping, migrations) and stops the
// app once the seed finishes, with exit code 1 on failure.
func runSeed(params runSeedParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				exitCode := 0
				if _, err := params.Seeder.Run(context.Background()); err != nil {
					params.Logger.Error("Seed failed", slog.Any("error", err))
					exitCode = 1
				}

				if err := params.Shutdown(fx.ExitCode(exitCode)); err != nil {
					params.Logger.Error("Failed to shutdown gracefully", slog.Any("error", err))
				}
			}()

			return nil
		},
	})
}
