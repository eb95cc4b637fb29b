package storage

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/userauth/internal/config"
	"github.com/polkiloo/userauth/internal/domain/repository"
)

// Module wires the configured storage backend and its repositories.
var Module = fx.Options(
	fx.Provide(newStorage),
	fx.Provide(func(s repository.Factory) repository.UserRepository { return s.Users() }),
	fx.Invoke(registerLifecycle),
)

type storageParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func newStorage(p storageParams) (repository.Factory, error) {
	return Open(p.Ctx, p.Config.DatabaseURI, p.Config.DatabaseName, p.Logger)
}

func registerLifecycle(lc fx.Lifecycle, storage repository.Factory) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return storage.Close(ctx)
		},
	})
}
