package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/userauth/internal/app"
	"github.com/polkiloo/userauth/internal/config"
	"github.com/polkiloo/userauth/internal/logger"
	"github.com/polkiloo/userauth/internal/metrics"
	"github.com/polkiloo/userauth/internal/pkg/auth"
	"github.com/polkiloo/userauth/internal/server/http/router"
	"github.com/polkiloo/userauth/internal/storage"
	"github.com/polkiloo/userauth/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		metrics.Module,
		auth.Module,
		storage.Module,
		usecase.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
