package di

import (
	"go.uber.org/fx"

	"github.com/moriwell/storefront/internal/app"
	"github.com/moriwell/storefront/internal/config"
	"github.com/moriwell/storefront/internal/logger"
	"github.com/moriwell/storefront/internal/pkg/auth"
	"github.com/moriwell/storefront/internal/server/http/router"
	"github.com/moriwell/storefront/internal/storage/postgres"
	"github.com/moriwell/storefront/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		usecase.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
