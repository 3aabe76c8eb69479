package di

import (
	"go.uber.org/fx"

	"github.com/sweetcrumb/bakehouse/internal/adapter/mpesa"
	"github.com/sweetcrumb/bakehouse/internal/app"
	"github.com/sweetcrumb/bakehouse/internal/config"
	"github.com/sweetcrumb/bakehouse/internal/logger"
	"github.com/sweetcrumb/bakehouse/internal/pkg/auth"
	"github.com/sweetcrumb/bakehouse/internal/server/http/handlers"
	"github.com/sweetcrumb/bakehouse/internal/server/http/router"
	"github.com/sweetcrumb/bakehouse/internal/storage/postgres"
	"github.com/sweetcrumb/bakehouse/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		mpesa.Module,
		usecase.Module,
		fx.Provide(func(f *app.StorefrontFacade) handlers.StorefrontFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
