package di

import (
	"go.uber.org/fx"

	"github.com/bestcobb/orderapi/internal/adapter/paystack"
	"github.com/bestcobb/orderapi/internal/adapter/twilio"
	"github.com/bestcobb/orderapi/internal/app"
	"github.com/bestcobb/orderapi/internal/config"
	"github.com/bestcobb/orderapi/internal/logger"
	"github.com/bestcobb/orderapi/internal/server/http/handlers"
	"github.com/bestcobb/orderapi/internal/server/http/router"
	"github.com/bestcobb/orderapi/internal/usecase"
	"github.com/bestcobb/orderapi/internal/worker"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		paystack.Module,
		twilio.Module,
		usecase.Module,
		fx.Provide(func(d *worker.NotifyDispatcher) app.NotificationDispatcher { return d }),
		fx.Provide(func(f *app.OrderFacade) handlers.OrderFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
