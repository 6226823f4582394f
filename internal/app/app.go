package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/bestcobb/orderapi/internal/config"
	"github.com/bestcobb/orderapi/internal/usecase"
	"github.com/bestcobb/orderapi/internal/worker"
)

// Module wires application services, runtime components, and lifecycle hooks.
var Module = fx.Options(
	fx.Provide(
		NewOrderFacade,
		newHTTPServer,
		newNotifyDispatcher,
	),
	fx.Invoke(registerLifecycle),
)

type serverParams struct {
	fx.In

	Config *config.Config
	Router *gin.Engine
}

func newHTTPServer(p serverParams) *http.Server {
	return &http.Server{
		Addr:    p.Config.RunAddress,
		Handler: p.Router,
	}
}

type dispatcherParams struct {
	fx.In

	Notifier *usecase.NotifyUseCase
	Config   *config.Config
	Logger   *slog.Logger
}

func newNotifyDispatcher(p dispatcherParams) *worker.NotifyDispatcher {
	return worker.NewNotifyDispatcher(
		p.Notifier,
		p.Config.NotifyWorkers,
		p.Config.NotifyQueueSize,
		p.Logger,
	)
}

type lifecycleParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Server     *http.Server
	Dispatcher *worker.NotifyDispatcher
	Config     *config.Config
}

func registerLifecycle(p lifecycleParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			p.Logger.Info("starting orderapi", slog.String("addr", p.Server.Addr))
			if !p.Config.MessagingConfigured() {
				p.Logger.Info("messaging credentials not fully configured, notifications disabled")
			}
			if !p.Config.PaymentConfigured() {
				p.Logger.Info("payment gateway credential not configured, online payment disabled")
			}
			p.Dispatcher.Start(ctx)
			go func() {
				if err := p.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					p.Logger.Error("http server terminated", slog.String("error", err.Error()))
					_ = p.Shutdowner.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx := ctx
			cancel := func() {}
			if _, ok := ctx.Deadline(); !ok {
				shutdownCtx, cancel = context.WithTimeout(ctx, p.Config.ShutdownTimeout)
			}
			defer cancel()

			if err := p.Server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}

			// Notifications are best-effort: whatever is still in flight is
			// abandoned once the server stopped taking orders.
			p.Dispatcher.Stop()

			p.Logger.Info("orderapi stopped")
			return nil
		},
	})
}
