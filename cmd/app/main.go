package main

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"bookstore/cmd/fx/account_fx"
	"bookstore/cmd/fx/auth_fx"
	"bookstore/cmd/fx/config_fx"
	"bookstore/cmd/fx/controllers_fx"
	"bookstore/cmd/fx/dashboard"
	"bookstore/cmd/fx/db_fx"
	"bookstore/cmd/fx/logger_fx"
	"bookstore/cmd/fx/memcache_fx"
	"bookstore/cmd/fx/order_fx"
	"bookstore/cmd/fx/product_fx"
	"bookstore/cmd/fx/upload_fx"
	"bookstore/internal/api"
	"bookstore/internal/config"
)

func main() {
	app := fx.New(
		config_fx.Module,
		logger_fx.Module,
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger.Named("fx")}
		}),
		db_fx.Module,
		memcache_fx.Module,
		auth_fx.Module,
		account_fx.Module,
		order_fx.Module,
		product_fx.Module,
		upload_fx.Module,
		dashboard.Module,
		controllers_fx.Module,

		fx.Provide(api.NewRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine, logger *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.HTTP.Addr(),
		Handler: engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			logger.Info("starting HTTP server", zap.String("addr", srv.Addr), zap.String("env", cfg.Environment))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Fatal("http server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			shutdownCtx, cancel := context.WithTimeout(ctx, cfg.HTTP.ShutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}
