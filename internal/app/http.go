package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/rafabene/ecoleta/internal/domain/ports"
	httphandlers "github.com/rafabene/ecoleta/internal/handlers/http"
	"github.com/rafabene/ecoleta/internal/infrastructure/config"
	"github.com/rafabene/ecoleta/internal/infrastructure/i18n"
	"github.com/rafabene/ecoleta/internal/infrastructure/metrics"
)

// ShutdownTimeout é o prazo para as requisições em andamento terminarem
const ShutdownTimeout = 5 * time.Second

// HTTPModule fornece handlers, roteador e o servidor HTTP
var HTTPModule = fx.Module("http",
	fx.Provide(
		httphandlers.NewItemHandler,
		httphandlers.NewPointHandler,
		provideHealthHandler,
		provideRouter,
		provideServer,
	),
	fx.Invoke(registerServer),
)

func provideHealthHandler(cfg *config.Config, db *gorm.DB) *httphandlers.HealthHandler {
	return httphandlers.NewHealthHandler(cfg.Env, func(ctx context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	})
}

type routerParams struct {
	fx.In

	Config  *config.Config
	Logger  ports.Logger
	I18n    *i18n.Service
	Metrics *metrics.Metrics
	Items   *httphandlers.ItemHandler
	Points  *httphandlers.PointHandler
	Health  *httphandlers.HealthHandler
}

func provideRouter(p routerParams) (*gin.Engine, error) {
	return httphandlers.NewRouter(httphandlers.RouterDeps{
		Config:  p.Config,
		Logger:  p.Logger,
		I18n:    p.I18n,
		Metrics: p.Metrics,
		Items:   p.Items,
		Points:  p.Points,
		Health:  p.Health,
	})
}

func provideServer(cfg *config.Config, router *gin.Engine) *http.Server {
	return &http.Server{
		Addr:              cfg.Server.Address(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// registerServer liga o servidor ao ciclo de vida do fx
func registerServer(lc fx.Lifecycle, srv *http.Server, logger ports.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}

			logger.Info("server starting", "addr", ln.Addr().String())

			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("server failed", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("shutting down server...")

			ctx, cancel := context.WithTimeout(ctx, ShutdownTimeout)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				logger.Error("server forced to shutdown", "error", err)
				return err
			}

			logger.Info("server exited")
			return nil
		},
	})
}
