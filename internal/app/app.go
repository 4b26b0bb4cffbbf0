// Package app provides application initialization and dependency injection.
package app

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/inspectwise/inspection-service/config"
	"github.com/inspectwise/inspection-service/internal/http"
	"github.com/inspectwise/inspection-service/internal/logger"
	"github.com/inspectwise/inspection-service/internal/middleware"
	"github.com/rs/zerolog/log"
)

// Application is the wired service: its router plus the resources released on shutdown.
type Application struct {
	Router  *gin.Engine
	closers []func(context.Context)
}

// InitializeApp creates and wires all application dependencies.
func InitializeApp(cfg config.Config) *Application {
	// Logger first; everything below logs while starting.
	InitializeLogger()

	app := &Application{}

	services := InitializeServices(cfg.Cache)
	app.onClose(func(context.Context) { services.Calculator.Close() })

	db := InitializeDatabase(cfg.Database)
	if db != nil {
		middleware.InitAsyncLogger(db.LoggingService, middleware.DefaultAsyncLoggerConfig())
		app.onClose(func(ctx context.Context) {
			if err := db.DB.Close(ctx); err != nil {
				log.Warn().Err(err).Msg("Failed to close MongoDB connection")
			}
		})
		// Registered after the MongoDB close so queued audit entries drain first.
		app.onClose(func(context.Context) { middleware.StopAsyncLogger() })
	}

	photos := InitializeStorage(context.Background(), cfg.Storage)

	routerComponents := InitializeRouter(services, db, photos, cfg)
	app.Router = http.NewRouter(routerComponents.HealthHandler, routerComponents.Config)

	startup := logger.WithContext(map[string]interface{}{
		"mongodb":   db != nil,
		"minio":     photos.Checker != nil,
		"jwt":       routerComponents.Config.AuthService != nil,
		"operators": len(cfg.Inspection.Operators),
	})
	startup.Info().Msg("Application initialized")

	return app
}

func (a *Application) onClose(fn func(context.Context)) {
	a.closers = append(a.closers, fn)
}

// Close releases resources in reverse order of acquisition.
func (a *Application) Close(ctx context.Context) {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i](ctx)
	}
	a.closers = nil
}
