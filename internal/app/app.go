package app

import (
	"time"

	"go.uber.org/fx"

	"venturelens.dev/reportengine/internal/app/appconfig"
	"venturelens.dev/reportengine/internal/app/appcontext"
	"venturelens.dev/reportengine/internal/controller"
	"venturelens.dev/reportengine/internal/pkg/capability"
	"venturelens.dev/reportengine/internal/pkg/logger"
	"venturelens.dev/reportengine/internal/repo"
	"venturelens.dev/reportengine/internal/server"
	"venturelens.dev/reportengine/internal/service"
)

func Options(ctx appcontext.Ctx, additionalOpts ...fx.Option) []fx.Option {
	conf, err := appconfig.Parse(ctx)
	if err != nil {
		panic(err)
	}

	// logger and configuration are the only two things that are not in the fx graph
	// because some other packages need them to be initialized before fx starts
	logger.Configure(conf)

	baseOpts := []fx.Option{
		// fx meta
		fx.WithLogger(logger.Fx),

		// Misc
		fx.Supply(conf),
		fx.Provide(capability.NewProvider),

		// Servers
		server.Module(),

		// Repositories
		repo.Module(),

		// Services
		service.Module(),

		// Controllers
		controller.Module(),

		// fx Extra Options
		fx.StartTimeout(1 * time.Second),
		// StopTimeout is not typically needed, since we're using fiber's Shutdown(),
		// in which fiber has its own IdleTimeout for controlling the shutdown timeout.
		// It acts as a countermeasure in case the fiber app is not properly shutting down.
		fx.StopTimeout(5 * time.Minute),
	}

	return append(baseOpts, additionalOpts...)
}

func New(ctx appcontext.Ctx, additionalOpts ...fx.Option) *fx.App {
	return fx.New(Options(ctx, additionalOpts...)...)
}
