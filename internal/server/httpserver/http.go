package httpserver

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/helmet/v2"
	"github.com/rs/zerolog/log"

	"venturelens.dev/reportengine/internal/app/appconfig"
	"venturelens.dev/reportengine/internal/pkg/bininfo"
	"venturelens.dev/reportengine/internal/pkg/middlewares"
	"venturelens.dev/reportengine/internal/pkg/observability"
	"venturelens.dev/reportengine/internal/pkg/rderr"
)

var registerPromOnce sync.Once

func Create(conf *appconfig.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:        "VentureLens Report Engine",
		ServerHeader:   fmt.Sprintf("VentureLens/%s", bininfo.Version),
		ReadTimeout:    time.Second * 20,
		WriteTimeout:   time.Second * 20,
		ReadBufferSize: 8192,
		// allow possibility for graceful shutdown, otherwise app#Shutdown() will block forever
		IdleTimeout:             conf.HTTPServerShutdownTimeout,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          conf.TrustedProxies,
		ErrorHandler:            ErrorHandler,
		Immutable:               true,
		JSONEncoder:             json.Marshal,
		JSONDecoder:             json.Unmarshal,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowMethods:  "GET, POST, PATCH, DELETE, OPTIONS",
		AllowHeaders:  "Content-Type, Authorization, X-Requested-With",
		ExposeHeaders: "Content-Type, Content-Disposition, X-VentureLens-Request-ID",
	}))
	middlewares.Logger(app)
	// the logger middleware injects RequestID into the context,
	// and we need an extra middleware to extract it and repopulate it into ctx.Locals
	app.Use(middlewares.RequestID())

	app.Use(func(c *fiber.Ctx) error {
		// Use custom error handler to return customized error responses
		err := c.Next()
		if e, ok := err.(*rderr.RenderError); ok {
			return HandleCustomError(c, e)
		}
		return err
	})

	app.Use(helmet.New(helmet.Config{
		HSTSMaxAge:         31356000,
		HSTSPreloadEnabled: true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
		PermissionPolicy:   "interest-cohort=()",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e any) {
			buf := make([]byte, 4096)
			buf = buf[:runtime.Stack(buf, false)]
			log.Error().Msgf("panic: %v\n%s\n", e, buf)
		},
	}))
	registerPromOnce.Do(func() {
		fiberprom := fiberprometheus.New(observability.ServiceName)
		fiberprom.RegisterAt(app, "/metrics")
	})

	if conf.DevMode {
		log.Info().Msg("Running in DEV mode")
		app.Use(pprof.New())
	}

	return app
}
