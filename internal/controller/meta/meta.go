package meta

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cache"
	"go.uber.org/fx"

	"venturelens.dev/reportengine/internal/pkg/bininfo"
	"venturelens.dev/reportengine/internal/pkg/cachectrl"
	"venturelens.dev/reportengine/internal/server/svr"
	"venturelens.dev/reportengine/internal/service"
)

type Meta struct {
	fx.In

	HealthService *service.Health
}

func RegisterMeta(meta *svr.Meta, c Meta) {
	meta.Get("/bininfo", c.BinInfo)

	meta.Get("/health", cache.New(cache.Config{
		// cache it for a second to mitigate potential DDoS
		Expiration: time.Second,
	}), c.Health)
}

func (c *Meta) BinInfo(ctx *fiber.Ctx) error {
	// the binary never changes version while running
	cachectrl.OptInCustom(ctx, time.Now(), time.Hour)
	return ctx.JSON(fiber.Map{
		"version": bininfo.Version,
		"build":   bininfo.BuildTime,
	})
}

func (c *Meta) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(c.HealthService.Status())
}
