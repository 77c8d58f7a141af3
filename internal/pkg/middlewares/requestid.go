package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"venturelens.dev/reportengine/internal/constant"
	"venturelens.dev/reportengine/internal/pkg/flog"
)

func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := flog.IDFromFiberCtx(c)
		if ok {
			c.Locals(constant.ContextKeyRequestID, id.String())
		}
		return c.Next()
	}
}
