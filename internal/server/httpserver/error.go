package httpserver

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"venturelens.dev/reportengine/internal/pkg/rderr"
)

func HandleCustomError(ctx *fiber.Ctx, e *rderr.RenderError) error {
	log.Warn().
		Err(e).
		Str("method", ctx.Method()).
		Str("path", ctx.Path()).
		Msg(e.Message)

	body := fiber.Map{
		"code":    e.ErrorCode,
		"message": e.Message,
	}

	// Add extra details if needed
	if e.Extras != nil && len(*e.Extras) > 0 {
		for k, v := range *e.Extras {
			body[k] = v
		}
	}

	return ctx.Status(e.StatusCode).JSON(body)
}

func ErrorHandler(ctx *fiber.Ctx, err error) error {
	if e, ok := err.(*rderr.RenderError); ok {
		return HandleCustomError(ctx, e)
	}

	// Default 500 statuscode
	re := rderr.ErrInternalError

	if e, ok := err.(*fiber.Error); ok {
		// Overwrite status code if fiber.Error type & provided code
		re = rderr.New(e.Code, "UNKNOWN_ERROR", e.Message)
	}

	log.Error().
		Stack().
		Err(err).
		Str("method", ctx.Method()).
		Str("path", ctx.Path()).
		Int("status", re.StatusCode).
		Msg("Internal Server Error")

	return HandleCustomError(ctx, re)
}
