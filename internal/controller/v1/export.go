package v1

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"venturelens.dev/reportengine/internal/pkg/cachectrl"
	"venturelens.dev/reportengine/internal/pkg/rderr"
	"venturelens.dev/reportengine/internal/repo"
	"venturelens.dev/reportengine/internal/server/svr"
	"venturelens.dev/reportengine/internal/service"
)

type Export struct {
	fx.In

	ResultRepo *repo.Result
	Exporter   *service.Exporter
}

func RegisterExport(v1 *svr.V1, c Export) {
	v1.Get("/results/:resultId/export", c.ExportReport)
}

// ExportReport lays out the full report document for a stored result and
// serves it as a download.
func (c *Export) ExportReport(ctx *fiber.Ctx) error {
	id := ctx.Params("resultId")
	res, ok := c.ResultRepo.Get(id)
	if !ok {
		return rderr.ErrNotFound.Msg("analysis result not found: %s", id)
	}
	c.ResultRepo.Touch(id)

	doc, err := c.Exporter.BuildReport(ctx.UserContext(), res)
	if err != nil {
		return err
	}

	cachectrl.OptOut(ctx)
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, c.Exporter.FileName()))
	return ctx.Send(doc)
}
