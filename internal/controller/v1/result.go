package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"venturelens.dev/reportengine/internal/model"
	"venturelens.dev/reportengine/internal/pkg/rderr"
	"venturelens.dev/reportengine/internal/repo"
	"venturelens.dev/reportengine/internal/server/svr"
	"venturelens.dev/reportengine/internal/service"
	"venturelens.dev/reportengine/internal/util/rekuest"
)

type Result struct {
	fx.In

	ResultRepo  *repo.Result
	ViewManager *service.ViewManager
}

func RegisterResult(v1 *svr.V1, c Result) {
	v1.Post("/results", c.PutResult)
	v1.Get("/results/:resultId", c.GetResult)
	v1.Put("/results/:resultId", c.ReplaceResult)
	v1.Delete("/results/:resultId", c.DeleteResult)
}

// PutResult ingests an analysis result produced by the evaluation pipeline
// and returns the ID under which views and exports can reference it.
func (c *Result) PutResult(ctx *fiber.Ctx) error {
	res, err := c.parseBody(ctx)
	if err != nil {
		return err
	}

	id := c.ResultRepo.Put(res)
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"resultId": id,
	})
}

func (c *Result) GetResult(ctx *fiber.Ctx) error {
	id := ctx.Params("resultId")
	res, ok := c.ResultRepo.Get(id)
	if !ok {
		return rderr.ErrNotFound.Msg("analysis result not found: %s", id)
	}

	return ctx.JSON(res)
}

// ReplaceResult swaps the stored result in place. Every open view over it is
// re-rendered against the new data.
func (c *Result) ReplaceResult(ctx *fiber.Ctx) error {
	id := ctx.Params("resultId")
	res, err := c.parseBody(ctx)
	if err != nil {
		return err
	}

	if !c.ResultRepo.Replace(id, res) {
		return rderr.ErrNotFound.Msg("analysis result not found: %s", id)
	}
	c.ViewManager.Rerender(id)

	return ctx.SendStatus(fiber.StatusNoContent)
}

func (c *Result) DeleteResult(ctx *fiber.Ctx) error {
	c.ResultRepo.Delete(ctx.Params("resultId"))
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (c *Result) parseBody(ctx *fiber.Ctx) (*model.AnalysisResult, error) {
	body := ctx.Body()
	if len(body) == 0 {
		return nil, rderr.ErrInvalidReq.Msg("request body must not be empty")
	}

	res := model.ParseAnalysisResult(body)
	if err := rekuest.ValidStruct(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}
