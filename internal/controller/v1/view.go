package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"venturelens.dev/reportengine/internal/pkg/cachectrl"
	"venturelens.dev/reportengine/internal/pkg/rderr"
	"venturelens.dev/reportengine/internal/server/svr"
	"venturelens.dev/reportengine/internal/service"
	"venturelens.dev/reportengine/internal/util/rekuest"
)

type View struct {
	fx.In

	ViewManager *service.ViewManager
}

func RegisterView(v1 *svr.V1, c View) {
	v1.Post("/views", c.CreateView)
	v1.Get("/views/:viewId", c.GetView)
	v1.Delete("/views/:viewId", c.CloseView)

	v1.Put("/views/:viewId/slots/:slot", c.MountSlot)
	v1.Patch("/views/:viewId/slots/:slot", c.UpdateSlot)
	v1.Delete("/views/:viewId/slots/:slot", c.UnmountSlot)

	v1.Get("/views/:viewId/charts/:slot", c.GetChart)
}

type createViewRequest struct {
	ResultID string `json:"resultId" validate:"required"`
}

type mountSlotRequest struct {
	Width   int  `json:"width" validate:"min=0"`
	Height  int  `json:"height" validate:"min=0"`
	Visible bool `json:"visible"`
}

type updateSlotRequest struct {
	Width   *int  `json:"width" validate:"omitempty,min=0"`
	Height  *int  `json:"height" validate:"omitempty,min=0"`
	Visible *bool `json:"visible"`
}

func (c *View) CreateView(ctx *fiber.Ctx) error {
	var req createViewRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}

	v, err := c.ViewManager.Create(req.ResultID)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"viewId":   v.ID,
		"resultId": v.ResultID,
	})
}

// GetView reports the view's render progress: scheduler state, how many
// bounded attempts have run, and which charts are live.
func (c *View) GetView(ctx *fiber.Ctx) error {
	v, err := c.ViewManager.Get(ctx.Params("viewId"))
	if err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{
		"viewId":     v.ID,
		"resultId":   v.ResultID,
		"state":      v.Scheduler.State().String(),
		"attempts":   v.Scheduler.Attempts(),
		"liveCharts": v.Renderer.LiveCount(),
	})
}

func (c *View) CloseView(ctx *fiber.Ctx) error {
	if err := c.ViewManager.Teardown(ctx.Params("viewId")); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

// MountSlot announces a canvas slot together with its measured content box.
func (c *View) MountSlot(ctx *fiber.Ctx) error {
	v, slot, err := c.viewSlot(ctx)
	if err != nil {
		return err
	}

	var req mountSlotRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}

	v.Registry.Mount(slot, req.Width, req.Height, req.Visible)
	return ctx.SendStatus(fiber.StatusNoContent)
}

// UpdateSlot applies a resize, a visibility change, or both.
func (c *View) UpdateSlot(ctx *fiber.Ctx) error {
	v, slot, err := c.viewSlot(ctx)
	if err != nil {
		return err
	}

	var req updateSlotRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}

	if req.Width != nil && req.Height != nil {
		v.Registry.Resize(slot, *req.Width, *req.Height)
	}
	if req.Visible != nil {
		v.Registry.SetVisibility(slot, *req.Visible)
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (c *View) UnmountSlot(ctx *fiber.Ctx) error {
	v, slot, err := c.viewSlot(ctx)
	if err != nil {
		return err
	}

	v.Registry.Unmount(slot)
	return ctx.SendStatus(fiber.StatusNoContent)
}

// GetChart serves the most recently built chart document for a slot.
func (c *View) GetChart(ctx *fiber.Ctx) error {
	v, slot, err := c.viewSlot(ctx)
	if err != nil {
		return err
	}

	inst, ok := v.Renderer.Chart(slot)
	if !ok {
		return rderr.ErrNotFound.Msg("no chart is currently bound to slot %s", slot)
	}

	cachectrl.OptOut(ctx)
	ctx.Response().Header.SetLastModified(inst.BuiltAt)
	ctx.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return ctx.Send(inst.Document)
}

func (c *View) viewSlot(ctx *fiber.Ctx) (*service.View, string, error) {
	v, err := c.ViewManager.Get(ctx.Params("viewId"))
	if err != nil {
		return nil, "", err
	}

	slot := ctx.Params("slot")
	if err := rekuest.ValidVar(ctx, slot, "chartslot"); err != nil {
		return nil, "", err
	}
	return v, slot, nil
}
