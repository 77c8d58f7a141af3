package controller

import (
	"go.uber.org/fx"

	controllermeta "venturelens.dev/reportengine/internal/controller/meta"
	controllerv1 "venturelens.dev/reportengine/internal/controller/v1"
)

func Module() fx.Option {
	return fx.Module("controller",
		// Controllers (v1)
		controllerv1.Module(),

		// Controllers (meta)
		controllermeta.Module(),
	)
}
