package server

import (
	"go.uber.org/fx"

	"venturelens.dev/reportengine/internal/server/httpserver"
	"venturelens.dev/reportengine/internal/server/svr"
)

func Module() fx.Option {
	return fx.Module("server",
		fx.Provide(httpserver.Create),
		fx.Provide(svr.CreateEndpointGroups))
}
