package app

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"venturelens.dev/reportengine/cmd/app/server"
	"venturelens.dev/reportengine/internal/pkg/bininfo"
)

func Run() {
	app := &cli.App{
		Name:        "reportengine",
		Description: "The VentureLens analysis report rendering engine. Built with Go, fiber and go.uber.org/fx. Turns structured startup-evaluation results into benchmark charts and a typeset report document.",
		Version:     bininfo.Version,
		Commands: []*cli.Command{
			server.Command(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run app")
	}
}
