package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"

	"venturelens.dev/reportengine/internal/app/appconfig"
)

func Configure(conf *appconfig.Config) {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	_ = os.Mkdir("logs", os.ModePerm)

	logFile, err := os.OpenFile("logs/app.log", os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		log.Panic().Err(err).Msg("failed to open log file")
	}

	var level zerolog.Level
	if conf.DevMode {
		level = zerolog.TraceLevel
	} else {
		level = zerolog.DebugLevel
	}

	var stdout zerolog.LevelWriter
	if conf.LogJsonStdout {
		stdout = zerolog.MultiLevelWriter(os.Stdout)
	} else {
		stdout = zerolog.MultiLevelWriter(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339Nano,
		})
	}

	writer := zerolog.MultiLevelWriter(logFile, stdout)

	log.Logger = zerolog.New(writer).
		With().
		Timestamp().
		Logger().
		Level(level)
}
