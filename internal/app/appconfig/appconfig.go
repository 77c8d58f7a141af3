package appconfig

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"

	"venturelens.dev/reportengine/internal/app/appcontext"
)

func Parse(ctx appcontext.Ctx) (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Warn().Err(err).Msg("failed to load .env file")
	}

	var config ConfigSpec
	err = envconfig.Process("venturelens", &config)
	if err != nil {
		_ = envconfig.Usage("venturelens", &config)
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	return &Config{
		ConfigSpec: config,
		AppContext: ctx,
	}, nil
}
