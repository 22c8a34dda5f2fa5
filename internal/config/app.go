package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/askbot/pkg/log"
)

type AppConfig struct {
	RuntimePath string `env:"ASKBOT_RUNTIME_PATH" envDefault:".askbot"`

	// Transport flags
	EnableTelegram bool `env:"ENABLE_TELEGRAM" envDefault:"true"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	return c
}

func (c AppConfig) IsTelegramSelected() bool {
	return c.EnableTelegram
}
