package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/askbot/pkg/log"
)

// StorageConfig selects the history backend. DBPath wins over DSN; with
// neither set the store degrades to its in-memory backend.
type StorageConfig struct {
	DBPath     string `env:"HISTORY_DB_PATH"`
	DSN        string `env:"HISTORY_DSN"`
	WindowSize int    `env:"HISTORY_WINDOW_SIZE" envDefault:"20"`
	KeepCount  int    `env:"HISTORY_KEEP_COUNT" envDefault:"50"`
}

func NewStorageConfig(ctx context.Context) *StorageConfig {
	c := &StorageConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Storage config")
	}
	return c
}
