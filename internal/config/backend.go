package config

import (
	"context"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/askbot/pkg/log"
)

// BackendConfig holds the RAG backend contract parameters.
// Values are fixed at construction and immutable afterwards.
type BackendConfig struct {
	URL              string  `env:"RAG_BACKEND_URL" envDefault:"http://localhost:50505"`
	TopK             int     `env:"RAG_TOP_K" envDefault:"3"`
	Temperature      float64 `env:"RAG_TEMPERATURE" envDefault:"0.3"`
	MinSearchScore   float64 `env:"RAG_MIN_SEARCH_SCORE" envDefault:"0.0"`
	MinRerankerScore float64 `env:"RAG_MIN_RERANKER_SCORE" envDefault:"0.0"`
	TimeoutSeconds   int     `env:"RAG_TIMEOUT_SECONDS" envDefault:"30"`

	// MaxHistoryTokens bounds the history assembled into a query payload.
	// Zero disables the trim.
	MaxHistoryTokens int `env:"RAG_MAX_HISTORY_TOKENS" envDefault:"3000"`
}

func NewBackendConfig(ctx context.Context) *BackendConfig {
	c := &BackendConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Backend config")
	}
	return c
}

func (c BackendConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
