package stream

import (
	"context"
	"fmt"

	red "github.com/povarna/generative-ai-agents/aoc-solver/internal/redis"
	"github.com/povarna/generative-ai-agents/aoc-solver/internal/stream/redis"
	"github.com/rs/zerolog"
)

type StreamConfig struct {
	Provider    string // only redis for now
	RedisConfig *redis.RedisStreamConfig
}

// NewStreamConsumer connects to the configured provider. The returned
// consumer owns its connection; Stop releases it.
func NewStreamConsumer(
	ctx context.Context,
	cfg *StreamConfig,
	solver redis.Solver,
	logger *zerolog.Logger,
) (StreamConsumer, error) {

	// If provider is empty, fallback to the default configuration.
	provider := cfg.Provider
	if provider == "" {
		provider = "redis"
	}

	switch provider {
	case "redis":
		if cfg.RedisConfig == nil {
			return nil, fmt.Errorf("redis config required")
		}

		client, err := red.ConnectRedis(
			ctx,
			cfg.RedisConfig.RedisAddr,
			cfg.RedisConfig.RedisPassword,
			5,
			logger,
		)
		if err != nil {
			return nil, err
		}

		return redis.NewConsumer(client, cfg.RedisConfig, solver, logger), nil

	default:
		return nil, fmt.Errorf("unsupported stream provider: %s", cfg.Provider)
	}
}
