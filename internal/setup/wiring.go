package setup

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/povarna/generative-ai-agents/aoc-solver/internal/aoc"
	"github.com/povarna/generative-ai-agents/aoc-solver/internal/cache"
	"github.com/povarna/generative-ai-agents/aoc-solver/internal/config"
	"github.com/povarna/generative-ai-agents/aoc-solver/internal/database"
	"github.com/povarna/generative-ai-agents/aoc-solver/internal/executor"
	"github.com/povarna/generative-ai-agents/aoc-solver/internal/prechecks"
	"github.com/povarna/generative-ai-agents/aoc-solver/internal/puzzle"
	"github.com/povarna/generative-ai-agents/aoc-solver/internal/redis"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

type Config struct {
	LogLevel          string
	PuzzlesConfigPath string
	APIPort           string
	Workers           int
	// Zero defers to defaults.max_input_bytes in the puzzles config.
	MaxInputBytes  int
	CacheEnabled   bool
	CacheTTL       time.Duration
	RedisAddr      string
	RedisPassword  string
	StreamProvider string
	HistoryEnabled bool
	DB             database.Config
}

type Dependencies struct {
	Registry      *puzzle.Registry
	Executor      *executor.Executor
	MaxInputBytes int
	Redis         *goredis.Client
	DB            *database.DB
	Logger        *zerolog.Logger
}

func LoadConfig() *Config {
	return &Config{
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		PuzzlesConfigPath: getEnv("PUZZLES_CONFIG_PATH", config.DefaultPuzzlesConfigPath),
		APIPort:           getEnv("AOC_API_PORT", "18082"),
		Workers:           getEnvInt("WORKERS", 4),
		MaxInputBytes:     getEnvInt("MAX_INPUT_BYTES", 0),
		CacheEnabled:      getEnvBool("CACHE_ENABLED", false),
		CacheTTL:          getEnvDuration("CACHE_TTL", 24*time.Hour),
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:     getEnv("REDIS_PASSWORD", ""),
		StreamProvider:    getEnv("STREAM_PROVIDER", "redis"),
		HistoryEnabled:    getEnvBool("HISTORY_ENABLED", false),
		DB: database.Config{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "aoc"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
	}
}

// Wire builds the registry and executor. The answer cache and the result
// history are connected only when enabled; call Close when done.
func Wire(ctx context.Context, cfg *Config, logger *zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: logger}

	registry, err := aoc.NewRegistry()
	if err != nil {
		return nil, fmt.Errorf("failed to build puzzle registry: %w", err)
	}
	deps.Registry = registry

	// Load puzzle configuration from YAML
	puzzlesConfig, err := config.LoadPuzzlesConfig(cfg.PuzzlesConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load puzzles config: %w", err)
	}
	if err := puzzlesConfig.Apply(registry); err != nil {
		return nil, fmt.Errorf("failed to apply puzzles config: %w", err)
	}

	maxInputBytes := cfg.MaxInputBytes
	if maxInputBytes <= 0 {
		maxInputBytes = puzzlesConfig.Defaults.MaxInputBytes
	}
	deps.MaxInputBytes = maxInputBytes

	// PreChecks
	checks := []prechecks.Checker{
		prechecks.NewSizeChecker(maxInputBytes),
		prechecks.NewFormatChecker(),
	}

	var answerCache executor.AnswerCache
	if cfg.CacheEnabled {
		client, err := redis.ConnectRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, 3, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to connect answer cache: %w", err)
		}
		deps.Redis = client
		answerCache = cache.NewRedisAnswerCache(client, cfg.CacheTTL)
	}

	var recorder executor.ResultRecorder
	if cfg.HistoryEnabled {
		db, err := connectHistory(ctx, cfg.DB)
		if err != nil {
			deps.Close()
			return nil, err
		}
		deps.DB = db
		recorder = db
	}

	deps.Executor = executor.NewExecutor(registry, checks, answerCache, recorder, logger)

	logger.Info().
		Int("puzzles", registry.Len()).
		Int("max_input_bytes", maxInputBytes).
		Bool("cache", cfg.CacheEnabled).
		Bool("history", cfg.HistoryEnabled).
		Msg("Dependencies wired")

	return deps, nil
}

func connectHistory(ctx context.Context, cfg database.Config) (*database.DB, error) {
	db, err := database.New(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, err
	}
	if err := db.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// Close releases the cache and history connections.
func (d *Dependencies) Close() {
	if d.Redis != nil {
		if err := d.Redis.Close(); err != nil {
			d.Logger.Warn().Err(err).Msg("Failed to close Redis client")
		}
	}
	if d.DB != nil {
		d.DB.Close()
	}
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		value = defaultValue
	}

	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		value = defaultValue
	}

	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		value = defaultValue
	}

	return value
}
