package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/povarna/generative-ai-agents/aoc-solver/internal/prechecks"
	"github.com/povarna/generative-ai-agents/aoc-solver/internal/puzzle"
	"gopkg.in/yaml.v3"
)

const DefaultPuzzlesConfigPath = "configs/puzzles.yaml"

// LoadPuzzlesConfig reads the puzzles config at path, DefaultPuzzlesConfigPath
// when empty. A missing file yields the built-in defaults with every puzzle
// enabled.
func LoadPuzzlesConfig(path string) (*PuzzlesConfig, error) {
	if path == "" {
		path = DefaultPuzzlesConfigPath
	}

	var cfg PuzzlesConfig

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read puzzles config: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse puzzles config %s: %w", path, err)
		}
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *PuzzlesConfig) {
	if cfg.Defaults.MaxInputBytes == 0 {
		cfg.Defaults.MaxInputBytes = prechecks.DefaultMaxInputBytes
	}
}

func (c *PuzzlesConfig) Validate() error {
	if c.Defaults.MaxInputBytes < 0 {
		return fmt.Errorf("defaults.max_input_bytes must not be negative, got %d", c.Defaults.MaxInputBytes)
	}

	seen := make(map[[2]int]bool)
	for i, p := range c.Puzzles {
		if p.Day < 1 || p.Day > 25 {
			return fmt.Errorf("puzzles[%d]: day must be between 1 and 25, got %d", i, p.Day)
		}
		if p.Part != 1 && p.Part != 2 {
			return fmt.Errorf("puzzles[%d]: part must be 1 or 2, got %d", i, p.Part)
		}
		if seen[[2]int{p.Day, p.Part}] {
			return fmt.Errorf("puzzles[%d]: day %d part %d is configured twice", i, p.Day, p.Part)
		}
		seen[[2]int{p.Day, p.Part}] = true
	}

	return nil
}

// Apply removes disabled puzzles from reg and sets configured default
// variants.
func (c *PuzzlesConfig) Apply(reg *puzzle.Registry) error {
	for _, p := range c.Puzzles {
		if !p.IsEnabled() {
			for _, registered := range reg.List() {
				if registered.Key.Day == p.Day && registered.Key.Part == p.Part {
					reg.Remove(registered.Key)
				}
			}
			continue
		}

		if p.Variant != "" {
			key := puzzle.Key{Day: p.Day, Part: p.Part, Variant: p.Variant}
			if err := reg.SetDefault(key); err != nil {
				return fmt.Errorf("failed to set default variant: %w", err)
			}
		}
	}

	return nil
}
