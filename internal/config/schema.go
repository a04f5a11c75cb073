package config

// PuzzlesConfig selects which puzzles are served and how
type PuzzlesConfig struct {
	Defaults Defaults       `yaml:"defaults"`
	Puzzles  []PuzzleConfig `yaml:"puzzles"`
}

// Defaults apply to every request
type Defaults struct {
	MaxInputBytes int `yaml:"max_input_bytes"`
}

// PuzzleConfig overrides one day/part. A missing enabled flag means enabled.
type PuzzleConfig struct {
	Day     int    `yaml:"day"`
	Part    int    `yaml:"part"`
	Enabled *bool  `yaml:"enabled"`
	Variant string `yaml:"variant"`
}

func (p PuzzleConfig) IsEnabled() bool {
	return p.Enabled == nil || *p.Enabled
}
