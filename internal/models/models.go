package models

import (
	"time"

	"github.com/povarna/generative-ai-agents/aoc-solver/internal/puzzle"
)

type Status string

const (
	StatusOK           Status = "ok"
	StatusInvalidInput Status = "invalid_input"
	StatusNotFound     Status = "not_found"
	StatusError        Status = "error"
)

// Input message

type SolveRequest struct {
	RequestID string `json:"request_id,omitempty" jsonschema:"Optional caller supplied identifier echoed in the result"`
	Day       int    `json:"day" jsonschema:"Puzzle day, 1 to 5"`
	Part      int    `json:"part" jsonschema:"Puzzle part, 1 or 2"`
	Variant   string `json:"variant,omitempty" jsonschema:"Optional solution strategy, the default variant is used when empty"`
	Input     string `json:"input" jsonschema:"Raw puzzle input text"`
}

func (r SolveRequest) Key() puzzle.Key {
	return puzzle.Key{Day: r.Day, Part: r.Part, Variant: r.Variant}
}

// Output message

type SolveResult struct {
	ID         string        `json:"id"`
	Day        int           `json:"day"`
	Part       int           `json:"part"`
	Variant    string        `json:"variant,omitempty"`
	Answer     string        `json:"answer,omitempty"`
	Status     Status        `json:"status"`
	Error      string        `json:"error,omitempty"`
	Cached     bool          `json:"cached"`
	InputBytes int           `json:"input_bytes"`
	Duration   time.Duration `json:"duration_ns"`
	CreatedAt  time.Time     `json:"created_at"`
}

func (r SolveResult) OK() bool {
	return r.Status == StatusOK
}

type PuzzleInfo struct {
	Key     string `json:"key"`
	Day     int    `json:"day"`
	Part    int    `json:"part"`
	Variant string `json:"variant,omitempty"`
	Title   string `json:"title"`
	Default bool   `json:"default"`
}

func NewPuzzleInfo(p puzzle.Puzzle) PuzzleInfo {
	return PuzzleInfo{
		Key:     p.Key.String(),
		Day:     p.Key.Day,
		Part:    p.Key.Part,
		Variant: p.Key.Variant,
		Title:   p.Title,
		Default: p.Default,
	}
}

func NewPuzzleInfos(puzzles []puzzle.Puzzle) []PuzzleInfo {
	infos := make([]PuzzleInfo, len(puzzles))
	for i, p := range puzzles {
		infos[i] = NewPuzzleInfo(p)
	}
	return infos
}
