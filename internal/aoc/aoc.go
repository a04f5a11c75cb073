// Package aoc is the catalog of Advent of Code solutions served by every
// entry point.
package aoc

import (
	"fmt"

	"github.com/povarna/generative-ai-agents/aoc-solver/internal/aoc/2018/day01"
	"github.com/povarna/generative-ai-agents/aoc-solver/internal/aoc/2018/day02"
	"github.com/povarna/generative-ai-agents/aoc-solver/internal/aoc/2018/day03"
	"github.com/povarna/generative-ai-agents/aoc-solver/internal/aoc/2018/day04"
	"github.com/povarna/generative-ai-agents/aoc-solver/internal/aoc/2018/day05"
	"github.com/povarna/generative-ai-agents/aoc-solver/internal/puzzle"
)

const Year = 2018

// Titles holds the puzzle name of every implemented day.
var Titles = map[int]string{
	1: "Chronal Calibration",
	2: "Inventory Management System",
	3: "No Matter How You Slice It",
	4: "Repose Record",
	5: "Alchemical Reduction",
}

func catalog() []puzzle.Puzzle {
	return []puzzle.Puzzle{
		{Key: puzzle.Key{Day: 1, Part: 1}, Solve: solution(aoc2018day01.Part1)},
		{Key: puzzle.Key{Day: 1, Part: 2}, Solve: solution(aoc2018day01.Part2)},

		{Key: puzzle.Key{Day: 2, Part: 1}, Solve: solution(aoc2018day02.Part1)},
		{Key: puzzle.Key{Day: 2, Part: 2}, Solve: solution(aoc2018day02.Part2)},

		{Key: puzzle.Key{Day: 3, Part: 1}, Solve: solution(aoc2018day03.Part1)},
		{Key: puzzle.Key{Day: 3, Part: 2, Variant: "grid"}, Solve: solution(aoc2018day03.Part2Grid), Default: true},
		{Key: puzzle.Key{Day: 3, Part: 2, Variant: "geometric"}, Solve: solution(aoc2018day03.Part2Geometric)},

		{Key: puzzle.Key{Day: 4, Part: 1}, Solve: solution(aoc2018day04.Part1)},
		{Key: puzzle.Key{Day: 4, Part: 2}, Solve: solution(aoc2018day04.Part2)},

		{Key: puzzle.Key{Day: 5, Part: 1, Variant: "scan"}, Solve: solution(aoc2018day05.Part1Scan), Default: true},
		{Key: puzzle.Key{Day: 5, Part: 1, Variant: "split"}, Solve: solution(aoc2018day05.Part1Split)},
		{Key: puzzle.Key{Day: 5, Part: 2}, Solve: solution(aoc2018day05.Part2)},
	}
}

// Register adds every solution to reg.
func Register(reg *puzzle.Registry) error {
	for _, p := range catalog() {
		p.Title = Titles[p.Key.Day]
		if err := reg.Register(p); err != nil {
			return fmt.Errorf("register %s: %w", p.Key, err)
		}
	}
	return nil
}

// NewRegistry returns a registry holding the whole catalog.
func NewRegistry() (*puzzle.Registry, error) {
	reg := puzzle.NewRegistry()
	if err := Register(reg); err != nil {
		return nil, err
	}
	return reg, nil
}

func solution[T any](solve func(string) (T, error)) puzzle.Solution {
	return func(input string) (any, error) {
		answer, err := solve(input)
		if err != nil {
			return nil, err
		}
		return answer, nil
	}
}
