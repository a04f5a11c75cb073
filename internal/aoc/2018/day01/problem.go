package aoc2018day01

import (
	"strconv"
	"strings"

	"github.com/povarna/generative-ai-agents/aoc-solver/internal/puzzle"
	"github.com/povarna/generative-ai-agents/aoc-solver/internal/utils"
)

type occurrence struct {
	cycle    int
	position int
}

// Part1 returns the sum of all frequency changes.
func Part1(input string) (int64, error) {
	changes, err := parseChanges(input)
	if err != nil {
		return 0, err
	}

	var total int64
	for _, change := range changes {
		var ok bool
		if total, ok = utils.AddChecked(total, change); !ok {
			return 0, puzzle.Invalidf("frequency overflows after adding %+d", change)
		}
	}

	return total, nil
}

// Part2 applies the changes over and over and returns the first running
// total that is reached twice.
func Part2(input string) (int64, error) {
	changes, err := parseChanges(input)
	if err != nil {
		return 0, err
	}
	if len(changes) == 0 {
		return 0, puzzle.Invalidf("no frequency changes")
	}

	maxCycles, err := cycleBound(changes)
	if err != nil {
		return 0, err
	}

	seen := map[int64]occurrence{0: {}}
	var total int64

	for cycle := 0; cycle <= maxCycles; cycle++ {
		for i, change := range changes {
			var ok bool
			if total, ok = utils.AddChecked(total, change); !ok {
				return 0, puzzle.Invalidf("frequency overflows after adding %+d", change)
			}
			if _, exists := seen[total]; exists {
				return total, nil
			}
			seen[total] = occurrence{cycle: cycle, position: i + 1}
		}
	}

	return 0, puzzle.Invalidf("frequency never repeats")
}

// cycleBound returns the last cycle in which a first repeat can occur. With
// net drift s every value of cycle k is a first-cycle prefix sum shifted by
// k*s, so two prefix sums can only meet within spread/|s| cycles.
func cycleBound(changes []int64) (int, error) {
	var sum, lo, hi int64
	for _, change := range changes {
		var ok bool
		if sum, ok = utils.AddChecked(sum, change); !ok {
			return 0, puzzle.Invalidf("frequency overflows after adding %+d", change)
		}
		lo = min(lo, sum)
		hi = max(hi, sum)
	}

	if sum == 0 {
		return 0, nil
	}
	spread, ok := utils.AddChecked(hi, -lo)
	if !ok {
		return 0, puzzle.Invalidf("frequency range overflows")
	}
	if sum < 0 {
		sum = -sum
	}
	return int(spread/sum) + 1, nil
}

func parseChanges(input string) ([]int64, error) {
	var changes []int64

	for _, line := range utils.Lines(input) {
		for field := range strings.SplitSeq(line, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			if field[0] != '+' && field[0] != '-' {
				return nil, puzzle.Invalidf("frequency change %q has no sign", field)
			}
			n, err := strconv.ParseInt(field, 10, 64)
			if err != nil {
				return nil, puzzle.Invalidf("frequency change %q: %v", field, err)
			}
			changes = append(changes, n)
		}
	}

	return changes, nil
}
