package aoc2018day02

import (
	"strings"

	"github.com/povarna/generative-ai-agents/aoc-solver/internal/puzzle"
	"github.com/povarna/generative-ai-agents/aoc-solver/internal/utils"
)

// Part1 returns the checksum: the number of ids containing some letter
// exactly twice multiplied by the number containing some letter exactly
// three times.
func Part1(input string) (int, error) {
	hadTwo, hadThree := 0, 0

	for _, boxID := range utils.Lines(input) {
		counts := make(map[rune]int)
		for _, c := range strings.TrimSpace(boxID) {
			counts[c]++
		}

		two, three := false, false
		for _, count := range counts {
			switch count {
			case 2:
				two = true
			case 3:
				three = true
			}
		}

		if two {
			hadTwo++
		}
		if three {
			hadThree++
		}
	}

	checksum, ok := utils.MulChecked(hadTwo, hadThree)
	if !ok {
		return 0, puzzle.Invalidf("checksum overflows")
	}
	return checksum, nil
}

// Part2 finds the only two ids that differ in exactly one position and
// returns the characters they have in common.
func Part2(input string) (string, error) {
	var boxIDs [][]rune
	for _, line := range utils.Lines(input) {
		boxIDs = append(boxIDs, []rune(strings.TrimSpace(line)))
	}

	if len(boxIDs) < 2 {
		return "", puzzle.Invalidf("need at least two box ids, got %d", len(boxIDs))
	}
	width := len(boxIDs[0])
	for i, boxID := range boxIDs {
		if len(boxID) != width {
			return "", puzzle.Invalidf("box id %d has length %d, want %d", i+1, len(boxID), width)
		}
	}

	answer, found := "", false
	for i, boxID := range boxIDs[:len(boxIDs)-1] {
		for _, other := range boxIDs[i+1:] {
			diffAt, ok := singleDifference(boxID, other)
			if !ok {
				continue
			}
			if found {
				return "", puzzle.Invalidf("more than one pair of box ids differs by one character")
			}
			answer = string(boxID[:diffAt]) + string(boxID[diffAt+1:])
			found = true
		}
	}

	if !found {
		return "", puzzle.Invalidf("no pair of box ids differs by exactly one character")
	}
	return answer, nil
}

// singleDifference reports the index of the only position at which a and b
// differ. a and b have equal length.
func singleDifference(a, b []rune) (int, bool) {
	at := -1
	for i := range a {
		if a[i] == b[i] {
			continue
		}
		if at >= 0 {
			return 0, false
		}
		at = i
	}
	return at, at >= 0
}
