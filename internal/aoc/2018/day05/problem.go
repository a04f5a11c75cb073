package aoc2018day05

import (
	"strings"

	"github.com/povarna/generative-ai-agents/aoc-solver/internal/puzzle"
)

func parsePolymer(input string) ([]byte, error) {
	polymer := []byte(strings.TrimSpace(input))
	for i, c := range polymer {
		if !isLetter(c) {
			return nil, puzzle.Invalidf("unit %q at position %d is not an ASCII letter", c, i)
		}
	}
	return polymer, nil
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// react reports whether two letters are the same unit with opposite
// polarity. ASCII upper and lower case differ only in bit 5.
func react(a, b byte) bool {
	return a^b == 0x20
}

// ReduceScan removes reacting pairs in place, stepping back one unit after
// every removal so that newly adjacent units are compared. The result shares
// polymer's backing array.
func ReduceScan(polymer []byte) []byte {
	out := polymer[:0]
	for _, unit := range polymer {
		if n := len(out); n > 0 && react(out[n-1], unit) {
			out = out[:n-1]
			continue
		}
		out = append(out, unit)
	}
	return out
}

// ReduceSplit cuts the polymer at every reacting pair into groups that are
// irreducible on their own, then cancels units across group boundaries until
// nothing changes.
func ReduceSplit(polymer []byte) []byte {
	for len(polymer) >= 2 && react(polymer[0], polymer[1]) {
		polymer = polymer[2:]
	}
	for n := len(polymer); n >= 2 && react(polymer[n-2], polymer[n-1]); n = len(polymer) {
		polymer = polymer[:n-2]
	}

	var groups [][]byte
	start := 0
	for i := 0; i+1 < len(polymer); {
		if !react(polymer[i], polymer[i+1]) {
			i++
			continue
		}
		if start < i {
			groups = append(groups, polymer[start:i])
		}
		i += 2
		start = i
	}
	if start < len(polymer) {
		groups = append(groups, polymer[start:])
	}

	for changed := true; changed; {
		changed = false
		for i := 0; i+1 < len(groups); {
			left, right := groups[i], groups[i+1]
			if !react(left[len(left)-1], right[0]) {
				i++
				continue
			}
			changed = true
			groups[i], groups[i+1] = left[:len(left)-1], right[1:]
			if len(groups[i+1]) == 0 {
				groups = append(groups[:i+1], groups[i+2:]...)
			}
			if len(groups[i]) == 0 {
				groups = append(groups[:i], groups[i+1:]...)
			}
		}
	}

	out := make([]byte, 0, len(polymer))
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// Part1Scan returns the length of the fully reacted polymer.
func Part1Scan(input string) (int, error) {
	polymer, err := parsePolymer(input)
	if err != nil {
		return 0, err
	}
	return len(ReduceScan(polymer)), nil
}

// Part1Split is Part1Scan computed with ReduceSplit.
func Part1Split(input string) (int, error) {
	polymer, err := parsePolymer(input)
	if err != nil {
		return 0, err
	}
	return len(ReduceSplit(polymer)), nil
}

// Part2 removes every unit of one type, for each of the 26 types, and
// returns the shortest fully reacted length.
func Part2(input string) (int, error) {
	polymer, err := parsePolymer(input)
	if err != nil {
		return 0, err
	}

	// Reacting first does not change the result and shrinks every pass.
	polymer = ReduceScan(polymer)

	shortest := len(polymer)
	filtered := make([]byte, 0, len(polymer))
	for unit := byte('a'); unit <= 'z'; unit++ {
		filtered = filtered[:0]
		for _, c := range polymer {
			if c|0x20 != unit {
				filtered = append(filtered, c)
			}
		}
		shortest = min(shortest, len(ReduceScan(filtered)))
	}
	return shortest, nil
}
