package aoc2018day01

import (
	"errors"
	"testing"

	"github.com/povarna/generative-ai-agents/aoc-solver/internal/puzzle"
)

func TestPart1(t *testing.T) {
	testCase := []struct {
		name     string
		input    string
		expected int64
	}{
		{name: "mixed", input: "+1\n-2\n+3\n+1", expected: 3},
		{name: "comma separated", input: "+1, -2, +3, +1", expected: 3},
		{name: "all positive", input: "+1\n+1\n+1\n", expected: 3},
		{name: "cancel out", input: "+1\n+1\n-2", expected: 0},
		{name: "all negative", input: "-1\n-2\n-3", expected: -6},
		{name: "empty", input: "", expected: 0},
	}

	for _, tc := range testCase {
		t.Run(tc.name, func(t *testing.T) {
			result, err := Part1(tc.input)
			if err != nil {
				t.Fatalf("Part1(%q) failed: %v", tc.input, err)
			}
			if result != tc.expected {
				t.Errorf("Part1(%q) = %d; want %d", tc.input, result, tc.expected)
			}
		})
	}
}

func TestPart2(t *testing.T) {
	testCase := []struct {
		name     string
		input    string
		expected int64
	}{
		{name: "returns to zero", input: "+1\n-1", expected: 0},
		{name: "second cycle", input: "+3\n+3\n+4\n-2\n-4", expected: 10},
		{name: "many cycles", input: "-6\n+3\n+8\n+5\n-6", expected: 5},
		{name: "drifting", input: "+7\n+7\n-2\n-7\n-4", expected: 14},
		{name: "sample", input: "+1\n-2\n+3\n+1", expected: 2},
	}

	for _, tc := range testCase {
		t.Run(tc.name, func(t *testing.T) {
			result, err := Part2(tc.input)
			if err != nil {
				t.Fatalf("Part2(%q) failed: %v", tc.input, err)
			}
			if result != tc.expected {
				t.Errorf("Part2(%q) = %d; want %d", tc.input, result, tc.expected)
			}
		})
	}
}

func TestInvalidInput(t *testing.T) {
	testCase := []struct {
		name  string
		part  func(string) (int64, error)
		input string
	}{
		{name: "missing sign", part: Part1, input: "+1\n2"},
		{name: "not a number", part: Part1, input: "+x"},
		{name: "overflow", part: Part1, input: "+9223372036854775807\n+1"},
		{name: "part2 empty", part: Part2, input: "\n"},
		{name: "part2 never repeats", part: Part2, input: "+1"},
		{name: "part2 never repeats with spread", part: Part2, input: "+5\n-2"},
	}

	for _, tc := range testCase {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.part(tc.input)
			if !errors.Is(err, puzzle.ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput for %q, got %v", tc.input, err)
			}
		})
	}
}
