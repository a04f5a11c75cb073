package aoc2018day04

import (
	"errors"
	"testing"

	"github.com/povarna/generative-ai-agents/aoc-solver/internal/puzzle"
)

// Lines are shuffled; the solver must order them by timestamp.
const sampleInput = `[1518-11-01 00:05] falls asleep
[1518-11-01 00:00] Guard #10 begins shift
[1518-11-01 00:25] wakes up
[1518-11-01 00:30] falls asleep
[1518-11-01 00:55] wakes up
[1518-11-01 23:58] Guard #99 begins shift
[1518-11-02 00:40] falls asleep
[1518-11-02 00:50] wakes up
[1518-11-03 00:05] Guard #10 begins shift
[1518-11-03 00:24] falls asleep
[1518-11-03 00:29] wakes up
[1518-11-04 00:02] Guard #99 begins shift
[1518-11-04 00:36] falls asleep
[1518-11-04 00:46] wakes up
[1518-11-05 00:03] Guard #99 begins shift
[1518-11-05 00:45] falls asleep
[1518-11-05 00:55] wakes up
`

func TestPart1(t *testing.T) {
	result, err := Part1(sampleInput)
	if err != nil {
		t.Fatalf("Part1 failed: %v", err)
	}

	want := GuardMinute{Guard: 10, Minute: 24}
	if result != want {
		t.Errorf("Part1 = %+v; want %+v", result, want)
	}
	if result.String() != "240" {
		t.Errorf("Part1 renders as %q; want 240", result.String())
	}
}

func TestPart2(t *testing.T) {
	result, err := Part2(sampleInput)
	if err != nil {
		t.Fatalf("Part2 failed: %v", err)
	}

	want := GuardMinute{Guard: 99, Minute: 45}
	if result != want {
		t.Errorf("Part2 = %+v; want %+v", result, want)
	}
	if result.Checksum() != 4455 {
		t.Errorf("Part2 checksum = %d; want 4455", result.Checksum())
	}
}

func TestPart1_LastMinute(t *testing.T) {
	input := `[1518-03-01 00:00] Guard #7 begins shift
[1518-03-01 00:58] falls asleep
[1518-03-01 00:59] wakes up
`
	result, err := Part1(input)
	if err != nil {
		t.Fatalf("Part1 failed: %v", err)
	}
	if result.Checksum() != 7*58 {
		t.Errorf("Part1 = %+v; want guard 7 at minute 58", result)
	}
}

func TestMostCommonMinutes(t *testing.T) {
	schedule, err := parseSchedule(sampleInput)
	if err != nil {
		t.Fatalf("parseSchedule failed: %v", err)
	}

	tests := []struct {
		guard   int
		minutes []int
		count   int
	}{
		{guard: 10, minutes: []int{24}, count: 2},
		{guard: 99, minutes: []int{45}, count: 3},
	}

	for _, test := range tests {
		minutes, count := mostCommonMinutes(schedule[test.guard])
		if count != test.count || len(minutes) != len(test.minutes) || minutes[0] != test.minutes[0] {
			t.Errorf("guard #%d: got minutes %v (%d times); want %v (%d times)",
				test.guard, minutes, count, test.minutes, test.count)
		}
	}
}

func TestInvalidInput(t *testing.T) {
	testCase := []struct {
		name  string
		input string
	}{
		{
			name:  "empty",
			input: "",
		},
		{
			name:  "nobody sleeps",
			input: "[1518-11-01 00:00] Guard #10 begins shift",
		},
		{
			name:  "malformed timestamp",
			input: "[1518-11-01 0:05] falls asleep",
		},
		{
			name:  "missing bracket",
			input: "1518-11-01 00:05 falls asleep",
		},
		{
			name:  "unknown event",
			input: "[1518-11-01 00:00] Guard #10 takes a nap",
		},
		{
			name:  "bad guard id",
			input: "[1518-11-01 00:00] Guard #ten begins shift",
		},
		{
			name:  "sleep before any shift",
			input: "[1518-11-01 00:05] falls asleep\n[1518-11-01 00:10] wakes up",
		},
		{
			name:  "never wakes up",
			input: "[1518-11-01 00:00] Guard #10 begins shift\n[1518-11-01 00:05] falls asleep",
		},
		{
			name:  "wakes without sleeping",
			input: "[1518-11-01 00:00] Guard #10 begins shift\n[1518-11-01 00:05] wakes up",
		},
		{
			name:  "duplicate timestamp",
			input: "[1518-11-01 00:00] Guard #10 begins shift\n[1518-11-01 00:05] falls asleep\n[1518-11-01 00:05] wakes up",
		},
		{
			name:  "sleeps past the hour",
			input: "[1518-11-01 00:00] Guard #10 begins shift\n[1518-11-01 00:05] falls asleep\n[1518-11-01 01:05] wakes up",
		},
		{
			name:  "sleeps before midnight",
			input: "[1518-11-01 23:00] Guard #10 begins shift\n[1518-11-01 23:05] falls asleep\n[1518-11-01 23:10] wakes up",
		},
	}

	for _, tc := range testCase {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Part1(tc.input); !errors.Is(err, puzzle.ErrInvalidInput) {
				t.Errorf("Part1 error = %v; want ErrInvalidInput", err)
			}
			if _, err := Part2(tc.input); !errors.Is(err, puzzle.ErrInvalidInput) {
				t.Errorf("Part2 error = %v; want ErrInvalidInput", err)
			}
		})
	}
}

func TestTies(t *testing.T) {
	t.Run("part1 guards tie on total", func(t *testing.T) {
		input := `[1518-01-01 00:00] Guard #1 begins shift
[1518-01-01 00:10] falls asleep
[1518-01-01 00:20] wakes up
[1518-01-02 00:00] Guard #2 begins shift
[1518-01-02 00:30] falls asleep
[1518-01-02 00:40] wakes up
`
		if _, err := Part1(input); !errors.Is(err, puzzle.ErrInvalidInput) {
			t.Errorf("Part1 error = %v; want ErrInvalidInput", err)
		}
	})

	t.Run("part1 minutes tie", func(t *testing.T) {
		input := `[1518-01-01 00:00] Guard #1 begins shift
[1518-01-01 00:10] falls asleep
[1518-01-01 00:12] wakes up
`
		if _, err := Part1(input); !errors.Is(err, puzzle.ErrInvalidInput) {
			t.Errorf("Part1 error = %v; want ErrInvalidInput", err)
		}
	})

	t.Run("part2 guards tie on frequency", func(t *testing.T) {
		input := `[1518-01-01 00:00] Guard #1 begins shift
[1518-01-01 00:10] falls asleep
[1518-01-01 00:11] wakes up
[1518-01-02 00:00] Guard #2 begins shift
[1518-01-02 00:30] falls asleep
[1518-01-02 00:35] wakes up
`
		if _, err := Part2(input); !errors.Is(err, puzzle.ErrInvalidInput) {
			t.Errorf("Part2 error = %v; want ErrInvalidInput", err)
		}
	})
}
