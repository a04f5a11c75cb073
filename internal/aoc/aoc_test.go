package aoc

import (
	"errors"
	"fmt"
	"testing"

	"github.com/povarna/generative-ai-agents/aoc-solver/internal/puzzle"
)

const day4Sample = `[1518-11-01 00:00] Guard #10 begins shift
[1518-11-01 00:05] falls asleep
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
[1518-11-05 00:55] wakes up`

func TestRegister(t *testing.T) {
	reg, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}

	if reg.Len() != 12 {
		t.Errorf("Len() = %d; want 12", reg.Len())
	}

	for _, p := range reg.List() {
		if p.Title == "" {
			t.Errorf("%s has no title", p.Key)
		}
	}

	if err := Register(reg); !errors.Is(err, puzzle.ErrDuplicate) {
		t.Errorf("second Register error = %v; want ErrDuplicate", err)
	}
}

func TestDefaultVariants(t *testing.T) {
	reg, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}

	testCase := []struct {
		key     puzzle.Key
		variant string
	}{
		{key: puzzle.Key{Day: 3, Part: 2}, variant: "grid"},
		{key: puzzle.Key{Day: 5, Part: 1}, variant: "scan"},
		{key: puzzle.Key{Day: 1, Part: 1}, variant: ""},
	}

	for _, tc := range testCase {
		t.Run(tc.key.String(), func(t *testing.T) {
			p, err := reg.Get(tc.key)
			if err != nil {
				t.Fatalf("Get failed: %v", err)
			}
			if p.Key.Variant != tc.variant || !p.Default {
				t.Errorf("Get(%s) = %s default=%v; want variant %q", tc.key, p.Key, p.Default, tc.variant)
			}
		})
	}
}

func TestSamples(t *testing.T) {
	reg, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}

	testCase := []struct {
		key      string
		input    string
		expected string
	}{
		{key: "1/1", input: "+1\n-2\n+3\n+1", expected: "3"},
		{key: "1/2", input: "+1\n-2\n+3\n+1", expected: "2"},
		{key: "2/1", input: "abcdef\nbababc\nabbcde\nabcccd\naabcdd\nabcdee\nababab", expected: "12"},
		{key: "2/2", input: "abcde\nfghij\nklmno\npqrst\nfguij\naxcye\nwvxyz", expected: "fgij"},
		{key: "3/1", input: "#1 @ 1,3: 4x4\n#2 @ 3,1: 4x4\n#3 @ 5,5: 2x2", expected: "4"},
		{key: "3/2/grid", input: "#1 @ 1,3: 4x4\n#2 @ 3,1: 4x4\n#3 @ 5,5: 2x2", expected: "3"},
		{key: "3/2/geometric", input: "#1 @ 1,3: 4x4\n#2 @ 3,1: 4x4\n#3 @ 5,5: 2x2", expected: "3"},
		{key: "4/1", input: day4Sample, expected: "240"},
		{key: "4/2", input: day4Sample, expected: "4455"},
		{key: "5/1/scan", input: "dabAcCaCBAcCcaDA", expected: "10"},
		{key: "5/1/split", input: "dabAcCaCBAcCcaDA", expected: "10"},
		{key: "5/2", input: "dabAcCaCBAcCcaDA", expected: "4"},
	}

	for _, tc := range testCase {
		t.Run(tc.key, func(t *testing.T) {
			key, err := puzzle.ParseKey(tc.key)
			if err != nil {
				t.Fatalf("ParseKey failed: %v", err)
			}
			p, err := reg.Get(key)
			if err != nil {
				t.Fatalf("Get failed: %v", err)
			}

			answer, err := p.Solve(tc.input)
			if err != nil {
				t.Fatalf("Solve failed: %v", err)
			}
			if got := fmt.Sprint(answer); got != tc.expected {
				t.Errorf("%s = %s; want %s", tc.key, got, tc.expected)
			}
		})
	}
}

func TestSolveReturnsNoAnswerOnError(t *testing.T) {
	reg, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}

	p, err := reg.Get(puzzle.Key{Day: 1, Part: 1})
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	answer, err := p.Solve("1\n2")
	if !errors.Is(err, puzzle.ErrInvalidInput) {
		t.Errorf("Solve error = %v; want ErrInvalidInput", err)
	}
	if answer != nil {
		t.Errorf("Solve answer = %v; want nil", answer)
	}
}
