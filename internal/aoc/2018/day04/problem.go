package aoc2018day04

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/povarna/generative-ai-agents/aoc-solver/internal/puzzle"
	"github.com/povarna/generative-ai-agents/aoc-solver/internal/utils"
)

const (
	timestampLayout = "2006-01-02 15:04"
	// A guard that wakes up at 00:59 at the latest was asleep up to minute 58.
	minuteSlots = 59
)

type eventKind int

const (
	shiftChange eventKind = iota
	fallAsleep
	wakeUp
)

type event struct {
	stamp time.Time
	raw   string
	kind  eventKind
	guard int
}

// MinuteCounts counts, per minute of the midnight hour, how often a guard
// was asleep.
type MinuteCounts [minuteSlots]int

// GuardMinute identifies a guard and a minute of the midnight hour. It
// renders as the product of both.
type GuardMinute struct {
	Guard  int `json:"guard"`
	Minute int `json:"minute"`
}

func (gm GuardMinute) Checksum() int {
	return gm.Guard * gm.Minute
}

func (gm GuardMinute) String() string {
	return strconv.Itoa(gm.Checksum())
}

// Part1 finds the guard that sleeps the most and the minute that guard is
// most often asleep.
func Part1(input string) (GuardMinute, error) {
	schedule, err := parseSchedule(input)
	if err != nil {
		return GuardMinute{}, err
	}
	if len(schedule) == 0 {
		return GuardMinute{}, puzzle.Invalidf("no guard ever falls asleep")
	}

	sleepiest, most, ties := 0, -1, 0
	for _, guard := range sortedGuards(schedule) {
		total := 0
		for _, count := range schedule[guard] {
			total += count
		}
		switch {
		case total > most:
			sleepiest, most, ties = guard, total, 0
		case total == most:
			ties++
		}
	}
	if ties > 0 {
		return GuardMinute{}, puzzle.Invalidf("%d guards share the most minutes asleep (%d)", ties+1, most)
	}

	minutes, _ := mostCommonMinutes(schedule[sleepiest])
	if len(minutes) != 1 {
		return GuardMinute{}, puzzle.Invalidf("guard #%d is most often asleep at %d different minutes", sleepiest, len(minutes))
	}

	return GuardMinute{Guard: sleepiest, Minute: minutes[0]}, nil
}

// Part2 finds the guard and minute with the highest sleep frequency across
// all guards.
func Part2(input string) (GuardMinute, error) {
	schedule, err := parseSchedule(input)
	if err != nil {
		return GuardMinute{}, err
	}
	if len(schedule) == 0 {
		return GuardMinute{}, puzzle.Invalidf("no guard ever falls asleep")
	}

	var best GuardMinute
	highest, ties := -1, 0
	var bestMinutes []int

	for _, guard := range sortedGuards(schedule) {
		minutes, count := mostCommonMinutes(schedule[guard])
		switch {
		case count > highest:
			best.Guard, highest, ties, bestMinutes = guard, count, 0, minutes
		case count == highest:
			ties++
		}
	}

	if ties > 0 || len(bestMinutes) != 1 {
		return GuardMinute{}, puzzle.Invalidf("no single guard and minute is most frequently asleep (%d times)", highest)
	}
	best.Minute = bestMinutes[0]
	return best, nil
}

func mostCommonMinutes(counts *MinuteCounts) ([]int, int) {
	var minutes []int
	highest := 0
	for minute, count := range counts {
		switch {
		case count > highest:
			highest = count
			minutes = append(minutes[:0], minute)
		case count == highest:
			minutes = append(minutes, minute)
		}
	}
	return minutes, highest
}

func sortedGuards(schedule map[int]*MinuteCounts) []int {
	guards := make([]int, 0, len(schedule))
	for guard := range schedule {
		guards = append(guards, guard)
	}
	slices.Sort(guards)
	return guards
}

// parseSchedule sorts the log chronologically and folds it into per-guard
// minute counts. Only guards that fell asleep at least once appear.
func parseSchedule(input string) (map[int]*MinuteCounts, error) {
	var events []event
	for _, line := range utils.Lines(input) {
		ev, err := parseEvent(line)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}

	slices.SortStableFunc(events, func(a, b event) int {
		return cmp.Compare(a.raw, b.raw)
	})
	for i := 1; i < len(events); i++ {
		if events[i].raw == events[i-1].raw {
			return nil, puzzle.Invalidf("two events at [%s]", events[i].raw)
		}
	}

	schedule := make(map[int]*MinuteCounts)
	guard := -1

	for i := 0; i < len(events); i++ {
		ev := events[i]
		switch ev.kind {
		case shiftChange:
			guard = ev.guard
			continue
		case wakeUp:
			return nil, puzzle.Invalidf("[%s] guard wakes up without falling asleep", ev.raw)
		}

		if guard < 0 {
			return nil, puzzle.Invalidf("[%s] guard falls asleep before any shift begins", ev.raw)
		}
		if i+1 == len(events) || events[i+1].kind != wakeUp {
			return nil, puzzle.Invalidf("[%s] guard #%d falls asleep and never wakes up", ev.raw, guard)
		}
		i++
		start, end := ev.stamp, events[i].stamp

		if start.Hour() != 0 || end.Hour() != 0 || !end.After(start) || end.Sub(start) >= time.Hour {
			return nil, puzzle.Invalidf("guard #%d sleeps from [%s] to [%s], outside the midnight hour", guard, ev.raw, events[i].raw)
		}

		counts, ok := schedule[guard]
		if !ok {
			counts = new(MinuteCounts)
			schedule[guard] = counts
		}
		for minute := start.Minute(); minute < end.Minute(); minute++ {
			counts[minute]++
		}
	}

	return schedule, nil
}

func parseEvent(line string) (event, error) {
	line = strings.TrimSpace(line)

	rest, ok := strings.CutPrefix(line, "[")
	if !ok {
		return event{}, puzzle.Invalidf("log line %q does not start with a timestamp", line)
	}
	raw, text, ok := strings.Cut(rest, "] ")
	if !ok {
		return event{}, puzzle.Invalidf("log line %q has no closing ']'", line)
	}
	stamp, err := time.Parse(timestampLayout, raw)
	if err != nil || len(raw) != len(timestampLayout) {
		return event{}, puzzle.Invalidf("log line %q has a malformed timestamp", line)
	}

	ev := event{stamp: stamp, raw: raw}
	switch text {
	case "falls asleep":
		ev.kind = fallAsleep
	case "wakes up":
		ev.kind = wakeUp
	default:
		idStr, ok := strings.CutPrefix(text, "Guard #")
		if ok {
			idStr, ok = strings.CutSuffix(idStr, " begins shift")
		}
		if !ok {
			return event{}, puzzle.Invalidf("log line %q has an unknown event", line)
		}
		id, err := strconv.Atoi(idStr)
		if err != nil || id < 0 {
			return event{}, puzzle.Invalidf("log line %q has a malformed guard id", line)
		}
		ev.kind, ev.guard = shiftChange, id
	}
	return ev, nil
}
