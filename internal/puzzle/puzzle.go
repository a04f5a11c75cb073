package puzzle

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("puzzle not found")
	ErrDuplicate    = errors.New("puzzle already registered")
)

// Invalidf returns an error wrapping ErrInvalidInput.
func Invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// Solution computes the answer for one puzzle part from the raw input text.
// The answer is rendered with fmt.Sprint.
type Solution func(input string) (any, error)

type Key struct {
	Day     int
	Part    int
	Variant string
}

func (k Key) String() string {
	s := fmt.Sprintf("day%d/part%d", k.Day, k.Part)
	if k.Variant != "" {
		s += "/" + k.Variant
	}
	return s
}

// ParseKey accepts "3/2", "3/2/grid" and the String form "day3/part2/grid".
func ParseKey(s string) (Key, error) {
	fields := strings.Split(strings.TrimSpace(s), "/")
	if len(fields) < 2 || len(fields) > 3 {
		return Key{}, fmt.Errorf("malformed puzzle key %q", s)
	}

	day, err := strconv.Atoi(strings.TrimPrefix(fields[0], "day"))
	if err != nil {
		return Key{}, fmt.Errorf("malformed day in puzzle key %q: %w", s, err)
	}
	part, err := strconv.Atoi(strings.TrimPrefix(fields[1], "part"))
	if err != nil {
		return Key{}, fmt.Errorf("malformed part in puzzle key %q: %w", s, err)
	}

	key := Key{Day: day, Part: part}
	if len(fields) == 3 {
		key.Variant = fields[2]
	}
	return key, nil
}

type Puzzle struct {
	Key     Key
	Title   string
	Solve   Solution
	Default bool
}
