package prechecks

import (
	"github.com/dustin/go-humanize"
	"github.com/povarna/generative-ai-agents/aoc-solver/internal/puzzle"
)

const DefaultMaxInputBytes = 1 << 20

type SizeChecker struct {
	MaxBytes int
}

func NewSizeChecker(maxBytes int) *SizeChecker {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxInputBytes
	}
	return &SizeChecker{MaxBytes: maxBytes}
}

func (c *SizeChecker) Name() string {
	return "size-checker"
}

func (c *SizeChecker) Check(input string) error {
	if len(input) > c.MaxBytes {
		return puzzle.Invalidf("input is %s, the limit is %s",
			humanize.IBytes(uint64(len(input))), humanize.IBytes(uint64(c.MaxBytes)))
	}
	return nil
}
