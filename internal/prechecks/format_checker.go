package prechecks

import (
	"strings"
	"unicode/utf8"

	"github.com/povarna/generative-ai-agents/aoc-solver/internal/puzzle"
)

type FormatChecker struct {
}

func NewFormatChecker() *FormatChecker {
	return &FormatChecker{}
}

func (c *FormatChecker) Name() string {
	return "format-checker"
}

func (c *FormatChecker) Check(input string) error {
	if strings.TrimSpace(input) == "" {
		return puzzle.Invalidf("empty input")
	}

	if !utf8.ValidString(input) {
		return puzzle.Invalidf("input is not valid UTF-8")
	}

	if i := strings.IndexByte(input, 0); i >= 0 {
		return puzzle.Invalidf("input contains a NUL byte at offset %d", i)
	}

	return nil
}
