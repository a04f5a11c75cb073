package prechecks

import "strings"

// Checker validates raw puzzle input before a solution runs. Failures wrap
// puzzle.ErrInvalidInput.
type Checker interface {
	Name() string
	Check(input string) error
}

// Run applies every checker in order and stops at the first failure.
func Run(checks []Checker, input string) error {
	for _, c := range checks {
		if err := c.Check(input); err != nil {
			return err
		}
	}
	return nil
}

// Normalize converts CRLF line endings to LF and drops trailing newlines.
func Normalize(input string) string {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	return strings.TrimRight(input, "\n")
}
