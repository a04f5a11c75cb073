package logger

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestNew_Level(t *testing.T) {
	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{level: "debug", want: zerolog.DebugLevel},
		{level: "warn", want: zerolog.WarnLevel},
		{level: "", want: zerolog.InfoLevel},
		{level: "loud", want: zerolog.InfoLevel},
	}

	for _, test := range tests {
		t.Run(test.level, func(t *testing.T) {
			for _, console := range []bool{false, true} {
				logger := New(test.level, console)
				if got := logger.GetLevel(); got != test.want {
					t.Errorf("New(%q, %v).GetLevel() = %s, want %s", test.level, console, got, test.want)
				}
			}
		})
	}
}
