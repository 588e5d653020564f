package internal

import (
	"bytes"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in    string
		want  LogLevel
		found bool
	}{
		{"ERROR", LogLevelError, true},
		{"warn", LogLevelWarn, true},
		{" Info ", LogLevelInfo, true},
		{"DEBUG", LogLevelDebug, true},
		{"trace", LogLevelTrace, true},
		{"verbose", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseLogLevel(tt.in)
			assert.Equal(t, tt.found, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestLogger_LevelsAndComponent(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	flags := log.Flags()
	log.SetFlags(0)
	defer func() {
		log.SetOutput(os.Stderr)
		log.SetFlags(flags)
	}()

	logger := NewLogger(LogLevelWarn).WithComponent("upload")
	logger.Info("hidden %d", 1)
	logger.Warn("shown %d", 2)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "[WARN] [upload] shown 2")
	assert.Equal(t, LogLevelWarn, logger.GetLevel())
	assert.Equal(t, "WARN", logger.GetLevel().String())
}
