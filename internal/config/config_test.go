package config

import (
	"testing"
	"time"

	"univar/internal"
	"univar/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "GIN_MODE", "MAX_UPLOAD_MB", "DEFAULT_BINS", "MAX_BINS",
		"CHART_WIDTH", "CHART_HEIGHT", "SESSION_TTL", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, int64(50<<20), cfg.Upload.MaxBytes())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("GIN_MODE", "debug")
	t.Setenv("MAX_BINS", "20")
	t.Setenv("DEFAULT_BINS", "5")
	t.Setenv("SESSION_TTL", "15m")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.GinMode)
	assert.Equal(t, 20, cfg.Analysis.MaxBins)
	assert.Equal(t, 5, cfg.Analysis.DefaultBins)
	assert.Equal(t, 15*time.Minute, cfg.Session.TTL)
	assert.Equal(t, internal.LogLevelDebug, cfg.Logging.Level)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"default above max", map[string]string{"DEFAULT_BINS": "60"}},
		{"zero bins", map[string]string{"MAX_BINS": "0"}},
		{"negative upload", map[string]string{"MAX_UPLOAD_MB": "-1"}},
		{"bad gin mode", map[string]string{"GIN_MODE": "loud"}},
		{"bad log level", map[string]string{"LOG_LEVEL": "chatty"}},
		{"zero width", map[string]string{"CHART_WIDTH": "0"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			require.Error(t, err)
			assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))
		})
	}
}

func TestClampBins(t *testing.T) {
	a := AnalysisConfig{DefaultBins: 10, MaxBins: 50}

	tests := []struct {
		in   int
		want int
	}{
		{0, 1},
		{-4, 1},
		{1, 1},
		{25, 25},
		{50, 50},
		{51, 50},
		{1000, 50},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, a.ClampBins(tt.in), "bins=%d", tt.in)
	}
}

func TestParseBins(t *testing.T) {
	a := AnalysisConfig{DefaultBins: 10, MaxBins: 50}

	tests := map[string]int{
		"":     10,
		"abc":  10,
		"2.5":  10,
		" 7 ":  7,
		"0":    1,
		"-2":   1,
		"50":   50,
		"9999": 50,
	}
	for raw, want := range tests {
		assert.Equal(t, want, a.ParseBins(raw), "raw=%q", raw)
	}
}
