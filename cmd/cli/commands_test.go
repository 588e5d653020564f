package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"univar/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "people.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(config.Default())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

const people = "city,age\nLima,1\nQuito,2\nLima,3\n,4\nLima,100\n"

func TestColumnsCommand(t *testing.T) {
	out, err := run(t, "columns", writeCSV(t, people))

	require.NoError(t, err)
	assert.Contains(t, out, "people.csv: 5 rows")
	assert.Regexp(t, `city\s+categorical\s+1`, out)
	assert.Regexp(t, `age\s+numeric\s+0`, out)
}

func TestDescribeCommand(t *testing.T) {
	path := writeCSV(t, people)

	t.Run("defaults to the first column", func(t *testing.T) {
		out, err := run(t, "describe", path)
		require.NoError(t, err)
		assert.Contains(t, out, "Frequency Distribution")
		assert.Regexp(t, `Lima\s+3\s+0\.750000\s+0\.750000`, out)
		assert.Regexp(t, `Quito\s+1\s+0\.250000\s+1\.000000`, out)
	})

	t.Run("numeric column", func(t *testing.T) {
		out, err := run(t, "describe", path, "--column", "age")
		require.NoError(t, err)
		assert.Contains(t, out, "Descriptive Statistics")
		assert.Regexp(t, `mean\s+22\.000000`, out)
		assert.Contains(t, out, "Outliers: 100")
	})

	t.Run("binned json", func(t *testing.T) {
		out, err := run(t, "describe", path, "--column", "age", "--categorical", "--bins", "4", "--json")
		require.NoError(t, err)
		var report map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(out), &report))
		assert.Equal(t, "binned", report["mode"])
		rows := report["frequencies"].(map[string]interface{})["rows"].([]interface{})
		assert.Len(t, rows, 4)
	})

	t.Run("charts", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "charts")
		_, err := run(t, "describe", path, "--column", "age", "--charts", dir)
		require.NoError(t, err)
		for _, name := range []string{"age_histogram.png", "age_boxplot.png", "age_density.png"} {
			assert.FileExists(t, filepath.Join(dir, name))
		}
		assert.NoFileExists(t, filepath.Join(dir, "age_bar.png"))
	})
}

func TestDescribeCommandErrors(t *testing.T) {
	path := writeCSV(t, people)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "unknown column", args: []string{"describe", path, "--column", "height"}, want: "height"},
		{name: "bins out of range", args: []string{"describe", path, "--bins", "0"}, want: "--bins"},
		{name: "missing file", args: []string{"describe", filepath.Join(t.TempDir(), "nope.csv")}, want: "nope.csv"},
		{name: "no file argument", args: []string{"describe"}, want: "arg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestSafeFileName(t *testing.T) {
	assert.Equal(t, "unit_price___", safeFileName("unit price ($"))
	assert.Equal(t, "column", safeFileName(""))
}
