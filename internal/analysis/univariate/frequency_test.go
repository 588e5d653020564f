package univariate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrequencies_DescendingCounts(t *testing.T) {
	table := Frequencies([]string{"a", "b", "a", "c", "a"})

	require.Equal(t, 3, table.Len())
	assert.Equal(t, 5, table.Total)

	want := []struct {
		value      string
		freq       int
		relative   float64
		cumulative float64
	}{
		{"a", 3, 0.6, 0.6},
		{"b", 1, 0.2, 0.8},
		{"c", 1, 0.2, 1.0},
	}
	for i, w := range want {
		row := table.Rows[i]
		assert.Equal(t, w.value, row.Value)
		assert.Equal(t, w.freq, row.Frequency)
		assert.InDelta(t, w.relative, row.RelativeFrequency, 1e-12)
		assert.InDelta(t, w.cumulative, row.CumulativeRelativeFrequency, 1e-12)
	}
}

func TestFrequencies_TiesKeepFirstSeenOrder(t *testing.T) {
	table := Frequencies([]string{"x", "z", "y", "y", "x", "w", "w"})

	values := make([]string, 0, table.Len())
	for _, r := range table.Rows {
		values = append(values, r.Value)
	}
	assert.Equal(t, []string{"x", "y", "w", "z"}, values)
}

func TestFrequencies_Empty(t *testing.T) {
	table := Frequencies(nil)

	assert.True(t, table.IsEmpty())
	assert.Equal(t, 0, table.Total)
}

func TestFrequencies_Totals(t *testing.T) {
	tests := []struct {
		name   string
		values []string
	}{
		{"single", []string{"only"}},
		{"all distinct", []string{"p", "q", "r", "s", "t", "u", "v"}},
		{"skewed", []string{"a", "a", "a", "a", "a", "a", "b", "c", "c", "d"}},
		{"thirds", []string{"1", "2", "3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := Frequencies(tt.values)

			var freq int
			var rel float64
			for _, r := range table.Rows {
				freq += r.Frequency
				rel += r.RelativeFrequency
			}
			assert.Equal(t, len(tt.values), freq)
			assert.InDelta(t, 1.0, rel, 1e-9)
			assert.InDelta(t, 1.0, table.Rows[table.Len()-1].CumulativeRelativeFrequency, 1e-9)
		})
	}
}
